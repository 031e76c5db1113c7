// Package auditrepo persists the append-only transition history in the order_logs table.
package auditrepo

import (
	"time"

	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/audit"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EntryDTO is one row of order_logs. Seq breaks ties between entries written within the
// same timestamp so history reads back in insertion order.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(16);not null"`
	Remark     string    `gorm:"type:text;not null;default:''"`
	ActorRole  string    `gorm:"type:varchar(32);not null"`
	ActorID    int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
	IsDeleted  bool      `gorm:"not null;default:false"`
	IsArchived bool      `gorm:"not null;default:false"`
}

func (EntryDTO) TableName() string {
	return "order_logs"
}

func fromDomain(entry *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		Status:     entry.Status().String(),
		Remark:     entry.Remark(),
		ActorRole:  entry.ActorRole().String(),
		ActorID:    entry.ActorID(),
		CreatedAt:  entry.CreatedAt(),
		IsDeleted:  entry.IsDeleted(),
		IsArchived: entry.IsArchived(),
	}
}

func toDomain(dto EntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	role, err := actor.ParseRole(dto.ActorRole)
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(audit.RestoreParams{
		ID:         id,
		OrderID:    orderID,
		Status:     status,
		Remark:     dto.Remark,
		ActorRole:  role,
		ActorID:    dto.ActorID,
		CreatedAt:  dto.CreatedAt,
		IsDeleted:  dto.IsDeleted,
		IsArchived: dto.IsArchived,
	})
}
