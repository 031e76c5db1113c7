// Package deliveryrepo persists delivery agent assignments in order_delivery_agents.
package deliveryrepo

import (
	"time"

	"orderlifecycle/internal/core/domain/model/delivery"
	"orderlifecycle/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// MappingDTO is one row of order_delivery_agents. The unique index on order_id keeps a
// single mapping per order even when two assignments race.
type MappingDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DeliveryAgentID int64     `gorm:"not null;index"`
	IsDeleted       bool      `gorm:"not null;default:false"`
	IsArchived      bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (MappingDTO) TableName() string {
	return "order_delivery_agents"
}

func fromDomain(m *delivery.Mapping) MappingDTO {
	return MappingDTO{
		ID:              m.ID().Bytes(),
		OrderID:         m.OrderID().Bytes(),
		DeliveryAgentID: m.DeliveryAgentID(),
		IsDeleted:       m.IsDeleted(),
		IsArchived:      m.IsArchived(),
		CreatedAt:       m.CreatedAt(),
		UpdatedAt:       m.UpdatedAt(),
	}
}

func toDomain(dto MappingDTO) (*delivery.Mapping, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreMapping(delivery.RestoreParams{
		ID:              id,
		OrderID:         orderID,
		DeliveryAgentID: dto.DeliveryAgentID,
		IsDeleted:       dto.IsDeleted,
		IsArchived:      dto.IsArchived,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
