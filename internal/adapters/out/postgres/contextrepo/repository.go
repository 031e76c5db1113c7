// Package contextrepo stores the lifecycle context of each order in order_lifecycle_contexts.
package contextrepo

import (
	"context"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/pgerrs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entityName = "lifecycle context"

// ContextDTO is keyed by order; there is at most one row per order.
type ContextDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	LastStatus string    `gorm:"type:varchar(16);not null"`
	LastEvent  string    `gorm:"type:varchar(32);not null"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (ContextDTO) TableName() string {
	return "order_lifecycle_contexts"
}

type GormLifecycleContextRepository struct {
	db *gorm.DB
}

func NewGormLifecycleContextRepository(db *gorm.DB) *GormLifecycleContextRepository {
	return &GormLifecycleContextRepository{db: db}
}

func (r *GormLifecycleContextRepository) Get(ctx context.Context, orderID kernel.UUID) (*lifecycle.Context, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ContextDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, pgerrs.Translate(err, "get lifecycle context", entityName, orderID.String())
	}

	status, err := order.ParseStatus(dto.LastStatus)
	if err != nil {
		return nil, err
	}
	event, err := order.ParseEvent(dto.LastEvent)
	if err != nil {
		return nil, err
	}

	return lifecycle.NewContext(orderID, status, event, dto.UpdatedAt)
}

// Save inserts the context or replaces the stored one for the same order.
func (r *GormLifecycleContextRepository) Save(ctx context.Context, c *lifecycle.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := ContextDTO{
		OrderID:    c.OrderID().Bytes(),
		LastStatus: c.LastStatus().String(),
		LastEvent:  c.LastEvent().String(),
		UpdatedAt:  c.UpdatedAt(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_status", "last_event", "updated_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return pgerrs.Translate(err, "save lifecycle context", entityName, c.OrderID().String())
	}

	return nil
}
