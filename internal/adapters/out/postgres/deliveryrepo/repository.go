package deliveryrepo

import (
	"context"

	"orderlifecycle/internal/core/domain/model/delivery"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/pgerrs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const entityName = "delivery mapping"

// GormDeliveryMappingRepository implements ports.DeliveryMappingRepository using GORM.
type GormDeliveryMappingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryMappingRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryMappingRepository {
	return &GormDeliveryMappingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a mapping. Losing a race for the same order surfaces as a unique violation,
// which is reported as errs.ConcurrencyConflictError.
func (r *GormDeliveryMappingRepository) Add(ctx context.Context, mapping *delivery.Mapping) error {
	if err := mapping.Validate(); err != nil {
		return err
	}

	dto := fromDomain(mapping)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "add delivery mapping", entityName, mapping.OrderID().String())
	}

	r.tracker.TrackAggregate(mapping.ID(), mapping)
	return nil
}

func (r *GormDeliveryMappingRepository) Update(ctx context.Context, mapping *delivery.Mapping) error {
	if err := mapping.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&MappingDTO{}).
		Where("id = ?", mapping.ID().Bytes()).
		Updates(map[string]any{
			"delivery_agent_id": mapping.DeliveryAgentID(),
			"is_deleted":        mapping.IsDeleted(),
			"is_archived":       mapping.IsArchived(),
			"updated_at":        mapping.UpdatedAt(),
		})
	if result.Error != nil {
		return pgerrs.Translate(result.Error, "update delivery mapping", entityName, mapping.OrderID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entityName, mapping.OrderID().String())
	}

	r.tracker.TrackAggregate(mapping.ID(), mapping)
	return nil
}

// GetByOrder returns the mapping of an order, soft-deleted included, so that a
// reassignment revives it instead of inserting a second row.
func (r *GormDeliveryMappingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Mapping, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto MappingDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, pgerrs.Translate(err, "get delivery mapping", entityName, orderID.String())
	}

	return toDomain(dto)
}

func (r *GormDeliveryMappingRepository) ArchiveByOrders(ctx context.Context, orderIDs []kernel.UUID) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}

	raw := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		raw = append(raw, id.Bytes())
	}

	result := r.db.WithContext(ctx).
		Model(&MappingDTO{}).
		Where("order_id IN ? AND is_archived = ?", raw, false).
		Update("is_archived", true)
	if result.Error != nil {
		return 0, pgerrs.Translate(result.Error, "archive delivery mappings", entityName, len(orderIDs))
	}

	return result.RowsAffected, nil
}
