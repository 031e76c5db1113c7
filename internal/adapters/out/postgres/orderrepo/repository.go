package orderrepo

import (
	"context"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/pgerrs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const entityName = "order"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "add order", entityName, aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns of the order if, and only if, the stored version is
// still the one the aggregate was loaded at. The stored version is bumped by one.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", id.Bytes(), aggregate.Version()).
		Updates(map[string]any{
			"status":      aggregate.Status().String(),
			"is_deleted":  aggregate.IsDeleted(),
			"is_archived": aggregate.IsArchived(),
			"updated_at":  aggregate.UpdatedAt(),
			"version":     gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return pgerrs.Translate(result.Error, "update order", entityName, id.String())
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return pgerrs.Translate(err, "update order", entityName, id.String())
		}
		if count == 0 {
			return errs.NewObjectNotFoundError(entityName, id.String())
		}
		return errs.NewConcurrencyConflictError(entityName, id.String())
	}

	r.tracker.TrackAggregate(id, aggregate)
	return nil
}

// Get loads an order by id, soft-deleted rows included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.Translate(err, "get order", entityName, id.String())
	}

	return toDomain(dto)
}

// ArchiveSettledBefore flags terminal orders last touched before cutoff as archived.
func (r *GormOrderRepository) ArchiveSettledBefore(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		`UPDATE orders SET is_archived = true
		WHERE is_archived = false AND status IN ? AND updated_at < ?
		RETURNING id`,
		terminalStatusNames(), cutoff.UTC(),
	).Rows()
	if err != nil {
		return nil, pgerrs.Translate(err, "archive orders", entityName, "settled")
	}
	defer func() { _ = rows.Close() }()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var raw uuid.UUID
		if err := rows.Scan(&raw); err != nil {
			return nil, pgerrs.Translate(err, "archive orders", entityName, "settled")
		}
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerrs.Translate(err, "archive orders", entityName, "settled")
	}

	return ids, nil
}

func terminalStatusNames() []string {
	names := make([]string, 0, 2)
	for _, s := range order.Statuses() {
		if s.IsTerminal() {
			names = append(names, s.String())
		}
	}
	return names
}
