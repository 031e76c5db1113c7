package auditrepo

import (
	"context"

	"orderlifecycle/internal/core/domain/model/audit"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/pgerrs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const entityName = "audit entry"

// GormAuditRepository implements ports.AuditRepository using GORM.
type GormAuditRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormAuditRepository(db *gorm.DB, tracker aggregateTracker) *GormAuditRepository {
	return &GormAuditRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "append audit entry", entityName, entry.ID().String())
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// ListByOrder returns the live entries of an order, oldest first. An order without
// history yields an empty slice.
func (r *GormAuditRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND is_deleted = ?", orderID.Bytes(), false).
		Order("created_at ASC, seq ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrs.Translate(err, "list audit entries", entityName, orderID.String())
	}

	entries := make([]*audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *GormAuditRepository) ArchiveByOrders(ctx context.Context, orderIDs []kernel.UUID) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("order_id IN ? AND is_archived = ?", rawIDs(orderIDs), false).
		Update("is_archived", true)
	if result.Error != nil {
		return 0, pgerrs.Translate(result.Error, "archive audit entries", entityName, len(orderIDs))
	}

	return result.RowsAffected, nil
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}
