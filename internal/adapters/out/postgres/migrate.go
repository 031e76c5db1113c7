package postgres

import (
	"orderlifecycle/internal/adapters/out/postgres/auditrepo"
	"orderlifecycle/internal/adapters/out/postgres/contextrepo"
	"orderlifecycle/internal/adapters/out/postgres/deliveryrepo"
	"orderlifecycle/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&auditrepo.EntryDTO{},
		&contextrepo.ContextDTO{},
		&deliveryrepo.MappingDTO{},
	}
}

// Migrate creates or alters the tables to match Models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
