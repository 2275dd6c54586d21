package repository

import (
	"testing"

	"github.com/rashedq/repair-ops/pkg/pg"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *pg.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return migrateTestDB(t, db)
}

// setupSharedTestDB opens a shared-cache in-memory database pinned to a
// single connection. Plain :memory: hands every pooled connection its own
// database, and concurrent writers would trip sqlite locking; with one
// connection goroutines contend at the pool instead.
func setupSharedTestDB(t *testing.T) *pg.DB {
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return migrateTestDB(t, db)
}

func migrateTestDB(t *testing.T, db *gorm.DB) *pg.DB {
	err := db.AutoMigrate(
		&InvoiceEntity{},
		&InvoiceCounterEntity{},
		&MessageTemplateEntity{},
		&SettingsEntity{},
		&MessageLogEntity{},
		&UserEntity{},
	)
	require.NoError(t, err)

	return pg.NewFromGorm(db, db)
}
