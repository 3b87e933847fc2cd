// Package dbtest opens throwaway in-memory stores for tests.
package dbtest

import (
	"testing"

	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/config"
	"github.com/JGuylherme/Service-POS/internal/db"
)

const memoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// Open returns a migrated sqlite database private to the calling test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := db.NewDB(&config.Config{
		DBDriver: "sqlite",
		DBUrl:    memoryDSN,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}
