package testutil

import (
	"testing"

	"github.com/lshigami/survey-core/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a private in-memory sqlite database with every model migrated.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.Survey{},
		&model.QuestionGroup{},
		&model.Question{},
		&model.QuestionAttribute{},
		&model.Answer{},
		&model.AnswerL10n{},
	); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}
