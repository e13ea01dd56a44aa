package schema

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Builder executes DDL for dynamically shaped tables.
type Builder struct {
	db      *gorm.DB
	dialect Dialect
}

func NewBuilder(db *gorm.DB) *Builder {
	return &Builder{db: db, dialect: DialectFor(db.Dialector.Name())}
}

func (b *Builder) Dialect() Dialect {
	return b.dialect
}

// DriverName is the name of the underlying gorm dialector.
func (b *Builder) DriverName() string {
	return b.db.Dialector.Name()
}

func (b *Builder) quote(name string) string {
	var sb strings.Builder
	b.db.Dialector.QuoteTo(&sb, name)
	return sb.String()
}

// CreateTableSQL renders the CREATE TABLE statement for a definition.
func (b *Builder) CreateTableSQL(table string, def *TableDefinition) string {
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(b.quote(table))
	sb.WriteString(" (")
	for i, col := range def.Columns() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.quote(col.Name))
		sb.WriteByte(' ')
		sb.WriteString(b.dialect.ColumnSQL(col.Type))
	}
	sb.WriteString(")")
	return sb.String()
}

func (b *Builder) CreateTable(ctx context.Context, table string, def *TableDefinition) error {
	return b.db.WithContext(ctx).Exec(b.CreateTableSQL(table, def)).Error
}

func (b *Builder) CreateIndex(ctx context.Context, index, table string, columns ...string) error {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = b.quote(c)
	}
	sql := "CREATE INDEX " + b.quote(index) + " ON " + b.quote(table) + " (" + strings.Join(quoted, ", ") + ")"
	return b.db.WithContext(ctx).Exec(sql).Error
}

func (b *Builder) HasTable(ctx context.Context, table string) bool {
	return b.db.WithContext(ctx).Migrator().HasTable(table)
}

func (b *Builder) SetAutoNumberStart(ctx context.Context, table string, start int) error {
	return b.dialect.SetAutoNumberStart(ctx, b.db, table, start)
}
