package schema

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Dialect renders column types and implements engine-specific setup steps.
type Dialect interface {
	// Name is the engine family: "postgres", "mysql", "sqlserver" or "sqlite".
	Name() string
	ColumnSQL(t ColumnType) string
	// SetAutoNumberStart makes the next generated id of table's "id" column equal start.
	SetAutoNumberStart(ctx context.Context, db *gorm.DB, table string, start int) error
}

// DialectFor picks the dialect matching a gorm dialector name.
func DialectFor(driver string) Dialect {
	switch strings.ToLower(driver) {
	case "mysql", "mysqli":
		return mysqlDialect{}
	case "sqlserver", "mssql", "dblib":
		return sqlserverDialect{}
	case "sqlite", "sqlite3":
		return sqliteDialect{}
	default:
		return postgresDialect{}
	}
}

type columnTypes struct {
	types     map[Base]string
	collation string
}

func (c columnTypes) render(t ColumnType) string {
	var b strings.Builder
	if t.Base == BaseString {
		fmt.Fprintf(&b, c.types[BaseString], t.Size)
	} else if sqlType, ok := c.types[t.Base]; ok {
		b.WriteString(sqlType)
	} else {
		b.WriteString(c.types[BaseText])
	}
	if t.CaseSensitive && c.collation != "" {
		b.WriteString(" COLLATE ")
		b.WriteString(c.collation)
	}
	if t.NotNull && t.Base != BasePK {
		b.WriteString(" NOT NULL")
	}
	return b.String()
}

type postgresDialect struct{}

var postgresTypes = columnTypes{types: map[Base]string{
	BasePK:       "serial NOT NULL PRIMARY KEY",
	BaseString:   "varchar(%d)",
	BaseText:     "text",
	BaseDateTime: "timestamp",
	BaseInteger:  "integer",
	BaseFloat:    "float",
}}

func (postgresDialect) Name() string                  { return "postgres" }
func (postgresDialect) ColumnSQL(t ColumnType) string { return postgresTypes.render(t) }

func (postgresDialect) SetAutoNumberStart(ctx context.Context, db *gorm.DB, table string, start int) error {
	return db.WithContext(ctx).
		Exec("SELECT setval(pg_get_serial_sequence(?, 'id'), ?, false)", table, start).Error
}

type mysqlDialect struct{}

var mysqlTypes = columnTypes{
	types: map[Base]string{
		BasePK:       "int(11) NOT NULL AUTO_INCREMENT PRIMARY KEY",
		BaseString:   "varchar(%d)",
		BaseText:     "text",
		BaseDateTime: "datetime",
		BaseInteger:  "int(11)",
		BaseFloat:    "float",
	},
	collation: "utf8mb4_bin",
}

func (mysqlDialect) Name() string                  { return "mysql" }
func (mysqlDialect) ColumnSQL(t ColumnType) string { return mysqlTypes.render(t) }

func (mysqlDialect) SetAutoNumberStart(ctx context.Context, db *gorm.DB, table string, start int) error {
	return db.WithContext(ctx).
		Exec(fmt.Sprintf("ALTER TABLE ? AUTO_INCREMENT = %d", start), clause.Table{Name: table}).Error
}

type sqlserverDialect struct{}

var sqlserverTypes = columnTypes{
	types: map[Base]string{
		BasePK:       "int IDENTITY(1,1) NOT NULL PRIMARY KEY",
		BaseString:   "nvarchar(%d)",
		BaseText:     "nvarchar(max)",
		BaseDateTime: "datetime",
		BaseInteger:  "int",
		BaseFloat:    "float",
	},
	collation: "SQL_Latin1_General_CP1_CS_AS",
}

func (sqlserverDialect) Name() string                  { return "sqlserver" }
func (sqlserverDialect) ColumnSQL(t ColumnType) string { return sqlserverTypes.render(t) }

// SetAutoNumberStart recreates the id column, since an identity seed cannot be altered in place.
func (sqlserverDialect) SetAutoNumberStart(ctx context.Context, db *gorm.DB, table string, start int) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var constraints []string
		err := tx.Raw(`SELECT kc.name FROM sys.key_constraints kc
			JOIN sys.index_columns ic ON ic.object_id = kc.parent_object_id AND ic.index_id = kc.unique_index_id
			JOIN sys.columns c ON c.object_id = ic.object_id AND c.column_id = ic.column_id
			WHERE kc.parent_object_id = OBJECT_ID(?) AND c.name = 'id'`, table).
			Scan(&constraints).Error
		if err != nil {
			return err
		}
		for _, name := range constraints {
			if err := tx.Exec("ALTER TABLE ? DROP CONSTRAINT ?", clause.Table{Name: table}, clause.Table{Name: name}).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("ALTER TABLE ? DROP COLUMN ?", clause.Table{Name: table}, clause.Column{Name: "id"}).Error; err != nil {
			return err
		}
		if err := tx.Exec(fmt.Sprintf("ALTER TABLE ? ADD ? int IDENTITY(%d,1) NOT NULL", start), clause.Table{Name: table}, clause.Column{Name: "id"}).Error; err != nil {
			return err
		}
		pk := fmt.Sprintf("PK_%s_id", table)
		return tx.Exec("ALTER TABLE ? ADD CONSTRAINT ? PRIMARY KEY (?)", clause.Table{Name: table}, clause.Table{Name: pk}, clause.Column{Name: "id"}).Error
	})
}

type sqliteDialect struct{}

var sqliteTypes = columnTypes{types: map[Base]string{
	BasePK:       "integer NOT NULL PRIMARY KEY AUTOINCREMENT",
	BaseString:   "varchar(%d)",
	BaseText:     "text",
	BaseDateTime: "datetime",
	BaseInteger:  "integer",
	BaseFloat:    "float",
}}

func (sqliteDialect) Name() string                  { return "sqlite" }
func (sqliteDialect) ColumnSQL(t ColumnType) string { return sqliteTypes.render(t) }

// SetAutoNumberStart writes the AUTOINCREMENT counter kept in sqlite_sequence.
func (sqliteDialect) SetAutoNumberStart(ctx context.Context, db *gorm.DB, table string, start int) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec("UPDATE sqlite_sequence SET seq = ? WHERE name = ?", start-1, table)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		return tx.Exec("INSERT INTO sqlite_sequence (name, seq) VALUES (?, ?)", table, start-1).Error
	})
}
