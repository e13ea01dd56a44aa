package schema

import (
	"testing"

	"github.com/lshigami/survey-core/internal/fieldmap"
	"github.com/lshigami/survey-core/internal/model"
)

func TestColumnTypeFor(t *testing.T) {
	cases := []struct {
		kind fieldmap.Kind
		want ColumnType
	}{
		{fieldmap.KindID, PK},
		{fieldmap.KindToken, TokenColumn},
		{fieldmap.KindSeed, String(31)},
		{fieldmap.KindStartLanguage, String(20).Required()},
		{fieldmap.KindStartDate, DateTime.Required()},
		{fieldmap.KindDatestamp, DateTime.Required()},
		{fieldmap.KindSubmitDate, DateTime},
		{fieldmap.KindLastPage, Integer},
		{fieldmap.KindIPAddress, Text},
		{fieldmap.KindURL, Text},
		{fieldmap.KindQuestionTime, Float},
		{fieldmap.QuestionKind(model.QTypeListRadio), Text},
		{fieldmap.QuestionKind(model.QTypeRanking), Text},
		{fieldmap.QuestionKind(model.QTypeNumerical), Text},
	}
	for _, tc := range cases {
		if got := ColumnTypeFor(tc.kind); got != tc.want {
			t.Errorf("ColumnTypeFor(%q) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestColumnTypeString(t *testing.T) {
	if got := String(20).Required().String(); got != "string(20) NOT NULL" {
		t.Fatalf("String: got %q", got)
	}
	if got := TokenColumn.String(); got != "string(35) CASE SENSITIVE" {
		t.Fatalf("String: got %q", got)
	}
	if got := PK.String(); got != "pk" {
		t.Fatalf("String: got %q", got)
	}
}

func TestDialectColumnSQL(t *testing.T) {
	cases := []struct {
		driver string
		typ    ColumnType
		want   string
	}{
		{"postgres", PK, "serial NOT NULL PRIMARY KEY"},
		{"postgres", String(20).Required(), "varchar(20) NOT NULL"},
		{"postgres", TokenColumn, "varchar(35)"},
		{"mysql", TokenColumn, "varchar(35) COLLATE utf8mb4_bin"},
		{"mysql", DateTime.Required(), "datetime NOT NULL"},
		{"sqlserver", TokenColumn, "nvarchar(35) COLLATE SQL_Latin1_General_CP1_CS_AS"},
		{"sqlserver", Text, "nvarchar(max)"},
		{"sqlite", PK, "integer NOT NULL PRIMARY KEY AUTOINCREMENT"},
		{"sqlite", Float, "float"},
	}
	for _, tc := range cases {
		if got := DialectFor(tc.driver).ColumnSQL(tc.typ); got != tc.want {
			t.Errorf("%s ColumnSQL(%v) = %q, want %q", tc.driver, tc.typ, got, tc.want)
		}
	}
}

func TestDialectFor(t *testing.T) {
	for driver, want := range map[string]string{
		"mysql":     "mysql",
		"mysqli":    "mysql",
		"sqlserver": "sqlserver",
		"dblib":     "sqlserver",
		"sqlite":    "sqlite",
		"postgres":  "postgres",
		"pgsql":     "postgres",
	} {
		if got := DialectFor(driver).Name(); got != want {
			t.Errorf("DialectFor(%q) = %q, want %q", driver, got, want)
		}
	}
}

func TestTableDefinitionSetKeepsPosition(t *testing.T) {
	def := NewTableDefinition()
	def.Set("id", PK)
	def.Set("token", Text)
	def.Set("seed", String(31))
	def.Set("token", TokenColumn)

	cols := def.Columns()
	if len(cols) != 3 {
		t.Fatalf("Columns: got %d, want 3", len(cols))
	}
	if cols[1].Name != "token" || cols[1].Type != TokenColumn {
		t.Fatalf("Columns[1]: got %+v", cols[1])
	}

	cols[0].Name = "changed"
	if got := def.Columns()[0].Name; got != "id" {
		t.Fatalf("Columns returned shared storage, got %q", got)
	}
}
