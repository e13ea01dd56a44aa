// Package schema turns field maps into table definitions and executes the DDL for them.
package schema

import (
	"fmt"
	"strings"

	"github.com/lshigami/survey-core/internal/fieldmap"
)

// Base is the dialect-independent storage class of a column.
type Base string

const (
	BasePK       Base = "pk"
	BaseString   Base = "string"
	BaseText     Base = "text"
	BaseDateTime Base = "datetime"
	BaseInteger  Base = "integer"
	BaseFloat    Base = "float"
)

type ColumnType struct {
	Base    Base
	Size    int // only for BaseString
	NotNull bool
	// CaseSensitive requests a binary collation where the dialect has one.
	CaseSensitive bool
}

var (
	PK       = ColumnType{Base: BasePK}
	Text     = ColumnType{Base: BaseText}
	DateTime = ColumnType{Base: BaseDateTime}
	Integer  = ColumnType{Base: BaseInteger}
	Float    = ColumnType{Base: BaseFloat}
)

func String(size int) ColumnType {
	return ColumnType{Base: BaseString, Size: size}
}

// TokenColumn is used for the participant token, matched case-sensitively.
var TokenColumn = ColumnType{Base: BaseString, Size: 35, CaseSensitive: true}

func (t ColumnType) Required() ColumnType {
	t.NotNull = true
	return t
}

// String renders the abstract type, e.g. "string(20) NOT NULL".
func (t ColumnType) String() string {
	var b strings.Builder
	b.WriteString(string(t.Base))
	if t.Base == BaseString {
		fmt.Fprintf(&b, "(%d)", t.Size)
	}
	if t.CaseSensitive {
		b.WriteString(" CASE SENSITIVE")
	}
	if t.NotNull {
		b.WriteString(" NOT NULL")
	}
	return b.String()
}

func (t ColumnType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// kindColumnTypes maps field kinds to storage types. Question kinds not listed fall back to Text.
var kindColumnTypes = map[fieldmap.Kind]ColumnType{
	fieldmap.KindID:            PK,
	fieldmap.KindSeed:          String(31),
	fieldmap.KindStartLanguage: String(20).Required(),
	fieldmap.KindStartDate:     DateTime.Required(),
	fieldmap.KindDatestamp:     DateTime.Required(),
	fieldmap.KindSubmitDate:    DateTime,
	fieldmap.KindLastPage:      Integer,
	fieldmap.KindToken:         TokenColumn,
	fieldmap.KindIPAddress:     Text,
	fieldmap.KindURL:           Text,

	fieldmap.KindInterviewTime: Float,
	fieldmap.KindGroupTime:     Float,
	fieldmap.KindQuestionTime:  Float,
}

// ColumnTypeFor returns the storage type for a field kind.
func ColumnTypeFor(kind fieldmap.Kind) ColumnType {
	if t, ok := kindColumnTypes[kind]; ok {
		return t
	}
	return Text
}
