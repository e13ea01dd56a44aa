package schema

type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// TableDefinition is an ordered set of columns.
type TableDefinition struct {
	columns []Column
	index   map[string]int
}

func NewTableDefinition() *TableDefinition {
	return &TableDefinition{index: make(map[string]int)}
}

// Set adds a column, or replaces the type of an existing one in place.
func (d *TableDefinition) Set(name string, t ColumnType) {
	if i, ok := d.index[name]; ok {
		d.columns[i].Type = t
		return
	}
	d.index[name] = len(d.columns)
	d.columns = append(d.columns, Column{Name: name, Type: t})
}

func (d *TableDefinition) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

func (d *TableDefinition) Get(name string) (ColumnType, bool) {
	i, ok := d.index[name]
	if !ok {
		return ColumnType{}, false
	}
	return d.columns[i].Type, true
}

func (d *TableDefinition) Columns() []Column {
	out := make([]Column, len(d.columns))
	copy(out, d.columns)
	return out
}

func (d *TableDefinition) Len() int {
	return len(d.columns)
}
