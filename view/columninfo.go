package view

// Alignment is how a column's values are justified within its width.
type Alignment int

const (
	AlignUndefined Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// ColumnInfo describes one table column. Width of 0 means "unassigned,
// solver to decide"; -1 means "hidden" (solver-assigned).
type ColumnInfo struct {
	Label     string
	Width     int
	Alignment Alignment
}

// TableHeaderInfo is the header metadata a table-mode generator hands
// back once it has seen the first object in the stream.
type TableHeaderInfo struct {
	Columns      []ColumnInfo
	HideHeader   bool
	RepeatHeader bool
}
