package entity

// Cell is the content of one board square.
type Cell string

const (
	EmptyCell Cell = ""
	MarkA     Cell = "X"
	MarkB     Cell = "O"
)

// IsMark reports whether the cell holds a player mark.
func (c Cell) IsMark() bool {
	return c == MarkA || c == MarkB
}

// Valid reports whether c is one of the three cell states.
func (c Cell) Valid() bool {
	return c == EmptyCell || c.IsMark()
}

func (c Cell) String() string {
	return string(c)
}
