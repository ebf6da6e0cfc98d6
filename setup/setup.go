// Package setup contains declarative description of deck physics and sources.
package setup

// Scene contains everything needed to encode physics and source fragments.
type Scene struct {
	Physics Physics  `json:"physics"`
	Sources []Source `json:"sources"`
	Cells   []Cell   `json:"cells,omitempty"`
}

// CellIndex indexes scene cells by number.
func (s Scene) CellIndex() Cells {
	cells := make([]GeometryCell, 0, len(s.Cells))
	for _, cell := range s.Cells {
		cells = append(cells, cell)
	}
	return NewCells(cells...)
}
