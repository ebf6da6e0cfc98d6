package setup

import "github.com/yaptide/mcnp/render"

// GeometryCell is cell of geometry model, which sources can be biased to.
type GeometryCell interface {
	Number() int
	Position() Point
	Radius() float64
	Directive() (render.Directive, bool)
}

// CellLookup resolves cell numbers.
type CellLookup interface {
	Lookup(number int) (GeometryCell, bool)
}

// Cell is plain GeometryCell decoded from scene description.
type Cell struct {
	ID     int               `json:"id"`
	Center Point             `json:"center"`
	Extent float64           `json:"radius"`
	Visual *render.Directive `json:"directive,omitempty"`
}

// Number ...
func (c Cell) Number() int {
	return c.ID
}

// Position ...
func (c Cell) Position() Point {
	return c.Center
}

// Radius of sphere enclosing the cell.
func (c Cell) Radius() float64 {
	return c.Extent
}

// Directive returns copy of cell's visualization directive.
func (c Cell) Directive() (render.Directive, bool) {
	if c.Visual == nil {
		return render.Directive{}, false
	}
	return *c.Visual, true
}

// Cells is CellLookup over cells map.
type Cells map[int]GeometryCell

// NewCells indexes cells by number.
func NewCells(cells ...GeometryCell) Cells {
	result := Cells{}
	for _, cell := range cells {
		result[cell.Number()] = cell
	}
	return result
}

// Lookup ...
func (c Cells) Lookup(number int) (GeometryCell, bool) {
	cell, ok := c[number]
	return cell, ok
}
