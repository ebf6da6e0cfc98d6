package setup

import (
	"encoding/json"
	"fmt"

	"github.com/yaptide/mcnp/errors"
	"github.com/yaptide/mcnp/utils"
	"github.com/yaptide/mcnp/validate"
)

var placementType = struct {
	point string
	disk  string
	cell  string
}{
	point: "point",
	disk:  "disk",
	cell:  "cell",
}

// Placement locates source in space. Implemented by PointPlacement,
// DiskPlacement and CellPlacement.
type Placement interface {
	isPlacement()
	Validate() error
}

// PointPlacement is source at fixed position.
type PointPlacement struct {
	Center Point `json:"center"`
}

// DiskPlacement is uniform disk source perpendicular to source direction.
type DiskPlacement struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// CellPlacement samples source position in sphere biased to geometry cell.
// Center and Radius default to cell's own position and radius.
type CellPlacement struct {
	Cell   int      `json:"cell"`
	Center *Point   `json:"center,omitempty"`
	Radius *float64 `json:"radius,omitempty"`
}

func (PointPlacement) isPlacement() {}
func (DiskPlacement) isPlacement() {}
func (CellPlacement) isPlacement() {}

// Validate ...
func (p PointPlacement) Validate() error {
	return nil
}

// Validate ...
func (d DiskPlacement) Validate() error {
	result := E{}
	if !validate.Positive(d.Radius) {
		result["radius"] = fmt.Errorf("%w: disk radius should be positive, got %v", errors.ErrInvalidPlacement, d.Radius)
	}
	return result.orNil()
}

// Validate ...
func (c CellPlacement) Validate() error {
	result := E{}
	if c.Radius != nil && !validate.Positive(*c.Radius) {
		result["radius"] = fmt.Errorf("%w: cell radius should be positive, got %v", errors.ErrInvalidPlacement, *c.Radius)
	}
	return result.orNil()
}

// MarshalJSON json.Marshaller implementation.
func (p PointPlacement) MarshalJSON() ([]byte, error) {
	type Alias PointPlacement
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  placementType.point,
		Alias: Alias(p),
	})
}

// MarshalJSON json.Marshaller implementation.
func (d DiskPlacement) MarshalJSON() ([]byte, error) {
	type Alias DiskPlacement
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  placementType.disk,
		Alias: Alias(d),
	})
}

// MarshalJSON json.Marshaller implementation.
func (c CellPlacement) MarshalJSON() ([]byte, error) {
	type Alias CellPlacement
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  placementType.cell,
		Alias: Alias(c),
	})
}

func unmarshalPlacement(b []byte) (Placement, error) {
	type pointAlias PointPlacement
	type diskAlias DiskPlacement
	type cellAlias CellPlacement

	value, err := utils.TypeBasedUnmarshalJSON(b, map[string]func() interface{}{
		placementType.point: func() interface{} { return &pointAlias{} },
		placementType.disk:  func() interface{} { return &diskAlias{} },
		placementType.cell:  func() interface{} { return &cellAlias{} },
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidPlacement, err)
	}
	switch p := value.(type) {
	case pointAlias:
		return PointPlacement(p), nil
	case diskAlias:
		return DiskPlacement(p), nil
	case cellAlias:
		return CellPlacement(p), nil
	}
	return nil, fmt.Errorf("%w: unexpected placement %T", errors.ErrInvalidPlacement, value)
}
