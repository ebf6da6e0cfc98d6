package setup

import (
	"encoding/json"
	"fmt"
)

// Point in 3D space, cm.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Array returns coordinates as array.
func (p Point) Array() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

// IsOrigin reports whether all coordinates are zero.
func (p Point) IsOrigin() bool {
	return p == Point{}
}

// Direction of emitted particles. Isotropic is zero value.
type Direction int

const (
	// Isotropic emission, no vec= entry.
	Isotropic Direction = iota
	// PlusX ...
	PlusX
	// MinusX ...
	MinusX
	// PlusY ...
	PlusY
	// MinusY ...
	MinusY
	// PlusZ ...
	PlusZ
	// MinusZ ...
	MinusZ
)

type directionInfo struct {
	name   string
	vector [3]int
}

var directions = map[Direction]directionInfo{
	Isotropic: {name: ""},
	PlusX:     {name: "+x", vector: [3]int{1, 0, 0}},
	MinusX:    {name: "-x", vector: [3]int{-1, 0, 0}},
	PlusY:     {name: "+y", vector: [3]int{0, 1, 0}},
	MinusY:    {name: "-y", vector: [3]int{0, -1, 0}},
	PlusZ:     {name: "+z", vector: [3]int{0, 0, 1}},
	MinusZ:    {name: "-z", vector: [3]int{0, 0, -1}},
}

var directionAliases = map[string]Direction{
	"": Isotropic,
	"+x": PlusX, "x+": PlusX,
	"-x": MinusX, "x-": MinusX,
	"+y": PlusY, "y+": PlusY,
	"-y": MinusY, "y-": MinusY,
	"+z": PlusZ, "z+": PlusZ,
	"-z": MinusZ, "z-": MinusZ,
}

// ParseDirection accepts "+z", "z+", "-x", ... and "" for isotropic emission.
func ParseDirection(name string) (Direction, error) {
	direction, ok := directionAliases[name]
	if !ok {
		return Isotropic, fmt.Errorf("unknown direction %q, expected one of +x -x +y -y +z -z", name)
	}
	return direction, nil
}

// Vector is signed unit vector of direction.
func (d Direction) Vector() [3]int {
	return directions[d].vector
}

// Axis is unsigned unit vector of direction.
func (d Direction) Axis() [3]int {
	axis := d.Vector()
	for i := range axis {
		if axis[i] < 0 {
			axis[i] = -axis[i]
		}
	}
	return axis
}

// AxisName returns "x", "y" or "z", "" for isotropic.
func (d Direction) AxisName() string {
	name := directions[d].name
	if name == "" {
		return ""
	}
	return name[1:]
}

func (d Direction) String() string {
	if d == Isotropic {
		return "isotropic"
	}
	return directions[d].name
}

// MarshalJSON json.Marshaller implementation.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(directions[d].name)
}

// UnmarshalJSON json.Unmarshaller implementation.
func (d *Direction) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	direction, err := ParseDirection(name)
	if err != nil {
		return err
	}
	*d = direction
	return nil
}
