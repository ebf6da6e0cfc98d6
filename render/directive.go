// Package render describes visualization directives produced for an external
// 3D scene builder. Nothing here draws anything.
package render

// Shape kind understood by scene builder.
type Shape string

const (
	// Sphere draws sphere around center.
	Sphere Shape = "sph"
	// RightCircularCylinder draws cylinder, flat one represents disk.
	RightCircularCylinder Shape = "rcc"
)

// Args of shape drawing command.
type Args struct {
	Center    [3]float64 `json:"c"`
	Radius    float64    `json:"r"`
	Height    float64    `json:"h,omitempty"`
	Name      string     `json:"name"`
	Color     Color      `json:"color"`
	Direction string     `json:"direction,omitempty"`
	Alpha     float64    `json:"alpha"`
	Emitting  bool       `json:"emis"`
}

// Directive is shape kind with its arguments. It is a value, derived
// directives never share state with the original.
type Directive struct {
	Shape Shape `json:"shape"`
	Args  Args  `json:"args"`
}

// WithEmitting returns copy of directive with emitting flag overridden.
func (d Directive) WithEmitting(emitting bool) Directive {
	d.Args.Emitting = emitting
	return d
}

// WithAlpha returns copy of directive with opacity overridden.
func (d Directive) WithAlpha(alpha float64) Directive {
	d.Args.Alpha = alpha
	return d
}

// WithName returns copy of directive with display name overridden.
func (d Directive) WithName(name string) Directive {
	d.Args.Name = name
	return d
}

// Keywords returns arguments in keyword form expected by scene builder.
func (d Directive) Keywords() map[string]interface{} {
	kwargs := map[string]interface{}{
		"c":     d.Args.Center,
		"r":     d.Args.Radius,
		"name":  d.Args.Name,
		"color": d.Args.Color.Hex(),
		"alpha": d.Args.Alpha,
		"emis":  d.Args.Emitting,
	}
	if d.Args.Height != 0 {
		kwargs["h"] = d.Args.Height
	}
	if d.Args.Direction != "" {
		kwargs["direction"] = d.Args.Direction
	}
	return kwargs
}

// Renderer is external scene builder.
type Renderer interface {
	Render(shape Shape, kwargs map[string]interface{}) error
}

// Dispatch forwards directives to renderer in order, stops on first error.
func Dispatch(renderer Renderer, directives ...Directive) error {
	for _, directive := range directives {
		if err := renderer.Render(directive.Shape, directive.Keywords()); err != nil {
			return err
		}
	}
	return nil
}
