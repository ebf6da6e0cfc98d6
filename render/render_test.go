package render

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#7299c6")
	require.NoError(t, err)
	assert.Equal(t, NewColor(0x72, 0x99, 0xC6), c)
	assert.Equal(t, "#7299C6", c.Hex())

	for _, invalid := range []string{"", "7299C6", "#7299C", "#GG99C6"} {
		_, err := ParseColor(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestColorJSON(t *testing.T) {
	raw, err := json.Marshal(SourceMarker)
	require.NoError(t, err)
	assert.Equal(t, `"#2EAFA4"`, string(raw))

	var c Color
	require.NoError(t, json.Unmarshal(raw, &c))
	assert.Equal(t, SourceMarker, c)
}

func TestDerivedDirectiveDoesNotAlias(t *testing.T) {
	original := Directive{
		Shape: Sphere,
		Args:  Args{Center: [3]float64{1, 2, 3}, Radius: 2, Name: "cell 10", Alpha: 0.3},
	}

	derived := original.WithEmitting(true).WithAlpha(1.0)

	assert.False(t, original.Args.Emitting)
	assert.Equal(t, 0.3, original.Args.Alpha)
	assert.True(t, derived.Args.Emitting)
	assert.Equal(t, 1.0, derived.Args.Alpha)
	renamed := derived.WithName("source")
	assert.Equal(t, "source", renamed.Args.Name)
	assert.Equal(t, "cell 10", derived.Args.Name)
}

func TestKeywords(t *testing.T) {
	d := Directive{
		Shape: RightCircularCylinder,
		Args: Args{
			Center: [3]float64{0, 0, 5}, Radius: 2, Height: 0.1, Name: "beam",
			Color: NewColor(0xB9, 0x59, 0x15), Direction: "z", Alpha: 1, Emitting: true,
		},
	}

	assert.Equal(t, map[string]interface{}{
		"c": [3]float64{0, 0, 5}, "r": 2.0, "h": 0.1, "name": "beam",
		"color": "#B95915", "direction": "z", "alpha": 1.0, "emis": true,
	}, d.Keywords())

	sphere := Directive{Shape: Sphere, Args: Args{Radius: 1}}
	assert.NotContains(t, sphere.Keywords(), "h")
	assert.NotContains(t, sphere.Keywords(), "direction")
}

type recordingRenderer struct {
	shapes []Shape
	failAt int
}

func (r *recordingRenderer) Render(shape Shape, kwargs map[string]interface{}) error {
	if len(r.shapes) == r.failAt {
		return fmt.Errorf("renderer down")
	}
	r.shapes = append(r.shapes, shape)
	return nil
}

func TestDispatch(t *testing.T) {
	r := &recordingRenderer{failAt: -1}
	err := Dispatch(r, Directive{Shape: Sphere}, Directive{Shape: RightCircularCylinder})
	require.NoError(t, err)
	assert.Equal(t, []Shape{Sphere, RightCircularCylinder}, r.shapes)

	failing := &recordingRenderer{failAt: 1}
	err = Dispatch(failing, Directive{Shape: Sphere}, Directive{Shape: Sphere}, Directive{Shape: Sphere})
	assert.EqualError(t, err, "renderer down")
	assert.Len(t, failing.shapes, 1)
}
