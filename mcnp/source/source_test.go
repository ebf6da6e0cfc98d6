package source

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaptide/mcnp/errors"
	"github.com/yaptide/mcnp/mcnp/distribution"
	"github.com/yaptide/mcnp/render"
	"github.com/yaptide/mcnp/setup"
	"github.com/yaptide/mcnp/test"
)

var fuelDirective = render.Directive{
	Shape: render.Sphere,
	Args: render.Args{
		Center: [3]float64{1, 2, 3},
		Radius: 4,
		Name:   "fuel",
		Color:  render.NewColor(0x80, 0x80, 0x80),
		Alpha:  0.3,
	},
}

var fuel = setup.Cell{ID: 10, Center: setup.Point{X: 1, Y: 2, Z: 3}, Extent: 4, Visual: &fuelDirective}

var cells = setup.NewCells(fuel, setup.Cell{ID: 20, Center: setup.Point{Z: -1}})

func radius(r float64) *float64 {
	return &r
}

func TestSerializeSource(t *testing.T) {
	testCases := []struct {
		name     string
		source   setup.Source
		expected string
	}{
		{
			"fission point defaults to watt",
			setup.NewSource("core", setup.Fission, setup.PointPlacement{}),
			`par=1 pos=0.0000 0.0000 0.0000 erg=d1
sp1 -3 9.880000e-01 2.249000e+00`,
		},
		{
			"cell biased with tabulated spectrum",
			setup.NewSource("fuel source", setup.Photon, setup.CellPlacement{Cell: 10}).
				WithSpectrum(setup.TabulatedSpectrum{Energies: []float64{1, 2}, Weights: []float64{0.5, 0.5}}),
			`par=2 cel=10 pos=1.0000 2.0000 3.0000 rad=d1 erg=d2
si1 0.0000000000e+00 4.0000000000e+00
sp1 -21 1
si2 C 1.0000000000e+00 2.0000000000e+00
sp2 5.0000000000e-01 5.0000000000e-01`,
		},
		{
			"cell with overridden center and radius",
			setup.NewSource("s", setup.Neutron, setup.CellPlacement{
				Cell: 20, Center: &setup.Point{X: 0.5}, Radius: radius(1.5),
			}),
			`par=1 cel=20 pos=0.5000 0.0000 0.0000 rad=d1
si1 0.0000000000e+00 1.5000000000e+00
sp1 -21 1`,
		},
		{
			"disk with fixed energy",
			setup.NewSource("dt", setup.Neutron, setup.DiskPlacement{Center: setup.Point{Z: 5}, Radius: 2}).
				WithDirection(setup.MinusZ).
				WithSpectrum(setup.FixedSpectrum{Energy: 14.1}),
			`par=1 vec=0 0 -1 dir=1 axs=0 0 1 rad=d1 pos=0.0000 0.0000 5.0000 erg=1.4100000000e+01
si1 0.0000000000e+00 2.0000000000e+00
sp1 -21 1`,
		},
		{
			"disk at origin has no pos",
			setup.NewSource("plate", setup.Photon, setup.DiskPlacement{Radius: 3}).
				WithDirection(setup.PlusX),
			`par=2 vec=1 0 0 dir=1 axs=1 0 0 rad=d1
si1 0.0000000000e+00 3.0000000000e+00
sp1 -21 1`,
		},
		{
			"maxwellian along x",
			setup.NewSource("m", setup.Neutron, setup.PointPlacement{Center: setup.Point{X: -2.25}}).
				WithDirection(setup.PlusX).
				WithSpectrum(setup.MaxwellianSpectrum{Temperature: 1.2895}),
			`par=1 vec=1 0 0 dir=1 pos=-2.2500 0.0000 0.0000 erg=d1
sp1 -2 1.289500e+00`,
		},
		{
			"fixed energy overrides fission default",
			setup.NewSource("f", setup.Fission, setup.PointPlacement{}).
				WithSpectrum(setup.FixedSpectrum{Energy: 2}),
			`par=1 pos=0.0000 0.0000 0.0000 erg=2.0000000000e+00`,
		},
		{
			"electron without spectrum",
			setup.NewSource("beta", setup.Electron, setup.PointPlacement{}),
			`par=3 pos=0.0000 0.0000 0.0000`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoder, err := New(tc.source, cells)
			require.NoError(t, err)

			fragment := encoder.Fragment()
			if diff := test.DiffText(tc.expected, fragment.Body); diff != "" {
				t.Errorf("actual != expected\n%s", diff)
			}
			assert.Equal(t, "c --- "+tc.source.ID, fragment.Comment)
		})
	}
}

func TestDistributionIndicesAreSequential(t *testing.T) {
	tabulated := setup.TabulatedSpectrum{Energies: []float64{1}, Weights: []float64{1}}
	placements := []setup.Placement{
		setup.PointPlacement{},
		setup.DiskPlacement{Radius: 1},
		setup.CellPlacement{Cell: 10},
	}
	spectra := []setup.Spectrum{nil, tabulated, setup.FixedSpectrum{Energy: 1}, setup.DefaultWatt}

	for _, placement := range placements {
		for _, spectrum := range spectra {
			for _, particle := range []setup.Particle{setup.Neutron, setup.Fission} {
				source := setup.NewSource("s", particle, placement).
					WithDirection(setup.PlusZ).
					WithSpectrum(spectrum)

				encoder, err := New(source, cells)
				require.NoError(t, err)

				for i, d := range encoder.Distributions() {
					assert.Equal(t, i+1, d.Index)
				}
			}
		}
	}
}

func TestCellRadiusThenSpectrumIndices(t *testing.T) {
	source := setup.NewSource("s", setup.Neutron, setup.CellPlacement{Cell: 10, Radius: radius(2)}).
		WithSpectrum(setup.TabulatedSpectrum{Energies: []float64{1, 2}, Weights: []float64{1, 1}})

	encoder, err := New(source, cells)
	require.NoError(t, err)

	distributions := encoder.Distributions()
	require.Len(t, distributions, 2)
	assert.Equal(t, distribution.NewRadial(1, 2), distributions[0])
	assert.Equal(t, 2, distributions[1].Index)
	assert.Equal(t, "C", distributions[1].Option)
	assert.True(t, strings.Contains(encoder.Fragment().Body, "rad=d1 erg=d2"))
}

func TestDistributionsRoundTrip(t *testing.T) {
	source := setup.NewSource("s", setup.Photon, setup.PointPlacement{}).
		WithSpectrum(setup.TabulatedSpectrum{
			Energies: []float64{0.1, 0.662, 1.173, 1.332},
			Weights:  []float64{0, 0.85, 1, 1},
			Option:   "H",
		})
	encoder, err := New(source, nil)
	require.NoError(t, err)

	lines := strings.Split(encoder.Fragment().Body, "\n")
	require.Len(t, lines, 3)
	parsed, err := distribution.Parse(strings.Join(lines[1:], "\n"))
	require.NoError(t, err)

	assert.Equal(t, "H", parsed.Option)
	assert.InDeltaSlice(t, []float64{0.1, 0.662, 1.173, 1.332}, parsed.X, 1e-9)
	assert.InDeltaSlice(t, []float64{0, 0.85, 1, 1}, parsed.Y, 1e-9)
}

func TestPointDirective(t *testing.T) {
	encoder, err := New(setup.NewSource("marker", setup.Neutron, setup.PointPlacement{Center: setup.Point{Y: 3}}), nil)
	require.NoError(t, err)

	directive, ok := encoder.Directive()
	require.True(t, ok)
	assert.Equal(t, render.Directive{
		Shape: render.Sphere,
		Args: render.Args{
			Center: [3]float64{0, 3, 0}, Radius: 1, Name: "marker",
			Color: render.SourceMarker, Alpha: 1, Emitting: true,
		},
	}, directive)
}

func TestDiskDirective(t *testing.T) {
	source := setup.NewSource("dt", setup.Fission, setup.DiskPlacement{Center: setup.Point{Z: 5}, Radius: 2}).
		WithDirection(setup.MinusZ)
	encoder, err := New(source, nil)
	require.NoError(t, err)

	directive, ok := encoder.Directive()
	require.True(t, ok)
	assert.Equal(t, render.Directive{
		Shape: render.RightCircularCylinder,
		Args: render.Args{
			Center: [3]float64{0, 0, 5}, Radius: 2, Height: 0.1, Name: "dt",
			Color: setup.Fission.Color(), Direction: "z", Alpha: 1, Emitting: true,
		},
	}, directive)
}

func TestCellDirectiveIsDerived(t *testing.T) {
	encoder, err := New(setup.NewSource("s", setup.Neutron, setup.CellPlacement{Cell: 10}), cells)
	require.NoError(t, err)

	directive, ok := encoder.Directive()
	require.True(t, ok)
	assert.True(t, directive.Args.Emitting)
	assert.Equal(t, fuelDirective.Args.Name, directive.Args.Name)

	own, _ := fuel.Directive()
	assert.False(t, own.Args.Emitting)
	assert.False(t, fuelDirective.Args.Emitting)
}

func TestHiddenSourceOnlyHidesCell(t *testing.T) {
	testCases := []struct {
		placement setup.Placement
		visible   bool
	}{
		{setup.PointPlacement{}, true},
		{setup.DiskPlacement{Radius: 1}, true},
		{setup.CellPlacement{Cell: 10}, false},
	}
	for _, tc := range testCases {
		source := setup.NewSource("s", setup.Neutron, tc.placement).WithDirection(setup.PlusY).Hidden()
		encoder, err := New(source, cells)
		require.NoError(t, err)

		_, ok := encoder.Directive()
		assert.Equal(t, tc.visible, ok, "%T", tc.placement)
	}

	encoder, err := New(setup.NewSource("s", setup.Neutron, setup.CellPlacement{Cell: 20, Radius: radius(1)}), cells)
	require.NoError(t, err)
	_, ok := encoder.Directive()
	assert.False(t, ok, "cell without directive")
}

func TestUnsortedLineSpectrum(t *testing.T) {
	source := setup.NewSource("co60", setup.Photon, setup.PointPlacement{}).
		WithSpectrum(setup.TabulatedSpectrum{Energies: []float64{1.332, 1.173}, Weights: []float64{1, 1}, Option: "L"})

	encoder, err := New(source, nil)
	require.NoError(t, err)
	assert.Equal(t, "par=2 pos=0.0000 0.0000 0.0000 erg=d1\n"+
		"si1 L 1.3320000000e+00 1.1730000000e+00\n"+
		"sp1 1.0000000000e+00 1.0000000000e+00", encoder.Fragment().Body)
	assert.Equal(t, "co60", encoder.ID())
}

func TestSourceErrors(t *testing.T) {
	testCases := []struct {
		name   string
		source setup.Source
		cells  setup.CellLookup
		cause  error
	}{
		{"unknown particle", setup.NewSource("s", setup.Particle(0), setup.PointPlacement{}), nil, errors.ErrUnknownParticleType},
		{"no placement", setup.NewSource("s", setup.Neutron, nil), nil, errors.ErrInvalidPlacement},
		{"missing cell", setup.NewSource("s", setup.Neutron, setup.CellPlacement{Cell: 99}), cells, errors.ErrMissingCell},
		{"no lookup", setup.NewSource("s", setup.Neutron, setup.CellPlacement{Cell: 10}), nil, errors.ErrMissingCell},
		{"cell without radius", setup.NewSource("s", setup.Neutron, setup.CellPlacement{Cell: 20}), cells, errors.ErrInvalidPlacement},
		{
			"unsorted histogram spectrum",
			setup.NewSource("s", setup.Neutron, setup.PointPlacement{}).
				WithSpectrum(setup.TabulatedSpectrum{Energies: []float64{2, 1}, Weights: []float64{0, 1}, Option: "H"}),
			nil,
			errors.ErrInvalidSpectrum,
		},
		{
			"numeric si option",
			setup.NewSource("s", setup.Neutron, setup.PointPlacement{}).
				WithSpectrum(setup.TabulatedSpectrum{Energies: []float64{1}, Weights: []float64{1}, Option: "1"}),
			nil,
			errors.ErrInvalidSpectrum,
		},
		{
			"empty spectrum",
			setup.NewSource("s", setup.Neutron, setup.PointPlacement{}).WithSpectrum(setup.TabulatedSpectrum{}),
			nil,
			errors.ErrInvalidSpectrum,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoder, err := New(tc.source, tc.cells)
			assert.Nil(t, encoder)
			assert.True(t, stderrors.Is(err, tc.cause), "%v", err)
		})
	}
}
