package surf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

//fixed providers for the tests.
type constShift float64

func (c constShift) Shift(temps []float64) ([]float64, error) {
	ret := make([]float64, len(temps))
	for i := range ret {
		ret[i] = float64(c)
	}
	return ret, nil
}

type failShift struct{}

func (failShift) Shift(temps []float64) ([]float64, error) {
	return nil, fmt.Errorf("no table")
}

type linearVib struct {
	zpe   float64
	slope float64
	calls int
}

func (l *linearVib) Vib(source string, temps []float64) (float64, []float64, []float64, error) {
	l.calls++
	s := make([]float64, len(temps))
	f := make([]float64, len(temps))
	for i, t := range temps {
		s[i] = l.slope * t
		f[i] = -t * s[i]
	}
	return l.zpe, s, f, nil
}

func ceria() (Reference, []Phase) {
	ref := Reference{Cation: 1, Anion: 2, Energy: -100, FUnits: 1}
	phases := []Phase{
		{Cation: 24, X: 48, Y: 2, Area: 60.22, Energy: -600, Label: "One", NSpecies: 1},
		{Cation: 24, X: 48, Y: 0, Area: 60.22, Energy: -575, Label: "Stoich", NSpecies: 1},
	}
	return ref, phases
}

func TestMuVsMu(Te *testing.T) {
	ref, phases := ceria()
	in := MuVsMuInput{
		Reference: ref,
		Phases:    phases,
		X:         Axis{Min: 0, Max: 10, Label: "O"},
		Y:         Axis{Min: 0, Max: 10, Label: "H_2O"},
	}
	d, err := MuVsMu(in)
	require.NoError(Te, err)
	r, c := d.Dims()
	assert.Equal(Te, 400, r)
	assert.Equal(Te, 400, c)
	//phases are sorted by Y, so "One" is phase 2, and wins everywhere.
	assert.Equal(Te, []int{2}, d.Ticks)
	assert.Equal(Te, []string{"One"}, d.Labels)
	for _, v := range d.Phases.Data {
		require.Equal(Te, 0, v)
	}
	assert.Equal(Te, UnitsSurface, d.Units)
	assert.Equal(Te, "Stoich", phases[1].Label) //input untouched
}

func TestMuVsMuShift(Te *testing.T) {
	ref, phases := ceria()
	in := MuVsMuInput{
		Reference: ref,
		Phases:    phases,
		X:         Axis{Min: 0, Max: 1, Step: 0.5},
		Y:         Axis{Min: 0, Max: 1, Step: 0.5},
		XEnergy:   -5,
		YEnergy:   -10,
	}
	d, err := MuVsMu(in)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{5, 5.5}, d.X)
	assert.Equal(Te, []float64{10, 10.5}, d.Y)
}

//With two phases that differ only in Y, the bare one is stable at negative
//chemical potentials of Y and the other at positive ones.
func TestMuVsMuCrossover(Te *testing.T) {
	ref := Reference{Cation: 1, Anion: 2, Energy: -100, FUnits: 1}
	phases := []Phase{
		{Cation: 24, X: 48, Y: 2, Area: 60.22, Energy: -575, Label: "Ads", NSpecies: 1},
		{Cation: 24, X: 48, Y: 0, Area: 60.22, Energy: -575, Label: "Bare", NSpecies: 1},
	}
	d, err := MuVsMu(MuVsMuInput{
		Reference: ref,
		Phases:    phases,
		X:         Axis{Min: -1, Max: 1, Step: 0.5},
		Y:         Axis{Min: -5, Max: 5.5, Step: 0.5},
	})
	require.NoError(Te, err)
	assert.Equal(Te, []string{"Bare", "Ads"}, d.Labels)
	for i, y := range d.Y {
		for j := range d.X {
			if y <= 0 {
				require.Equal(Te, "Bare", d.Label(i, j), "mu_y %g", y)
			} else {
				require.Equal(Te, "Ads", d.Label(i, j), "mu_y %g", y)
			}
		}
	}
}

func TestMuVsMuIdempotent(Te *testing.T) {
	ref := Reference{Cation: 1, Anion: 2, Energy: -100, FUnits: 1}
	phases := []Phase{
		{Cation: 24, X: 48, Y: 0, Area: 60.22, Energy: -575, Label: "A", NSpecies: 1},
		{Cation: 24, X: 46, Y: 2, Area: 60.22, Energy: -560, Label: "B", NSpecies: 1},
		{Cation: 24, X: 47, Y: 4, Area: 60.22, Energy: -590, Label: "C", NSpecies: 1},
	}
	in := MuVsMuInput{Reference: ref, Phases: phases, X: Axis{Min: -3, Max: 0}, Y: Axis{Min: -3, Max: 0}}
	o := DefaultOptions()
	o.Cpus(1)
	d1, err := MuVsMu(in, o)
	require.NoError(Te, err)
	o2 := DefaultOptions()
	o2.Cpus(8)
	d2, err := MuVsMu(in, o2)
	require.NoError(Te, err)
	assert.True(Te, d1.Equal(d2))
	d3, err := MuVsMu(in)
	require.NoError(Te, err)
	assert.True(Te, d1.Equal(d3))
}

func TestMuVsMuErrors(Te *testing.T) {
	ref, phases := ceria()
	good := MuVsMuInput{Reference: ref, Phases: phases, X: Axis{Min: 0, Max: 1}, Y: Axis{Min: 0, Max: 1}}

	in := good
	in.Phases = nil
	_, err := MuVsMu(in)
	assert.True(Te, errors.Is(err, ErrNoPhases))

	in = good
	in.Phases = []Phase{{Cation: 24, X: 48, Energy: -575, Label: "noarea"}}
	_, err = MuVsMu(in)
	assert.True(Te, errors.Is(err, ErrMissingParameter))

	in = good
	in.Reference.FUnits = 0
	_, err = MuVsMu(in)
	assert.True(Te, errors.Is(err, ErrInvalidConfig))

	in = good
	in.X = Axis{Min: 1, Max: 0}
	_, err = MuVsMu(in)
	assert.True(Te, errors.Is(err, ErrInvalidConfig))
	var e *Error
	require.True(Te, errors.As(err, &e))
	assert.Contains(Te, e.Decorate(""), "MuVsMu")
}

func TestMuVsMuLogs(Te *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	o := DefaultOptions()
	o.Logger(zap.New(core))
	ref, phases := ceria()
	_, err := MuVsMu(MuVsMuInput{Reference: ref, Phases: phases, X: Axis{Min: 0, Max: 1}, Y: Axis{Min: 0, Max: 1}}, o)
	require.NoError(Te, err)
	assert.Equal(Te, 1, logs.FilterMessage("starting calculation").Len())
	assert.Equal(Te, 1, logs.FilterMessage("phase never stable").Len())
	assert.Equal(Te, 1, logs.FilterMessage("a single phase is stable over the whole grid").Len())
}

func TestBulkMuVsMu(Te *testing.T) {
	ref := Reference{Cation: 1, Anion: 2, Energy: -100, FUnits: 1}
	phases := []Phase{
		{Cation: 10, X: 0, Y: 0, Energy: -90, FUnits: 1, Label: "A"},
		{Cation: 10, X: 1, Y: 0, Energy: -90, FUnits: 1, Label: "B"},
	}
	d, err := BulkMuVsMu(BulkMuVsMuInput{
		Reference: ref,
		Phases:    phases,
		X:         Axis{Min: -1, Max: 1, Step: 0.5},
		Y:         Axis{Min: 0, Max: 0.01},
	})
	require.NoError(Te, err)
	assert.Equal(Te, UnitsBulk, d.Units)
	assert.Len(Te, d.Y, 2)
	//B has one more unit of X: more stable for mu_x > 0
	for i := range d.Y {
		for j, x := range d.X {
			want := "A"
			if x > 0 {
				want = "B"
			}
			assert.Equal(Te, want, d.Label(i, j))
		}
	}
	//A is 910 - 0 everywhere
	assert.InDelta(Te, 910.0, d.Energy.At(0, 0), 1e-9)
}

func TestBulkMuVsMuVib(Te *testing.T) {
	ref := Reference{Cation: 1, Anion: 2, Energy: -100, FUnits: 1, Vib: VibSource{File: "ref", ZPE: true, Entropy: true}}
	phases := []Phase{{Cation: 10, Energy: -90, FUnits: 1, Label: "A", Vib: VibSource{File: "a", ZPE: true, Entropy: true}}}
	in := BulkMuVsMuInput{Reference: ref, Phases: phases, X: Axis{Min: 0, Max: 0.01}, Y: Axis{Min: 0, Max: 0.01}, Temperature: 100}
	_, err := BulkMuVsMu(in)
	assert.True(Te, errors.Is(err, ErrMissingParameter))

	v := &linearVib{zpe: 0.1, slope: 1e-5}
	in.Vib = v
	d, err := BulkMuVsMu(in)
	require.NoError(Te, err)
	assert.Equal(Te, 2, v.calls)
	//(-90 + 0.1 - 100*1e-3) - 10*((-100 + 0.1) - 100*1e-3)
	assert.InDelta(Te, -90.0+1000.0, d.Energy.At(0, 0), 1e-9)
}

func TestMuVsT(Te *testing.T) {
	ref := Reference{Cation: 1, Anion: 2, Energy: -100, FUnits: 1}
	phases := []Phase{
		{Cation: 1, X: 0, Y: 1, Energy: -60, FUnits: 1, Label: "Z"},
		{Cation: 1, X: 1, Y: 0, Energy: -55, FUnits: 1, Label: "X"},
	}
	in := MuVsTInput{
		Reference:   ref,
		Phases:      phases,
		X:           Axis{Min: -2.25, Max: 2, Step: 0.5, Label: "mu X"},
		T:           Axis{Min: 100, Max: 110},
		MuZ:         0,
		XEnergy:     -5,
		ZEnergy:     -10,
		XCorrection: constShift(-0.5),
	}
	d, err := MuVsT(in)
	require.NoError(Te, err)
	assert.Len(Te, d.Y, 10)
	assert.Len(Te, d.X, 9)
	assert.Equal(Te, "Temperature (K)", d.YLabel)
	//phases are sorted by Y: X first.
	//X: 45 - mu - (-5.5) = 50.5 - mu; Z: 40 + 10 = 50. X wins when mu > 0.5
	for i := range d.Y {
		for j, mu := range d.X {
			want := "Z"
			if mu > 0.5 {
				want = "X"
			}
			require.Equal(Te, want, d.Label(i, j), "mu %g", mu)
		}
	}
	assert.InDelta(Te, 50.0, d.Energy.At(0, 0), 1e-9)

	in.ZCorrection = failShift{}
	_, err = MuVsT(in)
	assert.True(Te, errors.Is(err, ErrExternal))
}

func TestMuVsTEntropy(Te *testing.T) {
	ref := Reference{Cation: 1, Anion: 2, Energy: -100, FUnits: 1, Vib: VibSource{File: "ref", Entropy: true}}
	phases := []Phase{{Cation: 1, X: 0, Y: 0, Energy: -60, FUnits: 2, Label: "P", Vib: VibSource{File: "p", Entropy: true}}}
	v := &linearVib{slope: 1e-6}
	d, err := MuVsT(MuVsTInput{Reference: ref, Phases: phases, X: Axis{Min: 0, Max: 0.1}, T: Axis{Min: 0, Max: 1000, Step: 100}, Vib: v})
	require.NoError(Te, err)
	for i, t := range d.Y {
		s := 1e-6 * t
		//40 - (T*S*2 - T*S)
		assert.InDelta(Te, 40-t*s, d.Energy.At(i, 0), 1e-9)
	}
}

func TestPVsT(Te *testing.T) {
	bare := Phase{Cation: 24, X: 48, Y: 0, Area: 60.22, Energy: -530, Label: "0"}
	phases := []Phase{
		{Cation: 24, X: 48, Y: 4, Area: 60.22, Energy: -670, Label: "2"},
		{Cation: 24, X: 48, Y: 2, Area: 60.22, Energy: -620, Label: "1"},
	}
	d, err := PVsT(PVsTInput{Bare: bare, Phases: phases, SurfaceEnergy: 1, Adsorbant: -10, Thermochem: constShift(-0.1)})
	require.NoError(Te, err)
	assert.Len(Te, d.X, 998)
	assert.Len(Te, d.Y, 185)
	assert.Equal(Te, 2.0, d.X[0])
	assert.InDelta(Te, -13.0, d.Y[0], 1e-12)
	assert.Equal(Te, []int{3}, d.Ticks)
	assert.Equal(Te, []string{"2"}, d.Labels)
	for _, v := range d.Phases.Data {
		require.Equal(Te, 0, v)
	}
	assert.Equal(Te, "Temperature (K)", d.XLabel)
	assert.Equal(Te, "log P (bar)", d.YLabel)
}

func TestPVsTZeroCoverage(Te *testing.T) {
	bare := Phase{Cation: 24, X: 48, Label: "bare", Energy: -530}
	phases := []Phase{
		{Cation: 24, X: 48, Y: 2, Energy: -620, Label: "1"},
		{Cation: 24, X: 48, Y: 4, Energy: -670, Label: "2"},
	}
	d, err := PVsT(PVsTInput{
		Bare:          bare,
		Phases:        phases,
		SurfaceEnergy: 0.75,
		Adsorbant:     -10,
		Coverage:      []float64{0, 0},
		T:             Axis{Min: 100, Max: 200, Step: 10},
		LogP:          Axis{Min: -2, Max: 2, Step: 0.5},
	})
	require.NoError(Te, err)
	assert.Equal(Te, []int{1}, d.Ticks)
	for i := range d.Y {
		for j := range d.X {
			require.Equal(Te, 0, d.At(i, j))
			require.Equal(Te, 0.75, d.Energy.At(i, j))
		}
	}
}

func TestPVsTErrors(Te *testing.T) {
	bare := Phase{Cation: 24, X: 48, Energy: -530, Label: "bare"}
	phases := []Phase{{Cation: 24, X: 48, Y: 2, Energy: -620}}
	_, err := PVsT(PVsTInput{Bare: bare, Phases: phases, SurfaceEnergy: 1, Adsorbant: -10})
	assert.True(Te, errors.Is(err, ErrMissingParameter)) //no area to derive coverages
	_, err = PVsT(PVsTInput{Bare: bare, Phases: phases, SurfaceEnergy: 1, Adsorbant: -10, Coverage: []float64{1, 2}})
	assert.True(Te, errors.Is(err, ErrInvalidConfig))
	_, err = PVsT(PVsTInput{Bare: bare, Phases: []Phase{{Cation: 24, Energy: -600}}, SurfaceEnergy: 1, Adsorbant: -10, Coverage: []float64{1e18}})
	assert.True(Te, errors.Is(err, ErrInvalidConfig))
	_, err = PVsT(PVsTInput{Bare: bare, SurfaceEnergy: 1})
	assert.True(Te, errors.Is(err, ErrNoPhases))
	_, err = PVsT(PVsTInput{Bare: bare, Phases: phases, SurfaceEnergy: 1, Adsorbant: -10, Coverage: []float64{1e18}, Thermochem: failShift{}})
	assert.True(Te, errors.Is(err, ErrExternal))
	_, err = PVsT(PVsTInput{Bare: bare, Phases: phases, SurfaceEnergy: 1, Adsorbant: -10, Coverage: []float64{1e18}, T: Axis{Min: -10, Max: 10, Step: 1}})
	assert.True(Te, errors.Is(err, ErrInvalidConfig))
}

func TestPVsTMissing(Te *testing.T) {
	full := PVsTInput{
		Bare:          Phase{Cation: 24, X: 48, Energy: -530, Label: "bare"},
		Phases:        []Phase{{Cation: 24, X: 48, Y: 2, Energy: -620, Label: "1"}},
		SurfaceEnergy: 1,
		Adsorbant:     -10,
		Coverage:      []float64{1e18},
		T:             Axis{Min: 100, Max: 200, Step: 50},
		LogP:          Axis{Min: -1, Max: 1, Step: 1},
	}
	_, err := PVsT(full)
	require.NoError(Te, err)
	cases := map[string]func(in *PVsTInput){
		"bare":           func(in *PVsTInput) { in.Bare = Phase{} },
		"bare energy":    func(in *PVsTInput) { in.Bare.Energy = 0 },
		"bare label":     func(in *PVsTInput) { in.Bare.Label = "" },
		"surface energy": func(in *PVsTInput) { in.SurfaceEnergy = 0 },
		"adsorbant":      func(in *PVsTInput) { in.Adsorbant = 0 },
	}
	for name, f := range cases {
		in := full
		f(&in)
		_, err := PVsT(in)
		assert.True(Te, errors.Is(err, ErrMissingParameter), name)
		_, err = WulffSlice(WulffInput{PVsTInput: in, Temperature: 300})
		assert.True(Te, errors.Is(err, ErrMissingParameter), name)
	}
	in := full
	in.Bare.X = -1
	_, err = PVsT(in)
	assert.True(Te, errors.Is(err, ErrInvalidConfig))
}

func TestWulffSlice(Te *testing.T) {
	bare := Phase{Cation: 24, X: 48, Y: 0, Area: 60.22, Energy: -530, Label: "bare"}
	phases := []Phase{
		{Cation: 24, X: 48, Y: 2, Area: 60.22, Energy: -620, Label: "one"},
	}
	in := WulffInput{
		PVsTInput:   PVsTInput{Bare: bare, Phases: phases, SurfaceEnergy: 1, Adsorbant: -10},
		Temperature: 300,
		LogP:        0,
	}
	w, err := WulffSlice(in)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"bare", "one"}, w.Labels)
	assert.Equal(Te, 1.0, w.Energies[0])
	cov := Coverage(phases)[0]
	ae := AdsorptionEnergy(-620, -530, 2, -10) * EVToJPerMol
	assert.InDelta(Te, 1+cov/Avogadro*ae, w.Energies[1], 1e-9)
	assert.Equal(Te, 1, w.Stable)
	assert.Equal(Te, w.Energies[1], w.Min())
	assert.Equal(Te, 1, w.Diagram.NPhases())

	//very unfavourable adsorption
	in.Phases = []Phase{{Cation: 24, X: 48, Y: 2, Area: 60.22, Energy: -400, Label: "one"}}
	w, err = WulffSlice(in)
	require.NoError(Te, err)
	assert.Equal(Te, 0, w.Stable)
	assert.Equal(Te, 1.0, w.Min())

	e, err := WulffEnergies(map[string]WulffInput{"100": in, "111": {PVsTInput: in.PVsTInput, Temperature: 300}})
	require.NoError(Te, err)
	assert.Equal(Te, map[string]float64{"100": 1, "111": 1}, e)
}

func TestSurfaceModelsRejectVib(Te *testing.T) {
	vib := VibSource{File: "v.yaml", ZPE: true}
	ref, phases := ceria()
	phases[1].Vib = vib
	phases[1].FUnits = 1
	_, err := MuVsMu(MuVsMuInput{Reference: ref, Phases: phases, X: Axis{Min: 0, Max: 1}, Y: Axis{Min: 0, Max: 1}})
	assert.True(Te, errors.Is(err, ErrInvalidConfig))
	_, err = SigmaVsMu(SigmaVsMuInput{Reference: ref, Phases: phases, Mu: Axis{Min: 0, Max: 1}})
	assert.True(Te, errors.Is(err, ErrInvalidConfig))

	ref, phases = ceria()
	ref.Vib = vib
	_, err = MuVsMu(MuVsMuInput{Reference: ref, Phases: phases, X: Axis{Min: 0, Max: 1}, Y: Axis{Min: 0, Max: 1}})
	assert.True(Te, errors.Is(err, ErrInvalidConfig))

	bare := Phase{Cation: 24, X: 48, Energy: -530, Label: "bare", FUnits: 1, Vib: vib}
	_, err = PVsT(PVsTInput{
		Bare:          bare,
		Phases:        []Phase{{Cation: 24, X: 48, Y: 2, Energy: -620, Label: "1"}},
		SurfaceEnergy: 1,
		Adsorbant:     -10,
		Coverage:      []float64{1e18},
	})
	assert.True(Te, errors.Is(err, ErrInvalidConfig))
}
