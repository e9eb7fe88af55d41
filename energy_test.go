package surf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestSurfaceEnergy(Te *testing.T) {
	mux := mat.NewDense(1, 1, []float64{1})
	muy := mat.NewDense(1, 1, []float64{2})
	se := SurfaceEnergy(mux, muy, 3, 4, 5, 6, 7)
	assert.InDelta(Te, -49, se.At(0, 0)/EVPerA2ToJPerM2, 1e-12)
	assert.InDelta(Te, -49*16.021, se.At(0, 0), 0.05)
}

func TestBulkEnergy(Te *testing.T) {
	mux, muy := Grids([]float64{0, 1}, []float64{0, 1})
	e := BulkEnergy(mux, muy, -1, -2, 2, 3, 10)
	//10 - 2mux - 3muy + 2 + 6
	assert.Equal(Te, []float64{18, 16, 15, 13}, e.RawMatrix().Data)
}

func TestMuTEnergy(Te *testing.T) {
	temps := []float64{100, 200}
	x := []float64{-1, 0, 1}
	ref := ResolvedReference{Reference: Reference{Cation: 1, Anion: 1, Energy: -10, FUnits: 1}}
	ref.Svib = []float64{0.001, 0.002}
	p := ResolvedPhase{Phase: Phase{Cation: 2, X: 1, Y: 1, Energy: -25, FUnits: 1}}
	p.Svib = []float64{0.003, 0.004}
	t := MuTTerms{
		MuX:     XGrid(x, temps),
		MuZ:     -0.5,
		XEnergy: -4,
		ZEnergy: -6,
		XCorr:   RowGrid([]float64{-0.1, -0.2}, len(x)),
		PhaseTS: TSGrid(p.Svib, temps, len(x)),
		RefTS:   TSGrid(ref.Svib, temps, len(x)),
	}
	norm := BulkTNormalisation(p, ref)
	e := MuTEnergy(t, p, ref, norm)
	for i, temp := range temps {
		for j, mu := range x {
			xc := -0.1
			if i == 1 {
				xc = -0.2
			}
			want := norm - mu - (-0.5) - (-4 + xc) - (-6) - (temp*p.Svib[i] - 2*temp*ref.Svib[i])
			assert.InDelta(Te, want, e.At(i, j), 1e-12)
		}
	}
	//nil grids count as 0
	t2 := MuTTerms{MuX: t.MuX, MuZ: t.MuZ, XEnergy: t.XEnergy, ZEnergy: t.ZEnergy}
	e2 := MuTEnergy(t2, p, ref, norm)
	assert.InDelta(Te, norm-(-1)+0.5+4+6, e2.At(0, 0), 1e-12)
}

func TestCoverageEnergy(Te *testing.T) {
	t := []float64{1, 2, 3}
	lnp := []float64{1, 2}
	se := CoverageEnergy(1.0, 0, nil, t, lnp)
	r, c := se.Dims()
	assert.Equal(Te, 2, r)
	assert.Equal(Te, 3, c)
	assert.Equal(Te, []float64{1, 1, 1, 1, 1, 1}, se.RawMatrix().Data)

	ae := []float64{-1000, -2000, -3000}
	cov := 1e18
	e := CoverageEnergy(1.0, cov, ae, t, lnp)
	for i := range lnp {
		for j := range t {
			want := 1.0 + cov/Avogadro*(ae[j]-GasConstant*t[j]*lnp[i])
			assert.InDelta(Te, want, e.At(i, j), 1e-12)
		}
	}
}
