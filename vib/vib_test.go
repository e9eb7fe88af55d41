package vib

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(Te *testing.T) {
	d, err := Read("testdata/ceo2_bulk.yaml")
	require.NoError(Te, err)
	assert.Equal(Te, 4.0, d.FUnits)
	assert.Len(Te, d.Frequencies, 15)

	_, err = Read("testdata/broken.yaml")
	assert.Error(Te, err)
	_, err = Read("testdata/nothere.yaml")
	assert.Error(Te, err)
	_, err = Decode(strings.NewReader("Frequencies: [1, 2]\n"))
	assert.Error(Te, err)
}

func TestZPE(Te *testing.T) {
	d := &Data{Frequencies: []float64{1000}, FUnits: 1}
	assert.InDelta(Te, 0.0619922, ZPE(d), 1e-6)
	d2 := &Data{Frequencies: []float64{1000, 1000, -50}, FUnits: 2}
	assert.InDelta(Te, ZPE(d), ZPE(d2), 1e-12)
}

func TestEntropy(Te *testing.T) {
	d, err := Read("testdata/single.yaml")
	require.NoError(Te, err)
	s := Entropy(d, []float64{0, 300, 600})
	assert.Equal(Te, 0.0, s[0])
	assert.InEpsilon(Te, 4.158e-6, s[1], 1e-3)
	assert.Greater(Te, s[2], s[1])

	//high temperature limit of a single mode: kB*(1 - ln x)
	hot := Entropy(d, []float64{1e6})[0]
	x := hcm * 1000 / (kB * 1e6)
	assert.InEpsilon(Te, kB/e*(1-math.Log(x)), hot, 1e-3)
}

//x/(e^x-1) - ln(1-e^-x), not x/(e^x-1) - x*ln(1-e^-x).
func TestEntropyHarmonic(Te *testing.T) {
	const t = 300.0
	for _, x := range []float64{0.5, 2, 5} {
		d := &Data{Frequencies: []float64{x * kB * t / hcm}, FUnits: 2}
		want := kB / e * (x/(math.Exp(x)-1) - math.Log(1-math.Exp(-x))) / 2
		assert.InEpsilon(Te, want, Entropy(d, []float64{t})[0], 1e-9, "x=%g", x)
	}
}

func TestFreeEnergy(Te *testing.T) {
	d := &Data{Frequencies: []float64{200, 400}, FUnits: 1}
	temps := []float64{300, 301}
	f := FreeEnergy(d, temps)
	s := Entropy(d, temps)
	assert.Less(Te, f[0], 0.0)
	//S = -dF/dT
	assert.InEpsilon(Te, -(f[1] - f[0]), (s[0]+s[1])/2, 1e-3)
}

func TestProvider(Te *testing.T) {
	p := NewProvider("testdata")
	temps := []float64{100, 200, 300}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			zpe, s, f, err := p.Vib("ceo2_bulk.yaml", temps)
			assert.NoError(Te, err)
			assert.Greater(Te, zpe, 0.0)
			assert.Len(Te, s, 3)
			assert.Len(Te, f, 3)
		}()
	}
	wg.Wait()
	assert.Len(Te, p.cache, 1)
	_, _, _, err := p.Vib("nothere.yaml", temps)
	assert.Error(Te, err)
}
