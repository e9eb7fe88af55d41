package surfjson

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	surf "github.com/rmera/gosurf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDiagram(Te *testing.T) *surf.Diagram {
	ref := surf.Reference{Cation: 1, Anion: 2, Energy: -100, FUnits: 1}
	phases := []surf.Phase{
		{Cation: 24, X: 48, Y: 0, Area: 60.22, Energy: -575, Label: "Bare", Color: "red", NSpecies: 1},
		{Cation: 24, X: 48, Y: 2, Area: 60.22, Energy: -575, Label: "Ads", NSpecies: 1},
	}
	d, err := surf.MuVsMu(surf.MuVsMuInput{
		Reference: ref,
		Phases:    phases,
		X:         surf.Axis{Min: -1, Max: 0, Step: 0.25, Label: "O"},
		Y:         surf.Axis{Min: -1, Max: 1, Step: 0.25, Label: "H_2O"},
	})
	require.NoError(Te, err)
	return d
}

func TestRoundTrip(Te *testing.T) {
	d := testDiagram(Te)
	d.Energy.Set(0, 0, math.NaN())
	h := NewHeader("muvsmu", map[string]string{"input": "test.yaml"})
	var b bytes.Buffer
	require.NoError(Te, Write(&b, d, h))
	d2, h2, err := Read(&b)
	require.NoError(Te, err)
	assert.True(Te, d.Equal(d2))
	assert.Equal(Te, h.ID, h2.ID)
	assert.Equal(Te, "muvsmu", h2.Kind)
	assert.True(Te, h.Created.Equal(h2.Created))
	assert.Equal(Te, "test.yaml", h2.Params["input"])
}

func TestSaveLoad(Te *testing.T) {
	d := testDiagram(Te)
	dir := Te.TempDir()
	for _, name := range []string{"d.json", "d.json.zst"} {
		path := filepath.Join(dir, name)
		h := NewHeader("muvsmu", nil)
		require.NoError(Te, Save(path, d, h))
		d2, h2, err := Load(path)
		require.NoError(Te, err)
		assert.True(Te, d.Equal(d2), name)
		assert.Equal(Te, h.ID, h2.ID)
	}
	_, _, err := Load(filepath.Join(dir, "nothere.json"))
	assert.Error(Te, err)
}

func TestReadInvalid(Te *testing.T) {
	for _, s := range []string{
		`not json`,
		`{"diagram":{"x":[],"y":[]}}`,
		`{"diagram":{"x":[1],"y":[1],"phases":[0,0],"energy":[1],"ticks":[1],"labels":["a"],"colors":[""]}}`,
		`{"diagram":{"x":[1],"y":[1],"phases":[3],"energy":[1],"ticks":[1],"labels":["a"],"colors":[""]}}`,
		`{"diagram":{"x":[1],"y":[1],"phases":[0],"energy":[1],"ticks":[1],"labels":[],"colors":[""]}}`,
	} {
		_, _, err := Read(strings.NewReader(s))
		assert.Error(Te, err, s)
	}
	d, _, err := Read(strings.NewReader(`{"diagram":{"x":[1],"y":[1],"phases":[0],"energy":[null],"ticks":[1],"labels":["a"],"colors":[""]}}`))
	require.NoError(Te, err)
	assert.True(Te, math.IsNaN(d.Energy.At(0, 0)))
}
