/*
 * input.go, part of gosurf.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package input reads calculation files, YAML documents that describe a phase
//diagram calculation, and runs them.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	surf "github.com/rmera/gosurf"
)

//Kinds of calculation.
const (
	KindMuVsMu = "muvsmu" //surface, chemical potential of X vs Y
	KindBulk   = "bulk"   //bulk, chemical potential of X vs Y
	KindMuVsT  = "mut"    //bulk, chemical potential of X vs temperature
	KindPVsT   = "pvt"    //surface, temperature vs pressure
	KindWulff  = "wulff"  //surface energies of several facets at one temperature and pressure
	KindSigma  = "sigma"  //surface energies of each phase along the chemical potential of Y
)

//Vib names a vibrational data file and the corrections to take from it.
type Vib struct {
	File    string `yaml:"file"`
	Entropy bool   `yaml:"entropy"`
	ZPE     bool   `yaml:"zpe"`
}

func (v Vib) source() surf.VibSource {
	return surf.VibSource{File: v.File, Entropy: v.Entropy, ZPE: v.ZPE}
}

//Reference is the bulk reference of a calculation.
type Reference struct {
	Cation float64 `yaml:"cation"`
	Anion  float64 `yaml:"anion"`
	Energy float64 `yaml:"energy"`
	FUnits float64 `yaml:"funits"`
	Color  string  `yaml:"color"`
	Vib    Vib     `yaml:"vib"`
}

//Phase is one of the competing phases.
type Phase struct {
	Label    string  `yaml:"label"`
	Cation   float64 `yaml:"cation"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Energy   float64 `yaml:"energy"`
	Area     float64 `yaml:"area"`
	FUnits   float64 `yaml:"funits"`
	NSpecies int     `yaml:"nspecies"`
	Color    string  `yaml:"color"`
	Vib      Vib     `yaml:"vib"`
}

func (p Phase) phase() surf.Phase {
	return surf.Phase{
		Cation:   p.Cation,
		X:        p.X,
		Y:        p.Y,
		Energy:   p.Energy,
		Label:    p.Label,
		Color:    p.Color,
		FUnits:   p.FUnits,
		Area:     p.Area,
		NSpecies: p.NSpecies,
		Vib:      p.Vib.source(),
	}
}

//Axis is the range of one of the variables of a diagram. A zero step
//means the default of the calculation.
type Axis struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Step  float64 `yaml:"step"`
	Label string  `yaml:"label"`
}

func (a Axis) axis() surf.Axis {
	return surf.Axis{Min: a.Min, Max: a.Max, Step: a.Step, Label: a.Label}
}

//Facet contains the surfaces of one facet, for pvt and wulff calculations.
//Bare and SurfaceEnergy are required.
type Facet struct {
	Bare          *Phase    `yaml:"bare"`
	Phases        []Phase   `yaml:"phases"`
	SurfaceEnergy *float64  `yaml:"surface_energy"` //J/m^2, of the bare surface
	Coverage      []float64 `yaml:"coverage"`       //n/m^2, optional
}

//validate returns an error if a required section of the facet is absent.
func (f Facet) validate(name string) error {
	if len(f.Phases) == 0 {
		return fmt.Errorf("facet %s without phases: %w", name, surf.ErrNoPhases)
	}
	if f.Bare == nil {
		return fmt.Errorf("facet %s without bare surface: %w", name, surf.ErrMissingParameter)
	}
	if f.SurfaceEnergy == nil {
		return fmt.Errorf("facet %s without surface_energy: %w", name, surf.ErrMissingParameter)
	}
	return nil
}

//Output tells where to write the results. Empty fields are not written.
type Output struct {
	Plot     string `yaml:"plot"`     //image file, format given by the extension
	Pressure string `yaml:"pressure"` //image file with pressure axes
	Archive  string `yaml:"archive"`  //JSON archive, compressed if it ends in .zst
}

//Calculation is the content of a calculation file.
type Calculation struct {
	Kind      string    `yaml:"kind"`
	Title     string    `yaml:"title"`
	Reference Reference `yaml:"reference"`
	Phases    []Phase   `yaml:"phases"`

	X           Axis    `yaml:"x"`
	Y           Axis    `yaml:"y"`
	T           Axis    `yaml:"t"`
	Mu          Axis    `yaml:"mu"`
	XEnergy     float64 `yaml:"xenergy"`
	YEnergy     float64 `yaml:"yenergy"`
	ZEnergy     float64 `yaml:"zenergy"`
	MuZ         float64 `yaml:"muz"`
	Temperature float64 `yaml:"temperature"`

	//NIST-JANAF tables for the temperature corrections.
	XCorrection string `yaml:"xcorrection"`
	ZCorrection string `yaml:"zcorrection"`
	Thermochem  string `yaml:"thermochem"`

	//pvt calculations use Bare, Phases, SurfaceEnergy and Coverage,
	//wulff calculations one Facet for each facet.
	Bare          *Phase           `yaml:"bare"`
	SurfaceEnergy *float64         `yaml:"surface_energy"`
	Coverage      []float64        `yaml:"coverage"`
	Facets        map[string]Facet `yaml:"facets"`
	Adsorbant     *float64         `yaml:"adsorbant"`
	LogP          Axis             `yaml:"logp"`
	Pressure      float64          `yaml:"pressure"` //log10 of the pressure in bar, for wulff

	Output Output `yaml:"output"`

	dir string
}

//Decode reads a calculation from r. Relative file names in the calculation
//are taken from the directory dir.
func Decode(r io.Reader, dir string) (*Calculation, error) {
	c := new(Calculation)
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(c); err != nil {
		return nil, fmt.Errorf("decoding calculation: %w", err)
	}
	c.dir = dir
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

//Load reads the calculation in the file path.
func Load(path string) (*Calculation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening calculation: %w", err)
	}
	defer f.Close()
	c, err := Decode(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

//Validate checks that the sections needed by the kind of the calculation are present.
//The values themselves are checked when the calculation runs.
func (c *Calculation) Validate() error {
	switch c.Kind {
	case KindMuVsMu, KindBulk, KindMuVsT, KindSigma:
		if len(c.Phases) == 0 {
			return fmt.Errorf("%s calculation without phases: %w", c.Kind, surf.ErrNoPhases)
		}
		if c.Reference.Cation == 0 {
			return fmt.Errorf("%s calculation without reference: %w", c.Kind, surf.ErrMissingParameter)
		}
	case KindPVsT:
		if err := c.facet().validate("pvt"); err != nil {
			return err
		}
		if c.Adsorbant == nil {
			return fmt.Errorf("pvt calculation without adsorbant: %w", surf.ErrMissingParameter)
		}
	case KindWulff:
		if len(c.Facets) == 0 {
			return fmt.Errorf("wulff calculation without facets: %w", surf.ErrNoPhases)
		}
		for name, f := range c.Facets {
			if err := f.validate(name); err != nil {
				return err
			}
		}
		if c.Adsorbant == nil {
			return fmt.Errorf("wulff calculation without adsorbant: %w", surf.ErrMissingParameter)
		}
	case "":
		return fmt.Errorf("calculation kind not given: %w", surf.ErrMissingParameter)
	default:
		return fmt.Errorf("unknown calculation kind %q: %w", c.Kind, surf.ErrInvalidConfig)
	}
	return nil
}

//Path returns the path of file, relative to the directory of the calculation file.
func (c *Calculation) Path(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.dir, file)
}

//facet returns the facet described by the top level of a pvt calculation.
func (c *Calculation) facet() Facet {
	return Facet{Bare: c.Bare, Phases: c.Phases, SurfaceEnergy: c.SurfaceEnergy, Coverage: c.Coverage}
}
