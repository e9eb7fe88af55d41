/*
 * vib.go, part of gosurf.
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

//Package vib obtains zero point energies, vibrational entropies and
//free energies, in the harmonic approximation, from the vibrational
//frequencies of a system.
package vib

import (
	"io"
	"math"
	"os"

	"github.com/goccy/go-yaml"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/unit/constant"
)

const (
	h  = float64(constant.Planck)
	c  = float64(constant.LightSpeedInVacuum)
	kB = float64(constant.Boltzmann)
	e  = float64(constant.ElementaryCharge)

	//hcm is h*c in J cm, so hcm times a wavenumber in cm^-1 gives joules.
	hcm = h * c * 100
)

//Data contains the vibrational frequencies of a system and
//the number of formula units it has.
type Data struct {
	Frequencies []float64 `yaml:"Frequencies"` //cm^-1
	FUnits      float64   `yaml:"F-Units"`
}

//Validate returns an error if the data can not be used.
func (d *Data) Validate() error {
	if d.FUnits <= 0 {
		return newError("Validate", "formula units must be positive, got %g", d.FUnits)
	}
	if len(d.Frequencies) == 0 {
		return newError("Validate", "no frequencies given")
	}
	for _, v := range d.Frequencies {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newError("Validate", "non-finite frequency")
		}
	}
	return nil
}

//Decode reads vibrational data in YAML format from r. The document needs
//the keys Frequencies (a list, in cm^-1) and F-Units.
func Decode(r io.Reader) (*Data, error) {
	d := new(Data)
	if err := yaml.NewDecoder(r).Decode(d); err != nil {
		return nil, wrapError(err, "Decode", "decoding vibrational data")
	}
	if err := d.Validate(); err != nil {
		return nil, errDecorate(err, "Decode")
	}
	return d, nil
}

//Read reads vibrational data from the YAML file path.
func Read(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapError(err, "Read", path)
	}
	defer f.Close()
	d, err := Decode(f)
	if err != nil {
		return nil, errDecorate(err, "Read "+path)
	}
	return d, nil
}

//real returns the positive frequencies in d. Imaginary modes, normally given
//as negative numbers, and zero modes do not contribute.
func (d *Data) real() []float64 {
	ret := make([]float64, 0, len(d.Frequencies))
	for _, v := range d.Frequencies {
		if v > 0 {
			ret = append(ret, v)
		}
	}
	return ret
}

//ZPE returns the zero point energy in eV per formula unit.
func ZPE(d *Data) float64 {
	f := d.real()
	return 0.5 * hcm * floats.Sum(f) / e / d.FUnits
}

//Entropy returns the vibrational entropy, in eV/K per formula unit, at each
//temperature in temps. The entropy is 0 for temperatures <= 0.
func Entropy(d *Data, temps []float64) []float64 {
	f := d.real()
	ret := make([]float64, len(temps))
	for i, t := range temps {
		if t <= 0 {
			continue
		}
		var s float64
		for _, v := range f {
			x := hcm * v / (kB * t)
			s += x/math.Expm1(x) - math.Log1p(-math.Exp(-x))
		}
		ret[i] = s * kB / e / d.FUnits
	}
	return ret
}

//FreeEnergy returns the vibrational free energy, without the zero point
//energy, in eV per formula unit, at each temperature in temps.
func FreeEnergy(d *Data, temps []float64) []float64 {
	f := d.real()
	ret := make([]float64, len(temps))
	for i, t := range temps {
		if t <= 0 {
			continue
		}
		var a float64
		for _, v := range f {
			x := hcm * v / (kB * t)
			a += math.Log1p(-math.Exp(-x))
		}
		ret[i] = a * kB * t / e / d.FUnits
	}
	return ret
}
