/*
 * data.go, part of gosurf.
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

package surf

import (
	"math"
)

//VibSource tells whether, and from where, the vibrational corrections of
//an entity are to be obtained.
type VibSource struct {
	File    string //frequency source given to the VibrationalProvider
	Entropy bool   //use the vibrational entropy
	ZPE     bool   //use the zero point energy
}

//Enabled returns true if any correction is requested.
func (v VibSource) Enabled() bool {
	return v.Entropy || v.ZPE
}

//Reference is the reference (normally bulk) entity to which the phase
//energies are normalised.
type Reference struct {
	Cation float64 //number of cations
	Anion  float64 //number of anions
	Energy float64 //total DFT energy, eV
	FUnits float64 //number of formula units
	Color  string
	Vib    VibSource
}

//Validate returns an error if the reference can not be used in a calculation.
func (r Reference) Validate() error {
	if !finite(r.Cation, r.Anion, r.Energy, r.FUnits) {
		return newError(ErrInvalidConfig, "Reference.Validate", "non-finite value in reference %+v", r)
	}
	if r.Cation <= 0 {
		return newError(ErrInvalidConfig, "Reference.Validate", "reference cation count must be positive, got %g", r.Cation)
	}
	if r.FUnits <= 0 {
		return newError(ErrInvalidConfig, "Reference.Validate", "reference formula units must be positive, got %g", r.FUnits)
	}
	if r.Anion < 0 {
		return newError(ErrInvalidConfig, "Reference.Validate", "reference anion count must not be negative, got %g", r.Anion)
	}
	if r.Vib.Enabled() && r.Vib.File == "" {
		return newError(ErrMissingParameter, "Reference.Validate", "vibrational corrections requested but no frequency source given")
	}
	return nil
}

//Phase is one of the candidate compositions that compete for stability.
type Phase struct {
	Cation   float64 //number of cations
	X        float64 //number of units of the species on the X axis
	Y        float64 //number of units of the species on the Y axis
	Energy   float64 //total DFT energy, eV
	Label    string
	Color    string
	FUnits   float64 //formula units, only needed with vibrational corrections
	Area     float64 //surface area in Å^2, needed by the surface models
	NSpecies int     //1 if the X species is a constituent of the lattice, 0 if it is adsorbed
	Vib      VibSource
}

//Validate returns an error if the phase can not be used in a calculation.
//If area is true, a positive surface area is required.
func (p Phase) Validate(area bool) error {
	if !finite(p.Cation, p.X, p.Y, p.Energy, p.FUnits, p.Area) {
		return newError(ErrInvalidConfig, "Phase.Validate", "non-finite value in phase %q", p.Label)
	}
	if p.X < 0 || p.Y < 0 {
		return newError(ErrInvalidConfig, "Phase.Validate", "phase %q has negative species counts x=%g y=%g", p.Label, p.X, p.Y)
	}
	if p.Cation < 0 {
		return newError(ErrInvalidConfig, "Phase.Validate", "phase %q has a negative cation count", p.Label)
	}
	if area {
		if p.Area == 0 {
			return newError(ErrMissingParameter, "Phase.Validate", "phase %q has no surface area", p.Label)
		}
		if p.Area < 0 {
			return newError(ErrInvalidConfig, "Phase.Validate", "phase %q has a negative surface area %g", p.Label, p.Area)
		}
	}
	if p.Vib.Enabled() {
		if p.Vib.File == "" {
			return newError(ErrMissingParameter, "Phase.Validate", "phase %q requests vibrational corrections but has no frequency source", p.Label)
		}
		if p.FUnits <= 0 {
			return newError(ErrMissingParameter, "Phase.Validate", "phase %q requests vibrational corrections but has no formula units", p.Label)
		}
	}
	return nil
}

//Vibrations holds the vibrational corrections of an entity for a given set
//of temperatures.
type Vibrations struct {
	Temps []float64
	ZPE   float64   //eV per formula unit, 0 if not requested
	Svib  []float64 //eV/K per formula unit at each temperature, all 0 if not requested
}

//SvibAt returns the entropy at the ith temperature, or 0 if there is none.
func (v Vibrations) SvibAt(i int) float64 {
	if i < 0 || i >= len(v.Svib) {
		return 0
	}
	return v.Svib[i]
}

//ResolvedReference is a Reference together with its vibrational corrections
//for the temperatures of a particular calculation.
type ResolvedReference struct {
	Reference
	Vibrations
}

//ResolvedPhase is a Phase together with its vibrational corrections
//for the temperatures of a particular calculation.
type ResolvedPhase struct {
	Phase
	Vibrations
}

//Resolve obtains the vibrational corrections of the reference at the temperatures
//temps. The receiver is not modified. p can be nil if no correction is requested.
func (r Reference) Resolve(p VibrationalProvider, temps []float64) (ResolvedReference, error) {
	v, err := resolve(r.Vib, p, temps)
	if err != nil {
		return ResolvedReference{}, errDecorate(err, "Reference.Resolve")
	}
	return ResolvedReference{Reference: r, Vibrations: v}, nil
}

//Resolve obtains the vibrational corrections of the phase at the temperatures
//temps. The receiver is not modified. p can be nil if no correction is requested.
func (ph Phase) Resolve(p VibrationalProvider, temps []float64) (ResolvedPhase, error) {
	v, err := resolve(ph.Vib, p, temps)
	if err != nil {
		return ResolvedPhase{}, errDecorate(err, "Phase.Resolve")
	}
	return ResolvedPhase{Phase: ph, Vibrations: v}, nil
}

func resolve(src VibSource, p VibrationalProvider, temps []float64) (Vibrations, error) {
	ret := Vibrations{Temps: append([]float64(nil), temps...), Svib: make([]float64, len(temps))}
	if !src.Enabled() {
		return ret, nil
	}
	if p == nil {
		return ret, newError(ErrMissingParameter, "resolve", "vibrational corrections requested for %q but no provider given", src.File)
	}
	zpe, svib, _, err := p.Vib(src.File, temps)
	if err != nil {
		return ret, wrapExternal(err, "resolve", "vibrational data for "+src.File)
	}
	if src.ZPE {
		ret.ZPE = zpe
	}
	if src.Entropy {
		if len(svib) != len(temps) {
			return ret, newError(ErrExternal, "resolve", "%d entropies returned for %d temperatures", len(svib), len(temps))
		}
		copy(ret.Svib, svib)
	}
	return ret, nil
}

func finite(v ...float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
