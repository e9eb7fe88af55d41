/*
 * bulk.go, part of gosurf.
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
	"gonum.org/v1/gonum/mat"
)

//BulkMuVsMuInput contains the data for a bulk phase diagram as a function of the
//chemical potentials of two species, X and Y, at a fixed temperature.
type BulkMuVsMuInput struct {
	Reference Reference
	Phases    []Phase
	X         Axis //chemical potential of X, eV. Default step DefaultBulkMuStep
	Y         Axis //chemical potential of Y, eV. Default step DefaultBulkMuStep
	XEnergy   float64
	YEnergy   float64

	//Temperature at which the vibrational entropy is evaluated.
	Temperature float64

	//Vib provides the vibrational corrections. It can be nil if no
	//entity requests them.
	Vib VibrationalProvider
}

//BulkMuVsMu calculates a bulk phase diagram as a function of the chemical potentials
//of X and Y. Free energies are in eV. Unlike MuVsMu, the axes are not shifted.
//Phases are sorted by their Y count.
func BulkMuVsMu(in BulkMuVsMuInput, options ...*Options) (*Diagram, error) {
	o := getOptions(options)
	if err := checkInput("BulkMuVsMu", in.Reference, in.Phases, false); err != nil {
		return nil, err
	}
	if !finite(in.Temperature) || in.Temperature < 0 {
		return nil, newError(ErrInvalidConfig, "BulkMuVsMu", "invalid temperature %g", in.Temperature)
	}
	x, err := in.X.withDefaultStep(DefaultBulkMuStep).Values()
	if err != nil {
		return nil, errDecorate(err, "BulkMuVsMu")
	}
	y, err := in.Y.withDefaultStep(DefaultBulkMuStep).Values()
	if err != nil {
		return nil, errDecorate(err, "BulkMuVsMu")
	}
	temps := []float64{in.Temperature}
	ref, err := in.Reference.Resolve(in.Vib, temps)
	if err != nil {
		return nil, errDecorate(err, "BulkMuVsMu")
	}
	phases := sortByY(in.Phases)
	resolved, err := resolvePhases(phases, in.Vib, temps)
	if err != nil {
		return nil, errDecorate(err, "BulkMuVsMu")
	}
	logStart(o, "BulkMuVsMu", len(phases), len(y), len(x))
	mux, muy := Grids(x, y)
	surfaces, err := evaluate(len(phases), o, func(k int) (*mat.Dense, error) {
		p := resolved[k]
		norm := BulkNormalisation(p, ref, 0, in.Temperature)
		return BulkEnergy(mux, muy, in.XEnergy, in.YEnergy, p.X, p.Y, norm), nil
	})
	if err != nil {
		return nil, errDecorate(err, "BulkMuVsMu")
	}
	d, err := assemble("BulkMuVsMu", x, y, surfaces, phases, o)
	if err != nil {
		return nil, errDecorate(err, "BulkMuVsMu")
	}
	d.XLabel = in.X.Label
	d.YLabel = in.Y.Label
	d.Units = UnitsBulk
	d.Temperature = in.Temperature
	return d, nil
}

//MuVsTInput contains the data for a bulk phase diagram as a function of the chemical
//potential of a species X and the temperature, at a fixed chemical potential of a
//third species Z. The Y count of each phase is its amount of Z.
type MuVsTInput struct {
	Reference Reference
	Phases    []Phase
	X         Axis //chemical potential of X, eV. Default step DefaultMuStep
	T         Axis //temperature, K. Default step DefaultTStep
	MuZ       float64
	XEnergy   float64
	ZEnergy   float64

	//Temperature corrections for the energies of X and Z.
	//Either can be nil, meaning no correction.
	XCorrection ThermochemProvider
	ZCorrection ThermochemProvider

	Vib VibrationalProvider
}

//MuVsT calculates a bulk phase diagram as a function of the chemical potential of X
//(columns) and the temperature (rows). Free energies are in eV. Phases are sorted
//by their Y count.
func MuVsT(in MuVsTInput, options ...*Options) (*Diagram, error) {
	o := getOptions(options)
	if err := checkInput("MuVsT", in.Reference, in.Phases, false); err != nil {
		return nil, err
	}
	if !finite(in.MuZ, in.XEnergy, in.ZEnergy) {
		return nil, newError(ErrInvalidConfig, "MuVsT", "non-finite chemical potential or species energy")
	}
	x, err := in.X.withDefaultStep(DefaultMuStep).Values()
	if err != nil {
		return nil, errDecorate(err, "MuVsT")
	}
	temps, err := in.T.withDefaultStep(DefaultTStep).Values()
	if err != nil {
		return nil, errDecorate(err, "MuVsT")
	}
	if temps[0] < 0 {
		return nil, newError(ErrInvalidConfig, "MuVsT", "negative temperature %g", temps[0])
	}
	terms := MuTTerms{MuX: XGrid(x, temps), MuZ: in.MuZ, XEnergy: in.XEnergy, ZEnergy: in.ZEnergy}
	if terms.XCorr, err = correctionGrid(in.XCorrection, temps, len(x)); err != nil {
		return nil, errDecorate(err, "MuVsT")
	}
	if terms.ZCorr, err = correctionGrid(in.ZCorrection, temps, len(x)); err != nil {
		return nil, errDecorate(err, "MuVsT")
	}
	ref, err := in.Reference.Resolve(in.Vib, temps)
	if err != nil {
		return nil, errDecorate(err, "MuVsT")
	}
	if ref.Vib.Entropy {
		terms.RefTS = TSGrid(ref.Svib, temps, len(x))
	}
	phases := sortByY(in.Phases)
	resolved, err := resolvePhases(phases, in.Vib, temps)
	if err != nil {
		return nil, errDecorate(err, "MuVsT")
	}
	logStart(o, "MuVsT", len(phases), len(temps), len(x))
	surfaces, err := evaluate(len(phases), o, func(k int) (*mat.Dense, error) {
		p := resolved[k]
		t := terms
		if p.Vib.Entropy {
			t.PhaseTS = TSGrid(p.Svib, temps, len(x))
		}
		return MuTEnergy(t, p, ref, BulkTNormalisation(p, ref)), nil
	})
	if err != nil {
		return nil, errDecorate(err, "MuVsT")
	}
	d, err := assemble("MuVsT", x, temps, surfaces, phases, o)
	if err != nil {
		return nil, errDecorate(err, "MuVsT")
	}
	d.XLabel = in.X.Label
	d.YLabel = in.T.Label
	if d.YLabel == "" {
		d.YLabel = "Temperature (K)"
	}
	d.Units = UnitsBulk
	return d, nil
}

//resolvePhases resolves the vibrational corrections of all phases, in order.
//Providers are called from a single goroutine.
func resolvePhases(phases []Phase, p VibrationalProvider, temps []float64) ([]ResolvedPhase, error) {
	ret := make([]ResolvedPhase, len(phases))
	for i, ph := range phases {
		r, err := ph.Resolve(p, temps)
		if err != nil {
			return nil, errDecorate(err, "resolvePhases")
		}
		ret[i] = r
	}
	return ret, nil
}

//correctionGrid returns a len(temps) x cols grid with the correction given by c
//for each temperature along the rows, or nil if c is nil.
func correctionGrid(c ThermochemProvider, temps []float64, cols int) (*mat.Dense, error) {
	if c == nil {
		return nil, nil
	}
	s, err := c.Shift(temps)
	if err != nil {
		return nil, wrapExternal(err, "correctionGrid", "temperature correction")
	}
	if len(s) != len(temps) {
		return nil, newError(ErrExternal, "correctionGrid", "%d corrections returned for %d temperatures", len(s), len(temps))
	}
	return RowGrid(s, cols), nil
}
