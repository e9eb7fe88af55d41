/*
 * muvsmu.go, part of gosurf.
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

//MuVsMuInput contains the data for a surface phase diagram as a function of the
//chemical potentials of two species, X and Y.
type MuVsMuInput struct {
	Reference Reference
	Phases    []Phase //every phase needs a surface area
	X         Axis    //chemical potential of X, eV. Default step DefaultMuStep
	Y         Axis    //chemical potential of Y, eV. Default step DefaultMuStep
	XEnergy   float64 //energy of X (DFT or temperature corrected), eV
	YEnergy   float64 //energy of Y (DFT or temperature corrected), eV

	Temperature float64 //only for display
}

//MuVsMu calculates a surface phase diagram as a function of the chemical potentials
//of X and Y. The axes of the diagram are shifted by -XEnergy and -YEnergy, so 0
//corresponds to the energy of each species, while the surface energies (J/m^2)
//are evaluated at the unshifted chemical potentials.
//Phases are sorted by their Y count before the calculation, and the indexes in
//the diagram refer to the sorted list.
func MuVsMu(in MuVsMuInput, options ...*Options) (*Diagram, error) {
	o := getOptions(options)
	if err := checkInput("MuVsMu", in.Reference, in.Phases, true); err != nil {
		return nil, err
	}
	x, err := in.X.withDefaultStep(DefaultMuStep).Values()
	if err != nil {
		return nil, errDecorate(err, "MuVsMu")
	}
	y, err := in.Y.withDefaultStep(DefaultMuStep).Values()
	if err != nil {
		return nil, errDecorate(err, "MuVsMu")
	}
	for i := range x {
		x[i] -= in.XEnergy
	}
	for i := range y {
		y[i] -= in.YEnergy
	}
	phases := sortByY(in.Phases)
	logStart(o, "MuVsMu", len(phases), len(y), len(x))
	mux, muy := Grids(x, y)
	ref := in.Reference
	surfaces, err := evaluate(len(phases), o, func(k int) (*mat.Dense, error) {
		p := phases[k]
		xexc := Excess(p.X, p.Cation, p.Area, ref, p.NSpecies, true)
		yexc := Excess(p.Y, p.Cation, p.Area, ref, p.NSpecies, false)
		norm := SurfaceNormalisation(p.Energy, p.Cation, ref, p.Area)
		return SurfaceEnergy(mux, muy, in.XEnergy, in.YEnergy, xexc, yexc, norm), nil
	})
	if err != nil {
		return nil, errDecorate(err, "MuVsMu")
	}
	d, err := assemble("MuVsMu", x, y, surfaces, phases, o)
	if err != nil {
		return nil, errDecorate(err, "MuVsMu")
	}
	d.XLabel = in.X.Label
	d.YLabel = in.Y.Label
	d.Units = UnitsSurface
	d.Temperature = in.Temperature
	return d, nil
}
