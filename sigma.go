/*
 * sigma.go, part of gosurf.
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

//SigmaVsMuInput contains the data to obtain the surface energy of each phase as a
//function of the chemical potential of the Y species.
type SigmaVsMuInput struct {
	Reference Reference
	Phases    []Phase //every phase needs a surface area
	Mu        Axis    //chemical potential of Y, eV. Default step DefaultMuStep
}

//Curves holds the surface energy of a set of phases along one chemical potential.
type Curves struct {
	Mu       []float64
	Energies [][]float64 //one per phase, sorted by Y
	Labels   []string
	Colors   []string
	Min      []float64 //lowest surface energy at each point
	Stable   []int     //index in Energies of the most stable phase at each point
	Label    string    //of the chemical potential
	Units    string
}

//SigmaVsMu calculates the surface energy (J/m^2) of each phase over a range of
//chemical potentials of Y. Unlike MuVsMu, the X species does not take part
//and the axis is not shifted. Phases are sorted by their Y count.
func SigmaVsMu(in SigmaVsMuInput, options ...*Options) (*Curves, error) {
	o := getOptions(options)
	if err := checkInput("SigmaVsMu", in.Reference, in.Phases, true); err != nil {
		return nil, err
	}
	mu, err := in.Mu.withDefaultStep(DefaultMuStep).Values()
	if err != nil {
		return nil, errDecorate(err, "SigmaVsMu")
	}
	phases := sortByY(in.Phases)
	logStart(o, "SigmaVsMu", len(phases), 1, len(mu))
	row := XGrid(mu, []float64{0})
	zero := ConstGrid(1, len(mu), 0)
	ref := in.Reference
	surfaces, err := evaluate(len(phases), o, func(k int) (*mat.Dense, error) {
		p := phases[k]
		yexc := Excess(p.Y, p.Cation, p.Area, ref, p.NSpecies, false)
		norm := SurfaceNormalisation(p.Energy, p.Cation, ref, p.Area)
		return SurfaceEnergy(row, zero, 0, 0, yexc, 0, norm), nil
	})
	if err != nil {
		return nil, errDecorate(err, "SigmaVsMu")
	}
	idx, low, _, err := Select(surfaces)
	if err != nil {
		return nil, errDecorate(err, "SigmaVsMu")
	}
	ret := &Curves{
		Mu:       mu,
		Energies: make([][]float64, len(phases)),
		Labels:   make([]string, len(phases)),
		Colors:   make([]string, len(phases)),
		Min:      mat.Row(nil, 0, low),
		Stable:   make([]int, len(mu)),
		Label:    in.Mu.Label,
		Units:    UnitsSurface,
	}
	for k, s := range surfaces {
		ret.Energies[k] = mat.Row(nil, 0, s)
		ret.Labels[k] = phases[k].Label
		ret.Colors[k] = phases[k].Color
	}
	for j := range mu {
		ret.Stable[j] = idx.At(0, j) - 1
	}
	return ret, nil
}
