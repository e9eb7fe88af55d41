/*
 * energy.go, part of gosurf.
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

//SurfaceEnergy returns the surface energy, in J/m^2, of a phase over the grids of
//chemical potentials mux and muy. xEnergy and yEnergy are the energies of the
//species (DFT or temperature corrected) which shift the origin of the axes,
//xExcess and yExcess the surface excesses of the species, and norm the
//normalisation constant of the phase (see SurfaceNormalisation).
func SurfaceEnergy(mux, muy *mat.Dense, xEnergy, yEnergy, xExcess, yExcess, norm float64) *mat.Dense {
	r, c := mux.Dims()
	ret := mat.NewDense(r, c, nil)
	ret.Apply(func(i, j int, v float64) float64 {
		se := norm - v*xExcess - muy.At(i, j)*yExcess - xEnergy*xExcess - yEnergy*yExcess
		return se * EVPerA2ToJPerM2
	}, mux)
	return ret
}

//BulkEnergy returns the free energy, in eV, of a bulk phase with x and y units of the
//X and Y species, over the grids of chemical potentials mux and muy.
func BulkEnergy(mux, muy *mat.Dense, xEnergy, yEnergy, x, y, norm float64) *mat.Dense {
	r, c := mux.Dims()
	ret := mat.NewDense(r, c, nil)
	ret.Apply(func(i, j int, v float64) float64 {
		return norm - v*x - muy.At(i, j)*y - xEnergy*x - yEnergy*y
	}, mux)
	return ret
}

//MuTTerms contains the grids and constants needed to evaluate the free energy of a
//bulk phase as a function of the chemical potential of X and the temperature,
//at a fixed chemical potential of a third species Z (whose amount is the Y count
//of the phase).
type MuTTerms struct {
	MuX     *mat.Dense //chemical potential of X
	MuZ     float64    //fixed chemical potential of Z
	XEnergy float64
	ZEnergy float64
	XCorr   *mat.Dense //temperature correction to XEnergy, can be nil
	ZCorr   *mat.Dense //temperature correction to ZEnergy, can be nil
	PhaseTS *mat.Dense //T*Svib of the phase per formula unit, can be nil
	RefTS   *mat.Dense //T*Svib of the reference per formula unit, can be nil
}

//MuTEnergy returns the free energy, in eV, of the phase p normalised against r, with
//normalisation constant norm (see BulkTNormalisation).
func MuTEnergy(t MuTTerms, p ResolvedPhase, r ResolvedReference, norm float64) *mat.Dense {
	rows, cols := t.MuX.Dims()
	ratio := p.Cation / r.Cation
	at := func(m *mat.Dense, i, j int) float64 {
		if m == nil {
			return 0
		}
		return m.At(i, j)
	}
	ret := mat.NewDense(rows, cols, nil)
	ret.Apply(func(i, j int, v float64) float64 {
		e := norm - v*p.X - t.MuZ*p.Y
		e -= (t.XEnergy + at(t.XCorr, i, j)) * p.X
		e -= (t.ZEnergy + at(t.ZCorr, i, j)) * p.Y
		return e - (at(t.PhaseTS, i, j)*p.FUnits - ratio*at(t.RefTS, i, j))
	}, t.MuX)
	return ret
}

//CoverageEnergy returns the surface energy, in J/m^2, of a surface with the given
//coverage (n/m^2) of an adsorbed species, over a grid of temperatures t (columns)
//and natural logarithms of the pressure lnp (rows). se is the surface energy of
//the bare surface and ae the adsorption energy (J/mol) at each temperature in t.
//A zero coverage gives se everywhere.
func CoverageEnergy(se, coverage float64, ae, t, lnp []float64) *mat.Dense {
	if coverage == 0 {
		return ConstGrid(len(lnp), len(t), se)
	}
	ret := mat.NewDense(len(lnp), len(t), nil)
	n := coverage / Avogadro
	for i, lp := range lnp {
		row := ret.RawRowView(i)
		for j, temp := range t {
			row[j] = se + n*(ae[j]-lp*temp*GasConstant)
		}
	}
	return ret
}
