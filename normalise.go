/*
 * normalise.go, part of gosurf.
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

//SurfaceNormalisation returns the energy of a slab with the given energy and number of
//cations, minus the energy of the bulk with the same number of cations, per unit area
//(the slab has two surfaces, each of the given area).
func SurfaceNormalisation(energy, cation float64, ref Reference, area float64) float64 {
	return (energy - (cation/ref.Cation)*(ref.Energy/ref.FUnits)) / (2 * area)
}

//Excess returns the surface excess of a species present count times in a slab with
//cation cations and surface area area. If check is true and nspecies is 1, the
//species is taken to be a constituent of the lattice, and the amount present in
//the bulk with the same number of cations is subtracted. Otherwise it is an
//adsorbate and all of it is excess.
func Excess(count, cation, area float64, ref Reference, nspecies int, check bool) float64 {
	if check && nspecies == 1 {
		return (count - (ref.Anion/ref.Cation)*cation) / (2 * area)
	}
	return count / (2 * area)
}

//BulkNormalisation returns the energy of the phase p minus that of the reference r
//with the same number of cations, including the zero point energy and the vibrational
//entropy at the ith temperature of both (t is the temperature itself).
func BulkNormalisation(p ResolvedPhase, r ResolvedReference, i int, t float64) float64 {
	phase := p.Energy + p.ZPE*p.FUnits - t*p.SvibAt(i)*p.FUnits
	ref := (r.Energy/r.FUnits + r.ZPE) - t*r.SvibAt(i)
	return phase - (p.Cation/r.Cation)*ref
}

//BulkTNormalisation is like BulkNormalisation, but the entropy is not included.
//It is used when the temperature is one of the axes of the diagram, and the entropic
//term is added over the grid.
func BulkTNormalisation(p ResolvedPhase, r ResolvedReference) float64 {
	return (p.Energy + p.ZPE*p.FUnits) - (p.Cation/r.Cation)*(r.Energy/r.FUnits+r.ZPE)
}

//AdsorptionEnergy returns the adsorption energy per adsorbed unit, of n units of an
//adsorbant with energy adsorbant, on a surface with energy stoich, where slab is the
//energy of the surface with the adsorbed species.
func AdsorptionEnergy(slab, stoich, n, adsorbant float64) float64 {
	return (slab - (stoich + n*adsorbant)) / n
}

//Coverage returns the coverage of the Y species on each phase, in units of n/m^2.
//Areas are in Å^2 and the slabs have two surfaces.
func Coverage(phases []Phase) []float64 {
	ret := make([]float64, len(phases))
	for i, p := range phases {
		ret[i] = ((p.Y / (p.Area / 100)) / 2) * 1e18
	}
	return ret
}

//Pressure converts the chemical potentials in mu to pressures at temperature t,
//to build secondary pressure axes for diagrams.
func Pressure(mu []float64, t float64) []float64 {
	ret := make([]float64, len(mu))
	for i, v := range mu {
		ret[i] = v / (BoltzmannEV * t * pressureFactor)
	}
	return ret
}
