/*
 * pvst.go, part of gosurf.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

//Default axes of the pressure vs temperature diagrams.
var (
	DefaultT    = Axis{Min: 2, Max: 1000, Step: DefaultTStep, Label: "Temperature (K)"}
	DefaultLogP = Axis{Min: -13, Max: 5.5, Step: DefaultLogPStep, Label: "log P (bar)"}
)

//PVsTInput contains the data for a surface phase diagram as a function of the
//temperature and the partial pressure of an adsorbing species.
type PVsTInput struct {
	//Bare is the surface without adsorbed species. Its Energy is the one used to
	//obtain the adsorption energies. Label and Energy are required.
	Bare Phase

	//Phases are the surfaces with Y units of adsorbed species.
	Phases []Phase

	//SurfaceEnergy of the bare surface, J/m^2. Required.
	SurfaceEnergy float64

	//Adsorbant is the DFT energy of one unit of the adsorbing species, eV. Required.
	Adsorbant float64

	//Thermochem gives the temperature correction of Adsorbant. If nil, no
	//correction is applied.
	Thermochem ThermochemProvider

	//Coverage of each element of Phases, n/m^2. If nil, it is obtained from the
	//Y count and area of the phases (see Coverage).
	Coverage []float64

	T    Axis //temperature, K. The zero Axis means DefaultT
	LogP Axis //log10 of the pressure, bar. The zero Axis means DefaultLogP
}

//PVsT calculates a surface phase diagram as a function of the temperature (columns)
//and the base 10 logarithm of the pressure (rows) of an adsorbing species. The bare
//surface is phase 1, followed by the adsorbed phases sorted by their Y count.
//Surface energies are in J/m^2.
func PVsT(in PVsTInput, options ...*Options) (*Diagram, error) {
	o := getOptions(options)
	tax := orDefault(in.T, DefaultT)
	pax := orDefault(in.LogP, DefaultLogP)
	temps, err := tax.withDefaultStep(DefaultTStep).Values()
	if err != nil {
		return nil, errDecorate(err, "PVsT")
	}
	logp, err := pax.withDefaultStep(DefaultLogPStep).Values()
	if err != nil {
		return nil, errDecorate(err, "PVsT")
	}
	phases, surfaces, err := coverageSurfaces("PVsT", in, temps, logp, o)
	if err != nil {
		return nil, err
	}
	d, err := assemble("PVsT", temps, logp, surfaces, phases, o)
	if err != nil {
		return nil, errDecorate(err, "PVsT")
	}
	d.XLabel = tax.Label
	d.YLabel = pax.Label
	d.Units = UnitsSurface
	return d, nil
}

//coverageSurfaces validates in and returns the phases, bare surface first, and their
//surface energies over the temps (columns) and logp (rows) grid.
func coverageSurfaces(caller string, in PVsTInput, temps, logp []float64, o *Options) ([]Phase, []*mat.Dense, error) {
	if len(in.Phases) == 0 {
		return nil, nil, newError(ErrNoPhases, caller, "at least one adsorbed phase is needed")
	}
	if err := in.Bare.Validate(false); err != nil {
		return nil, nil, errDecorate(err, caller)
	}
	if err := noVib(caller, append([]Phase{in.Bare}, in.Phases...)); err != nil {
		return nil, nil, err
	}
	if in.Bare.Label == "" || in.Bare.Energy == 0 {
		return nil, nil, newError(ErrMissingParameter, caller, "the bare surface needs a label and an energy")
	}
	if in.SurfaceEnergy == 0 {
		return nil, nil, newError(ErrMissingParameter, caller, "surface energy of the bare surface not given")
	}
	if in.Adsorbant == 0 {
		return nil, nil, newError(ErrMissingParameter, caller, "energy of the adsorbant not given")
	}
	if !finite(in.SurfaceEnergy, in.Adsorbant) {
		return nil, nil, newError(ErrInvalidConfig, caller, "non-finite surface energy or adsorbant energy")
	}
	for _, t := range temps {
		if t <= 0 {
			return nil, nil, newError(ErrInvalidConfig, caller, "temperatures must be positive, got %g", t)
		}
	}
	cov := in.Coverage
	if cov != nil && len(cov) != len(in.Phases) {
		return nil, nil, newError(ErrInvalidConfig, caller, "%d coverages given for %d phases", len(cov), len(in.Phases))
	}
	for _, p := range in.Phases {
		if err := p.Validate(cov == nil); err != nil {
			return nil, nil, errDecorate(err, caller)
		}
	}
	if cov == nil {
		cov = Coverage(in.Phases)
	}
	for i, c := range cov {
		if !finite(c) || c < 0 {
			return nil, nil, newError(ErrInvalidConfig, caller, "invalid coverage %g for phase %q", c, in.Phases[i].Label)
		}
		if c != 0 && in.Phases[i].Y == 0 {
			return nil, nil, newError(ErrInvalidConfig, caller, "phase %q has a coverage but no adsorbed species", in.Phases[i].Label)
		}
	}
	order := make([]int, len(in.Phases))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return in.Phases[order[i]].Y < in.Phases[order[j]].Y })
	phases := make([]Phase, 1, len(in.Phases)+1)
	phases[0] = in.Bare
	coverage := make([]float64, 1, len(in.Phases)+1)
	for _, k := range order {
		phases = append(phases, in.Phases[k])
		coverage = append(coverage, cov[k])
	}

	ads := make([]float64, len(temps))
	for i := range ads {
		ads[i] = in.Adsorbant
	}
	if in.Thermochem != nil {
		shift, err := in.Thermochem.Shift(temps)
		if err != nil {
			return nil, nil, wrapExternal(err, caller, "temperature correction of the adsorbant")
		}
		if len(shift) != len(temps) {
			return nil, nil, newError(ErrExternal, caller, "%d corrections returned for %d temperatures", len(shift), len(temps))
		}
		for i, s := range shift {
			ads[i] += s
		}
	}
	lnp := make([]float64, len(logp))
	for i, v := range logp {
		lnp[i] = v * math.Ln10
	}
	logStart(o, caller, len(phases), len(lnp), len(temps))
	surfaces, err := evaluate(len(phases), o, func(k int) (*mat.Dense, error) {
		if coverage[k] == 0 {
			return ConstGrid(len(lnp), len(temps), in.SurfaceEnergy), nil
		}
		p := phases[k]
		ae := make([]float64, len(temps))
		for j := range temps {
			ae[j] = AdsorptionEnergy(p.Energy, in.Bare.Energy, p.Y, ads[j]) * EVToJPerMol
		}
		return CoverageEnergy(in.SurfaceEnergy, coverage[k], ae, temps, lnp), nil
	})
	if err != nil {
		return nil, nil, errDecorate(err, caller)
	}
	return phases, surfaces, nil
}

//orDefault returns def if a is the zero Axis. A label given in a is kept.
func orDefault(a, def Axis) Axis {
	if a.Min == 0 && a.Max == 0 && a.Step == 0 {
		if a.Label != "" {
			def.Label = a.Label
		}
		return def
	}
	if a.Label == "" {
		a.Label = def.Label
	}
	return a
}
