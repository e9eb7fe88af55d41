/*
 * calc.go, part of gosurf.
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
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//Default grid steps.
const (
	DefaultMuStep     = 0.025 //eV, surface chemical potential axes
	DefaultBulkMuStep = 0.005 //eV, bulk chemical potential axes
	DefaultTStep      = 1.0   //K
	DefaultLogPStep   = 0.1   //decades of pressure
)

//sortByY returns a copy of phases sorted by their Y count. The sort is
//stable so phases with the same Y keep their order.
func sortByY(phases []Phase) []Phase {
	ret := append([]Phase(nil), phases...)
	sort.SliceStable(ret, func(i, j int) bool { return ret[i].Y < ret[j].Y })
	return ret
}

//checkInput validates the reference and the phases given to a calculation.
//area tells whether the phases need a surface area, which is the case for the
//surface models. Those take no vibrational corrections.
func checkInput(caller string, ref Reference, phases []Phase, area bool) error {
	if err := ref.Validate(); err != nil {
		return errDecorate(err, caller)
	}
	if len(phases) == 0 {
		return newError(ErrNoPhases, caller, "at least one phase is needed")
	}
	for _, p := range phases {
		if err := p.Validate(area); err != nil {
			return errDecorate(err, caller)
		}
	}
	if area {
		if ref.Vib.Enabled() {
			return newError(ErrInvalidConfig, caller, "surface models take no vibrational corrections for the reference")
		}
		return noVib(caller, phases)
	}
	return nil
}

//noVib returns an error if any of the phases requests vibrational corrections.
func noVib(caller string, phases []Phase) error {
	for _, p := range phases {
		if p.Vib.Enabled() {
			return newError(ErrInvalidConfig, caller, "phase %q requests vibrational corrections, which surface models do not apply", p.Label)
		}
	}
	return nil
}

//evaluate obtains the n grids produced by f, using up to o.Cpus() goroutines.
//Each grid goes to its own slot, so the result does not depend on the
//scheduling.
func evaluate(n int, o *Options, f func(k int) (*mat.Dense, error)) ([]*mat.Dense, error) {
	ret := make([]*mat.Dense, n)
	var g errgroup.Group
	g.SetLimit(o.Cpus())
	for k := 0; k < n; k++ {
		k := k
		g.Go(func() error {
			s, err := f(k)
			if err != nil {
				return err
			}
			ret[k] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errDecorate(err, "evaluate")
	}
	return ret, nil
}

//assemble selects the stable phase at each point of the surfaces, compacts the
//indexes and builds the Diagram. phases must be in the same order as surfaces.
func assemble(model string, x, y []float64, surfaces []*mat.Dense, phases []Phase, o *Options) (*Diagram, error) {
	log := o.Logger()
	idx, energy, sel, err := Select(surfaces)
	if err != nil {
		return nil, errDecorate(err, "assemble")
	}
	if sel.NaNs > 0 {
		log.Warn("NaN free energies found, those phases can not be stable at the affected points",
			zap.String("model", model), zap.Int("nan", sel.NaNs))
	}
	for k, w := range sel.Wins {
		if w == 0 {
			log.Debug("phase never stable", zap.String("model", model), zap.String("phase", phases[k].Label))
		}
	}
	ticks := Ticks(idx)
	if len(ticks) == 1 && len(phases) > 1 {
		log.Info("a single phase is stable over the whole grid",
			zap.String("model", model), zap.String("phase", phases[ticks[0]-1].Label))
	}
	d := &Diagram{
		X:      x,
		Y:      y,
		Phases: Compact(idx, ticks),
		Energy: energy,
		Ticks:  ticks,
		Labels: Labels(ticks, phases),
		Colors: Colors(ticks, phases),
	}
	return d, nil
}

func logStart(o *Options, model string, nphases, rows, cols int) {
	o.Logger().Debug("starting calculation", zap.String("model", model),
		zap.Int("phases", nphases), zap.Int("rows", rows), zap.Int("cols", cols))
}
