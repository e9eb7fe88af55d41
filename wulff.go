/*
 * wulff.go, part of gosurf.
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
)

//WulffInput contains the data to obtain the surface energies of the phases of a
//facet at a given temperature and pressure.
type WulffInput struct {
	PVsTInput
	Temperature float64 //K
	LogP        float64 //log10 of the pressure, bar
}

//WulffResult contains the surface energies of the phases of a facet at one
//temperature and pressure.
type WulffResult struct {
	Energies []float64 //J/m^2, bare surface first, then the phases sorted by Y
	Labels   []string
	Stable   int //index in Energies of the most stable phase
	Diagram  *Diagram
}

//Min returns the surface energy of the most stable phase.
func (w *WulffResult) Min() float64 {
	return w.Energies[w.Stable]
}

//WulffSlice evaluates the surface energies of the phases in the input at a single
//temperature and pressure, as needed to build a Wulff construction.
func WulffSlice(in WulffInput, options ...*Options) (*WulffResult, error) {
	o := getOptions(options)
	if !finite(in.Temperature, in.LogP) {
		return nil, newError(ErrInvalidConfig, "WulffSlice", "non-finite temperature or pressure")
	}
	temps := []float64{in.Temperature}
	logp := []float64{in.LogP}
	phases, surfaces, err := coverageSurfaces("WulffSlice", in.PVsTInput, temps, logp, o)
	if err != nil {
		return nil, err
	}
	d, err := assemble("WulffSlice", temps, logp, surfaces, phases, o)
	if err != nil {
		return nil, errDecorate(err, "WulffSlice")
	}
	d.XLabel = DefaultT.Label
	d.YLabel = DefaultLogP.Label
	d.Units = UnitsSurface
	d.Temperature = in.Temperature
	ret := &WulffResult{Diagram: d, Energies: make([]float64, len(phases)), Labels: make([]string, len(phases))}
	for k, s := range surfaces {
		ret.Energies[k] = s.At(0, 0)
		ret.Labels[k] = phases[k].Label
	}
	ret.Stable = d.Ticks[d.At(0, 0)] - 1
	return ret, nil
}

//WulffEnergies returns the surface energy of the most stable phase of each facet,
//keyed by the facet name, at the temperature and pressure of each input.
func WulffEnergies(facets map[string]WulffInput, options ...*Options) (map[string]float64, error) {
	o := getOptions(options)
	names := make([]string, 0, len(facets))
	for k := range facets {
		names = append(names, k)
	}
	sort.Strings(names)
	ret := make(map[string]float64, len(facets))
	for _, name := range names {
		w, err := WulffSlice(facets[name], o)
		if err != nil {
			return nil, errDecorate(err, "WulffEnergies")
		}
		ret[name] = w.Min()
		o.Logger().Debug("facet", zap.String("facet", name), zap.String("stable", w.Labels[w.Stable]), zap.Float64("energy", w.Min()))
	}
	return ret, nil
}
