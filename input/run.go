/*
 * run.go, part of gosurf.
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

package input

import (
	"fmt"
	"sort"

	surf "github.com/rmera/gosurf"
	"github.com/rmera/gosurf/janaf"
	"github.com/rmera/gosurf/vib"
)

//Result holds the outcome of a calculation: a diagram, the surface energy
//of each facet for wulff calculations, or the curves of sigma calculations.
type Result struct {
	Kind    string
	Diagram *surf.Diagram
	Wulff   map[string]float64
	Curves  *surf.Curves
}

//Facets returns the names of the facets in the result, sorted.
func (r *Result) Facets() []string {
	ret := make([]string, 0, len(r.Wulff))
	for k := range r.Wulff {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Run runs the calculation c.
func Run(c *Calculation, o *surf.Options) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var err error
	res := &Result{Kind: c.Kind}
	provider := vib.NewProvider(c.dir)
	switch c.Kind {
	case KindMuVsMu:
		res.Diagram, err = surf.MuVsMu(surf.MuVsMuInput{
			Reference:   c.reference(),
			Phases:      phases(c.Phases),
			X:           c.X.axis(),
			Y:           c.Y.axis(),
			XEnergy:     c.XEnergy,
			YEnergy:     c.YEnergy,
			Temperature: c.Temperature,
		}, o)
	case KindBulk:
		res.Diagram, err = surf.BulkMuVsMu(surf.BulkMuVsMuInput{
			Reference:   c.reference(),
			Phases:      phases(c.Phases),
			X:           c.X.axis(),
			Y:           c.Y.axis(),
			XEnergy:     c.XEnergy,
			YEnergy:     c.YEnergy,
			Temperature: c.Temperature,
			Vib:         provider,
		}, o)
	case KindMuVsT:
		in := surf.MuVsTInput{
			Reference: c.reference(),
			Phases:    phases(c.Phases),
			X:         c.X.axis(),
			T:         c.T.axis(),
			MuZ:       c.MuZ,
			XEnergy:   c.XEnergy,
			ZEnergy:   c.ZEnergy,
			Vib:       provider,
		}
		if in.XCorrection, err = c.correction(c.XCorrection); err != nil {
			return nil, err
		}
		if in.ZCorrection, err = c.correction(c.ZCorrection); err != nil {
			return nil, err
		}
		res.Diagram, err = surf.MuVsT(in, o)
	case KindPVsT:
		tc, cerr := c.correction(c.Thermochem)
		if cerr != nil {
			return nil, cerr
		}
		res.Diagram, err = surf.PVsT(c.pvt(c.facet(), tc), o)
	case KindWulff:
		facets, ferr := c.wulff()
		if ferr != nil {
			return nil, ferr
		}
		res.Wulff, err = surf.WulffEnergies(facets, o)
	case KindSigma:
		res.Curves, err = surf.SigmaVsMu(surf.SigmaVsMuInput{
			Reference: c.reference(),
			Phases:    phases(c.Phases),
			Mu:        c.Mu.axis(),
		}, o)
	}
	if err != nil {
		return nil, fmt.Errorf("running %s calculation: %w", c.Kind, err)
	}
	return res, nil
}

func (c *Calculation) reference() surf.Reference {
	r := c.Reference
	return surf.Reference{
		Cation: r.Cation,
		Anion:  r.Anion,
		Energy: r.Energy,
		FUnits: r.FUnits,
		Color:  r.Color,
		Vib:    r.Vib.source(),
	}
}

func phases(p []Phase) []surf.Phase {
	ret := make([]surf.Phase, len(p))
	for i, v := range p {
		ret[i] = v.phase()
	}
	return ret
}

//correction returns the temperature correction from the NIST-JANAF table in file,
//or nil if file is empty.
func (c *Calculation) correction(file string) (surf.ThermochemProvider, error) {
	if file == "" {
		return nil, nil
	}
	t, err := janaf.Read(c.Path(file))
	if err != nil {
		return nil, err
	}
	return janaf.NewCorrection(t), nil
}

//pvt returns the input for the facet f, with the temperature correction tc
//for the adsorbant. f must have passed validation.
func (c *Calculation) pvt(f Facet, tc surf.ThermochemProvider) surf.PVsTInput {
	return surf.PVsTInput{
		Bare:          f.Bare.phase(),
		Phases:        phases(f.Phases),
		SurfaceEnergy: *f.SurfaceEnergy,
		Adsorbant:     *c.Adsorbant,
		Thermochem:    tc,
		Coverage:      f.Coverage,
		T:             c.T.axis(),
		LogP:          c.LogP.axis(),
	}
}

//wulff returns the input of each facet of a wulff calculation. The table with the
//temperature correction is read once and shared by all facets.
func (c *Calculation) wulff() (map[string]surf.WulffInput, error) {
	tc, err := c.correction(c.Thermochem)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]surf.WulffInput, len(c.Facets))
	for name, f := range c.Facets {
		ret[name] = surf.WulffInput{PVsTInput: c.pvt(f, tc), Temperature: c.Temperature, LogP: c.Pressure}
	}
	return ret, nil
}
