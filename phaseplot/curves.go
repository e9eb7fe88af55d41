/*
 * curves.go, part of gosurf.
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

package phaseplot

import (
	"fmt"

	surf "github.com/rmera/gosurf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//CurvePlot returns a plot with the surface energy of each phase in c as a
//function of the chemical potential.
func CurvePlot(c *surf.Curves, o *Options) (*plot.Plot, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if len(c.Mu) < 2 {
		return nil, fmt.Errorf("phaseplot: %d points can't be plotted as a curve", len(c.Mu))
	}
	cols, err := PhaseColors(c.Colors)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = axisLabel(c.Label)
	p.Y.Label.Text = "γ (" + c.Units + ")"
	for k, e := range c.Energies {
		xy := make(plotter.XYs, len(c.Mu))
		for i, mu := range c.Mu {
			xy[i].X = mu
			xy[i].Y = e[i]
		}
		l, err := plotter.NewLine(xy)
		if err != nil {
			return nil, fmt.Errorf("phaseplot: phase %q: %w", c.Labels[k], err)
		}
		l.Color = cols[k]
		l.Width = vg.Points(1.5)
		p.Add(l)
		if o.Legend {
			p.Legend.Add(c.Labels[k], l)
		}
	}
	p.Legend.Top = true
	return p, nil
}

//SaveCurves draws the curves c in the file path. See Save.
func SaveCurves(c *surf.Curves, o *Options, path string) error {
	if o == nil {
		o = DefaultOptions()
	}
	p, err := CurvePlot(c, o)
	if err != nil {
		return err
	}
	if err := p.Save(o.Width, o.Height, path); err != nil {
		return fmt.Errorf("phaseplot: saving %s: %w", path, err)
	}
	return nil
}
