/*
 * phaseplot.go, part of gosurf.
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

//Package phaseplot draws phase diagrams as heat maps, with one color and one
//legend entry for each stable phase.
package phaseplot

import (
	"fmt"
	"image/color"
	"strings"

	surf "github.com/rmera/gosurf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Options for the plots.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	Legend bool //draw a legend with the phase labels
}

//DefaultOptions returns the default Options: a 12x10 cm plot with a legend.
func DefaultOptions() *Options {
	return &Options{Width: 12 * vg.Centimeter, Height: 10 * vg.Centimeter, Legend: true}
}

//grid adapts the phase indexes of a diagram to plotter.GridXYZ.
type grid struct {
	x, y []float64
	z    *surf.IntGrid
}

func (g grid) Dims() (int, int)   { return len(g.x), len(g.y) }
func (g grid) Z(c, r int) float64 { return float64(g.z.At(r, c)) }
func (g grid) X(c int) float64    { return g.x[c] }
func (g grid) Y(r int) float64    { return g.y[r] }

//swatch is the legend thumbnail of a phase.
type swatch struct {
	c color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.c, pts)
}

//axisLabel turns a bare species label into a chemical potential axis label.
func axisLabel(l string) string {
	if l == "" || strings.Contains(l, "(") {
		return l
	}
	return "Δμ " + l + " (eV)"
}

//Plot returns a plot of the diagram d.
func Plot(d *surf.Diagram, o *Options) (*plot.Plot, error) {
	return plotAxes(d, d.X, d.Y, axisLabel(d.XLabel), axisLabel(d.YLabel), o)
}

//PressurePlot returns a plot of the diagram d where the chemical potential axes
//are replaced by the corresponding logarithmic pressure axes, at the
//temperature of the diagram.
func PressurePlot(d *surf.Diagram, o *Options) (*plot.Plot, error) {
	if d.Temperature <= 0 {
		return nil, fmt.Errorf("phaseplot: a pressure plot needs a positive temperature")
	}
	x := surf.Pressure(d.X, d.Temperature)
	y := surf.Pressure(d.Y, d.Temperature)
	return plotAxes(d, x, y, "log P "+d.XLabel+" (bar)", "log P "+d.YLabel+" (bar)", o)
}

func plotAxes(d *surf.Diagram, x, y []float64, xlabel, ylabel string, o *Options) (*plot.Plot, error) {
	if o == nil {
		o = DefaultOptions()
	}
	r, c := d.Dims()
	if r < 2 || c < 2 {
		return nil, fmt.Errorf("phaseplot: a %dx%d diagram can't be plotted", r, c)
	}
	cols, err := PhaseColors(d.Colors)
	if err != nil {
		return nil, err
	}
	k := len(cols)
	pal := categorical(cols)
	hm := plotter.NewHeatMap(grid{x: x, y: y, z: d.Phases}, pal)
	hm.Min = 0
	hm.Max = float64(k - 1)
	if k == 1 {
		//the heat map needs a non-empty range
		hm.Palette = categorical{cols[0], cols[0]}
		hm.Max = 1
	}
	p := plot.New()
	p.Title.Text = o.Title
	if d.Temperature > 0 {
		if p.Title.Text != "" {
			p.Title.Text += " "
		}
		p.Title.Text += fmt.Sprintf("T = %g K", d.Temperature)
	}
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(hm)
	if o.Legend {
		p.Legend.Top = true
		for i, l := range d.Labels {
			p.Legend.Add(l, swatch{c: cols[i]})
		}
	}
	return p, nil
}

//Save draws the diagram d in the file path. The format is given by the
//extension of the file (png, svg, pdf, eps, jpg, tif).
func Save(d *surf.Diagram, o *Options, path string) error {
	if o == nil {
		o = DefaultOptions()
	}
	p, err := Plot(d, o)
	if err != nil {
		return err
	}
	if err := p.Save(o.Width, o.Height, path); err != nil {
		return fmt.Errorf("phaseplot: saving %s: %w", path, err)
	}
	return nil
}
