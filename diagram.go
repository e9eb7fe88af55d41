/*
 * diagram.go, part of gosurf.
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
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//IntGrid is a row-major grid of integers.
type IntGrid struct {
	Rows, Cols int
	Data       []int
}

//NewIntGrid returns a zero-filled r x c grid.
func NewIntGrid(r, c int) *IntGrid {
	return &IntGrid{Rows: r, Cols: c, Data: make([]int, r*c)}
}

//Dims returns the number of rows and columns of the grid.
func (g *IntGrid) Dims() (int, int) {
	return g.Rows, g.Cols
}

//At returns the element in row i, column j. It panics if
//the indexes are out of range.
func (g *IntGrid) At(i, j int) int {
	return g.Data[g.rc2i(i, j)]
}

//Set sets the element in row i, column j to v.
func (g *IntGrid) Set(i, j, v int) {
	g.Data[g.rc2i(i, j)] = v
}

//Row returns a copy of the ith row.
func (g *IntGrid) Row(i int) []int {
	ret := make([]int, g.Cols)
	copy(ret, g.Data[g.rc2i(i, 0):])
	return ret
}

func (g *IntGrid) rc2i(i, j int) int {
	if i < 0 || i >= g.Rows || j < 0 || j >= g.Cols {
		panic(fmt.Sprintf("IntGrid: index (%d,%d) out of range for %dx%d grid", i, j, g.Rows, g.Cols))
	}
	return g.Cols*i + j
}

//Diagram is a phase diagram: the stable phase and its free energy at each point of
//a 2D grid of thermodynamic variables. Rows correspond to the values in Y, columns
//to those in X.
type Diagram struct {
	X []float64
	Y []float64

	//Phases holds the compact index of the stable phase at each point:
	//the phase with 1-based index Ticks[k] is stored as k.
	Phases *IntGrid

	//Energy holds the free energy of the stable phase, in Units.
	Energy *mat.Dense

	Ticks  []int    //1-based indexes, in the sorted phase list, of the phases present
	Labels []string //one per tick
	Colors []string //one per tick, empty strings for phases without color

	XLabel string
	YLabel string
	Units  string

	Temperature float64 //for display. 0 if not applicable
}

//Dims returns the number of rows (Y values) and columns (X values) of the diagram.
func (d *Diagram) Dims() (int, int) {
	return len(d.Y), len(d.X)
}

//At returns the compact index of the stable phase at row i and column j.
func (d *Diagram) At(i, j int) int {
	return d.Phases.At(i, j)
}

//Label returns the label of the stable phase at row i and column j.
func (d *Diagram) Label(i, j int) string {
	return d.Labels[d.Phases.At(i, j)]
}

//NPhases returns the number of phases present in the diagram.
func (d *Diagram) NPhases() int {
	return len(d.Ticks)
}

//Levels returns the boundaries for a filled contour plot of the compact phase
//indexes: min-1, min, ..., max.
func (d *Diagram) Levels() []float64 {
	lo, hi := d.Phases.Data[0], d.Phases.Data[0]
	for _, v := range d.Phases.Data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	ret := make([]float64, 0, hi-lo+2)
	for v := lo - 1; v <= hi; v++ {
		ret = append(ret, float64(v))
	}
	return ret
}

//TickPositions returns the positions of the colorbar ticks for a filled contour
//plot with the boundaries given by Levels: one per phase, halfway between levels.
func (d *Diagram) TickPositions() []float64 {
	ret := make([]float64, len(d.Ticks))
	for i := range ret {
		ret[i] = float64(i) - 0.5
	}
	return ret
}

//Equal returns true if d and e hold exactly the same data. NaN energies
//are equal to each other.
func (d *Diagram) Equal(e *Diagram) bool {
	if d == nil || e == nil {
		return d == e
	}
	if !floats.Same(d.X, e.X) || !floats.Same(d.Y, e.Y) {
		return false
	}
	if d.Phases.Rows != e.Phases.Rows || d.Phases.Cols != e.Phases.Cols || !slices.Equal(d.Phases.Data, e.Phases.Data) {
		return false
	}
	if !floats.Same(d.Energy.RawMatrix().Data, e.Energy.RawMatrix().Data) {
		return false
	}
	return slices.Equal(d.Ticks, e.Ticks) && slices.Equal(d.Labels, e.Labels) &&
		slices.Equal(d.Colors, e.Colors) && d.XLabel == e.XLabel && d.YLabel == e.YLabel &&
		d.Units == e.Units && d.Temperature == e.Temperature
}

//String returns a short description of the diagram.
func (d *Diagram) String() string {
	r, c := d.Dims()
	return fmt.Sprintf("Diagram{%s vs %s, %dx%d, phases: %v, units: %s}", d.YLabel, d.XLabel, r, c, d.Labels, d.Units)
}
