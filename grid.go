/*
 * grid.go, part of gosurf.
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

	"gonum.org/v1/gonum/mat"
)

//Axis describes one of the independent variables of a diagram: the values
//Min, Min+Step, Min+2*Step... < Max, and a label for display.
//A zero Step means that the default step of the calculation is used.
type Axis struct {
	Min   float64
	Max   float64
	Step  float64
	Label string
}

//withDefaultStep returns a copy of the axis with step def if
//the axis has no step.
func (a Axis) withDefaultStep(def float64) Axis {
	if a.Step == 0 {
		a.Step = def
	}
	return a
}

//Validate returns an error if the axis would produce no values.
func (a Axis) Validate() error {
	_, err := Arange(a.Min, a.Max, a.Step)
	if err != nil {
		return errDecorate(err, "Axis.Validate")
	}
	return nil
}

//Values returns the values of the axis.
func (a Axis) Values() ([]float64, error) {
	v, err := Arange(a.Min, a.Max, a.Step)
	if err != nil {
		return nil, errDecorate(err, "Axis.Values")
	}
	return v, nil
}

//MaxAxisPoints is the largest number of values an axis can have.
const MaxAxisPoints = 100000

//Arange returns the values start, start+step, start+2*step, ... < stop.
//Element i is computed as start+i*step so rounding errors do not pile up.
func Arange(start, stop, step float64) ([]float64, error) {
	for _, v := range []float64{start, stop, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, newError(ErrInvalidConfig, "Arange", "non-finite range [%g, %g) step %g", start, stop, step)
		}
	}
	if step <= 0 {
		return nil, newError(ErrInvalidConfig, "Arange", "step must be positive, got %g", step)
	}
	fn := math.Ceil((stop - start) / step)
	if fn > MaxAxisPoints {
		return nil, newError(ErrInvalidConfig, "Arange", "range [%g, %g) step %g gives %g values, more than the %d allowed", start, stop, step, fn, MaxAxisPoints)
	}
	n := int(fn)
	if n <= 0 {
		return nil, newError(ErrInvalidConfig, "Arange", "empty range [%g, %g) step %g", start, stop, step)
	}
	ret := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := start + float64(i)*step
		if v >= stop {
			break
		}
		ret = append(ret, v)
	}
	if len(ret) == 0 {
		return nil, newError(ErrInvalidConfig, "Arange", "empty range [%g, %g) step %g", start, stop, step)
	}
	return ret, nil
}

//XGrid returns a len(y) x len(x) grid where each row is a copy of x.
func XGrid(x, y []float64) *mat.Dense {
	ret := mat.NewDense(len(y), len(x), nil)
	for i := range y {
		ret.SetRow(i, x)
	}
	return ret
}

//YGrid returns a len(y) x len(x) grid where each column is a copy of y.
func YGrid(x, y []float64) *mat.Dense {
	ret := mat.NewDense(len(y), len(x), nil)
	for j := range x {
		ret.SetCol(j, y)
	}
	return ret
}

//Grids returns XGrid(x,y) and YGrid(x,y).
func Grids(x, y []float64) (*mat.Dense, *mat.Dense) {
	return XGrid(x, y), YGrid(x, y)
}

//ConstGrid returns an r x c grid filled with v.
func ConstGrid(r, c int, v float64) *mat.Dense {
	d := make([]float64, r*c)
	for i := range d {
		d[i] = v
	}
	return mat.NewDense(r, c, d)
}

//RowGrid returns a len(v) x cols grid where every element of row i is v[i].
//It is used for quantities that depend only on the Y variable, such as
//temperature corrections when Y is the temperature.
func RowGrid(v []float64, cols int) *mat.Dense {
	ret := mat.NewDense(len(v), cols, nil)
	for i, val := range v {
		row := ret.RawRowView(i)
		for j := range row {
			row[j] = val
		}
	}
	return ret
}

//TSGrid returns a len(t) x cols grid where row i holds t[i]*s[i], the
//entropic term TS at temperature t[i].
func TSGrid(s, t []float64, cols int) *mat.Dense {
	ts := make([]float64, len(t))
	for i := range t {
		ts[i] = t[i] * s[i]
	}
	return RowGrid(ts, cols)
}
