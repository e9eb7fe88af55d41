/*
 * poly.go, part of gosurf.
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

package janaf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Poly is a polynomial. Element i is the coefficient of x^i.
type Poly []float64

//Eval returns the value of the polynomial at x.
func (p Poly) Eval(x float64) float64 {
	var ret float64
	for i := len(p) - 1; i >= 0; i-- {
		ret = ret*x + p[i]
	}
	return ret
}

//Polyfit returns the polynomial of degree deg that fits the points x, y
//in the least squares sense.
func Polyfit(x, y []float64, deg int) (Poly, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%d x values and %d y values", len(x), len(y))
	}
	if deg < 0 || len(x) < deg+1 {
		return nil, fmt.Errorf("%d points can't determine a polynomial of degree %d", len(x), deg)
	}
	//x is scaled to [-1,1] to keep the Vandermonde matrix well conditioned.
	scale := math.Max(math.Abs(floats.Max(x)), math.Abs(floats.Min(x)))
	if scale == 0 {
		scale = 1
	}
	a := mat.NewDense(len(x), deg+1, nil)
	for i, v := range x {
		u := v / scale
		p := 1.0
		for j := 0; j <= deg; j++ {
			a.Set(i, j, p)
			p *= u
		}
	}
	var c mat.VecDense
	if err := c.SolveVec(a, mat.NewVecDense(len(y), append([]float64(nil), y...))); err != nil {
		return nil, err
	}
	ret := make(Poly, deg+1)
	s := 1.0
	for j := range ret {
		ret[j] = c.AtVec(j) / s
		s *= scale
	}
	return ret, nil
}
