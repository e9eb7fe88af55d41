/*
 * select.go, part of gosurf.
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

//Selection contains information gathered while selecting the stable phases.
type Selection struct {
	NaNs int   //number of NaN energies found in all the grids
	Wins []int //number of grid points where each phase is the most stable
	Void int   //number of grid points where every value is NaN
}

//Select returns, for each point of the grids, the 1-based index of the grid with
//the lowest value, and that value. Ties go to the lowest index. NaN values never
//win; if all values at a point are NaN, the point is assigned to phase 1 and its
//energy is NaN, and it is counted in Void instead of Wins. All grids must have
//the same dimensions.
func Select(surfaces []*mat.Dense) (*IntGrid, *mat.Dense, Selection, error) {
	var sel Selection
	if len(surfaces) == 0 {
		return nil, nil, sel, newError(ErrNoPhases, "Select", "at least one phase is needed")
	}
	for k, s := range surfaces {
		if s == nil {
			return nil, nil, sel, newError(ErrShape, "Select", "nil grid for phase %d", k+1)
		}
	}
	r, c := surfaces[0].Dims()
	for k, s := range surfaces {
		sr, sc := s.Dims()
		if sr != r || sc != c {
			return nil, nil, sel, newError(ErrShape, "Select", "grid %d is %dx%d, expected %dx%d", k+1, sr, sc, r, c)
		}
	}
	sel.Wins = make([]int, len(surfaces))
	idx := NewIntGrid(r, c)
	low := mat.NewDense(r, c, nil)
	rows := make([][]float64, len(surfaces))
	for k := range rows {
		rows[k] = make([]float64, c)
	}
	for i := 0; i < r; i++ {
		for k, s := range surfaces {
			mat.Row(rows[k], i, s)
		}
		for j := 0; j < c; j++ {
			best := -1
			bestv := math.NaN()
			for k := range surfaces {
				v := rows[k][j]
				if math.IsNaN(v) {
					sel.NaNs++
					continue
				}
				if best < 0 || v < bestv {
					best = k
					bestv = v
				}
			}
			if best < 0 {
				idx.Set(i, j, 1)
				low.Set(i, j, bestv)
				sel.Void++
				continue
			}
			idx.Set(i, j, best+1)
			low.Set(i, j, bestv)
			sel.Wins[best]++
		}
	}
	return idx, low, sel, nil
}
