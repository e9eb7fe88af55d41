/*
 * labels.go, part of gosurf.
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

import "sort"

//Ticks returns the distinct values present in g, in ascending order.
func Ticks(g *IntGrid) []int {
	seen := make(map[int]bool)
	ret := make([]int, 0, 4)
	for _, v := range g.Data {
		if !seen[v] {
			seen[v] = true
			ret = append(ret, v)
		}
	}
	sort.Ints(ret)
	return ret
}

//Compact returns a copy of g where each value is replaced by its position in ticks,
//so the values present in g become 0, 1, ... len(ticks)-1 keeping their order.
//ticks must be sorted and contain every value in g (see Ticks). g is not modified.
func Compact(g *IntGrid, ticks []int) *IntGrid {
	ret := NewIntGrid(g.Rows, g.Cols)
	pos := make(map[int]int, len(ticks))
	for i, t := range ticks {
		pos[t] = i
	}
	for i, v := range g.Data {
		ret.Data[i] = pos[v]
	}
	return ret
}

//Labels returns the labels of the phases with the 1-based indexes in ticks.
func Labels(ticks []int, phases []Phase) []string {
	ret := make([]string, 0, len(ticks))
	for _, t := range ticks {
		ret = append(ret, phases[t-1].Label)
	}
	return ret
}

//Colors returns the colors of the phases with the 1-based indexes in ticks.
//Phases without a color give an empty string.
func Colors(ticks []int, phases []Phase) []string {
	ret := make([]string, 0, len(ticks))
	for _, t := range ticks {
		ret = append(ret, phases[t-1].Color)
	}
	return ret
}
