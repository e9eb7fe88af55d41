/*
 * correction.go, part of gosurf.
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
)

//evPerKJMol converts kJ/mol to eV.
const evPerKJMol = 1 / 96.48533212

//Correction gives the temperature correction -T*S(T) for the energy of a species,
//where S(T) is a smooth fit to a column (normally the entropy) of a table.
type Correction struct {
	Table  *Table
	Column int
}

//NewCorrection returns a Correction that uses the entropy column of t.
func NewCorrection(t *Table) *Correction {
	return &Correction{Table: t, Column: ColS}
}

//Shift returns the correction, in eV, to be added to the energy of the species at
//each temperature in temps.
func (c *Correction) Shift(temps []float64) ([]float64, error) {
	if c == nil || c.Table == nil {
		return nil, fmt.Errorf("janaf: correction without a table")
	}
	s, err := Fit(c.Table, c.Column, temps)
	if err != nil {
		return nil, err
	}
	for i, t := range temps {
		s[i] = -t * (s[i] / 1000) * evPerKJMol
	}
	return s, nil
}

//TemperatureCorrection returns energy corrected with c at each of the temperatures
//in temps.
func TemperatureCorrection(temps []float64, c *Correction, energy float64) ([]float64, error) {
	s, err := c.Shift(temps)
	if err != nil {
		return nil, err
	}
	for i := range s {
		s[i] += energy
	}
	return s, nil
}

//Gibbs returns the Gibbs free energy shift, in eV, at temperature t, given the
//entropy s in J/K/mol and the enthalpy h in kJ/mol.
func Gibbs(t, s, h float64) float64 {
	return h*evPerKJMol - t*(s/1000)*evPerKJMol
}

//GibbsTable returns the temperatures of t, and the Gibbs free energy
//shift at each of them, obtained from the entropy and H-H(Tr) columns.
//Rows without those values are skipped.
func GibbsTable(t *Table) ([]float64, []float64) {
	var temps, g []float64
	for i := 0; i < t.Rows(); i++ {
		temp, s, h := t.Data.At(i, ColT), t.Data.At(i, ColS), t.Data.At(i, ColH)
		if math.IsNaN(s) || math.IsNaN(h) {
			continue
		}
		temps = append(temps, temp)
		g = append(g, Gibbs(temp, s, h))
	}
	return temps, g
}
