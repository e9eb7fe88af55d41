/*
 * interfaces.go, part of gosurf.
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

//VibrationalProvider gives the vibrational corrections of an entity from a
//frequency source (normally a file name). For the temperatures in temps it
//returns the zero point energy (eV per formula unit), and the vibrational
//entropy (eV/K per formula unit) and free energy (eV per formula unit) at
//each temperature. The vib package implements it.
type VibrationalProvider interface {
	Vib(source string, temps []float64) (zpe float64, svib, fvib []float64, err error)
}

//ThermochemProvider gives a temperature correction, in eV, for the energy of
//a species at each of the temperatures in temps. The corrections are added
//to the energy of the species. Normally it is a smooth fit
//of tabulated experimental data. *janaf.Correction implements it.
type ThermochemProvider interface {
	Shift(temps []float64) ([]float64, error)
}

//Decorator is implemented by errors that record the functions they
//went through.
type Decorator interface {
	error
	Decorate(string) []string
}
