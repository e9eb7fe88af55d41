/*
 * constants.go, part of gosurf.
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

import "gonum.org/v1/gonum/unit/constant"

//Physical constants and unit conversions, all derived from CODATA values.
const (
	//GasConstant is the molar gas constant, J mol^-1 K^-1.
	GasConstant = float64(constant.Boltzmann) * float64(constant.Avogadro)

	//Avogadro is the Avogadro constant, mol^-1.
	Avogadro = float64(constant.Avogadro)

	//BoltzmannEV is the Boltzmann constant in eV K^-1.
	BoltzmannEV = float64(constant.Boltzmann) / float64(constant.ElementaryCharge)

	//EVToJPerMol converts eV per particle to J mol^-1 (about 96485).
	EVToJPerMol = float64(constant.ElementaryCharge) * float64(constant.Avogadro)

	//EVPerA2ToJPerM2 converts eV Å^-2 to J m^-2 (about 16.02).
	EVPerA2ToJPerM2 = float64(constant.ElementaryCharge) * 1e20

	//pressureFactor is the empirical factor used to map a chemical
	//potential axis onto a pressure axis.
	pressureFactor = 2.203
)

//Energy units reported by the different models.
const (
	UnitsSurface = "J/m^2"
	UnitsBulk    = "eV"
)
