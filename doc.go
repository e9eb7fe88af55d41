/*
 * doc.go, part of gosurf.
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

/*Package surf computes surface and bulk phase-stability diagrams from
DFT data. It provides phase and reference structures, the free-energy
models needed to compare phases and the functions that reduce a set of
phases to a phase diagram over a 2D grid of thermodynamic variables.



	**gosurf Capabilities**


    Surface phase diagrams as a function of the chemical potentials of two
	species (MuVsMu). Surface energies are reported in J/m^2.

    Bulk phase diagrams as a function of two chemical potentials (BulkMuVsMu)
	or of one chemical potential and the temperature (MuVsT), with optional
	zero-point energy and vibrational entropy corrections. Bulk free energies
	are reported in eV per formula unit.

    Surface phase diagrams as a function of temperature and pressure of an
	adsorbing species (PVsT), using a temperature correction fitted to
	NIST-JANAF thermochemical data.

    Surface energies of every phase at a single temperature and pressure
	(WulffSlice), ready to be fed to a Wulff construction.

    Surface energy of each phase along the chemical potential of one
	species (SigmaVsMu).

    Grids of phase indexes and winning free energies (Diagram) that can be
	rendered with the phaseplot package or archived with surfjson.


Vibrational data and thermochemical tables are read through the
VibrationalProvider and ThermochemProvider interfaces, implemented by the
vib and janaf packages respectively.

Grids are gonum *mat.Dense matrices. Each row of a grid corresponds to one
value of the Y variable, each column to one value of the X variable.*/
package surf
