/*
 * janaf.go, part of gosurf.
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

//Package janaf reads NIST-JANAF thermochemical tables and obtains from them
//temperature corrections for the energies of gas phase species.
package janaf

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Columns of a NIST-JANAF table.
const (
	ColT       = 0 //temperature, K
	ColCp      = 1 //heat capacity, J/K/mol
	ColS       = 2 //entropy, J/K/mol
	ColGEF     = 3 //-[G-H(Tr)]/T, J/K/mol
	ColH       = 4 //H-H(Tr), kJ/mol
	ColDeltaFH = 5 //formation enthalpy, kJ/mol
	ColDeltaFG = 6 //formation free energy, kJ/mol
	ColLogKf   = 7
)

//Table is a thermochemical table. Cells that do not contain a number,
//such as INFINITE or empty ones, are NaN.
type Table struct {
	Title   string
	Columns []string
	Data    *mat.Dense
}

//Parse reads a table in the tab or space separated format given by the
//NIST-JANAF database. The first line is the title, the second the column
//names, and the rest the data.
func Parse(r io.Reader) (*Table, error) {
	s := bufio.NewScanner(r)
	t := new(Table)
	var rows [][]float64
	ncols := 0
	for l := 0; s.Scan(); l++ {
		line := strings.TrimSpace(s.Text())
		switch {
		case l == 0:
			t.Title = line
			continue
		case l == 1:
			t.Columns = splitLine(line)
			continue
		case line == "":
			continue
		}
		fields := splitLine(line)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				v = math.NaN()
			}
			row[i] = v
		}
		if math.IsNaN(row[0]) {
			return nil, fmt.Errorf("janaf: line %d: invalid temperature %q", l+1, fields[0])
		}
		if len(row) > ncols {
			ncols = len(row)
		}
		rows = append(rows, row)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("janaf: reading table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("janaf: no data in table")
	}
	t.Data = mat.NewDense(len(rows), ncols, nil)
	for i, row := range rows {
		for j := 0; j < ncols; j++ {
			v := math.NaN()
			if j < len(row) {
				v = row[j]
			}
			t.Data.Set(i, j, v)
		}
	}
	return t, nil
}

func splitLine(line string) []string {
	if strings.Contains(line, "\t") {
		ret := strings.Split(line, "\t")
		for i := range ret {
			ret[i] = strings.TrimSpace(ret[i])
		}
		return ret
	}
	return strings.Fields(line)
}

//Read reads the table in the file path. See Parse.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("janaf: %w", err)
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return t, nil
}

//Rows returns the number of data rows in the table.
func (t *Table) Rows() int {
	r, _ := t.Data.Dims()
	return r
}

//Col returns a copy of the jth column of the table.
func (t *Table) Col(j int) []float64 {
	return mat.Col(nil, j, t.Data)
}

//points returns the temperatures and values of column col for the rows
//with a positive temperature and a finite value.
func (t *Table) points(col int) ([]float64, []float64, error) {
	_, c := t.Data.Dims()
	if col <= ColT || col >= c {
		return nil, nil, fmt.Errorf("janaf: column %d out of range", col)
	}
	var x, y []float64
	for i := 0; i < t.Rows(); i++ {
		temp, v := t.Data.At(i, ColT), t.Data.At(i, col)
		if temp <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		x = append(x, temp)
		y = append(y, v)
	}
	return x, y, nil
}

//Fit fits a cubic polynomial to column col of the table as a function of
//the temperature, and evaluates it at each temperature in temps.
func Fit(t *Table, col int, temps []float64) ([]float64, error) {
	x, y, err := t.points(col)
	if err != nil {
		return nil, err
	}
	p, err := Polyfit(x, y, 3)
	if err != nil {
		return nil, fmt.Errorf("janaf: fitting column %d: %w", col, err)
	}
	ret := make([]float64, len(temps))
	for i, v := range temps {
		ret[i] = p.Eval(v)
	}
	return ret, nil
}
