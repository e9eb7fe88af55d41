/*
 * options.go, part of gosurf.
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
	"runtime"

	"go.uber.org/zap"
)

//Options for the phase diagram calculations.
type Options struct {
	cpus   int
	logger *zap.Logger
}

//DefaultOptions returns an Options with the default values:
//as many goroutines as logical CPUs and a no-op logger.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cpus = runtime.NumCPU()
	ret.logger = zap.NewNop()
	return ret
}

//Cpus returns the number of goroutines used to evaluate the free energy
//of the phases, and sets it, if a valid value is given.
func (o *Options) Cpus(cpus ...int) int {
	ret := o.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		o.cpus = cpus[0]
	}
	return ret
}

//Logger returns the logger used by the calculations and sets it,
//if a non-nil one is given.
func (o *Options) Logger(l ...*zap.Logger) *zap.Logger {
	ret := o.logger
	if len(l) > 0 && l[0] != nil {
		o.logger = l[0]
	}
	return ret
}

//getOptions returns a copy of the first non-nil options given, with
//defaults filled in, or the default options.
func getOptions(o []*Options) *Options {
	if len(o) > 0 && o[0] != nil {
		ret := *o[0]
		if ret.cpus <= 0 {
			ret.cpus = 1
		}
		if ret.logger == nil {
			ret.logger = zap.NewNop()
		}
		return &ret
	}
	return DefaultOptions()
}
