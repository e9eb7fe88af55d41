/*
 * errors.go, part of gosurf.
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

package vib

import (
	"errors"
	"fmt"
)

//Error is the error type of this package.
type Error struct {
	message string
	cause   error
	deco    []string
}

func newError(caller, format string, a ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, a...), deco: []string{caller}}
}

func wrapError(err error, caller, message string) *Error {
	return &Error{message: message, cause: err, deco: []string{caller}}
}

func (err *Error) Error() string {
	if err.cause != nil {
		return fmt.Sprintf("vib: %s: %v", err.message, err.cause)
	}
	return "vib: " + err.message
}

func (err *Error) Unwrap() error { return err.cause }

//Decorate adds dec to the list of functions the error went through,
//and returns the list.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
