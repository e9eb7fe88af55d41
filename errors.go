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

package surf

import (
	"errors"
	"fmt"
	"strings"
)

//Kinds of error. All errors returned by this package match one of them
//with errors.Is.
var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrMissingParameter = errors.New("missing required parameter for this energy model")
	ErrExternal         = errors.New("external data error")
	ErrNoPhases         = errors.New("no phases given")
	ErrShape            = errors.New("grid dimension mismatch")
)

//Error is the error type of the surf package. It carries the kind of the error,
//the error that caused it, if any, and a list of the functions that passed it up.
type Error struct {
	message string
	kind    error
	cause   error
	deco    []string
}

func newError(kind error, caller, format string, a ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, a...), kind: kind, deco: []string{caller}}
}

//wrapExternal turns an error returned by a collaborator (a vibrational or
//thermochemical data provider) into an *Error of kind ErrExternal.
func wrapExternal(err error, caller, what string) *Error {
	return &Error{message: what, kind: ErrExternal, cause: err, deco: []string{caller}}
}

func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString(err.kind.Error())
	if len(err.deco) > 0 {
		b.WriteString(" in ")
		b.WriteString(err.deco[0])
	}
	if err.message != "" {
		b.WriteString(": ")
		b.WriteString(err.message)
	}
	if err.cause != nil {
		b.WriteString(": ")
		b.WriteString(err.cause.Error())
	}
	return b.String()
}

//Decorate adds the name of a caller to the error and returns the current list.
//An empty string just returns the list.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Is reports whether target is the kind of the error.
func (err *Error) Is(target error) bool { return target == err.kind }

func (err *Error) Unwrap() error { return err.cause }

//errDecorate adds caller to err if it is an *Error, and returns it.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
