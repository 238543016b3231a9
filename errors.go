/*
 * errors.go, part of golewis.
 *
 *
 * Copyright 2024 The golewis developers
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

package lewis

import "fmt"

//Kind enumerates the user-meaningful failure classes of the solver. Every
//error leaving this package carries exactly one of them.
type Kind int

const (
	//ParseError: the formula string is malformed.
	ParseError Kind = iota + 1
	//UnknownElement: a well-formed symbol is absent from the element table.
	UnknownElement
	//RadicalUnsupported: the species has an odd (or empty) valence electron
	//count. Radicals are out of the scope of this library.
	RadicalUnsupported
	//NoCentralAtom: the formula has a single atom, or hydrogens only.
	NoCentralAtom
	//NoValidStructure: no electron arrangement satisfies conservation and
	//the octet rules.
	NoValidStructure
	//UnsupportedGeometry: the central atom's domain count has no entry in
	//the VSEPR table.
	UnsupportedGeometry
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case UnknownElement:
		return "UnknownElement"
	case RadicalUnsupported:
		return "RadicalUnsupported"
	case NoCentralAtom:
		return "NoCentralAtom"
	case NoValidStructure:
		return "NoValidStructure"
	case UnsupportedGeometry:
		return "UnsupportedGeometry"
	}
	return "UnknownKind"
}

//Error is the interface all golewis errors fulfill. The Decorate method
//allows to add and retrieve info from the error without changing its type or
//wrapping it around something else. The decoration slice should contain a
//list of the functions in the calling stack, plus, for each function, any
//relevant information, or nothing.
type Error interface {
	error
	Decorate(string) []string
	Kind() Kind
}

//CError is the concrete error type of the lewis package. It carries the
//failure Kind together with the offending formula and token, so front ends
//can show the user what exactly went wrong.
type CError struct {
	kind    Kind
	msg     string
	formula string //the formula being solved, or "" if none applies
	token   string //the offending token, or "" if none applies
	deco    []string
}

func newError(kind Kind, formula, token, msg string) *CError {
	return &CError{kind: kind, msg: msg, formula: formula, token: token}
}

func (err *CError) Error() string {
	if err.formula == "" {
		return fmt.Sprintf("golewis: %s: %s", err.kind, err.msg)
	}
	return fmt.Sprintf("golewis: %s in %q: %s", err.kind, err.formula, err.msg)
}

//Kind returns the failure class of the error.
func (err *CError) Kind() Kind { return err.kind }

//Formula returns the formula the failing run was given, if any.
func (err *CError) Formula() string { return err.formula }

//Token returns the offending token, if any.
func (err *CError) Token() string { return err.token }

//Decorate adds new information to the error.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. Calling it on any other error type is a
//programming mistake and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//KindOf returns the Kind of err, or 0 if err is not a golewis error.
func KindOf(err error) Kind {
	err2, ok := err.(Error)
	if !ok {
		return 0
	}
	return err2.Kind()
}
