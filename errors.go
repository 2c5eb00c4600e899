/*
 * errors.go, part of curview.
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
 */

package curv

import "strings"

//Error is the error type for the package. It accumulates a "decoration"
//trail of the functions the error crossed on its way up.
type Error struct {
	msg  string
	deco []string
}

func (e *Error) Error() string {
	if len(e.deco) == 0 {
		return e.msg
	}
	return strings.Join(e.deco, "/") + ": " + e.msg
}

//Decorate adds dec to the decoration trail of the error and returns the
//resulting trail. An empty dec only queries the current trail.
func (e *Error) Decorate(dec string) []string {
	if dec != "" {
		e.deco = append(e.deco, dec)
	}
	return e.deco
}

//errDecorate decorates err with the caller name if err is an *Error,
//and wraps it into one otherwise. A nil err is returned as given.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	e, ok := err.(*Error)
	if !ok {
		e = &Error{msg: err.Error()}
	}
	e.Decorate(caller)
	return e
}
