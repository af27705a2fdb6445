// This file is part of Mipsim.
//
// Mipsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mipsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mipsim.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which is similar to the Errorf() function in the fmt
// package. The difference is that the pattern string is retained and can be
// used to identify the error later on:
//
//	e := curated.Errorf("memory: address %#08x is not mapped", addr)
//
//	if curated.Is(e, "memory: address %#08x is not mapped") {
//		fmt.Println("true")
//	}
//
// Patterns should be stored as const strings, suitably named and commented,
// so that they can be shared between the site that creates the error and the
// site that checks for it. For example, the memory package exports the
// AddressError pattern.
//
// The Has() function checks whether the pattern occurs anywhere in the error
// chain:
//
//	f := curated.Errorf("cpu: %v", e)
//	curated.Has(f, memory.AddressError) // true
//	curated.Is(f, memory.AddressError)  // false
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts are removed. Parts are separated by the sub-string ": ". This
// means that wrapping an error with the same prefix more than once does not
// produce stuttering messages:
//
//	cpu: cpu: unknown opcode
//
// becomes
//
//	cpu: unknown opcode
//
// Curated errors also implement Unwrap() so that they play nicely with the
// errors package in the standard library.
package curated
