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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions are fatal to the test. Use a Demand*() function when
// the value being tested must be correct for the remainder of the test to make
// sense. For example, when testing that the lengths of two slices are equal
// before iterating over them in unison.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. The currently supported types are bool
// and error. The nil value is considered a success because of how errors are
// usually returned.
//
// The CompareWriter type implements the io.Writer interface and can be used to
// capture output. The Compare() function can then be used to test for
// equality.
package test
