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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/test"
)

const testPattern = "test error: %d"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("cpu: %v", curated.Errorf("cpu: unknown opcode"))
	test.ExpectEquality(t, e.Error(), "cpu: unknown opcode")

	// non-adjacent duplicates are left alone
	e = curated.Errorf("cpu: memory: %v", curated.Errorf("cpu: fault"))
	test.ExpectEquality(t, e.Error(), "cpu: memory: cpu: fault")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectEquality(t, e.Error(), "test error: 10")

	f := curated.Errorf("wrapped: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	// uncurated errors are never curated
	test.ExpectFailure(t, curated.IsAny(errors.New(testPattern)))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestStandardWrapping(t *testing.T) {
	e := curated.Errorf(testPattern, 20)

	// curated error wrapped by the fmt package can still be found
	f := fmt.Errorf("outer: %w", e)
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectEquality(t, errors.Unwrap(curated.Errorf("outer: %v", e)).Error(), e.Error())
}
