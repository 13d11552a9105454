// This file is part of vgablur.
//
// vgablur is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgablur is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgablur.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"os"
	"testing"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/test"
)

const testPattern = "test pattern: %s"
const wrapPattern = "wrapped: %v"

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, testPattern))
	test.ExpectFailure(t, curated.Is(err, wrapPattern))
	test.ExpectEquality(t, err.Error(), "test pattern: foo")

	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "foo")
	outer := curated.Errorf(wrapPattern, inner)

	test.ExpectFailure(t, curated.Is(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, wrapPattern))
	test.ExpectEquality(t, outer.Error(), "wrapped: test pattern: foo")
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("swapper: %s", "bad buffer")
	outer := curated.Errorf("swapper: %v", inner)
	test.ExpectEquality(t, outer.Error(), "swapper: bad buffer")
}

func TestUnwrap(t *testing.T) {
	err := curated.Errorf("prefs: %v", os.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}
