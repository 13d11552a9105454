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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/pixel"
	"github.com/jetsetilly/vgablur/hardware/preferences"
	"github.com/jetsetilly/vgablur/prefs"
	"github.com/jetsetilly/vgablur/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Debounce.Get().(int), preferences.DefaultDebounce)
	test.ExpectEquality(t, p.Tap.Get().(int), preferences.DefaultTap)
	test.ExpectEquality(t, p.BlankingPixel(), pixel.Black)
	test.ExpectEquality(t, p.FPSCap.Get().(bool), true)

	// file is created on first use
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestRangeChecks(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	err = p.Debounce.Set(0)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidValue))
	test.ExpectFailure(t, p.Tap.Set(-1))
	test.ExpectFailure(t, p.Blanking.Set(0x1000000))
	test.ExpectSuccess(t, p.Blanking.Set("0x102030"))
	test.ExpectEquality(t, p.BlankingPixel(), pixel.NewPixel(0x10, 0x20, 0x30))
}

func TestSaveAndReload(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Debounce.Set(4))
	test.ExpectSuccess(t, p.FPSCap.Set(false))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Debounce.Get().(int), 4)
	test.ExpectEquality(t, q.FPSCap.Get().(bool), false)

	// command line overrides file
	prefs.PushCommandLineStack("input.tap::9")
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.Tap.Get().(int), 9)
	prefs.PopCommandLineStack()

	test.DemandSuccess(t, q.SetDefaults())
	test.ExpectEquality(t, q.Debounce.Get().(int), preferences.DefaultDebounce)
}
