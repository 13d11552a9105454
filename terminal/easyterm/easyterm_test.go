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

package easyterm

import (
	"testing"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/test"
)

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open("/dev/no-such-terminal", nil)
	test.ExpectSuccess(t, curated.Is(err, TerminalError))
}

func TestPrint(t *testing.T) {
	w := &test.Writer{}
	pt := &Terminal{output: w}
	pt.Print("run %d\nfinished\n", 1)
	test.ExpectSuccess(t, w.Compare("run 1\r\nfinished\r\n"))
}
