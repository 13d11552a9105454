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

package blur

// State of the blur engine.
type State int

// List of valid states.
const (
	Idle State = iota
	ReadPixels
	Process
	Write
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case ReadPixels:
		return "ReadPixels"
	case Process:
		return "Process"
	case Write:
		return "Write"
	}
	return "unknown"
}
