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

// Package curated is a helper package for the plain Go language error type.
// Curated errors remember the pattern they were created with, so that callers
// can test for a specific class of error without parsing the error message.
//
// Packages that return curated errors export the patterns they use. For
// example, the addressmap package exports the OutOfRange pattern:
//
//	if curated.Is(err, addressmap.OutOfRange) {
//		...
//	}
//
// The Has() function is like Is() but checks for the pattern anywhere in the
// chain of wrapped curated errors.
//
// Curated errors are formatted lazily, when the Error() function is called.
// Adjacent duplicate message parts are removed during formatting so that
// wrapping an error with the same prefix does not stutter.
package curated
