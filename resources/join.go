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

package resources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/vgablur/curated"
)

// ResourcesError is returned when the resource path cannot be prepared.
const ResourcesError = "resources: %v"

// JoinPath prepends the base path to the supplied path elements. The last
// element is assumed to be a filename and is not created, every other
// element is a directory and is created if necessary.
//
// An empty final element results in a path to a directory, which will be
// created.
func JoinPath(path ...string) (string, error) {
	b, err := resourcePath()
	if err != nil {
		return "", curated.Errorf(ResourcesError, err)
	}

	p := filepath.Join(path...)

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	dir := p
	if len(path) > 0 && path[len(path)-1] != "" {
		dir = filepath.Dir(p)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", curated.Errorf(ResourcesError, err)
	}

	return p, nil
}
