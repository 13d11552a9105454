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

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/vgablur/logger"
)

// Address is the address of the statistics server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// only one server can be launched
var launch sync.Once

// Launch a new goroutine running the statsview. Calling Launch() more than
// once has no effect.
func Launch(output io.Writer) {
	launch.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		go func() {
			mgr.Start()
		}()

		logger.Logf(logger.Allow, "statsview", "server started at %s", URL())
		if output != nil {
			fmt.Fprintf(output, "stats server available at %s\n", URL())
		}
	})
}

// URL returns the full location of the statistics page.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, url)
}
