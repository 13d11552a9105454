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

package frameloader

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/television/specification"
	"github.com/jetsetilly/vgablur/logger"
	"github.com/jetsetilly/vgablur/resources"
)

// ScreenshotError is returned by SaveScreenshot() on failure.
const ScreenshotError = "frameloader: screenshot: %v"

// ScreenshotFilename returns a unique filename in the screenshots resource
// directory.
func ScreenshotFilename(name string) (string, error) {
	fn := fmt.Sprintf("%s_%s.png", name, time.Now().Format("20060102_150405"))
	return resources.JoinPath("screenshots", fn)
}

// SaveScreenshot saves the image to the named file. The format is decided by
// the filename extension: ".bmp", ".tif" and ".tiff" are recognised and any
// other extension is saved as PNG.
//
// The image is scaled by the display scale divisor so that the screenshot is
// the same as the visible display.
func SaveScreenshot(img image.Image, filename string) error {
	b := img.Bounds()
	scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*specification.ScaleDivisor, b.Dy()*specification.ScaleDivisor))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".bmp":
		err = bmp.Encode(f, scaled)
	case ".tif", ".tiff":
		err = tiff.Encode(f, scaled, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(f, scaled)
	}
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}

	logger.Logf(logger.Allow, "frameloader", "screenshot saved to %s", filename)

	return nil
}
