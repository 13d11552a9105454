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
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	// register additional decoders with the image package
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/memory/addressmap"
	"github.com/jetsetilly/vgablur/logger"
)

// Error patterns returned by the Loader type.
const (
	LoadError         = "frameloader: %v"
	UnsupportedScheme = "frameloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "frameloader: unexpected hash value"
)

// PatternPrefix indicates that the filename is the name of a test pattern.
const PatternPrefix = "pattern:"

// Loader is used to specify the image to load into the framebuffer.
type Loader struct {
	// filename of the image to load
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// the format of the image as reported by the decoder
	Format string

	// the decoded image, scaled to the size of the framebuffer
	Image *image.RGBA
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	if strings.HasPrefix(ld.Filename, PatternPrefix) {
		return strings.TrimPrefix(ld.Filename, PatternPrefix)
	}
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.Image != nil
}

// Load the image. Loader filenames with a valid scheme will use that method
// to load the data. Currently supported schemes are HTTP and local files.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	if strings.HasPrefix(ld.Filename, PatternPrefix) {
		img, err := Pattern(ld.ShortName())
		if err != nil {
			return err
		}
		ld.Image = img
		ld.Format = "pattern"
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}
		ld.Data, err = io.ReadAll(resp.Body)
	case "file":
		ld.Data, err = os.ReadFile(ld.Filename)
	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash)
	}
	ld.Hash = hash

	src, format, err := image.Decode(bytes.NewReader(ld.Data))
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	ld.Format = format
	ld.Image = Fit(src)

	logger.Logf(logger.Allow, "frameloader", "%s (%s %dx%d)", ld.ShortName(), format, src.Bounds().Dx(), src.Bounds().Dy())

	return nil
}

// Fit returns a copy of the image that is the same size as the framebuffer.
// Images of a different size are scaled.
func Fit(src image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, addressmap.Width, addressmap.Height))
	if src.Bounds().Dx() == addressmap.Width && src.Bounds().Dy() == addressmap.Height {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	return dst
}
