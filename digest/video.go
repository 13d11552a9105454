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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/television"
	"github.com/jetsetilly/vgablur/hardware/television/signal"
	"github.com/jetsetilly/vgablur/hardware/television/specification"
)

// Video is an implementation of the television.PixelRenderer interface. It
// generates a SHA-1 value of the visible image every frame. It does not
// display the image anywhere.
//
// The digest of each frame includes the digest of the previous frame, so the
// hash is a fingerprint of every frame since the digest was last reset.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

const pixelDepth = 3

// NewVideo initialises a new instance of Video and attaches it to the
// television.
func NewVideo(tv *television.Television) (*Video, error) {
	dig := &Video{}
	if err := tv.AddPixelRenderer(dig); err != nil {
		return nil, curated.Errorf("digest: %v", err)
	}
	return dig, nil
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// Frame returns the number of the frame most recently started.
func (dig *Video) Frame() int {
	return dig.frameNum
}

// Resize implements television.PixelRenderer interface.
func (dig *Video) Resize(_ specification.Spec) error {
	// room for the previous digest followed by the visible pixels
	l := len(dig.digest) + specification.ClksVisible*specification.ScanlinesVisible*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}
	return nil
}

// NewFrame implements television.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// SetPixel implements television.PixelRenderer interface.
func (dig *Video) SetPixel(sig signal.SignalAttributes) error {
	if !sig.Beam.Active {
		return nil
	}

	i := len(dig.digest)
	i += (sig.Beam.Scanline*specification.ClksVisible + sig.Beam.Clock) * pixelDepth
	dig.pixels[i] = sig.Pixel.R()
	dig.pixels[i+1] = sig.Pixel.G()
	dig.pixels[i+2] = sig.Pixel.B()

	return nil
}

// EndRendering implements television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
