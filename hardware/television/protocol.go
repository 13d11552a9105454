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

package television

import (
	"github.com/jetsetilly/vgablur/hardware/television/signal"
	"github.com/jetsetilly/vgablur/hardware/television/specification"
)

// PixelRenderer implementations display, or otherwise work with, the visual
// information from a television. For example digest.Video.
type PixelRenderer interface {
	// Resize is called when the renderer is added to the television and
	// whenever the specification changes.
	Resize(spec specification.Spec) error

	// NewFrame is called at the start of every frame.
	NewFrame(frameNum int) error

	// SetPixel is called every tick, regardless of the state of the beam.
	// Renderers should use the Beam field of the SignalAttributes to decide
	// where, or whether, the pixel should be shown.
	SetPixel(sig signal.SignalAttributes) error

	// some renderers may need to conclude and/or dispose of resources gently.
	// for simplicity, the PixelRenderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// FrameTrigger implementations listen for NewFrame events. FrameTrigger is a
// subset of PixelRenderer.
type FrameTrigger interface {
	NewFrame(frameNum int) error
}
