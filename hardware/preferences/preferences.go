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

// Package preferences contains the preference values used by the hardware
// package and its sub-packages.
package preferences

import (
	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/pixel"
	"github.com/jetsetilly/vgablur/prefs"
	"github.com/jetsetilly/vgablur/resources"
)

// Default preference values.
const (
	DefaultDebounce = 16
	DefaultTap      = 64
	DefaultBlanking = int(pixel.Black)
	DefaultFPSCap   = true
)

// InvalidValue is returned when a preference is set to a value outside of
// its range.
const InvalidValue = "preferences: %s: invalid value (%v)"

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the number of consecutive ticks the start button line must hold a new
	// level before the debounced level changes
	Debounce prefs.Int

	// the number of ticks a tap event holds the start button line
	Tap prefs.Int

	// the colour sent to the television outside of the visible area
	Blanking prefs.Int

	// whether to limit the number of frames per second to the refresh rate
	FPSCap prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// preferences file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Debounce.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(InvalidValue, "input.debounce", v)
		}
		return nil
	})
	p.Tap.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(InvalidValue, "input.tap", v)
		}
		return nil
	})
	p.Blanking.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > int(pixel.Mask) {
			return curated.Errorf(InvalidValue, "video.blanking", v)
		}
		return nil
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("input.debounce", &p.Debounce); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("input.tap", &p.Tap); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("video.blanking", &p.Blanking); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("video.fpsCap", &p.FPSCap); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Debounce.Set(DefaultDebounce); err != nil {
		return err
	}
	if err := p.Tap.Set(DefaultTap); err != nil {
		return err
	}
	if err := p.Blanking.Set(DefaultBlanking); err != nil {
		return err
	}
	return p.FPSCap.Set(DefaultFPSCap)
}

// BlankingPixel returns the blanking preference as a pixel value.
func (p *Preferences) BlankingPixel() pixel.Pixel {
	return pixel.Pixel(p.Blanking.Get().(int)) & pixel.Mask
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
