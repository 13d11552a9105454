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

// Package input conditions the start button for the blur engine.
//
// The raw button line is sampled once per tick. The line must hold a new
// level for a number of consecutive ticks before the debounced level
// changes. A rising edge of the debounced level produces a start pulse that
// lasts for exactly one tick.
//
// The line is driven by events, which arrive in one of three ways:
//
// 1) HandleEvent(), which should only be called from the emulation goroutine
// 2) PushEvent(), which is safe to call from any goroutine
// 3) an attached EventPlayback
//
// Events handled by HandleEvent() and PushEvent() can be mirrored to an
// EventRecorder. The Script type is an in-memory implementation of both
// interfaces.
//
// The Tap event holds the line for a fixed number of ticks before releasing
// it. This is useful for input devices that have no release event, such as
// a terminal.
package input
