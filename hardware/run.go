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

package hardware

import (
	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/govern"
	"github.com/jetsetilly/vgablur/hardware/blur"
)

// PerformanceBrake is the number of ticks between calls to the continueCheck
// function in Run(). Checking every tick would be very expensive.
const PerformanceBrake = 1000

// UnsupportedState is returned by Run() when the continue check returns a
// state that Run() cannot handle.
const UnsupportedState = "system: unsupported emulation state (%s) in Run() function"

// NoDone is returned by RunUntilDone() when the engine does not finish a run.
const NoDone = "system: engine did not finish within %d ticks"

// Run sets the system running as quickly as possible. The continueCheck
// function is called every PerformanceBrake ticks and the loop ends when it
// returns govern.Ending.
//
// While the state is govern.Paused the system is not stepped but
// continueCheck is still called. It is the responsibility of the
// continueCheck function to not spin too quickly while paused.
func (sys *System) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			for range PerformanceBrake {
				if err := sys.Step(); err != nil {
					return err
				}
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the system running for the specified number of
// frames. The continueCheck function is called once per frame and can be
// nil.
func (sys *System) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	frameNum := sys.TV.GetCoords().Frame
	targetFrame := frameNum + numFrames

	state := govern.Running
	for frameNum != targetFrame && state != govern.Ending {
		if err := sys.Step(); err != nil {
			return err
		}

		fn := sys.TV.GetCoords().Frame
		if fn != frameNum {
			frameNum = fn

			var err error
			state, err = continueCheck(frameNum)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// RunUntilDone steps the system until the engine asserts the done pulse. The
// engine must be running or be about to receive a start pulse. The number of
// ticks taken is returned.
//
// The limit is the number of ticks allowed before a NoDone error is returned.
// A limit of zero or less means twice the length of a run plus the debounce
// period.
func (sys *System) RunUntilDone(limit int) (int, error) {
	if limit <= 0 {
		limit = blur.RunTicks * 2
		if sys.Prefs != nil {
			limit += sys.Prefs.Debounce.Get().(int)
		}
	}

	for n := 1; n <= limit; n++ {
		if err := sys.Step(); err != nil {
			return n, err
		}
		if sys.signals.Done {
			return n, nil
		}
	}

	return limit, curated.Errorf(NoDone, limit)
}
