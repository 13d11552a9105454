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

package blur

import (
	"fmt"

	"github.com/jetsetilly/vgablur/hardware/memory/addressmap"
	"github.com/jetsetilly/vgablur/hardware/memory/bus"
	"github.com/jetsetilly/vgablur/hardware/pixel"
	"github.com/jetsetilly/vgablur/logger"
)

// TicksPerPixel is the number of ticks taken to blur a single pixel.
const TicksPerPixel = WindowTicks + 2

// RunTicks is the number of ticks from the tick that accepts the start pulse
// to the tick that asserts the done pulse, inclusive.
const RunTicks = TicksPerPixel*addressmap.InteriorSize + 2

// Signals are the outputs of the engine for a single tick.
type Signals struct {
	// the request to present to memory. the write-enable will only be set
	// while Active is true
	bus.Request

	// the engine is in the middle of a run
	Active bool

	// the run has finished. a pulse that is asserted for the tick after the
	// final write
	Done bool
}

func (sig Signals) String() string {
	return fmt.Sprintf("active=%v done=%v %s", sig.Active, sig.Done, sig.Request)
}

// Status is a snapshot of the engine's internal state.
type Status struct {
	State     State
	X, Y      int
	Counter   int
	Processed int
	Window    Neighbourhood
	Runs      int
}

func (s Status) String() string {
	return fmt.Sprintf("%s (%d, %d) counter=%d processed=%d", s.State, s.X, s.Y, s.Counter, s.Processed)
}

// Engine is the blur state machine.
type Engine struct {
	state   State
	counter int

	seq Sequencer
	win Window

	// result of the convolution and where to write it
	result pixel.Pixel
	target int

	// the address most recently presented to memory. held while no new
	// address is being requested
	address int

	// done flag. cleared on the first Idle tick after it is set
	done bool

	// the number of runs started since creation
	runs int
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine() *Engine {
	eng := &Engine{}
	eng.seq.Reset()
	return eng
}

func (eng *Engine) String() string {
	return eng.Status().String()
}

// Step advances the engine by one tick. The start argument should be a single
// tick pulse. The readData argument is the data returned by memory for the
// request presented on the previous tick.
//
// The returned Signals are the outputs for this tick, computed from the state
// at the start of the tick.
func (eng *Engine) Step(start bool, readData pixel.Pixel) Signals {
	var sig Signals

	switch eng.state {
	case Idle:
		sig.Done = eng.done
		sig.Address = eng.address

		// a start pulse on the tick immediately after a run has finished is
		// dropped
		if start && !eng.done {
			eng.seq.Reset()
			eng.counter = 0
			eng.win.Begin(eng.seq.X, eng.seq.Y)
			eng.state = ReadPixels
			eng.runs++
			logger.Logf(logger.Allow, "blur", "run %d started", eng.runs)
		}
		eng.done = false

	case ReadPixels:
		sig.Active = true

		// data requested on the previous tick
		if eng.counter > 0 {
			eng.win.Store(eng.counter-1, readData)
		}

		if eng.counter < WindowSize {
			eng.address = eng.win.Address(eng.counter)
		}
		sig.Address = eng.address

		if eng.counter == WindowSize {
			eng.counter = 0
			eng.state = Process
		} else {
			eng.counter++
		}

	case Process:
		sig.Active = true
		sig.Address = eng.address

		if !eng.win.Complete() {
			panic(fmt.Sprintf("blur: convolution with an incomplete window at (%d, %d)", eng.seq.X, eng.seq.Y))
		}

		eng.result = Convolve(eng.win.Neighbourhood())
		eng.target = eng.seq.Address()
		eng.state = Write

	case Write:
		sig.Active = true
		sig.Request = bus.Request{
			Address:     eng.target,
			WriteEnable: true,
			Data:        eng.result,
		}
		eng.address = eng.target

		if eng.seq.Advance() {
			eng.done = true
			eng.state = Idle
			logger.Logf(logger.Allow, "blur", "run %d finished: %d pixels", eng.runs, eng.seq.Processed)
		} else {
			eng.counter = 0
			eng.win.Begin(eng.seq.X, eng.seq.Y)
			eng.state = ReadPixels
		}
	}

	return sig
}

// State returns the current state of the engine.
func (eng *Engine) State() State {
	return eng.state
}

// Active returns true if the engine is in the middle of a run.
func (eng *Engine) Active() bool {
	return eng.state != Idle
}

// Status returns a snapshot of the engine's internal state.
func (eng *Engine) Status() Status {
	return Status{
		State:     eng.state,
		X:         eng.seq.X,
		Y:         eng.seq.Y,
		Counter:   eng.counter,
		Processed: eng.seq.Processed,
		Window:    eng.win.Neighbourhood(),
		Runs:      eng.runs,
	}
}

// Reset the engine to the Idle state. Any run in progress is abandoned.
func (eng *Engine) Reset() {
	eng.state = Idle
	eng.counter = 0
	eng.done = false
	eng.address = 0
	eng.seq.Reset()
}
