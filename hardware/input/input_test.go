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

package input_test

import (
	"testing"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/input"
	"github.com/jetsetilly/vgablur/hardware/television/coords"
	"github.com/jetsetilly/vgablur/test"
)

// tv that advances one clock per tick
type clock struct {
	c coords.TelevisionCoords
}

func (tv *clock) GetCoords() coords.TelevisionCoords {
	return tv.c
}

// step the input for the number of ticks and return the ticks on which a
// start pulse was seen
func step(t *testing.T, inp *input.Input, tv *clock, ticks int) []int {
	t.Helper()
	var pulses []int
	for range ticks {
		start, err := inp.Step()
		test.DemandSuccess(t, err)
		if start {
			pulses = append(pulses, tv.c.Clock)
		}
		tv.c.Clock++
	}
	return pulses
}

func TestDebouncedPress(t *testing.T) {
	tv := &clock{}
	inp := input.NewInput(tv, nil)
	inp.SetDebounce(4)

	_, err := inp.HandleEvent(input.Press)
	test.DemandSuccess(t, err)

	// the line must be held for four ticks
	p := step(t, inp, tv, 20)
	test.DemandEquality(t, len(p), 1)
	test.ExpectEquality(t, p[0], 3)
	test.ExpectSuccess(t, inp.Level())

	// holding the button does not produce another pulse
	p = step(t, inp, tv, 100)
	test.ExpectEquality(t, len(p), 0)
}

func TestBouncingLine(t *testing.T) {
	tv := &clock{}
	inp := input.NewInput(tv, nil)
	inp.SetDebounce(4)

	// contact bounce shorter than the debounce period
	for range 10 {
		_, err := inp.HandleEvent(input.Press)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, len(step(t, inp, tv, 2)), 0)
		_, err = inp.HandleEvent(input.Release)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, len(step(t, inp, tv, 1)), 0)
	}

	// settled
	_, err := inp.HandleEvent(input.Press)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(step(t, inp, tv, 50)), 1)

	// bouncing on release doesn't produce a pulse either
	for range 10 {
		_, err = inp.HandleEvent(input.Release)
		test.DemandSuccess(t, err)
		step(t, inp, tv, 1)
		_, err = inp.HandleEvent(input.Press)
		test.DemandSuccess(t, err)
		step(t, inp, tv, 1)
	}
	test.ExpectEquality(t, inp.Pulses(), 1)
}

func TestTap(t *testing.T) {
	tv := &clock{}
	inp := input.NewInput(tv, nil)
	inp.SetDebounce(2)
	inp.SetTap(5)

	test.DemandSuccess(t, inp.PushEvent(input.Tap))
	p := step(t, inp, tv, 20)
	test.DemandEquality(t, len(p), 1)
	test.ExpectEquality(t, p[0], 1)

	// line has been released and debounced
	test.ExpectFailure(t, inp.Level())

	// a second tap makes a second pulse
	test.DemandSuccess(t, inp.PushEvent(input.Tap))
	test.ExpectEquality(t, len(step(t, inp, tv, 20)), 1)
	test.ExpectEquality(t, inp.Pulses(), 2)
}

func TestTapShorterThanDebounce(t *testing.T) {
	tv := &clock{}
	inp := input.NewInput(tv, nil)
	inp.SetDebounce(8)
	inp.SetTap(4)

	test.DemandSuccess(t, inp.PushEvent(input.Tap))
	test.ExpectEquality(t, len(step(t, inp, tv, 50)), 0)
}

func TestQueueFull(t *testing.T) {
	tv := &clock{}
	inp := input.NewInput(tv, nil)

	var err error
	for range 100 {
		err = inp.PushEvent(input.NoEvent)
		if err != nil {
			break
		}
	}
	test.ExpectSuccess(t, curated.Is(err, input.QueueFull))

	// reset drains the queue
	inp.Reset()
	test.ExpectSuccess(t, inp.PushEvent(input.Press))
}

func TestUnknownEvent(t *testing.T) {
	inp := input.NewInput(&clock{}, nil)
	_, err := inp.HandleEvent(input.Event(99))
	test.ExpectSuccess(t, curated.Is(err, input.UnknownEvent))
}

func TestRecordAndPlayback(t *testing.T) {
	tv := &clock{}
	inp := input.NewInput(tv, nil)
	inp.SetDebounce(3)

	script := &input.Script{}
	test.DemandSuccess(t, inp.AttachRecorder(script))
	test.ExpectFailure(t, inp.AttachPlayback(script))

	step(t, inp, tv, 10)
	_, err := inp.HandleEvent(input.Press)
	test.DemandSuccess(t, err)
	step(t, inp, tv, 10)
	test.DemandSuccess(t, inp.PushEvent(input.Release))
	step(t, inp, tv, 10)
	_, err = inp.HandleEvent(input.Press)
	test.DemandSuccess(t, err)
	recorded := step(t, inp, tv, 10)
	test.ExpectEquality(t, len(script.Events), 3)

	// play the script into a new input from the start
	tv = &clock{}
	inp = input.NewInput(tv, nil)
	inp.SetDebounce(3)
	test.DemandSuccess(t, inp.AttachPlayback(script))
	test.ExpectFailure(t, inp.AttachRecorder(script))

	played := step(t, inp, tv, 40)
	test.DemandEquality(t, len(played), 2)
	test.ExpectEquality(t, played[1], recorded[0])

	// user events are ignored during playback
	handled, err := inp.HandleEvent(input.Release)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, handled)

	// the script is exhausted until it is rewound
	tv = &clock{}
	inp = input.NewInput(tv, nil)
	inp.SetDebounce(3)
	test.DemandSuccess(t, inp.AttachPlayback(script))
	test.ExpectEquality(t, len(step(t, inp, tv, 40)), 0)

	script.Rewind()
	tv = &clock{}
	inp = input.NewInput(tv, nil)
	inp.SetDebounce(3)
	test.DemandSuccess(t, inp.AttachPlayback(script))
	replayed := step(t, inp, tv, 40)
	test.DemandEquality(t, len(replayed), len(played))
	for i := range played {
		test.ExpectEquality(t, replayed[i], played[i])
	}
}
