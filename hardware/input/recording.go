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

package input

import (
	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/hardware/television/coords"
)

// Error patterns for attaching playback and recorder implementations.
const (
	PlaybackWithRecorder = "input: attach playback: recorder already attached"
	RecorderWithPlayback = "input: attach recorder: playback already attached"
)

// EventPlayback implementations feed events to the Input on request. The
// GetPlayback() function is called every tick until it returns NoEvent.
type EventPlayback interface {
	GetPlayback(now coords.TelevisionCoords) (Event, error)
}

// EventRecorder implementations mirror an incoming event.
type EventRecorder interface {
	RecordEvent(TimedEvent) error
}

// AttachRecorder attaches an EventRecorder implementation. EventRecorder can
// be nil in order to remove the recorder.
func (inp *Input) AttachRecorder(r EventRecorder) error {
	if r != nil && inp.playback != nil {
		return curated.Errorf(RecorderWithPlayback)
	}
	inp.recorder = r
	return nil
}

// AttachPlayback attaches an EventPlayback implementation. EventPlayback can
// be nil in order to remove the playback.
func (inp *Input) AttachPlayback(pb EventPlayback) error {
	if pb != nil && inp.recorder != nil {
		return curated.Errorf(PlaybackWithRecorder)
	}
	inp.playback = pb
	return nil
}

func (inp *Input) handlePlayback() error {
	if inp.playback == nil {
		return nil
	}

	// there may be more than one event for a tick
	now := inp.tv.GetCoords()
	for {
		ev, err := inp.playback.GetPlayback(now)
		if err != nil {
			return err
		}
		if ev == NoEvent {
			return nil
		}
		if err := inp.handle(ev); err != nil {
			return err
		}
	}
}

// Script is a list of timed events. It implements both the EventRecorder and
// EventPlayback interfaces. Events are played back on the tick they were
// recorded.
type Script struct {
	Events []TimedEvent
	next   int
}

// RecordEvent implements the EventRecorder interface.
func (s *Script) RecordEvent(ev TimedEvent) error {
	s.Events = append(s.Events, ev)
	return nil
}

// GetPlayback implements the EventPlayback interface. Events that are earlier
// than now, and which have therefore been missed, are played immediately.
func (s *Script) GetPlayback(now coords.TelevisionCoords) (Event, error) {
	if s.next >= len(s.Events) {
		return NoEvent, nil
	}
	ev := s.Events[s.next]
	if coords.GreaterThan(ev.Time, now) {
		return NoEvent, nil
	}
	s.next++
	return ev.Event, nil
}

// Rewind the script so that it can be played again.
func (s *Script) Rewind() {
	s.next = 0
}
