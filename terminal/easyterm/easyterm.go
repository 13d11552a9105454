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

package easyterm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/vgablur/curated"
)

// DefaultDevice is the terminal device used when none is specified.
const DefaultDevice = "/dev/tty"

// TerminalError is returned when the terminal cannot be prepared.
const TerminalError = "easyterm: %v"

// the amount of time a read will wait for a key before checking whether the
// terminal is being closed
const readTimeout = 100 * time.Millisecond

// Terminal is the main container for a terminal in cbreak mode.
type Terminal struct {
	t      *term.Term
	output io.Writer

	keys chan byte
	quit chan bool
	done chan bool
}

// Open the terminal device and put it into cbreak mode. Output is written to
// the output writer, which defaults to os.Stdout if it is nil.
func Open(device string, output io.Writer) (*Terminal, error) {
	if device == "" {
		device = DefaultDevice
	}
	if output == nil {
		output = os.Stdout
	}

	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	if err := t.SetReadTimeout(readTimeout); err != nil {
		_ = t.Restore()
		_ = t.Close()
		return nil, curated.Errorf(TerminalError, err)
	}

	pt := &Terminal{
		t:      t,
		output: output,
		keys:   make(chan byte, 16),
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	go pt.reader()

	return pt, nil
}

// reader runs in its own goroutine and sends every key to the keys channel.
// keys that arrive when the channel is full are dropped
func (pt *Terminal) reader() {
	defer close(pt.done)

	b := make([]byte, 1)
	for {
		select {
		case <-pt.quit:
			return
		default:
		}

		n, err := pt.t.Read(b)
		if err != nil {
			if errors.Is(err, io.EOF) || os.IsTimeout(err) {
				continue
			}
			return
		}
		if n == 0 {
			continue
		}

		select {
		case pt.keys <- b[0]:
		default:
		}
	}
}

// Keys returns the channel on which key presses are delivered.
func (pt *Terminal) Keys() <-chan byte {
	return pt.keys
}

// Print writes the formatted string to the output. Line feeds are converted
// to carriage return/line feed pairs because output processing may be
// affected by cbreak mode.
func (pt *Terminal) Print(s string, a ...interface{}) {
	b := []byte(fmt.Sprintf(s, a...))
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == KeyLF {
			out = append(out, KeyCR)
		}
		out = append(out, c)
	}
	pt.output.Write(out)
}

// CleanUp stops the reader goroutine and restores the terminal to the state
// it was in before Open() was called.
func (pt *Terminal) CleanUp() error {
	close(pt.quit)
	<-pt.done

	if err := pt.t.Restore(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if err := pt.t.Close(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
