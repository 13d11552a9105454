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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/vgablur/curated"
	"github.com/jetsetilly/vgablur/frameloader"
	"github.com/jetsetilly/vgablur/govern"
	"github.com/jetsetilly/vgablur/hardware"
	"github.com/jetsetilly/vgablur/hardware/input"
	"github.com/jetsetilly/vgablur/hardware/television"
)

// sentinel error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the system using the supplied image.
//
// The system runs for the specified duration, after a short settling
// period. CPU and memory profiles are created if the profile argument is
// true.
func Check(output io.Writer, profile bool, ld frameloader.Loader, spec string, duration string) error {
	tv, err := television.NewTelevision(spec)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer tv.End()

	// measure as quickly as possible
	tv.SetFPSCap(false)

	sys, err := hardware.NewSystem(tv, nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if err := ld.Load(); err != nil {
		return curated.Errorf("performance: %v", err)
	}
	if err := sys.LoadImage(ld.Image); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := tv.GetCoords().Frame
	startTicks := sys.Ticks()
	startRuns := sys.Engine.Status().Runs

	runner := func() error {
		// the timer channel receives false when the settling period has
		// elapsed and true when the measurement period has elapsed
		timerChan := make(chan bool)
		go func() {
			time.AfterFunc(time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		return sys.Run(func() (govern.State, error) {
			// keep the engine busy
			if !sys.Engine.Active() && !sys.Input.Level() {
				if err := sys.Input.PushEvent(input.Tap); err != nil {
					return govern.Ending, err
				}
			}

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = tv.GetCoords().Frame
				startTicks = sys.Ticks()
				startRuns = sys.Engine.Status().Runs
			default:
			}

			return govern.Running, nil
		})
	}

	if profile {
		err = ProfileCPU("performance.cpu.profile", runner)
	} else {
		err = runner()
	}
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	if profile {
		if err := ProfileMem("performance.mem.profile"); err != nil {
			return err
		}
	}

	numFrames := tv.GetCoords().Frame - startFrame
	numTicks := sys.Ticks() - startTicks
	numRuns := sys.Engine.Status().Runs - startRuns

	fps, accuracy := CalcFPS(tv, numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "%.2f million ticks per second, %d blur runs\n", CalcTickRate(numTicks, dur.Seconds()), numRuns)

	return nil
}
