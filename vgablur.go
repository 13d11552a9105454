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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/vgablur/digest"
	"github.com/jetsetilly/vgablur/frameloader"
	"github.com/jetsetilly/vgablur/govern"
	"github.com/jetsetilly/vgablur/gui/sdlplay"
	"github.com/jetsetilly/vgablur/hardware"
	"github.com/jetsetilly/vgablur/hardware/input"
	"github.com/jetsetilly/vgablur/hardware/preferences"
	"github.com/jetsetilly/vgablur/hardware/television"
	"github.com/jetsetilly/vgablur/logger"
	"github.com/jetsetilly/vgablur/modalflag"
	"github.com/jetsetilly/vgablur/performance"
	"github.com/jetsetilly/vgablur/prefs"
	"github.com/jetsetilly/vgablur/statsview"
	"github.com/jetsetilly/vgablur/terminal/easyterm"
)

const defaultImage = frameloader.PatternPrefix + "checkerboard"

type stateReq string

const (
	// main thread should end as soon as possible. takes an optional int
	// argument, indicating the status code
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the launched mode handles
	// the interrupt itself
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// mainSync is used to synchronise the main thread with the goroutine in
// which the selected mode runs.
type mainSync struct {
	state chan stateRequest

	// the window must be created on the main thread
	creator       chan func() (*sdlplay.SdlPlay, error)
	creation      chan *sdlplay.SdlPlay
	creationError chan error
}

// the main thread is reserved for the window. everything else happens in
// the launch() goroutine.
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (*sdlplay.SdlPlay, error)),
		creation:      make(chan *sdlplay.SdlPlay),
		creationError: make(chan error),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	var scr *sdlplay.SdlPlay

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error
			scr, err = creator()
			if err != nil {
				scr = nil
				sync.creationError <- err
			} else {
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if v, ok := state.args.(int); ok {
					exitVal = v
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
			}

		default:
			if scr != nil {
				scr.Service()
			} else {
				time.Sleep(time.Millisecond)
			}
		}
	}

	if scr != nil {
		scr.Destroy()
	}

	os.Exit(exitVal)
}

func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "HEADLESS", "DIGEST", "PERFORMANCE", "DIAGRAM")
	md.AdditionalHelp("images are loaded from a file, an http address or a built-in pattern.\n" +
		"built-in patterns: " + frameloader.PatternPrefix + strings.Join(frameloader.PatternNames(), ", "+frameloader.PatternPrefix))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "HEADLESS":
		err = headless(md, sync)

	case "DIGEST":
		err = digestMode(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)

	case "DIAGRAM":
		err = diagram(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to every mode that creates a system
type systemFlags struct {
	spec     *string
	prefs    *string
	log      *bool
	stats    *bool
	snapshot *string
}

func addSystemFlags(md *modalflag.Modes) systemFlags {
	return systemFlags{
		spec:     md.AddString("tv", "VGA60", "television specification: VGA60, VGA72, VGA75"),
		prefs:    md.AddString("prefs", "", "preferences for this session. eg. \"input.debounce::4; video.blanking::0x0ff\""),
		log:      md.AddBool("log", false, "echo debugging log to stdout"),
		stats:    md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		snapshot: md.AddString("screenshot", "", "save the front buffer to the named file on exit"),
	}
}

// create the television and system. the image named by the first remaining
// argument is loaded into the system
func newSystem(md *modalflag.Modes, flgs systemFlags, output io.Writer) (*hardware.System, error) {
	if *flgs.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *flgs.stats {
		statsview.Launch(output)
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		filename = defaultImage
	case 1:
		filename = md.GetArg(0)
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	tv, err := television.NewTelevision(*flgs.spec)
	if err != nil {
		return nil, err
	}

	if *flgs.prefs != "" {
		prefs.PushCommandLineStack(*flgs.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "vgablur", "unused preferences: %s", unused)
			}
		}()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	sys, err := hardware.NewSystem(tv, p)
	if err != nil {
		return nil, err
	}

	ld := frameloader.NewLoader(filename)
	if err := ld.Load(); err != nil {
		return nil, err
	}
	if err := sys.LoadImage(ld.Image); err != nil {
		return nil, err
	}

	return sys, nil
}

func saveScreenshot(sys *hardware.System, filename string, output io.Writer) error {
	if filename == "" {
		return nil
	}
	if err := frameloader.SaveScreenshot(sys.Image(), filename); err != nil {
		return err
	}
	fmt.Fprintf(output, "! screenshot saved to %s\n", filename)
	return nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flgs := addSystemFlags(md)
	scaling := md.AddFloat64("scale", 1.0, "window scaling")
	savePrefs := md.AddBool("saveprefs", false, "save preferences on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, err := newSystem(md, flgs, os.Stdout)
	if err != nil {
		return err
	}
	defer sys.TV.End()

	sync.creator <- func() (*sdlplay.SdlPlay, error) {
		return sdlplay.NewSdlPlay(sys.TV, sys.Input, float32(*scaling))
	}

	var scr *sdlplay.SdlPlay
	select {
	case scr = <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	// the quit key is used to end the session
	sync.state <- stateRequest{req: reqNoIntSig}

	err = scr.SetFeature(sdlplay.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	err = sys.Run(func() (govern.State, error) {
		select {
		case ev := <-scr.Events():
			switch ev {
			case sdlplay.EventQuit:
				return govern.Ending, nil
			case sdlplay.EventScreenshot:
				fn, err := frameloader.ScreenshotFilename("vgablur")
				if err != nil {
					return govern.Ending, err
				}
				if err := saveScreenshot(sys, fn, os.Stdout); err != nil {
					logger.Log(logger.Allow, "vgablur", err.Error())
				}
			}
		default:
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	if *savePrefs {
		if err := sys.Prefs.Save(); err != nil {
			return err
		}
	}

	return saveScreenshot(sys, *flgs.snapshot, os.Stdout)
}

func headless(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flgs := addSystemFlags(md)
	numFrames := md.AddInt("frames", 0, "number of frames to run. zero or less means run until quit")
	device := md.AddString("term", easyterm.DefaultDevice, "terminal device for key presses")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, err := newSystem(md, flgs, os.Stdout)
	if err != nil {
		return err
	}
	defer sys.TV.End()

	term, err := easyterm.Open(*device, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()

	// ctrl-c arrives as a key press in cbreak mode
	sync.state <- stateRequest{req: reqNoIntSig}

	term.Print("space or t to start the blur. q to quit\n")

	swaps := sys.Mem.State().Swaps

	continueCheck := func(frame int) (govern.State, error) {
		if s := sys.Mem.State().Swaps; s != swaps {
			swaps = s
			term.Print("frame %d: buffers swapped (%d)\n", frame, swaps)
		}

		select {
		case k := <-term.Keys():
			switch k {
			case easyterm.KeySpace, 't', 'T':
				if err := sys.Input.PushEvent(input.Tap); err != nil {
					term.Print("%v\n", err)
				}
			case 'q', 'Q', easyterm.KeyInterrupt, easyterm.KeyEOT, easyterm.KeyEsc:
				return govern.Ending, nil
			}
		default:
		}

		return govern.Running, nil
	}

	// a negative count is never reached so the system runs until quit
	if *numFrames <= 0 {
		*numFrames = -1
	}
	err = sys.RunForFrameCount(*numFrames, continueCheck)
	if err != nil {
		return err
	}

	fps, ideal := sys.TV.GetActualFPS()
	term.Print("%s: %.2f fps (ideal %.2f) %d blur runs\n", sys.TV.GetCoords(), fps, ideal, sys.Engine.Status().Runs)

	return saveScreenshot(sys, *flgs.snapshot, os.Stdout)
}

// run a single blur and output the digest of the first frame to show the
// result
func digestMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flgs := addSystemFlags(md)
	limit := md.AddInt("limit", 0, "number of ticks to wait for the blur. zero or less uses the default")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, err := newSystem(md, flgs, output)
	if err != nil {
		return err
	}
	defer sys.TV.End()

	// run as quickly as possible
	sys.TV.SetFPSCap(false)

	dig, err := digest.NewVideo(sys.TV)
	if err != nil {
		return err
	}

	err = sys.Input.PushEvent(input.Tap)
	if err != nil {
		return err
	}

	ticks, err := sys.RunUntilDone(*limit)
	if err != nil {
		return err
	}

	// the buffers are swapped at the end of the frame in which the blur
	// finishes. the frame after that is the first to show the result
	err = sys.RunForFrameCount(1, nil)
	if err != nil {
		return err
	}
	dig.ResetDigest()
	err = sys.RunForFrameCount(1, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s (%d ticks)\n", dig.Hash(), ticks)

	return saveScreenshot(sys, *flgs.snapshot, output)
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	spec := md.AddString("tv", "VGA60", "television specification: VGA60, VGA72, VGA75")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 1s overhead)")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	filename := defaultImage
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return performance.Check(output, *profile, frameloader.NewLoader(filename), *spec, *duration)
}

// output a graphviz diagram of the system state, optionally after a number
// of ticks
func diagram(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flgs := addSystemFlags(md)
	ticks := md.AddInt("ticks", 0, "number of ticks to run after a start pulse")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, err := newSystem(md, flgs, os.Stderr)
	if err != nil {
		return err
	}
	defer sys.TV.End()

	if *ticks > 0 {
		if err := sys.Input.PushEvent(input.Tap); err != nil {
			return err
		}
		for range *ticks {
			if err := sys.Step(); err != nil {
				return err
			}
		}
	}

	memviz.Map(output, sys.Snapshot())

	return nil
}
