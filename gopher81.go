// This file is part of Gopher81.
//
// Gopher81 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher81 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher81.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/digest"
	"github.com/jetsetilly/gopher81/disassembly"
	"github.com/jetsetilly/gopher81/govern"
	"github.com/jetsetilly/gopher81/hardware"
	"github.com/jetsetilly/gopher81/hardware/input"
	"github.com/jetsetilly/gopher81/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher81/hardware/preferences"
	"github.com/jetsetilly/gopher81/hardware/television/limiter"
	"github.com/jetsetilly/gopher81/logger"
	"github.com/jetsetilly/gopher81/modalflag"
	"github.com/jetsetilly/gopher81/paths"
	"github.com/jetsetilly/gopher81/performance"
	"github.com/jetsetilly/gopher81/prefs"
	"github.com/jetsetilly/gopher81/recorder"
	"github.com/jetsetilly/gopher81/regression"
	"github.com/jetsetilly/gopher81/statsview"
	"github.com/jetsetilly/gopher81/tape"
	"github.com/jetsetilly/gopher81/terminal/display"
	"github.com/jetsetilly/gopher81/terminal/easyterm"
	"github.com/jetsetilly/gopher81/terminal/keymap"
	"github.com/jetsetilly/gopher81/version"
	"github.com/jetsetilly/gopher81/wavwriter"
)

// the ROM file used when the -rom flag is not given. the file is looked for in
// the resource directory
const defaultROM = "zx81.rom"

// the number of frames to wait before typing the LOAD command for a program
// named on the command line. the ROM must have finished clearing memory
const autoLoadFrame = 150

// exit values
const (
	exitOk        = 0
	exitArgsError = 10
	exitRunError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TAPE", "DISASM", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOk

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgsError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "TAPE":
		err = tapeTools(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		v, r, _ := version.Version()
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitRunError
	}

	return exitOk
}

// newMachine creates a machine with the preferences from the resource
// directory and the ROM loaded.
func newMachine(romFile string, prefsOverride string) (*hardware.Machine, error) {
	if prefsOverride != "" {
		prefs.PushCommandLineStack(prefsOverride)
		defer prefs.PopCommandLineStack()
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(p)
	if err != nil {
		return nil, err
	}

	if romFile == "" {
		romFile, err = paths.ResourcePath("", defaultROM)
		if err != nil {
			return nil, err
		}
	}

	err = m.LoadROMFile(romFile)
	if err != nil {
		return nil, err
	}

	logger.Logf(m.Env, "gopher81", "rom loaded from %s", romFile)

	return m, nil
}

// loadCommand is the sequence of taps that enter LOAD "NAME" and NEWLINE.
// the LOAD keyword is on the J key in K mode
func loadCommand(name string) ([]input.Tap, error) {
	var taps []input.Tap

	for _, r := range "J\"" + strings.ToUpper(name) + "\"\r" {
		t, ok := keymap.Tap(easyterm.Key(r))
		if !ok {
			return nil, curated.Errorf("cannot type %q in program name", r)
		}
		taps = append(taps, t)
	}

	return taps, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	romFile := md.AddString("rom", "", "ROM file (default zx81.rom in the resource directory)")
	tapeDir := md.AddString("tapedir", ".", "directory searched by LOAD")
	prefsOverride := md.AddString("prefs", "", "preferences for this session (eg. \"hardware.ramsize::1\")")
	displayMode := md.AddString("display", "text", "display mode: text, pixels")
	log := md.AddBool("log", false, "echo log to stderr")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the refresh rate of the ZX81")
	saveWav := md.AddString("savewav", "", "record SAVE output to wav file")
	ear := md.AddString("ear", "", "play wav or mp3 recording into the EAR socket")
	record := md.AddString("record", "", "record keyboard input to file")
	playback := md.AddString("playback", "", "playback keyboard input from file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	memvizFile := md.AddString("memviz", "", "write dot graph of the CPU and ULA to file on exit")

	md.AdditionalHelp("A program named as an argument is loaded from its directory\nwith the LOAD command once the machine has started.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(logger.Allow, statsview.DefaultAddress)
	}

	if *record != "" && *playback != "" {
		return curated.Errorf("cannot record and playback at the same time")
	}

	mode, err := display.ParseMode(*displayMode)
	if err != nil {
		return err
	}

	m, err := newMachine(*romFile, *prefsOverride)
	if err != nil {
		return err
	}

	var autoLoad []input.Tap

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		name := md.GetArg(0)
		*tapeDir = filepath.Dir(name)
		name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		autoLoad, err = loadCommand(name)
		if err != nil {
			return err
		}
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	deck := tape.NewDeck(m, *tapeDir)
	defer deck.Eject()

	inp := input.NewInput(m)
	m.AddFrameTrigger(inp)

	if *saveWav != "" {
		ww, err := wavwriter.New(m.Env, *saveWav)
		if err != nil {
			return err
		}
		m.AttachMIC(ww)
		defer func() {
			m.AttachMIC(nil)
			if err := ww.Close(); err != nil {
				logger.Log(logger.Allow, "gopher81", err)
			}
		}()
	}

	if *ear != "" {
		pcm, err := tape.ReadPCM(m.Env, *ear)
		if err != nil {
			return err
		}
		m.AttachTape(tape.NewPlayer(pcm))
	}

	var plb *recorder.Playback

	if *record != "" {
		rec, err := recorder.NewRecorder(*record, m, inp)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.End(); err != nil {
				logger.Log(logger.Allow, "gopher81", err)
			}
		}()
	} else if *playback != "" {
		plb, err = recorder.NewPlayback(*playback)
		if err != nil {
			return err
		}
		err = plb.AttachToMachine(m, inp)
		if err != nil {
			return err
		}
		autoLoad = nil
	}

	term, err := easyterm.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.Close()

	disp := display.NewDisplay(term, mode)
	err = disp.Start()
	if err != nil {
		return err
	}
	defer disp.End()
	m.AddFrameTrigger(disp)

	// keyboard input is read in its own goroutine and handled between frames
	keys := make(chan []easyterm.Key, 16)
	readErr := make(chan error, 1)
	go func() {
		b := make([]byte, 32)
		for {
			n, err := term.Read(b)
			if err != nil {
				readErr <- err
				return
			}
			keys <- easyterm.Decode(b[:n])
		}
	}()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()
	lmtr.Active = *fpsCap

	status := func() {
		s := fmt.Sprintf("%s  %.1f fps", mode, lmtr.Measured.Load().(float32))
		if deck.Loaded.Name != "" {
			s = fmt.Sprintf("%s  %s", s, deck.Loaded.Name)
		}
		if plb != nil {
			s = fmt.Sprintf("%s  playback", s)
		}
		disp.SetStatus(s)
	}

	err = m.Run(func() (govern.State, error) {
		lmtr.CheckFrame()
		lmtr.MeasureActual()
		status()

		if autoLoad != nil && m.TV.FrameNum() >= autoLoadFrame {
			for _, t := range autoLoad {
				if err := inp.PushTap(t); err != nil {
					return govern.Ending, err
				}
			}
			autoLoad = nil
		}

		if plb != nil && plb.EndFrame() {
			return govern.Ending, nil
		}

		select {
		case <-intChan:
			return govern.Ending, nil

		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return govern.Ending, nil
			}
			return govern.Ending, err

		case ks := <-keys:
			for _, k := range ks {
				switch k {
				case easyterm.KeyInterrupt, easyterm.KeyEsc:
					return govern.Ending, nil
				case easyterm.KeySuspend:
					if err := term.Suspend(); err != nil {
						return govern.Ending, err
					}
					continue
				}

				// keys are ignored during playback
				if plb != nil {
					continue
				}

				t, ok := keymap.Tap(k)
				if !ok {
					continue
				}
				err := inp.PushTap(t)
				if err != nil && !curated.Is(err, input.QueueFull) {
					return govern.Ending, err
				}
			}
		default:
		}

		return govern.Running, nil
	})

	if *memvizFile != "" {
		if err := writeMemviz(*memvizFile, m); err != nil {
			logger.Log(logger.Allow, "gopher81", err)
		}
	}

	return err
}

// writeMemviz writes a dot graph of the CPU's register file, the result of
// the last instruction and the ULA.
func writeMemviz(filename string, m *hardware.Machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, &m.CPU.File, &m.CPU.LastResult, m.ULA)

	return nil
}

func tapeTools(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("ENCODE", "DECODE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "ENCODE":
		md.NewMode()
		rate := md.AddInt("rate", tape.DefaultSampleRate, "sample rate of the wav file")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) < 2 {
			return curated.Errorf("a wav file and at least one program file are required")
		}

		var programs []tape.Program
		for _, fn := range md.RemainingArgs()[1:] {
			prg, err := tape.LoadProgram(fn)
			if err != nil {
				return err
			}
			programs = append(programs, prg)
		}

		pcm, err := tape.Encode(*rate, programs...)
		if err != nil {
			return err
		}

		err = tape.WriteWAV(md.GetArg(0), pcm)
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "%d program(s) written to %s (%s)\n", len(programs), md.GetArg(0), pcm)

	case "DECODE":
		md.NewMode()
		dir := md.AddString("dir", ".", "directory to save programs in")
		log := md.AddBool("log", false, "echo log to stderr")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if *log {
			logger.SetEcho(logger.NewColorizer(os.Stderr))
		}

		if len(md.RemainingArgs()) != 1 {
			return curated.Errorf("a single wav or mp3 file is required")
		}

		pcm, err := tape.ReadPCM(logger.Allow, md.GetArg(0))
		if err != nil {
			return err
		}

		programs, err := tape.Decode(logger.Allow, pcm)
		if err != nil {
			return err
		}

		for _, prg := range programs {
			fn, err := prg.Save(*dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(md.Output, "%s saved to %s\n", prg, fn)
		}
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	romFile := md.AddString("rom", "", "ROM file (default zx81.rom in the resource directory)")
	grep := md.AddString("grep", "", "only show lines that match the pattern")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	m, err := newMachine(*romFile, "")
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromMemory(m.Mem, memorymap.OriginROM, memorymap.MemtopROM, disassembly.DefaultEntryPoints...)
	if err != nil {
		return err
	}

	if *grep != "" {
		return dsm.Grep(md.Output, *grep)
	}
	return dsm.Write(md.Output)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	romFile := md.AddString("rom", "", "ROM file (default zx81.rom in the resource directory)")
	prefsOverride := md.AddString("prefs", "", "preferences for this session")
	fpsCap := md.AddBool("fpscap", false, "cap fps to the refresh rate of the ZX81")
	duration := md.AddDuration("duration", 5*time.Second, "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "profiling: cpu, mem, trace, all (comma separated)")
	withDigest := md.AddBool("digest", false, "print video and audio digests at the end of the run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine(*romFile, *prefsOverride)
	if err != nil {
		return err
	}
	m.Env.Quiet = true

	var dig *digest.Video
	var aud *digest.Audio
	if *withDigest {
		dig = digest.NewVideo()
		m.AddFrameTrigger(dig)
		aud = digest.NewAudio()
		m.AttachMIC(aud)
	}

	err = performance.Check(md.Output, prf, m, !*fpsCap, *duration)
	if err != nil {
		return err
	}

	if dig != nil {
		fmt.Fprintf(md.Output, "video %s\naudio %s\n", dig.Hash(), aud.Hash())
	}

	return nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(md.Output, *verbose, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) != 1 {
			return curated.Errorf("a single regression key is required")
		}

		var confirmation io.Reader = os.Stdin
		if *answerYes {
			confirmation = strings.NewReader("y")
		}

		return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))

	case "ADD":
		md.NewMode()
		romFile := md.AddString("rom", "", "ROM file (default zx81.rom in the resource directory)")
		tapeDir := md.AddString("tapedir", "", "directory searched by LOAD during playback")
		numFrames := md.AddInt("frames", 100, "number of frames to run (video tests only)")
		notes := md.AddString("notes", "", "additional annotation for the database")

		md.AdditionalHelp("A video test is added if there is no argument. A playback test\nis added if the argument is a keyboard recording.")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if *romFile == "" {
			*romFile, err = paths.ResourcePath("", defaultROM)
			if err != nil {
				return err
			}
		}

		var reg regression.Regressor

		switch len(md.RemainingArgs()) {
		case 0:
			reg = regression.NewVideoRegression(*romFile, *numFrames, *notes)
		case 1:
			reg = regression.NewPlaybackRegression(*romFile, *tapeDir, md.GetArg(0), *notes)
		default:
			return curated.Errorf("too many arguments for %s mode", md)
		}

		return regression.RegressAdd(md.Output, reg)
	}

	return nil
}
