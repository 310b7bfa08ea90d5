// Command missionrun is a standalone driver for the mission scripting
// runtime: it decodes a .tok program and/or a JSON mission script,
// drives an interp.Interpreter for a fixed number of ticks against an
// in-memory stub world, and prints the resulting save state as JSON.
//
// There is no real simulation host here, so missionrun is primarily a
// conformance and debugging tool: it exercises the full decode/tick/
// save/restore pipeline end to end without needing the host it is
// meant to be embedded in.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/kestrelrts/missionvm/config"
	"github.com/kestrelrts/missionvm/interp"
	"github.com/kestrelrts/missionvm/log"
	"github.com/kestrelrts/missionvm/rules"
	"github.com/kestrelrts/missionvm/save"
	"github.com/kestrelrts/missionvm/savestore"
)

const (
	appName    = "missionrun"
	appVersion = "0.1.0"
	appAuthor  = "kestrelrts"
	appHome    = "https://github.com/kestrelrts/missionvm"
)

// Exit codes.
const (
	ExitCodeOK = iota
	ExitCodeArgsError
	ExitCodeLoadError
	ExitCodeRunError
)

var (
	flagTok      = flag.String("tok", "", "path to a .tok binary mission program")
	flagScript   = flag.String("script", "", "path to a JSON mission script")
	flagConfig   = flag.String("config", "", "path to a YAML run config (optional)")
	flagTicks    = flag.Int("ticks", 100, "number of simulation ticks to run")
	flagOutfile  = flag.String("outfile", "", "write JSON output here instead of stdout")
	flagIndent   = flag.Bool("indent", true, "indent JSON output")
	flagVersion  = flag.Bool("version", false, "print version and exit")
	flagHelp     = flag.Bool("help", false, "print usage and exit")
	flagMission  = flag.String("mission", "", "mission id used to key the save slot (defaults to the script's id, or -tok/-script's filename)")
	flagSlot     = flag.String("slot", "default", "save slot name within the save-slot database")
	flagResume   = flag.Bool("resume", false, "load and restore the named save slot before ticking")
)

func printVersion() {
	fmt.Printf("%s %s by %s\n%s\n", appName, appVersion, appAuthor, appHome)
}

func printUsage() {
	fmt.Printf("Usage: %s [flags]\n\n", appName)
	flag.PrintDefaults()
}

func main() {
	flag.Parse()

	if *flagVersion {
		printVersion()
		os.Exit(ExitCodeOK)
	}
	if *flagHelp {
		printUsage()
		os.Exit(ExitCodeOK)
	}

	if *flagTok == "" && *flagScript == "" {
		fmt.Fprintln(os.Stderr, "missionrun: at least one of -tok or -script is required")
		printUsage()
		os.Exit(ExitCodeArgsError)
	}

	cfg := config.Default()
	if *flagConfig != "" {
		loaded, err := config.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "missionrun: %v\n", err)
			os.Exit(ExitCodeLoadError)
		}
		cfg = loaded
	}

	level := zerolog.InfoLevel
	if l, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		level = l
	}
	zlog := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	log.SetLogger(log.NewZerologAdapter(zlog))

	var tokBytes []byte
	if *flagTok != "" {
		b, err := os.ReadFile(*flagTok)
		if err != nil {
			fmt.Fprintf(os.Stderr, "missionrun: read %s: %v\n", *flagTok, err)
			os.Exit(ExitCodeLoadError)
		}
		tokBytes = b
	}

	var script *rules.MissionScript
	if *flagScript != "" {
		b, err := os.ReadFile(*flagScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "missionrun: read %s: %v\n", *flagScript, err)
			os.Exit(ExitCodeLoadError)
		}
		script = &rules.MissionScript{}
		if err := json.Unmarshal(b, script); err != nil {
			fmt.Fprintf(os.Stderr, "missionrun: parse %s: %v\n", *flagScript, err)
			os.Exit(ExitCodeLoadError)
		}
	}

	store, err := savestore.Open(cfg.SaveDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "missionrun: %v\n", err)
		os.Exit(ExitCodeLoadError)
	}
	defer store.Close()

	missionID := *flagMission
	if missionID == "" {
		switch {
		case script != nil && script.ID != "":
			missionID = script.ID
		case *flagScript != "":
			missionID = filepath.Base(*flagScript)
		default:
			missionID = filepath.Base(*flagTok)
		}
	}

	w := newStubWorld(nil, nil)
	seed := cfg.Seed
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}

	in := interp.New(w, seed)
	ctx := context.Background()
	if err := in.Init(ctx, tokBytes, script); err != nil {
		fmt.Fprintf(os.Stderr, "missionrun: init: %v\n", err)
		os.Exit(ExitCodeRunError)
	}
	defer in.Dispose()

	startTick := int32(0)
	if *flagResume {
		savedTick, blob, ok, err := store.Get(missionID, *flagSlot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "missionrun: load save slot: %v\n", err)
			os.Exit(ExitCodeLoadError)
		}
		if ok {
			var state save.MissionSaveState
			if err := json.Unmarshal(blob, &state); err != nil {
				fmt.Fprintf(os.Stderr, "missionrun: decode save slot: %v\n", err)
				os.Exit(ExitCodeLoadError)
			}
			inv := save.InverseMap{}
			for id := range w.ents {
				inv[int32(id)] = int32(id)
			}
			in.Restore(state, inv)
			startTick = savedTick
			log.Info("missionrun: resumed from save slot", log.F("mission", missionID), log.F("slot", *flagSlot), log.F("tick", savedTick))
		}
	}

	var lastTick int32
	for i := int32(0); i < int32(*flagTicks); i++ {
		lastTick = startTick + i
		in.Tick(ctx, lastTick)
	}

	dense := save.DenseMap{}
	for id := range w.ents {
		dense[int32(id)] = int32(id)
	}
	state := in.Save(dense)

	stateJSON, err := json.Marshal(state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "missionrun: marshal save state: %v\n", err)
		os.Exit(ExitCodeRunError)
	}
	if err := store.Put(missionID, *flagSlot, lastTick, stateJSON); err != nil {
		fmt.Fprintf(os.Stderr, "missionrun: persist save slot: %v\n", err)
		os.Exit(ExitCodeRunError)
	}

	out := os.Stdout
	if *flagOutfile != "" {
		f, err := os.Create(*flagOutfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "missionrun: create %s: %v\n", *flagOutfile, err)
			os.Exit(ExitCodeRunError)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	if *flagIndent {
		enc.SetIndent("", "  ")
	}
	custom := map[string]interface{}{
		"ticksRun": *flagTicks,
		"tickRate": interp.TickRate,
		"state":    state,
	}
	if err := enc.Encode(custom); err != nil {
		fmt.Fprintf(os.Stderr, "missionrun: encode output: %v\n", err)
		os.Exit(ExitCodeRunError)
	}
}
