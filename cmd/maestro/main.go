package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/maestro/audio"
	"github.com/lixenwraith/maestro/engine"
	"github.com/lixenwraith/maestro/hand"
)

var (
	configFlag  = flag.String("config", "maestro.yaml", "Path to YAML performance config")
	sourceFlag  = flag.String("source", "", "Hand source: cursor or socket (overrides config)")
	trackerFlag = flag.String("tracker", "", "Tracker websocket URL (overrides config)")
)

func main() {
	// Panic recovery: make crashes visible instead of losing the trace
	// behind the window teardown
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nMAESTRO CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := engine.LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *sourceFlag != "" {
		cfg.Source = *sourceFlag
	}
	if *trackerFlag != "" {
		cfg.TrackerURL = *trackerFlag
	}

	var source hand.Source
	switch cfg.Source {
	case "socket":
		sock := hand.NewSocketSource(cfg.TrackerURL)
		defer sock.Close()
		source = sock
	default:
		source = hand.NewCursorSource()
	}

	// The engine stays silent until the first user interaction unlocks
	// the output device; a device failure degrades to a silent session
	eng := audio.NewEngine(audio.LoadConfig())
	defer eng.Close()

	game := engine.NewGame(cfg, source, eng)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("maestro")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("run: %v", err)
	}
}
