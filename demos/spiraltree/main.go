// spiraltree grows a spiral particle tree on click, pushes it around with
// the pointer, then crowns it with a pulsing star.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/spiraltree"
)

const (
	screenW = 1280
	screenH = 720
)

func main() {
	var (
		configPath  = flag.String("config", "", "JSON config file laid over the defaults")
		musicPath   = flag.String("music", "", "background track (.mp3, .ogg or .wav) started on launch")
		volume      = flag.Float64("volume", 0.5, "music volume in [0, 1]")
		seed        = flag.Uint64("seed", 0, "random seed; 0 picks one per run")
		count       = flag.Int("count", 0, "particle count override")
		debug       = flag.Bool("debug", false, "log per-frame timings to stderr")
		scriptPath  = flag.String("script", "", "JSON test script to replay")
		showFPS     = flag.Bool("fps", false, "show the FPS overlay")
		screenshots = flag.String("screenshots", "screenshots", "directory for script screenshots")
	)
	flag.Parse()

	cfg := spiraltree.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		if cfg, err = spiraltree.LoadConfig(data); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *count > 0 {
		cfg.Tree.Count = *count
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	show := spiraltree.NewShow(cfg)
	show.SetDebugMode(*debug)
	show.SetTiltSource(spiraltree.NewGamepadTilt())

	if *musicPath != "" {
		player, err := spiraltree.LoadMusic(nil, *musicPath, *volume)
		if err != nil {
			log.Printf("music disabled: %v", err)
		} else {
			show.SetAudio(player)
		}
	}

	run := spiraltree.RunConfig{
		Title:         "Spiral Tree",
		Width:         screenW,
		Height:        screenH,
		ShowFPS:       *showFPS,
		ScreenshotDir: *screenshots,
	}
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := spiraltree.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		run.Runner = runner
		run.ExitWhenDone = true
	}

	if err := spiraltree.Run(show, run); err != nil {
		log.Fatal(err)
	}
}
