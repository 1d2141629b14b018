package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Vacayy/hand-controlled-3d-particles/app"
	"github.com/Vacayy/hand-controlled-3d-particles/config"
	"github.com/Vacayy/hand-controlled-3d-particles/hand"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config overlay")
	scriptPath := flag.String("script", "", "hand landmark capture to replay; synthetic gestures when empty")
	flag.Parse()

	params, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var det hand.Detector
	if *scriptPath != "" {
		det, err = hand.LoadScript(*scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	} else {
		det = hand.NewSynthDetector()
	}

	if err := app.RenderSwarmGL(params, det); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
