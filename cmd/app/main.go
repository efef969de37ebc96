package main

import (
	"flag"
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/intothevoid/legendchess/pkg/chess"
	"github.com/intothevoid/legendchess/pkg/config"
	"github.com/intothevoid/legendchess/pkg/controller"
	"github.com/intothevoid/legendchess/pkg/ui"
)

func main() {
	configPath := flag.String("config", "legendchess.toml", "path to config file")
	logPath := flag.String("log", "", "path to log file (overrides config)")
	flag.Parse()

	// 1. Settings and logging
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}
	if err := config.InitLog(cfg.LogPath, "APP: "); err != nil {
		log.Fatal(err)
	}

	// 2. Rules engine and controller
	engine, err := chess.NewEngine(cfg.StartFEN)
	if err != nil {
		log.Fatal(err)
	}
	ctrl := controller.New(engine, func() { os.Exit(0) })

	// 3. Window
	if err := cfg.Window.ApplyScale(); err != nil {
		log.Printf("window scale not applied: %v", err)
	}
	myApp := app.New()
	log.Println("starting")
	ui.NewApp(myApp, cfg.Window, ctrl).ShowAndRun()
}
