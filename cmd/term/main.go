package main

import (
	"flag"
	"log"
	"os"

	"github.com/intothevoid/legendchess/pkg/chess"
	"github.com/intothevoid/legendchess/pkg/config"
	"github.com/intothevoid/legendchess/pkg/controller"
	"github.com/intothevoid/legendchess/pkg/term"
)

func main() {
	configPath := flag.String("config", "legendchess.toml", "path to config file")
	logPath := flag.String("log", "", "path to log file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}
	if err := config.InitLog(cfg.LogPath, "TERM: "); err != nil {
		log.Fatal(err)
	}

	engine, err := chess.NewEngine(cfg.StartFEN)
	if err != nil {
		log.Fatal(err)
	}
	ctrl := controller.New(engine, func() { os.Exit(0) })

	if err := term.Run(os.Stdin, os.Stdout, ctrl); err != nil {
		log.Fatal(err)
	}
}
