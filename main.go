package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	out := flag.String("out", "", "save target path (default: sibling copy of the current file)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if flag.NArg() != 1 {
		log.Fatal().Msg("usage: iv [-debug] [-out path] <image file or directory>")
	}
	target := flag.Arg(0)

	result := loadConfig()
	for _, warning := range result.Warnings {
		log.Warn().Msg(warning)
	}
	config := result.Config

	if err := InitGraphics(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize graphics")
	}

	session := NewSession(config.CacheSize, config.SortMethod)

	info, err := os.Stat(target)
	if err != nil {
		log.Fatal().Err(err).Str("path", target).Msg("cannot open target")
	}
	if info.IsDir() {
		err = session.OpenFolder(target)
	} else {
		err = session.OpenImage(target)
	}
	if err != nil {
		log.Fatal().Err(err).Str("path", target).Msg("cannot open target")
	}

	watcher, err := NewDirWatcher()
	if err != nil {
		log.Warn().Err(err).Msg("directory watching disabled")
		watcher = nil
	} else {
		defer watcher.Close()
		if err := watcher.SetDirectory(session.Directory()); err != nil {
			log.Warn().Err(err).Msg("directory watching disabled")
			watcher = nil
		}
	}

	viewer := NewViewer(session, config, *out, watcher)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if config.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	viewer.updateTitle()

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal().Err(err).Msg("viewer stopped")
	}
}
