package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/editor"
)

func main() {
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	open := flag.String("open", "", "Drawing to open at startup (.dxf or .cad)")
	theme := flag.String("theme", "dark", "Color scheme: dark or light")
	logPath := flag.String("log", "", "Also write logs to this file")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	logger, closeLog, err := newLogger(*logPath, *verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "draftcad:", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)
	editor.SetLogger(logger)

	cfg := editor.DefaultConfig()
	cfg.ColorScheme = drawing.ParseColorScheme(*theme)
	game := NewGame(cfg)
	if *open != "" {
		game.load(*open)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("draftcad")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		slog.Error("run", "err", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger logs to stderr and, when path is set, to that file as well.
func newLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	var out io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, f)
		closeFn = func() { f.Close() }
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closeFn, nil
}
