package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/colorhymn/hymnless/internal/config"
	"github.com/colorhymn/hymnless/internal/hymn"
	"github.com/colorhymn/hymnless/internal/render"
	"github.com/colorhymn/hymnless/internal/ui"
)

func main() {
	debugFlag := flag.String("debug", "", "Write debug logs to file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hymnless [-debug logfile] <file>\n")
		fmt.Fprintf(os.Stderr, "  -debug\tWrite debug logs to the given file\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	filepath := flag.Arg(0)

	// The TUI owns the terminal, so logs go to a file or nowhere
	logger := log.New(io.Discard)
	if *debugFlag != "" {
		f, err := os.OpenFile(*debugFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f)
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootDir := cfg.Classifier.RootDir
	if rootDir == "" {
		rootDir = hymn.InstallRoot()
	}
	classifier := hymn.NewCommandClassifier(
		cfg.Classifier.Command,
		rootDir,
		time.Duration(cfg.Classifier.TimeoutSecs)*time.Second,
		logger,
	)

	// Probe before the alt screen starts so a fallback note lands on the
	// normal screen and survives exit
	backend := render.Probe(os.Stdout, log.New(os.Stderr))
	model := ui.NewModel(filepath, cfg, classifier, backend)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
