package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/colorhymn/hymnless/internal/config"
	"github.com/colorhymn/hymnless/internal/hymn"
	"github.com/colorhymn/hymnless/internal/palette"
	"github.com/colorhymn/hymnless/internal/render"
)

func main() {
	stdinFlag := flag.Bool("stdin", false, "Read an already-classified document from standard input")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hymncat <logfile>\n")
		fmt.Fprintf(os.Stderr, "       hymncat -stdin < document.json\n")
	}
	flag.Parse()

	logger := log.New(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	readStdin := *stdinFlag || flag.Arg(0) == "-"
	if !readStdin && flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var doc *hymn.Document
	if readStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Fatal(err)
		}
		doc, err = hymn.ParseDocument(data)
		if err != nil {
			logger.Fatal(err)
		}
	} else {
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

		doc, err = classifier.Fetch(context.Background(), flag.Arg(0))
		if err != nil {
			logger.Fatal(err)
		}
	}

	backend := render.Probe(os.Stdout, logger)
	resolver := palette.NewResolver(&cfg.Palette)

	static := render.NewStatic(backend, resolver, cfg.Display.LineNumberWidth)
	if err := static.WriteDocument(os.Stdout, doc); err != nil {
		logger.Fatal(err)
	}
}
