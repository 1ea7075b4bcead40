// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	raytrace "github.com/gazed/raytrace"
	"github.com/gazed/raytrace/encode"
	"github.com/gazed/raytrace/internal/config"
	"github.com/gazed/raytrace/internal/term"
	"github.com/gazed/raytrace/load"
)

const helpBanner = `
raytrace - recursive ray tracer
    Version: %s

Usage: raytrace [options] INPUT

`

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(0)

	ppm := flag.Bool("ppm", false, "write binary PPM instead of PNG/APNG")
	progress := flag.Bool("p", false, "show an in-place progress bar")
	flag.BoolVar(progress, "progress-bar", false, "show an in-place progress bar")
	blur := flag.Bool("blur", false, "average an animation's frames into one image")
	outDir := flag.String("o", "", "output directory (default \"output\")")
	flag.StringVar(outDir, "outdir", "", "output directory (default \"output\")")
	configPath := flag.String("config", "", "YAML file of default RenderConfig values")
	version := flag.Bool("V", false, "print version and exit")
	flag.BoolVar(version, "version", false, "print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(Version)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var opts []config.Option
	if *configPath != "" {
		fileOpts, err := config.Load(*configPath)
		if err != nil {
			fail(err)
		}
		opts = append(opts, fileOpts...)
	}
	if *ppm {
		opts = append(opts, config.WithPPM())
	}
	if *outDir != "" {
		opts = append(opts, config.WithOutDir(*outDir))
	}
	if *blur {
		opts = append(opts, config.WithBlur())
	}
	if *progress {
		opts = append(opts, config.WithProgress())
	}
	cfg := config.New(opts...)

	if err := run(flag.Arg(0), cfg); err != nil {
		fail(err)
	}
}

func run(inputPath string, cfg config.RenderConfig) error {
	scene, outputFile, err := load.LoadScene(inputPath)
	if err != nil {
		return err
	}

	var rows chan raytrace.RowDone
	var bar *term.ProgressBar
	if cfg.Progress {
		total := scene.Camera.Height
		if scene.Animation.IsAnimated() {
			total *= scene.Animation.TotalFrames
		}
		rows = make(chan raytrace.RowDone, total)
		bar = term.NewProgressBar(os.Stdout, total)
		done := make(chan struct{})
		go func() {
			bar.Watch(rows)
			close(done)
		}()
		defer func() { <-done }()
	}

	img := raytrace.Render(scene, rows)
	if cfg.Blur && scene.Animation.IsAnimated() {
		img = img.Blur()
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return raytrace.NewIOError("write", cfg.OutDir, err)
	}

	outPath := filepath.Join(cfg.OutDir, outputName(outputFile, cfg))
	f, err := os.Create(outPath)
	if err != nil {
		return raytrace.NewIOError("write", outPath, err)
	}
	defer f.Close()

	if cfg.PPM {
		err = encode.PPM(f, img, 0)
	} else if len(img.Frames) > 1 {
		err = encode.APNG(f, img, scene.Animation.FPS)
	} else {
		err = encode.PNG(f, img, 0)
	}
	if err != nil {
		return raytrace.NewIOError("write", outPath, err)
	}

	status := fmt.Sprintf("wrote %s", outPath)
	fmt.Println(term.Decorate(status, term.Success, term.IsTerminal(os.Stdout)))
	return nil
}

// outputName swaps the scene document's requested extension for the one
// the configured encoder actually produces.
func outputName(requested string, cfg config.RenderConfig) string {
	base := strings.TrimSuffix(requested, filepath.Ext(requested))
	if cfg.PPM {
		return base + ".ppm"
	}
	return base + ".png"
}

func fail(err error) {
	msg := term.Decorate(err.Error(), term.Error, term.IsTerminal(os.Stderr))
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
