// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

// config.go reduces the CLI's RenderConfig footprint using functional
// options, the same pattern the engine used for NewEngine.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

// Package config assembles the renderer's CLI-derived settings — the ones
// not present in the scene document itself.
package config

// RenderConfig holds settings the CLI controls that the scene document
// does not: output format and location, whether animated frames are
// blurred into one image, and whether a progress bar is printed.
type RenderConfig struct {
	PPM      bool   // write binary PPM instead of PNG/APNG
	OutDir   string // directory receiving the rendered image
	Blur     bool   // average animation frames into a single image
	Progress bool   // print an in-place progress bar while rendering
}

// defaults provides reasonable settings so the renderer runs even when
// no options are set.
var defaults = RenderConfig{
	PPM:      false,
	OutDir:   "output",
	Blur:     false,
	Progress: false,
}

// Option defines an optional RenderConfig attribute.
//
//	cfg := config.New(
//	   config.WithOutDir("renders"),
//	   config.WithProgress(),
//	)
type Option func(*RenderConfig)

// New builds a RenderConfig from defaults overridden by opts in order.
func New(opts ...Option) RenderConfig {
	cfg := defaults
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPPM selects binary PPM output instead of PNG/APNG.
func WithPPM() Option {
	return func(c *RenderConfig) { c.PPM = true }
}

// WithOutDir sets the directory the rendered image is written into.
func WithOutDir(dir string) Option {
	return func(c *RenderConfig) {
		if dir != "" {
			c.OutDir = dir
		}
	}
}

// WithBlur averages an animation's frames into a single still image.
func WithBlur() Option {
	return func(c *RenderConfig) { c.Blur = true }
}

// WithProgress enables the in-place progress bar while rendering.
func WithProgress() Option {
	return func(c *RenderConfig) { c.Progress = true }
}
