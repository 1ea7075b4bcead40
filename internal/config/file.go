// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefaults mirrors RenderConfig's fields one-to-one so a --config
// file can set the same defaults flags would, without requiring every
// field to be present.
type fileDefaults struct {
	PPM      *bool   `yaml:"ppm"`
	OutDir   *string `yaml:"out_dir"`
	Blur     *bool   `yaml:"blur"`
	Progress *bool   `yaml:"progress"`
}

// Load reads a YAML defaults file and returns the Options needed to
// apply it, so repeated invocations against the same output directory
// or with the same progress-bar preference don't need to repeat flags
// on every run.
func Load(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var fd fileDefaults
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	var opts []Option
	if fd.PPM != nil && *fd.PPM {
		opts = append(opts, WithPPM())
	}
	if fd.OutDir != nil {
		opts = append(opts, WithOutDir(*fd.OutDir))
	}
	if fd.Blur != nil && *fd.Blur {
		opts = append(opts, WithBlur())
	}
	if fd.Progress != nil && *fd.Progress {
		opts = append(opts, WithProgress())
	}
	return opts, nil
}
