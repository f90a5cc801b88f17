// Copyright 2025 The sail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package project locates sail projects and reads their manifests.
package project

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// ManifestName is the file that marks a project root.
const ManifestName = "Sail.toml"

// ErrNotFound reports that no directory between the start directory and the
// filesystem root contains a manifest.
var ErrNotFound = eris.New("Sail.toml not found in current directory or any parent directory")

// Locate walks from dir upward and returns the closest directory containing
// a manifest file. Nested manifests below dir are never observed; the
// nearest ancestor wins.
func Locate(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", eris.Wrap(err, "resolving start directory")
	}

	for {
		_, err := os.Stat(filepath.Join(dir, ManifestName))
		if err == nil {
			return dir, nil
		}
		if !eris.Is(err, os.ErrNotExist) {
			return "", eris.Wrapf(err, "checking %s", dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Manifest returns the manifest path for a project root.
func Manifest(root string) string {
	return filepath.Join(root, ManifestName)
}
