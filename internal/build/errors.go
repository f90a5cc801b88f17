// Copyright 2025 The sail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

import "github.com/rotisserie/eris"

// Pipeline failures fall into fixed categories, one sentinel each. The CLI
// prints a single diagnostic line per category; callers classify with
// eris.Is. Failures from locating or reading the manifest keep the
// project package's own sentinels.
var (
	// ErrMissingSources reports a project root without a src directory.
	ErrMissingSources = eris.New("src directory not found")

	// ErrDescriptionWrite reports a build description that could not be
	// generated.
	ErrDescriptionWrite = eris.New("failed to create CMakeLists.txt")

	// ErrConfigureFailed reports a toolchain that could not configure the
	// build tree, or was missing or too old to try.
	ErrConfigureFailed = eris.New("CMake configuration failed")

	// ErrBuildFailed reports a compilation that exited with failure.
	ErrBuildFailed = eris.New("build failed")

	// ErrArtifactMissing reports a finished build whose expected executable
	// is absent. The build command reports it as a warning; run treats it
	// as a failure.
	ErrArtifactMissing = eris.New("executable not found")
)
