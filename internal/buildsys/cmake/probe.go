// Copyright 2025 The sail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmake

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/mod/semver"

	"github.com/sailbuild/sail/internal/buildsys"
	"github.com/sailbuild/sail/internal/logging"
)

// MinVersion is the toolchain version the generated build description
// requires.
const MinVersion = "3.21"

// Probe checks that the cmake executable can run and is recent enough for
// the generated build description. A missing executable or a version below
// MinVersion is an error. Version output that cannot be parsed is ignored:
// wrappers and vendored builds report all sorts of strings.
func Probe(ctx context.Context, runner buildsys.Runner) error {
	tool := toolName()

	out, err := runner.Output(ctx, "", tool, "--version")
	if err != nil {
		return eris.Wrapf(err, "probing %s", tool)
	}

	v := parseVersion(out)
	if v == "" {
		logging.Log(ctx).Debug().Str("tool", tool).Msg("unrecognized version output")
		return nil
	}
	logging.Log(ctx).Debug().Str("tool", tool).Str("version", strings.TrimPrefix(v, "v")).Msg("probed toolchain")

	if semver.Compare(v, "v"+MinVersion) < 0 {
		return eris.Errorf("%s %s is older than the required %s", tool, strings.TrimPrefix(v, "v"), MinVersion)
	}
	return nil
}

// parseVersion extracts a semver string ("v3.28.3") from the first line of
// `cmake --version` output, which reads "cmake version 3.28.3".
func parseVersion(out string) string {
	line, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[1] != "version" {
		return ""
	}
	v := "v" + fields[2]
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
