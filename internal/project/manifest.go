// Copyright 2025 The sail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

var (
	// ErrUnreadable reports a manifest that cannot be read.
	ErrUnreadable = eris.New("failed to read Sail.toml")

	// ErrNoName reports a manifest without a usable project name.
	ErrNoName = eris.New("could not find project name in Sail.toml")
)

const nameMarker = `name = "`

// ReadName extracts the project name from a manifest. When data is nil the
// manifest is read from file; otherwise data is scanned directly.
//
// The scan is line-oriented and stops at the first line containing
// `name = "` with a closing quote; the name is the text between that line's
// first two double quotes. The scan does not understand sections, so a
// dependency entry carrying a name key before the [project] table would
// win. Known limitation; manifests written by sail always lead with
// [project].
func ReadName(file string, data []byte) (string, error) {
	var reader io.Reader

	if data != nil {
		reader = bytes.NewReader(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return "", eris.Wrap(ErrUnreadable, err.Error())
		}
		defer f.Close()
		reader = f
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, nameMarker) {
			continue
		}

		rest := line[strings.Index(line, `"`)+1:]
		end := strings.Index(rest, `"`)
		if end < 0 {
			// No closing quote on this line; keep scanning.
			continue
		}
		if end == 0 {
			return "", ErrNoName
		}
		return rest[:end], nil
	}

	if err := scanner.Err(); err != nil {
		return "", eris.Wrap(ErrUnreadable, err.Error())
	}
	return "", ErrNoName
}
