// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrExists is returned when an output file exists and overwriting is disabled.
var ErrExists = errors.New("output file exists")

// FileName returns the artifact name of a function: "<contract>.<function>.tree",
// or "<contract>.<function>(<signature>).tree" for signature-qualified overloads.
func FileName(contract, function, signature string, qualified bool) string {
	if qualified {
		return contract + "." + function + "(" + signature + ").tree"
	}

	return contract + "." + function + ".tree"
}

// WriteFile writes content to name in dir, creating dir as needed.
// An existing file is replaced only when overwrite is set.
func WriteFile(dir, name string, content []byte, overwrite bool) (string, error) {
	const (
		dirPerm  fs.FileMode = 0o755
		filePerm fs.FileMode = 0o644
	)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("can't create output directory: %w", err)
	}

	path := filepath.Join(dir, name)

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return path, fmt.Errorf("%w: %s", ErrExists, path)
		}

		return path, fmt.Errorf("can't create output file: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()

		return path, fmt.Errorf("can't write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return path, fmt.Errorf("can't write %s: %w", path, err)
	}

	return path, nil
}
