// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/stacklok/skillsync-core/skillfile"
)

// FromDir packages a local skill directory into a bundle. The directory
// must contain a SKILL.md; every entry is placed under {name}/ where name
// comes from the document metadata, falling back to the directory basename.
// Hidden files are skipped and symlinks are rejected.
func FromDir(dir string) (data []byte, name string, err error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("skill directory not found: %s", dir)
		}
		return nil, "", fmt.Errorf("accessing skill directory: %w", err)
	}
	if !info.IsDir() {
		return nil, "", fmt.Errorf("path is not a directory: %s", dir)
	}

	docPath := filepath.Join(dir, skillfile.DefaultFilename)
	docBytes, err := os.ReadFile(docPath) //#nosec G304 -- path constructed from user-provided skill directory
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%s not found in skill directory", skillfile.DefaultFilename)
		}
		return nil, "", fmt.Errorf("reading %s: %w", skillfile.DefaultFilename, err)
	}

	doc, err := skillfile.Parse(string(docBytes))
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", skillfile.DefaultFilename, err)
	}

	name = doc.Name
	if name == "" {
		name = filepath.Base(filepath.Clean(dir))
	}

	files := []FileEntry{{Path: name + "/" + skillfile.DefaultFilename, Content: docBytes}}

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == dir {
			return nil
		}

		relPath, err := filepath.Rel(dir, p)
		if err != nil {
			return fmt.Errorf("getting relative path: %w", err)
		}
		relPath = filepath.ToSlash(relPath)

		// Skip hidden files/directories
		if strings.HasPrefix(filepath.Base(relPath), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Reject symlinked directories (WalkDir follows them silently)
		if d.Type()&os.ModeSymlink != 0 {
			return fmt.Errorf("symlinks not allowed in skill directory: %s", relPath)
		}

		if d.IsDir() {
			return nil
		}

		if relPath == skillfile.DefaultFilename {
			return nil
		}

		content, err := os.ReadFile(p) //#nosec G304 -- path from WalkDir, symlink-checked
		if err != nil {
			return fmt.Errorf("reading %s: %w", relPath, err)
		}

		files = append(files, FileEntry{Path: name + "/" + relPath, Content: content})
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("walking skill directory: %w", err)
	}

	data, err = Create(files, DefaultOptions())
	if err != nil {
		return nil, "", err
	}
	return data, name, nil
}
