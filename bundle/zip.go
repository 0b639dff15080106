// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/stacklok/skillsync-core/skillfile"
)

// creatorUnix is the high byte of the zip CreatorVersion field that marks
// an archive as produced on a Unix host. The remote service's archive
// parser rejects bundles without this platform tag.
const creatorUnix = 3 << 8

// MaxFileSize is the maximum size of a single file extracted from a bundle
// (100MB). This prevents decompression bombs.
const MaxFileSize = 100 * 1024 * 1024

// Options configures reproducible bundle creation.
type Options struct {
	// Epoch is the timestamp to use for all entries (defaults to Unix epoch).
	Epoch time.Time
}

// DefaultOptions returns default options for reproducible bundles.
func DefaultOptions() Options {
	return Options{
		Epoch: time.Unix(0, 0).UTC(),
	}
}

// FileEntry represents a file inside a bundle.
type FileEntry struct {
	Path    string // Path within the archive
	Content []byte // File content
}

// Create builds a reproducible zip bundle from the given files. Entries are
// sorted by path, carry the Unix platform tag, and contain no directory
// entries; the remote service's archive parser rejects both directory
// entries and non-Unix creator versions.
func Create(files []FileEntry, opts Options) ([]byte, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("bundle must contain at least one file")
	}
	if opts.Epoch.IsZero() {
		opts.Epoch = time.Unix(0, 0).UTC()
	}

	sorted := make([]FileEntry, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range sorted {
		if err := validateArchivePath(f.Path); err != nil {
			return nil, err
		}

		hdr := &zip.FileHeader{
			Name:           f.Path,
			Method:         zip.Deflate,
			Modified:       opts.Epoch,
			CreatorVersion: creatorUnix,
		}
		hdr.SetMode(0o644)

		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("writing bundle header for %s: %w", f.Path, err)
		}
		if _, err := w.Write(f.Content); err != nil {
			return nil, fmt.Errorf("writing bundle content for %s: %w", f.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing bundle writer: %w", err)
	}

	return buf.Bytes(), nil
}

// CreateSkillArchive builds a minimal bundle for a skill with no
// pre-packaged archive: exactly one entry, the skill document at
// {name}/SKILL.md.
func CreateSkillArchive(name, document string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("skill name is required")
	}

	return Create([]FileEntry{
		{
			Path:    name + "/" + skillfile.DefaultFilename,
			Content: []byte(document),
		},
	}, DefaultOptions())
}

// ExtractDocument finds the embedded skill document in a bundle and returns
// its content. The document is located by case-insensitive suffix match on
// each entry's base filename; the first match in the file table wins. The
// second return value is false when the bundle contains no document.
func ExtractDocument(data []byte) (string, bool, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", false, fmt.Errorf("reading bundle: %w", err)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		base := strings.ToLower(path.Base(f.Name))
		if !strings.HasSuffix(base, strings.ToLower(skillfile.DefaultFilename)) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", false, fmt.Errorf("opening %s in bundle: %w", f.Name, err)
		}
		content, err := io.ReadAll(io.LimitReader(rc, MaxFileSize+1))
		_ = rc.Close()
		if err != nil {
			return "", false, fmt.Errorf("reading %s in bundle: %w", f.Name, err)
		}
		if len(content) > MaxFileSize {
			return "", false, fmt.Errorf("document %s exceeds maximum size of %d bytes", f.Name, MaxFileSize)
		}

		return string(content), true, nil
	}

	return "", false, nil
}

// Extract returns every regular file in a bundle. It rejects paths
// containing traversal sequences and enforces a per-file size limit.
func Extract(data []byte) ([]FileEntry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}

	var files []FileEntry
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if err := validateArchivePath(f.Name); err != nil {
			return nil, err
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s in bundle: %w", f.Name, err)
		}
		content, err := io.ReadAll(io.LimitReader(rc, MaxFileSize+1))
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s in bundle: %w", f.Name, err)
		}
		if len(content) > MaxFileSize {
			return nil, fmt.Errorf("file %s exceeds maximum size of %d bytes", f.Name, MaxFileSize)
		}

		files = append(files, FileEntry{Path: f.Name, Content: content})
	}

	return files, nil
}

// validateArchivePath checks that an archive entry path is safe.
func validateArchivePath(p string) error {
	// path.Clean resolves all ".." segments; any remaining leading ".."
	// means the path escapes the archive root.
	cleaned := path.Clean(p)
	if strings.HasPrefix(cleaned, "..") {
		return fmt.Errorf("path traversal detected in bundle: %s", p)
	}
	if path.IsAbs(cleaned) {
		return fmt.Errorf("absolute path not allowed in bundle: %s", p)
	}
	return nil
}
