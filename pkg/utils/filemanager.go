// =============================================================================
// PFAS Reporting Toolkit - File Manager Utility
// =============================================================================
//
// This module provides the file-side plumbing for report generation:
//   - output directory management
//   - report file naming from a configurable pattern
//   - pretty-printed JSON writing
//
// NAMING:
//   The output name pattern supports two placeholders:
//     {uuid}      - a random UUID, so concurrent or repeated runs never
//                   collide on file names
//     {timestamp} - the generation time as YYYYMMDD_HHMMSS
//
// CUSTOMIZATION:
//   - Add placeholders (e.g. {supplier}, {date}) by extending
//     ExpandNamePattern
//   - Add archival of old reports if retention becomes a requirement
//
// =============================================================================

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates the directory (and any parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// FILE NAMING
// =============================================================================

// ExpandNamePattern fills the {uuid} and {timestamp} placeholders in an
// output name pattern.
func ExpandNamePattern(pattern string, now time.Time) string {
	name := pattern
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", now.Format("20060102_150405"))
	return name
}

// ReportPath builds the full output path for a new report file: the
// output directory is created if needed and the name pattern is expanded.
func ReportPath(dir, pattern string, now time.Time) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, ExpandNamePattern(pattern, now)), nil
}

// =============================================================================
// JSON WRITING
// =============================================================================

// WriteJSON marshals v with indentation and writes it to path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// Trailing newline keeps the files friendly to diff tools.
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
