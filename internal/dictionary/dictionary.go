// =============================================================================
// PFAS Reporting Toolkit - PFAS Dictionary Module
// =============================================================================
//
// This module loads and queries the PFAS substance dictionary: a plain-text
// resource with one substance name or CAS registry number per line.
//
// FILE FORMAT:
//   - UTF-8 text, one identifier per line
//   - blank lines are ignored
//   - lines starting with '#' are treated as comments and ignored
//   - leading/trailing whitespace is stripped
//
// MATCHING:
//   All entries are lowercased on load, so lookups are case-insensitive.
//   The dictionary is immutable once loaded.
//
// CUSTOMIZATION:
//   In a larger deployment the dictionary could be backed by a database
//   table or a SharePoint list. Keep the Dictionary API and swap the
//   loader.
//
// =============================================================================

package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrNotFound indicates the dictionary source is missing or unreadable.
var ErrNotFound = errors.New("pfas dictionary not found")

// ErrEmpty indicates the source contained no usable identifiers.
// An empty dictionary is treated as fatal: a run in which nothing can
// match is almost always a bad upload, not an intentional input.
var ErrEmpty = errors.New("pfas dictionary contains no identifiers")

// =============================================================================
// DICTIONARY
// =============================================================================

// Dictionary is an immutable, deduplicated set of normalized PFAS
// identifiers. Entry order is irrelevant.
type Dictionary struct {
	entries map[string]struct{}
}

// Load reads a dictionary from an io.Reader.
//
// RETURNS:
//   - The loaded Dictionary.
//   - ErrEmpty (wrapped) if no usable identifiers are found.
func Load(r io.Reader) (*Dictionary, error) {
	entries := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blanks and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entries[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	return &Dictionary{entries: entries}, nil
}

// LoadFile reads a dictionary from a file on disk.
//
// RETURNS:
//   - The loaded Dictionary.
//   - ErrNotFound (wrapped) if the file is missing or unreadable.
//   - ErrEmpty (wrapped) if the file has no usable identifiers.
func LoadFile(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	defer file.Close()

	dict, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return dict, nil
}

// Contains reports whether the given substance is in the dictionary.
// The substance is trimmed and lowercased before the lookup, so callers
// can pass values exactly as declared.
func (d *Dictionary) Contains(substance string) bool {
	_, ok := d.entries[strings.ToLower(strings.TrimSpace(substance))]
	return ok
}

// Len returns the number of distinct identifiers loaded.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
