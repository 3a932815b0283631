// =============================================================================
// PFAS Reporting Toolkit - CSV Declaration Parser
// =============================================================================
//
// This module parses supplier declaration CSV files into
// SupplierDeclaration records.
//
// INPUT FORMAT:
//   - UTF-8, comma-delimited, one header row
//   - the header must contain a supplier-name column and a
//     substance-name column; spellings vary between suppliers, so each
//     canonical field has a configurable alias list
//   - quantity and unit columns are optional
//   - any additional columns are passed through on the declaration
//
// COLUMN RESOLUTION:
//   Headers are matched case-insensitively against the alias lists,
//   exactly once, before row iteration begins. A file whose header
//   resolves neither supplier nor substance fails with
//   ErrMalformedHeader; nothing is parsed from it.
//
// ROW HANDLING:
//   - rows missing supplier or substance are skipped and counted,
//     never silently dropped into the report
//   - completely blank rows are ignored
//   - duplicates are preserved; output order equals file order
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/pfas-reporting/internal/config"
	"github.com/ginjaninja78/pfas-reporting/internal/types"
	"github.com/ginjaninja78/pfas-reporting/internal/validation"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrMalformedHeader indicates the header row is missing a required
// column (supplier name or substance name).
var ErrMalformedHeader = errors.New("header missing required columns")

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of parsing one declarations file.
type Result struct {
	// Declarations holds one record per valid row, in file order.
	Declarations []types.SupplierDeclaration

	// Issues records why individual rows were skipped.
	Issues []validation.RowIssue

	// SkippedRows is the number of rows skipped for missing required
	// fields. A row missing both fields counts once.
	SkippedRows int
}

// =============================================================================
// COLUMN RESOLUTION
// =============================================================================

// columns holds the header positions resolved for one file.
// An index of -1 means the column is absent.
type columns struct {
	supplier  int
	substance int
	quantity  int
	unit      int

	// extra maps the remaining column indexes to their original header
	// names, for verbatim passthrough.
	extra map[int]string
}

// resolveColumns matches the header row against the configured aliases.
// Matching is case-insensitive after trimming. The first header matching
// any alias of a field wins.
func resolveColumns(header []string, aliases config.ColumnAliases) (*columns, error) {
	cols := &columns{
		supplier:  -1,
		substance: -1,
		quantity:  -1,
		unit:      -1,
		extra:     make(map[int]string),
	}

	match := func(h string, names []string) bool {
		for _, name := range names {
			if h == name {
				return true
			}
		}
		return false
	}

	for i, raw := range header {
		h := strings.ToLower(strings.TrimSpace(raw))

		switch {
		case cols.supplier == -1 && match(h, aliases.Supplier):
			cols.supplier = i
		case cols.substance == -1 && match(h, aliases.Substance):
			cols.substance = i
		case cols.quantity == -1 && match(h, aliases.Quantity):
			cols.quantity = i
		case cols.unit == -1 && match(h, aliases.Unit):
			cols.unit = i
		default:
			if strings.TrimSpace(raw) != "" {
				cols.extra[i] = strings.TrimSpace(raw)
			}
		}
	}

	// Both required columns must resolve before any row is read.
	var missing []string
	if cols.supplier == -1 {
		missing = append(missing, "supplier name")
	}
	if cols.substance == -1 {
		missing = append(missing, "substance name")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMalformedHeader, strings.Join(missing, ", "))
	}

	return cols, nil
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads declarations from an io.Reader carrying CSV text.
func Parse(r io.Reader, aliases config.ColumnAliases) (*Result, error) {
	reader := csv.NewReader(r)

	// Suppliers export these files from all kinds of tooling, so be
	// lenient about field counts and stray quoting.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrMalformedHeader)
	}

	return FromRecords(records, aliases)
}

// ParseFile reads declarations from a CSV file on disk.
func ParseFile(path string, aliases config.ColumnAliases) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open declarations file: %w", err)
	}
	defer file.Close()

	result, err := Parse(file, aliases)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return result, nil
}

// FromRecords converts pre-split rows into declarations. The first record
// is the header row. This is the shared path for the CSV and XLSX
// parsers.
func FromRecords(records [][]string, aliases config.ColumnAliases) (*Result, error) {
	cols, err := resolveColumns(records[0], aliases)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	for i, row := range records[1:] {
		// Row numbers are 1-indexed and count the header row.
		rowNumber := i + 2

		if isRowEmpty(row) {
			continue
		}

		cell := func(idx int) string {
			if idx >= 0 && idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		supplier := cell(cols.supplier)
		substance := cell(cols.substance)

		issues := validation.CheckDeclarationRow(rowNumber, supplier, substance)
		if len(issues) > 0 {
			result.Issues = append(result.Issues, issues...)
			result.SkippedRows++
			continue
		}

		decl := types.SupplierDeclaration{
			Supplier:  supplier,
			Substance: substance,
			Quantity:  cell(cols.quantity),
			Unit:      cell(cols.unit),
			RowNumber: rowNumber,
		}

		// Passthrough columns, keyed by their original header names.
		for idx, name := range cols.extra {
			if value := cell(idx); value != "" {
				if decl.Extra == nil {
					decl.Extra = make(map[string]string)
				}
				decl.Extra[name] = value
			}
		}

		result.Declarations = append(result.Declarations, decl)
	}

	return result, nil
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
