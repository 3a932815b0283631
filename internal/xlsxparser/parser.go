// =============================================================================
// PFAS Reporting Toolkit - XLSX Declaration Parser
// =============================================================================
//
// This module reads supplier declarations from XLSX workbooks. Several
// suppliers return the declaration template as a spreadsheet rather than
// exporting CSV, so the pipeline accepts both.
//
// SHEET LAYOUT:
//   - the first sheet of the workbook is read; other sheets are ignored
//   - row 1 is the header row, matched against the same configurable
//     column aliases as the CSV parser
//   - all following rows are declaration rows
//
// Everything after cell extraction is shared with the CSV parser: the
// rows are handed to csvparser.FromRecords, so column resolution, row
// skipping, and ordering behave identically for both formats.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/pfas-reporting/internal/config"
	"github.com/ginjaninja78/pfas-reporting/internal/csvparser"
	"github.com/xuri/excelize/v2"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads declarations from an io.Reader carrying an XLSX workbook.
func Parse(r io.Reader, aliases config.ColumnAliases) (*csvparser.Result, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer workbook.Close()

	return fromWorkbook(workbook, aliases)
}

// ParseFile reads declarations from an XLSX file on disk.
func ParseFile(path string, aliases config.ColumnAliases) (*csvparser.Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open declarations file: %w", err)
	}

	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open workbook: %w", path, err)
	}
	defer workbook.Close()

	result, err := fromWorkbook(workbook, aliases)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return result, nil
}

// fromWorkbook extracts the first sheet as rows and hands them to the
// shared record pipeline.
func fromWorkbook(workbook *excelize.File, aliases config.ColumnAliases) (*csvparser.Result, error) {
	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", csvparser.ErrMalformedHeader, sheets[0])
	}

	return csvparser.FromRecords(rows, aliases)
}
