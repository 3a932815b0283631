// =============================================================================
// PFAS Reporting Toolkit - Row Validation
// =============================================================================
//
// This module holds the row-level validation applied during declaration
// parsing. The policy is deliberately small: a row missing its supplier
// name or substance name cannot be classified, so it is skipped and
// recorded here rather than aborting the whole run. Everything else on a
// row is passed through verbatim.
//
// ERROR HANDLING:
//   - Issues are collected, not thrown; the parser keeps iterating
//   - Each issue carries the original row number for troubleshooting
//   - Skipped rows never appear in the generated report
//
// =============================================================================

package validation

import "fmt"

// =============================================================================
// ROW ISSUE TYPE
// =============================================================================

// RowIssue describes why a single input row was skipped.
type RowIssue struct {
	// RowNumber is the row number in the input file (1-indexed, counting
	// the header row).
	RowNumber int

	// Field is the canonical name of the field that failed ("supplier"
	// or "substance").
	Field string

	// Message is a human-readable description of the problem.
	Message string
}

// String formats the issue for log output.
func (i RowIssue) String() string {
	return fmt.Sprintf("row %d: %s", i.RowNumber, i.Message)
}

// =============================================================================
// VALIDATION FUNCTIONS
// =============================================================================

// CheckDeclarationRow validates the required fields of a declaration row.
// It returns one issue per missing field; an empty result means the row is
// usable.
func CheckDeclarationRow(rowNumber int, supplier, substance string) []RowIssue {
	var issues []RowIssue

	if supplier == "" {
		issues = append(issues, RowIssue{
			RowNumber: rowNumber,
			Field:     "supplier",
			Message:   "missing supplier name",
		})
	}
	if substance == "" {
		issues = append(issues, RowIssue{
			RowNumber: rowNumber,
			Field:     "substance",
			Message:   "missing substance name",
		})
	}

	return issues
}
