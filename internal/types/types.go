// =============================================================================
// PFAS Reporting Toolkit - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser / xlsxparser
//   - mapper
//   - reporter
//   - server
//
// =============================================================================

package types

import "time"

// =============================================================================
// DECLARATION TYPES
// =============================================================================

// SupplierDeclaration represents a single supplier declaration row from the
// input file. It is created by the parser and is read-only afterwards.
// Duplicate rows are preserved as-is; the parser makes no dedup guarantee.
type SupplierDeclaration struct {
	// Supplier is the supplier (reporting entity) name as declared.
	Supplier string

	// Substance is the substance name exactly as declared.
	// Normalization happens at classification time, not here.
	Substance string

	// Quantity is the declared quantity, passed through verbatim.
	// May be empty; may be numeric or free text ("5kg", "2", "~1 ton").
	Quantity string

	// Unit is the declared unit of measure, passed through verbatim.
	Unit string

	// Extra contains any additional columns present in the input header
	// that are not part of the canonical field set. Key is the original
	// header name, value is the cell value. Passed through unused.
	Extra map[string]string

	// RowNumber is the row number in the original input file (1-indexed,
	// counting the header row). Useful for diagnostics.
	RowNumber int
}

// MappedDeclaration is a SupplierDeclaration annotated with the PFAS match
// outcome. JSON field names follow the EPA TSCA §8(a)(7) submission schema.
type MappedDeclaration struct {
	// ReportingEntityName is the supplier name under its EPA field name.
	ReportingEntityName string `json:"reporting_entity_name"`

	// SubstanceName is the declared substance name.
	SubstanceName string `json:"substance_name"`

	// Quantity is the declared quantity, verbatim.
	Quantity string `json:"quantity,omitempty"`

	// Unit is the declared unit, verbatim.
	Unit string `json:"unit,omitempty"`

	// IsPFAS is true when the substance matched an entry in the PFAS
	// dictionary (case-insensitive, whitespace-trimmed comparison).
	IsPFAS bool `json:"is_pfas"`

	// AdditionalFields carries any non-canonical input columns.
	AdditionalFields map[string]string `json:"additional_fields,omitempty"`
}

// =============================================================================
// REPORT TYPE
// =============================================================================

// Report is the aggregate output of a single reporting run. It is
// constructed once and immutable afterwards: reports are never merged or
// updated incrementally.
//
// Invariants:
//   - len(Declarations) == TotalDeclarations
//   - every input declaration appears exactly once, in input order,
//     whether or not it matched
type Report struct {
	// TotalDeclarations is the number of valid (non-skipped) input rows.
	TotalDeclarations int `json:"total_declarations"`

	// MatchedCount is the number of declarations flagged as PFAS.
	MatchedCount int `json:"matched_count"`

	// SkippedRows is the number of input rows dropped for missing a
	// required field (supplier or substance name).
	SkippedRows int `json:"skipped_rows"`

	// Declarations lists every mapped declaration in input row order.
	Declarations []MappedDeclaration `json:"declarations"`

	// GeneratedAt is the report generation timestamp (UTC, RFC 3339).
	GeneratedAt time.Time `json:"generated_at"`
}
