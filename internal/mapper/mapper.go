// =============================================================================
// PFAS Reporting Toolkit - Declaration Mapper
// =============================================================================
//
// This module is the core of the reporting pipeline: it classifies parsed
// supplier declarations against the PFAS dictionary and aggregates them
// into a Report.
//
// CLASSIFICATION:
//   Classify is a pure function. The declared substance name is trimmed
//   and lowercased, then tested for membership in the dictionary. No
//   I/O, no side effects, no failure mode: a declaration either matches
//   or it does not.
//
// AGGREGATION:
//   BuildReport walks the declarations in input order and keeps that
//   order in the output, so identical inputs produce identical report
//   bodies (modulo the generation timestamp) and report diffs stay
//   readable. Unmatched declarations are retained and flagged false,
//   never dropped. Duplicate declarations are preserved verbatim.
//
// =============================================================================

package mapper

import (
	"time"

	"github.com/ginjaninja78/pfas-reporting/internal/dictionary"
	"github.com/ginjaninja78/pfas-reporting/internal/types"
)

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify maps one declaration onto the EPA TSCA §8(a)(7) field set and
// flags whether its substance appears in the PFAS dictionary.
func Classify(decl types.SupplierDeclaration, dict *dictionary.Dictionary) types.MappedDeclaration {
	return types.MappedDeclaration{
		ReportingEntityName: decl.Supplier,
		SubstanceName:       decl.Substance,
		Quantity:            decl.Quantity,
		Unit:                decl.Unit,
		IsPFAS:              dict.Contains(decl.Substance),
		AdditionalFields:    decl.Extra,
	}
}

// =============================================================================
// REPORT ASSEMBLY
// =============================================================================

// BuildReport classifies every declaration and assembles the final
// report. skippedRows is the parser's count of rows dropped for missing
// required fields; it is carried into the report for diagnostics.
//
// Guarantees:
//   - TotalDeclarations == len(declarations) == len(Report.Declarations)
//   - Declarations keeps the input order exactly
func BuildReport(declarations []types.SupplierDeclaration, skippedRows int, dict *dictionary.Dictionary) *types.Report {
	mapped := make([]types.MappedDeclaration, 0, len(declarations))
	matched := 0

	for _, decl := range declarations {
		m := Classify(decl, dict)
		if m.IsPFAS {
			matched++
		}
		mapped = append(mapped, m)
	}

	return &types.Report{
		TotalDeclarations: len(declarations),
		MatchedCount:      matched,
		SkippedRows:       skippedRows,
		Declarations:      mapped,
		GeneratedAt:       time.Now().UTC(),
	}
}
