package mapper

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ginjaninja78/pfas-reporting/internal/dictionary"
	"github.com/ginjaninja78/pfas-reporting/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDict(t *testing.T, entries string) *dictionary.Dictionary {
	t.Helper()
	dict, err := dictionary.Load(strings.NewReader(entries))
	require.NoError(t, err)
	return dict
}

func TestClassify(t *testing.T) {
	dict := testDict(t, "PFOA\nPFOS\n")

	tests := []struct {
		name     string
		decl     types.SupplierDeclaration
		wantPFAS bool
	}{
		{
			name:     "exact match",
			decl:     types.SupplierDeclaration{Supplier: "Acme", Substance: "PFOA"},
			wantPFAS: true,
		},
		{
			name:     "case-insensitive match",
			decl:     types.SupplierDeclaration{Supplier: "Acme", Substance: "pfos"},
			wantPFAS: true,
		},
		{
			name:     "whitespace-trimmed match",
			decl:     types.SupplierDeclaration{Supplier: "Acme", Substance: "  PFOA "},
			wantPFAS: true,
		},
		{
			name:     "no match",
			decl:     types.SupplierDeclaration{Supplier: "Beta", Substance: "Water"},
			wantPFAS: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := Classify(tt.decl, dict)
			assert.Equal(t, tt.wantPFAS, mapped.IsPFAS)
			assert.Equal(t, tt.decl.Supplier, mapped.ReportingEntityName)
			assert.Equal(t, tt.decl.Substance, mapped.SubstanceName)
		})
	}
}

func TestClassify_CarriesFieldsVerbatim(t *testing.T) {
	dict := testDict(t, "PFOA\n")

	mapped := Classify(types.SupplierDeclaration{
		Supplier:  "Acme",
		Substance: "PFOA",
		Quantity:  "5",
		Unit:      "kg",
		Extra:     map[string]string{"Evidence": "lab report"},
	}, dict)

	assert.Equal(t, "5", mapped.Quantity)
	assert.Equal(t, "kg", mapped.Unit)
	assert.Equal(t, map[string]string{"Evidence": "lab report"}, mapped.AdditionalFields)
}

func TestBuildReport(t *testing.T) {
	dict := testDict(t, "PFOA\nPFOS\n")

	decls := []types.SupplierDeclaration{
		{Supplier: "Acme", Substance: "PFOA", Quantity: "5", Unit: "kg"},
		{Supplier: "Beta", Substance: "Water", Quantity: "2", Unit: "L"},
	}

	report := BuildReport(decls, 0, dict)

	assert.Equal(t, 2, report.TotalDeclarations)
	assert.Equal(t, 1, report.MatchedCount)
	assert.Zero(t, report.SkippedRows)
	require.Len(t, report.Declarations, 2)

	assert.Equal(t, "Acme", report.Declarations[0].ReportingEntityName)
	assert.True(t, report.Declarations[0].IsPFAS)
	assert.Equal(t, "Beta", report.Declarations[1].ReportingEntityName)
	assert.False(t, report.Declarations[1].IsPFAS)

	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, time.UTC, report.GeneratedAt.Location())
}

func TestBuildReport_UnmatchedRowsRetained(t *testing.T) {
	dict := testDict(t, "PFOA\n")

	decls := []types.SupplierDeclaration{
		{Supplier: "A", Substance: "Water"},
		{Supplier: "B", Substance: "Sand"},
	}

	report := BuildReport(decls, 0, dict)

	// Unmatched rows are flagged false, never dropped.
	assert.Equal(t, 2, report.TotalDeclarations)
	assert.Zero(t, report.MatchedCount)
	require.Len(t, report.Declarations, 2)
}

func TestBuildReport_PreservesInputOrder(t *testing.T) {
	dict := testDict(t, "PFOA\n")

	decls := []types.SupplierDeclaration{
		{Supplier: "S3", Substance: "PFOA"},
		{Supplier: "S1", Substance: "Water"},
		{Supplier: "S2", Substance: "PFOA"},
	}

	report := BuildReport(decls, 0, dict)

	got := make([]string, len(report.Declarations))
	for i, d := range report.Declarations {
		got[i] = d.ReportingEntityName
	}
	assert.Equal(t, []string{"S3", "S1", "S2"}, got)
}

func TestBuildReport_CarriesSkipCount(t *testing.T) {
	dict := testDict(t, "PFOA\n")

	report := BuildReport([]types.SupplierDeclaration{
		{Supplier: "Acme", Substance: "PFOA"},
	}, 3, dict)

	assert.Equal(t, 1, report.TotalDeclarations)
	assert.Equal(t, 3, report.SkippedRows)
}

func TestBuildReport_Idempotent(t *testing.T) {
	dict := testDict(t, "PFOA\nPFOS\n")
	decls := []types.SupplierDeclaration{
		{Supplier: "Acme", Substance: "PFOA", Quantity: "5", Unit: "kg"},
		{Supplier: "Beta", Substance: "Water", Quantity: "2", Unit: "L"},
	}

	first := BuildReport(decls, 1, dict)
	second := BuildReport(decls, 1, dict)

	// Pin the timestamps; everything else must serialize identically.
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	first.GeneratedAt = fixed
	second.GeneratedAt = fixed

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
