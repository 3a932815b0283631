package reporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/pfas-reporting/internal/config"
	"github.com/ginjaninja78/pfas-reporting/internal/csvparser"
	"github.com/ginjaninja78/pfas-reporting/internal/dictionary"
	"github.com/ginjaninja78/pfas-reporting/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const declarationsCSV = `Supplier Name,Substance Name,Quantity,Unit
Acme,PFOA,5,kg
Beta,Water,2,L
`

// writeFixture writes content to a file under dir and returns its path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.Output.Dir = filepath.Join(dir, "reports")
	return cfg
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFixture(t, dir, "suppliers.csv", declarationsCSV)
	dictPath := writeFixture(t, dir, "dict.txt", "PFOA\nPFOS\n")
	outPath := filepath.Join(dir, "report.json")

	result, err := New(testConfig(dir)).RunFile(csvPath, outPath, dictPath)
	require.NoError(t, err)

	assert.Equal(t, outPath, result.OutputFile)
	assert.Equal(t, 2, result.Stats.RowsParsed)
	assert.Equal(t, 1, result.Stats.Matched)
	assert.Zero(t, result.Stats.RowsSkipped)
	assert.Equal(t, 2, result.Stats.DictionaryEntries)

	// The written file carries the same report.
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 2, report.TotalDeclarations)
	assert.Equal(t, 1, report.MatchedCount)
	require.Len(t, report.Declarations, 2)
	assert.Equal(t, "Acme", report.Declarations[0].ReportingEntityName)
	assert.True(t, report.Declarations[0].IsPFAS)
	assert.False(t, report.Declarations[1].IsPFAS)
}

func TestRunFile_DerivedOutputPath(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFixture(t, dir, "suppliers.csv", declarationsCSV)
	dictPath := writeFixture(t, dir, "dict.txt", "PFOA\n")

	cfg := testConfig(dir)
	result, err := New(cfg).RunFile(csvPath, "", dictPath)
	require.NoError(t, err)

	assert.Equal(t, cfg.Output.Dir, filepath.Dir(result.OutputFile))
	assert.True(t, strings.HasSuffix(result.OutputFile, ".json"))

	_, err = os.Stat(result.OutputFile)
	require.NoError(t, err)
}

func TestRunFile_SkippedRows(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFixture(t, dir, "suppliers.csv",
		"Supplier Name,Substance Name\nAcme,PFOA\n,PFOS\n")
	dictPath := writeFixture(t, dir, "dict.txt", "PFOA\n")
	outPath := filepath.Join(dir, "report.json")

	result, err := New(testConfig(dir)).RunFile(csvPath, outPath, dictPath)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.RowsParsed)
	assert.Equal(t, 1, result.Stats.RowsSkipped)
	assert.Equal(t, 1, result.Report.SkippedRows)
}

func TestRunFile_Errors(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFixture(t, dir, "suppliers.csv", declarationsCSV)
	dictPath := writeFixture(t, dir, "dict.txt", "PFOA\n")

	t.Run("missing dictionary", func(t *testing.T) {
		_, err := New(testConfig(dir)).RunFile(csvPath, "", filepath.Join(dir, "nope.txt"))
		require.ErrorIs(t, err, dictionary.ErrNotFound)
	})

	t.Run("missing declarations file", func(t *testing.T) {
		_, err := New(testConfig(dir)).RunFile(filepath.Join(dir, "nope.csv"), "", dictPath)
		require.Error(t, err)
	})

	t.Run("malformed header", func(t *testing.T) {
		badPath := writeFixture(t, dir, "bad.csv", "Foo,Bar\nx,y\n")
		_, err := New(testConfig(dir)).RunFile(badPath, "", dictPath)
		require.ErrorIs(t, err, csvparser.ErrMalformedHeader)
	})
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	report, err := New(testConfig(dir)).Generate(
		"suppliers.csv",
		strings.NewReader(declarationsCSV),
		strings.NewReader("PFOA\n"),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalDeclarations)
	assert.Equal(t, 1, report.MatchedCount)
}

func TestGenerate_DefaultDictionary(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.DictionaryPath = writeFixture(t, dir, "dict.txt", "PFOA\n")

	report, err := New(cfg).Generate("suppliers.csv", strings.NewReader(declarationsCSV), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.MatchedCount)
}
