// =============================================================================
// PFAS Reporting Toolkit - Reporter Module
// =============================================================================
//
// This module orchestrates the reporting pipeline for a single run, from
// raw inputs to a written JSON report.
//
// PIPELINE:
//   1. Load the PFAS dictionary (explicit path or configured default)
//   2. Parse the declarations file (CSV or XLSX, chosen by extension)
//   3. Classify every declaration against the dictionary
//   4. Assemble the report
//   5. Write the output file (CLI path) or hand the report back (HTTP path)
//
// The pipeline is synchronous and stateless: each run is independent,
// holds no shared mutable state, and either produces a complete report or
// fails with an error. There is no partial report on fatal error.
//
// =============================================================================

package reporter

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/pfas-reporting/internal/config"
	"github.com/ginjaninja78/pfas-reporting/internal/csvparser"
	"github.com/ginjaninja78/pfas-reporting/internal/dictionary"
	"github.com/ginjaninja78/pfas-reporting/internal/mapper"
	"github.com/ginjaninja78/pfas-reporting/internal/types"
	"github.com/ginjaninja78/pfas-reporting/internal/xlsxparser"
	"github.com/ginjaninja78/pfas-reporting/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one reporting run.
type Result struct {
	// InputFile is the declarations file that was processed.
	InputFile string

	// OutputFile is the path of the written JSON report.
	OutputFile string

	// Report is the generated report.
	Report *types.Report

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about a reporting run.
type Stats struct {
	// DictionaryEntries is the number of distinct PFAS identifiers loaded.
	DictionaryEntries int

	// RowsParsed is the number of valid declaration rows.
	RowsParsed int

	// RowsSkipped is the number of rows dropped for missing fields.
	RowsSkipped int

	// Matched is the number of declarations flagged as PFAS.
	Matched int

	// ProcessingTime is the time taken for the whole run.
	ProcessingTime time.Duration
}

// =============================================================================
// REPORTER
// =============================================================================

// Reporter runs the declaration-to-report pipeline using a fixed
// configuration. It is safe to reuse across runs.
type Reporter struct {
	cfg *config.Config
}

// New creates a Reporter bound to the given configuration.
func New(cfg *config.Config) *Reporter {
	return &Reporter{cfg: cfg}
}

// RunFile executes the full pipeline over files on disk.
//
// PARAMETERS:
//   - inputPath: declarations file; ".xlsx"/".xlsm" are read as
//     workbooks, everything else as CSV
//   - outputPath: where to write the JSON report; empty means derive a
//     name from the configured output directory and name pattern
//   - dictPath: PFAS dictionary; empty means the configured default
func (r *Reporter) RunFile(inputPath, outputPath, dictPath string) (*Result, error) {
	start := time.Now()

	if dictPath == "" {
		dictPath = r.cfg.DictionaryPath
	}
	dict, err := dictionary.LoadFile(dictPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("dictionary loaded", "path", dictPath, "entries", dict.Len())

	parsed, err := r.parseFile(inputPath)
	if err != nil {
		return nil, err
	}
	r.logIssues(parsed)

	report := mapper.BuildReport(parsed.Declarations, parsed.SkippedRows, dict)

	if outputPath == "" {
		outputPath, err = utils.ReportPath(r.cfg.Output.Dir, r.cfg.Output.NamePattern, report.GeneratedAt)
		if err != nil {
			return nil, err
		}
	}
	if err := utils.WriteJSON(outputPath, report); err != nil {
		return nil, err
	}

	return &Result{
		InputFile:  inputPath,
		OutputFile: outputPath,
		Report:     report,
		Stats: Stats{
			DictionaryEntries: dict.Len(),
			RowsParsed:        report.TotalDeclarations,
			RowsSkipped:       report.SkippedRows,
			Matched:           report.MatchedCount,
			ProcessingTime:    time.Since(start),
		},
	}, nil
}

// Generate executes the pipeline over in-memory sources. This is the
// entry point used by the HTTP front-end, where the inputs arrive as
// uploaded streams rather than files.
//
// PARAMETERS:
//   - name: original file name of the declarations upload, used only to
//     pick the CSV or XLSX parser
//   - declSrc: the declarations content
//   - dictSrc: the dictionary content; nil means load the configured
//     default dictionary from disk
func (r *Reporter) Generate(name string, declSrc io.Reader, dictSrc io.Reader) (*types.Report, error) {
	var (
		dict *dictionary.Dictionary
		err  error
	)
	if dictSrc != nil {
		dict, err = dictionary.Load(dictSrc)
	} else {
		dict, err = dictionary.LoadFile(r.cfg.DictionaryPath)
	}
	if err != nil {
		return nil, err
	}

	var parsed *csvparser.Result
	if isWorkbook(name) {
		parsed, err = xlsxparser.Parse(declSrc, r.cfg.Columns)
	} else {
		parsed, err = csvparser.Parse(declSrc, r.cfg.Columns)
	}
	if err != nil {
		return nil, err
	}
	r.logIssues(parsed)

	return mapper.BuildReport(parsed.Declarations, parsed.SkippedRows, dict), nil
}

// parseFile picks the parser for a declarations file by extension.
func (r *Reporter) parseFile(path string) (*csvparser.Result, error) {
	if isWorkbook(path) {
		return xlsxparser.ParseFile(path, r.cfg.Columns)
	}
	return csvparser.ParseFile(path, r.cfg.Columns)
}

// logIssues reports skipped rows without failing the run. Row-level
// problems are the only recoverable condition in the pipeline.
func (r *Reporter) logIssues(parsed *csvparser.Result) {
	if parsed.SkippedRows == 0 {
		return
	}
	slog.Warn("skipped rows with missing required fields", "rows", parsed.SkippedRows)
	for _, issue := range parsed.Issues {
		slog.Debug("skipped row", "row", issue.RowNumber, "field", issue.Field, "reason", issue.Message)
	}
}

// isWorkbook reports whether the file name looks like an Excel workbook.
func isWorkbook(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// Describe returns a one-line human summary of a run, used by the CLI.
func (res *Result) Describe() string {
	return fmt.Sprintf("%d declaration(s), %d matched, %d skipped -> %s",
		res.Stats.RowsParsed, res.Stats.Matched, res.Stats.RowsSkipped, res.OutputFile)
}
