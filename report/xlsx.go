package report

import (
	"fmt"
	"strings"

	"github.com/msa-platform/comment-contract-tests/commenttests"
	"github.com/msa-platform/comment-contract-tests/framework"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName = "Contract Tests"

	defaultColumnWidth = 16
	wideColumnWidth    = 48

	patternType    = "pattern"
	patternValue   = 1
	failedBgColor  = "FF5900"
	skippedBgColor = "FFEB9C"
)

var sheetHeaders = []string{
	"ID", "Name", "Method", "Path", "Expected", "Observed",
	"Outcome", "Errors", "Duration (ms)", "Curl",
}

// wide columns hold free text
var wideColumns = map[string]bool{"A": true, "D": true, "H": true, "J": true}

// WriteXLSX writes a workbook with one row per case, colored by outcome, followed by a
// summary block.
func WriteXLSX(path string, summary commenttests.Summary, target *framework.Target) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return errors.Wrap(err, "rename sheet")
	}

	failedStyle, err := fillStyle(f, failedBgColor)
	if err != nil {
		return err
	}
	skippedStyle, err := fillStyle(f, skippedBgColor)
	if err != nil {
		return err
	}

	for i, header := range sheetHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(defaultColumnWidth)
		if wideColumns[col] {
			width = wideColumnWidth
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return errors.Wrap(err, "set column width")
		}
		if err := setCell(f, i+1, 1, header); err != nil {
			return err
		}
	}

	entries := Entries(summary, target)
	for i, e := range entries {
		row := i + 2
		var observed interface{} = ""
		if e.ObservedStatus != nil {
			observed = *e.ObservedStatus
		}
		errorText := strings.Join(e.Errors, "\n")
		if e.SkipReason != "" {
			errorText = e.SkipReason
		}
		cells := []interface{}{
			e.ID, e.Name, e.Method, e.Path, e.Expected, observed,
			e.Outcome, errorText, e.DurationMS, e.Curl,
		}
		for col, value := range cells {
			if err := setCell(f, col+1, row, value); err != nil {
				return err
			}
		}

		style := 0
		switch e.Outcome {
		case OutcomeFailed:
			style = failedStyle
		case OutcomeSkipped:
			style = skippedStyle
		}
		if style != 0 {
			first, _ := excelize.CoordinatesToCellName(1, row)
			last, _ := excelize.CoordinatesToCellName(len(cells), row)
			if err := f.SetCellStyle(SheetName, first, last, style); err != nil {
				return errors.Wrap(err, "set row style")
			}
		}
	}

	if err := writeSummaryBlock(f, len(entries)+3, summary); err != nil {
		return err
	}

	return errors.Wrapf(f.SaveAs(path), "save workbook %s", path)
}

func writeSummaryBlock(f *excelize.File, startRow int, summary commenttests.Summary) error {
	lines := []string{
		"Summary",
		fmt.Sprintf("Target: %s", summary.TargetURL),
		fmt.Sprintf("Run ID: %s", summary.RunID),
		fmt.Sprintf("Started: %s", summary.StartedAt.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Duration: %s", formatDuration(summary.Duration)),
		fmt.Sprintf("Total: %d", summary.Total()),
		fmt.Sprintf("Passed: %d", summary.Passed()),
		fmt.Sprintf("Failed: %d", summary.Failed()),
		fmt.Sprintf("Skipped: %d", summary.Skipped()),
		fmt.Sprintf("Pass rate: %.1f%%", summary.PassRate()),
	}
	for i, line := range lines {
		if err := setCell(f, 1, startRow+i, line); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.Wrap(err, "cell name")
	}
	return errors.Wrapf(f.SetCellValue(SheetName, cell, value), "set cell %s", cell)
}

func fillStyle(f *excelize.File, color string) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    patternType,
			Pattern: patternValue,
			Color:   []string{color},
		},
	})
	return style, errors.Wrap(err, "create style")
}
