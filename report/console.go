package report

import (
	"fmt"
	"io"

	"github.com/msa-platform/comment-contract-tests/commenttests"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	skipColor = color.New(color.FgYellow)
)

// PrintSummary writes the per-case outcome lines, the totals, and the names of any failed
// cases. Colors follow the color package's global NoColor setting.
func PrintSummary(out io.Writer, summary commenttests.Summary) {
	fmt.Fprintln(out, "Results:")
	for _, r := range summary.Results {
		switch {
		case r.Failed:
			failColor.Fprint(out, "  FAIL ")
		case r.Skipped:
			skipColor.Fprint(out, "  SKIP ")
		default:
			passColor.Fprint(out, "  PASS ")
		}
		observed := "-"
		if r.ObservedStatus.IsDefined() {
			observed = fmt.Sprintf("%d", r.ObservedStatus.IntValue())
		}
		fmt.Fprintf(out, "[%s] %s %s (expected %s, got %s)\n",
			r.TestID, r.Case.Method, r.Case.Path, expectedDescription(r.Case), observed)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Target:   %s\n", summary.TargetURL)
	fmt.Fprintf(out, "Run ID:   %s\n", summary.RunID)
	fmt.Fprintf(out, "Duration: %s\n", formatDuration(summary.Duration))
	fmt.Fprintf(out, "Passed %d/%d (%.1f%%), failed %d, skipped %d\n",
		summary.Passed(), summary.Total(), summary.PassRate(), summary.Failed(), summary.Skipped())

	if failed := summary.FailedCases(); len(failed) != 0 {
		failColor.Fprintln(out, "Failed cases:")
		for _, r := range failed {
			fmt.Fprintf(out, "  %s\n", r.TestID)
		}
	}
	for _, g := range summary.GroupFailures {
		failColor.Fprintf(out, "Group failed: %s\n", g.TestID)
		for _, err := range g.Errors {
			fmt.Fprintf(out, "  %s\n", err)
		}
	}
	if summary.OK() {
		passColor.Fprintln(out, "All cases passed")
	}
}
