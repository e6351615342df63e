package report

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/msa-platform/comment-contract-tests/commenttests"
	"github.com/msa-platform/comment-contract-tests/framework"

	"github.com/cockroachdb/errors"
)

// Document is the top-level JSON report.
type Document struct {
	RunID      string    `json:"runId"`
	Target     string    `json:"target"`
	StartedAt  time.Time `json:"startedAt"`
	DurationMS int64     `json:"durationMs"`
	OK         bool      `json:"ok"`
	Totals     Totals    `json:"totals"`
	Cases      []Entry   `json:"cases"`
}

func NewDocument(summary commenttests.Summary, target *framework.Target) Document {
	return Document{
		RunID:      summary.RunID,
		Target:     summary.TargetURL,
		StartedAt:  summary.StartedAt,
		DurationMS: summary.Duration.Milliseconds(),
		OK:         summary.OK(),
		Totals:     totalsOf(summary),
		Cases:      Entries(summary, target),
	}
}

func WriteJSON(out io.Writer, summary commenttests.Summary, target *framework.Target) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(NewDocument(summary, target)), "encode JSON report")
}

// WriteJSONFile writes the JSON report to path, replacing any existing file.
func WriteJSONFile(path string, summary commenttests.Summary, target *framework.Target) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create JSON report")
	}
	if err := WriteJSON(f, summary, target); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close JSON report")
}
