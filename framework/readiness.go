package framework

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"
)

const readinessPollInterval = time.Millisecond * 100

// AwaitService polls path on the target until the service answers with any HTTP status, or
// until timeout elapses. It returns the status of the first response. Progress is written to
// output as a line of dots.
func AwaitService(ctx context.Context, target *Target, path string, timeout time.Duration, output io.Writer) (int, error) {
	fmt.Fprintf(output, "Connecting to service at %s", target.URL(path))
	defer fmt.Fprintln(output)

	quiet := target.WithLogger(NullLogger())
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprint(output, ".")
		pollCtx, cancel := context.WithDeadline(ctx, deadline)
		resp, err := quiet.Get(pollCtx, path)
		cancel()
		if err == nil {
			return resp.Status, nil
		}
		if !time.Now().Before(deadline) {
			return 0, errors.Wrap(err, "timed out waiting for service")
		}
		select {
		case <-ctx.Done():
			return 0, errors.Wrap(ctx.Err(), "stopped waiting for service")
		case <-time.After(readinessPollInterval):
		}
	}
}
