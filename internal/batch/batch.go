// Package batch validates many VAST request strings in one run, reading
// them one per line from a file or stdin.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google-marketing-solutions/vast-validator/internal/rules"
	"github.com/google-marketing-solutions/vast-validator/internal/validate"
)

// LineResult is the outcome for one input line. Err is set when the line
// could not be parsed at all (no query string with required parameters);
// otherwise Result holds the validation findings.
type LineResult struct {
	Line    int
	Request string
	Result  validate.Result
	Err     error
}

// Failed reports whether the line counts against the run.
func (r LineResult) Failed() bool {
	return r.Err != nil || !r.Result.Passed
}

// Summary aggregates a whole batch run.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Results []LineResult
}

// Run validates every non-empty, non-comment line of r against the rule set
// for ctx. onLine, if non-nil, is called before each validation and can
// drive a progress display. A scanner error aborts the run; per-line
// validation failures never do.
func Run(r io.Reader, ctx rules.ImplementationType, programmatic, decode bool, onLine func(line int, raw string)) (*Summary, error) {
	summary := &Summary{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		if onLine != nil {
			onLine(lineNo, raw)
		}

		lr := LineResult{Line: lineNo, Request: raw}
		_, res, err := validate.Request(raw, ctx, programmatic, decode)
		if err != nil {
			lr.Err = err
		} else {
			lr.Result = res
		}

		summary.Total++
		if lr.Failed() {
			summary.Failed++
		} else {
			summary.Passed++
		}
		summary.Results = append(summary.Results, lr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch input: %w", err)
	}

	return summary, nil
}
