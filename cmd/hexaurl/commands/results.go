package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/axiomhq/hexaurl/rules"
)

// result is the outcome of one input of a batch command.
type result struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Code   string `json:"code,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (r result) failed() bool { return r.Error != "" }

func failure(input string, err error) result {
	return result{Input: input, Code: rules.Code(err), Error: err.Error()}
}

// process applies fn to every input on up to GOMAXPROCS goroutines. Results
// keep the order of inputs.
func process(ctx context.Context, inputs []string, fn func(string) result) ([]result, error) {
	results := make([]result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fn(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeResults prints results as tab-separated text or a JSON array and
// returns ErrRejected when any result failed.
func writeResults(w io.Writer, results []result, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	case "text", "":
		for _, r := range results {
			var err error
			if r.failed() {
				_, err = fmt.Fprintf(w, "%s\terror\t%s\n", r.Input, r.Error)
			} else {
				_, err = fmt.Fprintf(w, "%s\t%s\n", r.Input, r.Output)
			}
			if err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}
		}
	default:
		return fmt.Errorf("invalid output: %s (valid options: text, json)", output)
	}

	rejected := 0
	for _, r := range results {
		if r.failed() {
			rejected++
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRejected, rejected, len(results))
	}
	return nil
}

func checkOutput(output string) error {
	switch output {
	case "text", "json", "":
		return nil
	default:
		return fmt.Errorf("invalid output: %s (valid options: text, json)", output)
	}
}
