// Package batch converts many addresses at once from JSON lines.
package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jusunglee/addrconv/internal/address"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const maxLineSize = 1 << 20

type Options struct {
	// Concurrency bounds the number of conversions in flight (minimum 1).
	Concurrency int
	// DefaultSite is used for requests that do not name a site.
	DefaultSite string
	// DefaultPccc is used for requests that do not carry a customs code.
	DefaultPccc string
}

// Result is the outcome for one input line, in input order.
type Result struct {
	Line    int                       `json:"line"`
	OK      bool                      `json:"ok"`
	Address *address.ConvertedAddress `json:"address,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

type request struct {
	line   int
	params address.ConvertParams
	err    error
}

// Convert reads one address.ConvertParams JSON object per line and converts
// them concurrently. Malformed lines and soft failures are reported per line;
// the returned error is only for read failures and cancellation.
func Convert(ctx context.Context, r io.Reader, opts Options) ([]Result, error) {
	reqs, err := readRequests(r)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Concurrency, 1))

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = convertOne(req, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("converting batch: %w", err)
	}

	return results, nil
}

// Write emits results as JSON lines.
func Write(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, res := range results {
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("writing result for line %d: %w", res.Line, err)
		}
	}
	return nil
}

// Summary counts converted and failed results.
func Summary(results []Result) (ok, failed int) {
	ok = lo.CountBy(results, func(r Result) bool { return r.OK })
	return ok, len(results) - ok
}

func readRequests(r io.Reader) ([]request, error) {
	var reqs []request
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		req := request{line: line}
		if err := json.Unmarshal([]byte(text), &req.params); err != nil {
			req.err = fmt.Errorf("invalid JSON: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return reqs, nil
}

func convertOne(req request, opts Options) Result {
	res := Result{Line: req.line}
	if req.err != nil {
		res.Error = req.err.Error()
		return res
	}

	params := req.params
	if params.SitePreset == "" {
		params.SitePreset = opts.DefaultSite
	}
	if params.Pccc == "" {
		params.Pccc = opts.DefaultPccc
	}

	converted, ok := address.ConvertAddress(params)
	if !ok {
		res.Error = failureReason(params)
		return res
	}
	res.OK = true
	res.Address = &converted
	return res
}

func failureReason(p address.ConvertParams) string {
	switch {
	case p.KoreanAddress == nil:
		return "missing koreanAddress"
	case lo.Contains(address.PresetIDs(), p.SitePreset):
		return "missing userName"
	default:
		return fmt.Sprintf("unknown site preset %q", p.SitePreset)
	}
}
