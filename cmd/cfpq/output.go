// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/cfpq/query"
)

type outcomeJSON struct {
	Algorithm string         `json:"algorithm"`
	Pairs     [][2]int       `json:"pairs"`
	ElapsedMS float64        `json:"elapsed_ms"`
	Stats     map[string]int `json:"stats,omitempty"`
}

func printOutcomes(w io.Writer, asJSON bool, outs ...*query.Outcome) error {
	if asJSON {
		docs := make([]outcomeJSON, 0, len(outs))
		for _, o := range outs {
			pairs := make([][2]int, 0, o.Pairs.Len())
			for _, p := range o.Pairs.Sorted() {
				pairs = append(pairs, [2]int{p.Start, p.End})
			}
			docs = append(docs, outcomeJSON{
				Algorithm: string(o.Algorithm),
				Pairs:     pairs,
				ElapsedMS: float64(o.Elapsed.Microseconds()) / 1000,
				Stats:     o.Stats,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	for _, o := range outs {
		if _, err := fmt.Fprintf(w, "%s: %d pairs%s\n", o.Algorithm, o.Pairs.Len(), formatStats(o.Stats)); err != nil {
			return err
		}
		for _, p := range o.Pairs.Sorted() {
			if _, err := fmt.Fprintf(w, "  %d %d\n", p.Start, p.End); err != nil {
				return err
			}
		}
	}

	return nil
}

func formatStats(stats map[string]int) string {
	if len(stats) == 0 {
		return ""
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s := " ("
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%d", k, stats[k])
	}

	return s + ")"
}
