// Package weights holds the static per-spread position importance table.
// Weights are calibrated in [0,1]; two thresholds matter downstream:
// DetailThreshold gates extended per-card prose, FeaturedThreshold separates
// featured positions from supporting ones.
package weights

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DetailThreshold   = 0.75
	FeaturedThreshold = 0.65

	// defaultWeight is returned for unknown spread keys or out-of-range
	// indices so lookups always stay inside [0,1].
	defaultWeight = 0.5
)

//go:embed data/weights.yaml
var rawTable []byte

var (
	loadOnce sync.Once
	table    map[string][]float64
	loadErr  error
)

func load() {
	loadOnce.Do(func() {
		parsed := map[string][]float64{}
		if err := yaml.Unmarshal(rawTable, &parsed); err != nil {
			loadErr = fmt.Errorf("parse embedded weight table: %w", err)
			return
		}
		for key, ws := range parsed {
			for i, w := range ws {
				if w < 0 {
					ws[i] = 0
				}
				if w > 1 {
					ws[i] = 1
				}
			}
			parsed[key] = ws
		}
		table = parsed
	})
}

// Lookup returns the weight for (spreadKey, index). Unknown keys and indices
// return the neutral default rather than an error; the result is always in
// [0,1].
func Lookup(spreadKey string, index int) float64 {
	load()
	ws, ok := table[spreadKey]
	if !ok || index < 0 || index >= len(ws) {
		return defaultWeight
	}
	return ws[index]
}

// ExpectedCount reports the number of positions the spread defines.
func ExpectedCount(spreadKey string) (int, bool) {
	load()
	ws, ok := table[spreadKey]
	if !ok {
		return 0, false
	}
	return len(ws), true
}

// Known reports whether the spread key has a calibrated table.
func Known(spreadKey string) bool {
	load()
	_, ok := table[spreadKey]
	return ok
}

func IsDetailWorthy(w float64) bool { return w >= DetailThreshold }
func IsFeatured(w float64) bool     { return w >= FeaturedThreshold }

// RankedPositions returns the spread's position indices ordered by weight,
// highest first. Equal weights keep position order (stable sort).
func RankedPositions(spreadKey string) []int {
	load()
	ws, ok := table[spreadKey]
	if !ok {
		return nil
	}
	idx := make([]int, len(ws))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return ws[idx[a]] > ws[idx[b]] })
	return idx
}

// SupportingPositions returns indices whose weight falls below the featured
// threshold, in position order.
func SupportingPositions(spreadKey string) []int {
	load()
	ws, ok := table[spreadKey]
	if !ok {
		return nil
	}
	var out []int
	for i, w := range ws {
		if w < FeaturedThreshold {
			out = append(out, i)
		}
	}
	return out
}
