// Package aggregate computes summary statistics over a catalog.
//
// Every function is a pure O(n) read of the catalog and recomputes its
// result from scratch, so all of them are safe to call concurrently.
package aggregate

import (
	"slices"

	"github.com/agentstation/pokedex/pkg/catalogs"
)

// Summary bundles every aggregate of a catalog.
type Summary struct {
	TotalSpecies        int            `json:"totalSpecies" yaml:"totalSpecies"`
	CountsPerType       map[string]int `json:"countsPerType" yaml:"countsPerType"`
	CountsPerGeneration map[string]int `json:"countsPerGeneration" yaml:"countsPerGeneration"`
	Types               []string       `json:"types" yaml:"types"`
	Generations         []string       `json:"generations" yaml:"generations"`
}

// Summarize computes every aggregate in one pass per aggregate.
func Summarize(cat *catalogs.Catalog) Summary {
	return Summary{
		TotalSpecies:        TotalSpecies(cat),
		CountsPerType:       CountsPerType(cat),
		CountsPerGeneration: CountsPerGeneration(cat),
		Types:               AllTypes(cat),
		Generations:         AllGenerations(cat),
	}
}

// TotalSpecies counts distinct names. Records sharing a name, such as
// alternate forms, count once. Names compare case-sensitively.
func TotalSpecies(cat *catalogs.Catalog) int {
	seen := make(map[string]struct{}, cat.Len())
	for _, r := range cat.All() {
		seen[r.Name] = struct{}{}
	}
	return len(seen)
}

// CountsPerType counts every occupied type slot. A dual-typed record
// contributes to two buckets.
func CountsPerType(cat *catalogs.Catalog) map[string]int {
	counts := make(map[string]int)
	for _, r := range cat.All() {
		for _, t := range r.Types {
			counts[t]++
		}
	}
	return counts
}

// CountsPerGeneration counts records per generation label.
func CountsPerGeneration(cat *catalogs.Catalog) map[string]int {
	counts := make(map[string]int)
	for _, r := range cat.All() {
		counts[r.Generation]++
	}
	return counts
}

// AllTypes returns the distinct type names in ascending ordinal order.
func AllTypes(cat *catalogs.Catalog) []string {
	return sortedKeys(CountsPerType(cat))
}

// AllGenerations returns the distinct generation labels in ascending ordinal order.
func AllGenerations(cat *catalogs.Catalog) []string {
	return sortedKeys(CountsPerGeneration(cat))
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
