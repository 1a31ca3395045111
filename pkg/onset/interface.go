// Package onset trains and serves the set of syllable onsets observed in a pre-syllabified corpus.
package onset

import "github.com/bastiangx/syllabicate/pkg/syllable"

// IIndex defines the trained onset set as used by the server and the CLI
type IIndex interface {
	// Match returns the longest trained onset that ends cluster
	syllable.OnsetMatcher

	// Add trains the index on more units
	Add(units ...string) (added, skipped int)

	// Remove forgets a trained onset
	Remove(onset string) error

	// Onsets lists all trained onsets with their observation counts
	Onsets() []Entry

	// OnsetsWithPrefix lists trained onsets starting with prefix
	OnsetsWithPrefix(prefix string) []Entry

	// Stats returns counters about the training run
	Stats() map[string]int
}

var _ IIndex = (*Index)(nil)
