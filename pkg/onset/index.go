package onset

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bastiangx/syllabicate/internal/utils"
	"github.com/bastiangx/syllabicate/pkg/syllable"
	"github.com/bastiangx/syllabicate/pkg/trie"
	"github.com/charmbracelet/log"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is a trained onset and how often the corpus produced it.
type Entry struct {
	Onset string
	Count int
}

// Index is a trained onset set. Matching runs against a suffix tree; the
// patricia trie only keeps observation counts for listings and snapshots.
// All methods are safe for concurrent use.
type Index struct {
	mu       sync.RWMutex
	alphabet syllable.Alphabet
	tree     *trie.SuffixTree[struct{}]
	counts   *patricia.Trie
	// patricia does not hold the empty key
	emptyCount   int
	unitsSeen    int
	unitsSkipped int
	maxCount     int
}

// NewIndex returns an empty index for alphabet a.
func NewIndex(a syllable.Alphabet) *Index {
	return &Index{
		alphabet: a,
		tree:     trie.NewSuffixTree[struct{}](),
		counts:   patricia.NewTrie(),
	}
}

// Train builds an index from units. Units that are not a single syllable
// over a are skipped and logged at debug level.
func Train(units []string, a syllable.Alphabet) *Index {
	idx := NewIndex(a)
	added, skipped := idx.Add(units...)
	log.Debugf("Trained %d onsets from %d units (%d skipped)", idx.Len(), added, skipped)
	return idx
}

// Alphabet returns the alphabet units are classified with.
func (idx *Index) Alphabet() syllable.Alphabet {
	return idx.alphabet
}

// Add classifies each unit and records its onset. The empty onset is
// recorded too, so vowel-initial syllables make "" a valid match.
func (idx *Index) Add(units ...string) (added, skipped int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, unit := range units {
		unit = utils.NormalizeWord(unit)
		idx.unitsSeen++
		syl, err := syllable.Classify(unit, idx.alphabet)
		if err != nil {
			idx.unitsSkipped++
			skipped++
			log.Debugf("Skipping unit: %v", err)
			continue
		}
		idx.record(syl.Onset, 1)
		added++
	}
	return added, skipped
}

// Restore sets the count of onset directly, as read back from a snapshot.
func (idx *Index) Restore(onset string, count int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.record(onset, count)
}

// RestoreUnits sets the unit counters reported by Stats, as read back from
// a snapshot.
func (idx *Index) RestoreUnits(seen, skipped int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.unitsSeen = seen
	idx.unitsSkipped = skipped
}

func (idx *Index) record(onset string, n int) {
	idx.tree.Insert(onset, struct{}{})

	var count int
	if onset == "" {
		idx.emptyCount += n
		count = idx.emptyCount
	} else {
		key := patricia.Prefix(onset)
		if item := idx.counts.Get(key); item != nil {
			count = item.(int)
		}
		count += n
		idx.counts.Set(key, count)
	}
	if count > idx.maxCount {
		idx.maxCount = count
	}
}

// Match returns the longest trained onset that is a suffix of cluster.
func (idx *Index) Match(cluster string) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.LongestMatch(cluster)
}

// Contains reports whether onset was trained.
func (idx *Index) Contains(onset string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Contains(onset)
}

// Count returns how often onset was observed, 0 if never.
func (idx *Index) Count(onset string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.count(onset)
}

func (idx *Index) count(onset string) int {
	if onset == "" {
		return idx.emptyCount
	}
	if item := idx.counts.Get(patricia.Prefix(onset)); item != nil {
		return item.(int)
	}
	return 0
}

// Remove forgets onset. It fails with trie.ErrKeyNotFound when the onset
// was never trained.
func (idx *Index) Remove(onset string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if err := idx.tree.Delete(onset); err != nil {
		return fmt.Errorf("remove onset: %w", err)
	}
	if onset == "" {
		idx.emptyCount = 0
	} else {
		idx.counts.Delete(patricia.Prefix(onset))
	}
	idx.maxCount = idx.highestCount()
	return nil
}

func (idx *Index) highestCount() int {
	highest := 0
	if idx.tree.Contains("") {
		highest = idx.emptyCount
	}
	err := idx.counts.Visit(func(_ patricia.Prefix, item patricia.Item) error {
		if count, ok := item.(int); ok && count > highest {
			highest = count
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting onset counts: %v", err)
	}
	return highest
}

// Len returns the number of distinct trained onsets.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Len()
}

// Onsets lists every trained onset sorted by onset.
func (idx *Index) Onsets() []Entry {
	return idx.OnsetsWithPrefix("")
}

// OnsetsWithPrefix lists trained onsets starting with prefix, sorted by
// onset. The empty onset is only listed for the empty prefix.
func (idx *Index) OnsetsWithPrefix(prefix string) []Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var entries []Entry
	if prefix == "" && idx.tree.Contains("") {
		entries = append(entries, Entry{Onset: "", Count: idx.emptyCount})
	}

	collect := func(p patricia.Prefix, item patricia.Item) error {
		count, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for onset %s", item, p)
			return nil
		}
		entries = append(entries, Entry{Onset: string(p), Count: count})
		return nil
	}

	var err error
	if prefix == "" {
		err = idx.counts.Visit(collect)
	} else {
		err = idx.counts.VisitSubtree(patricia.Prefix(prefix), collect)
	}
	if err != nil {
		log.Errorf("Error visiting onset counts: %v", err)
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Onset < entries[j].Onset
	})
	return entries
}

// Stats returns counters about the index.
func (idx *Index) Stats() map[string]int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return map[string]int{
		"onsets":       idx.tree.Len(),
		"unitsSeen":    idx.unitsSeen,
		"unitsSkipped": idx.unitsSkipped,
		"maxCount":     idx.maxCount,
	}
}

func (idx *Index) String() string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.String()
}
