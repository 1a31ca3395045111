package onset

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bastiangx/syllabicate/pkg/syllable"
	"github.com/bastiangx/syllabicate/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var corpus = []string{"un", "ter", "schei", "dung", "ta", "schu", "schwa", "cha", "Tor"}

func TestTrain(t *testing.T) {
	idx := Train(corpus, syllable.German)

	for _, o := range []string{"", "t", "sch", "d", "schw", "ch"} {
		assert.True(t, idx.Contains(o), "onset %q", o)
	}
	assert.False(t, idx.Contains("s"))
	assert.False(t, idx.Contains("x"))
	assert.Equal(t, 6, idx.Len())

	assert.Equal(t, 3, idx.Count("t"))
	assert.Equal(t, 1, idx.Count(""))
	assert.Equal(t, 0, idx.Count("zz"))
}

func TestTrainIsIdempotentOnMembership(t *testing.T) {
	once := Train(corpus, syllable.German)
	twice := Train(append(append([]string{}, corpus...), corpus...), syllable.German)

	assert.Equal(t, once.String(), twice.String())
	assert.Equal(t, 2*once.Count("sch"), twice.Count("sch"))
}

func TestAddSkipsInvalidUnits(t *testing.T) {
	idx := NewIndex(syllable.German)

	added, skipped := idx.Add("ta", "", "aba", "x1", "brr", "  Schwa ")
	assert.Equal(t, 2, added)
	assert.Equal(t, 4, skipped)
	assert.True(t, idx.Contains("schw"))

	stats := idx.Stats()
	assert.Equal(t, 6, stats["unitsSeen"])
	assert.Equal(t, 4, stats["unitsSkipped"])
	assert.Equal(t, 2, stats["onsets"])
}

func TestMatch(t *testing.T) {
	idx := Train([]string{"ta", "schu", "schwa", "cha"}, syllable.German)

	m, ok := idx.Match("rsch")
	assert.True(t, ok)
	assert.Equal(t, "sch", m)

	m, ok = idx.Match("ngschw")
	assert.True(t, ok)
	assert.Equal(t, "schw", m)

	_, ok = idx.Match("ng")
	assert.False(t, ok)

	// vowel-initial units train the empty onset
	idx.Add("un")
	m, ok = idx.Match("ng")
	assert.True(t, ok)
	assert.Equal(t, "", m)
}

func TestSegmentWithIndex(t *testing.T) {
	idx := Train(corpus, syllable.German)
	seg := syllable.NewSegmenter(idx.Alphabet(), idx)

	got, err := seg.Hyphenate("Unterscheidung", "-")
	require.NoError(t, err)
	assert.Equal(t, "un-ter-schei-dung", got)
}

func TestRemove(t *testing.T) {
	idx := Train(corpus, syllable.German)

	require.NoError(t, idx.Remove("schw"))
	assert.False(t, idx.Contains("schw"))
	assert.True(t, idx.Contains("sch"))
	assert.Equal(t, 0, idx.Count("schw"))

	err := idx.Remove("schw")
	assert.ErrorIs(t, err, trie.ErrKeyNotFound)

	require.NoError(t, idx.Remove(""))
	_, ok := idx.Match("ng")
	assert.False(t, ok)
}

func TestRemoveRecomputesMaxCount(t *testing.T) {
	idx := Train(corpus, syllable.German)
	assert.Equal(t, 3, idx.Stats()["maxCount"])

	require.NoError(t, idx.Remove("t"))
	assert.Equal(t, 2, idx.Stats()["maxCount"])

	require.NoError(t, idx.Remove("sch"))
	assert.Equal(t, 1, idx.Stats()["maxCount"])

	for _, e := range idx.Onsets() {
		require.NoError(t, idx.Remove(e.Onset))
	}
	assert.Equal(t, 0, idx.Stats()["maxCount"])
}

func TestOnsets(t *testing.T) {
	idx := Train(corpus, syllable.German)

	assert.Equal(t, []Entry{
		{"", 1}, {"ch", 1}, {"d", 1}, {"sch", 2}, {"schw", 1}, {"t", 3},
	}, idx.Onsets())

	assert.Equal(t, []Entry{{"sch", 2}, {"schw", 1}}, idx.OnsetsWithPrefix("sc"))
	assert.Empty(t, idx.OnsetsWithPrefix("x"))
}

func TestRestore(t *testing.T) {
	idx := NewIndex(syllable.Latin)
	idx.Restore("", 4)
	idx.Restore("pl", 7)

	assert.True(t, idx.Contains(""))
	assert.Equal(t, 7, idx.Count("pl"))
	assert.Equal(t, 7, idx.Stats()["maxCount"])
	assert.Equal(t, 0, idx.Stats()["unitsSeen"])

	idx.RestoreUnits(12, 3)
	assert.Equal(t, 12, idx.Stats()["unitsSeen"])
	assert.Equal(t, 3, idx.Stats()["unitsSkipped"])
}

func TestConcurrentMatchAndAdd(t *testing.T) {
	idx := Train(corpus, syllable.German)
	seg := syllable.NewSegmenter(syllable.German, idx)

	words := []string{"unterscheidung", "schwester", "taschen", "dachte"}
	workers := 8

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if w == 0 && i%10 == 0 {
					idx.Add(fmt.Sprintf("%sa", []string{"st", "pf", "bl"}[i%3]))
					continue
				}
				_, err := seg.Segment(words[i%len(words)])
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	assert.True(t, idx.Contains("st"))
	assert.True(t, idx.Contains("pf"))
}
