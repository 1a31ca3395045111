package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/syllabicate/pkg/onset"
	"github.com/bastiangx/syllabicate/pkg/syllable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestReadUnits(t *testing.T) {
	input := "un-ter-schei-dung\n\n# comment line\nSchwes ter, ta|schu;  \n  cha·ba\n"

	units, err := ReadUnits(strings.NewReader(input), DefaultDelimiters)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"un", "ter", "schei", "dung",
		"schwes", "ter", "ta", "schu",
		"cha", "ba",
	}, units)
}

func TestReadUnitsCustomDelimiters(t *testing.T) {
	units, err := ReadUnits(strings.NewReader("ta-ta/bu"), "/")
	require.NoError(t, err)
	assert.Equal(t, []string{"ta-ta", "bu"}, units)
}

func TestReadUnitsComposesUmlauts(t *testing.T) {
	units, err := ReadUnits(strings.NewReader("ho\u0308-ren"), DefaultDelimiters)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "h\u00f6", units[0])
	assert.Equal(t, 2, len([]rune(units[0])))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFileFormat(t *testing.T) {
	txt := writeFile(t, "corpus.txt", "ta-ta")
	format, err := DetectFileFormat(txt)
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	_, err = DetectFileFormat(writeFile(t, "corpus.csv", "ta-ta"))
	assert.Error(t, err)

	_, err = DetectFileFormat(writeFile(t, "empty.txt", ""))
	assert.Error(t, err)

	_, err = DetectFileFormat(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	idx := onset.Train([]string{"un", "ter", "schei", "dung", "schwa", "ta", "x1"}, syllable.German)
	path := filepath.Join(t.TempDir(), "onsets.bin")

	require.NoError(t, SaveSnapshot(path, idx))

	format, err := DetectFileFormat(path)
	require.NoError(t, err)
	assert.Equal(t, FormatSnapshot, format)

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.Equal(t, 7, snap.Units)
	assert.Equal(t, 1, snap.Skipped)
	assert.Equal(t, syllable.German, snap.AlphabetOf())

	restored, err := snap.Index()
	require.NoError(t, err)
	for _, o := range []string{"", "t", "sch", "schw", "d"} {
		assert.True(t, restored.Contains(o), "onset %q", o)
	}
	assert.Equal(t, idx.Onsets(), restored.Onsets())
	assert.Equal(t, 2, restored.Count("t"))
	assert.Equal(t, idx.Stats(), restored.Stats())
}

func TestLoadSnapshotRejectsVersion(t *testing.T) {
	data, err := msgpack.Marshal(Snapshot{Version: 99, Vowels: "a", Consonants: "t"})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "future.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = LoadSnapshot(path)
	assert.ErrorIs(t, err, ErrSnapshotVersion)
}

func TestLoadSnapshotRejectsGarbage(t *testing.T) {
	_, err := LoadSnapshot(writeFile(t, "junk.bin", "not msgpack at all"))
	assert.Error(t, err)
}

func TestLoadIndex(t *testing.T) {
	path := writeFile(t, "corpus.txt", "un-ter-schei-dung\nschwa ta\n")

	idx, err := LoadIndex(path, DefaultDelimiters, syllable.German)
	require.NoError(t, err)
	assert.True(t, idx.Contains("schw"))
	assert.Equal(t, 6, idx.Stats()["unitsSeen"])

	snapPath := filepath.Join(t.TempDir(), "idx.bin")
	require.NoError(t, SaveSnapshot(snapPath, idx))

	fromSnap, err := LoadIndex(snapPath, DefaultDelimiters, syllable.Latin)
	require.NoError(t, err)
	assert.Equal(t, syllable.German.Vowels, fromSnap.Alphabet().Vowels)
	assert.Equal(t, idx.Onsets(), fromSnap.Onsets())
}
