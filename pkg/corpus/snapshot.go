package corpus

import (
	"errors"
	"fmt"
	"os"

	"github.com/bastiangx/syllabicate/internal/utils"
	"github.com/bastiangx/syllabicate/pkg/onset"
	"github.com/bastiangx/syllabicate/pkg/syllable"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotVersion is the snapshot layout written by SaveSnapshot.
const SnapshotVersion = 1

// ErrSnapshotVersion is returned for snapshots written by an incompatible version.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// Snapshot is the on-disk form of a trained onset index.
type Snapshot struct {
	Version    int            `msgpack:"v"`
	Alphabet   string         `msgpack:"n,omitempty"`
	Vowels     string         `msgpack:"vow"`
	Consonants string         `msgpack:"con"`
	Onsets     map[string]int `msgpack:"on"`
	Units      int            `msgpack:"u"`
	Skipped    int            `msgpack:"sk,omitempty"`
}

// NewSnapshot captures the onsets and alphabet of idx.
func NewSnapshot(idx *onset.Index) *Snapshot {
	a := idx.Alphabet()
	entries := idx.Onsets()
	stats := idx.Stats()
	snap := &Snapshot{
		Version:    SnapshotVersion,
		Alphabet:   a.Name,
		Vowels:     a.Vowels,
		Consonants: a.Consonants,
		Onsets:     make(map[string]int, len(entries)),
		Units:      stats["unitsSeen"],
		Skipped:    stats["unitsSkipped"],
	}
	for _, e := range entries {
		snap.Onsets[e.Onset] = e.Count
	}
	return snap
}

// AlphabetOf returns the alphabet the snapshot was trained with.
func (s *Snapshot) AlphabetOf() syllable.Alphabet {
	return syllable.Alphabet{Name: s.Alphabet, Vowels: s.Vowels, Consonants: s.Consonants}
}

// Index rebuilds the trained index, unit counters included.
func (s *Snapshot) Index() (*onset.Index, error) {
	a := s.AlphabetOf()
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot alphabet: %w", err)
	}
	idx := onset.NewIndex(a)
	for o, count := range s.Onsets {
		idx.Restore(o, count)
	}
	idx.RestoreUnits(s.Units, s.Skipped)
	return idx, nil
}

// SaveSnapshot writes idx to path as msgpack.
func SaveSnapshot(path string, idx *onset.Index) error {
	data, err := msgpack.Marshal(NewSnapshot(idx))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := utils.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	log.Debugf("Saved snapshot with %d onsets to %s (%d bytes)", idx.Len(), path, len(data))
	return nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	if err := ValidateFileFormat(path, FormatSnapshot); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d in %s", ErrSnapshotVersion, snap.Version, path)
	}
	log.Debugf("Loaded snapshot %s: %d onsets from %d units", path, len(snap.Onsets), snap.Units)
	return &snap, nil
}

// LoadIndex builds an index from path, which is either a text corpus
// trained with alphabet a or a snapshot carrying its own alphabet.
func LoadIndex(path, delims string, a syllable.Alphabet) (*onset.Index, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatSnapshot:
		snap, err := LoadSnapshot(path)
		if err != nil {
			return nil, err
		}
		return snap.Index()
	default:
		units, err := LoadUnits(path, delims)
		if err != nil {
			return nil, err
		}
		return onset.Train(units, a), nil
	}
}
