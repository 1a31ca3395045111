package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/syllabicate/pkg/config"
	"github.com/bastiangx/syllabicate/pkg/onset"
	"github.com/bastiangx/syllabicate/pkg/syllable"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func strPtr(s string) *string { return &s }

// run feeds values to a fresh server and returns a decoder over its output.
func run(t *testing.T, cfg *config.Config, values ...any) *msgpack.Decoder {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, v := range values {
		require.NoError(t, enc.Encode(v))
	}

	idx := onset.Train([]string{"un", "ter", "schei", "dung", "schwa", "ta", "cha"}, syllable.German)
	seg := syllable.NewSegmenter(syllable.German, idx)

	var out bytes.Buffer
	srv := NewServerWithIO(idx, seg, cfg, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
	return dec
}

func TestSegment(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "1", Word: "Unterscheidung"},
		Request{ID: "2", Action: ActionSegment, Word: "schwa"},
	)

	var resp SegmentResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, "un-ter-schei-dung", resp.Hyphenated)
	assert.Equal(t, 4, resp.Count)
	assert.Equal(t, SyllableResult{Onset: "sch", Nucleus: "ei", Coda: ""}, resp.Syllables[2])

	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "2", resp.ID)
	assert.Equal(t, []SyllableResult{{Onset: "schw", Nucleus: "a"}}, resp.Syllables)
}

func TestSegmentErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxWordLen = 10

	dec := run(t, cfg,
		Request{ID: "empty"},
		Request{ID: "digits", Word: "ab1"},
		Request{ID: "long", Word: "donaudampfschiff"},
		Request{ID: "vowelless", Word: "brr"},
		Request{ID: "foreign", Word: "caño"},
		Request{ID: "bogus", Action: "fly"},
	)

	for _, id := range []string{"empty", "digits", "long", "vowelless", "foreign", "bogus"} {
		var resp ErrorResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, 400, resp.Code, id)
		assert.NotEmpty(t, resp.Error, id)
	}
}

func TestInvalidRequestKeepsServing(t *testing.T) {
	dec := run(t, nil,
		42,
		Request{ID: "after", Word: "ta"},
	)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, 400, errResp.Code)

	var resp SegmentResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "after", resp.ID)
	assert.Equal(t, "ta", resp.Hyphenated)
}

func TestTrainRemoveAndStats(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "s1", Word: "tapfer"},
		Request{ID: "s2", Word: "tapfer"},
		Request{ID: "t1", Action: ActionTrain, Units: []string{"pfa", "x9"}},
		Request{ID: "s3", Word: "tapfer"},
		Request{ID: "st", Action: ActionStats},
		Request{ID: "r1", Action: ActionRemove, Onset: strPtr("pf")},
		Request{ID: "r2", Action: ActionRemove, Onset: strPtr("pf")},
		Request{ID: "r3", Action: ActionRemove},
		Request{ID: "l1", Action: ActionOnsets, Prefix: "sch"},
		Request{ID: "h1", Action: ActionHealth},
	)

	var seg SegmentResponse
	require.NoError(t, dec.Decode(&seg))
	assert.Equal(t, "tapf-er", seg.Hyphenated)
	require.NoError(t, dec.Decode(&seg))
	assert.Equal(t, "tapf-er", seg.Hyphenated)

	var train TrainResponse
	require.NoError(t, dec.Decode(&train))
	assert.Equal(t, TrainResponse{ID: "t1", Status: "ok", Added: 1, Skipped: 1}, train)

	// the cache was purged, so the new onset is used
	require.NoError(t, dec.Decode(&seg))
	assert.Equal(t, "ta-pfer", seg.Hyphenated)

	var stats StatsResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, 5, stats.Stats["requests"])
	assert.Equal(t, 1, stats.Stats["cacheHits"])
	assert.Equal(t, 1, stats.Stats["cacheEntries"])
	assert.Equal(t, 7, stats.Stats["onsets"])

	var status StatusResponse
	require.NoError(t, dec.Decode(&status))
	assert.Equal(t, StatusResponse{ID: "r1", Status: "ok"}, status)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, "r2", errResp.ID)
	assert.Equal(t, 400, errResp.Code)
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, "r3", errResp.ID)

	var onsets OnsetsResponse
	require.NoError(t, dec.Decode(&onsets))
	assert.Equal(t, []OnsetEntry{{Onset: "sch", Count: 1}, {Onset: "schw", Count: 1}}, onsets.Onsets)

	require.NoError(t, dec.Decode(&status))
	assert.Equal(t, StatusResponse{ID: "h1", Status: "ok"}, status)
}

func TestCacheDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.CacheSize = 0

	dec := run(t, cfg,
		Request{ID: "a", Word: "ta"},
		Request{ID: "b", Word: "ta"},
		Request{ID: "st", Action: ActionStats},
	)

	var seg SegmentResponse
	require.NoError(t, dec.Decode(&seg))
	require.NoError(t, dec.Decode(&seg))

	var stats StatsResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, 0, stats.Stats["cacheHits"])
	_, ok := stats.Stats["cacheEntries"]
	assert.False(t, ok)
}
