/*
Package server implements msgpack IPC for word syllabification.

The server reads a stream of msgpack maps from stdin and writes one msgpack
map per request to stdout. Logs go to stderr. Requests are processed
synchronously, in order, with timing info included in segment responses.

# IPC

Every request carries an ID that is echoed in the response. A request
without an action segments a word:

	{"id": "req_001", "w": "Unterscheidung"}

The response lists the syllables and the hyphenated form:

	{"id": "req_001", "s": [{"o": "", "n": "u", "c": "n"}, {"o": "t", "n": "e", "c": "r"}, ...], "h": "un-ter-schei-dung", "c": 4, "t": 38}

Training and inspection use the action field:

	{"id": "t1", "action": "train", "u": ["schwa", "pfa"]}
	{"id": "r1", "action": "remove", "o": "pf"}
	{"id": "l1", "action": "onsets", "p": "sch"}
	{"id": "s1", "action": "stats"}

Failures are reported as {"id", "e", "c"}, with code 400 for words or
requests the server cannot handle and 500 for internal errors.

Segmentations are cached in an LRU keyed by the normalized word. Any request
that changes the onset set purges the cache.
*/
package server

// Request is any client message. Action selects the operation, empty
// meaning segment.
type Request struct {
	ID     string   `msgpack:"id"`
	Action string   `msgpack:"action,omitempty"`
	Word   string   `msgpack:"w,omitempty"`
	Units  []string `msgpack:"u,omitempty"`
	Onset  *string  `msgpack:"o,omitempty"` // pointer: "" is a valid onset
	Prefix string   `msgpack:"p,omitempty"`
}

const (
	ActionSegment = "segment"
	ActionTrain   = "train"
	ActionRemove  = "remove"
	ActionOnsets  = "onsets"
	ActionStats   = "stats"
	ActionHealth  = "health"
)

// SyllableResult - one syllable of a segment response
type SyllableResult struct {
	Onset   string `msgpack:"o"`
	Nucleus string `msgpack:"n"`
	Coda    string `msgpack:"c"`
}

// SegmentResponse - segmentation result
type SegmentResponse struct {
	ID         string           `msgpack:"id"`
	Syllables  []SyllableResult `msgpack:"s"`
	Hyphenated string           `msgpack:"h"`
	Count      int              `msgpack:"c"`
	TimeTaken  int64            `msgpack:"t"` // microseconds
}

// TrainResponse - result of a train action
type TrainResponse struct {
	ID      string `msgpack:"id"`
	Status  string `msgpack:"status"`
	Added   int    `msgpack:"added"`
	Skipped int    `msgpack:"skipped"`
}

// OnsetEntry - a trained onset with its count
type OnsetEntry struct {
	Onset string `msgpack:"o"`
	Count int    `msgpack:"c"`
}

// OnsetsResponse - listing of trained onsets
type OnsetsResponse struct {
	ID     string       `msgpack:"id"`
	Status string       `msgpack:"status"`
	Onsets []OnsetEntry `msgpack:"onsets"`
}

// StatsResponse - index and server counters
type StatsResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats"`
}

// StatusResponse - plain acknowledgement, also the ready message
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
