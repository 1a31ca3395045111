package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/syllabicate/internal/logger"
	"github.com/bastiangx/syllabicate/internal/utils"
	"github.com/bastiangx/syllabicate/pkg/config"
	"github.com/bastiangx/syllabicate/pkg/onset"
	"github.com/bastiangx/syllabicate/pkg/syllable"
	"github.com/bastiangx/syllabicate/pkg/trie"
	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word segmentation
type Server struct {
	index     onset.IIndex
	segmenter *syllable.Segmenter
	config    *config.Config
	cache     *lru.Cache[string, []syllable.Syllable]
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
	logger    *log.Logger

	requestCount int
	cacheHits    int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(index onset.IIndex, segmenter *syllable.Segmenter, cfg *config.Config) *Server {
	return NewServerWithIO(index, segmenter, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w
func NewServerWithIO(index onset.IIndex, segmenter *syllable.Segmenter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		index:     index,
		segmenter: segmenter,
		config:    cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
		logger:    logger.New("server"),
	}
	if cfg.Server.CacheSize > 0 {
		cache, err := lru.New[string, []syllable.Syllable](cfg.Server.CacheSize)
		if err != nil {
			s.logger.Warnf("Segment cache disabled: %v", err)
		} else {
			s.cache = cache
		}
	}
	return s
}

// Start signals readiness and serves requests until the input is closed
func (s *Server) Start() error {
	s.logger.Debug("Starting Server.")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed, stopping")
				return nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("truncated request: %w", err)
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.requestCount++
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "", ActionSegment:
		s.handleSegment(req)
	case ActionTrain:
		s.handleTrain(req)
	case ActionRemove:
		s.handleRemove(req)
	case ActionOnsets:
		s.handleOnsets(req)
	case ActionStats:
		s.handleStats(req)
	case ActionHealth:
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleSegment(req Request) {
	word := utils.NormalizeWord(req.Word)
	if word == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		return
	}
	if !utils.IsValidWord(word, s.config.Server.MaxWordLen) {
		s.sendError(req.ID, fmt.Sprintf("Invalid word %q (max %d characters, no digits or spaces)",
			req.Word, s.config.Server.MaxWordLen), 400)
		return
	}

	start := time.Now()
	syls, err := s.segment(word)
	elapsed := time.Since(start)
	if err != nil {
		code := 500
		if errors.Is(err, syllable.ErrUndefinedCharacter) || errors.Is(err, syllable.ErrNoNucleus) {
			code = 400
		}
		s.logger.Debugf("Segment %q failed: %v", word, err)
		s.sendError(req.ID, err.Error(), code)
		return
	}

	results := make([]SyllableResult, len(syls))
	for i, syl := range syls {
		results[i] = SyllableResult{Onset: syl.Onset, Nucleus: syl.Nucleus, Coda: syl.Coda}
	}
	s.sendResponse(SegmentResponse{
		ID:         req.ID,
		Syllables:  results,
		Hyphenated: syllable.Join(syls, "-"),
		Count:      len(results),
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) segment(word string) ([]syllable.Syllable, error) {
	if s.cache != nil {
		if syls, ok := s.cache.Get(word); ok {
			s.cacheHits++
			return syls, nil
		}
	}
	syls, err := s.segmenter.Segment(word)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Add(word, syls)
	}
	return syls, nil
}

func (s *Server) handleTrain(req Request) {
	if len(req.Units) == 0 {
		s.sendError(req.ID, "Missing 'u' parameter", 400)
		return
	}
	added, skipped := s.index.Add(req.Units...)
	if added > 0 {
		s.purgeCache()
	}
	s.logger.Debugf("Trained %d units, skipped %d", added, skipped)
	s.sendResponse(TrainResponse{ID: req.ID, Status: "ok", Added: added, Skipped: skipped})
}

func (s *Server) handleRemove(req Request) {
	if req.Onset == nil {
		s.sendError(req.ID, "Missing 'o' parameter", 400)
		return
	}
	if err := s.index.Remove(*req.Onset); err != nil {
		code := 500
		if errors.Is(err, trie.ErrKeyNotFound) {
			code = 400
		}
		s.sendError(req.ID, err.Error(), code)
		return
	}
	s.purgeCache()
	s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) handleOnsets(req Request) {
	entries := s.index.OnsetsWithPrefix(utils.NormalizeWord(req.Prefix))
	out := make([]OnsetEntry, len(entries))
	for i, e := range entries {
		out[i] = OnsetEntry{Onset: e.Onset, Count: e.Count}
	}
	s.sendResponse(OnsetsResponse{ID: req.ID, Status: "ok", Onsets: out})
}

func (s *Server) handleStats(req Request) {
	stats := s.index.Stats()
	stats["requests"] = s.requestCount
	stats["cacheHits"] = s.cacheHits
	if s.cache != nil {
		stats["cacheEntries"] = s.cache.Len()
	}
	s.sendResponse(StatsResponse{ID: req.ID, Status: "ok", Stats: stats})
}

func (s *Server) purgeCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

// sendResponse encodes response as msgpack onto the output stream
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}
