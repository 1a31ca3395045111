// Package cli handles cmd line input for segmenting words interactively, for DBG and trying out a trained corpus
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/syllabicate/internal/logger"
	"github.com/bastiangx/syllabicate/internal/utils"
	"github.com/bastiangx/syllabicate/pkg/config"
	"github.com/bastiangx/syllabicate/pkg/onset"
	"github.com/bastiangx/syllabicate/pkg/syllable"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const helpText = `commands:
  <word>              segment a word
  :onsets [prefix]    list trained onsets
  :train unit...      train more syllables
  :remove onset       forget an onset ("" for the empty onset)
  :stats              index counters
  :help               this text
  :q                  quit`

// InputHandler reads words line by line and prints their segmentation.
// Lines starting with ':' are commands.
type InputHandler struct {
	index      onset.IIndex
	segmenter  *syllable.Segmenter
	separator  string
	showTiming bool
	maxWordLen int

	in     io.Reader
	out    io.Writer
	styles styles
	logger *log.Logger

	requestCount int
}

// NewInputHandler creates a handler on stdin/stdout
func NewInputHandler(index onset.IIndex, segmenter *syllable.Segmenter, cfg *config.Config) *InputHandler {
	return NewInputHandlerWithIO(index, segmenter, cfg, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO creates a handler reading from in and writing to out
func NewInputHandlerWithIO(index onset.IIndex, segmenter *syllable.Segmenter, cfg *config.Config, in io.Reader, out io.Writer) *InputHandler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &InputHandler{
		index:      index,
		segmenter:  segmenter,
		separator:  cfg.CLI.Separator,
		showTiming: cfg.CLI.ShowTiming,
		maxWordLen: cfg.Server.MaxWordLen,
		in:         in,
		out:        out,
		styles:     newStyles(lipgloss.NewRenderer(out)),
		logger:     logger.NewWithWriter(out, "", log.InfoLevel),
	}
}

// Start runs the prompt loop until :q or end of input.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, h.styles.title.Render("syllabicate CLI"))
	fmt.Fprintln(h.out, h.styles.muted.Render("type a word and press Enter, :help for commands (Ctrl+C to exit)"))

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := h.handleCommand(line); quit {
				return nil
			}
			continue
		}
		h.handleInput(line)
	}
}

// handleInput segments one word and prints the colored result with a
// per-syllable breakdown
func (h *InputHandler) handleInput(word string) {
	h.requestCount++
	word = utils.NormalizeWord(word)
	if !utils.IsValidWord(word, h.maxWordLen) {
		h.logger.Errorf("Invalid word: %q (max %d characters, no digits or spaces)", word, h.maxWordLen)
		return
	}

	start := time.Now()
	syls, err := h.segmenter.Segment(word)
	elapsed := time.Since(start)
	if err != nil {
		h.logger.Error(err)
		return
	}
	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	line := h.styles.syllables(syls, h.separator)
	if h.showTiming {
		line += " " + h.styles.muted.Render(fmt.Sprintf("(%v)", elapsed))
	}
	fmt.Fprintln(h.out, line)
	fmt.Fprintln(h.out, h.styles.breakdown(syls))
}

func (h *InputHandler) handleCommand(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case ":q", ":quit", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprintln(h.out, helpText)
	case ":onsets":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		entries := h.index.OnsetsWithPrefix(utils.NormalizeWord(prefix))
		if len(entries) == 0 {
			h.logger.Warnf("No onsets found for prefix: '%s'", prefix)
			return false
		}
		fmt.Fprintf(h.out, "%d onsets:\n%s\n", len(entries), h.styles.onsets(entries))
	case ":train":
		if len(args) == 0 {
			h.logger.Error("usage: :train unit...")
			return false
		}
		added, skipped := h.index.Add(args...)
		fmt.Fprintf(h.out, "trained %d units, skipped %d\n", added, skipped)
	case ":remove":
		if len(args) == 0 {
			h.logger.Error("usage: :remove onset")
			return false
		}
		o := args[0]
		if o == `""` {
			o = ""
		}
		if err := h.index.Remove(o); err != nil {
			h.logger.Error(err)
			return false
		}
		fmt.Fprintf(h.out, "removed %q\n", o)
	case ":stats":
		fmt.Fprintln(h.out, h.styles.stats(h.index.Stats()))
	default:
		h.logger.Errorf("Unknown command %s, try :help", cmd)
	}
	return false
}
