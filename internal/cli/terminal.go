package cli

import (
	"fmt"
	"strings"

	"github.com/bastiangx/syllabicate/internal/utils"
	"github.com/bastiangx/syllabicate/pkg/onset"
	"github.com/bastiangx/syllabicate/pkg/syllable"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	onset   lipgloss.Style
	nucleus lipgloss.Style
	coda    lipgloss.Style
	sep     lipgloss.Style
	muted   lipgloss.Style
	title   lipgloss.Style
}

// newStyles binds the palette to r so that color is dropped when the
// output is not a terminal.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		onset: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		nucleus: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
		coda: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#c4a7e7"}),
		sep: r.NewStyle().Faint(true),
		muted: r.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"}),
		title: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}),
	}
}

// syllables renders each syllable with its onset, nucleus and coda colored
func (st styles) syllables(syls []syllable.Syllable, sep string) string {
	parts := make([]string, len(syls))
	for i, s := range syls {
		parts[i] = st.onset.Render(s.Onset) + st.nucleus.Render(s.Nucleus) + st.coda.Render(s.Coda)
	}
	return strings.Join(parts, st.sep.Render(sep))
}

// breakdown lists the parts of every syllable, one per line
func (st styles) breakdown(syls []syllable.Syllable) string {
	var sb strings.Builder
	for i, s := range syls {
		fmt.Fprintf(&sb, "%2d. %-8s onset=%q nucleus=%q coda=%q\n", i+1, s.String(), s.Onset, s.Nucleus, s.Coda)
	}
	return st.muted.Render(strings.TrimRight(sb.String(), "\n"))
}

func (st styles) onsets(entries []onset.Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		name := e.Onset
		if name == "" {
			name = "∅"
		}
		fmt.Fprintf(&sb, "  %-8s %8s\n", st.onset.Render(name), utils.FormatWithCommas(e.Count))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (st styles) stats(stats map[string]int) string {
	keys := []string{"onsets", "unitsSeen", "unitsSkipped", "maxCount"}
	var sb strings.Builder
	for _, k := range keys {
		if v, ok := stats[k]; ok {
			fmt.Fprintf(&sb, "  %-14s %s\n", k, utils.FormatWithCommas(v))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
