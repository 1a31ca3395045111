// Package corpus reads pre-syllabified training corpora and trained index snapshots.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/bastiangx/syllabicate/internal/utils"
	"github.com/charmbracelet/log"
)

// DefaultDelimiters separate syllables inside a corpus line, in addition to whitespace.
const DefaultDelimiters = ",.;|-·"

// ReadUnits splits r into syllable units. Every rune in delims and every
// whitespace rune ends a unit. Units are NFC normalized and lower-cased;
// empty units are dropped.
func ReadUnits(r io.Reader, delims string) ([]string, error) {
	isDelim := func(c rune) bool {
		return unicode.IsSpace(c) || strings.ContainsRune(delims, c)
	}

	var units []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		for _, field := range strings.FieldsFunc(line, isDelim) {
			if unit := utils.NormalizeWord(field); unit != "" {
				units = append(units, unit)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus line %d: %w", lineNo+1, err)
	}
	return units, nil
}

// LoadUnits reads the syllable units of the text corpus at path.
func LoadUnits(path, delims string) ([]string, error) {
	if err := ValidateFileFormat(path, FormatText); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer file.Close()

	units, err := ReadUnits(file, delims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Read %d units from %s", len(units), path)
	return units, nil
}
