package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileFormat represents the file kinds an index can be built from
type FileFormat int

const (
	FormatUnknown  FileFormat = iota
	FormatText                // pre-syllabified plain text
	FormatSnapshot            // msgpack snapshot of a trained index
)

// FormatInfo contains metadata about a file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Syllabified text corpus",
		Extensions:  []string{".txt"},
		MinSize:     1,
	},
	FormatSnapshot: {
		Format:      FormatSnapshot,
		Description: "Onset index snapshot",
		Extensions:  []string{".bin"},
		MinSize:     4,
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// ValidateFileFormat checks that filename exists, is large enough and
// carries an extension of the expected format
func ValidateFileFormat(filename string, expected FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	info, ok := supportedFormats[expected]
	if !ok {
		return fmt.Errorf("unknown format: %d", expected)
	}
	if fileInfo.Size() < info.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), info.Description, info.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, valid := range info.Extensions {
		if ext == valid {
			return nil
		}
	}
	return fmt.Errorf("file %s has invalid extension %q for format %s (expected: %v)",
		filename, ext, info.Description, info.Extensions)
}

// DetectFileFormat picks the format of filename from its extension and
// validates it
func DetectFileFormat(filename string) (FileFormat, error) {
	for _, format := range []FileFormat{FormatSnapshot, FormatText} {
		if err := ValidateFileFormat(filename, format); err == nil {
			return format, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}
