package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the package-level charm logger: stderr output, debug
// level with timestamps when debug is set, warnings only otherwise.
func Setup(debug bool) {
	output = os.Stderr
	log.SetOutput(output)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
}

// Level parses a level name from config, falling back to WarnLevel.
func Level(name string) log.Level {
	if name == "" {
		return log.WarnLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		log.Warnf("Unknown log level %q, using warn", name)
		return log.WarnLevel
	}
	return level
}

// AddFile tees the package-level logger into a size-rotated file at path,
// for server runs where the parent process drops stderr. Loggers made by New
// after this call write to the file too.
func AddFile(path string) io.Closer {
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    16, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	output = io.MultiWriter(os.Stderr, file)
	log.SetOutput(output)
	log.Debugf("Logging to %s", path)
	return file
}
