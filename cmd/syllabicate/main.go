// Copyright 2025 The Syllabicate Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the syllabification server and CLI [DBG] application.

Syllabicate learns which consonant clusters may start a syllable from a
pre-syllabified corpus, then splits unseen words with the maximal onset
principle. It can operate as a MessagePack IPC server for integration with
editors and typesetting pipelines, or as a CLI application for testing.

# Usage

Train from a corpus and start the server:

	syllabicate -corpus de.txt

Use a Latin alphabet, save the trained onsets and enable debug logs:

	syllabicate -corpus la.txt -lang latin -snapshot la.bin -d

Reuse a snapshot interactively:

	syllabicate -corpus la.bin -c

A text corpus holds one or more syllabified words per line, syllables split by
any of ",.;|-·" or whitespace. Lines starting with # are ignored:

	un-ter-schei-dung
	schwes-ter

# Configuration

Runtime configuration lives in config.toml in the user config dir, created
with defaults on first run. See package config for the keys. Flags override
the file.

# IPC Protocol

Requests and responses are MessagePack maps on stdin and stdout:

	{"id": "1", "w": "Unterscheidung"}
	{"id": "1", "s": [{"o": "", "n": "u", "c": "n"}, ...], "h": "un-ter-schei-dung", "c": 4, "t": 38}

See package server for the train, remove, onsets and stats actions.

# Command Line Flags

	-corpus string
	    Syllabified .txt corpus or .bin snapshot (default from config)
	-lang string
	    Alphabet preset: german or latin
	-vowels string
	    Vowel set, overrides the preset
	-consonants string
	    Consonant set, overrides the preset
	-snapshot string
	    Write the trained index to this .bin file
	-sep string
	    Syllable separator in CLI output
	-config string
	    Path to a config.toml
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/syllabicate/internal/cli"
	"github.com/bastiangx/syllabicate/internal/logger"
	"github.com/bastiangx/syllabicate/internal/utils"
	"github.com/bastiangx/syllabicate/pkg/config"
	"github.com/bastiangx/syllabicate/pkg/corpus"
	"github.com/bastiangx/syllabicate/pkg/server"
	"github.com/bastiangx/syllabicate/pkg/syllable"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	gh      = "https://github.com/bastiangx/syllabicate"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, corpus, index and the chosen frontend.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	corpusPath := flag.String("corpus", "", "Syllabified .txt corpus or .bin snapshot")
	lang := flag.String("lang", "", fmt.Sprintf("Alphabet preset %v", syllable.PresetNames()))
	vowels := flag.String("vowels", "", "Vowel set, overrides the preset")
	consonants := flag.String("consonants", "", "Consonant set, overrides the preset")
	snapshotOut := flag.String("snapshot", "", "Write the trained index to this .bin file")
	separator := flag.String("sep", "", "Syllable separator in CLI output")
	configPath := flag.String("config", "", "Path to config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	cfg, activeConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !*debugMode {
		log.SetLevel(logger.Level(cfg.Server.LogLevel))
	}
	if cfg.Server.LogFile != "" {
		defer logger.AddFile(cfg.Server.LogFile).Close()
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfig))

	applyFlags(cfg, *lang, *vowels, *consonants, *corpusPath, *snapshotOut, *separator)

	alphabet, err := cfg.Alphabet()
	if err != nil {
		log.Fatalf("Invalid alphabet: %v", err)
	}

	if cfg.Corpus.Path == "" {
		log.Fatal("No corpus given, use -corpus or set [corpus] path in the config")
	}
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	resolved, err := pathResolver.ResolveFile(cfg.Corpus.Path)
	if err != nil {
		log.Fatalf("Corpus %s not found: %v", cfg.Corpus.Path, err)
	}
	log.Debugf("Using corpus at: %s", resolved)

	start := time.Now()
	index, err := corpus.LoadIndex(resolved, cfg.Corpus.Delimiters, alphabet)
	if err != nil {
		log.Fatalf("Failed to build onset index: %v", err)
	}
	log.Debug("Index ready", "onsets", index.Len(), "took", time.Since(start))

	if cfg.Corpus.Snapshot != "" {
		if err := corpus.SaveSnapshot(cfg.Corpus.Snapshot, index); err != nil {
			log.Fatalf("Failed to save snapshot: %v", err)
		}
	}

	segmenter := syllable.NewSegmenter(index.Alphabet(), index)

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(index, segmenter, cfg)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	showStartupInfo(resolved, index.Len())
	srv := server.NewServer(index, segmenter, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// applyFlags copies non-empty flag values over the config.
func applyFlags(cfg *config.Config, lang, vowels, consonants, corpusPath, snapshot, sep string) {
	if lang != "" {
		cfg.Language.Preset = lang
	}
	if vowels != "" {
		cfg.Language.Vowels = vowels
	}
	if consonants != "" {
		cfg.Language.Consonants = consonants
	}
	if corpusPath != "" {
		cfg.Corpus.Path = corpusPath
	}
	if snapshot != "" {
		cfg.Corpus.Snapshot = snapshot
	}
	if sep != "" {
		cfg.CLI.Separator = sep
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ Syllabicate ] maximal onset syllabification")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo prints basic info on stderr; stdout belongs to IPC.
func showStartupInfo(corpusPath string, onsets int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "=============")
	fmt.Fprintln(os.Stderr, " Syllabicate ")
	fmt.Fprintln(os.Stderr, "=============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("corpus: ( %s )", corpusPath)
	log.Infof("onsets: %d", onsets)
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
