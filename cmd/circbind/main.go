//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"git.sr.ht/~hweng/CircBind/lib/miranda"
	"git.sr.ht/~hweng/CircBind/lib/transcript"
)

var version = "DEV"

func main() {
	// Arguments: General
	var workDir string
	var numProc, verboseLevel int
	var verbose, printVersion bool
	flag.StringVar(&workDir, "work_dir", ".", "Working directory for temporary partition files")
	flag.IntVar(&numProc, "num_proc", 1, "Number of parallel miranda process(es)")
	flag.IntVar(&verboseLevel, "verbose_level", 0, "Verbose level")
	flag.BoolVar(&verbose, "verbose", false, "Verbose")
	flag.BoolVar(&printVersion, "version", false, "Print version and quit")
	// Arguments: Input
	var pathRef, pathSeq, pathLengths, formatLengths, fonName, fonCoords, pathEvents string
	flag.StringVar(&pathRef, "path_ref", "", "Path to miRNA reference FASTA file")
	flag.StringVar(&pathSeq, "path_seq", "", "Path to circRNA sequence FASTA file (plain or gzip)")
	flag.StringVar(&pathLengths, "path_lengths", "", "Path to transcript length file")
	flag.StringVar(&formatLengths, "format_lengths", "tab", "Format of transcript length file: 'FON' or 'tab'")
	flag.StringVar(&fonName, "fon_name", "exons_id", "FON key for reference name")
	flag.StringVar(&fonCoords, "fon_coords", "exons", "FON key for coordinates (exons for example)")
	flag.StringVar(&pathEvents, "path_events", "", "Path to reference-to-event mapping (tabulated file)")
	// Arguments: miranda
	var mirandaPath, mirandaOptionsRaw string
	flag.StringVar(&mirandaPath, "miranda_path", "miranda", "Path to the miranda executable")
	flag.StringVar(&mirandaOptionsRaw, "miranda_options", "-quiet", "Option(s) passed to miranda (comma separated)")
	// Arguments: Output
	var pathSummary, pathHits, hitsFormat, pathSites string
	flag.StringVar(&pathSummary, "path_summary", "summary.tsv", "Path to per-event summary output")
	flag.StringVar(&pathHits, "path_hits", "", "Path to clustered hit table output (default none)")
	flag.StringVar(&hitsFormat, "hits_format", "tsv", "Hit table format: 'tsv', 'tsv+lz4' or 'tsv+zst'")
	flag.StringVar(&pathSites, "path_sites", "", "Path to binding-site footprint output (default none)")
	// Arguments: Parse
	flag.Parse()

	// Version
	if printVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Verbose
	if verbose && verboseLevel == 0 {
		verboseLevel = 1
	}

	// Time start
	timeStart := time.Now()

	// Check arguments
	if len(pathRef) == 0 {
		log.Fatal("No miRNA reference input")
	} else if _, err := os.Stat(pathRef); os.IsNotExist(err) {
		log.Fatalln(pathRef, "not found")
	}
	if len(pathSeq) == 0 {
		log.Fatal("No circRNA sequence input")
	} else if _, err := os.Stat(pathSeq); os.IsNotExist(err) {
		log.Fatalln(pathSeq, "not found")
	}
	if len(pathLengths) == 0 {
		log.Fatal("No transcript length input")
	} else if _, err := os.Stat(pathLengths); os.IsNotExist(err) {
		log.Fatalln(pathLengths, "not found")
	}
	if len(pathEvents) == 0 {
		log.Fatal("No event mapping input")
	} else if _, err := os.Stat(pathEvents); os.IsNotExist(err) {
		log.Fatalln(pathEvents, "not found")
	}
	if numProc < 1 {
		log.Fatal("num_proc must be at least 1")
	}

	// Open transcript lengths
	var lengths transcript.LengthTable
	var err error
	if formatLengths == "FON" {
		lengths, err = transcript.OpenLengthsFON(pathLengths, fonName, fonCoords)
	} else if formatLengths == "tab" {
		lengths, err = transcript.OpenLengthsTAB(pathLengths)
	} else {
		log.Fatalln("Unknown transcript length format", formatLengths)
	}
	if err != nil {
		log.Fatal(err)
	}

	// Open event mapping
	events, err := transcript.OpenEvents(pathEvents)
	if err != nil {
		log.Fatal(err)
	}

	// miranda options
	var mirandaOptions []string
	if len(mirandaOptionsRaw) > 0 {
		mirandaOptions = strings.Split(mirandaOptionsRaw, ",")
	}
	aligner := miranda.New(pathRef, mirandaOptions)
	aligner.WorkDir = workDir
	aligner.BinPath = mirandaPath

	nHit, err := RunPipeline(aligner, pathSeq, numProc, lengths, events, pathSummary, pathHits, hitsFormat, pathSites, timeStart, verboseLevel)
	if err != nil {
		log.Fatal(err)
	}

	if verboseLevel > 0 {
		timeNow := time.Now()
		fmt.Printf("%.1fmin - Done: %d hit(s) consolidated\n", timeNow.Sub(timeStart).Minutes(), nHit)
	}
}
