//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"bytes"
	"fmt"
	"time"

	"git.sr.ht/~hweng/CircBind/lib/consolidate"
	"git.sr.ht/~hweng/CircBind/lib/hit"
	"git.sr.ht/~hweng/CircBind/lib/miranda"
	"git.sr.ht/~hweng/CircBind/lib/sites"
	"git.sr.ht/~hweng/CircBind/lib/transcript"
)

// RunPipeline aligns seqFile against the miRNA reference and consolidates the
// raw hits into the summary, hit and footprint tables. No output file is
// created until every stage has succeeded.
func RunPipeline(aligner *miranda.Aligner, seqFile string, numProc int, lengths transcript.LengthTable, events transcript.EventMapping, pathSummary, pathHits, hitsFormat, pathSites string, timeStart time.Time, verboseLevel int) (nHit int, err error) {
	if verboseLevel > 0 {
		timeNow := time.Now()
		fmt.Printf("%.1fmin - Running miranda (%d process(es))\n", timeNow.Sub(timeStart).Minutes(), numProc)
	}
	rawResult, err := aligner.Run(seqFile, numProc)
	if err != nil {
		return nHit, err
	}

	hits, err := hit.ParseResults(bytes.NewReader(rawResult))
	if err != nil {
		return nHit, err
	}
	if verboseLevel > 0 {
		timeNow := time.Now()
		fmt.Printf("%.1fmin - Parsed %d raw hit(s)\n", timeNow.Sub(timeStart).Minutes(), len(hits))
	}

	filtered, err := consolidate.RemoveRedundant(hits, lengths)
	if err != nil {
		return nHit, err
	}
	if verboseLevel > 0 {
		timeNow := time.Now()
		fmt.Printf("%.1fmin - Removed %d redundant hit(s)\n", timeNow.Sub(timeStart).Minutes(), len(hits)-len(filtered))
	}

	chits, err := consolidate.Classify(filtered, lengths, events)
	if err != nil {
		return nHit, err
	}
	chits = consolidate.AssignClusters(chits)
	nHit = len(chits)

	summaries := consolidate.Summarize(chits)

	var footprints []sites.Site
	if pathSites != "" {
		footprints, err = sites.Footprints(chits)
		if err != nil {
			return nHit, err
		}
	}

	// Output: Summary
	if err = consolidate.WriteSummary(summaries, pathSummary); err != nil {
		return nHit, err
	}
	// Output: Hit table
	if pathHits != "" {
		if err = consolidate.WriteHits(chits, pathHits, hitsFormat); err != nil {
			return nHit, err
		}
	}
	// Output: Footprints
	if pathSites != "" {
		if err = sites.WriteSites(footprints, pathSites); err != nil {
			return nHit, err
		}
	}
	return nHit, nil
}
