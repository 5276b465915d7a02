//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package consolidate

import (
	"sort"

	"gopkg.in/fatih/set.v0"
)

// Summary is one row per (event, miRNA) group.
type Summary struct {
	EvID          string
	Mirna         string
	MaxScore      float64
	Count         int
	CrossBoundary bool
}

// Sorting functions: By event then miRNA
// Use it with: sort.Sort(consolidate.ByEvent(summaries))
type ByEvent []Summary

func (s ByEvent) Len() int      { return len(s) }
func (s ByEvent) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s ByEvent) Less(i, j int) bool {
	if s[i].EvID != s[j].EvID {
		return s[i].EvID < s[j].EvID
	}
	return s[i].Mirna < s[j].Mirna
}

type groupKey struct {
	evID  string
	mirna string
}

type groupAcc struct {
	maxScore      float64
	alnIDs        set.Interface
	crossBoundary bool
}

// Summarize groups the clustered hits by (event, miRNA) and reports per group
// the best score, the number of distinct alignment clusters and whether any
// hit crosses the back-splice junction. Rows are sorted by event then miRNA.
func Summarize(chits []ClusteredHit) []Summary {
	groups := make(map[groupKey]*groupAcc)
	for _, ch := range chits {
		k := groupKey{ch.EvID, ch.QueryID}
		g, ok := groups[k]
		if !ok {
			g = &groupAcc{maxScore: ch.Score, alnIDs: set.New(set.NonThreadSafe)}
			groups[k] = g
		} else if ch.Score > g.maxScore {
			g.maxScore = ch.Score
		}
		g.alnIDs.Add(ch.AlnID)
		g.crossBoundary = g.crossBoundary || ch.CrossBoundary
	}

	summaries := make([]Summary, 0, len(groups))
	for k, g := range groups {
		summaries = append(summaries, Summary{
			EvID:          k.evID,
			Mirna:         k.mirna,
			MaxScore:      g.maxScore,
			Count:         g.alnIDs.Size(),
			CrossBoundary: g.crossBoundary,
		})
	}
	sort.Sort(ByEvent(summaries))
	return summaries
}
