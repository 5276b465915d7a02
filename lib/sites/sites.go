//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package sites merges consolidated hits into binding-site footprints: the
// maximal regions of each circRNA covered by overlapping hits.
package sites

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/biogo/store/interval"

	"git.sr.ht/~hweng/CircBind/lib/consolidate"
)

// Site is one footprint on a circRNA, with 1-based inclusive coordinates in
// the true (non-extended) transcript system.
type Site struct {
	EvID        string
	ReferenceID string
	Start       int
	End         int
	NumHits     int
	MaxScore    float64
}

type refSites struct {
	evID   string
	tree   *interval.IntTree
	pieces []IntInterval
}

// hitPieces returns the hit footprint in true transcript coordinates as
// 0-based half-open interval(s). A junction-spanning hit is cut at the
// junction and its tail wrapped back to the origin.
func hitPieces(ch consolidate.ClusteredHit) [][2]int {
	if ch.CrossBoundary {
		return [][2]int{
			{ch.RefStart - 1, ch.TotalLen},
			{0, ch.RefEnd - ch.TotalLen},
		}
	}
	return [][2]int{{ch.RefStart - 1, ch.RefEnd}}
}

// Footprints merges the hit intervals of each reference into maximal
// overlapping footprints. Each footprint reports the number of distinct hits
// covering it and their best score. Rows are sorted by event, reference and
// start position.
func Footprints(chits []consolidate.ClusteredHit) ([]Site, error) {
	refs := make(map[string]*refSites)
	var uid uintptr
	for iHit, ch := range chits {
		r, ok := refs[ch.ReferenceID]
		if !ok {
			r = &refSites{evID: ch.EvID, tree: &interval.IntTree{}}
			refs[ch.ReferenceID] = r
		}
		for _, p := range hitPieces(ch) {
			iv := IntInterval{Start: p[0], End: p[1], UID: uid, HitIdx: iHit, Score: ch.Score}
			if err := r.tree.Insert(iv, false); err != nil {
				return nil, err
			}
			r.pieces = append(r.pieces, iv)
			uid++
		}
	}

	refIDs := make([]string, 0, len(refs))
	for refID := range refs {
		refIDs = append(refIDs, refID)
	}
	sort.Strings(refIDs)

	var allSites []Site
	for _, refID := range refIDs {
		r := refs[refID]
		r.tree.AdjustRanges()
		sort.Slice(r.pieces, func(i, j int) bool {
			if r.pieces[i].Start != r.pieces[j].Start {
				return r.pieces[i].Start < r.pieces[j].Start
			}
			return r.pieces[i].End < r.pieces[j].End
		})
		// Sweep merge into maximal footprints
		start, end := r.pieces[0].Start, r.pieces[0].End
		for _, p := range r.pieces[1:] {
			if p.Start >= end {
				allSites = append(allSites, r.footprint(refID, start, end))
				start, end = p.Start, p.End
			} else if p.End > end {
				end = p.End
			}
		}
		allSites = append(allSites, r.footprint(refID, start, end))
	}

	sort.Slice(allSites, func(i, j int) bool {
		if allSites[i].EvID != allSites[j].EvID {
			return allSites[i].EvID < allSites[j].EvID
		}
		if allSites[i].ReferenceID != allSites[j].ReferenceID {
			return allSites[i].ReferenceID < allSites[j].ReferenceID
		}
		return allSites[i].Start < allSites[j].Start
	})
	return allSites, nil
}

func (r *refSites) footprint(refID string, start, end int) Site {
	s := Site{EvID: r.evID, ReferenceID: refID, Start: start + 1, End: end}
	seen := make(map[int]bool)
	for _, iv := range r.tree.Get(IntInterval{Start: start, End: end}) {
		p := iv.(IntInterval)
		if !seen[p.HitIdx] {
			seen[p.HitIdx] = true
			s.NumHits++
			if p.Score > s.MaxScore || s.NumHits == 1 {
				s.MaxScore = p.Score
			}
		}
	}
	return s
}

// WriteSites writes the footprint table, tab-separated with header.
func WriteSites(allSites []Site, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	w.WriteString("ev_id\treference_id\tstart\tend\tn_hits\tmax_score\n")
	for _, s := range allSites {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n", s.EvID, s.ReferenceID, s.Start, s.End, s.NumHits, strconv.FormatFloat(s.MaxScore, 'f', -1, 64))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
