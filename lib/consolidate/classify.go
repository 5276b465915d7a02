//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package consolidate

import (
	"git.sr.ht/~hweng/CircBind/lib/hit"
	"git.sr.ht/~hweng/CircBind/lib/transcript"
)

// ClusteredHit is a Hit joined with its transcript length and event, flagged
// for the back-splice junction and assigned an alignment cluster.
type ClusteredHit struct {
	hit.Hit
	TotalLen      int
	CrossBoundary bool
	EvID          string
	Aln           string
	AlnID         int
}

// CrossBoundary reports whether the hit straddles the junction between the
// end and the start of the circular transcript. A hit ending exactly at
// totalLen does not cross.
func CrossBoundary(h hit.Hit, totalLen int) bool {
	return h.RefStart <= totalLen && totalLen < h.RefEnd
}

// Classify joins each hit with its total length and event ID and flags
// junction-spanning hits. A reference missing from either table is a fatal
// configuration error.
func Classify(hits []hit.Hit, lengths transcript.LengthTable, events transcript.EventMapping) ([]ClusteredHit, error) {
	chits := make([]ClusteredHit, 0, len(hits))
	for _, h := range hits {
		totalLen, ok := lengths[h.ReferenceID]
		if !ok {
			return nil, &transcript.MissingReferenceError{Table: "length", ReferenceID: h.ReferenceID}
		}
		evID, ok := events[h.ReferenceID]
		if !ok {
			return nil, &transcript.MissingReferenceError{Table: "event", ReferenceID: h.ReferenceID}
		}
		chits = append(chits, ClusteredHit{
			Hit:           h,
			TotalLen:      totalLen,
			CrossBoundary: CrossBoundary(h, totalLen),
			EvID:          evID,
		})
	}
	return chits, nil
}
