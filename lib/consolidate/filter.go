//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package consolidate turns raw miranda hits on linearized circRNA sequences
// into a deduplicated, classified and clustered set of binding calls.
package consolidate

import (
	"git.sr.ht/~hweng/CircBind/lib/hit"
	"git.sr.ht/~hweng/CircBind/lib/transcript"
)

type dupKey struct {
	queryID     string
	referenceID string
	refEnd      int
}

// RemoveRedundant removes the artifacts introduced by linearizing a circular
// sequence. Hits starting past the true length are dropped outright. A hit
// starting at position 1 may be re-detected against the repeated tail as a
// second hit ending at ref_end + total_len for the same query/reference pair;
// every such extended counterpart is dropped, the position-1 anchor itself
// always survives. Relative order of the surviving hits is preserved.
func RemoveRedundant(hits []hit.Hit, lengths transcript.LengthTable) ([]hit.Hit, error) {
	kept := make([]hit.Hit, 0, len(hits))
	for _, h := range hits {
		totalLen, ok := lengths[h.ReferenceID]
		if !ok {
			return nil, &transcript.MissingReferenceError{Table: "length", ReferenceID: h.ReferenceID}
		}
		if h.RefStart > totalLen {
			continue
		}
		kept = append(kept, h)
	}

	// Keyed index from (query_id, reference_id, ref_end) to row(s)
	index := make(map[dupKey][]int, len(kept))
	for i, h := range kept {
		k := dupKey{h.QueryID, h.ReferenceID, h.RefEnd}
		index[k] = append(index[k], i)
	}

	drop := make([]bool, len(kept))
	for i, h := range kept {
		if h.RefStart != 1 {
			continue
		}
		extendedEnd := h.RefEnd + lengths[h.ReferenceID]
		for _, j := range index[dupKey{h.QueryID, h.ReferenceID, extendedEnd}] {
			if j == i {
				continue
			}
			drop[j] = true
		}
	}

	filtered := make([]hit.Hit, 0, len(kept))
	for i, h := range kept {
		if !drop[i] {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}
