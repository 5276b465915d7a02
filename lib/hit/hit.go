//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package hit

// Hit stores one alignment reported by miranda between a miRNA (query) and a
// linearized circRNA sequence (reference). Positions are 1-based inclusive.
type Hit struct {
	QueryID     string
	ReferenceID string
	Score       float64
	Energy      float64
	QueryStart  int
	QueryEnd    int
	RefStart    int
	RefEnd      int
	AlnLength   int
	Identity    float64
	Similarity  float64
	AlnMirna    string
	AlnMap      string
	AlnUtr      string
}

// Signature returns the three alignment tracks concatenated verbatim. Two hits
// with the same signature represent the same alignment.
func (h Hit) Signature() string {
	return h.AlnMirna + h.AlnMap + h.AlnUtr
}
