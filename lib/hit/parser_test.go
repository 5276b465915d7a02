//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package hit_test

import (
	"fmt"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"git.sr.ht/~hweng/CircBind/lib/hit"
)

func resultLine(h hit.Hit) string {
	return fmt.Sprintf("//hit_info\tquery_id=%s\treference_id=%s\tscore=%v\tenergy=%v\tquery_start=%d\tquery_end=%d\tref_start=%d\tref_end=%d\taln_length=%d\tidentity=%v\tsimilarity=%v\taln_mirna=%s\taln_map=%s\taln_utr=%s",
		h.QueryID, h.ReferenceID, h.Score, h.Energy, h.QueryStart, h.QueryEnd, h.RefStart, h.RefEnd, h.AlnLength, h.Identity, h.Similarity, h.AlnMirna, h.AlnMap, h.AlnUtr)
}

func TestParseResults(t *testing.T) {
	c := qt.New(t)
	want := []hit.Hit{
		{
			QueryID:     "hsa-miR-1-3p",
			ReferenceID: "circA_0001",
			Score:       140.5,
			Energy:      -20.1,
			QueryStart:  2,
			QueryEnd:    8,
			RefStart:    1,
			RefEnd:      20,
			AlnLength:   7,
			Identity:    85.71,
			Similarity:  92.86,
			AlnMirna:    "uggaaug",
			AlnMap:      "||||:||",
			AlnUtr:      "accttac",
		},
		{
			QueryID:     "hsa-miR-7-5p",
			ReferenceID: "circB_0002",
			Score:       152,
			Energy:      -18.7,
			QueryStart:  1,
			QueryEnd:    21,
			RefStart:    33,
			RefEnd:      54,
			AlnLength:   21,
			Identity:    76.19,
			Similarity:  81,
			AlnMirna:    "uggaagacuagugauuuuguugu",
			AlnMap:      "||||  ||||:|||||| ||| |",
			AlnUtr:      "acctagtgatcactaaagcaaca",
		},
	}
	raw := strings.Join([]string{
		"miRanda v3.3a",
		"Reading Sequence:hsa-miR-1-3p",
		resultLine(want[0]),
		"Scan Complete",
		resultLine(want[1]),
		"",
	}, "\n")
	hits, err := hit.ParseResults(strings.NewReader(raw))
	c.Assert(err, qt.IsNil)
	c.Assert(hits, qt.DeepEquals, want)
}

func TestParseResultsSkipsNonResultLines(t *testing.T) {
	c := qt.New(t)
	raw := "miRanda banner\nPerforming Scan\n>>hsa-miR-1\tcircA\t140.00\n"
	hits, err := hit.ParseResults(strings.NewReader(raw))
	c.Assert(err, qt.IsNil)
	c.Assert(hits, qt.HasLen, 0)
}

func TestParseResultsBadNumeric(t *testing.T) {
	c := qt.New(t)
	h := hit.Hit{QueryID: "q", ReferenceID: "r", QueryStart: 1, QueryEnd: 2, RefStart: 1, RefEnd: 2, AlnLength: 1, AlnMirna: "a", AlnMap: "|", AlnUtr: "t"}
	raw := strings.Replace(resultLine(h), "score=0", "score=strong", 1)
	_, err := hit.ParseResults(strings.NewReader(raw))
	c.Assert(err, qt.IsNotNil)
	var perr *hit.ParseError
	c.Assert(err, qt.ErrorAs, &perr)
	c.Assert(perr.Field, qt.Equals, "score")
}

func TestParseResultsWrongFieldCount(t *testing.T) {
	c := qt.New(t)
	raw := "//hit_info\tquery_id=q\treference_id=r\tscore=1.0\n"
	_, err := hit.ParseResults(strings.NewReader(raw))
	var perr *hit.ParseError
	c.Assert(err, qt.ErrorAs, &perr)
}

func TestParseResultsMissingEqual(t *testing.T) {
	c := qt.New(t)
	h := hit.Hit{QueryID: "q", ReferenceID: "r", QueryStart: 1, QueryEnd: 2, RefStart: 1, RefEnd: 2, AlnLength: 1, AlnMirna: "a", AlnMap: "|", AlnUtr: "t"}
	raw := strings.Replace(resultLine(h), "energy=0", "energy 0", 1)
	_, err := hit.ParseResults(strings.NewReader(raw))
	var perr *hit.ParseError
	c.Assert(err, qt.ErrorAs, &perr)
}

func TestParseResultsRoundTrip(t *testing.T) {
	c := qt.New(t)
	want := hit.Hit{
		QueryID:     "mmu-miR-124-3p",
		ReferenceID: "circC|chr1:1000-2000",
		Score:       162.25,
		Energy:      -23.5,
		QueryStart:  1,
		QueryEnd:    22,
		RefStart:    77,
		RefEnd:      98,
		AlnLength:   22,
		Identity:    81.82,
		Similarity:  90.91,
		AlnMirna:    "uaaggcacgcggugaaugcc--a",
		AlnMap:      "||||||| ||:|||||||||  |",
		AlnUtr:      "attccgtacgtcacttacggaat",
	}
	hits, err := hit.ParseResults(strings.NewReader(resultLine(want) + "\n"))
	c.Assert(err, qt.IsNil)
	c.Assert(hits, qt.DeepEquals, []hit.Hit{want})
}

func TestSignature(t *testing.T) {
	c := qt.New(t)
	h := hit.Hit{AlnMirna: "uga", AlnMap: "|| ", AlnUtr: "act"}
	c.Assert(h.Signature(), qt.Equals, "uga|| act")
}
