//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package consolidate_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"git.sr.ht/~hweng/CircBind/lib/consolidate"
	"git.sr.ht/~hweng/CircBind/lib/hit"
	"git.sr.ht/~hweng/CircBind/lib/transcript"
)

func TestCrossBoundary(t *testing.T) {
	c := qt.New(t)
	// Ending exactly at the true length does not cross
	c.Assert(consolidate.CrossBoundary(mkHit("Q", "R", 1, 100), 100), qt.IsFalse)
	c.Assert(consolidate.CrossBoundary(mkHit("Q", "R", 100, 101), 100), qt.IsTrue)
	c.Assert(consolidate.CrossBoundary(mkHit("Q", "R", 95, 105), 100), qt.IsTrue)
	c.Assert(consolidate.CrossBoundary(mkHit("Q", "R", 10, 40), 100), qt.IsFalse)
}

func TestClassify(t *testing.T) {
	c := qt.New(t)
	lengths := transcript.LengthTable{"R": 100}
	events := transcript.EventMapping{"R": "E1"}
	hits := []hit.Hit{
		mkHit("Q", "R", 95, 105),
		mkHit("Q", "R", 1, 100),
	}
	chits, err := consolidate.Classify(hits, lengths, events)
	c.Assert(err, qt.IsNil)
	c.Assert(chits, qt.HasLen, 2)
	c.Assert(chits[0].EvID, qt.Equals, "E1")
	c.Assert(chits[0].TotalLen, qt.Equals, 100)
	c.Assert(chits[0].CrossBoundary, qt.IsTrue)
	c.Assert(chits[1].CrossBoundary, qt.IsFalse)
}

func TestClassifyMissingEvent(t *testing.T) {
	c := qt.New(t)
	lengths := transcript.LengthTable{"R": 100}
	events := transcript.EventMapping{}
	_, err := consolidate.Classify([]hit.Hit{mkHit("Q", "R", 1, 20)}, lengths, events)
	var merr *transcript.MissingReferenceError
	c.Assert(err, qt.ErrorAs, &merr)
	c.Assert(merr.Table, qt.Equals, "event")
}
