//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package transcript_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/klauspost/compress/gzip"

	"git.sr.ht/~hweng/CircBind/lib/transcript"
)

func TestOpenLengthsTAB(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "lengths.tsv")
	err := os.WriteFile(path, []byte("circA_0001\t100\ncircB_0002\t250\n"), 0666)
	c.Assert(err, qt.IsNil)

	lengths, err := transcript.OpenLengthsTAB(path)
	c.Assert(err, qt.IsNil)
	c.Assert(lengths, qt.DeepEquals, transcript.LengthTable{"circA_0001": 100, "circB_0002": 250})
}

func TestOpenLengthsTABGzip(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "lengths.tsv.gz")
	f, err := os.Create(path)
	c.Assert(err, qt.IsNil)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("circA_0001\t100\n"))
	c.Assert(err, qt.IsNil)
	c.Assert(zw.Close(), qt.IsNil)
	c.Assert(f.Close(), qt.IsNil)

	lengths, err := transcript.OpenLengthsTAB(path)
	c.Assert(err, qt.IsNil)
	c.Assert(lengths, qt.DeepEquals, transcript.LengthTable{"circA_0001": 100})
}

func TestOpenLengthsTABBadLength(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "lengths.tsv")
	err := os.WriteFile(path, []byte("circA_0001\tlong\n"), 0666)
	c.Assert(err, qt.IsNil)

	_, err = transcript.OpenLengthsTAB(path)
	c.Assert(err, qt.IsNotNil)
}

func TestOpenLengthsFON(t *testing.T) {
	c := qt.New(t)
	fon := `{
  "fon_version": 1,
  "features": [
    {"exons_id": "circA_0001", "exons": [[0, 100], [200, 250]]},
    {"exons_id": "circB_0002", "exons": [[10, 40]]}
  ]
}`
	path := filepath.Join(t.TempDir(), "features.fon")
	err := os.WriteFile(path, []byte(fon), 0666)
	c.Assert(err, qt.IsNil)

	lengths, err := transcript.OpenLengthsFON(path, "exons_id", "exons")
	c.Assert(err, qt.IsNil)
	c.Assert(lengths, qt.DeepEquals, transcript.LengthTable{"circA_0001": 150, "circB_0002": 30})
}

func TestOpenEvents(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "events.tsv")
	err := os.WriteFile(path, []byte("circA_0001\tE1\ncircB_0002\tE1\ncircC_0003\tE2\n"), 0666)
	c.Assert(err, qt.IsNil)

	events, err := transcript.OpenEvents(path)
	c.Assert(err, qt.IsNil)
	c.Assert(events, qt.DeepEquals, transcript.EventMapping{
		"circA_0001": "E1",
		"circB_0002": "E1",
		"circC_0003": "E2",
	})
}
