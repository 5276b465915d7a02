//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// OpenLengthsTAB parses a two column tabulated file with reference ID and
// total length and returns a LengthTable.
func OpenLengthsTAB(tpath string) (lengths LengthTable, err error) {
	tfos, err := openTable(tpath)
	if err != nil {
		return
	}
	defer tfos.Close()

	lengths = make(LengthTable)
	var length int
	tscanner := bufio.NewScanner(tfos)
	for tscanner.Scan() {
		fields := strings.Split(tscanner.Text(), "\t")
		if len(fields) < 2 {
			err = fmt.Errorf("Malformed length line %q in %s", tscanner.Text(), tpath)
			return
		}
		length, err = strconv.Atoi(fields[1])
		if err != nil {
			return
		}
		lengths[fields[0]] = length
	}
	if err = tscanner.Err(); err != nil {
		return
	}
	return
}

// OpenLengthsFON parses a "Feature Object Notation" file and returns a
// LengthTable. The total length of each feature is the sum of the lengths of
// its coordinate intervals (0-based [start,end)), i.e. the exon lengths.
func OpenLengthsFON(jpath, fonName, fonCoords string) (lengths LengthTable, err error) {
	jfos, err := openTable(jpath)
	if err != nil {
		return
	}
	defer jfos.Close()

	d := json.NewDecoder(jfos)
	d.UseNumber()
	var rawFON interface{}
	if err = d.Decode(&rawFON); err != nil {
		err = fmt.Errorf("Error while parsing JSON feature file %s", jpath)
		return
	}

	// FON
	fon := rawFON.(map[string]interface{})

	// FON version
	var version int64
	if version, err = fon["fon_version"].(json.Number).Int64(); err != nil {
		return
	} else if version != 1 {
		err = fmt.Errorf("Unknown FON version %d", version)
		return
	}

	// Get lengths
	lengths = make(LengthTable)
	rawFeatures := fon["features"].([]interface{})
	for _, rf := range rawFeatures {
		mf := rf.(map[string]interface{})
		var length int64
		for _, cj := range mf[fonCoords].([]interface{}) {
			coord := cj.([]interface{})
			start, _ := coord[0].(json.Number).Int64()
			end, _ := coord[1].(json.Number).Int64()
			length += end - start
		}
		lengths[mf[fonName].(string)] = int(length)
	}
	return
}

// OpenEvents parses a two column tabulated file mapping reference ID to event
// ID and returns an EventMapping.
func OpenEvents(mpath string) (EventMapping, error) {
	m := make(EventMapping)

	mfos, err := openTable(mpath)
	if err != nil {
		return m, err
	}
	defer mfos.Close()

	tscanner := bufio.NewScanner(mfos)
	for tscanner.Scan() {
		fields := strings.Split(tscanner.Text(), "\t")
		if len(fields) < 2 {
			return m, fmt.Errorf("Malformed event line %q in %s", tscanner.Text(), mpath)
		}
		m[fields[0]] = fields[1]
	}
	if err := tscanner.Err(); err != nil {
		return m, err
	}
	return m, nil
}

type gzFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzFile) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}

func openTable(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return gzFile{Reader: zr, f: f}, nil
	}
	return f, nil
}
