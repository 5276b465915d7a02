//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package hit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ResultMarker identifies a result line in raw miranda -keyval output.
const ResultMarker = "//hit_info\t"

const numFields = 14

// ParseError reports a result line whose field failed to convert to its
// declared kind. It is fatal: past this point data integrity is not guaranteed.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing result field %s=%q: %v", e.Field, e.Value, e.Err)
}

// ParseResults scans raw miranda output and returns the hits in input order.
// Lines without the result marker (banners, progress, alignment blocks) are
// skipped. A marker line with a malformed field returns a *ParseError.
func ParseResults(r io.Reader) (hits []Hit, err error) {
	scanner := bufio.NewScanner(r)
	// Alignment tracks can make result lines long
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ResultMarker) {
			continue
		}
		var h Hit
		h, err = parseResultLine(line[len(ResultMarker):])
		if err != nil {
			return
		}
		hits = append(hits, h)
	}
	if err = scanner.Err(); err != nil {
		return
	}
	return
}

// parseResultLine parses the tab-separated key=value fields of one result
// line. Field order is fixed: query_id, reference_id, score, energy,
// query_start, query_end, ref_start, ref_end, aln_length, identity,
// similarity, aln_mirna, aln_map, aln_utr.
func parseResultLine(line string) (h Hit, err error) {
	fields := strings.Split(line, "\t")
	if len(fields) != numFields {
		err = &ParseError{Field: "line", Value: line, Err: fmt.Errorf("expected %d fields, got %d", numFields, len(fields))}
		return
	}
	values := make([]string, numFields)
	for i, field := range fields {
		eq := strings.IndexByte(field, '=')
		if eq == -1 {
			err = &ParseError{Field: field, Value: field, Err: fmt.Errorf("missing '='")}
			return
		}
		values[i] = field[eq+1:]
	}
	h.QueryID = values[0]
	h.ReferenceID = values[1]
	if h.Score, err = parseFloatField("score", values[2]); err != nil {
		return
	}
	if h.Energy, err = parseFloatField("energy", values[3]); err != nil {
		return
	}
	if h.QueryStart, err = parseIntField("query_start", values[4]); err != nil {
		return
	}
	if h.QueryEnd, err = parseIntField("query_end", values[5]); err != nil {
		return
	}
	if h.RefStart, err = parseIntField("ref_start", values[6]); err != nil {
		return
	}
	if h.RefEnd, err = parseIntField("ref_end", values[7]); err != nil {
		return
	}
	if h.AlnLength, err = parseIntField("aln_length", values[8]); err != nil {
		return
	}
	if h.Identity, err = parseFloatField("identity", values[9]); err != nil {
		return
	}
	if h.Similarity, err = parseFloatField("similarity", values[10]); err != nil {
		return
	}
	h.AlnMirna = values[11]
	h.AlnMap = values[12]
	h.AlnUtr = values[13]
	return
}

func parseFloatField(key, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ParseError{Field: key, Value: value, Err: err}
	}
	return v, nil
}

func parseIntField(key, value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Field: key, Value: value, Err: err}
	}
	return v, nil
}
