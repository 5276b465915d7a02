//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package consolidate

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

type GenericWriter interface {
	Write(buf []byte) (n int, err error)
	Close() error
}

// WriteSummary writes the per (event, miRNA) summary table, tab-separated
// with header.
func WriteSummary(summaries []Summary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	w.WriteString("ev_id\tmirna\tmax_score\tcount\tcross_boundary\n")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", s.EvID, s.Mirna, strconv.FormatFloat(s.MaxScore, 'f', -1, 64), s.Count, boolToInt(s.CrossBoundary))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteHits writes the full clustered hit table. Format is 'tsv' optionally
// suffixed with a compression, i.e. 'tsv+lz4' or 'tsv+zst'.
func WriteHits(chits []ClusteredHit, path string, format string) error {
	var hitsZip string
	if strings.Contains(format, "+") {
		doubleFormat := strings.Split(format, "+")
		format, hitsZip = doubleFormat[0], doubleFormat[1]
	}
	if format != "tsv" {
		return fmt.Errorf("Unknown hits format %s", format)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var writer GenericWriter
	switch hitsZip {
	case "lz4":
		writer = lz4.NewWriter(f)
	case "zst":
		writer, err = zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return err
		}
	case "":
		writer = f
	default:
		f.Close()
		return fmt.Errorf("Unknown hits compression %s", hitsZip)
	}
	fmt.Fprint(writer, "query_id\treference_id\tscore\tenergy\tquery_start\tquery_end\tref_start\tref_end\taln_length\tidentity\tsimilarity\taln_mirna\taln_map\taln_utr\ttotal_len\tcross_boundary\tev_id\taln\taln_id\n")
	for _, ch := range chits {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%d\n",
			ch.QueryID,
			ch.ReferenceID,
			strconv.FormatFloat(ch.Score, 'f', -1, 64),
			strconv.FormatFloat(ch.Energy, 'f', -1, 64),
			ch.QueryStart,
			ch.QueryEnd,
			ch.RefStart,
			ch.RefEnd,
			ch.AlnLength,
			strconv.FormatFloat(ch.Identity, 'f', -1, 64),
			strconv.FormatFloat(ch.Similarity, 'f', -1, 64),
			ch.AlnMirna,
			ch.AlnMap,
			ch.AlnUtr,
			ch.TotalLen,
			boolToInt(ch.CrossBoundary),
			ch.EvID,
			ch.Aln,
			ch.AlnID)
	}
	if err := writer.Close(); err != nil {
		f.Close()
		return err
	}
	if hitsZip != "" {
		return f.Close()
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
