//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package miranda

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// SplitFASTA splits the records of seqFile into n files in dir, assigning
// whole records round-robin by record index modulo n. The split is stable for
// identical input and n. Returns the partition file paths in partition order.
func SplitFASTA(seqFile, dir string, n int) (paths []string, err error) {
	in, err := openSeq(seqFile)
	if err != nil {
		return
	}
	defer in.Close()

	paths = make([]string, n)
	files := make([]*os.File, n)
	writers := make([]*bufio.Writer, n)
	for i := 0; i < n; i++ {
		paths[i] = filepath.Join(dir, fmt.Sprintf("seq_file.part%d.fa", i+1))
		files[i], err = os.Create(paths[i])
		if err != nil {
			for j := 0; j < i; j++ {
				files[j].Close()
			}
			return nil, err
		}
		writers[i] = bufio.NewWriter(files[i])
	}

	// Record index, -1 until the first header line
	iRecord := -1
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			iRecord++
		}
		if iRecord == -1 {
			continue
		}
		w := writers[iRecord%n]
		w.WriteString(line)
		w.WriteByte('\n')
	}
	err = scanner.Err()

	for i := 0; i < n; i++ {
		if werr := writers[i].Flush(); werr != nil && err == nil {
			err = werr
		}
		if cerr := files[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		return nil, err
	}
	return
}

type gzSeqFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzSeqFile) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}

func openSeq(path string) (io.ReadCloser, error) {
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
		return gzSeqFile{Reader: zr, f: f}, nil
	}
	return f, nil
}
