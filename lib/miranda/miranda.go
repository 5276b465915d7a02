//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package miranda invokes the external miranda binary and collects its raw
// text output, optionally splitting the query sequences over several
// concurrent invocations.
package miranda

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Aligner holds the invocation parameters of the miranda binary.
type Aligner struct {
	RefFile string
	WorkDir string
	BinPath string
	Options []string
}

// New returns an Aligner for refFile. The -keyval option is always appended:
// the result parser depends on it.
func New(refFile string, options []string) *Aligner {
	a := &Aligner{RefFile: refFile, WorkDir: ".", BinPath: "miranda"}
	a.Options = append(a.Options, options...)
	a.Options = append(a.Options, "-keyval")
	return a
}

// ProcessError reports a miranda invocation exiting non-zero. It is fatal to
// the whole run: no partial output is consumed.
type ProcessError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Cmd, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (a *Aligner) command(seqFile, outFile string) *exec.Cmd {
	args := []string{a.RefFile, seqFile}
	args = append(args, a.Options...)
	if outFile != "" {
		args = append(args, "-out", outFile)
	}
	return exec.Command(a.BinPath, args...)
}

// Run aligns the sequences of seqFile and returns the raw miranda output.
// With numProc > 1, seqFile is split round-robin into numProc partitions
// aligned by concurrent miranda processes, and the partition outputs are
// concatenated in partition order. Record order within a partition is
// preserved; global order across partitions is not the input order.
func (a *Aligner) Run(seqFile string, numProc int) ([]byte, error) {
	if numProc <= 1 {
		return a.runSingle(seqFile)
	}
	return a.runParallel(seqFile, numProc)
}

func (a *Aligner) runSingle(seqFile string) ([]byte, error) {
	cmd := a.command(seqFile, "")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &ProcessError{Cmd: strings.Join(cmd.Args, " "), Stderr: stderr.String(), Err: err}
	}
	return stdout.Bytes(), nil
}

func (a *Aligner) runParallel(seqFile string, numProc int) (result []byte, err error) {
	tmpDir, err := os.MkdirTemp(a.WorkDir, "miranda_tmp_")
	if err != nil {
		return nil, err
	}
	// The partition directory is owned by this invocation
	defer os.RemoveAll(tmpDir)

	seqFiles, err := SplitFASTA(seqFile, tmpDir, numProc)
	if err != nil {
		return nil, err
	}

	outFiles := make([]string, len(seqFiles))
	for i, f := range seqFiles {
		outFiles[i] = f + ".result"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, _ := errgroup.WithContext(ctx)
	for i := range seqFiles {
		i := i
		g.Go(func() error {
			cmd := a.command(seqFiles[i], outFiles[i])
			var stderr bytes.Buffer
			cmd.Stderr = &stderr
			if err := cmd.Run(); err != nil {
				return &ProcessError{Cmd: strings.Join(cmd.Args, " "), Stderr: stderr.String(), Err: err}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	// Concatenate partition outputs in partition order 0..N-1
	var buf bytes.Buffer
	for _, outFile := range outFiles {
		out, err := os.ReadFile(outFile)
		if err != nil {
			return nil, err
		}
		buf.Write(out)
	}
	return buf.Bytes(), nil
}
