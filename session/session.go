// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/patrik-cihal/binary-search-tree/fault"
	"github.com/patrik-cihal/binary-search-tree/operation"
)

const (
	logTag        = "session"
	maxLineLength = 64 * 1024
)

// Options - session behaviour
type Options struct {
	OnError Policy // undecodable lines
	Dump    bool   // log the tree after every store or delete
	Check   bool   // verify tree ordering after every operation
}

// Statistics - counts for one session
type Statistics struct {
	Lines      uint64 `json:"lines"`
	Stored     uint64 `json:"stored"`
	Duplicates uint64 `json:"duplicates"`
	Found      uint64 `json:"found"`
	Missing    uint64 `json:"missing"`
	Deleted    uint64 `json:"deleted"`
	NotDeleted uint64 `json:"not_deleted"`
	Invalid    uint64 `json:"invalid"`
}

// optional diagnostics a store may provide
type checker interface {
	Check() bool
}

type printer interface {
	Print(io.Writer) int
}

// Session - state of one command loop
type Session struct {
	log     *logger.L
	store   operation.Store
	options Options
	stats   Statistics
}

// New - create a session applying operations to store
func New(store operation.Store, options Options) *Session {
	if "" == options.OnError {
		options.OnError = Abort
	}
	return &Session{
		log:     logger.New(logTag),
		store:   store,
		options: options,
	}
}

// Statistics - counts accumulated so far
func (s *Session) Statistics() Statistics {
	return s.stats
}

// Run - process lines from r until end of input, writing one answer
// per non-blank line to w
//
// returns nil at end of input
func (s *Session) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		if err := s.process(lineNumber, scanner.Text(), w); nil != err {
			return err
		}
	}
	if err := scanner.Err(); nil != err {
		s.log.Errorf("read error after line: %d  error: %s", lineNumber, err)
		return err
	}
	s.log.Infof("end of input after: %d lines", lineNumber)
	return nil
}

// handle a single line
func (s *Session) process(lineNumber int, line string, w io.Writer) error {
	s.stats.Lines += 1

	if "" == strings.TrimSpace(line) {
		return nil
	}

	op, err := operation.Parse(line)
	if nil != err {
		s.stats.Invalid += 1
		if Abort == s.options.OnError {
			s.log.Errorf("line: %d  input: %q  error: %s", lineNumber, line, err)
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
		s.log.Warnf("line: %d  input: %q  error: %s", lineNumber, line, err)
		_, err = fmt.Fprintln(w, InvalidInput)
		return err
	}

	outcome := operation.Apply(s.store, op)
	s.count(op.Code, outcome)
	s.log.Debugf("line: %d  %s → %s", lineNumber, op, outcome)

	if _, err := fmt.Fprintln(w, outcome); nil != err {
		return err
	}

	if s.options.Check {
		if c, ok := s.store.(checker); ok && !c.Check() {
			s.log.Criticalf("line: %d  %s: tree is corrupt", lineNumber, op)
			return fmt.Errorf("line %d: %w", lineNumber, fault.ErrTreeCorrupt)
		}
	}

	if s.options.Dump && (operation.Stored == outcome || operation.Deleted == outcome) {
		if p, ok := s.store.(printer); ok {
			var b bytes.Buffer
			depth := p.Print(&b)
			s.log.Debugf("tree depth: %d\n%s", depth, b.String())
		}
	}
	return nil
}

func (s *Session) count(code operation.Code, outcome operation.Outcome) {
	switch outcome {
	case operation.Stored:
		s.stats.Stored += 1
	case operation.AlreadyStored:
		s.stats.Duplicates += 1
	case operation.Found:
		s.stats.Found += 1
	case operation.NotFound:
		if operation.OpDelete == code {
			s.stats.NotDeleted += 1
		} else {
			s.stats.Missing += 1
		}
	case operation.Deleted:
		s.stats.Deleted += 1
	}
}
