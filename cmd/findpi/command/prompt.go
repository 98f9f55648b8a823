// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

const (
	promptDigits  = "Enter a number of decimal places: "
	promptMore    = "Want more? (y/n) "
	promptConfirm = "Calculating PI with so many decimal places can take a long time depending on your hardware. Do you really want to calculate it? (y/n)\n"
)

// parseDigits parses a number of decimal places.
func parseDigits(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number of decimal places %q", s)
	}
	return uint(n), nil
}

// parseAnswer returns whether the first character of s is a yes or a no. ok is
// false if it is neither.
func parseAnswer(s string) (yes, ok bool) {
	if s == "" {
		return false, false
	}
	switch s[0] {
	case 'y', 'Y':
		return true, true
	case 'n', 'N':
		return false, true
	}
	return false, false
}

// A prompter asks questions on out and reads answers from in, one per line.
// All read errors, including io.EOF, are returned as is.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
	log logr.Logger

	warnThreshold uint
	yes           bool
}

func newPrompter(in io.Reader, out io.Writer, log logr.Logger) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out, log: log}
}

func (p *prompter) readLine(prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "read answer")
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// confirm asks prompt until a y/n answer is given.
func (p *prompter) confirm(prompt string) (bool, error) {
	for {
		s, err := p.readLine(prompt)
		if err != nil {
			return false, err
		}
		if yes, ok := parseAnswer(s); ok {
			return yes, nil
		}
	}
}

// confirmDigits asks for confirmation if computing n digits may take long.
func (p *prompter) confirmDigits(n uint) (bool, error) {
	if p.yes || p.warnThreshold == 0 || n < p.warnThreshold {
		return true, nil
	}
	return p.confirm(promptConfirm)
}

// digits asks for a number of decimal places until a valid and confirmed one
// is given.
func (p *prompter) digits() (uint, error) {
	for {
		s, err := p.readLine(promptDigits)
		if err != nil {
			return 0, err
		}
		n, err := parseDigits(s)
		if err != nil {
			p.log.V(1).Info("rejected input", "error", err.Error())
			continue
		}
		ok, err := p.confirmDigits(n)
		if err != nil {
			return 0, err
		}
		if ok {
			return n, nil
		}
	}
}

// loop runs the interactive session: ask for a number of digits, print π and
// start over until the user says no or the input is exhausted.
func (p *prompter) loop(pi func(uint) string) error {
	for {
		n, err := p.digits()
		if err != nil {
			return ignoreEOF(err)
		}
		if _, err = fmt.Fprintln(p.out, pi(n)); err != nil {
			return err
		}
		more, err := p.confirm(promptMore)
		if err != nil || !more {
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Cause(err) == io.EOF {
		return nil
	}
	return err
}
