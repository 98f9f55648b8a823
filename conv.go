// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"fmt"
	"math/big"
	"strings"
)

// String formats x like x.Text(-1). Guard digits are never part of the result.
// If x's Context has a precision of 0, the result has no decimal point.
func (x Number) String() string {
	return x.Text(-1)
}

// Text converts x to a string with prec digits after the decimal point. If
// prec is negative or larger than x.Context().Prec(), x.Context().Prec() is
// used instead. Digits are truncated, never rounded. If prec is 0, the decimal
// point is omitted.
func (x Number) Text(prec int) string {
	if x.ctx == nil || x.num == nil {
		return "<nil>"
	}
	p := x.ctx.prec
	if prec >= 0 && uint(prec) < p {
		p = uint(prec)
	}
	return string(x.append(make([]byte, 0, x.ctx.prec+x.ctx.guard+4), p))
}

// append appends the text of x with prec fractional digits to buf and returns
// the extended buffer. prec must not exceed x.ctx.prec.
func (x Number) append(buf []byte, prec uint) []byte {
	var q, r big.Int
	q.QuoRem(x.num, x.ctx.scale, &r)
	if x.num.Sign() < 0 {
		buf = append(buf, '-')
		q.Neg(&q)
		r.Neg(&r)
	}
	buf = q.Append(buf, 10)
	if prec == 0 {
		return buf
	}
	buf = append(buf, '.')

	// 0 <= r < scale, so r has at most prec+guard digits. Left pad it to
	// exactly that many digits then keep the first prec.
	width := int(x.ctx.prec + x.ctx.guard)
	frac := r.Append(make([]byte, 0, width), 10)
	pad := width - len(frac)
	if pad >= int(prec) {
		return append(buf, strings.Repeat("0", int(prec))...)
	}
	buf = append(buf, strings.Repeat("0", pad)...)
	return append(buf, frac[:int(prec)-pad]...)
}

// MarshalText implements the encoding.TextMarshaler interface. x is marshaled
// with x.Context().Prec() fractional digits.
func (x Number) MarshalText() (text []byte, err error) {
	if x.ctx == nil || x.num == nil {
		return []byte("<nil>"), nil
	}
	return x.append(nil, x.ctx.prec), nil
}

// Format implements fmt.Formatter. It accepts the verbs 'v', 's', 'f' and 'F'.
// A precision, as in "%.10f", sets the number of fractional digits (see Text).
// Width and the '-' flag are supported for padding.
func (x Number) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'f', 'F':
	default:
		fmt.Fprintf(s, "%%!%c(fixed.Number=%s)", verb, x.String())
		return
	}
	prec := -1
	if p, ok := s.Precision(); ok {
		prec = p
	}
	text := x.Text(prec)
	if w, ok := s.Width(); ok && w > len(text) {
		pad := strings.Repeat(" ", w-len(text))
		if s.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}
	_, _ = s.Write([]byte(text))
}

var (
	_ fmt.Stringer  = Number{}
	_ fmt.Formatter = Number{}
)
