// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"fmt"

	"github.com/db47h/fixed"
)

// MaxAtanDenominator is the largest d accepted by Atan. d² must fit in an int64.
const MaxAtanDenominator = 3037000499

// Atan returns arctan(1/d) computed to the scale of ctx.
//
// The function panics if d < 2 or d > MaxAtanDenominator.
func Atan(ctx *fixed.Context, d int64) fixed.Number {
	z, _ := atan(ctx, d)
	return z
}

// atan computes arctan(1/d) with the series
//
//	1/d - 1/(3d³) + 1/(5d⁵) - 1/(7d⁷) + ...
//
// and returns the result along with the number of iterations of the main
// loop. Each iteration accounts for two terms of the series. The loop stops
// as soon as the power of 1/d vanishes at the scale of ctx.
func atan(ctx *fixed.Context, d int64) (z fixed.Number, n int) {
	if d < 2 || d > MaxAtanDenominator {
		panic(fmt.Sprintf("math: atan denominator %d out of range", d))
	}
	z = ctx.New(1, d)
	d2 := d * d
	div := int64(1)
	for t := z; !t.IsZero(); n++ {
		div += 2
		t = t.QuoInt(d2)
		z = z.Sub(t.QuoInt(div))

		div += 2
		t = t.QuoInt(d2)
		z = z.Add(t.QuoInt(div))
	}
	return z, n
}
