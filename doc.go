// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fixed implements arbitrary-precision decimal fixed-point arithmetic.

A Number holds a single big.Int numerator n and represents the value

    n / 10**(prec+guard)

where prec is the number of fractional digits the caller is interested in and
guard is a small number of extra digits that absorb the truncation error of
long computations. Both are carried by a Context, which plays the role of the
implicit denominator shared by every Number of a computation:

    ctx := fixed.NewContext(50)       // 50 digits, default guard digits
    third := ctx.New(1, 3)            // 0.3333...

Unlike big.Float or decimal.Decimal, Numbers are immutable values. Every
operation returns a new Number and never modifies its operands, so Numbers can
be copied and shared freely:

    x := ctx.New(1, 5)
    y := x.Mul(x).QuoInt(3).Sub(x)    // x² / 3 - x

Multiplying or dividing by a machine integer does not need any rescaling and is
much cheaper than multiplying two Numbers.

All operations truncate toward zero; no rounding is ever performed. This
applies to string conversions as well: guard digits are dropped, not rounded
into the last visible digit.

Combining Numbers created from Contexts with different scales is a programming
error and panics with an ErrScaleMismatch. Likewise, dividing by zero panics
with an ErrZeroDenominator.
*/
package fixed
