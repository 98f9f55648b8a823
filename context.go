// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"fmt"
	"math/big"
	"strconv"
)

// DefaultGuardDigits is the minimum number of guard digits of a Context.
const DefaultGuardDigits = 4

// A Context holds the scale shared by all Numbers of a computation: the
// number of requested fractional digits, the number of guard digits and the
// resulting implicit denominator 10**(prec+guard).
//
// A Context cannot be modified once created. It is safe for concurrent use.
type Context struct {
	prec  uint
	guard uint
	scale *big.Int
}

// GuardDigits returns the number of guard digits used by NewContext for a
// precision of prec digits.
//
// Every truncating operation loses at most one unit in the last place and long
// series accumulate these errors roughly linearly in the number of terms, so
// the guard grows with the magnitude of prec.
func GuardDigits(prec uint) uint {
	return DefaultGuardDigits + 2*uint(len(strconv.FormatUint(uint64(prec), 10)))
}

// NewContext returns a new Context for prec fractional digits with
// GuardDigits(prec) guard digits.
func NewContext(prec uint) *Context {
	return NewContextGuard(prec, GuardDigits(prec))
}

// NewContextGuard returns a new Context for prec fractional digits and guard
// guard digits. If guard < DefaultGuardDigits, it is set to
// DefaultGuardDigits.
func NewContextGuard(prec, guard uint) *Context {
	if guard < DefaultGuardDigits {
		guard = DefaultGuardDigits
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec+guard)), nil)
	return &Context{prec: prec, guard: guard, scale: scale}
}

// Prec returns the number of fractional digits of c.
func (c *Context) Prec() uint {
	return c.prec
}

// Guard returns the number of guard digits of c.
func (c *Context) Guard() uint {
	return c.guard
}

// Scale returns a copy of the implicit denominator of all Numbers created from c.
func (c *Context) Scale() *big.Int {
	return new(big.Int).Set(c.scale)
}

func (c *Context) String() string {
	return fmt.Sprintf("prec=%d guard=%d", c.prec, c.guard)
}

// New returns a Number set to the truncated value of num/den.
//
// New panics with ErrZeroDenominator if den == 0.
func (c *Context) New(num, den int64) Number {
	return c.NewInt(big.NewInt(num), big.NewInt(den))
}

// NewInt returns a Number set to the truncated value of num/den.
//
// NewInt panics with ErrZeroDenominator if den == 0.
func (c *Context) NewInt(num, den *big.Int) Number {
	if den.Sign() == 0 {
		panic(ErrZeroDenominator{"fixed: zero denominator"})
	}
	z := new(big.Int).Mul(c.scale, num)
	return c.fromScaled(z.Quo(z, den))
}

// fromScaled wraps n, which must already be scaled to c. n is not copied.
func (c *Context) fromScaled(n *big.Int) Number {
	return Number{ctx: c, num: n}
}
