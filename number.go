// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"math/big"
)

const debugFixed = true

// A Number is an immutable fixed-point value n / c.Scale(), where c is the
// Context it was created from.
//
// The zero value of a Number has no Context and is not usable. Numbers are
// created with Context.New or Context.NewInt and by arithmetic operations on
// other Numbers.
type Number struct {
	ctx *Context
	num *big.Int
}

func (x Number) validate() {
	if !debugFixed {
		panic("validate called but debugFixed is not set")
	}
	if x.ctx == nil || x.num == nil {
		panic("fixed: use of uninitialized Number")
	}
}

// check panics with ErrScaleMismatch if x and y do not share the same scale.
func (x Number) check(y Number) {
	if debugFixed {
		x.validate()
		y.validate()
	}
	if x.ctx != y.ctx && x.ctx.scale.Cmp(y.ctx.scale) != 0 {
		panic(ErrScaleMismatch{"fixed: operands have different scales (" + x.ctx.String() + " vs. " + y.ctx.String() + ")"})
	}
}

// Context returns the Context x was created from.
func (x Number) Context() *Context {
	return x.ctx
}

// Numerator returns a copy of the scaled numerator of x.
func (x Number) Numerator() *big.Int {
	return new(big.Int).Set(x.num)
}

// Denominator returns a copy of the implicit denominator of x. This is the same
// as x.Context().Scale().
func (x Number) Denominator() *big.Int {
	return x.ctx.Scale()
}

// Rat returns the exact value of x as a *big.Rat.
func (x Number) Rat() *big.Rat {
	return new(big.Rat).SetFrac(x.num, x.ctx.scale)
}

// IsZero reports whether x is 0.
func (x Number) IsZero() bool {
	return x.num.Sign() == 0
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Number) Sign() int {
	return x.num.Sign()
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Number) Cmp(y Number) int {
	x.check(y)
	return x.num.Cmp(y.num)
}

// Add returns the sum x+y.
func (x Number) Add(y Number) Number {
	x.check(y)
	return x.ctx.fromScaled(new(big.Int).Add(x.num, y.num))
}

// Sub returns the difference x-y.
func (x Number) Sub(y Number) Number {
	x.check(y)
	return x.ctx.fromScaled(new(big.Int).Sub(x.num, y.num))
}

// Mul returns the product x×y, truncated toward zero.
func (x Number) Mul(y Number) Number {
	x.check(y)
	// a/S × b/S = (a×b/S) / S
	z := new(big.Int).Mul(x.num, y.num)
	return x.ctx.fromScaled(z.Quo(z, x.ctx.scale))
}

// MulInt returns the product x×k. The result is exact.
func (x Number) MulInt(k int64) Number {
	if debugFixed {
		x.validate()
	}
	return x.ctx.fromScaled(new(big.Int).Mul(x.num, big.NewInt(k)))
}

// QuoInt returns the quotient x/k, truncated toward zero.
//
// QuoInt panics with ErrZeroDenominator if k == 0.
func (x Number) QuoInt(k int64) Number {
	if debugFixed {
		x.validate()
	}
	if k == 0 {
		panic(ErrZeroDenominator{"fixed: division by zero"})
	}
	return x.ctx.fromScaled(new(big.Int).Quo(x.num, big.NewInt(k)))
}
