// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

// An ErrZeroDenominator panic is raised when constructing a Number with a zero
// denominator or when dividing a Number by zero. An ErrZeroDenominator
// implements the error interface.
type ErrZeroDenominator struct {
	msg string
}

func (err ErrZeroDenominator) Error() string {
	return err.msg
}

// An ErrScaleMismatch panic is raised by operations combining Numbers that do
// not share the same scale.
type ErrScaleMismatch struct {
	msg string
}

func (err ErrScaleMismatch) Error() string {
	return err.msg
}
