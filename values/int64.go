/*
 * Primitive - fixed-width value types for language implementations
 *
 * Copyright Hallow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package values

import (
	"encoding/binary"
	"math"

	"github.com/hallowlang/primitive/format"
)

// Int64Value

type Int64Value int64

const (
	MinInt64Value Int64Value = math.MinInt64
	MaxInt64Value Int64Value = math.MaxInt64
)

func NewInt64Value(value int64) Int64Value {
	return Int64Value(value)
}

// NewInt64ValueFromAddress constructs an Int64Value from the bit pattern of
// a raw address. The address is truncated to the low 64 bits.
// Truncation is documented, platform-width-dependent behavior, not an
// error, and the result takes no further part in conversion checking.
func NewInt64ValueFromAddress(address uintptr) Int64Value {
	return Int64Value(uint64(address))
}

var _ Value = Int64Value(0)
var _ NumberValue = Int64Value(0)
var _ IntegerValue = Int64Value(0)
var _ EquatableValue = Int64Value(0)

func (Int64Value) isValue() {}

func (Int64Value) IsSigned() bool {
	return true
}

func (Int64Value) BitSize() int {
	return 64
}

func (v Int64Value) String() string {
	return format.Int(int64(v))
}

func (v Int64Value) ToInt64() int64 {
	return int64(v)
}

// ToUint64 returns the value's unsigned bit pattern, zero-extended.
func (v Int64Value) ToUint64() uint64 {
	return uint64(v)
}

// ToHex renders the value's unsigned bit pattern as zero-padded
// hexadecimal sized to the type's width.
func (v Int64Value) ToHex() string {
	return format.Hex(uint64(v), 16)
}

// AsUnsigned reinterprets the value's bit pattern as the unsigned type
// of the same width. It never fails; -1 becomes the maximum unsigned value.
func (v Int64Value) AsUnsigned() UInt64Value {
	return UInt64Value(v)
}

func (v Int64Value) Negate() Int64Value {
	// INT32-C
	if v == math.MinInt64 {
		panic(&OverflowError{})
	}
	return -v
}

// Plus wraps silently on overflow, like native modular arithmetic.
// Use CheckedPlus for range-checked addition.
func (v Int64Value) Plus(other Int64Value) Int64Value {
	return v + other
}

func (v Int64Value) Minus(other Int64Value) Int64Value {
	return v - other
}

func (v Int64Value) Mul(other Int64Value) Int64Value {
	return v * other
}

func (v Int64Value) CheckedPlus(other Int64Value) Int64Value {
	// INT32-C
	if (other > 0) && (v > (math.MaxInt64 - other)) {
		panic(&OverflowError{})
	} else if (other < 0) && (v < (math.MinInt64 - other)) {
		panic(&UnderflowError{})
	}
	return v + other
}

func (v Int64Value) CheckedMinus(other Int64Value) Int64Value {
	// INT32-C
	if (other > 0) && (v < (math.MinInt64 + other)) {
		panic(&UnderflowError{})
	} else if (other < 0) && (v > (math.MaxInt64 + other)) {
		panic(&OverflowError{})
	}
	return v - other
}

func (v Int64Value) CheckedMul(other Int64Value) Int64Value {
	// INT32-C
	// The division pre-checks below are safe because each divides only by
	// an operand the enclosing branch has already established as non-zero.
	if v > 0 {
		if other > 0 {
			// positive * positive = positive. overflow?
			if v > (math.MaxInt64 / other) {
				panic(&OverflowError{})
			}
		} else {
			// positive * negative = negative. underflow?
			if other < (math.MinInt64 / v) {
				panic(&UnderflowError{})
			}
		}
	} else {
		if other > 0 {
			// negative * positive = negative. underflow?
			if v < (math.MinInt64 / other) {
				panic(&UnderflowError{})
			}
		} else {
			// negative * negative = positive. overflow?
			if (v != 0) && (other < (math.MaxInt64 / v)) {
				panic(&OverflowError{})
			}
		}
	}
	return v * other
}

func (v Int64Value) Div(other Int64Value) Int64Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	} else if (v == math.MinInt64) && (other == -1) {
		panic(&OverflowError{})
	}
	return v / other
}

func (v Int64Value) Mod(other Int64Value) Int64Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v % other
}

func (v Int64Value) BitwiseAnd(other Int64Value) Int64Value {
	return v & other
}

func (v Int64Value) BitwiseOr(other Int64Value) Int64Value {
	return v | other
}

func (v Int64Value) BitwiseXor(other Int64Value) Int64Value {
	return v ^ other
}

func (v Int64Value) BitwiseNot() Int64Value {
	return ^v
}

func (v Int64Value) BitwiseLeftShift(other Int64Value) Int64Value {
	if other < 0 || other >= 64 {
		panic(&ShiftOutOfRangeError{})
	}
	return v << other
}

func (v Int64Value) BitwiseRightShift(other Int64Value) Int64Value {
	if other < 0 || other >= 64 {
		panic(&ShiftOutOfRangeError{})
	}
	return v >> other
}

// Inc returns the value incremented by one, wrapping at MaxInt64Value.
func (v Int64Value) Inc() Int64Value {
	return v + 1
}

// Dec returns the value decremented by one, wrapping at MinInt64Value.
func (v Int64Value) Dec() Int64Value {
	return v - 1
}

func (v Int64Value) Less(other Int64Value) bool {
	return v < other
}

func (v Int64Value) LessEqual(other Int64Value) bool {
	return v <= other
}

func (v Int64Value) Greater(other Int64Value) bool {
	return v > other
}

func (v Int64Value) GreaterEqual(other Int64Value) bool {
	return v >= other
}

func (v Int64Value) Equal(other Value) bool {
	otherInt64, ok := other.(Int64Value)
	if !ok {
		return false
	}
	return v == otherInt64
}

func (v Int64Value) ToBigEndianBytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
