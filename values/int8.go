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
	"math"

	"github.com/hallowlang/primitive/format"
)

// Int8Value

type Int8Value int8

const (
	MinInt8Value Int8Value = math.MinInt8
	MaxInt8Value Int8Value = math.MaxInt8
)

func NewInt8Value(value int8) Int8Value {
	return Int8Value(value)
}

// NewInt8ValueFromAddress constructs an Int8Value from the bit pattern of
// a raw address. The address is truncated to the low 8 bits.
// Truncation is documented, platform-width-dependent behavior, not an
// error, and the result takes no further part in conversion checking.
func NewInt8ValueFromAddress(address uintptr) Int8Value {
	return Int8Value(uint8(address))
}

var _ Value = Int8Value(0)
var _ NumberValue = Int8Value(0)
var _ IntegerValue = Int8Value(0)
var _ EquatableValue = Int8Value(0)

func (Int8Value) isValue() {}

func (Int8Value) IsSigned() bool {
	return true
}

func (Int8Value) BitSize() int {
	return 8
}

func (v Int8Value) String() string {
	return format.Int(int64(v))
}

func (v Int8Value) ToInt64() int64 {
	return int64(v)
}

// ToUint64 returns the value's unsigned bit pattern, zero-extended.
func (v Int8Value) ToUint64() uint64 {
	return uint64(uint8(v))
}

// ToHex renders the value's unsigned bit pattern as zero-padded
// hexadecimal sized to the type's width.
func (v Int8Value) ToHex() string {
	return format.Hex(uint64(uint8(v)), 2)
}

// AsUnsigned reinterprets the value's bit pattern as the unsigned type
// of the same width. It never fails; -1 becomes 255.
func (v Int8Value) AsUnsigned() UInt8Value {
	return UInt8Value(v)
}

func (v Int8Value) Negate() Int8Value {
	// INT32-C
	if v == math.MinInt8 {
		panic(&OverflowError{})
	}
	return -v
}

// Plus wraps silently on overflow, like native modular arithmetic.
// Use CheckedPlus for range-checked addition.
func (v Int8Value) Plus(other Int8Value) Int8Value {
	return v + other
}

func (v Int8Value) Minus(other Int8Value) Int8Value {
	return v - other
}

func (v Int8Value) Mul(other Int8Value) Int8Value {
	return v * other
}

func (v Int8Value) CheckedPlus(other Int8Value) Int8Value {
	// INT32-C
	if (other > 0) && (v > (math.MaxInt8 - other)) {
		panic(&OverflowError{})
	} else if (other < 0) && (v < (math.MinInt8 - other)) {
		panic(&UnderflowError{})
	}
	return v + other
}

func (v Int8Value) CheckedMinus(other Int8Value) Int8Value {
	// INT32-C
	if (other > 0) && (v < (math.MinInt8 + other)) {
		panic(&UnderflowError{})
	} else if (other < 0) && (v > (math.MaxInt8 + other)) {
		panic(&OverflowError{})
	}
	return v - other
}

func (v Int8Value) CheckedMul(other Int8Value) Int8Value {
	// INT32-C
	// The division pre-checks below are safe because each divides only by
	// an operand the enclosing branch has already established as non-zero.
	if v > 0 {
		if other > 0 {
			// positive * positive = positive. overflow?
			if v > (math.MaxInt8 / other) {
				panic(&OverflowError{})
			}
		} else {
			// positive * negative = negative. underflow?
			if other < (math.MinInt8 / v) {
				panic(&UnderflowError{})
			}
		}
	} else {
		if other > 0 {
			// negative * positive = negative. underflow?
			if v < (math.MinInt8 / other) {
				panic(&UnderflowError{})
			}
		} else {
			// negative * negative = positive. overflow?
			if (v != 0) && (other < (math.MaxInt8 / v)) {
				panic(&OverflowError{})
			}
		}
	}
	return v * other
}

func (v Int8Value) Div(other Int8Value) Int8Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	} else if (v == math.MinInt8) && (other == -1) {
		panic(&OverflowError{})
	}
	return v / other
}

func (v Int8Value) Mod(other Int8Value) Int8Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v % other
}

func (v Int8Value) BitwiseAnd(other Int8Value) Int8Value {
	return v & other
}

func (v Int8Value) BitwiseOr(other Int8Value) Int8Value {
	return v | other
}

func (v Int8Value) BitwiseXor(other Int8Value) Int8Value {
	return v ^ other
}

func (v Int8Value) BitwiseNot() Int8Value {
	return ^v
}

func (v Int8Value) BitwiseLeftShift(other Int8Value) Int8Value {
	if other < 0 || other >= 8 {
		panic(&ShiftOutOfRangeError{})
	}
	return v << other
}

func (v Int8Value) BitwiseRightShift(other Int8Value) Int8Value {
	if other < 0 || other >= 8 {
		panic(&ShiftOutOfRangeError{})
	}
	return v >> other
}

// Inc returns the value incremented by one, wrapping at MaxInt8Value.
func (v Int8Value) Inc() Int8Value {
	return v + 1
}

// Dec returns the value decremented by one, wrapping at MinInt8Value.
func (v Int8Value) Dec() Int8Value {
	return v - 1
}

func (v Int8Value) Less(other Int8Value) bool {
	return v < other
}

func (v Int8Value) LessEqual(other Int8Value) bool {
	return v <= other
}

func (v Int8Value) Greater(other Int8Value) bool {
	return v > other
}

func (v Int8Value) GreaterEqual(other Int8Value) bool {
	return v >= other
}

func (v Int8Value) Equal(other Value) bool {
	otherInt8, ok := other.(Int8Value)
	if !ok {
		return false
	}
	return v == otherInt8
}

func (v Int8Value) ToBigEndianBytes() []byte {
	return []byte{byte(v)}
}
