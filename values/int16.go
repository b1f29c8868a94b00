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

// Int16Value

type Int16Value int16

const (
	MinInt16Value Int16Value = math.MinInt16
	MaxInt16Value Int16Value = math.MaxInt16
)

func NewInt16Value(value int16) Int16Value {
	return Int16Value(value)
}

// NewInt16ValueFromAddress constructs an Int16Value from the bit pattern of
// a raw address. The address is truncated to the low 16 bits.
// Truncation is documented, platform-width-dependent behavior, not an
// error, and the result takes no further part in conversion checking.
func NewInt16ValueFromAddress(address uintptr) Int16Value {
	return Int16Value(uint16(address))
}

var _ Value = Int16Value(0)
var _ NumberValue = Int16Value(0)
var _ IntegerValue = Int16Value(0)
var _ EquatableValue = Int16Value(0)

func (Int16Value) isValue() {}

func (Int16Value) IsSigned() bool {
	return true
}

func (Int16Value) BitSize() int {
	return 16
}

func (v Int16Value) String() string {
	return format.Int(int64(v))
}

func (v Int16Value) ToInt64() int64 {
	return int64(v)
}

// ToUint64 returns the value's unsigned bit pattern, zero-extended.
func (v Int16Value) ToUint64() uint64 {
	return uint64(uint16(v))
}

// ToHex renders the value's unsigned bit pattern as zero-padded
// hexadecimal sized to the type's width.
func (v Int16Value) ToHex() string {
	return format.Hex(uint64(uint16(v)), 4)
}

// AsUnsigned reinterprets the value's bit pattern as the unsigned type
// of the same width. It never fails; -1 becomes 65535.
func (v Int16Value) AsUnsigned() UInt16Value {
	return UInt16Value(v)
}

func (v Int16Value) Negate() Int16Value {
	// INT32-C
	if v == math.MinInt16 {
		panic(&OverflowError{})
	}
	return -v
}

// Plus wraps silently on overflow, like native modular arithmetic.
// Use CheckedPlus for range-checked addition.
func (v Int16Value) Plus(other Int16Value) Int16Value {
	return v + other
}

func (v Int16Value) Minus(other Int16Value) Int16Value {
	return v - other
}

func (v Int16Value) Mul(other Int16Value) Int16Value {
	return v * other
}

func (v Int16Value) CheckedPlus(other Int16Value) Int16Value {
	// INT32-C
	if (other > 0) && (v > (math.MaxInt16 - other)) {
		panic(&OverflowError{})
	} else if (other < 0) && (v < (math.MinInt16 - other)) {
		panic(&UnderflowError{})
	}
	return v + other
}

func (v Int16Value) CheckedMinus(other Int16Value) Int16Value {
	// INT32-C
	if (other > 0) && (v < (math.MinInt16 + other)) {
		panic(&UnderflowError{})
	} else if (other < 0) && (v > (math.MaxInt16 + other)) {
		panic(&OverflowError{})
	}
	return v - other
}

func (v Int16Value) CheckedMul(other Int16Value) Int16Value {
	// INT32-C
	// The division pre-checks below are safe because each divides only by
	// an operand the enclosing branch has already established as non-zero.
	if v > 0 {
		if other > 0 {
			// positive * positive = positive. overflow?
			if v > (math.MaxInt16 / other) {
				panic(&OverflowError{})
			}
		} else {
			// positive * negative = negative. underflow?
			if other < (math.MinInt16 / v) {
				panic(&UnderflowError{})
			}
		}
	} else {
		if other > 0 {
			// negative * positive = negative. underflow?
			if v < (math.MinInt16 / other) {
				panic(&UnderflowError{})
			}
		} else {
			// negative * negative = positive. overflow?
			if (v != 0) && (other < (math.MaxInt16 / v)) {
				panic(&OverflowError{})
			}
		}
	}
	return v * other
}

func (v Int16Value) Div(other Int16Value) Int16Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	} else if (v == math.MinInt16) && (other == -1) {
		panic(&OverflowError{})
	}
	return v / other
}

func (v Int16Value) Mod(other Int16Value) Int16Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v % other
}

func (v Int16Value) BitwiseAnd(other Int16Value) Int16Value {
	return v & other
}

func (v Int16Value) BitwiseOr(other Int16Value) Int16Value {
	return v | other
}

func (v Int16Value) BitwiseXor(other Int16Value) Int16Value {
	return v ^ other
}

func (v Int16Value) BitwiseNot() Int16Value {
	return ^v
}

func (v Int16Value) BitwiseLeftShift(other Int16Value) Int16Value {
	if other < 0 || other >= 16 {
		panic(&ShiftOutOfRangeError{})
	}
	return v << other
}

func (v Int16Value) BitwiseRightShift(other Int16Value) Int16Value {
	if other < 0 || other >= 16 {
		panic(&ShiftOutOfRangeError{})
	}
	return v >> other
}

// Inc returns the value incremented by one, wrapping at MaxInt16Value.
func (v Int16Value) Inc() Int16Value {
	return v + 1
}

// Dec returns the value decremented by one, wrapping at MinInt16Value.
func (v Int16Value) Dec() Int16Value {
	return v - 1
}

func (v Int16Value) Less(other Int16Value) bool {
	return v < other
}

func (v Int16Value) LessEqual(other Int16Value) bool {
	return v <= other
}

func (v Int16Value) Greater(other Int16Value) bool {
	return v > other
}

func (v Int16Value) GreaterEqual(other Int16Value) bool {
	return v >= other
}

func (v Int16Value) Equal(other Value) bool {
	otherInt16, ok := other.(Int16Value)
	if !ok {
		return false
	}
	return v == otherInt16
}

func (v Int16Value) ToBigEndianBytes() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}
