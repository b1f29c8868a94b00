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

// Int32Value

type Int32Value int32

const (
	MinInt32Value Int32Value = math.MinInt32
	MaxInt32Value Int32Value = math.MaxInt32
)

func NewInt32Value(value int32) Int32Value {
	return Int32Value(value)
}

// NewInt32ValueFromAddress constructs an Int32Value from the bit pattern of
// a raw address. The address is truncated to the low 32 bits.
// Truncation is documented, platform-width-dependent behavior, not an
// error, and the result takes no further part in conversion checking.
func NewInt32ValueFromAddress(address uintptr) Int32Value {
	return Int32Value(uint32(address))
}

var _ Value = Int32Value(0)
var _ NumberValue = Int32Value(0)
var _ IntegerValue = Int32Value(0)
var _ EquatableValue = Int32Value(0)

func (Int32Value) isValue() {}

func (Int32Value) IsSigned() bool {
	return true
}

func (Int32Value) BitSize() int {
	return 32
}

func (v Int32Value) String() string {
	return format.Int(int64(v))
}

func (v Int32Value) ToInt64() int64 {
	return int64(v)
}

// ToUint64 returns the value's unsigned bit pattern, zero-extended.
func (v Int32Value) ToUint64() uint64 {
	return uint64(uint32(v))
}

// ToHex renders the value's unsigned bit pattern as zero-padded
// hexadecimal sized to the type's width.
func (v Int32Value) ToHex() string {
	return format.Hex(uint64(uint32(v)), 8)
}

// AsUnsigned reinterprets the value's bit pattern as the unsigned type
// of the same width. It never fails; -1 becomes 4294967295.
func (v Int32Value) AsUnsigned() UInt32Value {
	return UInt32Value(v)
}

func (v Int32Value) Negate() Int32Value {
	// INT32-C
	if v == math.MinInt32 {
		panic(&OverflowError{})
	}
	return -v
}

// Plus wraps silently on overflow, like native modular arithmetic.
// Use CheckedPlus for range-checked addition.
func (v Int32Value) Plus(other Int32Value) Int32Value {
	return v + other
}

func (v Int32Value) Minus(other Int32Value) Int32Value {
	return v - other
}

func (v Int32Value) Mul(other Int32Value) Int32Value {
	return v * other
}

func (v Int32Value) CheckedPlus(other Int32Value) Int32Value {
	// INT32-C
	if (other > 0) && (v > (math.MaxInt32 - other)) {
		panic(&OverflowError{})
	} else if (other < 0) && (v < (math.MinInt32 - other)) {
		panic(&UnderflowError{})
	}
	return v + other
}

func (v Int32Value) CheckedMinus(other Int32Value) Int32Value {
	// INT32-C
	if (other > 0) && (v < (math.MinInt32 + other)) {
		panic(&UnderflowError{})
	} else if (other < 0) && (v > (math.MaxInt32 + other)) {
		panic(&OverflowError{})
	}
	return v - other
}

func (v Int32Value) CheckedMul(other Int32Value) Int32Value {
	// INT32-C
	// The division pre-checks below are safe because each divides only by
	// an operand the enclosing branch has already established as non-zero.
	if v > 0 {
		if other > 0 {
			// positive * positive = positive. overflow?
			if v > (math.MaxInt32 / other) {
				panic(&OverflowError{})
			}
		} else {
			// positive * negative = negative. underflow?
			if other < (math.MinInt32 / v) {
				panic(&UnderflowError{})
			}
		}
	} else {
		if other > 0 {
			// negative * positive = negative. underflow?
			if v < (math.MinInt32 / other) {
				panic(&UnderflowError{})
			}
		} else {
			// negative * negative = positive. overflow?
			if (v != 0) && (other < (math.MaxInt32 / v)) {
				panic(&OverflowError{})
			}
		}
	}
	return v * other
}

func (v Int32Value) Div(other Int32Value) Int32Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	} else if (v == math.MinInt32) && (other == -1) {
		panic(&OverflowError{})
	}
	return v / other
}

func (v Int32Value) Mod(other Int32Value) Int32Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v % other
}

func (v Int32Value) BitwiseAnd(other Int32Value) Int32Value {
	return v & other
}

func (v Int32Value) BitwiseOr(other Int32Value) Int32Value {
	return v | other
}

func (v Int32Value) BitwiseXor(other Int32Value) Int32Value {
	return v ^ other
}

func (v Int32Value) BitwiseNot() Int32Value {
	return ^v
}

func (v Int32Value) BitwiseLeftShift(other Int32Value) Int32Value {
	if other < 0 || other >= 32 {
		panic(&ShiftOutOfRangeError{})
	}
	return v << other
}

func (v Int32Value) BitwiseRightShift(other Int32Value) Int32Value {
	if other < 0 || other >= 32 {
		panic(&ShiftOutOfRangeError{})
	}
	return v >> other
}

// Inc returns the value incremented by one, wrapping at MaxInt32Value.
func (v Int32Value) Inc() Int32Value {
	return v + 1
}

// Dec returns the value decremented by one, wrapping at MinInt32Value.
func (v Int32Value) Dec() Int32Value {
	return v - 1
}

func (v Int32Value) Less(other Int32Value) bool {
	return v < other
}

func (v Int32Value) LessEqual(other Int32Value) bool {
	return v <= other
}

func (v Int32Value) Greater(other Int32Value) bool {
	return v > other
}

func (v Int32Value) GreaterEqual(other Int32Value) bool {
	return v >= other
}

func (v Int32Value) Equal(other Value) bool {
	otherInt32, ok := other.(Int32Value)
	if !ok {
		return false
	}
	return v == otherInt32
}

func (v Int32Value) ToBigEndianBytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}
