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

// UInt16Value

type UInt16Value uint16

const (
	MinUInt16Value UInt16Value = 0
	MaxUInt16Value UInt16Value = math.MaxUint16
)

func NewUInt16Value(value uint16) UInt16Value {
	return UInt16Value(value)
}

// NewUInt16ValueFromAddress constructs a UInt16Value from the bit pattern of
// a raw address, truncated to the low 16 bits. Truncation is documented,
// potentially lossy behavior, not an error.
func NewUInt16ValueFromAddress(address uintptr) UInt16Value {
	return UInt16Value(address)
}

var _ Value = UInt16Value(0)
var _ NumberValue = UInt16Value(0)
var _ IntegerValue = UInt16Value(0)
var _ EquatableValue = UInt16Value(0)

func (UInt16Value) isValue() {}

func (UInt16Value) IsSigned() bool {
	return false
}

func (UInt16Value) BitSize() int {
	return 16
}

func (v UInt16Value) String() string {
	return format.Uint(uint64(v))
}

// ToInt64 returns the value sign-extended into a wider signed integer.
// Unsigned values are never negative, so the result is always the
// numeric value.
func (v UInt16Value) ToInt64() int64 {
	return int64(v)
}

func (v UInt16Value) ToUint64() uint64 {
	return uint64(v)
}

func (v UInt16Value) ToHex() string {
	return format.Hex(uint64(v), 4)
}

// AsSigned reinterprets the value's bit pattern as the signed type of the
// same width. It never fails; values above the signed maximum become
// negative.
func (v UInt16Value) AsSigned() Int16Value {
	return Int16Value(v)
}

// Plus wraps silently on overflow, like native modular arithmetic.
// Use CheckedPlus for range-checked addition.
func (v UInt16Value) Plus(other UInt16Value) UInt16Value {
	return v + other
}

func (v UInt16Value) Minus(other UInt16Value) UInt16Value {
	return v - other
}

func (v UInt16Value) Mul(other UInt16Value) UInt16Value {
	return v * other
}

func (v UInt16Value) CheckedPlus(other UInt16Value) UInt16Value {
	sum := v + other
	// INT30-C
	if sum < v {
		panic(&OverflowError{})
	}
	return sum
}

func (v UInt16Value) CheckedMinus(other UInt16Value) UInt16Value {
	diff := v - other
	// INT30-C
	if diff > v {
		panic(&UnderflowError{})
	}
	return diff
}

func (v UInt16Value) CheckedMul(other UInt16Value) UInt16Value {
	// INT30-C
	if (v > 0) && (other > 0) && (v > (math.MaxUint16 / other)) {
		panic(&OverflowError{})
	}
	return v * other
}

func (v UInt16Value) Div(other UInt16Value) UInt16Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v / other
}

func (v UInt16Value) Mod(other UInt16Value) UInt16Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v % other
}

func (v UInt16Value) BitwiseAnd(other UInt16Value) UInt16Value {
	return v & other
}

func (v UInt16Value) BitwiseOr(other UInt16Value) UInt16Value {
	return v | other
}

func (v UInt16Value) BitwiseXor(other UInt16Value) UInt16Value {
	return v ^ other
}

func (v UInt16Value) BitwiseNot() UInt16Value {
	return ^v
}

func (v UInt16Value) BitwiseLeftShift(other UInt16Value) UInt16Value {
	if other >= 16 {
		panic(&ShiftOutOfRangeError{})
	}
	return v << other
}

func (v UInt16Value) BitwiseRightShift(other UInt16Value) UInt16Value {
	if other >= 16 {
		panic(&ShiftOutOfRangeError{})
	}
	return v >> other
}

// Inc returns the value incremented by one, wrapping at MaxUInt16Value.
func (v UInt16Value) Inc() UInt16Value {
	return v + 1
}

// Dec returns the value decremented by one, wrapping at zero.
func (v UInt16Value) Dec() UInt16Value {
	return v - 1
}

func (v UInt16Value) Less(other UInt16Value) bool {
	return v < other
}

func (v UInt16Value) LessEqual(other UInt16Value) bool {
	return v <= other
}

func (v UInt16Value) Greater(other UInt16Value) bool {
	return v > other
}

func (v UInt16Value) GreaterEqual(other UInt16Value) bool {
	return v >= other
}

func (v UInt16Value) Equal(other Value) bool {
	otherUInt16, ok := other.(UInt16Value)
	if !ok {
		return false
	}
	return v == otherUInt16
}

func (v UInt16Value) ToBigEndianBytes() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}
