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

// UInt8Value

type UInt8Value uint8

const (
	MinUInt8Value UInt8Value = 0
	MaxUInt8Value UInt8Value = math.MaxUint8
)

func NewUInt8Value(value uint8) UInt8Value {
	return UInt8Value(value)
}

// NewUInt8ValueFromAddress constructs a UInt8Value from the bit pattern of
// a raw address, truncated to the low 8 bits. Truncation is documented,
// potentially lossy behavior, not an error.
func NewUInt8ValueFromAddress(address uintptr) UInt8Value {
	return UInt8Value(address)
}

var _ Value = UInt8Value(0)
var _ NumberValue = UInt8Value(0)
var _ IntegerValue = UInt8Value(0)
var _ EquatableValue = UInt8Value(0)

func (UInt8Value) isValue() {}

func (UInt8Value) IsSigned() bool {
	return false
}

func (UInt8Value) BitSize() int {
	return 8
}

func (v UInt8Value) String() string {
	return format.Uint(uint64(v))
}

// ToInt64 returns the value sign-extended into a wider signed integer.
// Unsigned values are never negative, so the result is always the
// numeric value.
func (v UInt8Value) ToInt64() int64 {
	return int64(v)
}

func (v UInt8Value) ToUint64() uint64 {
	return uint64(v)
}

func (v UInt8Value) ToHex() string {
	return format.Hex(uint64(v), 2)
}

// AsSigned reinterprets the value's bit pattern as the signed type of the
// same width. It never fails; values above the signed maximum become
// negative.
func (v UInt8Value) AsSigned() Int8Value {
	return Int8Value(v)
}

// Plus wraps silently on overflow, like native modular arithmetic.
// Use CheckedPlus for range-checked addition.
func (v UInt8Value) Plus(other UInt8Value) UInt8Value {
	return v + other
}

func (v UInt8Value) Minus(other UInt8Value) UInt8Value {
	return v - other
}

func (v UInt8Value) Mul(other UInt8Value) UInt8Value {
	return v * other
}

func (v UInt8Value) CheckedPlus(other UInt8Value) UInt8Value {
	sum := v + other
	// INT30-C
	if sum < v {
		panic(&OverflowError{})
	}
	return sum
}

func (v UInt8Value) CheckedMinus(other UInt8Value) UInt8Value {
	diff := v - other
	// INT30-C
	if diff > v {
		panic(&UnderflowError{})
	}
	return diff
}

func (v UInt8Value) CheckedMul(other UInt8Value) UInt8Value {
	// INT30-C
	if (v > 0) && (other > 0) && (v > (math.MaxUint8 / other)) {
		panic(&OverflowError{})
	}
	return v * other
}

func (v UInt8Value) Div(other UInt8Value) UInt8Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v / other
}

func (v UInt8Value) Mod(other UInt8Value) UInt8Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v % other
}

func (v UInt8Value) BitwiseAnd(other UInt8Value) UInt8Value {
	return v & other
}

func (v UInt8Value) BitwiseOr(other UInt8Value) UInt8Value {
	return v | other
}

func (v UInt8Value) BitwiseXor(other UInt8Value) UInt8Value {
	return v ^ other
}

func (v UInt8Value) BitwiseNot() UInt8Value {
	return ^v
}

func (v UInt8Value) BitwiseLeftShift(other UInt8Value) UInt8Value {
	if other >= 8 {
		panic(&ShiftOutOfRangeError{})
	}
	return v << other
}

func (v UInt8Value) BitwiseRightShift(other UInt8Value) UInt8Value {
	if other >= 8 {
		panic(&ShiftOutOfRangeError{})
	}
	return v >> other
}

// Inc returns the value incremented by one, wrapping at MaxUInt8Value.
func (v UInt8Value) Inc() UInt8Value {
	return v + 1
}

// Dec returns the value decremented by one, wrapping at zero.
func (v UInt8Value) Dec() UInt8Value {
	return v - 1
}

func (v UInt8Value) Less(other UInt8Value) bool {
	return v < other
}

func (v UInt8Value) LessEqual(other UInt8Value) bool {
	return v <= other
}

func (v UInt8Value) Greater(other UInt8Value) bool {
	return v > other
}

func (v UInt8Value) GreaterEqual(other UInt8Value) bool {
	return v >= other
}

func (v UInt8Value) Equal(other Value) bool {
	otherUInt8, ok := other.(UInt8Value)
	if !ok {
		return false
	}
	return v == otherUInt8
}

func (v UInt8Value) ToBigEndianBytes() []byte {
	return []byte{byte(v)}
}
