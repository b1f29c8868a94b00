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

// UInt32Value

type UInt32Value uint32

const (
	MinUInt32Value UInt32Value = 0
	MaxUInt32Value UInt32Value = math.MaxUint32
)

func NewUInt32Value(value uint32) UInt32Value {
	return UInt32Value(value)
}

// NewUInt32ValueFromAddress constructs a UInt32Value from the bit pattern of
// a raw address, truncated to the low 32 bits. Truncation is documented,
// potentially lossy behavior, not an error.
func NewUInt32ValueFromAddress(address uintptr) UInt32Value {
	return UInt32Value(address)
}

var _ Value = UInt32Value(0)
var _ NumberValue = UInt32Value(0)
var _ IntegerValue = UInt32Value(0)
var _ EquatableValue = UInt32Value(0)

func (UInt32Value) isValue() {}

func (UInt32Value) IsSigned() bool {
	return false
}

func (UInt32Value) BitSize() int {
	return 32
}

func (v UInt32Value) String() string {
	return format.Uint(uint64(v))
}

// ToInt64 returns the value sign-extended into a wider signed integer.
// Unsigned values are never negative, so the result is always the
// numeric value.
func (v UInt32Value) ToInt64() int64 {
	return int64(v)
}

func (v UInt32Value) ToUint64() uint64 {
	return uint64(v)
}

func (v UInt32Value) ToHex() string {
	return format.Hex(uint64(v), 8)
}

// AsSigned reinterprets the value's bit pattern as the signed type of the
// same width. It never fails; values above the signed maximum become
// negative.
func (v UInt32Value) AsSigned() Int32Value {
	return Int32Value(v)
}

// Plus wraps silently on overflow, like native modular arithmetic.
// Use CheckedPlus for range-checked addition.
func (v UInt32Value) Plus(other UInt32Value) UInt32Value {
	return v + other
}

func (v UInt32Value) Minus(other UInt32Value) UInt32Value {
	return v - other
}

func (v UInt32Value) Mul(other UInt32Value) UInt32Value {
	return v * other
}

func (v UInt32Value) CheckedPlus(other UInt32Value) UInt32Value {
	sum := v + other
	// INT30-C
	if sum < v {
		panic(&OverflowError{})
	}
	return sum
}

func (v UInt32Value) CheckedMinus(other UInt32Value) UInt32Value {
	diff := v - other
	// INT30-C
	if diff > v {
		panic(&UnderflowError{})
	}
	return diff
}

func (v UInt32Value) CheckedMul(other UInt32Value) UInt32Value {
	// INT30-C
	if (v > 0) && (other > 0) && (v > (math.MaxUint32 / other)) {
		panic(&OverflowError{})
	}
	return v * other
}

func (v UInt32Value) Div(other UInt32Value) UInt32Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v / other
}

func (v UInt32Value) Mod(other UInt32Value) UInt32Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v % other
}

func (v UInt32Value) BitwiseAnd(other UInt32Value) UInt32Value {
	return v & other
}

func (v UInt32Value) BitwiseOr(other UInt32Value) UInt32Value {
	return v | other
}

func (v UInt32Value) BitwiseXor(other UInt32Value) UInt32Value {
	return v ^ other
}

func (v UInt32Value) BitwiseNot() UInt32Value {
	return ^v
}

func (v UInt32Value) BitwiseLeftShift(other UInt32Value) UInt32Value {
	if other >= 32 {
		panic(&ShiftOutOfRangeError{})
	}
	return v << other
}

func (v UInt32Value) BitwiseRightShift(other UInt32Value) UInt32Value {
	if other >= 32 {
		panic(&ShiftOutOfRangeError{})
	}
	return v >> other
}

// Inc returns the value incremented by one, wrapping at MaxUInt32Value.
func (v UInt32Value) Inc() UInt32Value {
	return v + 1
}

// Dec returns the value decremented by one, wrapping at zero.
func (v UInt32Value) Dec() UInt32Value {
	return v - 1
}

func (v UInt32Value) Less(other UInt32Value) bool {
	return v < other
}

func (v UInt32Value) LessEqual(other UInt32Value) bool {
	return v <= other
}

func (v UInt32Value) Greater(other UInt32Value) bool {
	return v > other
}

func (v UInt32Value) GreaterEqual(other UInt32Value) bool {
	return v >= other
}

func (v UInt32Value) Equal(other Value) bool {
	otherUInt32, ok := other.(UInt32Value)
	if !ok {
		return false
	}
	return v == otherUInt32
}

func (v UInt32Value) ToBigEndianBytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}
