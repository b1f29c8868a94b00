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

// UInt64Value

type UInt64Value uint64

const (
	MinUInt64Value UInt64Value = 0
	MaxUInt64Value UInt64Value = math.MaxUint64
)

func NewUInt64Value(value uint64) UInt64Value {
	return UInt64Value(value)
}

// NewUInt64ValueFromAddress constructs a UInt64Value from the bit pattern of
// a raw address, truncated to the low 64 bits. Truncation is documented,
// potentially lossy behavior, not an error.
func NewUInt64ValueFromAddress(address uintptr) UInt64Value {
	return UInt64Value(address)
}

var _ Value = UInt64Value(0)
var _ NumberValue = UInt64Value(0)
var _ IntegerValue = UInt64Value(0)
var _ EquatableValue = UInt64Value(0)

func (UInt64Value) isValue() {}

func (UInt64Value) IsSigned() bool {
	return false
}

func (UInt64Value) BitSize() int {
	return 64
}

func (v UInt64Value) String() string {
	return format.Uint(uint64(v))
}

// ToInt64 reinterprets the value's bit pattern as a signed 64-bit
// integer. Values above the signed maximum come back negative;
// conversions check IsSigned before relying on this.
func (v UInt64Value) ToInt64() int64 {
	return int64(v)
}

func (v UInt64Value) ToUint64() uint64 {
	return uint64(v)
}

func (v UInt64Value) ToHex() string {
	return format.Hex(uint64(v), 16)
}

// AsSigned reinterprets the value's bit pattern as the signed type of the
// same width. It never fails; values above the signed maximum become
// negative.
func (v UInt64Value) AsSigned() Int64Value {
	return Int64Value(v)
}

// Plus wraps silently on overflow, like native modular arithmetic.
// Use CheckedPlus for range-checked addition.
func (v UInt64Value) Plus(other UInt64Value) UInt64Value {
	return v + other
}

func (v UInt64Value) Minus(other UInt64Value) UInt64Value {
	return v - other
}

func (v UInt64Value) Mul(other UInt64Value) UInt64Value {
	return v * other
}

func (v UInt64Value) CheckedPlus(other UInt64Value) UInt64Value {
	sum := v + other
	// INT30-C
	if sum < v {
		panic(&OverflowError{})
	}
	return sum
}

func (v UInt64Value) CheckedMinus(other UInt64Value) UInt64Value {
	diff := v - other
	// INT30-C
	if diff > v {
		panic(&UnderflowError{})
	}
	return diff
}

func (v UInt64Value) CheckedMul(other UInt64Value) UInt64Value {
	// INT30-C
	if (v > 0) && (other > 0) && (v > (math.MaxUint64 / other)) {
		panic(&OverflowError{})
	}
	return v * other
}

func (v UInt64Value) Div(other UInt64Value) UInt64Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v / other
}

func (v UInt64Value) Mod(other UInt64Value) UInt64Value {
	// INT33-C
	if other == 0 {
		panic(&DivisionByZeroError{})
	}
	return v % other
}

func (v UInt64Value) BitwiseAnd(other UInt64Value) UInt64Value {
	return v & other
}

func (v UInt64Value) BitwiseOr(other UInt64Value) UInt64Value {
	return v | other
}

func (v UInt64Value) BitwiseXor(other UInt64Value) UInt64Value {
	return v ^ other
}

func (v UInt64Value) BitwiseNot() UInt64Value {
	return ^v
}

func (v UInt64Value) BitwiseLeftShift(other UInt64Value) UInt64Value {
	if other >= 64 {
		panic(&ShiftOutOfRangeError{})
	}
	return v << other
}

func (v UInt64Value) BitwiseRightShift(other UInt64Value) UInt64Value {
	if other >= 64 {
		panic(&ShiftOutOfRangeError{})
	}
	return v >> other
}

// Inc returns the value incremented by one, wrapping at MaxUInt64Value.
func (v UInt64Value) Inc() UInt64Value {
	return v + 1
}

// Dec returns the value decremented by one, wrapping at zero.
func (v UInt64Value) Dec() UInt64Value {
	return v - 1
}

func (v UInt64Value) Less(other UInt64Value) bool {
	return v < other
}

func (v UInt64Value) LessEqual(other UInt64Value) bool {
	return v <= other
}

func (v UInt64Value) Greater(other UInt64Value) bool {
	return v > other
}

func (v UInt64Value) GreaterEqual(other UInt64Value) bool {
	return v >= other
}

func (v UInt64Value) Equal(other Value) bool {
	otherUInt64, ok := other.(UInt64Value)
	if !ok {
		return false
	}
	return v == otherUInt64
}

func (v UInt64Value) ToBigEndianBytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
