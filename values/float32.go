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

// Float32Value

// Float32Value is a single-precision IEEE-754 value. The math functions
// compute in double precision and round back, which matches the platform
// behavior for single-precision operands.
type Float32Value float32

func NewFloat32Value(value float32) Float32Value {
	return Float32Value(value)
}

var _ Value = Float32Value(0)
var _ NumberValue = Float32Value(0)
var _ EquatableValue = Float32Value(0)

func (Float32Value) isValue() {}

func (v Float32Value) String() string {
	return format.Float32(float32(v))
}

func (v Float32Value) Plus(other Float32Value) Float32Value {
	return v + other
}

func (v Float32Value) Minus(other Float32Value) Float32Value {
	return v - other
}

func (v Float32Value) Mul(other Float32Value) Float32Value {
	return v * other
}

// Div fails with DivisionByZeroError when the divisor is exactly zero,
// overriding the IEEE infinity/NaN result.
func (v Float32Value) Div(other Float32Value) Float32Value {
	if other == 0.0 {
		panic(&DivisionByZeroError{})
	}
	return v / other
}

func (v Float32Value) Mod(other Float32Value) Float32Value {
	if other == 0.0 {
		panic(&DivisionByZeroError{})
	}
	return Float32Value(math.Mod(float64(v), float64(other)))
}

func (v Float32Value) Negate() Float32Value {
	return -v
}

func (v Float32Value) Abs() Float32Value {
	return Float32Value(math.Abs(float64(v)))
}

func (v Float32Value) Sqrt() Float32Value {
	return Float32Value(math.Sqrt(float64(v)))
}

func (v Float32Value) Pow(exponent Float32Value) Float32Value {
	return Float32Value(math.Pow(float64(v), float64(exponent)))
}

func (v Float32Value) Sin() Float32Value {
	return Float32Value(math.Sin(float64(v)))
}

func (v Float32Value) Cos() Float32Value {
	return Float32Value(math.Cos(float64(v)))
}

func (v Float32Value) Tan() Float32Value {
	return Float32Value(math.Tan(float64(v)))
}

func (v Float32Value) Floor() Float32Value {
	return Float32Value(math.Floor(float64(v)))
}

func (v Float32Value) Ceil() Float32Value {
	return Float32Value(math.Ceil(float64(v)))
}

func (v Float32Value) Round() Float32Value {
	return Float32Value(math.Round(float64(v)))
}

func (v Float32Value) IsNaN() bool {
	return math.IsNaN(float64(v))
}

func (v Float32Value) IsInf() bool {
	return math.IsInf(float64(v), 0)
}

func (v Float32Value) IsFinite() bool {
	return !v.IsNaN() && !v.IsInf()
}

func (v Float32Value) Less(other Float32Value) bool {
	return v < other
}

func (v Float32Value) LessEqual(other Float32Value) bool {
	return v <= other
}

func (v Float32Value) Greater(other Float32Value) bool {
	return v > other
}

func (v Float32Value) GreaterEqual(other Float32Value) bool {
	return v >= other
}

func (v Float32Value) Equal(other Value) bool {
	otherFloat32, ok := other.(Float32Value)
	if !ok {
		return false
	}
	return v == otherFloat32
}

func (v Float32Value) ToBigEndianBytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, math.Float32bits(float32(v)))
	return b
}
