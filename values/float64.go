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

// Float64Value

type Float64Value float64

func NewFloat64Value(value float64) Float64Value {
	return Float64Value(value)
}

var _ Value = Float64Value(0)
var _ NumberValue = Float64Value(0)
var _ EquatableValue = Float64Value(0)

func (Float64Value) isValue() {}

func (v Float64Value) String() string {
	return format.Float64(float64(v))
}

// Plus behaves like native float addition, including infinity and NaN
// propagation.
func (v Float64Value) Plus(other Float64Value) Float64Value {
	return v + other
}

func (v Float64Value) Minus(other Float64Value) Float64Value {
	return v - other
}

func (v Float64Value) Mul(other Float64Value) Float64Value {
	return v * other
}

// Div fails with DivisionByZeroError when the divisor is exactly zero.
// The IEEE result (infinity or NaN) is intentionally overridden by this
// check to keep domain-error semantics uniform with the integer types.
func (v Float64Value) Div(other Float64Value) Float64Value {
	if other == 0.0 {
		panic(&DivisionByZeroError{})
	}
	return v / other
}

func (v Float64Value) Mod(other Float64Value) Float64Value {
	if other == 0.0 {
		panic(&DivisionByZeroError{})
	}
	return Float64Value(math.Mod(float64(v), float64(other)))
}

func (v Float64Value) Negate() Float64Value {
	return -v
}

func (v Float64Value) Abs() Float64Value {
	return Float64Value(math.Abs(float64(v)))
}

func (v Float64Value) Sqrt() Float64Value {
	return Float64Value(math.Sqrt(float64(v)))
}

func (v Float64Value) Pow(exponent Float64Value) Float64Value {
	return Float64Value(math.Pow(float64(v), float64(exponent)))
}

func (v Float64Value) Sin() Float64Value {
	return Float64Value(math.Sin(float64(v)))
}

func (v Float64Value) Cos() Float64Value {
	return Float64Value(math.Cos(float64(v)))
}

func (v Float64Value) Tan() Float64Value {
	return Float64Value(math.Tan(float64(v)))
}

func (v Float64Value) Floor() Float64Value {
	return Float64Value(math.Floor(float64(v)))
}

func (v Float64Value) Ceil() Float64Value {
	return Float64Value(math.Ceil(float64(v)))
}

func (v Float64Value) Round() Float64Value {
	return Float64Value(math.Round(float64(v)))
}

func (v Float64Value) IsNaN() bool {
	return math.IsNaN(float64(v))
}

func (v Float64Value) IsInf() bool {
	return math.IsInf(float64(v), 0)
}

func (v Float64Value) IsFinite() bool {
	return !v.IsNaN() && !v.IsInf()
}

// Comparisons follow native floating comparison:
// NaN compares unequal to everything, including itself.

func (v Float64Value) Less(other Float64Value) bool {
	return v < other
}

func (v Float64Value) LessEqual(other Float64Value) bool {
	return v <= other
}

func (v Float64Value) Greater(other Float64Value) bool {
	return v > other
}

func (v Float64Value) GreaterEqual(other Float64Value) bool {
	return v >= other
}

func (v Float64Value) Equal(other Value) bool {
	otherFloat64, ok := other.(Float64Value)
	if !ok {
		return false
	}
	return v == otherFloat64
}

func (v Float64Value) ToBigEndianBytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(float64(v)))
	return b
}
