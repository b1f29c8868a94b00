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

package values_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hallowlang/primitive/values"
)

func TestFloat64Arithmetic(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		values.Float64Value(3.5),
		values.Float64Value(1.25).Plus(values.Float64Value(2.25)),
	)
	assert.Equal(t,
		values.Float64Value(-1),
		values.Float64Value(1.25).Minus(values.Float64Value(2.25)),
	)
	assert.Equal(t,
		values.Float64Value(7.5),
		values.Float64Value(2.5).Mul(values.Float64Value(3)),
	)
	assert.Equal(t,
		values.Float64Value(2.5),
		values.Float64Value(5).Div(values.Float64Value(2)),
	)
	assert.Equal(t,
		values.Float64Value(1.5),
		values.Float64Value(7.5).Mod(values.Float64Value(3)),
	)
}

func TestFloatDivisionByZero(t *testing.T) {

	t.Parallel()

	// exactly-zero divisors fail like the integer types,
	// instead of producing an IEEE infinity or NaN

	t.Run("Float64", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t,
			&values.DivisionByZeroError{},
			func() {
				values.Float64Value(1).Div(values.Float64Value(0))
			},
		)
		assert.PanicsWithValue(t,
			&values.DivisionByZeroError{},
			func() {
				values.Float64Value(1).Mod(values.Float64Value(0))
			},
		)
	})

	t.Run("Float32", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t,
			&values.DivisionByZeroError{},
			func() {
				values.Float32Value(1).Div(values.Float32Value(0))
			},
		)
		assert.PanicsWithValue(t,
			&values.DivisionByZeroError{},
			func() {
				values.Float32Value(1).Mod(values.Float32Value(0))
			},
		)
	})

	t.Run("near-zero divisor divides", func(t *testing.T) {
		t.Parallel()

		result := values.Float64Value(1).Div(values.Float64Value(1e-300))
		assert.True(t, result.IsFinite())
	})
}

func TestFloat64Math(t *testing.T) {

	t.Parallel()

	assert.Equal(t, values.Float64Value(4), values.Float64Value(16).Sqrt())
	assert.Equal(t, values.Float64Value(8), values.Float64Value(2).Pow(values.Float64Value(3)))
	assert.Equal(t, values.Float64Value(2.5), values.Float64Value(-2.5).Abs())
	assert.Equal(t, values.Float64Value(-2.5), values.Float64Value(2.5).Negate())
	assert.Equal(t, values.Float64Value(1), values.Float64Value(1.9).Floor())
	assert.Equal(t, values.Float64Value(2), values.Float64Value(1.1).Ceil())
	assert.Equal(t, values.Float64Value(2), values.Float64Value(1.5).Round())
	assert.Equal(t, values.Float64Value(-2), values.Float64Value(-1.5).Round())
	assert.Equal(t, values.Float64Value(0), values.Float64Value(0).Sin())
	assert.Equal(t, values.Float64Value(1), values.Float64Value(0).Cos())
	assert.Equal(t, values.Float64Value(0), values.Float64Value(0).Tan())

	assert.True(t, values.Float64Value(-1).Sqrt().IsNaN())
}

func TestFloat32Math(t *testing.T) {

	t.Parallel()

	assert.Equal(t, values.Float32Value(4), values.Float32Value(16).Sqrt())
	assert.Equal(t, values.Float32Value(8), values.Float32Value(2).Pow(values.Float32Value(3)))
	assert.Equal(t, values.Float32Value(1.5), values.Float32Value(-1.5).Abs())
	assert.Equal(t, values.Float32Value(2), values.Float32Value(1.5).Round())
}

func TestFloatClassification(t *testing.T) {

	t.Parallel()

	nan := values.Float64Value(math.NaN())
	inf := values.Float64Value(math.Inf(1))
	negInf := values.Float64Value(math.Inf(-1))
	finite := values.Float64Value(4.2)

	assert.True(t, nan.IsNaN())
	assert.False(t, nan.IsInf())
	assert.False(t, nan.IsFinite())

	assert.True(t, inf.IsInf())
	assert.True(t, negInf.IsInf())
	assert.False(t, inf.IsFinite())
	assert.False(t, inf.IsNaN())

	assert.True(t, finite.IsFinite())
	assert.False(t, finite.IsNaN())
	assert.False(t, finite.IsInf())

	assert.True(t, values.Float32Value(float32(math.NaN())).IsNaN())
	assert.True(t, values.Float32Value(float32(math.Inf(1))).IsInf())
	assert.True(t, values.Float32Value(4.2).IsFinite())
}

func TestFloatComparisons(t *testing.T) {

	t.Parallel()

	a := values.Float64Value(1.5)
	b := values.Float64Value(2.5)

	assert.True(t, a.Less(b))
	assert.True(t, a.LessEqual(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEqual(b))

	t.Run("NaN compares unequal to itself", func(t *testing.T) {
		t.Parallel()

		nan := values.Float64Value(math.NaN())

		assert.False(t, nan.Equal(nan))
		assert.False(t, nan.Less(nan))
		assert.False(t, nan.LessEqual(nan))
		assert.False(t, nan.GreaterEqual(nan))
	})
}

func TestFloatString(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "4.2", values.Float64Value(4.2).String())
	assert.Equal(t, "1e+100", values.Float64Value(1e100).String())
	assert.Equal(t, "1.5", values.Float32Value(1.5).String())
}

func TestFloatToBigEndianBytes(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		[]byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0},
		values.Float64Value(1).ToBigEndianBytes(),
	)
	assert.Equal(t,
		[]byte{0x3f, 0x80, 0, 0},
		values.Float32Value(1).ToBigEndianBytes(),
	)
}
