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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallowlang/primitive/values"
)

func TestConvertWidening(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		values.Int64Value(-42),
		values.ConvertInt64(values.Int8Value(-42)),
	)
	assert.Equal(t,
		values.Int32Value(300),
		values.ConvertInt32(values.UInt16Value(300)),
	)
	assert.Equal(t,
		values.UInt64Value(65535),
		values.ConvertUInt64(values.UInt16Value(65535)),
	)
}

func TestConvertNarrowing(t *testing.T) {

	t.Parallel()

	t.Run("in range", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			values.Int8Value(-128),
			values.ConvertInt8(values.Int64Value(-128)),
		)
		assert.Equal(t,
			values.UInt8Value(255),
			values.ConvertUInt8(values.UInt64Value(255)),
		)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t,
			&values.OutOfRangeError{Target: "Int8"},
			func() {
				values.ConvertInt8(values.Int64Value(128))
			},
		)
		assert.PanicsWithValue(t,
			&values.OutOfRangeError{Target: "Int8"},
			func() {
				values.ConvertInt8(values.Int64Value(-129))
			},
		)
		assert.PanicsWithValue(t,
			&values.OutOfRangeError{Target: "UInt16"},
			func() {
				values.ConvertUInt16(values.UInt32Value(65536))
			},
		)
	})
}

func TestConvertAcrossSignedness(t *testing.T) {

	t.Parallel()

	t.Run("unsigned at signed max round-trips", func(t *testing.T) {
		t.Parallel()

		original := values.UInt32Value(2147483647)
		signed := values.ConvertInt32(original)
		require.Equal(t, values.Int32Value(2147483647), signed)

		assert.Equal(t, original, values.ConvertUInt32(signed))
	})

	t.Run("unsigned above signed max fails", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t,
			&values.OutOfRangeError{Target: "Int32"},
			func() {
				values.ConvertInt32(values.UInt32Value(2147483648))
			},
		)
		assert.PanicsWithValue(t,
			&values.OutOfRangeError{Target: "Int64"},
			func() {
				values.ConvertInt64(values.MaxUInt64Value)
			},
		)
	})

	t.Run("negative to unsigned fails", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t,
			&values.NegativeToUnsignedError{Target: "UInt32"},
			func() {
				values.ConvertUInt32(values.Int32Value(-1))
			},
		)
		assert.PanicsWithValue(t,
			&values.NegativeToUnsignedError{Target: "UInt64"},
			func() {
				values.ConvertUInt64(values.Int8Value(-1))
			},
		)
	})
}

func TestConvertFloat(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		values.Float64Value(42),
		values.ConvertFloat64(values.Int32Value(42)),
	)
	assert.Equal(t,
		values.Float64Value(1.5),
		values.ConvertFloat64(values.Float32Value(1.5)),
	)
	assert.Equal(t,
		values.Float32Value(255),
		values.ConvertFloat32(values.UInt8Value(255)),
	)
	assert.Equal(t,
		values.Float32Value(0.25),
		values.ConvertFloat32(values.Float64Value(0.25)),
	)

	t.Run("large unsigned stays non-negative", func(t *testing.T) {
		t.Parallel()

		converted := values.ConvertFloat64(values.MaxUInt64Value)
		assert.True(t, converted.Greater(values.Float64Value(0)))
	})
}

func TestReinterpretation(t *testing.T) {

	t.Parallel()

	t.Run("signed to unsigned", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			values.UInt8Value(255),
			values.Int8Value(-1).AsUnsigned(),
		)
		assert.Equal(t,
			values.UInt16Value(0x8000),
			values.MinInt16Value.AsUnsigned(),
		)
	})

	t.Run("unsigned to signed", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			values.Int8Value(-1),
			values.UInt8Value(255).AsSigned(),
		)
	})

	t.Run("round-trip", func(t *testing.T) {
		t.Parallel()

		v := values.Int32Value(-123456)
		assert.Equal(t, v, v.AsUnsigned().AsSigned())
	})
}

func TestNewFromAddress(t *testing.T) {

	t.Parallel()

	address := uintptr(0x1234_5678_9ABC_DEF0)

	assert.Equal(t,
		values.UInt8Value(0xF0),
		values.NewUInt8ValueFromAddress(address),
	)
	assert.Equal(t,
		values.UInt16Value(0xDEF0),
		values.NewUInt16ValueFromAddress(address),
	)
	assert.Equal(t,
		values.UInt32Value(0x9ABC_DEF0),
		values.NewUInt32ValueFromAddress(address),
	)
	assert.Equal(t,
		values.Int8Value(-16),
		values.NewInt8ValueFromAddress(address),
	)
}
