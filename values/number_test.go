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

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hallowlang/primitive/values"
)

func TestWrappingAdditionIsModular(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("UInt8 addition wraps modulo 2^8", prop.ForAll(
		func(a uint8, b uint8) bool {
			expected := values.UInt8Value((uint64(a) + uint64(b)) % 256)
			return values.UInt8Value(a).Plus(values.UInt8Value(b)) == expected
		},
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.Property("UInt16 addition wraps modulo 2^16", prop.ForAll(
		func(a uint16, b uint16) bool {
			expected := values.UInt16Value((uint64(a) + uint64(b)) % 65536)
			return values.UInt16Value(a).Plus(values.UInt16Value(b)) == expected
		},
		gen.UInt16(),
		gen.UInt16(),
	))

	properties.TestingRun(t)
}

func TestCheckedAgreesWithWrappingInRange(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("checked addition equals wrapping addition when the sum fits", prop.ForAll(
		func(a int32, b int32) bool {
			sum := int64(a) + int64(b)
			if sum < math.MinInt32 || sum > math.MaxInt32 {
				return true
			}
			av := values.Int32Value(a)
			bv := values.Int32Value(b)
			return av.CheckedPlus(bv) == av.Plus(bv)
		},
		gen.Int32(),
		gen.Int32(),
	))

	properties.Property("checked subtraction equals wrapping subtraction when the difference fits", prop.ForAll(
		func(a int32, b int32) bool {
			diff := int64(a) - int64(b)
			if diff < math.MinInt32 || diff > math.MaxInt32 {
				return true
			}
			av := values.Int32Value(a)
			bv := values.Int32Value(b)
			return av.CheckedMinus(bv) == av.Minus(bv)
		},
		gen.Int32(),
		gen.Int32(),
	))

	properties.Property("checked multiplication equals wrapping multiplication when the product fits", prop.ForAll(
		func(a int16, b int16) bool {
			product := int64(a) * int64(b)
			if product < math.MinInt16 || product > math.MaxInt16 {
				return true
			}
			av := values.Int16Value(a)
			bv := values.Int16Value(b)
			return av.CheckedMul(bv) == av.Mul(bv)
		},
		gen.Int16(),
		gen.Int16(),
	))

	properties.TestingRun(t)
}

func TestCheckedFailsExactlyOutOfRange(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("checked addition fails iff the exact sum is out of range", prop.ForAll(
		func(a int8, b int8) bool {
			sum := int64(a) + int64(b)
			outOfRange := sum < math.MinInt8 || sum > math.MaxInt8

			failed := false
			func() {
				defer func() {
					if recover() != nil {
						failed = true
					}
				}()
				values.Int8Value(a).CheckedPlus(values.Int8Value(b))
			}()

			return failed == outOfRange
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("checked multiplication fails iff the exact product is out of range", prop.ForAll(
		func(a int8, b int8) bool {
			product := int64(a) * int64(b)
			outOfRange := product < math.MinInt8 || product > math.MaxInt8

			failed := false
			func() {
				defer func() {
					if recover() != nil {
						failed = true
					}
				}()
				values.Int8Value(a).CheckedMul(values.Int8Value(b))
			}()

			return failed == outOfRange
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.TestingRun(t)
}

func TestSignednessRoundTrip(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("reinterpretation round-trips for any bit pattern", prop.ForAll(
		func(v int32) bool {
			original := values.Int32Value(v)
			return original.AsUnsigned().AsSigned() == original
		},
		gen.Int32(),
	))

	properties.Property("conversion round-trips for non-negative values", prop.ForAll(
		func(v int32) bool {
			original := values.Int32Value(v)
			return values.ConvertInt32(values.ConvertUInt32(original)) == original
		},
		gen.Int32Range(0, math.MaxInt32),
	))

	properties.TestingRun(t)
}

func TestHexWidth(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("hex rendering has two digits per byte", prop.ForAll(
		func(v uint8) bool {
			return len(values.UInt8Value(v).ToHex()) == 2+2
		},
		gen.UInt8(),
	))

	properties.Property("hex rendering of a 64-bit value has sixteen digits", prop.ForAll(
		func(v uint64) bool {
			return len(values.UInt64Value(v).ToHex()) == 2+16
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestBigEndianBytesWidth(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("encoded length matches the bit width", prop.ForAll(
		func(v int64) bool {
			return len(values.Int8Value(v).ToBigEndianBytes()) == 1 &&
				len(values.Int16Value(v).ToBigEndianBytes()) == 2 &&
				len(values.Int32Value(v).ToBigEndianBytes()) == 4 &&
				len(values.Int64Value(v).ToBigEndianBytes()) == 8
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
