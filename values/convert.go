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

	"github.com/hallowlang/primitive/errors"
)

// Conversions between the fixed-width integer types are explicit and
// named per target type. Each conversion checks the source value against
// the target range:
//
//   - unsigned to signed fails with OutOfRangeError if the source
//     exceeds the target's maximum
//   - signed to unsigned fails with NegativeToUnsignedError if the
//     source is negative, and with OutOfRangeError if it still exceeds
//     the target's maximum when narrowing
//   - narrowing within the same signedness fails with OutOfRangeError
//     if the source is out of the target range
//
// Floating-point sources are not accepted by the integer conversions;
// there is deliberately no such function.

func ConvertInt8(value IntegerValue) Int8Value {
	if value.IsSigned() {
		v := value.ToInt64()
		if v < math.MinInt8 || v > math.MaxInt8 {
			panic(&OutOfRangeError{Target: "Int8"})
		}
		return Int8Value(v)
	}
	v := value.ToUint64()
	if v > math.MaxInt8 {
		panic(&OutOfRangeError{Target: "Int8"})
	}
	return Int8Value(v)
}

func ConvertInt16(value IntegerValue) Int16Value {
	if value.IsSigned() {
		v := value.ToInt64()
		if v < math.MinInt16 || v > math.MaxInt16 {
			panic(&OutOfRangeError{Target: "Int16"})
		}
		return Int16Value(v)
	}
	v := value.ToUint64()
	if v > math.MaxInt16 {
		panic(&OutOfRangeError{Target: "Int16"})
	}
	return Int16Value(v)
}

func ConvertInt32(value IntegerValue) Int32Value {
	if value.IsSigned() {
		v := value.ToInt64()
		if v < math.MinInt32 || v > math.MaxInt32 {
			panic(&OutOfRangeError{Target: "Int32"})
		}
		return Int32Value(v)
	}
	v := value.ToUint64()
	if v > math.MaxInt32 {
		panic(&OutOfRangeError{Target: "Int32"})
	}
	return Int32Value(v)
}

func ConvertInt64(value IntegerValue) Int64Value {
	if value.IsSigned() {
		return Int64Value(value.ToInt64())
	}
	v := value.ToUint64()
	if v > math.MaxInt64 {
		panic(&OutOfRangeError{Target: "Int64"})
	}
	return Int64Value(v)
}

func ConvertUInt8(value IntegerValue) UInt8Value {
	if value.IsSigned() {
		v := value.ToInt64()
		if v < 0 {
			panic(&NegativeToUnsignedError{Target: "UInt8"})
		}
		if v > math.MaxUint8 {
			panic(&OutOfRangeError{Target: "UInt8"})
		}
		return UInt8Value(v)
	}
	v := value.ToUint64()
	if v > math.MaxUint8 {
		panic(&OutOfRangeError{Target: "UInt8"})
	}
	return UInt8Value(v)
}

func ConvertUInt16(value IntegerValue) UInt16Value {
	if value.IsSigned() {
		v := value.ToInt64()
		if v < 0 {
			panic(&NegativeToUnsignedError{Target: "UInt16"})
		}
		if v > math.MaxUint16 {
			panic(&OutOfRangeError{Target: "UInt16"})
		}
		return UInt16Value(v)
	}
	v := value.ToUint64()
	if v > math.MaxUint16 {
		panic(&OutOfRangeError{Target: "UInt16"})
	}
	return UInt16Value(v)
}

func ConvertUInt32(value IntegerValue) UInt32Value {
	if value.IsSigned() {
		v := value.ToInt64()
		if v < 0 {
			panic(&NegativeToUnsignedError{Target: "UInt32"})
		}
		if v > math.MaxUint32 {
			panic(&OutOfRangeError{Target: "UInt32"})
		}
		return UInt32Value(v)
	}
	v := value.ToUint64()
	if v > math.MaxUint32 {
		panic(&OutOfRangeError{Target: "UInt32"})
	}
	return UInt32Value(v)
}

func ConvertUInt64(value IntegerValue) UInt64Value {
	if value.IsSigned() {
		v := value.ToInt64()
		if v < 0 {
			panic(&NegativeToUnsignedError{Target: "UInt64"})
		}
		return UInt64Value(v)
	}
	return UInt64Value(value.ToUint64())
}

// ConvertFloat64 accepts any numeric value. Floating ranges are
// effectively unbounded for these widths, so the conversion never fails.
func ConvertFloat64(value NumberValue) Float64Value {
	switch value := value.(type) {
	case Float64Value:
		return value

	case Float32Value:
		return Float64Value(value)

	case IntegerValue:
		if value.IsSigned() {
			return Float64Value(value.ToInt64())
		}
		return Float64Value(value.ToUint64())

	default:
		panic(errors.NewUnreachableError())
	}
}

// ConvertFloat32 accepts any numeric value. Sources beyond the
// single-precision range round to infinity per IEEE semantics; the
// conversion never fails.
func ConvertFloat32(value NumberValue) Float32Value {
	switch value := value.(type) {
	case Float32Value:
		return value

	case Float64Value:
		return Float32Value(value)

	case IntegerValue:
		if value.IsSigned() {
			return Float32Value(value.ToInt64())
		}
		return Float32Value(value.ToUint64())

	default:
		panic(errors.NewUnreachableError())
	}
}
