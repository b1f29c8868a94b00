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

import "fmt"

// Value

type Value interface {
	isValue()
	fmt.Stringer
}

// NumberValue

type NumberValue interface {
	Value
	ToBigEndianBytes() []byte
}

// IntegerValue is implemented by all fixed-width integer value types.
//
// ToInt64 and ToUint64 expose the stored bit pattern sign- and
// zero-extended respectively; conversions consult IsSigned before
// choosing which one to trust.
type IntegerValue interface {
	NumberValue
	IsSigned() bool
	BitSize() int
	ToInt64() int64
	ToUint64() uint64
	ToHex() string
}

// EquatableValue

type EquatableValue interface {
	Value
	// Equal returns true if the given value is equal to this value.
	// Values of a different type are never equal.
	Equal(other Value) bool
}
