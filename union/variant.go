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

package union

import (
	"fmt"
	"unsafe"

	"github.com/hallowlang/primitive/errors"
	"github.com/hallowlang/primitive/format"
)

// VariantKind

// VariantKind is the discriminant of a Variant. The numeric values are
// part of the binary contract with embedding code and must not change.
type VariantKind int32

const (
	VariantKindFloat VariantKind = iota
	VariantKindChar
	VariantKindValuePtr
	VariantKindInt
	VariantKindUInt
)

func (k VariantKind) String() string {
	switch k {
	case VariantKindFloat:
		return "Float"
	case VariantKindChar:
		return "Char"
	case VariantKindValuePtr:
		return "ValuePtr"
	case VariantKindInt:
		return "Int"
	case VariantKindUInt:
		return "UInt"
	default:
		return "<invalid>"
	}
}

// Variant

// Variant is a two-field variant record: a discriminant identifying the
// payload kind, and an 8-byte payload slot shared by all kinds. The
// discriminant is the first field at offset 0 and the payload begins at
// the next 8-aligned offset; embedding code relies on this layout.
//
// The discriminant always matches the last-written payload kind. Reading
// the slot through another interpretation is a well-defined bit
// reinterpretation via VariantAs, not an error.
//
// A pointer payload is a back-reference: it is never owned, followed, or
// freed by the variant, and the holder must keep the pointee reachable
// and release it separately.
//
// The zero Variant reads as a Float holding 0.
type Variant struct {
	kind    VariantKind
	payload uint64
}

func NewFloatVariant(value float64) Variant {
	var v Variant
	v.SetFloat(value)
	return v
}

func NewCharVariant(value byte) Variant {
	var v Variant
	v.SetChar(value)
	return v
}

func NewValuePtrVariant(value *Variant) Variant {
	var v Variant
	v.SetValuePtr(value)
	return v
}

func NewIntVariant(value int32) Variant {
	var v Variant
	v.SetInt(value)
	return v
}

func NewUIntVariant(value uint32) Variant {
	var v Variant
	v.SetUInt(value)
	return v
}

// Kind returns the discriminant.
func (v Variant) Kind() VariantKind {
	return v.kind
}

// Setters overwrite the discriminant and the payload together.
// They always succeed.

func (v *Variant) SetFloat(value float64) {
	v.kind = VariantKindFloat
	v.payload = 0
	*(*float64)(unsafe.Pointer(&v.payload)) = value
}

func (v *Variant) SetChar(value byte) {
	v.kind = VariantKindChar
	v.payload = 0
	*(*byte)(unsafe.Pointer(&v.payload)) = value
}

func (v *Variant) SetValuePtr(value *Variant) {
	v.kind = VariantKindValuePtr
	v.payload = 0
	*(**Variant)(unsafe.Pointer(&v.payload)) = value
}

func (v *Variant) SetInt(value int32) {
	v.kind = VariantKindInt
	v.payload = 0
	*(*int32)(unsafe.Pointer(&v.payload)) = value
}

func (v *Variant) SetUInt(value uint32) {
	v.kind = VariantKindUInt
	v.payload = 0
	*(*uint32)(unsafe.Pointer(&v.payload)) = value
}

// Checked accessors fail with WrongKindError if the discriminant does
// not match.

func (v Variant) AsFloat() float64 {
	if v.kind != VariantKindFloat {
		panic(&WrongKindError{
			Expected: VariantKindFloat,
			Actual:   v.kind,
		})
	}
	return *(*float64)(unsafe.Pointer(&v.payload))
}

func (v Variant) AsChar() byte {
	if v.kind != VariantKindChar {
		panic(&WrongKindError{
			Expected: VariantKindChar,
			Actual:   v.kind,
		})
	}
	return *(*byte)(unsafe.Pointer(&v.payload))
}

func (v Variant) AsValuePtr() *Variant {
	if v.kind != VariantKindValuePtr {
		panic(&WrongKindError{
			Expected: VariantKindValuePtr,
			Actual:   v.kind,
		})
	}
	return *(**Variant)(unsafe.Pointer(&v.payload))
}

func (v Variant) AsInt() int32 {
	if v.kind != VariantKindInt {
		panic(&WrongKindError{
			Expected: VariantKindInt,
			Actual:   v.kind,
		})
	}
	return *(*int32)(unsafe.Pointer(&v.payload))
}

func (v Variant) AsUInt() uint32 {
	if v.kind != VariantKindUInt {
		panic(&WrongKindError{
			Expected: VariantKindUInt,
			Actual:   v.kind,
		})
	}
	return *(*uint32)(unsafe.Pointer(&v.payload))
}

func (v Variant) IsFloat() bool {
	return v.kind == VariantKindFloat
}

func (v Variant) IsChar() bool {
	return v.kind == VariantKindChar
}

func (v Variant) IsValuePtr() bool {
	return v.kind == VariantKindValuePtr
}

func (v Variant) IsInt() bool {
	return v.kind == VariantKindInt
}

func (v Variant) IsUInt() bool {
	return v.kind == VariantKindUInt
}

// VariantAs reinterprets the variant's payload slot as T without
// checking the discriminant. It never fails; the result is well defined
// only if T's representation fits within the 8-byte payload slot.
func VariantAs[T any](v *Variant) T {
	var zero T
	if unsafe.Sizeof(zero) > unsafe.Sizeof(v.payload) {
		panic(errors.NewUnreachableError())
	}
	return *(*T)(unsafe.Pointer(&v.payload))
}

func (v Variant) String() string {
	switch v.kind {
	case VariantKindFloat:
		return "Float: " + format.Float64(*(*float64)(unsafe.Pointer(&v.payload)))
	case VariantKindChar:
		return fmt.Sprintf("Char: %q", *(*byte)(unsafe.Pointer(&v.payload)))
	case VariantKindValuePtr:
		return fmt.Sprintf("ValuePtr: %p", *(**Variant)(unsafe.Pointer(&v.payload)))
	case VariantKindInt:
		return "Int: " + format.Int(int64(*(*int32)(unsafe.Pointer(&v.payload))))
	case VariantKindUInt:
		return "UInt: " + format.Uint(uint64(*(*uint32)(unsafe.Pointer(&v.payload))))
	default:
		return "<invalid>"
	}
}
