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
)

// A Union holds exactly one value out of a fixed, closed list of member
// types, in a byte buffer sized to the largest member. The member list is
// fixed when the Layout is built and cannot be extended afterwards; the
// runtime tag tracks which member is live.
//
// Unions are not synchronized. Set performs destroy-then-construct as two
// steps; callers sharing a Union across goroutines must provide mutual
// exclusion around Set/Reset/accessor sequences.

// EmptyUnion is the tag value of a union holding no live member.
const EmptyUnion = -1

type member struct {
	name string
	size uintptr
	// non-nil for member types whose payloads cannot be duplicated by a
	// plain bit copy
	copy func(dst, src []byte)
	// renders the live payload stored in the buffer
	format func(b []byte) string
	// boxes the payload stored in the buffer, to keep any pointers it
	// carries visible to the garbage collector (the buffer itself is
	// pointer-free memory)
	retain func(b []byte) any
}

// Layout is the dispatch table for one union shape: per-member size and
// behavior, plus the buffer size and alignment maxima. It is built once,
// sealed by the first Union created from it, and shared by all unions of
// that shape.
type Layout struct {
	members []member
	size    uintptr
	align   uintptr
	sealed  bool
}

func NewLayout() *Layout {
	return &Layout{}
}

// Size returns the buffer size of unions with this layout:
// the maximum size across all member types.
func (l *Layout) Size() uintptr {
	return l.size
}

// Alignment returns the maximum alignment across all member types.
func (l *Layout) Alignment() uintptr {
	return l.align
}

// MemberCount returns the number of member types.
func (l *Layout) MemberCount() int {
	return len(l.members)
}

// MemberName returns the name of the member at the given tag index.
func (l *Layout) MemberName(index int) string {
	if index < 0 || index >= len(l.members) {
		panic(errors.NewUnreachableError())
	}
	return l.members[index].name
}

// Member is a typed handle to one member of a union layout. Handles are
// created while the layout is being defined; access through a handle is
// the only checked way in or out of a union, so a payload type that was
// never added to the layout simply has no handle.
type Member[T any] struct {
	layout *Layout
	index  int
}

// AddMember adds a member type to a layout under construction and
// returns its typed handle. The member's payload is duplicated by bit
// copy; use AddMemberFunc for payload types with non-trivial copy
// behavior. Adding a member after a Union has been created from the
// layout is a programming error.
func AddMember[T any](l *Layout, name string) Member[T] {
	return addMember[T](l, name, nil)
}

// AddMemberFunc is AddMember for payload types whose copy semantics are
// not a plain bit copy: copyFn runs whenever a union holding this member
// is duplicated.
func AddMemberFunc[T any](l *Layout, name string, copyFn func(T) T) Member[T] {
	if copyFn == nil {
		panic(errors.NewUnreachableError())
	}
	return addMember[T](l, name, copyFn)
}

func addMember[T any](l *Layout, name string, copyFn func(T) T) Member[T] {
	if l.sealed {
		panic(errors.NewUnreachableError())
	}

	var zero T
	size := unsafe.Sizeof(zero)
	align := unsafe.Alignof(zero)
	if size == 0 {
		panic(errors.NewDefaultUserError(
			"union member %s has zero size",
			name,
		))
	}

	m := member{
		name: name,
		size: size,
		format: func(b []byte) string {
			return fmt.Sprint(*payload[T](b))
		},
		retain: func(b []byte) any {
			return *payload[T](b)
		},
	}
	if copyFn != nil {
		m.copy = func(dst, src []byte) {
			*payload[T](dst) = copyFn(*payload[T](src))
		}
	}

	l.members = append(l.members, m)
	if size > l.size {
		l.size = size
	}
	if align > l.align {
		l.align = align
	}
	// the buffer size is a multiple of the alignment,
	// like sizeof of the equivalent C union
	l.size = (l.size + l.align - 1) &^ (l.align - 1)

	return Member[T]{
		layout: l,
		index:  len(l.members) - 1,
	}
}

// payload views the start of a union buffer as a *T.
// The buffer size is rounded up to a multiple of the layout alignment,
// so the allocation lands in a size class aligned at least that much.
func payload[T any](b []byte) *T {
	return (*T)(unsafe.Pointer(&b[0]))
}

// Union

type Union struct {
	layout *Layout
	data   []byte
	active int
	// boxed copy of the live payload. The data buffer is pointer-free
	// memory, so this is what keeps a pointer-carrying payload's
	// pointees reachable while the member is live.
	live any
}

// New creates an empty union with the given layout and seals the layout.
func New(layout *Layout) *Union {
	if len(layout.members) == 0 {
		panic(errors.NewDefaultUserError("union layout has no members"))
	}
	layout.sealed = true
	return &Union{
		layout: layout,
		data:   make([]byte, layout.size),
		active: EmptyUnion,
	}
}

// Layout returns the union's layout.
func (u *Union) Layout() *Layout {
	return u.layout
}

// Active returns the tag index of the live member, or EmptyUnion.
func (u *Union) Active() int {
	return u.active
}

// IsEmpty returns true if no member is live.
func (u *Union) IsEmpty() bool {
	return u.active == EmptyUnion
}

// Reset destroys the live payload, if any, and leaves the union empty.
// It is a no-op on an already empty union.
func (u *Union) Reset() {
	if u.active == EmptyUnion {
		return
	}
	clear(u.data)
	u.active = EmptyUnion
	u.live = nil
}

// Clone returns a new union holding a copy of this union's live payload
// and tag. Members registered with AddMemberFunc are duplicated through
// their copy function rather than bit-copied.
func (u *Union) Clone() *Union {
	c := &Union{
		layout: u.layout,
		data:   make([]byte, u.layout.size),
		active: u.active,
	}
	copy(c.data, u.data)
	if u.active != EmptyUnion {
		m := u.layout.members[u.active]
		if m.copy != nil {
			m.copy(c.data, u.data)
		}
		c.live = m.retain(c.data)
	}
	return c
}

// CopyFrom replaces this union's payload with a copy of the other
// union's payload and tag. Copying a union onto itself is a no-op.
func (u *Union) CopyFrom(other *Union) {
	if u == other {
		return
	}
	if u.layout != other.layout {
		panic(errors.NewUnreachableError())
	}
	u.Reset()
	copy(u.data, other.data)
	u.active = other.active
	if u.active != EmptyUnion {
		m := u.layout.members[u.active]
		if m.copy != nil {
			m.copy(u.data, other.data)
		}
		u.live = m.retain(u.data)
	}
}

// MoveFrom transfers the other union's payload and tag into this union
// and leaves the other union empty. The payload is not destroyed and not
// re-copied; ownership transfers. Moving a union onto itself is a no-op.
func (u *Union) MoveFrom(other *Union) {
	if u == other {
		return
	}
	if u.layout != other.layout {
		panic(errors.NewUnreachableError())
	}
	u.Reset()
	copy(u.data, other.data)
	u.active = other.active
	u.live = other.live
	other.active = EmptyUnion
	other.live = nil
}

func (u *Union) String() string {
	if u.active == EmptyUnion {
		return "<empty>"
	}
	return u.layout.members[u.active].format(u.data)
}

// Member accessors

func (m Member[T]) checkLayout(u *Union) {
	if u.layout != m.layout {
		panic(errors.NewUnreachableError())
	}
}

// Set destroys the union's live payload, if any, then constructs the
// given value in the buffer and marks this member live.
func (m Member[T]) Set(u *Union, value T) {
	m.checkLayout(u)
	u.Reset()
	*payload[T](u.data) = value
	u.active = m.index
	u.live = value
}

// Get returns the live payload. It fails with WrongActiveTypeError if
// this member is not live, including when the union is empty.
func (m Member[T]) Get(u *Union) T {
	m.checkLayout(u)
	if u.active != m.index {
		panic(&WrongActiveTypeError{
			Expected: m.layout.members[m.index].name,
			Actual:   u.activeName(),
		})
	}
	return *payload[T](u.data)
}

// Is returns true if this member is live. It never fails.
func (m Member[T]) Is(u *Union) bool {
	m.checkLayout(u)
	return u.active == m.index
}

func (u *Union) activeName() string {
	if u.active == EmptyUnion {
		return "<empty>"
	}
	return u.layout.members[u.active].name
}

// As reinterprets the union's raw buffer as T regardless of which member
// is live. It has no failure mode: the result is well defined only if
// the live member's representation is compatible with T. This is the
// explicitly unsafe escape hatch; use a Member handle for checked
// access.
func As[T any](u *Union) T {
	var zero T
	if unsafe.Sizeof(zero) > uintptr(len(u.data)) {
		panic(errors.NewUnreachableError())
	}
	return *payload[T](u.data)
}
