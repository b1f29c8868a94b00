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

package errors

import (
	"fmt"
	"runtime/debug"
)

// InternalError is an implementation error, e.g. an unreachable code path
// (UnreachableError). A program should never throw an InternalError in an
// ideal world.
//
// InternalError s must always be thrown and not be caught (recovered),
// i.e. be propagated up the call stack.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by the values a caller passed in,
// e.g. a checked arithmetic operation that overflows.
// Callers are expected to recover UserError s and translate them
// into whatever diagnostic surface they maintain.
type UserError interface {
	error
	IsUserError()
}

// UnreachableError

// UnreachableError is an internal error which should have never occurred
// due to a programming error in this library or a misuse of its API
// that cannot be expressed as a UserError.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (e UnreachableError) IsInternalError() {}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

// DefaultUserError

// NewDefaultUserError constructs a UserError with a formatted message,
// for failure cases that need no dedicated type.
func NewDefaultUserError(message string, args ...any) *DefaultUserError {
	return &DefaultUserError{
		message: fmt.Sprintf(message, args...),
	}
}

type DefaultUserError struct {
	message string
}

var _ UserError = &DefaultUserError{}

func (e *DefaultUserError) Error() string {
	return e.message
}

func (*DefaultUserError) IsUserError() {}
