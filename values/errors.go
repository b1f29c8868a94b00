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
	"fmt"

	"github.com/hallowlang/primitive/errors"
)

// Checked operations fail by panicking with one of the error values below.
// A failing operation panics before mutating anything, so callers that
// recover observe the operands unchanged.

// OverflowError

type OverflowError struct{}

var _ errors.UserError = &OverflowError{}

func (OverflowError) IsUserError() {}

func (OverflowError) Error() string {
	return "overflow"
}

// UnderflowError

type UnderflowError struct{}

var _ errors.UserError = &UnderflowError{}

func (UnderflowError) IsUserError() {}

func (UnderflowError) Error() string {
	return "underflow"
}

// DivisionByZeroError

type DivisionByZeroError struct{}

var _ errors.UserError = &DivisionByZeroError{}

func (DivisionByZeroError) IsUserError() {}

func (DivisionByZeroError) Error() string {
	return "division by zero"
}

// ShiftOutOfRangeError

// ShiftOutOfRangeError is raised when a shift amount is negative
// or not smaller than the operand's bit width.
type ShiftOutOfRangeError struct{}

var _ errors.UserError = &ShiftOutOfRangeError{}

func (ShiftOutOfRangeError) IsUserError() {}

func (ShiftOutOfRangeError) Error() string {
	return "shift amount out of range"
}

// OutOfRangeError

// OutOfRangeError is raised when a conversion's source value cannot be
// represented in the target type.
type OutOfRangeError struct {
	Target string
}

var _ errors.UserError = &OutOfRangeError{}

func (OutOfRangeError) IsUserError() {}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("value out of range for %s", e.Target)
}

// NegativeToUnsignedError

// NegativeToUnsignedError is raised when a negative signed value is
// converted to an unsigned type.
type NegativeToUnsignedError struct {
	Target string
}

var _ errors.UserError = &NegativeToUnsignedError{}

func (NegativeToUnsignedError) IsUserError() {}

func (e NegativeToUnsignedError) Error() string {
	return fmt.Sprintf("negative value cannot be converted to %s", e.Target)
}
