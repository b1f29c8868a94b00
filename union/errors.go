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

	"github.com/hallowlang/primitive/errors"
)

// WrongActiveTypeError

// WrongActiveTypeError is raised when a checked union accessor is
// invoked while the union holds a different member, or no member at all.
type WrongActiveTypeError struct {
	Expected string
	Actual   string
}

var _ errors.UserError = &WrongActiveTypeError{}

func (WrongActiveTypeError) IsUserError() {}

func (e WrongActiveTypeError) Error() string {
	return fmt.Sprintf(
		"wrong active type: expected %s, union holds %s",
		e.Expected,
		e.Actual,
	)
}

// WrongKindError

// WrongKindError is raised when a checked variant accessor is invoked
// while the variant's discriminant marks a different payload kind.
type WrongKindError struct {
	Expected VariantKind
	Actual   VariantKind
}

var _ errors.UserError = &WrongKindError{}

func (WrongKindError) IsUserError() {}

func (e WrongKindError) Error() string {
	return fmt.Sprintf(
		"wrong kind: expected %s, variant holds %s",
		e.Expected,
		e.Actual,
	)
}
