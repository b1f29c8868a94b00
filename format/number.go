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

package format

import (
	"strconv"
	"strings"
)

func Int(v int64) string {
	return strconv.FormatInt(v, 10)
}

func Uint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func Float32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func Float64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Hex renders the given bit pattern as an uppercase hexadecimal literal,
// zero-padded to the given number of digits.
// The digit count is two per byte of the rendered type's width,
// so an 8-bit value formats as 0x00..0xFF and a 64-bit value
// as 0x0000000000000000..0xFFFFFFFFFFFFFFFF.
func Hex(v uint64, digits uint) string {
	return "0x" + PadLeft(
		strings.ToUpper(strconv.FormatUint(v, 16)),
		'0',
		digits,
	)
}
