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

package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hallowlang/primitive/format"
)

func TestPadLeft(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "00ff", format.PadLeft("ff", '0', 4))
	assert.Equal(t, "ff", format.PadLeft("ff", '0', 2))
	assert.Equal(t, "ff", format.PadLeft("ff", '0', 1))
	assert.Equal(t, "", format.PadLeft("", '0', 0))
	assert.Equal(t, "000", format.PadLeft("", '0', 3))
}

func TestHex(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "0x00", format.Hex(0, 2))
	assert.Equal(t, "0xFF", format.Hex(0xff, 2))
	assert.Equal(t, "0x002A", format.Hex(42, 4))
	assert.Equal(t, "0xDEADBEEF", format.Hex(0xdeadbeef, 8))
	assert.Equal(t, "0x0000000000000001", format.Hex(1, 16))
	assert.Equal(t, "0xFFFFFFFFFFFFFFFF", format.Hex(^uint64(0), 16))
}

func TestInt(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "-128", format.Int(-128))
	assert.Equal(t, "0", format.Int(0))
	assert.Equal(t, "9223372036854775807", format.Int(9223372036854775807))
}

func TestUint(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "0", format.Uint(0))
	assert.Equal(t, "18446744073709551615", format.Uint(^uint64(0)))
}

func TestFloat(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "4.2", format.Float64(4.2))
	assert.Equal(t, "-0.5", format.Float64(-0.5))
	assert.Equal(t, "1e+100", format.Float64(1e100))
	assert.Equal(t, "1.5", format.Float32(1.5))
}
