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

// Alloc allocates zeroed storage for a single T. There is no matching
// release call: storage is reclaimed by the garbage collector when the
// caller drops its last reference. No arena or pool policy is implied.
func Alloc[T any]() *T {
	return new(T)
}

// AllocVariant allocates a zeroed Variant, which reads as a Float
// holding 0.
func AllocVariant() *Variant {
	return Alloc[Variant]()
}
