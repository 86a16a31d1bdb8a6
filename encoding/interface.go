/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package encoding provides a unified Coder interface for encoding and decoding operations.
//
// This package defines the Coder interface implemented by aes, the per-entry
// authenticated encryption codec archive/zip uses for password-protected entries.
//
// Example usage:
//
//	import encaes "github.com/nabbar/zipper/encoding/aes"
//
//	coder, _ := encaes.New(key, nonce)
//	ciphertext := coder.Encode(plaintext)
package encoding

// Coder is the unified interface for encoding and decoding operations.
//
// Implementations:
//   - aes.New(): AES-256-GCM encryption/decryption
type Coder interface {
	// Encode encodes the given byte slice.
	Encode(p []byte) []byte

	// Decode decodes the given byte slice, reporting an error on authentication failure.
	Decode(p []byte) ([]byte, error)
}
