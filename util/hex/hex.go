/*
 * mmixgo - Convert hex to strings.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package hex formats MMIX octas/tetras/wydes for instruction and TRAP
// trace logging.
package hex

import "strings"

var hexMap = "0123456789ABCDEF"

// FormatOcta writes a 64-bit value as 16 hex digits.
func FormatOcta(str *strings.Builder, value uint64) {
	shift := 60
	for range 16 {
		str.WriteByte(hexMap[(value>>shift)&0xf])
		shift -= 4
	}
}

// FormatTetra writes a 32-bit value as 8 hex digits.
func FormatTetra(str *strings.Builder, value uint32) {
	shift := 28
	for range 8 {
		str.WriteByte(hexMap[(value>>shift)&0xf])
		shift -= 4
	}
}

// FormatWyde writes a 16-bit value as 4 hex digits.
func FormatWyde(str *strings.Builder, value uint16) {
	shift := 12
	for range 4 {
		str.WriteByte(hexMap[(value>>shift)&0xf])
		shift -= 4
	}
}

// FormatByte writes an 8-bit value as 2 hex digits.
func FormatByte(str *strings.Builder, value byte) {
	str.WriteByte(hexMap[(value>>4)&0xf])
	str.WriteByte(hexMap[value&0xf])
}

// FormatBytes writes a byte slice as space separated hex pairs.
func FormatBytes(str *strings.Builder, space bool, data []byte) {
	for _, by := range data {
		FormatByte(str, by)
		if space {
			str.WriteByte(' ')
		}
	}
}

// Octa returns the canonical 16 hex digit rendering of value, e.g. for
// trace log attributes.
func Octa(value uint64) string {
	var b strings.Builder
	FormatOcta(&b, value)
	return b.String()
}

// Tetra returns the canonical 8 hex digit rendering of value.
func Tetra(value uint32) string {
	var b strings.Builder
	FormatTetra(&b, value)
	return b.String()
}

// Byte returns the canonical 2 hex digit rendering of value, e.g. for an
// opcode or TRAP argument in a trace log attribute.
func Byte(value byte) string {
	var b strings.Builder
	FormatByte(&b, value)
	return b.String()
}
