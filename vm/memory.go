/*
   MMIX sparse memory.

   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
*/

// Package vm implements the MMIX register file, sparse memory, instruction
// decoder and executor.
package vm

// Memory is a sparse, byte-addressed, big-endian memory. Pages are
// allocated lazily and zero-filled on first touch; an unmapped page reads
// as all zero. Every access width is derived from a single aligned octa
// read/write pair, per the MMIX "implicit alignment" rule: an access of
// size s at address A is serviced as if it had been made at A &^ (s-1).
type Memory struct {
	pages map[uint64][]byte
}

const (
	pageBits = 12
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

// NewMemory returns an empty memory image.
func NewMemory() *Memory {
	return &Memory{pages: make(map[uint64][]byte)}
}

func (m *Memory) page(addr uint64, alloc bool) []byte {
	idx := addr >> pageBits
	p, ok := m.pages[idx]
	if !ok {
		if !alloc {
			return nil
		}
		p = make([]byte, pageSize)
		m.pages[idx] = p
	}
	return p
}

func (m *Memory) rawByte(addr uint64) byte {
	p := m.page(addr, false)
	if p == nil {
		return 0
	}
	return p[addr&pageMask]
}

func (m *Memory) setRawByte(addr uint64, v byte) {
	p := m.page(addr, true)
	p[addr&pageMask] = v
}

// ReadOcta reads the octa containing addr, aligned to an 8-byte boundary.
func (m *Memory) ReadOcta(addr uint64) uint64 {
	addr &^= 7
	var v uint64
	for i := range uint64(8) {
		v = v<<8 | uint64(m.rawByte(addr+i))
	}
	return v
}

// WriteOcta writes value to the octa containing addr, aligned to an 8-byte
// boundary.
func (m *Memory) WriteOcta(addr, value uint64) {
	addr &^= 7
	for i := range uint64(8) {
		shift := 8 * (7 - i)
		m.setRawByte(addr+i, byte(value>>shift))
	}
}

// readSized derives a narrower, alignment-masked read from ReadOcta.
func (m *Memory) readSized(addr, size uint64) uint64 {
	aligned := addr &^ (size - 1)
	octaAddr := aligned &^ 7
	offset := aligned - octaAddr
	shift := 8 * (8 - offset - size)
	octa := m.ReadOcta(octaAddr)
	if size >= 8 {
		return octa
	}
	mask := (uint64(1) << (8 * size)) - 1
	return (octa >> shift) & mask
}

// writeSized derives a narrower, alignment-masked write from ReadOcta and
// WriteOcta: the containing octa is read, the field replaced, then written
// back whole.
func (m *Memory) writeSized(addr, size, value uint64) {
	aligned := addr &^ (size - 1)
	octaAddr := aligned &^ 7
	if size >= 8 {
		m.WriteOcta(octaAddr, value)
		return
	}
	offset := aligned - octaAddr
	shift := 8 * (8 - offset - size)
	mask := (uint64(1) << (8 * size)) - 1
	octa := m.ReadOcta(octaAddr)
	octa = (octa &^ (mask << shift)) | ((value & mask) << shift)
	m.WriteOcta(octaAddr, octa)
}

func (m *Memory) ReadByte(addr uint64) byte   { return byte(m.readSized(addr, 1)) }
func (m *Memory) ReadWyde(addr uint64) uint16 { return uint16(m.readSized(addr, 2)) }
func (m *Memory) ReadTetra(addr uint64) uint32 { return uint32(m.readSized(addr, 4)) }

func (m *Memory) WriteByte(addr uint64, v byte)    { m.writeSized(addr, 1, uint64(v)) }
func (m *Memory) WriteWyde(addr uint64, v uint16)  { m.writeSized(addr, 2, uint64(v)) }
func (m *Memory) WriteTetra(addr uint64, v uint32) { m.writeSized(addr, 4, uint64(v)) }

// WriteBytes stores data starting at addr, one byte at a time, used by the
// object loader and by BYTE/WYDE/TETRA/OCTA directive emission.
func (m *Memory) WriteBytes(addr uint64, data []byte) {
	for i, b := range data {
		m.setRawByte(addr+uint64(i), b)
	}
}

// ReadCString reads bytes from addr until (and excluding) the first NUL.
func (m *Memory) ReadCString(addr uint64) []byte {
	var out []byte
	for {
		b := m.rawByte(addr)
		if b == 0 {
			return out
		}
		out = append(out, b)
		addr++
	}
}
