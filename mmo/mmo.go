/*
   mmixgo - .mmo object file writer/loader.

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

// Package mmo reads and writes the assembler's object file format: a
// minimal, from-scratch record layout (not Knuth's tumbled lop-code
// format) that round-trips an Image's segments, global-register presets
// and entry point.
package mmo

import (
	"encoding/binary"
	"fmt"
	"io"

	"mmixgo/asm"
)

var magic = [4]byte{'M', 'M', 'O', '1'}

// Write serializes img as: magic, then one (address uint64 BE, length
// uint32 BE, bytes) record per segment, a zero-length record to mark the
// end of segments, a wyde count of global-register presets, one (index
// byte, value uint64 BE) pair per preset, and finally the entry point as
// a uint64 BE trailer.
func Write(w io.Writer, img *asm.Image) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	for _, seg := range img.Segments {
		if err := writeSegment(w, seg.Addr, seg.Bytes); err != nil {
			return err
		}
	}
	if err := writeSegment(w, 0, nil); err != nil { // zero-length terminator
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(img.Globals))); err != nil {
		return err
	}
	for idx, v := range img.Globals {
		if err := binary.Write(w, binary.BigEndian, byte(idx)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.BigEndian, img.Entry)
}

func writeSegment(w io.Writer, addr uint64, bytes []byte) error {
	if err := binary.Write(w, binary.BigEndian, addr); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(bytes))); err != nil {
		return err
	}
	if len(bytes) == 0 {
		return nil
	}
	_, err := w.Write(bytes)
	return err
}

// Load reads back an Image written by Write.
func Load(r io.Reader) (*asm.Image, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, fmt.Errorf("mmo: reading magic: %w", err)
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("mmo: bad magic %q, want %q", gotMagic, magic)
	}

	img := &asm.Image{Globals: make(map[int]uint64)}
	for {
		var addr uint64
		var length uint32
		if err := binary.Read(r, binary.BigEndian, &addr); err != nil {
			return nil, fmt.Errorf("mmo: reading segment address: %w", err)
		}
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			return nil, fmt.Errorf("mmo: reading segment length: %w", err)
		}
		if length == 0 {
			break
		}
		bytes := make([]byte, length)
		if _, err := io.ReadFull(r, bytes); err != nil {
			return nil, fmt.Errorf("mmo: reading segment bytes: %w", err)
		}
		img.Segments = append(img.Segments, asm.Segment{Addr: addr, Bytes: bytes})
	}

	var count uint16
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("mmo: reading global count: %w", err)
	}
	for i := uint16(0); i < count; i++ {
		var idx byte
		var v uint64
		if err := binary.Read(r, binary.BigEndian, &idx); err != nil {
			return nil, fmt.Errorf("mmo: reading global register index: %w", err)
		}
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return nil, fmt.Errorf("mmo: reading global register value: %w", err)
		}
		img.Globals[int(idx)] = v
	}

	if err := binary.Read(r, binary.BigEndian, &img.Entry); err != nil {
		return nil, fmt.Errorf("mmo: reading entry point: %w", err)
	}
	return img, nil
}
