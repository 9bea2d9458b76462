/*
   MMIX register file and register ring.

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

package vm

import "mmixgo/opcode"

// Registers holds the 256 general registers, split into a windowed local
// half (renamed by PUSHJ/POP) and a flat global half at or above
// threshold, plus the 32 special registers.
//
// The register ring is modeled as a stack of saved local windows rather
// than a single aliased buffer: PUSHJ snapshots the caller's window and
// builds the callee's window by shifting the caller's registers down by X;
// POP restores the caller's snapshot and splices in the callee's top n
// results at $X.. This keeps "registers below $X preserved" and
// "registers above the window restored" true without bespoke bookkeeping,
// per the minimal-ring allowance in the design notes.
type Registers struct {
	local     [256]uint64
	global    [256]uint64
	threshold int
	frames    []pushFrame
	Special   [32]uint64
}

type pushFrame struct {
	saved   [256]uint64
	entryX  int
}

// NewRegisters returns a register file with the standard global threshold
// and rN set to the fixed serial number.
func NewRegisters() *Registers {
	r := &Registers{threshold: opcode.DefaultGlobalThreshold}
	r.Special[opcode.RN] = opcode.SerialNumber
	return r
}

// Get returns the value of general register n (0..255).
func (r *Registers) Get(n int) uint64 {
	if n >= r.threshold {
		return r.global[n]
	}
	return r.local[n]
}

// Set stores value into general register n (0..255).
func (r *Registers) Set(n int, value uint64) {
	if n >= r.threshold {
		r.global[n] = value
		return
	}
	r.local[n] = value
}

// Threshold returns rG, the lowest register number treated as global.
func (r *Registers) Threshold() int { return r.threshold }

// PushJ implements the windowing side of PUSHJ $X,target: the callee's
// register i becomes the caller's former register x+i.
func (r *Registers) PushJ(x int) {
	saved := r.local
	var callee [256]uint64
	for i := x; i < r.threshold; i++ {
		callee[i-x] = saved[i]
	}
	r.frames = append(r.frames, pushFrame{saved: saved, entryX: x})
	r.local = callee
}

// Pop implements the windowing side of POP n,YZ: the caller's window is
// restored, with its registers $X..$X+n-1 replaced by the callee's $0..$n-1
// at the moment of return.
func (r *Registers) Pop(n int) {
	if len(r.frames) == 0 {
		return
	}
	f := r.frames[len(r.frames)-1]
	r.frames = r.frames[:len(r.frames)-1]
	result := r.local
	restored := f.saved
	for i := range n {
		idx := f.entryX + i
		if idx >= 0 && idx < r.threshold {
			restored[idx] = result[i]
		}
	}
	r.local = restored
}

// Depth reports how many PUSHJ frames are currently open.
func (r *Registers) Depth() int { return len(r.frames) }
