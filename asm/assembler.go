package asm

import (
	"errors"
	"fmt"
	"strings"

	"mmixgo/opcode"
)

// Image is the in-memory result of assembling a program: the bytes to
// load at each address, the register values GREG should preset before
// running, and the entry point (the address of the Main label, or the
// first text-segment address if no Main label is defined).
type Image struct {
	Segments []Segment
	Globals  map[int]uint64
	Entry    uint64
}

// Segment is one contiguous run of assembled bytes destined for a single
// base address, matching the record shape written by package mmo.
type Segment struct {
	Addr  uint64
	Bytes []byte
}

// item is one non-blank source line plus its resolved location, recorded
// during pass 1 for replay in pass 2.
type item struct {
	line   Line
	here   uint64
	size   int
	lineNo int // 1-indexed source line, for pass 2 diagnostics
}

// Assembler runs MMIXAL source through a two-pass symbolic assembly: pass
// 1 assigns every label an address (or register number) by walking the
// source and sizing each line without resolving forward references; pass
// 2 re-walks with every symbol available and emits the final bytes.
type Assembler struct {
	Symtab *SymTab

	here       uint64
	gregNext   int
	gregInit   map[int]uint64
	mainEntry  uint64
	haveMain   bool
	items      []item
}

// NewAssembler returns an Assembler with the predefined constants from
// the design's external-interface table already bound: Halt, Fputs,
// StdOut, StdErr and Data_Segment.
func NewAssembler() *Assembler {
	a := &Assembler{
		Symtab:   NewSymTab(),
		here:     opcode.TextSegment,
		gregNext: 255,
		gregInit: make(map[int]uint64),
	}
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(a.Symtab.Define("Halt", opcode.Halt, SymAbsolute))
	must(a.Symtab.Define("Fputs", opcode.Fputs, SymAbsolute))
	must(a.Symtab.Define("StdOut", opcode.StdOut, SymAbsolute))
	must(a.Symtab.Define("StdErr", opcode.StdErr, SymAbsolute))
	must(a.Symtab.Define("Data_Segment", opcode.DataSegment, SymAbsolute))
	return a
}

// Assemble runs both passes over src and returns the resulting Image.
func (a *Assembler) Assemble(src string) (*Image, error) {
	if err := a.pass1(src); err != nil {
		return nil, fmt.Errorf("pass 1: %w", err)
	}
	img, err := a.pass2()
	if err != nil {
		return nil, fmt.Errorf("pass 2: %w", err)
	}
	return img, nil
}

func lineSize(op string, operands []string) (int, bool) {
	switch strings.ToUpper(op) {
	case "LOC", "GREG", "IS":
		return 0, true
	case "BYTE":
		return dataSize(operands, 1), true
	case "WYDE":
		return dataSize(operands, 2), true
	case "TETRA":
		return dataSize(operands, 4), true
	case "OCTA":
		return dataSize(operands, 8), true
	}
	return 0, false
}

// instructionSize returns the byte size pass 1 must reserve for a
// non-directive mnemonic, overriding the opcode table's static entry.size
// where the actual encoding depends on operand syntax. setEncoder emits a
// single OR tetra for a register source but falls back to the four-tetra
// SETL/INCML/INCMH/INCH sequence (setiBytes) for an immediate/expression
// source, so SET's size must track which form pass 2 will emit.
func instructionSize(op string, operands []string, tableSize int) int {
	if op == "SET" && len(operands) == 2 {
		if isRegisterOperand(operands[1]) {
			return 4
		}
		return 16
	}
	return tableSize
}

func dataSize(operands []string, unit int) int {
	total := 0
	for _, op := range operands {
		op = strings.TrimSpace(op)
		if strings.HasPrefix(op, "\"") {
			total += len(strings.Trim(op, "\"")) // terminator, if wanted, is a separate explicit operand
			continue
		}
		total += unit
	}
	if total == 0 {
		total = unit
	}
	return total
}

// pass1 walks every source line, assigning each label an address (or, for
// GREG/IS, a register number or constant) and sizing each line so that
// later labels see a stable location counter. Forward references inside
// expressions are tolerated; only a line's own byte length must be known.
func (a *Assembler) pass1(src string) error {
	for lineNo, raw := range strings.Split(src, "\n") {
		ln, err := tokenizeLine(raw)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		if ln.Blank {
			continue
		}
		op := strings.ToUpper(ln.Op)

		switch op {
		case "LOC":
			v, resolved, err := a.eval(ln.Operands[0], a.here)
			if err != nil {
				return fmt.Errorf("line %d: LOC: %w", lineNo+1, err)
			}
			if !resolved {
				return fmt.Errorf("line %d: LOC operand must resolve in pass 1", lineNo+1)
			}
			if ln.Label != "" {
				if err := a.Symtab.Define(ln.Label, a.here, SymAddress); err != nil {
					return fmt.Errorf("line %d: %w", lineNo+1, err)
				}
			}
			a.here = v
			a.items = append(a.items, item{line: ln, here: a.here, lineNo: lineNo + 1})
			continue
		case "GREG":
			n := a.gregNext
			a.gregNext--
			if ln.Label != "" {
				if err := a.Symtab.Define(ln.Label, uint64(n), SymRegister); err != nil {
					return fmt.Errorf("line %d: %w", lineNo+1, err)
				}
			}
			a.items = append(a.items, item{line: ln, here: a.here, lineNo: lineNo + 1})
			a.items[len(a.items)-1].size = n // stash the allocated register number
			continue
		case "IS":
			kind := SymAbsolute
			if isRegisterOperand(ln.Operands[0]) {
				kind = SymRegister
			}
			v, resolved, _ := a.eval(ln.Operands[0], a.here)
			if ln.Label != "" {
				if resolved {
					if err := a.Symtab.Define(ln.Label, v, kind); err != nil {
						return fmt.Errorf("line %d: %w", lineNo+1, err)
					}
				} else {
					a.Symtab.Redefine(ln.Label, 0, kind) // placeholder, fixed in pass 2
				}
			}
			a.items = append(a.items, item{line: ln, here: a.here, lineNo: lineNo + 1})
			continue
		}

		if ln.Label != "" {
			if err := a.Symtab.Define(ln.Label, a.here, SymAddress); err != nil {
				return fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			if strings.EqualFold(ln.Label, "Main") {
				a.mainEntry = a.here
				a.haveMain = true
			}
		}

		size, isDirective := lineSize(op, ln.Operands)
		if !isDirective {
			entry, ok := mnemonics[op]
			if !ok {
				return fmt.Errorf("line %d: unknown mnemonic %q", lineNo+1, ln.Op)
			}
			size = instructionSize(op, ln.Operands, entry.size)
		}

		a.items = append(a.items, item{line: ln, here: a.here, size: size, lineNo: lineNo + 1})
		a.here += uint64(size)
	}
	return nil
}

// pass2 re-walks the items recorded by pass1, now with every symbol
// resolvable, and emits the final bytes and GREG presets. Per-line errors
// are collected rather than aborting at the first one, so a single
// Assemble call reports every problem in the source at once.
func (a *Assembler) pass2() (*Image, error) {
	img := &Image{Globals: a.gregInit}
	var cur *Segment
	var errs []error

	flush := func() {
		if cur != nil && len(cur.Bytes) > 0 {
			img.Segments = append(img.Segments, *cur)
		}
		cur = nil
	}
	emit := func(addr uint64, b []byte) {
		if cur == nil || cur.Addr+uint64(len(cur.Bytes)) != addr {
			flush()
			cur = &Segment{Addr: addr}
		}
		cur.Bytes = append(cur.Bytes, b...)
	}

	for _, it := range a.items {
		ln := it.line
		op := strings.ToUpper(ln.Op)

		switch op {
		case "LOC":
			continue
		case "GREG":
			n := it.size
			if len(ln.Operands) > 0 && strings.TrimSpace(ln.Operands[0]) != "" {
				v, resolved, err := a.eval(ln.Operands[0], it.here)
				switch {
				case err != nil:
					errs = append(errs, fmt.Errorf("line %d: GREG: %w", it.lineNo, err))
				case !resolved:
					errs = append(errs, fmt.Errorf("line %d: GREG operand did not resolve", it.lineNo))
				default:
					a.gregInit[n] = v
				}
			}
			continue
		case "IS":
			v, resolved, err := a.eval(ln.Operands[0], it.here)
			switch {
			case err != nil:
				errs = append(errs, fmt.Errorf("line %d: IS: %w", it.lineNo, err))
				continue
			case !resolved:
				errs = append(errs, fmt.Errorf("line %d: IS operand did not resolve", it.lineNo))
				continue
			}
			if ln.Label != "" {
				kind := SymAbsolute
				if isRegisterOperand(ln.Operands[0]) {
					kind = SymRegister
				}
				a.Symtab.Redefine(ln.Label, v, kind)
			}
			continue
		}

		if _, isDirective := lineSize(op, ln.Operands); isDirective {
			bytes, err := encodeData(a, op, ln.Operands, it.here)
			if err != nil {
				errs = append(errs, fmt.Errorf("line %d: %w", it.lineNo, err))
				continue
			}
			emit(it.here, bytes)
			continue
		}

		entry, ok := mnemonics[op]
		if !ok {
			errs = append(errs, fmt.Errorf("line %d: unknown mnemonic %q", it.lineNo, ln.Op))
			continue
		}
		ctx := &encodeCtx{a: a, here: it.here, pass: 2}
		bytes, err := entry.encode(ctx, ln.Operands)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d (%s): %w", it.lineNo, ln.Op, err))
			continue
		}
		emit(it.here, bytes)
	}
	flush()

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	img.Entry = opcode.TextSegment
	if a.haveMain {
		img.Entry = a.mainEntry
	}
	return img, nil
}

// encodeData emits the bytes for a BYTE/WYDE/TETRA/OCTA directive.
func encodeData(a *Assembler, op string, operands []string, here uint64) ([]byte, error) {
	var unit int
	switch op {
	case "BYTE":
		unit = 1
	case "WYDE":
		unit = 2
	case "TETRA":
		unit = 4
	case "OCTA":
		unit = 8
	}
	var out []byte
	for _, raw := range operands {
		s := strings.TrimSpace(raw)
		if unit == 1 && strings.HasPrefix(s, "\"") {
			str := strings.Trim(s, "\"")
			out = append(out, []byte(str)...)
			continue
		}
		v, resolved, err := a.eval(s, here+uint64(len(out)))
		if err != nil {
			return nil, err
		}
		if !resolved {
			return nil, fmt.Errorf("unresolved data operand %q", s)
		}
		b := make([]byte, unit)
		for i := 0; i < unit; i++ {
			b[unit-1-i] = byte(v >> (8 * i))
		}
		out = append(out, b...)
	}
	if len(out) == 0 {
		out = make([]byte, unit)
	}
	return out, nil
}
