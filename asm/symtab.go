package asm

import "fmt"

// SymKind distinguishes what a symbol's value means.
type SymKind int

const (
	SymAbsolute SymKind = iota
	SymAddress
	SymRegister
)

// Symbol is one entry in the assembler's symbol table.
type Symbol struct {
	Name    string
	Value   uint64
	Kind    SymKind
	Defined bool
}

// SymTab holds every label, IS-alias, GREG-alias and predefined constant
// seen during assembly. A symbol may be Forward-referenced (looked up
// before it is Defined) during pass 1; Lookup reports ok=false until the
// definition lands.
type SymTab struct {
	table map[string]*Symbol
}

// NewSymTab returns an empty symbol table.
func NewSymTab() *SymTab {
	return &SymTab{table: make(map[string]*Symbol)}
}

// Lookup returns the symbol's current value, or ok=false if it has not
// been Defined yet.
func (s *SymTab) Lookup(name string) (Symbol, bool) {
	sym, ok := s.table[name]
	if !ok || !sym.Defined {
		return Symbol{}, false
	}
	return *sym, true
}

// Define binds name to value for the first time. Redefining an already
// Defined symbol is an error, matching MMIXAL's single-assignment labels.
func (s *SymTab) Define(name string, value uint64, kind SymKind) error {
	if sym, ok := s.table[name]; ok && sym.Defined {
		return fmt.Errorf("symbol %q redefined (was %#x, now %#x)", name, sym.Value, value)
	}
	s.table[name] = &Symbol{Name: name, Value: value, Kind: kind, Defined: true}
	return nil
}

// Redefine overwrites name's value regardless of whether it was already
// Defined, for pass 2's re-resolution of pass-1 placeholders.
func (s *SymTab) Redefine(name string, value uint64, kind SymKind) {
	s.table[name] = &Symbol{Name: name, Value: value, Kind: kind, Defined: true}
}
