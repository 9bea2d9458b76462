package vm

import "mmixgo/opcode"

func opGet(m *Machine, i Instruction) {
	m.Reg.Set(int(i.X), m.Reg.Special[i.Z])
	m.advance()
}

func opPut(m *Machine, i Instruction) {
	m.Reg.Special[i.X] = m.Reg.Get(int(i.Z))
	m.advance()
}

func opPutI(m *Machine, i Instruction) {
	m.Reg.Special[i.X] = uint64(i.Z)
	m.advance()
}

// SAVE $X,0 spills all 256 general registers, local and global, to memory
// starting at the address in $X, then leaves the end-of-region address in $X. This is a
// private, round-trippable format, not Knuth's register-stack layout; the
// design notes accept a minimal round-trip of the visible subset.
func opSave(m *Machine, i Instruction) {
	base := m.Reg.Get(int(i.X))
	addr := base
	for n := range 256 {
		m.Mem.WriteOcta(addr, m.Reg.Get(n))
		addr += 8
	}
	m.Reg.Set(int(i.X), addr)
	m.advance()
}

// UNSAVE 0,$Z reloads all 256 general registers from the region saved by
// SAVE.
func opUnsave(m *Machine, i Instruction) {
	addr := m.Reg.Get(int(i.Z))
	for n := range 256 {
		m.Reg.Set(n, m.Mem.ReadOcta(addr))
		addr += 8
	}
	m.advance()
}

// TRIP and RESUME are skeletal: no privileged trip handling is modeled
// (non-goal), so both simply advance past the instruction.
func opTrip(m *Machine, _ Instruction)   { m.advance() }
func opResume(m *Machine, _ Instruction) { m.advance() }

func registerSpecialTable(t *[256]func(*Machine, Instruction)) {
	t[opcode.GET] = opGet
	t[opcode.PUT] = opPut
	t[opcode.PUTI] = opPutI
	t[opcode.SAVE] = opSave
	t[opcode.UNSAVE] = opUnsave
	t[opcode.TRIP] = opTrip
	t[opcode.RESUME] = opResume
	t[opcode.TRAP] = opTrap
}
