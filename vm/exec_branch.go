package vm

import "mmixgo/opcode"

// branchOffset returns the signed tetra offset encoded by a Bxx/PBxx/PUSHJ
// opcode pair: the non-backward opcode is a positive offset, the backward
// opcode (one greater, per the opcode table) is negative.
func branchOffset(backward bool, yz uint16) int64 {
	if backward {
		return -int64(yz)
	}
	return int64(yz)
}

func branchFn(cond func(uint64) bool, backward bool) func(*Machine, Instruction) {
	return func(m *Machine, i Instruction) {
		x := m.Reg.Get(int(i.X))
		if cond(x) {
			m.PC = uint64(int64(m.PC) + 4*branchOffset(backward, i.YZ()))
			return
		}
		m.advance()
	}
}

func registerBranchTable(t *[256]func(*Machine, Instruction)) {
	type cond struct {
		fwd, bwd byte
		pred     func(uint64) bool
	}
	conds := []cond{
		{opcode.BN, opcode.BNB, condN},
		{opcode.BZ, opcode.BZB, condZ},
		{opcode.BP, opcode.BPB, condP},
		{opcode.BOD, opcode.BODB, condOD},
		{opcode.BNN, opcode.BNNB, condNN},
		{opcode.BNZ, opcode.BNZB, condNZ},
		{opcode.BNP, opcode.BNPB, condNP},
		{opcode.BEV, opcode.BEVB, condEV},
		{opcode.PBN, opcode.PBNB, condN},
		{opcode.PBZ, opcode.PBZB, condZ},
		{opcode.PBP, opcode.PBPB, condP},
		{opcode.PBOD, opcode.PBODB, condOD},
		{opcode.PBNN, opcode.PBNNB, condNN},
		{opcode.PBNZ, opcode.PBNZB, condNZ},
		{opcode.PBNP, opcode.PBNPB, condNP},
		{opcode.PBEV, opcode.PBEVB, condEV},
	}
	for _, c := range conds {
		t[c.fwd] = branchFn(c.pred, false)
		t[c.bwd] = branchFn(c.pred, true)
	}

	t[opcode.JMP] = func(m *Machine, i Instruction) {
		m.PC = uint64(int64(m.PC) + 4*int64(i.XYZ()))
	}
	t[opcode.JMPB] = func(m *Machine, i Instruction) {
		m.PC = uint64(int64(m.PC) - 4*int64(i.XYZ()))
	}

	t[opcode.GETA] = func(m *Machine, i Instruction) {
		m.Reg.Set(int(i.X), uint64(int64(m.PC)+4*branchOffset(false, i.YZ())))
		m.advance()
	}
	t[opcode.GETAB] = func(m *Machine, i Instruction) {
		m.Reg.Set(int(i.X), uint64(int64(m.PC)+4*branchOffset(true, i.YZ())))
		m.advance()
	}

	t[opcode.GO] = func(m *Machine, i Instruction) {
		target := m.Reg.Get(int(i.Y)) + m.Reg.Get(int(i.Z))
		m.Reg.Set(int(i.X), m.PC+4)
		m.PC = target
	}
	t[opcode.GOI] = func(m *Machine, i Instruction) {
		target := m.Reg.Get(int(i.Y)) + uint64(i.Z)
		m.Reg.Set(int(i.X), m.PC+4)
		m.PC = target
	}

	t[opcode.PUSHJ] = pushjFn(false)
	t[opcode.PUSHJB] = pushjFn(true)

	t[opcode.PUSHGO] = func(m *Machine, i Instruction) {
		target := m.Reg.Get(int(i.Y)) + m.Reg.Get(int(i.Z))
		m.Reg.Special[opcode.RJ] = m.PC + 4
		m.Reg.PushJ(int(i.X))
		m.PC = target
	}
	t[opcode.PUSHGOI] = func(m *Machine, i Instruction) {
		target := m.Reg.Get(int(i.Y)) + uint64(i.Z)
		m.Reg.Special[opcode.RJ] = m.PC + 4
		m.Reg.PushJ(int(i.X))
		m.PC = target
	}

	t[opcode.POP] = func(m *Machine, i Instruction) {
		n := int(i.X)
		rj := m.Reg.Special[opcode.RJ]
		m.Reg.Pop(n)
		m.PC = uint64(int64(rj) + 4*branchOffset(false, i.YZ()))
	}
}

func pushjFn(backward bool) func(*Machine, Instruction) {
	return func(m *Machine, i Instruction) {
		target := uint64(int64(m.PC) + 4*branchOffset(backward, i.YZ()))
		m.Reg.Special[opcode.RJ] = m.PC + 4
		m.Reg.PushJ(int(i.X))
		m.PC = target
	}
}
