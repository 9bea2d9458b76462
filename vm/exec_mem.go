package vm

import "mmixgo/opcode"

// addrFunc computes the effective address $Y + z for a load/store, where z
// comes from either $Z (reg form) or the 8-bit immediate (imm form).
func addrFunc(zf zfunc) func(*Machine, Instruction) uint64 {
	return func(m *Machine, i Instruction) uint64 {
		return m.Reg.Get(int(i.Y)) + zf(m, i)
	}
}

func loadByte(signed bool, zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		addr := af(m, i)
		v := m.Mem.ReadByte(addr)
		if signed {
			m.Reg.Set(int(i.X), uint64(int64(int8(v))))
		} else {
			m.Reg.Set(int(i.X), uint64(v))
		}
		m.advance()
	}
}

func loadWyde(signed bool, zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		addr := af(m, i)
		v := m.Mem.ReadWyde(addr)
		if signed {
			m.Reg.Set(int(i.X), uint64(int64(int16(v))))
		} else {
			m.Reg.Set(int(i.X), uint64(v))
		}
		m.advance()
	}
}

func loadTetra(signed bool, zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		addr := af(m, i)
		v := m.Mem.ReadTetra(addr)
		if signed {
			m.Reg.Set(int(i.X), uint64(int64(int32(v))))
		} else {
			m.Reg.Set(int(i.X), uint64(v))
		}
		m.advance()
	}
}

func loadOcta(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		m.Reg.Set(int(i.X), m.Mem.ReadOcta(af(m, i)))
		m.advance()
	}
}

// loadHighTetra (LDHT) loads a tetra into the high half of $X, zeroing the
// low half.
func loadHighTetra(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		v := m.Mem.ReadTetra(af(m, i))
		m.Reg.Set(int(i.X), uint64(v)<<32)
		m.advance()
	}
}

// loadShortFloat (LDSF) loads an IEEE-754 binary32 and widens it to binary64.
func loadShortFloat(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		bits32 := m.Mem.ReadTetra(af(m, i))
		m.Reg.Set(int(i.X), float32ToFloat64Bits(bits32))
		m.advance()
	}
}

func storeByte(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		m.Mem.WriteByte(af(m, i), byte(m.Reg.Get(int(i.X))))
		m.advance()
	}
}

func storeWyde(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		m.Mem.WriteWyde(af(m, i), uint16(m.Reg.Get(int(i.X))))
		m.advance()
	}
}

func storeTetra(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		m.Mem.WriteTetra(af(m, i), uint32(m.Reg.Get(int(i.X))))
		m.advance()
	}
}

func storeOcta(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		m.Mem.WriteOcta(af(m, i), m.Reg.Get(int(i.X)))
		m.advance()
	}
}

func storeHighTetra(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		m.Mem.WriteTetra(af(m, i), uint32(m.Reg.Get(int(i.X))>>32))
		m.advance()
	}
}

func storeShortFloat(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		m.Mem.WriteTetra(af(m, i), float64BitsToFloat32(m.Reg.Get(int(i.X))))
		m.advance()
	}
}

// storeConstant (STCO) stores the X field itself (not a register) as the
// value, widened to the store's width convention (octa here).
func storeConstant(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		m.Mem.WriteOcta(af(m, i), uint64(i.X))
		m.advance()
	}
}

// cswap (CSWAP/CSWAPI) compares the octa at $Y+z against rP and, on a
// match, stores $X there and sets $X to 1; otherwise it loads rP from the
// mismatched octa and sets $X to 0.
func cswap(zf zfunc) func(*Machine, Instruction) {
	af := addrFunc(zf)
	return func(m *Machine, i Instruction) {
		addr := af(m, i)
		old := m.Mem.ReadOcta(addr)
		if old == m.Reg.Special[opcode.RP] {
			m.Mem.WriteOcta(addr, m.Reg.Get(int(i.X)))
			m.Reg.Set(int(i.X), 1)
		} else {
			m.Reg.Special[opcode.RP] = old
			m.Reg.Set(int(i.X), 0)
		}
		m.advance()
	}
}

func noop(m *Machine, _ Instruction) { m.advance() }

func registerMemTable(t *[256]func(*Machine, Instruction)) {
	t[opcode.LDB] = loadByte(true, regZ)
	t[opcode.LDBI] = loadByte(true, immZ)
	t[opcode.LDBU] = loadByte(false, regZ)
	t[opcode.LDBUI] = loadByte(false, immZ)
	t[opcode.LDW] = loadWyde(true, regZ)
	t[opcode.LDWI] = loadWyde(true, immZ)
	t[opcode.LDWU] = loadWyde(false, regZ)
	t[opcode.LDWUI] = loadWyde(false, immZ)
	t[opcode.LDT] = loadTetra(true, regZ)
	t[opcode.LDTI] = loadTetra(true, immZ)
	t[opcode.LDTU] = loadTetra(false, regZ)
	t[opcode.LDTUI] = loadTetra(false, immZ)
	t[opcode.LDO] = loadOcta(regZ)
	t[opcode.LDOI] = loadOcta(immZ)
	t[opcode.LDOU] = loadOcta(regZ)
	t[opcode.LDOUI] = loadOcta(immZ)
	t[opcode.LDUNC] = loadOcta(regZ)
	t[opcode.LDUNCI] = loadOcta(immZ)
	t[opcode.LDHT] = loadHighTetra(regZ)
	t[opcode.LDHTI] = loadHighTetra(immZ)
	t[opcode.LDSF] = loadShortFloat(regZ)
	t[opcode.LDSFI] = loadShortFloat(immZ)

	t[opcode.STB] = storeByte(regZ)
	t[opcode.STBI] = storeByte(immZ)
	t[opcode.STBU] = storeByte(regZ)
	t[opcode.STBUI] = storeByte(immZ)
	t[opcode.STW] = storeWyde(regZ)
	t[opcode.STWI] = storeWyde(immZ)
	t[opcode.STWU] = storeWyde(regZ)
	t[opcode.STWUI] = storeWyde(immZ)
	t[opcode.STT] = storeTetra(regZ)
	t[opcode.STTI] = storeTetra(immZ)
	t[opcode.STTU] = storeTetra(regZ)
	t[opcode.STTUI] = storeTetra(immZ)
	t[opcode.STO] = storeOcta(regZ)
	t[opcode.STOI] = storeOcta(immZ)
	t[opcode.STOU] = storeOcta(regZ)
	t[opcode.STOUI] = storeOcta(immZ)
	t[opcode.STUNC] = storeOcta(regZ)
	t[opcode.STUNCI] = storeOcta(immZ)
	t[opcode.STHT] = storeHighTetra(regZ)
	t[opcode.STHTI] = storeHighTetra(immZ)
	t[opcode.STSF] = storeShortFloat(regZ)
	t[opcode.STSFI] = storeShortFloat(immZ)
	t[opcode.STCO] = storeConstant(regZ)
	t[opcode.STCOI] = storeConstant(immZ)

	// CSWAP: compare-and-swap against rP.
	t[opcode.CSWAP] = cswap(regZ)
	t[opcode.CSWAPI] = cswap(immZ)

	// LDVTS: virtual translation status; no MMU is modeled, always "valid".
	t[opcode.LDVTS] = func(m *Machine, i Instruction) {
		m.Reg.Set(int(i.X), 1)
		m.advance()
	}
	t[opcode.LDVTSI] = t[opcode.LDVTS]

	// Cache-hint instructions execute as observable no-ops.
	t[opcode.PRELD] = noop
	t[opcode.PRELDI] = noop
	t[opcode.PREGO] = noop
	t[opcode.PREGOI] = noop
	t[opcode.PREST] = noop
	t[opcode.PRESTI] = noop
	t[opcode.SYNCD] = noop
	t[opcode.SYNCDI] = noop
	t[opcode.SYNCID] = noop
	t[opcode.SYNCIDI] = noop
	t[opcode.SYNC] = noop
	t[opcode.SWYM] = noop
}
