package vm

import (
	"math"

	"mmixgo/opcode"
)

// float32ToFloat64Bits widens an IEEE-754 binary32 bit pattern to the
// binary64 bit pattern MMIX keeps in an octa register.
func float32ToFloat64Bits(bits32 uint32) uint64 {
	return math.Float64bits(float64(math.Float32frombits(bits32)))
}

// float64BitsToFloat32 narrows an octa-held binary64 to binary32 bits.
func float64BitsToFloat32(bits64 uint64) uint32 {
	return math.Float32bits(float32(math.Float64frombits(bits64)))
}

func fget(m *Machine, n int) float64 { return math.Float64frombits(m.Reg.Get(n)) }
func fset(m *Machine, n int, v float64) { m.Reg.Set(n, math.Float64bits(v)) }

func fBinOp(op func(y, z float64) float64) func(*Machine, Instruction) {
	return func(m *Machine, i Instruction) {
		y := fget(m, int(i.Y))
		z := fget(m, int(i.Z))
		fset(m, int(i.X), op(y, z))
		m.advance()
	}
}

func fCompare(m *Machine, i Instruction) {
	y := fget(m, int(i.Y))
	z := fget(m, int(i.Z))
	var result uint64
	switch {
	case math.IsNaN(y) || math.IsNaN(z):
		result = 0
	case y < z:
		result = ^uint64(0)
	case y > z:
		result = 1
	default:
		result = 0
	}
	m.Reg.Set(int(i.X), result)
	m.advance()
}

func fEql(m *Machine, i Instruction) {
	y := fget(m, int(i.Y))
	z := fget(m, int(i.Z))
	if y == z {
		m.Reg.Set(int(i.X), 1)
	} else {
		m.Reg.Set(int(i.X), 0)
	}
	m.advance()
}

func fUnordered(m *Machine, i Instruction) {
	y := fget(m, int(i.Y))
	z := fget(m, int(i.Z))
	if math.IsNaN(y) || math.IsNaN(z) {
		m.Reg.Set(int(i.X), 1)
	} else {
		m.Reg.Set(int(i.X), 0)
	}
	m.advance()
}

func fSqrt(m *Machine, i Instruction) {
	z := fget(m, int(i.Z))
	fset(m, int(i.X), math.Sqrt(z))
	m.advance()
}

func fRem(m *Machine, i Instruction) {
	y := fget(m, int(i.Y))
	z := fget(m, int(i.Z))
	fset(m, int(i.X), math.Remainder(y, z))
	m.advance()
}

func fInt(m *Machine, i Instruction) {
	z := fget(m, int(i.Z))
	fset(m, int(i.X), math.RoundToEven(z))
	m.advance()
}

func fFix(signed bool) func(*Machine, Instruction) {
	return func(m *Machine, i Instruction) {
		z := fget(m, int(i.Z))
		if signed {
			m.Reg.Set(int(i.X), uint64(int64(z)))
		} else {
			m.Reg.Set(int(i.X), uint64(z))
		}
		m.advance()
	}
}

func fFlot(signed, short bool, zf zfunc) func(*Machine, Instruction) {
	return func(m *Machine, i Instruction) {
		z := zf(m, i)
		var v float64
		if signed {
			v = float64(int64(z))
		} else {
			v = float64(z)
		}
		if short {
			v = float64(float32(v))
		}
		fset(m, int(i.X), v)
		m.advance()
	}
}

func registerFPTable(t *[256]func(*Machine, Instruction)) {
	t[opcode.FADD] = fBinOp(func(y, z float64) float64 { return y + z })
	t[opcode.FSUB] = fBinOp(func(y, z float64) float64 { return y - z })
	t[opcode.FMUL] = fBinOp(func(y, z float64) float64 { return y * z })
	t[opcode.FDIV] = fBinOp(func(y, z float64) float64 { return y / z })
	t[opcode.FCMP] = fCompare
	t[opcode.FCMPE] = fCompare
	t[opcode.FEQL] = fEql
	t[opcode.FEQLE] = fEql
	t[opcode.FUN] = fUnordered
	t[opcode.FUNE] = fUnordered
	t[opcode.FSQRT] = fSqrt
	t[opcode.FREM] = fRem
	t[opcode.FINT] = fInt
	t[opcode.FIX] = fFix(true)
	t[opcode.FIXU] = fFix(false)
	t[opcode.FLOT] = fFlot(true, false, regZ)
	t[opcode.FLOTI] = fFlot(true, false, immZ)
	t[opcode.FLOTU] = fFlot(false, false, regZ)
	t[opcode.FLOTUI] = fFlot(false, false, immZ)
	t[opcode.SFLOT] = fFlot(true, true, regZ)
	t[opcode.SFLOTI] = fFlot(true, true, immZ)
	t[opcode.SFLOTU] = fFlot(false, true, regZ)
	t[opcode.SFLOTUI] = fFlot(false, true, immZ)
}
