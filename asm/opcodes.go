package asm

import (
	"fmt"
	"strings"

	"mmixgo/opcode"
)

// encodeCtx carries per-line assembly state into an encodeFunc: the
// symbol table (via the owning Assembler), the current location counter
// for '@' and branch-offset math, and which pass is running (pass 2
// treats an unresolved operand as an error; pass 1 only needs a size).
type encodeCtx struct {
	a    *Assembler
	here uint64
	pass int
}

func (c *encodeCtx) eval(expr string) (uint64, bool, error) {
	return c.a.eval(expr, c.here)
}

// isRegisterOperand reports whether op syntactically names a register
// ("$N"), which is decidable without symbol resolution and therefore
// stable across both passes.
func isRegisterOperand(op string) bool {
	return strings.HasPrefix(op, "$")
}

func (c *encodeCtx) regNum(op string) (byte, error) {
	if !isRegisterOperand(op) {
		return 0, fmt.Errorf("expected register operand, got %q", op)
	}
	v, _, err := c.eval(op)
	if err != nil {
		return 0, err
	}
	if v > 255 {
		return 0, fmt.Errorf("register number %d out of range", v)
	}
	return byte(v), nil
}

// regOrZero best-effort parses op as a register or small immediate,
// returning 0 on any failure. Used for cache-hint opcodes, whose operand
// fields are not semantically load-bearing, and for the Z operand of the
// FP unary and conversion opcodes.
func (c *encodeCtx) regOrZero(op string) byte {
	if isRegisterOperand(op) {
		if v, err := c.regNum(op); err == nil {
			return v
		}
		return 0
	}
	if v, _, err := c.eval(op); err == nil {
		return byte(v)
	}
	return 0
}

var specialByName map[string]int

func init() {
	specialByName = make(map[string]int, len(opcode.SpecialNames))
	for idx, name := range opcode.SpecialNames {
		specialByName[name] = idx
	}
}

func (c *encodeCtx) specialRegNum(op string) (int, error) {
	if idx, ok := specialByName[op]; ok {
		return idx, nil
	}
	v, _, err := c.eval(op)
	if err != nil {
		return 0, fmt.Errorf("unknown special register %q", op)
	}
	if v > 31 {
		return 0, fmt.Errorf("special register number %d out of range", v)
	}
	return int(v), nil
}

func tetraBytes(op, x, y, z byte) []byte {
	return []byte{op, x, y, z}
}

// setiBytes expands a 64-bit immediate load into the four-tetra
// SETL/INCML/INCMH/INCH sequence, always emitted in full regardless of
// how many lanes are zero, so pass 1's 16-byte size estimate for SETI and
// LDA never disagrees with what pass 2 actually emits.
func setiBytes(x byte, v uint64) []byte {
	ll := uint16(v)
	ml := uint16(v >> 16)
	mh := uint16(v >> 32)
	hh := uint16(v >> 48)
	out := make([]byte, 0, 16)
	out = append(out, tetraBytes(opcode.SETL, x, byte(ll>>8), byte(ll))...)
	out = append(out, tetraBytes(opcode.INCML, x, byte(ml>>8), byte(ml))...)
	out = append(out, tetraBytes(opcode.INCMH, x, byte(mh>>8), byte(mh))...)
	out = append(out, tetraBytes(opcode.INCH, x, byte(hh>>8), byte(hh))...)
	return out
}

type encodeFunc func(ctx *encodeCtx, ops []string) ([]byte, error)

// opEntry pairs an encoder with the byte length it produces, so pass 1 can
// size the location counter without encoding. SET's length depends on its
// operand form, so pass 1 sizes it through instructionSize instead.
type opEntry struct {
	encode encodeFunc
	size   int
}

var mnemonics map[string]opEntry

// regOrImm3 builds the encoder for the common "$X,$Y,$Z|Z" shape shared
// by arithmetic, logical, compare, shift, cset/zset, wide-add and
// load/store opcodes: operand 3 selects the register or immediate form
// by its own syntax.
func regOrImm3(regOp, immOp byte) encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 3 {
			return nil, fmt.Errorf("expected 3 operands, got %d", len(ops))
		}
		x, err := ctx.regNum(ops[0])
		if err != nil {
			return nil, err
		}
		y, err := ctx.regNum(ops[1])
		if err != nil {
			return nil, err
		}
		if isRegisterOperand(ops[2]) {
			z, err := ctx.regNum(ops[2])
			if err != nil {
				return nil, err
			}
			return tetraBytes(regOp, x, y, z), nil
		}
		z, resolved, err := ctx.eval(ops[2])
		if err != nil {
			return nil, err
		}
		if ctx.pass == 2 && !resolved {
			return nil, fmt.Errorf("unresolved operand %q", ops[2])
		}
		if z > 0xFF {
			return nil, fmt.Errorf("immediate %d out of 8-bit range", z)
		}
		return tetraBytes(immOp, x, y, byte(z)), nil
	}
}

// negEncoder handles NEG/NEGI/NEGU/NEGUI's "$X,Y,Z" shape, where Y is
// always an 8-bit immediate (never a register) and Z selects form.
func negEncoder(regOp, immOp byte) encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 3 {
			return nil, fmt.Errorf("expected 3 operands, got %d", len(ops))
		}
		x, err := ctx.regNum(ops[0])
		if err != nil {
			return nil, err
		}
		yImm, _, err := ctx.eval(ops[1])
		if err != nil {
			return nil, err
		}
		if isRegisterOperand(ops[2]) {
			z, err := ctx.regNum(ops[2])
			if err != nil {
				return nil, err
			}
			return tetraBytes(regOp, x, byte(yImm), z), nil
		}
		z, resolved, err := ctx.eval(ops[2])
		if err != nil {
			return nil, err
		}
		if ctx.pass == 2 && !resolved {
			return nil, fmt.Errorf("unresolved operand %q", ops[2])
		}
		return tetraBytes(immOp, x, byte(yImm), byte(z)), nil
	}
}

// branchEncoder handles the Bxx/PBxx/PUSHJ/GETA "$X,target" shape: the
// 16-bit YZ field is a tetra count, signed by choosing between the
// forward and backward opcode of the pair rather than by two's
// complement.
func branchEncoder(fwdOp, bwdOp byte) encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 2 {
			return nil, fmt.Errorf("expected 2 operands, got %d", len(ops))
		}
		x, err := ctx.regNum(ops[0])
		if err != nil {
			return nil, err
		}
		target, resolved, err := ctx.eval(ops[1])
		if err != nil {
			return nil, err
		}
		if ctx.pass == 2 && !resolved {
			return nil, fmt.Errorf("unresolved target %q", ops[1])
		}
		delta := int64(target) - int64(ctx.here)
		if delta%4 != 0 {
			return nil, fmt.Errorf("branch target %#x not tetra-aligned to %#x", target, ctx.here)
		}
		off := delta / 4
		op := fwdOp
		if off < 0 {
			op = bwdOp
			off = -off
		}
		if ctx.pass == 2 && off > 0xFFFF {
			return nil, fmt.Errorf("branch offset %d out of 16-bit range", off)
		}
		yz := uint16(off)
		return tetraBytes(op, x, byte(yz>>8), byte(yz)), nil
	}
}

func jumpEncoder(fwdOp, bwdOp byte) encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 1 {
			return nil, fmt.Errorf("expected 1 operand, got %d", len(ops))
		}
		target, resolved, err := ctx.eval(ops[0])
		if err != nil {
			return nil, err
		}
		if ctx.pass == 2 && !resolved {
			return nil, fmt.Errorf("unresolved target %q", ops[0])
		}
		delta := (int64(target) - int64(ctx.here)) / 4
		op := fwdOp
		if delta < 0 {
			op = bwdOp
			delta = -delta
		}
		if ctx.pass == 2 && delta > 0xFFFFFF {
			return nil, fmt.Errorf("jump offset %d out of 24-bit range", delta)
		}
		xyz := uint32(delta)
		return tetraBytes(op, byte(xyz>>16), byte(xyz>>8), byte(xyz)), nil
	}
}

func popEncoder() encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 2 {
			return nil, fmt.Errorf("expected 2 operands, got %d", len(ops))
		}
		n, _, err := ctx.eval(ops[0])
		if err != nil {
			return nil, err
		}
		yz, _, err := ctx.eval(ops[1])
		if err != nil {
			return nil, err
		}
		return tetraBytes(opcode.POP, byte(n), byte(yz>>8), byte(yz)), nil
	}
}

func laneEncoder(op byte) encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 2 {
			return nil, fmt.Errorf("expected 2 operands, got %d", len(ops))
		}
		x, err := ctx.regNum(ops[0])
		if err != nil {
			return nil, err
		}
		yz, resolved, err := ctx.eval(ops[1])
		if err != nil {
			return nil, err
		}
		if ctx.pass == 2 && !resolved {
			return nil, fmt.Errorf("unresolved operand %q", ops[1])
		}
		if yz > 0xFFFF {
			return nil, fmt.Errorf("value %d out of 16-bit range", yz)
		}
		return tetraBytes(op, x, byte(yz>>8), byte(yz)), nil
	}
}

func ldaSetiEncoder() encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 2 {
			return nil, fmt.Errorf("expected 2 operands, got %d", len(ops))
		}
		x, err := ctx.regNum(ops[0])
		if err != nil {
			return nil, err
		}
		v, resolved, err := ctx.eval(ops[1])
		if err != nil {
			return nil, err
		}
		if ctx.pass == 2 && !resolved {
			return nil, fmt.Errorf("unresolved operand %q", ops[1])
		}
		return setiBytes(x, v), nil
	}
}

// setEncoder implements the SET $X,$Y|imm pseudo-op: register form sugars
// to "OR $X,$Y,0"; immediate form sugars to the full SETI sequence so the
// whole 64-bit constant lands, not just its low wyde.
func setEncoder() encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 2 {
			return nil, fmt.Errorf("expected 2 operands, got %d", len(ops))
		}
		x, err := ctx.regNum(ops[0])
		if err != nil {
			return nil, err
		}
		if isRegisterOperand(ops[1]) {
			y, err := ctx.regNum(ops[1])
			if err != nil {
				return nil, err
			}
			return tetraBytes(opcode.OR, x, y, 0), nil
		}
		v, resolved, err := ctx.eval(ops[1])
		if err != nil {
			return nil, err
		}
		if ctx.pass == 2 && !resolved {
			return nil, fmt.Errorf("unresolved operand %q", ops[1])
		}
		return setiBytes(x, v), nil
	}
}

func getEncoder() encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 2 {
			return nil, fmt.Errorf("expected 2 operands, got %d", len(ops))
		}
		x, err := ctx.regNum(ops[0])
		if err != nil {
			return nil, err
		}
		z, err := ctx.specialRegNum(ops[1])
		if err != nil {
			return nil, err
		}
		return tetraBytes(opcode.GET, x, 0, byte(z)), nil
	}
}

func putEncoder() encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 2 {
			return nil, fmt.Errorf("expected 2 operands, got %d", len(ops))
		}
		xSpecial, err := ctx.specialRegNum(ops[0])
		if err != nil {
			return nil, err
		}
		if isRegisterOperand(ops[1]) {
			z, err := ctx.regNum(ops[1])
			if err != nil {
				return nil, err
			}
			return tetraBytes(opcode.PUT, byte(xSpecial), 0, z), nil
		}
		v, resolved, err := ctx.eval(ops[1])
		if err != nil {
			return nil, err
		}
		if ctx.pass == 2 && !resolved {
			return nil, fmt.Errorf("unresolved operand %q", ops[1])
		}
		return tetraBytes(opcode.PUTI, byte(xSpecial), 0, byte(v)), nil
	}
}

func trapEncoder() encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 3 {
			return nil, fmt.Errorf("expected 3 operands, got %d", len(ops))
		}
		x, _, err := ctx.eval(ops[0])
		if err != nil {
			return nil, err
		}
		y, _, err := ctx.eval(ops[1])
		if err != nil {
			return nil, err
		}
		z, _, err := ctx.eval(ops[2])
		if err != nil {
			return nil, err
		}
		return tetraBytes(opcode.TRAP, byte(x), byte(y), byte(z)), nil
	}
}

func saveEncoder() encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 2 {
			return nil, fmt.Errorf("expected 2 operands, got %d", len(ops))
		}
		x, err := ctx.regNum(ops[0])
		if err != nil {
			return nil, err
		}
		return tetraBytes(opcode.SAVE, x, 0, 0), nil
	}
}

func unsaveEncoder() encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		if len(ops) != 2 {
			return nil, fmt.Errorf("expected 2 operands, got %d", len(ops))
		}
		z, err := ctx.regNum(ops[1])
		if err != nil {
			return nil, err
		}
		return tetraBytes(opcode.UNSAVE, 0, 0, z), nil
	}
}

func cacheHintEncoder(op byte) encodeFunc {
	return func(ctx *encodeCtx, ops []string) ([]byte, error) {
		var x, y, z byte
		if len(ops) > 0 {
			x = ctx.regOrZero(ops[0])
		}
		if len(ops) > 1 {
			y = ctx.regOrZero(ops[1])
		}
		if len(ops) > 2 {
			z = ctx.regOrZero(ops[2])
		}
		return tetraBytes(op, x, y, z), nil
	}
}

func fixedEncoder(op byte) encodeFunc {
	return func(_ *encodeCtx, _ []string) ([]byte, error) {
		return tetraBytes(op, 0, 0, 0), nil
	}
}

func reg4(mnemonic string, e opEntry) { mnemonics[mnemonic] = e }

func init() {
	mnemonics = make(map[string]opEntry)

	pair3 := func(name string, regOp, immOp byte) {
		reg4(name, opEntry{regOrImm3(regOp, immOp), 4})
		reg4(name+"I", opEntry{regOrImm3(regOp, immOp), 4})
	}

	pair3("ADD", opcode.ADD, opcode.ADDI)
	pair3("SUB", opcode.SUB, opcode.SUBI)
	pair3("ADDU", opcode.ADDU, opcode.ADDUI)
	pair3("SUBU", opcode.SUBU, opcode.SUBUI)
	pair3("MUL", opcode.MUL, opcode.MULI)
	pair3("DIV", opcode.DIV, opcode.DIVI)
	pair3("MULU", opcode.MULU, opcode.MULUI)
	pair3("DIVU", opcode.DIVU, opcode.DIVUI)
	pair3("CMP", opcode.CMP, opcode.CMPI)
	pair3("CMPU", opcode.CMPU, opcode.CMPUI)
	pair3("2ADDU", opcode.ADD2U, opcode.ADD2UI)
	pair3("4ADDU", opcode.ADD4U, opcode.ADD4UI)
	pair3("8ADDU", opcode.ADD8U, opcode.ADD8UI)
	pair3("16ADDU", opcode.ADD16U, opcode.ADD16UI)
	pair3("SL", opcode.SL, opcode.SLI)
	pair3("SLU", opcode.SLU, opcode.SLUI)
	pair3("SR", opcode.SR, opcode.SRI)
	pair3("SRU", opcode.SRU, opcode.SRUI)
	pair3("OR", opcode.OR, opcode.ORI)
	pair3("ORN", opcode.ORN, opcode.ORNI)
	pair3("NOR", opcode.NOR, opcode.NORI)
	pair3("XOR", opcode.XOR, opcode.XORI)
	pair3("AND", opcode.AND, opcode.ANDI)
	pair3("ANDN", opcode.ANDN, opcode.ANDNI)
	pair3("NAND", opcode.NAND, opcode.NANDI)
	pair3("NXOR", opcode.NXOR, opcode.NXORI)
	pair3("BDIF", opcode.BDIF, opcode.BDIFI)
	pair3("WDIF", opcode.WDIF, opcode.WDIFI)
	pair3("TDIF", opcode.TDIF, opcode.TDIFI)
	pair3("ODIF", opcode.ODIF, opcode.ODIFI)
	pair3("MUX", opcode.MUX, opcode.MUXI)
	pair3("SADD", opcode.SADD, opcode.SADDI)
	pair3("MOR", opcode.MOR, opcode.MORI)
	pair3("MXOR", opcode.MXOR, opcode.MXORI)
	pair3("GO", opcode.GO, opcode.GOI)
	pair3("PUSHGO", opcode.PUSHGO, opcode.PUSHGOI)

	csZs := []struct {
		name      string
		regOp     byte
		immOp     byte
	}{
		{"CSN", opcode.CSN, opcode.CSNI}, {"CSZ", opcode.CSZ, opcode.CSZI},
		{"CSP", opcode.CSP, opcode.CSPI}, {"CSOD", opcode.CSOD, opcode.CSODI},
		{"CSNN", opcode.CSNN, opcode.CSNNI}, {"CSNZ", opcode.CSNZ, opcode.CSNZI},
		{"CSNP", opcode.CSNP, opcode.CSNPI}, {"CSEV", opcode.CSEV, opcode.CSEVI},
		{"ZSN", opcode.ZSN, opcode.ZSNI}, {"ZSZ", opcode.ZSZ, opcode.ZSZI},
		{"ZSP", opcode.ZSP, opcode.ZSPI}, {"ZSOD", opcode.ZSOD, opcode.ZSODI},
		{"ZSNN", opcode.ZSNN, opcode.ZSNNI}, {"ZSNZ", opcode.ZSNZ, opcode.ZSNZI},
		{"ZSNP", opcode.ZSNP, opcode.ZSNPI}, {"ZSEV", opcode.ZSEV, opcode.ZSEVI},
	}
	for _, e := range csZs {
		pair3(e.name, e.regOp, e.immOp)
	}

	loads := []struct {
		name      string
		regOp     byte
		immOp     byte
	}{
		{"LDB", opcode.LDB, opcode.LDBI}, {"LDBU", opcode.LDBU, opcode.LDBUI},
		{"LDW", opcode.LDW, opcode.LDWI}, {"LDWU", opcode.LDWU, opcode.LDWUI},
		{"LDT", opcode.LDT, opcode.LDTI}, {"LDTU", opcode.LDTU, opcode.LDTUI},
		{"LDO", opcode.LDO, opcode.LDOI}, {"LDOU", opcode.LDOU, opcode.LDOUI},
		{"LDHT", opcode.LDHT, opcode.LDHTI}, {"LDSF", opcode.LDSF, opcode.LDSFI},
		{"LDUNC", opcode.LDUNC, opcode.LDUNCI}, {"LDVTS", opcode.LDVTS, opcode.LDVTSI},
		{"STB", opcode.STB, opcode.STBI}, {"STBU", opcode.STBU, opcode.STBUI},
		{"STW", opcode.STW, opcode.STWI}, {"STWU", opcode.STWU, opcode.STWUI},
		{"STT", opcode.STT, opcode.STTI}, {"STTU", opcode.STTU, opcode.STTUI},
		{"STO", opcode.STO, opcode.STOI}, {"STOU", opcode.STOU, opcode.STOUI},
		{"STHT", opcode.STHT, opcode.STHTI}, {"STSF", opcode.STSF, opcode.STSFI},
		{"STCO", opcode.STCO, opcode.STCOI}, {"STUNC", opcode.STUNC, opcode.STUNCI},
		{"CSWAP", opcode.CSWAP, opcode.CSWAPI},
	}
	for _, e := range loads {
		pair3(e.name, e.regOp, e.immOp)
	}

	fpReg := []struct {
		name string
		op   byte
	}{
		{"FADD", opcode.FADD}, {"FSUB", opcode.FSUB}, {"FMUL", opcode.FMUL}, {"FDIV", opcode.FDIV},
		{"FCMP", opcode.FCMP}, {"FCMPE", opcode.FCMPE}, {"FEQL", opcode.FEQL}, {"FEQLE", opcode.FEQLE},
		{"FUN", opcode.FUN}, {"FUNE", opcode.FUNE},
	}
	for _, e := range fpReg {
		op := e.op
		reg4(e.name, opEntry{func(ctx *encodeCtx, ops []string) ([]byte, error) {
			if len(ops) != 3 {
				return nil, fmt.Errorf("expected 3 operands, got %d", len(ops))
			}
			x, err := ctx.regNum(ops[0])
			if err != nil {
				return nil, err
			}
			y, err := ctx.regNum(ops[1])
			if err != nil {
				return nil, err
			}
			z, err := ctx.regNum(ops[2])
			if err != nil {
				return nil, err
			}
			return tetraBytes(op, x, y, z), nil
		}, 4})
	}
	fpUnary := []struct {
		name string
		op   byte
	}{
		{"FSQRT", opcode.FSQRT}, {"FREM", opcode.FREM}, {"FINT", opcode.FINT},
		{"FIX", opcode.FIX}, {"FIXU", opcode.FIXU},
		{"FLOT", opcode.FLOT}, {"FLOTI", opcode.FLOTI}, {"FLOTU", opcode.FLOTU}, {"FLOTUI", opcode.FLOTUI},
		{"SFLOT", opcode.SFLOT}, {"SFLOTI", opcode.SFLOTI}, {"SFLOTU", opcode.SFLOTU}, {"SFLOTUI", opcode.SFLOTUI},
	}
	for _, e := range fpUnary {
		op := e.op
		reg4(e.name, opEntry{func(ctx *encodeCtx, ops []string) ([]byte, error) {
			if len(ops) != 2 {
				return nil, fmt.Errorf("expected 2 operands, got %d", len(ops))
			}
			x, err := ctx.regNum(ops[0])
			if err != nil {
				return nil, err
			}
			z := ctx.regOrZero(ops[1])
			return tetraBytes(op, x, 0, z), nil
		}, 4})
	}

	negPairs := []struct {
		name         string
		regOp, immOp byte
	}{
		{"NEG", opcode.NEG, opcode.NEGI}, {"NEGU", opcode.NEGU, opcode.NEGUI},
	}
	for _, e := range negPairs {
		enc := negEncoder(e.regOp, e.immOp)
		reg4(e.name, opEntry{enc, 4})
		reg4(e.name+"I", opEntry{enc, 4})
	}

	branches := []struct {
		name      string
		fwd, bwd  byte
	}{
		{"BN", opcode.BN, opcode.BNB}, {"BZ", opcode.BZ, opcode.BZB},
		{"BP", opcode.BP, opcode.BPB}, {"BOD", opcode.BOD, opcode.BODB},
		{"BNN", opcode.BNN, opcode.BNNB}, {"BNZ", opcode.BNZ, opcode.BNZB},
		{"BNP", opcode.BNP, opcode.BNPB}, {"BEV", opcode.BEV, opcode.BEVB},
		{"PBN", opcode.PBN, opcode.PBNB}, {"PBZ", opcode.PBZ, opcode.PBZB},
		{"PBP", opcode.PBP, opcode.PBPB}, {"PBOD", opcode.PBOD, opcode.PBODB},
		{"PBNN", opcode.PBNN, opcode.PBNNB}, {"PBNZ", opcode.PBNZ, opcode.PBNZB},
		{"PBNP", opcode.PBNP, opcode.PBNPB}, {"PBEV", opcode.PBEV, opcode.PBEVB},
	}
	for _, e := range branches {
		reg4(e.name, opEntry{branchEncoder(e.fwd, e.bwd), 4})
	}
	reg4("PUSHJ", opEntry{branchEncoder(opcode.PUSHJ, opcode.PUSHJB), 4})
	reg4("GETA", opEntry{branchEncoder(opcode.GETA, opcode.GETAB), 4})
	reg4("JMP", opEntry{jumpEncoder(opcode.JMP, opcode.JMPB), 4})
	reg4("POP", opEntry{popEncoder(), 4})

	lanes := []struct {
		name string
		op   byte
	}{
		{"SETH", opcode.SETH}, {"SETMH", opcode.SETMH}, {"SETML", opcode.SETML}, {"SETL", opcode.SETL},
		{"INCH", opcode.INCH}, {"INCMH", opcode.INCMH}, {"INCML", opcode.INCML}, {"INCL", opcode.INCL},
		{"ORH", opcode.ORH}, {"ORMH", opcode.ORMH}, {"ORML", opcode.ORML}, {"ORL", opcode.ORL},
		{"ANDNH", opcode.ANDNH}, {"ANDNMH", opcode.ANDNMH}, {"ANDNML", opcode.ANDNML}, {"ANDNL", opcode.ANDNL},
	}
	for _, e := range lanes {
		reg4(e.name, opEntry{laneEncoder(e.op), 4})
	}

	reg4("SET", opEntry{setEncoder(), 4})
	reg4("SETI", opEntry{ldaSetiEncoder(), 16})
	reg4("LDA", opEntry{ldaSetiEncoder(), 16})

	reg4("GET", opEntry{getEncoder(), 4})
	reg4("PUT", opEntry{putEncoder(), 4})
	reg4("SAVE", opEntry{saveEncoder(), 4})
	reg4("UNSAVE", opEntry{unsaveEncoder(), 4})
	reg4("TRAP", opEntry{trapEncoder(), 4})
	reg4("RESUME", opEntry{fixedEncoder(opcode.RESUME), 4})
	reg4("TRIP", opEntry{fixedEncoder(opcode.TRIP), 4})
	reg4("SWYM", opEntry{cacheHintEncoder(opcode.SWYM), 4})
	reg4("SYNC", opEntry{cacheHintEncoder(opcode.SYNC), 4})
	reg4("SYNCD", opEntry{cacheHintEncoder(opcode.SYNCD), 4})
	reg4("SYNCID", opEntry{cacheHintEncoder(opcode.SYNCID), 4})
	reg4("PRELD", opEntry{cacheHintEncoder(opcode.PRELD), 4})
	reg4("PREGO", opEntry{cacheHintEncoder(opcode.PREGO), 4})
	reg4("PREST", opEntry{cacheHintEncoder(opcode.PREST), 4})
}
