/*
   MMIX opcode definitions, shared by the assembler and the emulator.

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
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   ROBERT M SUPNIK BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/

// Package opcode holds the OP byte assigned to every MMIX mnemonic. The
// byte values are internally consistent between the assembler and the
// emulator but are not guaranteed to match Knuth's reference mmixal/mmix
// byte-for-byte; full lop-code fidelity is explicitly optional.
package opcode

const (
	TRAP = 0x00
	FCMP = 0x01
	FUN  = 0x02
	FEQL = 0x03
	FADD = 0x04
	FIX  = 0x05
	FSUB = 0x06
	FIXU = 0x07

	FLOT    = 0x08
	FLOTI   = 0x09
	FLOTU   = 0x0A
	FLOTUI  = 0x0B
	SFLOT   = 0x0C
	SFLOTI  = 0x0D
	SFLOTU  = 0x0E
	SFLOTUI = 0x0F

	FMUL  = 0x10
	FCMPE = 0x11
	FUNE  = 0x12
	FEQLE = 0x13
	FDIV  = 0x14
	FSQRT = 0x15
	FREM  = 0x16
	FINT  = 0x17

	MUL    = 0x18
	MULI   = 0x19
	MULU   = 0x1A
	MULUI  = 0x1B
	DIV    = 0x1C
	DIVI   = 0x1D
	DIVU   = 0x1E
	DIVUI  = 0x1F

	ADD    = 0x20
	ADDI   = 0x21
	ADDU   = 0x22
	ADDUI  = 0x23
	SUB    = 0x24
	SUBI   = 0x25
	SUBU   = 0x26
	SUBUI  = 0x27

	ADD2U  = 0x28
	ADD2UI = 0x29
	ADD4U  = 0x2A
	ADD4UI = 0x2B
	ADD8U  = 0x2C
	ADD8UI = 0x2D
	ADD16U  = 0x2E
	ADD16UI = 0x2F

	CMP    = 0x30
	CMPI   = 0x31
	CMPU   = 0x32
	CMPUI  = 0x33
	NEG    = 0x34
	NEGI   = 0x35
	NEGU   = 0x36
	NEGUI  = 0x37

	SL    = 0x38
	SLI   = 0x39
	SLU   = 0x3A
	SLUI  = 0x3B
	SR    = 0x3C
	SRI   = 0x3D
	SRU   = 0x3E
	SRUI  = 0x3F

	// Branch family: each condition has a forward opcode and a backward
	// opcode one greater, selected by the assembler from the sign of the
	// computed tetra offset.
	BN    = 0x40
	BNB   = 0x41
	BZ    = 0x42
	BZB   = 0x43
	BP    = 0x44
	BPB   = 0x45
	BOD   = 0x46
	BODB  = 0x47
	BNN   = 0x48
	BNNB  = 0x49
	BNZ   = 0x4A
	BNZB  = 0x4B
	BNP   = 0x4C
	BNPB  = 0x4D
	BEV   = 0x4E
	BEVB  = 0x4F

	PBN   = 0x50
	PBNB  = 0x51
	PBZ   = 0x52
	PBZB  = 0x53
	PBP   = 0x54
	PBPB  = 0x55
	PBOD  = 0x56
	PBODB = 0x57
	PBNN  = 0x58
	PBNNB = 0x59
	PBNZ  = 0x5A
	PBNZB = 0x5B
	PBNP  = 0x5C
	PBNPB = 0x5D
	PBEV  = 0x5E
	PBEVB = 0x5F

	CSN   = 0x60
	CSNI  = 0x61
	CSZ   = 0x62
	CSZI  = 0x63
	CSP   = 0x64
	CSPI  = 0x65
	CSOD  = 0x66
	CSODI = 0x67
	CSNN  = 0x68
	CSNNI = 0x69
	CSNZ  = 0x6A
	CSNZI = 0x6B
	CSNP  = 0x6C
	CSNPI = 0x6D
	CSEV  = 0x6E
	CSEVI = 0x6F

	ZSN   = 0x70
	ZSNI  = 0x71
	ZSZ   = 0x72
	ZSZI  = 0x73
	ZSP   = 0x74
	ZSPI  = 0x75
	ZSOD  = 0x76
	ZSODI = 0x77
	ZSNN  = 0x78
	ZSNNI = 0x79
	ZSNZ  = 0x7A
	ZSNZI = 0x7B
	ZSNP  = 0x7C
	ZSNPI = 0x7D
	ZSEV  = 0x7E
	ZSEVI = 0x7F

	LDB    = 0x80
	LDBI   = 0x81
	LDBU   = 0x82
	LDBUI  = 0x83
	LDW    = 0x84
	LDWI   = 0x85
	LDWU   = 0x86
	LDWUI  = 0x87
	LDT    = 0x88
	LDTI   = 0x89
	LDTU   = 0x8A
	LDTUI  = 0x8B
	LDO    = 0x8C
	LDOI   = 0x8D
	LDOU   = 0x8E
	LDOUI  = 0x8F

	LDSF  = 0x90
	LDSFI = 0x91
	LDHT  = 0x92
	LDHTI = 0x93
	CSWAP  = 0x94
	CSWAPI = 0x95
	LDUNC  = 0x96
	LDUNCI = 0x97
	LDVTS  = 0x98
	LDVTSI = 0x99
	PRELD  = 0x9A
	PRELDI = 0x9B
	PREGO  = 0x9C
	PREGOI = 0x9D
	GO    = 0x9E
	GOI   = 0x9F

	STB    = 0xA0
	STBI   = 0xA1
	STBU   = 0xA2
	STBUI  = 0xA3
	STW    = 0xA4
	STWI   = 0xA5
	STWU   = 0xA6
	STWUI  = 0xA7
	STT    = 0xA8
	STTI   = 0xA9
	STTU   = 0xAA
	STTUI  = 0xAB
	STO    = 0xAC
	STOI   = 0xAD
	STOU   = 0xAE
	STOUI  = 0xAF

	STSF  = 0xB0
	STSFI = 0xB1
	STHT  = 0xB2
	STHTI = 0xB3
	STCO   = 0xB4
	STCOI  = 0xB5
	STUNC  = 0xB6
	STUNCI = 0xB7
	SYNCD   = 0xB8
	SYNCDI  = 0xB9
	PREST   = 0xBA
	PRESTI  = 0xBB
	SYNCID  = 0xBC
	SYNCIDI = 0xBD
	PUSHGO  = 0xBE
	PUSHGOI = 0xBF

	OR    = 0xC0
	ORI   = 0xC1
	ORN   = 0xC2
	ORNI  = 0xC3
	NOR   = 0xC4
	NORI  = 0xC5
	XOR   = 0xC6
	XORI  = 0xC7
	AND   = 0xC8
	ANDI  = 0xC9
	ANDN  = 0xCA
	ANDNI = 0xCB
	NAND  = 0xCC
	NANDI = 0xCD
	NXOR  = 0xCE
	NXORI = 0xCF

	BDIF  = 0xD0
	BDIFI = 0xD1
	WDIF  = 0xD2
	WDIFI = 0xD3
	TDIF  = 0xD4
	TDIFI = 0xD5
	ODIF  = 0xD6
	ODIFI = 0xD7
	MUX   = 0xD8
	MUXI  = 0xD9
	SADD  = 0xDA
	SADDI = 0xDB
	MOR   = 0xDC
	MORI  = 0xDD
	MXOR  = 0xDE
	MXORI = 0xDF

	SETH  = 0xE0
	SETMH = 0xE1
	SETML = 0xE2
	SETL  = 0xE3
	INCH  = 0xE4
	INCMH = 0xE5
	INCML = 0xE6
	INCL  = 0xE7
	ORH    = 0xE8
	ORMH   = 0xE9
	ORML   = 0xEA
	ORL    = 0xEB
	ANDNH  = 0xEC
	ANDNMH = 0xED
	ANDNML = 0xEE
	ANDNL  = 0xEF

	JMP    = 0xF0
	JMPB   = 0xF1
	PUSHJ  = 0xF2
	PUSHJB = 0xF3
	GETA   = 0xF4
	GETAB  = 0xF5
	PUT    = 0xF6
	PUTI   = 0xF7
	POP    = 0xF8
	RESUME = 0xF9
	SAVE   = 0xFA
	UNSAVE = 0xFB
	SYNC   = 0xFC
	SWYM   = 0xFD
	GET    = 0xFE
	TRIP   = 0xFF
)

// Mnemonics maps each opcode byte back to its canonical mnemonic.
var Mnemonics = map[byte]string{
	TRAP: "TRAP", FCMP: "FCMP", FUN: "FUN", FEQL: "FEQL", FADD: "FADD", FIX: "FIX", FSUB: "FSUB", FIXU: "FIXU",
	FLOT: "FLOT", FLOTI: "FLOTI", FLOTU: "FLOTU", FLOTUI: "FLOTUI", SFLOT: "SFLOT", SFLOTI: "SFLOTI", SFLOTU: "SFLOTU", SFLOTUI: "SFLOTUI",
	FMUL: "FMUL", FCMPE: "FCMPE", FUNE: "FUNE", FEQLE: "FEQLE", FDIV: "FDIV", FSQRT: "FSQRT", FREM: "FREM", FINT: "FINT",
	MUL: "MUL", MULI: "MULI", MULU: "MULU", MULUI: "MULUI", DIV: "DIV", DIVI: "DIVI", DIVU: "DIVU", DIVUI: "DIVUI",
	ADD: "ADD", ADDI: "ADDI", ADDU: "ADDU", ADDUI: "ADDUI", SUB: "SUB", SUBI: "SUBI", SUBU: "SUBU", SUBUI: "SUBUI",
	ADD2U: "2ADDU", ADD2UI: "2ADDUI", ADD4U: "4ADDU", ADD4UI: "4ADDUI", ADD8U: "8ADDU", ADD8UI: "8ADDUI", ADD16U: "16ADDU", ADD16UI: "16ADDUI",
	CMP: "CMP", CMPI: "CMPI", CMPU: "CMPU", CMPUI: "CMPUI", NEG: "NEG", NEGI: "NEGI", NEGU: "NEGU", NEGUI: "NEGUI",
	SL: "SL", SLI: "SLI", SLU: "SLU", SLUI: "SLUI", SR: "SR", SRI: "SRI", SRU: "SRU", SRUI: "SRUI",
	BN: "BN", BNB: "BNB", BZ: "BZ", BZB: "BZB", BP: "BP", BPB: "BPB", BOD: "BOD", BODB: "BODB",
	BNN: "BNN", BNNB: "BNNB", BNZ: "BNZ", BNZB: "BNZB", BNP: "BNP", BNPB: "BNPB", BEV: "BEV", BEVB: "BEVB",
	PBN: "PBN", PBNB: "PBNB", PBZ: "PBZ", PBZB: "PBZB", PBP: "PBP", PBPB: "PBPB", PBOD: "PBOD", PBODB: "PBODB",
	PBNN: "PBNN", PBNNB: "PBNNB", PBNZ: "PBNZ", PBNZB: "PBNZB", PBNP: "PBNP", PBNPB: "PBNPB", PBEV: "PBEV", PBEVB: "PBEVB",
	CSN: "CSN", CSNI: "CSNI", CSZ: "CSZ", CSZI: "CSZI", CSP: "CSP", CSPI: "CSPI", CSOD: "CSOD", CSODI: "CSODI",
	CSNN: "CSNN", CSNNI: "CSNNI", CSNZ: "CSNZ", CSNZI: "CSNZI", CSNP: "CSNP", CSNPI: "CSNPI", CSEV: "CSEV", CSEVI: "CSEVI",
	ZSN: "ZSN", ZSNI: "ZSNI", ZSZ: "ZSZ", ZSZI: "ZSZI", ZSP: "ZSP", ZSPI: "ZSPI", ZSOD: "ZSOD", ZSODI: "ZSODI",
	ZSNN: "ZSNN", ZSNNI: "ZSNNI", ZSNZ: "ZSNZ", ZSNZI: "ZSNZI", ZSNP: "ZSNP", ZSNPI: "ZSNPI", ZSEV: "ZSEV", ZSEVI: "ZSEVI",
	LDB: "LDB", LDBI: "LDBI", LDBU: "LDBU", LDBUI: "LDBUI", LDW: "LDW", LDWI: "LDWI", LDWU: "LDWU", LDWUI: "LDWUI",
	LDT: "LDT", LDTI: "LDTI", LDTU: "LDTU", LDTUI: "LDTUI", LDO: "LDO", LDOI: "LDOI", LDOU: "LDOU", LDOUI: "LDOUI",
	LDSF: "LDSF", LDSFI: "LDSFI", LDHT: "LDHT", LDHTI: "LDHTI", CSWAP: "CSWAP", CSWAPI: "CSWAPI", LDUNC: "LDUNC", LDUNCI: "LDUNCI",
	LDVTS: "LDVTS", LDVTSI: "LDVTSI", PRELD: "PRELD", PRELDI: "PRELDI", PREGO: "PREGO", PREGOI: "PREGOI", GO: "GO", GOI: "GOI",
	STB: "STB", STBI: "STBI", STBU: "STBU", STBUI: "STBUI", STW: "STW", STWI: "STWI", STWU: "STWU", STWUI: "STWUI",
	STT: "STT", STTI: "STTI", STTU: "STTU", STTUI: "STTUI", STO: "STO", STOI: "STOI", STOU: "STOU", STOUI: "STOUI",
	STSF: "STSF", STSFI: "STSFI", STHT: "STHT", STHTI: "STHTI", STCO: "STCO", STCOI: "STCOI", STUNC: "STUNC", STUNCI: "STUNCI",
	SYNCD: "SYNCD", SYNCDI: "SYNCDI", PREST: "PREST", PRESTI: "PRESTI", SYNCID: "SYNCID", SYNCIDI: "SYNCIDI", PUSHGO: "PUSHGO", PUSHGOI: "PUSHGOI",
	OR: "OR", ORI: "ORI", ORN: "ORN", ORNI: "ORNI", NOR: "NOR", NORI: "NORI", XOR: "XOR", XORI: "XORI",
	AND: "AND", ANDI: "ANDI", ANDN: "ANDN", ANDNI: "ANDNI", NAND: "NAND", NANDI: "NANDI", NXOR: "NXOR", NXORI: "NXORI",
	BDIF: "BDIF", BDIFI: "BDIFI", WDIF: "WDIF", WDIFI: "WDIFI", TDIF: "TDIF", TDIFI: "TDIFI", ODIF: "ODIF", ODIFI: "ODIFI",
	MUX: "MUX", MUXI: "MUXI", SADD: "SADD", SADDI: "SADDI", MOR: "MOR", MORI: "MORI", MXOR: "MXOR", MXORI: "MXORI",
	SETH: "SETH", SETMH: "SETMH", SETML: "SETML", SETL: "SETL", INCH: "INCH", INCMH: "INCMH", INCML: "INCML", INCL: "INCL",
	ORH: "ORH", ORMH: "ORMH", ORML: "ORML", ORL: "ORL", ANDNH: "ANDNH", ANDNMH: "ANDNMH", ANDNML: "ANDNML", ANDNL: "ANDNL",
	JMP: "JMP", JMPB: "JMPB", PUSHJ: "PUSHJ", PUSHJB: "PUSHJB", GETA: "GETA", GETAB: "GETAB", PUT: "PUT", PUTI: "PUTI",
	POP: "POP", RESUME: "RESUME", SAVE: "SAVE", UNSAVE: "UNSAVE", SYNC: "SYNC", SWYM: "SWYM", GET: "GET", TRIP: "TRIP",
}

// Special register indices, the standard MMIX assignment.
const (
	RB  = 0  // Bootstrap register (trip).
	RD  = 1  // Dividend register.
	RE  = 2  // Epsilon register.
	RH  = 3  // Himult register.
	RJ  = 4  // Return-jump register.
	RM  = 5  // Multiplex mask register.
	RR  = 6  // Remainder register.
	RBB = 7  // Bootstrap register (trip).
	RC  = 8  // Continuation register.
	RN  = 9  // Serial number.
	RO  = 10 // Register stack offset.
	RS  = 11 // Register stack pointer.
	RI  = 12 // Interval counter.
	RT  = 13 // Trap address register.
	RTT = 14 // Dynamic trap address register.
	RK  = 15 // Interrupt mask register.
	RQ  = 16 // Interrupt request register.
	RU  = 17 // Usage counter.
	RV  = 18 // Virtual translation register.
	RG  = 19 // Global threshold register.
	RL  = 20 // Local threshold register.
	RA  = 21 // Arithmetic status register.
	RF  = 22 // Failure location register.
	RP  = 23 // Prediction register.
	RW  = 24 // Where-interrupted register (trip).
	RX  = 25 // Execution register (trip).
	RY  = 26 // Y operand (trip).
	RZ  = 27 // Z operand (trip).
	RWW = 28 // Where-interrupted register (dynamic trap).
	RXX = 29 // Execution register (dynamic trap).
	RYY = 30 // Y operand (dynamic trap).
	RZZ = 31 // Z operand (dynamic trap).
)

// SpecialNames maps special register index to its MMIXAL name.
var SpecialNames = map[int]string{
	RB: "rB", RD: "rD", RE: "rE", RH: "rH", RJ: "rJ", RM: "rM", RR: "rR", RBB: "rBB",
	RC: "rC", RN: "rN", RO: "rO", RS: "rS", RI: "rI", RT: "rT", RTT: "rTT", RK: "rK",
	RQ: "rQ", RU: "rU", RV: "rV", RG: "rG", RL: "rL", RA: "rA", RF: "rF", RP: "rP",
	RW: "rW", RX: "rX", RY: "rY", RZ: "rZ", RWW: "rWW", RXX: "rXX", RYY: "rYY", RZZ: "rZZ",
}

// rA event bits (spec.md GLOSSARY: V, D, U, X, Z, I).
const (
	AEventD = 1 << 0 // Integer divide check.
	AEventV = 1 << 1 // Integer overflow.
	AEventU = 1 << 2 // Floating underflow.
	AEventX = 1 << 3 // Floating inexact.
	AEventZ = 1 << 4 // Floating division by zero.
	AEventI = 1 << 5 // Invalid floating operation.
)

// TRAP service codes (the Y field of a TRAP instruction).
const (
	Halt  = 0
	Fputs = 7
)

// TRAP file handles (the Z field of a TRAP Fputs instruction).
const (
	StdOut = 1
	StdErr = 2
)

// DataSegment is the conventional base address for Data_Segment.
const DataSegment uint64 = 0x2000000000000000

// TextSegment is the conventional base address for the text (code) segment.
const TextSegment uint64 = 0x100

// DefaultGlobalThreshold is rG's default value: general registers at or
// above this index are global (flat, shared by every call frame); registers
// below it are local and windowed by PUSHJ/POP. GREG allocates registers
// from $255 downward, so both sides of the register file agree on which
// register numbers stay visible across a call.
const DefaultGlobalThreshold = 251

// SerialNumber is the fixed constant reported by GET $X,rN.
const SerialNumber = 2

