package asm_test

import (
	"bytes"
	"testing"
)

// Instruction-set regression end-to-end scenario: eighteen blocks covering
// integer arithmetic, wide-add, compare, logical, shift, branch,
// conditional-set, zero-or-set, every load/store width, unconventional and
// compare-and-swap memory access, floating point binary and unary ops,
// special register GET/PUT, SAVE/UNSAVE, and byte-lane SETH/INC/OR/ANDN.
// Blocks 1, 2, 4-8, 14 and 15 accumulate one success bit per sub-test in
// $80 against an expected all-ones mask; the other blocks compare each
// sub-test directly. On any mismatch $0 is set to the block's ordinal and
// the program halts with exit code 1. A failing ordinal identifies
// which opcode family regressed without needing a debugger.
func TestInstructionRegression(t *testing.T) {
	src := `
	LOC #100
Main	SET $80,0
	SET $81,1
	SET $1,7
	SET $2,3
	ADD $3,$1,$2
	SET $9,10
	CMP $90,$3,$9
	BNZ $90,B1_1
	OR $80,$80,$81
B1_1	SL $81,$81,1
	ADD $3,$1,9
	SET $9,16
	CMP $90,$3,$9
	BNZ $90,B1_2
	OR $80,$80,$81
B1_2	SL $81,$81,1
	SUB $3,$1,$2
	SET $9,4
	CMP $90,$3,$9
	BNZ $90,B1_3
	OR $80,$80,$81
B1_3	SL $81,$81,1
	SUB $3,$1,2
	SET $9,5
	CMP $90,$3,$9
	BNZ $90,B1_4
	OR $80,$80,$81
B1_4	SL $81,$81,1
	ADDU $3,$1,$2
	SET $9,10
	CMP $90,$3,$9
	BNZ $90,B1_5
	OR $80,$80,$81
B1_5	SL $81,$81,1
	ADDU $3,$1,5
	SET $9,12
	CMP $90,$3,$9
	BNZ $90,B1_6
	OR $80,$80,$81
B1_6	SL $81,$81,1
	SUBU $3,$1,$2
	SET $9,4
	CMP $90,$3,$9
	BNZ $90,B1_7
	OR $80,$80,$81
B1_7	SL $81,$81,1
	SUBU $3,$1,2
	SET $9,5
	CMP $90,$3,$9
	BNZ $90,B1_8
	OR $80,$80,$81
B1_8	SET $9,#FF
	CMP $90,$80,$9
	BZ $90,Pass1
	SET $0,1
	TRAP 0,Halt,1
Pass1	SET $80,0
	SET $81,1
	SET $1,6
	SET $2,7
	MUL $3,$1,$2
	SET $9,42
	CMP $90,$3,$9
	BNZ $90,B2_1
	OR $80,$80,$81
B2_1	SL $81,$81,1
	MULI $3,$1,8
	SET $9,48
	CMP $90,$3,$9
	BNZ $90,B2_2
	OR $80,$80,$81
B2_2	SL $81,$81,1
	MULU $3,$1,$2
	SET $9,42
	CMP $90,$3,$9
	BNZ $90,B2_3
	OR $80,$80,$81
B2_3	SL $81,$81,1
	MULUI $3,$1,8
	SET $9,48
	CMP $90,$3,$9
	BNZ $90,B2_4
	OR $80,$80,$81
B2_4	SL $81,$81,1
	SET $1,44
	SET $2,7
	DIV $3,$1,$2
	SET $9,6
	CMP $90,$3,$9
	BNZ $90,B2_5
	OR $80,$80,$81
B2_5	SL $81,$81,1
	GET $4,rR
	SET $9,2
	CMP $90,$4,$9
	BNZ $90,B2_6
	OR $80,$80,$81
B2_6	SL $81,$81,1
	DIVI $3,$1,5
	SET $9,8
	CMP $90,$3,$9
	BNZ $90,B2_7
	OR $80,$80,$81
B2_7	SL $81,$81,1
	DIVU $3,$1,$2
	SET $9,6
	CMP $90,$3,$9
	BNZ $90,B2_8
	OR $80,$80,$81
B2_8	SL $81,$81,1
	GET $4,rR
	SET $9,2
	CMP $90,$4,$9
	BNZ $90,B2_9
	OR $80,$80,$81
B2_9	SL $81,$81,1
	DIVUI $3,$1,5
	SET $9,8
	CMP $90,$3,$9
	BNZ $90,B2_10
	OR $80,$80,$81
B2_10	SET $9,#3FF
	CMP $90,$80,$9
	BZ $90,Pass2
	SET $0,2
	TRAP 0,Halt,1
Pass2	SET $2,5
	NEG $3,0,$2
	SET $9,-5
	CMP $90,$3,$9
	BZ $90,Pass3a
	SET $0,3
	TRAP 0,Halt,1
Pass3a	NEGI $3,0,5
	CMP $90,$3,$9
	BZ $90,Pass3b
	SET $0,3
	TRAP 0,Halt,1
Pass3b	NEGU $3,0,$2
	CMP $90,$3,$9
	BZ $90,Pass3c
	SET $0,3
	TRAP 0,Halt,1
Pass3c	NEGUI $3,0,5
	CMP $90,$3,$9
	BZ $90,Pass3
	SET $0,3
	TRAP 0,Halt,1
Pass3	SET $80,0
	SET $81,1
	SET $1,7
	SET $2,3
	2ADDU $3,$1,$2
	SET $9,17
	CMP $90,$3,$9
	BNZ $90,B4_1
	OR $80,$80,$81
B4_1	SL $81,$81,1
	2ADDU $3,$1,9
	SET $9,23
	CMP $90,$3,$9
	BNZ $90,B4_2
	OR $80,$80,$81
B4_2	SL $81,$81,1
	4ADDU $3,$1,$2
	SET $9,31
	CMP $90,$3,$9
	BNZ $90,B4_3
	OR $80,$80,$81
B4_3	SL $81,$81,1
	4ADDU $3,$1,9
	SET $9,37
	CMP $90,$3,$9
	BNZ $90,B4_4
	OR $80,$80,$81
B4_4	SL $81,$81,1
	8ADDU $3,$1,$2
	SET $9,59
	CMP $90,$3,$9
	BNZ $90,B4_5
	OR $80,$80,$81
B4_5	SL $81,$81,1
	8ADDU $3,$1,9
	SET $9,65
	CMP $90,$3,$9
	BNZ $90,B4_6
	OR $80,$80,$81
B4_6	SL $81,$81,1
	16ADDU $3,$1,$2
	SET $9,115
	CMP $90,$3,$9
	BNZ $90,B4_7
	OR $80,$80,$81
B4_7	SL $81,$81,1
	16ADDU $3,$1,9
	SET $9,121
	CMP $90,$3,$9
	BNZ $90,B4_8
	OR $80,$80,$81
B4_8	SET $9,#FF
	CMP $90,$80,$9
	BZ $90,Pass4
	SET $0,4
	TRAP 0,Halt,1
Pass4	SET $80,0
	SET $81,1
	SET $1,1
	SET $2,2
	CMP $3,$1,$2
	SET $9,-1
	CMP $90,$3,$9
	BNZ $90,B5_1
	OR $80,$80,$81
B5_1	SL $81,$81,1
	SET $1,2
	SET $2,1
	CMP $3,$1,$2
	SET $9,1
	CMP $90,$3,$9
	BNZ $90,B5_2
	OR $80,$80,$81
B5_2	SL $81,$81,1
	CMP $3,$1,50
	SET $9,-1
	CMP $90,$3,$9
	BNZ $90,B5_3
	OR $80,$80,$81
B5_3	SL $81,$81,1
	SET $1,100
	CMPU $3,$1,$2
	SET $9,1
	CMP $90,$3,$9
	BNZ $90,B5_4
	OR $80,$80,$81
B5_4	SL $81,$81,1
	CMPU $3,$2,$1
	SET $9,-1
	CMP $90,$3,$9
	BNZ $90,B5_5
	OR $80,$80,$81
B5_5	SL $81,$81,1
	CMPU $3,$1,50
	SET $9,1
	CMP $90,$3,$9
	BNZ $90,B5_6
	OR $80,$80,$81
B5_6	SET $9,#3F
	CMP $90,$80,$9
	BZ $90,Pass5
	SET $0,5
	TRAP 0,Halt,1
Pass5	SET $80,0
	SET $81,1
	SET $1,#F0
	SET $2,#0F
	OR $3,$1,$2
	SET $9,#FF
	CMP $90,$3,$9
	BNZ $90,B6_1
	OR $80,$80,$81
B6_1	SL $81,$81,1
	OR $3,$1,15
	CMP $90,$3,$9
	BNZ $90,B6_2
	OR $80,$80,$81
B6_2	SL $81,$81,1
	AND $3,$1,$2
	SET $9,0
	CMP $90,$3,$9
	BNZ $90,B6_3
	OR $80,$80,$81
B6_3	SL $81,$81,1
	AND $3,$1,15
	CMP $90,$3,$9
	BNZ $90,B6_4
	OR $80,$80,$81
B6_4	SL $81,$81,1
	XOR $3,$1,$2
	SET $9,#FF
	CMP $90,$3,$9
	BNZ $90,B6_5
	OR $80,$80,$81
B6_5	SL $81,$81,1
	XOR $3,$1,15
	CMP $90,$3,$9
	BNZ $90,B6_6
	OR $80,$80,$81
B6_6	SL $81,$81,1
	ANDN $3,$1,$2
	SET $9,#F0
	CMP $90,$3,$9
	BNZ $90,B6_7
	OR $80,$80,$81
B6_7	SL $81,$81,1
	ANDN $3,$1,15
	CMP $90,$3,$9
	BNZ $90,B6_8
	OR $80,$80,$81
B6_8	SL $81,$81,1
	ORN $3,$1,$2
	SET $9,#FFFFFFFFFFFFFFF0
	CMP $90,$3,$9
	BNZ $90,B6_9
	OR $80,$80,$81
B6_9	SL $81,$81,1
	ORN $3,$1,15
	CMP $90,$3,$9
	BNZ $90,B6_10
	OR $80,$80,$81
B6_10	SL $81,$81,1
	NAND $3,$1,$2
	SET $9,-1
	CMP $90,$3,$9
	BNZ $90,B6_11
	OR $80,$80,$81
B6_11	SL $81,$81,1
	NAND $3,$1,15
	CMP $90,$3,$9
	BNZ $90,B6_12
	OR $80,$80,$81
B6_12	SL $81,$81,1
	NOR $3,$1,$2
	SET $9,#FFFFFFFFFFFFFF00
	CMP $90,$3,$9
	BNZ $90,B6_13
	OR $80,$80,$81
B6_13	SL $81,$81,1
	NOR $3,$1,15
	CMP $90,$3,$9
	BNZ $90,B6_14
	OR $80,$80,$81
B6_14	SL $81,$81,1
	NXOR $3,$1,$2
	SET $9,#FFFFFFFFFFFFFF00
	CMP $90,$3,$9
	BNZ $90,B6_15
	OR $80,$80,$81
B6_15	SL $81,$81,1
	NXOR $3,$1,15
	CMP $90,$3,$9
	BNZ $90,B6_16
	OR $80,$80,$81
B6_16	SET $9,#FFFF
	CMP $90,$80,$9
	BZ $90,Pass6
	SET $0,6
	TRAP 0,Halt,1
Pass6	SET $80,0
	SET $81,1
	SET $1,1
	SL $3,$1,4
	SET $9,16
	CMP $90,$3,$9
	BNZ $90,B7_1
	OR $80,$80,$81
B7_1	SL $81,$81,1
	SLI $3,$1,5
	SET $9,32
	CMP $90,$3,$9
	BNZ $90,B7_2
	OR $80,$80,$81
B7_2	SL $81,$81,1
	SLU $3,$1,4
	SET $9,16
	CMP $90,$3,$9
	BNZ $90,B7_3
	OR $80,$80,$81
B7_3	SL $81,$81,1
	SLUI $3,$1,5
	SET $9,32
	CMP $90,$3,$9
	BNZ $90,B7_4
	OR $80,$80,$81
B7_4	SL $81,$81,1
	SET $1,-16
	SR $3,$1,2
	SET $9,-4
	CMP $90,$3,$9
	BNZ $90,B7_5
	OR $80,$80,$81
B7_5	SL $81,$81,1
	SRI $3,$1,2
	CMP $90,$3,$9
	BNZ $90,B7_6
	OR $80,$80,$81
B7_6	SL $81,$81,1
	SRU $3,$1,2
	SET $9,#3FFFFFFFFFFFFFFC
	CMP $90,$3,$9
	BNZ $90,B7_7
	OR $80,$80,$81
B7_7	SL $81,$81,1
	SRUI $3,$1,2
	CMP $90,$3,$9
	BNZ $90,B7_8
	OR $80,$80,$81
B7_8	SET $9,#FF
	CMP $90,$80,$9
	BZ $90,Pass7
	SET $0,7
	TRAP 0,Halt,1
Pass7	SET $80,0
	SET $81,1
	SET $5,0
	BZ $5,B8_1
	JMP B8_Fail
B8_1	OR $80,$80,$81
	SL $81,$81,1
	SET $5,1
	BP $5,B8_2
	JMP B8_Fail
B8_2	OR $80,$80,$81
	SL $81,$81,1
	SET $5,-1
	BN $5,B8_3
	JMP B8_Fail
B8_3	OR $80,$80,$81
	SL $81,$81,1
	SET $5,3
	BOD $5,B8_4
	JMP B8_Fail
B8_4	OR $80,$80,$81
	SL $81,$81,1
	SET $5,4
	BEV $5,B8_5
	JMP B8_Fail
B8_5	OR $80,$80,$81
	SL $81,$81,1
	SET $5,0
	BNN $5,B8_6
	JMP B8_Fail
B8_6	OR $80,$80,$81
	SL $81,$81,1
	SET $5,-2
	BNP $5,B8_7
	JMP B8_Fail
B8_7	OR $80,$80,$81
	SL $81,$81,1
	SET $5,1
	BNZ $5,B8_8
	JMP B8_Fail
B8_8	OR $80,$80,$81
	SL $81,$81,1
	SET $5,5
	BZ $5,B8_Fail
	OR $80,$80,$81
	SET $9,#1FF
	CMP $90,$80,$9
	BZ $90,Pass8
B8_Fail	SET $0,8
	TRAP 0,Halt,1
Pass8	SET $1,0
	SET $2,777
	SET $3,555
	CSZ $3,$1,$2
	SET $9,777
	CMP $90,$3,$9
	BZ $90,Pass9a
	SET $0,9
	TRAP 0,Halt,1
Pass9a	SET $1,5
	SET $3,555
	CSZ $3,$1,$2
	SET $9,555
	CMP $90,$3,$9
	BZ $90,Pass9b
	SET $0,9
	TRAP 0,Halt,1
Pass9b	SET $1,3
	SET $3,555
	CSP $3,$1,88
	SET $9,88
	CMP $90,$3,$9
	BZ $90,Pass9c
	SET $0,9
	TRAP 0,Halt,1
Pass9c	SET $1,-3
	SET $2,888
	SET $3,555
	CSP $3,$1,$2
	SET $9,555
	CMP $90,$3,$9
	BZ $90,Pass9d
	SET $0,9
	TRAP 0,Halt,1
Pass9d	SET $1,-1
	SET $2,999
	SET $3,555
	CSN $3,$1,$2
	SET $9,999
	CMP $90,$3,$9
	BZ $90,Pass9e
	SET $0,9
	TRAP 0,Halt,1
Pass9e	SET $1,1
	SET $3,555
	CSN $3,$1,99
	SET $9,555
	CMP $90,$3,$9
	BZ $90,Pass9f
	SET $0,9
	TRAP 0,Halt,1
Pass9f	SET $1,7
	SET $2,111
	SET $3,555
	CSNZ $3,$1,$2
	SET $9,111
	CMP $90,$3,$9
	BZ $90,Pass9g
	SET $0,9
	TRAP 0,Halt,1
Pass9g	SET $1,0
	SET $3,555
	CSNZ $3,$1,$2
	SET $9,555
	CMP $90,$3,$9
	BZ $90,Pass9
	SET $0,9
	TRAP 0,Halt,1
Pass9	SET $1,0
	SET $2,777
	ZSZ $3,$1,$2
	SET $9,777
	CMP $90,$3,$9
	BZ $90,Pass10a
	SET $0,10
	TRAP 0,Halt,1
Pass10a	SET $1,5
	ZSZ $3,$1,$2
	SET $9,0
	CMP $90,$3,$9
	BZ $90,Pass10b
	SET $0,10
	TRAP 0,Halt,1
Pass10b	SET $1,3
	ZSP $3,$1,88
	SET $9,88
	CMP $90,$3,$9
	BZ $90,Pass10c
	SET $0,10
	TRAP 0,Halt,1
Pass10c	SET $1,-3
	SET $2,888
	ZSP $3,$1,$2
	SET $9,0
	CMP $90,$3,$9
	BZ $90,Pass10d
	SET $0,10
	TRAP 0,Halt,1
Pass10d	SET $1,-1
	SET $2,999
	ZSN $3,$1,$2
	SET $9,999
	CMP $90,$3,$9
	BZ $90,Pass10e
	SET $0,10
	TRAP 0,Halt,1
Pass10e	SET $1,1
	ZSN $3,$1,99
	SET $9,0
	CMP $90,$3,$9
	BZ $90,Pass10f
	SET $0,10
	TRAP 0,Halt,1
Pass10f	SET $1,7
	SET $2,111
	ZSNZ $3,$1,$2
	SET $9,111
	CMP $90,$3,$9
	BZ $90,Pass10g
	SET $0,10
	TRAP 0,Halt,1
Pass10g	SET $1,0
	ZSNZ $3,$1,$2
	SET $9,0
	CMP $90,$3,$9
	BZ $90,Pass10
	SET $0,10
	TRAP 0,Halt,1
Pass10	SET $30,#10000
	SET $31,0
	SET $1,-5
	STB $1,$30,$31
	LDB $2,$30,$31
	SET $9,-5
	CMP $90,$2,$9
	BZ $90,Pass11a
	SET $0,11
	TRAP 0,Halt,1
Pass11a	LDBU $3,$30,$31
	SET $9,251
	CMP $90,$3,$9
	BZ $90,Pass11b
	SET $0,11
	TRAP 0,Halt,1
Pass11b	STBI $1,$30,8
	LDBI $2,$30,8
	SET $9,-5
	CMP $90,$2,$9
	BZ $90,Pass11c
	SET $0,11
	TRAP 0,Halt,1
Pass11c	LDBUI $3,$30,8
	SET $9,251
	CMP $90,$3,$9
	BZ $90,Pass11d
	SET $0,11
	TRAP 0,Halt,1
Pass11d	STWI $1,$30,16
	LDWI $2,$30,16
	SET $9,-5
	CMP $90,$2,$9
	BZ $90,Pass11e
	SET $0,11
	TRAP 0,Halt,1
Pass11e	LDWUI $3,$30,16
	SET $9,65531
	CMP $90,$3,$9
	BZ $90,Pass11f
	SET $0,11
	TRAP 0,Halt,1
Pass11f	STTI $1,$30,24
	LDTI $2,$30,24
	SET $9,-5
	CMP $90,$2,$9
	BZ $90,Pass11g
	SET $0,11
	TRAP 0,Halt,1
Pass11g	LDTUI $3,$30,24
	SET $9,4294967291
	CMP $90,$3,$9
	BZ $90,Pass11h
	SET $0,11
	TRAP 0,Halt,1
Pass11h	STOI $1,$30,32
	LDOI $2,$30,32
	SET $9,-5
	CMP $90,$2,$9
	BZ $90,Pass11i
	SET $0,11
	TRAP 0,Halt,1
Pass11i	LDOUI $3,$30,32
	CMP $90,$3,$9
	BZ $90,Pass11
	SET $0,11
	TRAP 0,Halt,1
Pass11	SET $1,#123456789ABCDEF0
	STHT $1,$30,40
	LDHT $2,$30,40
	SET $9,#1234567800000000
	CMP $90,$2,$9
	BZ $90,Pass12a
	SET $0,12
	TRAP 0,Halt,1
Pass12a	SET $1,#400C000000000000
	STSF $1,$30,48
	LDSF $2,$30,48
	CMP $90,$2,$1
	BZ $90,Pass12
	SET $0,12
	TRAP 0,Halt,1
Pass12	STUNC $1,$30,56
	LDUNC $2,$30,56
	CMP $90,$2,$1
	BZ $90,Pass13a
	SET $0,13
	TRAP 0,Halt,1
Pass13a	PUT rP,0
	SET $1,999
	CSWAP $1,$30,64
	SET $9,1
	CMP $90,$1,$9
	BZ $90,Pass13b
	SET $0,13
	TRAP 0,Halt,1
Pass13b	LDOI $2,$30,64
	SET $9,999
	CMP $90,$2,$9
	BZ $90,Pass13c
	SET $0,13
	TRAP 0,Halt,1
Pass13c	LDVTS $4,$30,0
	SET $9,1
	CMP $90,$4,$9
	BZ $90,Pass13
	SET $0,13
	TRAP 0,Halt,1
Pass13	SET $80,0
	SET $81,1
	SET $1,#4000000000000000
	SET $2,#4008000000000000
	FADD $3,$1,$2
	SET $9,#4014000000000000
	CMP $90,$3,$9
	BNZ $90,B14_1
	OR $80,$80,$81
B14_1	SL $81,$81,1
	FSUB $3,$1,$2
	SET $9,#BFF0000000000000
	CMP $90,$3,$9
	BNZ $90,B14_2
	OR $80,$80,$81
B14_2	SL $81,$81,1
	FMUL $3,$1,$2
	SET $9,#4018000000000000
	CMP $90,$3,$9
	BNZ $90,B14_3
	OR $80,$80,$81
B14_3	SL $81,$81,1
	SET $1,#4018000000000000
	SET $2,#4008000000000000
	FDIV $3,$1,$2
	SET $9,#4000000000000000
	CMP $90,$3,$9
	BNZ $90,B14_4
	OR $80,$80,$81
B14_4	SL $81,$81,1
	SET $1,#3FF0000000000000
	SET $2,#4000000000000000
	FCMP $3,$1,$2
	SET $9,-1
	CMP $90,$3,$9
	BNZ $90,B14_5
	OR $80,$80,$81
B14_5	SL $81,$81,1
	FCMPE $3,$2,$1
	SET $9,1
	CMP $90,$3,$9
	BNZ $90,B14_6
	OR $80,$80,$81
B14_6	SL $81,$81,1
	SET $1,#4000000000000000
	FEQL $3,$1,$1
	SET $9,1
	CMP $90,$3,$9
	BNZ $90,B14_7
	OR $80,$80,$81
B14_7	SL $81,$81,1
	SET $2,#4008000000000000
	FEQLE $3,$1,$2
	SET $9,0
	CMP $90,$3,$9
	BNZ $90,B14_8
	OR $80,$80,$81
B14_8	SL $81,$81,1
	SET $1,#7FF8000000000000
	SET $2,#3FF0000000000000
	FUN $3,$1,$2
	SET $9,1
	CMP $90,$3,$9
	BNZ $90,B14_9
	OR $80,$80,$81
B14_9	SL $81,$81,1
	SET $1,#3FF0000000000000
	SET $2,#4000000000000000
	FUNE $3,$1,$2
	SET $9,0
	CMP $90,$3,$9
	BNZ $90,B14_10
	OR $80,$80,$81
B14_10	SET $9,#3FF
	CMP $90,$80,$9
	BZ $90,Pass14
	SET $0,14
	TRAP 0,Halt,1
Pass14	SET $80,0
	SET $81,1
	SET $1,#4010000000000000
	FSQRT $2,$1
	SET $9,#4000000000000000
	CMP $90,$2,$9
	BNZ $90,B15_1
	OR $80,$80,$81
B15_1	SL $81,$81,1
	SET $0,#401C000000000000
	SET $1,#4008000000000000
	FREM $2,$1
	SET $9,#3FF0000000000000
	CMP $90,$2,$9
	BNZ $90,B15_2
	OR $80,$80,$81
B15_2	SL $81,$81,1
	SET $1,#4004000000000000
	FINT $2,$1
	SET $9,#4000000000000000
	CMP $90,$2,$9
	BNZ $90,B15_3
	OR $80,$80,$81
B15_3	SL $81,$81,1
	SET $1,#400F333333333333
	FIX $2,$1
	SET $9,3
	CMP $90,$2,$9
	BNZ $90,B15_4
	OR $80,$80,$81
B15_4	SL $81,$81,1
	FIXU $2,$1
	CMP $90,$2,$9
	BNZ $90,B15_5
	OR $80,$80,$81
B15_5	SL $81,$81,1
	SET $1,5
	FLOT $2,$1
	SET $9,#4014000000000000
	CMP $90,$2,$9
	BNZ $90,B15_6
	OR $80,$80,$81
B15_6	SL $81,$81,1
	SET $1,9
	FLOTU $2,$1
	SET $9,#4022000000000000
	CMP $90,$2,$9
	BNZ $90,B15_7
	OR $80,$80,$81
B15_7	SL $81,$81,1
	SET $1,5
	SFLOT $2,$1
	SET $9,#4014000000000000
	CMP $90,$2,$9
	BNZ $90,B15_8
	OR $80,$80,$81
B15_8	SET $9,#FF
	CMP $90,$80,$9
	BZ $90,Pass15
	SET $0,15
	TRAP 0,Halt,1
Pass15	SET $1,55
	PUT rL,$1
	GET $2,rL
	SET $9,55
	CMP $90,$2,$9
	BZ $90,Pass16a
	SET $0,16
	TRAP 0,Halt,1
Pass16a	PUT rE,77
	GET $2,rE
	SET $9,77
	CMP $90,$2,$9
	BZ $90,Pass16
	SET $0,16
	TRAP 0,Halt,1
Pass16	SET $1,4242
	SET $60,#20000
	SAVE $60,0
	SET $1,111
	SET $61,#20000
	UNSAVE 0,$61
	SET $9,4242
	CMP $90,$1,$9
	BZ $90,Pass17
	SET $0,17
	TRAP 0,Halt,1
Pass17	SETL $5,#1111
	INCML $5,#2222
	INCMH $5,#3333
	INCH $5,#4444
	ORL $5,#000F
	ORH $5,#8000
	ANDNH $5,#4000
	SET $9,#844433332222111F
	CMP $90,$5,$9
	BZ $90,Pass18
	SET $0,18
	TRAP 0,Halt,1
Pass18	TRAP 0,Halt,0
`
	var out bytes.Buffer
	m := assembleAndRun(t, src, &out)
	if m.ExitCode != 0 {
		t.Fatalf("exit code = %d, want 0 (failing block ordinal in $0 = %d)", m.ExitCode, m.Reg.Get(0))
	}
}
