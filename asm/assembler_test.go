package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"mmixgo/asm"
	"mmixgo/mmo"
	"mmixgo/vm"
)

func assembleAndRun(t *testing.T, src string, out *bytes.Buffer) *vm.Machine {
	t.Helper()
	a := asm.NewAssembler()
	img, err := a.Assemble(src)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	m := vm.NewMachine(out)
	m.LoadImage(img)
	if err := m.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return m
}

// Hello world end-to-end scenario.
func TestHelloWorld(t *testing.T) {
	src := `
	LOC Data_Segment
	GREG @
Text	BYTE "Hello world!",10,0
	LOC #100
Main	LDA $255,Text
	TRAP 0,Fputs,StdOut
	TRAP 0,Halt,0
`
	var out bytes.Buffer
	m := assembleAndRun(t, src, &out)
	if m.ExitCode != 0 {
		t.Fatalf("exit code = %d, want 0", m.ExitCode)
	}
	if out.String() != "Hello world!\n" {
		t.Fatalf("stdout = %q, want %q", out.String(), "Hello world!\n")
	}
}

// Linked-list sum end-to-end scenario: a static list of octas 1, 2, 3
// with explicit next pointers, traversed until a NULL pointer.
func TestLinkedListSum(t *testing.T) {
	src := `
	LOC Data_Segment
Node3	OCTA 3
	OCTA 0
Node2	OCTA 2
	OCTA Node3
Node1	OCTA 1
	OCTA Node2
	LOC #100
Main	SET $1,Node1
	SET $5,0
Loop	LDO $2,$1,0
	ADD $5,$5,$2
	LDO $1,$1,8
	PBNZ $1,Loop
	TRAP 0,Halt,0
`
	var out bytes.Buffer
	m := assembleAndRun(t, src, &out)
	if got := m.Reg.Get(5); got != 6 {
		t.Fatalf("$5 = %d, want 6", got)
	}
}

// Fibonacci(20) end-to-end scenario.
func TestFibonacci20(t *testing.T) {
	src := `
	LOC #100
Main	SET $1,0
	SET $2,1
	SET $3,20
Loop	SUB $3,$3,1
	BZ $3,Done
	ADD $4,$1,$2
	SET $1,$2
	SET $2,$4
	JMP Loop
Done	SET $0,$2
	TRAP 0,Halt,0
`
	var out bytes.Buffer
	m := assembleAndRun(t, src, &out)
	if got := m.Reg.Get(0); got != 6765 {
		t.Fatalf("$0 = %d, want 6765 (fib(20))", got)
	}
}

// Euclidean remainder end-to-end scenario: eight sub-tests, one success
// bit per test accumulated in $20, expecting 0xFF after all eight pass.
// MMIX's DIV truncates toward zero like Go's int64 division, so a
// Euclidean (always-nonnegative) remainder is computed from DIV's
// truncating remainder by adding the modulus when the raw remainder is
// negative.
func TestEuclideanRemainder(t *testing.T) {
	src := `
	LOC #100
Main	SET $20,0
	SET $21,1

	SET $1,42
	SET $2,100
	DIV $3,$1,$2
	GET $4,rR
	BNN $4,OK1
	ADD $4,$4,$2
OK1	CMP $5,$4,42
	BNZ $5,Fail1
	OR $20,$20,$21
Fail1	SL $21,$21,1

	SET $1,142
	SET $2,100
	DIV $3,$1,$2
	GET $4,rR
	BNN $4,OK2
	ADD $4,$4,$2
OK2	CMP $5,$4,42
	BNZ $5,Fail2
	OR $20,$20,$21
Fail2	SL $21,$21,1

	SET $1,58
	NEG $1,0,$1
	SET $2,100
	DIV $3,$1,$2
	GET $4,rR
	BNN $4,OK3
	ADD $4,$4,$2
OK3	CMP $5,$4,42
	BNZ $5,Fail3
	OR $20,$20,$21
Fail3	SL $21,$21,1

	SET $1,194
	NEG $1,0,$1
	SET $2,100
	DIV $3,$1,$2
	GET $4,rR
	BNN $4,OK4
	ADD $4,$4,$2
OK4	CMP $5,$4,6
	BNZ $5,Fail4
	OR $20,$20,$21
Fail4	SL $21,$21,1

	SET $1,0
	SET $2,100
	DIV $3,$1,$2
	GET $4,rR
	BNN $4,OK5
	ADD $4,$4,$2
OK5	CMP $5,$4,0
	BNZ $5,Fail5
	OR $20,$20,$21
Fail5	SL $21,$21,1

	SET $1,100
	SET $2,100
	DIV $3,$1,$2
	GET $4,rR
	BNN $4,OK6
	ADD $4,$4,$2
OK6	CMP $5,$4,0
	BNZ $5,Fail6
	OR $20,$20,$21
Fail6	SL $21,$21,1

	SET $1,100
	NEG $1,0,$1
	SET $2,100
	DIV $3,$1,$2
	GET $4,rR
	BNN $4,OK7
	ADD $4,$4,$2
OK7	CMP $5,$4,0
	BNZ $5,Fail7
	OR $20,$20,$21
Fail7	SL $21,$21,1

	SET $1,1
	NEG $1,0,$1
	SET $2,100
	DIV $3,$1,$2
	GET $4,rR
	BNN $4,OK8
	ADD $4,$4,$2
OK8	CMP $5,$4,99
	BNZ $5,Fail8
	OR $20,$20,$21
Fail8	TRAP 0,Halt,0
`
	var out bytes.Buffer
	m := assembleAndRun(t, src, &out)
	if got := m.Reg.Get(20); got != 0xFF {
		t.Fatalf("$20 = %#x, want 0xFF (all 8 sub-tests passed)", got)
	}
}

// PUSHJ/POP with three results end-to-end scenario.
func TestPushJPopThreeResults(t *testing.T) {
	src := `
	LOC #100
Main	SET $4,111
	PUSHJ $5,Callee
	TRAP 0,Halt,0
Callee	SET $0,300
	SET $1,301
	SET $2,302
	POP 3,0
`
	var out bytes.Buffer
	m := assembleAndRun(t, src, &out)
	if got := m.Reg.Get(5); got != 300 {
		t.Fatalf("$5 = %d, want 300", got)
	}
	if got := m.Reg.Get(6); got != 301 {
		t.Fatalf("$6 = %d, want 301", got)
	}
	if got := m.Reg.Get(7); got != 302 {
		t.Fatalf("$7 = %d, want 302", got)
	}
	if got := m.Reg.Get(4); got != 111 {
		t.Fatalf("$4 (below window) = %d, want 111 preserved", got)
	}
}

// Assembly/disassembly stability (testable property 2): assembling then
// reloading through the .mmo round trip and running produces the same
// observable output as assembling and running directly.
func TestAssembleReloadStability(t *testing.T) {
	src := `
	LOC Data_Segment
Text	BYTE "hi",10,0
	LOC #100
Main	LDA $255,Text
	TRAP 0,Fputs,StdOut
	TRAP 0,Halt,3
`
	a := asm.NewAssembler()
	img, err := a.Assemble(src)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	var direct bytes.Buffer
	m1 := vm.NewMachine(&direct)
	m1.LoadImage(img)
	if err := m1.Run(); err != nil {
		t.Fatalf("direct run: %v", err)
	}

	var obj bytes.Buffer
	if err := mmo.Write(&obj, img); err != nil {
		t.Fatalf("write: %v", err)
	}
	img2, err := mmo.Load(&obj)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	var reloaded bytes.Buffer
	m2 := vm.NewMachine(&reloaded)
	m2.LoadImage(img2)
	if err := m2.Run(); err != nil {
		t.Fatalf("reloaded run: %v", err)
	}

	if direct.String() != reloaded.String() || direct.String() != "hi\n" {
		t.Fatalf("direct = %q, reloaded = %q", direct.String(), reloaded.String())
	}
	if m1.ExitCode != m2.ExitCode || m1.ExitCode != 3 {
		t.Fatalf("exit codes differ: %d vs %d", m1.ExitCode, m2.ExitCode)
	}
}

func TestUnknownMnemonicReported(t *testing.T) {
	a := asm.NewAssembler()
	_, err := a.Assemble("\tLOC #100\nMain\tBOGUS $1,$2,$3\n")
	if err == nil {
		t.Fatal("expected error for unknown mnemonic")
	}
	if !strings.Contains(err.Error(), "BOGUS") {
		t.Fatalf("error %q does not name the bad mnemonic", err)
	}
}
