package asm

import "testing"

// A character literal's closing quote must not be mistaken for the start
// of a new literal, which would otherwise swallow the rest of the operand
// list into the literal's body.
func TestSplitOperandsCharLiteralThenMoreOperands(t *testing.T) {
	ops, err := splitOperands("'A',10")
	if err != nil {
		t.Fatalf("splitOperands: %v", err)
	}
	want := []string{"'A'", "10"}
	if len(ops) != len(want) {
		t.Fatalf("operands = %v, want %v", ops, want)
	}
	for i, w := range want {
		if ops[i] != w {
			t.Fatalf("operand %d = %q, want %q", i, ops[i], w)
		}
	}
}

func TestSplitOperandsCharLiteralComma(t *testing.T) {
	ops, err := splitOperands("','")
	if err != nil {
		t.Fatalf("splitOperands: %v", err)
	}
	if len(ops) != 1 || ops[0] != "','" {
		t.Fatalf("operands = %v, want [',']", ops)
	}
}

func TestTokenizeLineByteCharLiteralThenNumber(t *testing.T) {
	ln, err := tokenizeLine("Text\tBYTE 'A',10,0")
	if err != nil {
		t.Fatalf("tokenizeLine: %v", err)
	}
	if ln.Label != "Text" || ln.Op != "BYTE" {
		t.Fatalf("label/op = %q/%q, want Text/BYTE", ln.Label, ln.Op)
	}
	want := []string{"'A'", "10", "0"}
	if len(ln.Operands) != len(want) {
		t.Fatalf("operands = %v, want %v", ln.Operands, want)
	}
	for i, w := range want {
		if ln.Operands[i] != w {
			t.Fatalf("operand %d = %q, want %q", i, ln.Operands[i], w)
		}
	}
}

func TestStripCommentIgnoresCharLiteralQuotes(t *testing.T) {
	got := stripComment("BYTE '%' % trailing comment")
	want := "BYTE '%' "
	if got != want {
		t.Fatalf("stripComment = %q, want %q", got, want)
	}
}
