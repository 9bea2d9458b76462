package mmo_test

import (
	"bytes"
	"testing"

	"mmixgo/asm"
	"mmixgo/mmo"
)

func TestWriteLoadRoundTrip(t *testing.T) {
	src := `
	LOC Data_Segment
	GREG @
Text	BYTE "ok",10,0
	LOC #100
Main	LDA $255,Text
	TRAP 0,Fputs,StdOut
	TRAP 0,Halt,5
`
	a := asm.NewAssembler()
	img, err := a.Assemble(src)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	var buf bytes.Buffer
	if err := mmo.Write(&buf, img); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := mmo.Load(&buf)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Entry != img.Entry {
		t.Fatalf("entry = %#x, want %#x", got.Entry, img.Entry)
	}
	if len(got.Segments) != len(img.Segments) {
		t.Fatalf("segment count = %d, want %d", len(got.Segments), len(img.Segments))
	}
	for i, seg := range img.Segments {
		if got.Segments[i].Addr != seg.Addr {
			t.Fatalf("segment %d addr = %#x, want %#x", i, got.Segments[i].Addr, seg.Addr)
		}
		if !bytes.Equal(got.Segments[i].Bytes, seg.Bytes) {
			t.Fatalf("segment %d bytes differ", i)
		}
	}
	for idx, v := range img.Globals {
		if got.Globals[idx] != v {
			t.Fatalf("global %d = %#x, want %#x", idx, got.Globals[idx], v)
		}
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	_, err := mmo.Load(bytes.NewReader([]byte("XXXX")))
	if err == nil {
		t.Fatal("expected error for bad magic")
	}
}
