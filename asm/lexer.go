/*
   mmixgo - MMIXAL lexer: splits one source line into label, mnemonic,
   operand list and comment.

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
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
*/

// Package asm implements the two-pass MMIXAL assembler: lexer, expression
// evaluator, symbol table, directive handler, opcode table and driver.
package asm

import (
	"fmt"
	"strings"
)

// Line is one tokenized MMIXAL source line: optional label, mnemonic, and
// comma-separated operand list. A Blank line carries no label or mnemonic
// (entirely comment or whitespace).
type Line struct {
	Label    string
	Op       string
	Operands []string
	Blank    bool
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

// tokenizeLine strips comments, splits off a column-one label and the
// mnemonic, then splits the remainder into operands on top-level commas
// (commas inside quoted strings or character literals do not separate
// operands).
func tokenizeLine(raw string) (Line, error) {
	line := stripComment(raw)
	line = strings.TrimRight(line, " \t\r\n")
	if strings.TrimSpace(line) == "" {
		return Line{Blank: true}, nil
	}

	var label string
	rest := line
	if len(line) > 0 && !isSpace(line[0]) {
		i := 0
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		label = line[:i]
		rest = line[i:]
	}
	rest = strings.TrimLeft(rest, " \t")
	if rest == "" {
		return Line{Label: label}, nil
	}

	i := 0
	for i < len(rest) && !isSpace(rest[i]) {
		i++
	}
	op := rest[:i]
	rest = strings.TrimLeft(rest[i:], " \t")

	operands, err := splitOperands(rest)
	if err != nil {
		return Line{}, fmt.Errorf("operand list: %w", err)
	}
	return Line{Label: label, Op: op, Operands: operands}, nil
}

// closedCharLiteral reports whether s holds a quote, one body byte and a
// closing quote starting at i, i.e. a complete 'x' literal.
func closedCharLiteral(s string, i int) bool {
	return i+2 < len(s) && s[i+2] == '\''
}

// stripComment removes a trailing `%` or `//` comment, ignoring either
// marker while scanning inside a quoted string or character literal. A
// character literal is exactly quote, body byte, quote: it is skipped as
// one unit so its closing quote is never mistaken for the start of the
// next literal.
func stripComment(s string) string {
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inString:
			if c == '"' {
				inString = false
			}
		case c == '\'':
			if closedCharLiteral(s, i) {
				i += 2
			}
		case c == '"':
			inString = true
		case c == '%':
			return s[:i]
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			return s[:i]
		}
	}
	return s
}

// splitOperands splits s on top-level commas, preserving commas that occur
// inside a quoted string or a character literal. A character literal
// (quote, body byte, quote) is consumed as one unit so its closing quote
// is never mistaken for the start of a new literal.
func splitOperands(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var operands []string
	var cur strings.Builder
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inString:
			cur.WriteByte(c)
			if c == '"' {
				inString = false
			}
		case c == '\'':
			cur.WriteByte(c)
			if closedCharLiteral(s, i) {
				cur.WriteByte(s[i+1])
				cur.WriteByte(s[i+2])
				i += 2
			}
		case c == '"':
			inString = true
			cur.WriteByte(c)
		case c == ',':
			operands = append(operands, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if inString {
		return nil, fmt.Errorf("unterminated string literal")
	}
	operands = append(operands, strings.TrimSpace(cur.String()))
	return operands, nil
}
