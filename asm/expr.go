package asm

import (
	"fmt"
	"strconv"
	"strings"
)

type tokKind int

const (
	tNum tokKind = iota
	tIdent
	tPlus
	tMinus
)

type exprTok struct {
	kind tokKind
	text string
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool { return isIdentStart(c) || isDigit(c) }

// lexExpr tokenizes an MMIXAL expression: decimal/hex/octal/char literals,
// '@' (current location), '$'-prefixed register numbers, plain
// identifiers, and the binary/unary '+'/'-' operators.
func lexExpr(s string) []exprTok {
	var toks []exprTok
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '+':
			toks = append(toks, exprTok{tPlus, "+"})
			i++
		case c == '-':
			toks = append(toks, exprTok{tMinus, "-"})
			i++
		case c == '@':
			toks = append(toks, exprTok{tIdent, "@"})
			i++
		case c == '#':
			j := i + 1
			for j < len(s) && isHexDigit(s[j]) {
				j++
			}
			toks = append(toks, exprTok{tNum, s[i:j]})
			i = j
		case c == '\'':
			j := i + 1
			if j < len(s) {
				j++
			}
			if j < len(s) && s[j] == '\'' {
				j++
			}
			toks = append(toks, exprTok{tNum, s[i:j]})
			i = j
		case isDigit(c):
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			toks = append(toks, exprTok{tNum, s[i:j]})
			i = j
		case c == '$':
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			toks = append(toks, exprTok{tIdent, s[i:j]})
			i = j
		case isIdentStart(c):
			j := i
			for j < len(s) && isIdentCont(s[j]) {
				j++
			}
			toks = append(toks, exprTok{tIdent, s[i:j]})
			i = j
		default:
			i++
		}
	}
	return toks
}

// parseLiteral converts a single numeric/char token's text to its value:
// '#' prefix is hex, a leading-zero multi-digit run is octal, a quoted
// single character is its byte value, everything else is decimal.
func parseLiteral(text string) (uint64, error) {
	switch {
	case strings.HasPrefix(text, "#"):
		return strconv.ParseUint(text[1:], 16, 64)
	case strings.HasPrefix(text, "'"):
		inner := strings.Trim(text, "'")
		if inner == "" {
			return 0, fmt.Errorf("empty character literal")
		}
		return uint64(inner[0]), nil
	case len(text) > 1 && text[0] == '0':
		return strconv.ParseUint(text, 8, 64)
	default:
		return strconv.ParseUint(text, 10, 64)
	}
}

type exprTerm struct {
	neg bool
	tok exprTok
}

// splitTerms groups a token stream into signed operand terms: a run of
// +/- tokens sets the sign of the operand that follows.
func splitTerms(toks []exprTok) []exprTerm {
	var terms []exprTerm
	neg := false
	for _, t := range toks {
		switch t.kind {
		case tPlus:
			// no-op: sign unchanged by a leading/binary plus
		case tMinus:
			neg = !neg
		default:
			terms = append(terms, exprTerm{neg: neg, tok: t})
			neg = false
		}
	}
	return terms
}

// eval evaluates an MMIXAL expression as a sum of signed terms: numeric
// literals, '@' (the value of here), '$N' register numbers, and symbol
// names looked up in a.Symtab. resolved is false if any identifier term
// is not yet Defined (pass 1 forward reference); the returned value is
// then only a placeholder.
func (a *Assembler) eval(expr string, here uint64) (value uint64, resolved bool, err error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, false, fmt.Errorf("empty expression")
	}
	terms := splitTerms(lexExpr(expr))
	if len(terms) == 0 {
		return 0, false, fmt.Errorf("no terms in expression %q", expr)
	}
	resolved = true
	for _, tm := range terms {
		var v uint64
		switch tm.tok.kind {
		case tNum:
			v, err = parseLiteral(tm.tok.text)
			if err != nil {
				return 0, false, fmt.Errorf("expression %q: %w", expr, err)
			}
		case tIdent:
			switch {
			case tm.tok.text == "@":
				v = here
			case strings.HasPrefix(tm.tok.text, "$"):
				n, convErr := strconv.Atoi(tm.tok.text[1:])
				if convErr != nil {
					return 0, false, fmt.Errorf("bad register operand %q", tm.tok.text)
				}
				v = uint64(n)
			default:
				sym, found := a.Symtab.Lookup(tm.tok.text)
				if !found {
					resolved = false
					v = 0
				} else {
					v = sym.Value
				}
			}
		}
		if tm.neg {
			value -= v
		} else {
			value += v
		}
	}
	return value, resolved, nil
}
