package lexer

import (
	"github.com/svlex/svlex/internal/classify"
	"github.com/svlex/svlex/internal/diag"
	"github.com/svlex/svlex/internal/syntaxfacts"
	"github.com/svlex/svlex/internal/token"
)

// scanIdentifier scans a plain identifier: [A-Za-z_][A-Za-z0-9_$]*. The
// lexer never reclassifies keywords itself; that is left to the parser
// via syntaxfacts.IsKeyword, so every plain identifier comes back as
// Identifier/IdentNormal regardless of its text.
func (l *Lexer) scanIdentifier(start int) token.Token {
	l.cur.Advance(1)
	for classify.IsIdentifierChar(l.cur.Peek(0)) {
		l.cur.Advance(1)
	}
	raw := l.buf.Bytes()[start:l.cur.Pos()]
	info := token.IdentifierInfo{Raw: raw, Category: token.IdentNormal}
	return l.makeToken(token.Identifier, info, start)
}

// scanDollar scans a leading `$`: either a bare Dollar punctuator or, if
// followed immediately by an identifier body byte ([A-Za-z0-9_$]), a
// system identifier such as $display.
func (l *Lexer) scanDollar(start int) token.Token {
	l.cur.Advance(1)
	if !classify.IsIdentifierChar(l.cur.Peek(0)) {
		return l.makeToken(token.Dollar, nil, start)
	}
	for classify.IsIdentifierChar(l.cur.Peek(0)) {
		l.cur.Advance(1)
	}
	raw := l.arena.InternBytes(l.buf.Bytes()[start:l.cur.Pos()])
	info := token.IdentifierInfo{Raw: raw, Category: token.IdentSystem}
	return l.makeToken(token.SystemIdentifier, info, start)
}

// scanEscapedIdentifier scans a backslash-escaped identifier: `\` followed
// by one or more printable non-whitespace bytes, terminated by
// whitespace, a line ending, or the end of the buffer. Whitespace
// immediately after the backslash diagnoses EscapedWhitespace and yields
// an Unknown token instead.
func (l *Lexer) scanEscapedIdentifier(start int) token.Token {
	l.cur.Advance(1) // consume '\'
	bodyStart := l.cur.Pos()

	if !classify.IsPrintable(l.cur.Peek(0)) {
		l.diagnose(diag.CodeEscapedWhitespace, start, l.cur.Pos()+1,
			"escaped identifier has no body before whitespace")
		return l.makeToken(token.Unknown, l.rawLexeme(start), start)
	}

	for classify.IsPrintable(l.cur.Peek(0)) {
		l.cur.Advance(1)
	}
	raw := l.arena.InternBytes(l.buf.Bytes()[bodyStart:l.cur.Pos()])
	info := token.IdentifierInfo{Raw: raw, Category: token.IdentEscaped}
	return l.makeToken(token.Identifier, info, start)
}

// scanDirective scans everything that begins with a backquote: the three
// macro-escape tokens ( `" , `` , `\`" ), or a directive/macro-usage name
// whose resolved kind determines the lexer's mode transition.
func (l *Lexer) scanDirective(start int) token.Token {
	l.cur.Advance(1) // consume '`'

	switch {
	case l.cur.Consume('"'):
		return l.makeToken(token.MacroQuote, nil, start)
	case l.cur.Consume('`'):
		return l.makeToken(token.MacroPaste, nil, start)
	case l.cur.Peek(0) == '\\' && l.cur.Peek(1) == '`' && l.cur.Peek(2) == '"':
		l.cur.Advance(3)
		return l.makeToken(token.MacroEscapedQuote, nil, start)
	}

	nameStart := l.cur.Pos()
	if !classify.IsIdentifierStart(l.cur.Peek(0)) {
		l.diagnose(diag.CodeMisplacedDirectiveChar, start, l.cur.Pos(), "backquote not followed by a directive name")
		return l.makeToken(token.Unknown, l.rawLexeme(start), start)
	}
	for classify.IsIdentifierChar(l.cur.Peek(0)) {
		l.cur.Advance(1)
	}
	name := l.buf.Bytes()[nameStart:l.cur.Pos()]
	kind := syntaxfacts.DirectiveKindOf(string(name))
	raw := l.arena.InternBytes(l.buf.Bytes()[start:l.cur.Pos()])
	info := token.DirectiveInfo{Raw: raw, Kind: kind}

	switch kind {
	case token.DirectiveInclude:
		l.mode = Include
		return l.makeToken(token.Directive, info, start)
	case token.DirectiveMacroUsage:
		// A macro invocation is just a reference, not a directive line;
		// it never switches the lexer out of Normal mode.
		return l.makeToken(token.MacroUsage, info, start)
	default:
		l.mode = Directive
		return l.makeToken(token.Directive, info, start)
	}
}
