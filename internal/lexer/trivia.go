package lexer

import (
	"github.com/svlex/svlex/internal/classify"
	"github.com/svlex/svlex/internal/diag"
	"github.com/svlex/svlex/internal/token"
)

// scanTrivia collects leading trivia for the next token into l.triviaBuf.
// It returns true when, in a non-Normal mode, it has just consumed an
// unescaped newline (or a block comment split by one) that must
// terminate the current directive (spec section 4.2, 4.7) — the caller
// is then responsible for emitting an EndOfDirective token before
// resuming normal scanning.
func (l *Lexer) scanTrivia() bool {
	l.triviaBuf = l.triviaBuf[:0]
	for {
		b := l.cur.Peek(0)

		switch {
		case classify.IsHorizontalWhitespace(b):
			l.scanWhitespace()

		case b == '\\' && l.mode != Normal && classify.IsNewlineStart(l.cur.Peek(1)):
			// Backslash-newline escapes the newline in directive mode
			// only; it is consumed as ordinary trivia and scanning
			// continues without signaling termination. The recorded
			// EndOfLine trivium spans the backslash as well.
			escStart := l.cur.Pos()
			l.cur.Advance(1)
			l.scanNewline()
			l.triviaBuf[len(l.triviaBuf)-1].Span = l.span(escStart, l.cur.Pos())

		case b == '/' && l.cur.Peek(1) == '/':
			l.scanLineComment()

		case b == '/' && l.cur.Peek(1) == '*':
			l.scanBlockComment()

		case classify.IsNewlineStart(b):
			l.scanNewline()
			if l.mode != Normal {
				return true
			}

		default:
			return false
		}
	}
}

func (l *Lexer) scanWhitespace() {
	start := l.cur.Pos()
	for classify.IsHorizontalWhitespace(l.cur.Peek(0)) {
		l.cur.Advance(1)
	}
	l.addTrivia(token.TriviaWhitespace, start)
}

// scanNewline consumes a line-ending sequence: \r\n, \r, or \n.
func (l *Lexer) scanNewline() {
	start := l.cur.Pos()
	if l.cur.Consume('\r') {
		l.cur.Consume('\n')
	} else {
		l.cur.Advance(1)
	}
	l.addTrivia(token.TriviaEndOfLine, start)
}

// scanLineComment consumes `//` through the next line ending or true EOF.
func (l *Lexer) scanLineComment() {
	start := l.cur.Pos()
	l.cur.Advance(2) // consume "//"
	for {
		b := l.cur.Peek(0)
		if classify.IsNewlineStart(b) {
			break
		}
		if b == 0 {
			if l.cur.ReallyAtEnd() {
				break
			}
			l.diagnose(diag.CodeEmbeddedNull, l.cur.Pos(), l.cur.Pos()+1, "embedded NUL in line comment")
		}
		l.cur.Advance(1)
	}
	l.addTrivia(token.TriviaLineComment, start)
}

// scanBlockComment consumes `/* ... */`. Nested `/*` is not legal SystemVerilog:
// it is diagnosed and ignored, scanning continues to the real terminator.
// An unterminated comment at true EOF is diagnosed but still emitted. In a
// non-Normal mode, a newline encountered before the terminator stops the
// scan early (leaving the newline for the outer trivia loop to consume and
// signal directive termination) and diagnoses SplitBlockCommentInDirective.
func (l *Lexer) scanBlockComment() {
	start := l.cur.Pos()
	l.cur.Advance(2) // consume "/*"

	for {
		if l.cur.ReallyAtEnd() {
			l.diagnose(diag.CodeUnterminatedBlockComment, start, l.cur.Pos(), "unterminated block comment")
			break
		}
		if l.mode != Normal && classify.IsNewlineStart(l.cur.Peek(0)) {
			l.diagnose(diag.CodeSplitBlockCommentInDirective, start, l.cur.Pos(),
				"block comment split by newline inside a directive")
			break
		}
		if l.cur.Peek(0) == '/' && l.cur.Peek(1) == '*' {
			l.diagnose(diag.CodeNestedBlockComment, l.cur.Pos(), l.cur.Pos()+2, "nested block comment")
			l.cur.Advance(2)
			continue
		}
		if l.cur.Peek(0) == '*' && l.cur.Peek(1) == '/' {
			l.cur.Advance(2)
			break
		}
		l.cur.Advance(1)
	}
	l.addTrivia(token.TriviaBlockComment, start)
}

func (l *Lexer) addTrivia(kind token.TriviaKind, start int) {
	l.triviaBuf = append(l.triviaBuf, token.Trivia{
		Kind: kind,
		Span: l.span(start, l.cur.Pos()),
	})
}
