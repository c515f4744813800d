package lexer

import (
	"github.com/svlex/svlex/internal/classify"
	"github.com/svlex/svlex/internal/diag"
	"github.com/svlex/svlex/internal/token"
)

// scanStringLiteral scans a double-quoted string literal, decoding
// escapes into arena-owned storage. An unescaped newline terminates the
// literal early (NewlineInStringLiteral); reaching the true end of the
// buffer without a closing quote diagnoses UnterminatedStringLiteral but
// the token is still emitted with whatever was scanned.
func (l *Lexer) scanStringLiteral(start int) token.Token {
	l.cur.Advance(1) // consume opening quote

	decoded := make([]byte, 0, 16)
	for {
		b := l.cur.Peek(0)

		switch {
		case b == '"':
			l.cur.Advance(1)
			return l.makeStringToken(start, decoded)

		case classify.IsNewlineStart(b):
			l.diagnose(diag.CodeNewlineInStringLiteral, start, l.cur.Pos(), "unescaped newline in string literal")
			return l.makeStringToken(start, decoded)

		case b == 0 && l.cur.ReallyAtEnd():
			l.diagnose(diag.CodeUnterminatedStringLiteral, start, l.cur.Pos(), "unterminated string literal")
			return l.makeStringToken(start, decoded)

		case b == 0:
			l.diagnose(diag.CodeEmbeddedNull, l.cur.Pos(), l.cur.Pos()+1, "embedded NUL in string literal")
			l.cur.Advance(1)

		case b == '\\':
			decoded = l.scanStringEscape(decoded)

		default:
			decoded = append(decoded, b)
			l.cur.Advance(1)
		}
	}
}

func (l *Lexer) makeStringToken(start int, decoded []byte) token.Token {
	info := token.StringLiteralInfo{
		Raw:     l.buf.Bytes()[start:l.cur.Pos()],
		Decoded: l.arena.InternBytes(decoded),
	}
	return l.makeToken(token.StringLiteral, info, start)
}

// scanStringEscape consumes one backslash escape sequence and appends
// its decoded byte(s) to decoded.
func (l *Lexer) scanStringEscape(decoded []byte) []byte {
	escStart := l.cur.Pos()
	l.cur.Advance(1) // consume '\'

	// Line continuation: backslash directly followed by a line ending
	// is elided entirely, contributing no bytes to the decoded value.
	if classify.IsNewlineStart(l.cur.Peek(0)) {
		if l.cur.Consume('\r') {
			l.cur.Consume('\n')
		} else {
			l.cur.Advance(1)
		}
		return decoded
	}

	switch c := l.cur.Peek(0); c {
	case 'n':
		l.cur.Advance(1)
		return append(decoded, '\n')
	case 't':
		l.cur.Advance(1)
		return append(decoded, '\t')
	case '\\':
		l.cur.Advance(1)
		return append(decoded, '\\')
	case '"':
		l.cur.Advance(1)
		return append(decoded, '"')
	case 'v':
		l.cur.Advance(1)
		return append(decoded, '\v')
	case 'f':
		l.cur.Advance(1)
		return append(decoded, '\f')
	case 'a':
		l.cur.Advance(1)
		return append(decoded, '\a')
	case 'x':
		return l.scanHexEscape(decoded, escStart)
	default:
		if classify.IsOctalDigit(c) {
			return l.scanOctalEscape(decoded)
		}
		l.cur.Advance(1)
		l.diagnose(diag.CodeUnknownEscapeCode, escStart, l.cur.Pos(), "unknown escape code, passed through unchanged")
		return append(decoded, c)
	}
}

func (l *Lexer) scanOctalEscape(decoded []byte) []byte {
	start := l.cur.Pos()
	val := 0
	n := 0
	for n < 3 && classify.IsOctalDigit(l.cur.Peek(0)) {
		val = val*8 + int(l.cur.Peek(0)-'0')
		l.cur.Advance(1)
		n++
	}
	if val > 0xFF {
		l.diagnose(diag.CodeOctalEscapeCodeTooBig, start, l.cur.Pos(), "octal escape value exceeds a byte")
		val &= 0xFF
	}
	return append(decoded, byte(val))
}

func (l *Lexer) scanHexEscape(decoded []byte, escStart int) []byte {
	l.cur.Advance(1) // consume 'x'
	val := 0
	n := 0
	for n < 2 && classify.IsHexDigit(l.cur.Peek(0)) {
		val = val*16 + classify.HexValue(l.cur.Peek(0))
		l.cur.Advance(1)
		n++
	}
	if n == 0 {
		l.diagnose(diag.CodeInvalidHexEscapeCode, escStart, l.cur.Pos(), "\\x escape with no hex digits")
		return decoded
	}
	return append(decoded, byte(val))
}
