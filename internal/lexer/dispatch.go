package lexer

import (
	"github.com/svlex/svlex/internal/classify"
	"github.com/svlex/svlex/internal/diag"
	"github.com/svlex/svlex/internal/token"
)

// dispatch scans exactly one token starting at the lead byte currently
// under the cursor. The bool result tells Lex whether to loop back for
// another attempt instead of returning the token; every branch here
// currently produces a token directly, but the signature mirrors Lex's
// trivia-retry loop so a future branch (e.g. a preprocessor hook) can
// resume scanning without restructuring the caller.
func (l *Lexer) dispatch(start int) (token.Token, bool) {
	b := l.cur.Peek(0)

	switch {
	case classify.IsDecimalDigit(b):
		return l.scanNumeric(start), false

	case classify.IsIdentifierStart(b):
		return l.scanIdentifier(start), false

	case b == '$':
		return l.scanDollar(start), false

	case b == '\\':
		return l.scanEscapedIdentifier(start), false

	case b == '`':
		return l.scanDirective(start), false

	case b == '"':
		return l.scanStringLiteral(start), false

	case b == '\'':
		return l.scanApostrophe(start), false

	case b >= 0x80:
		n := classify.UTF8SequenceLength(b)
		l.cur.Advance(n)
		l.diagnose(diag.CodeUTF8Char, start, l.cur.Pos(), "non-ASCII byte outside string and comment text")
		return l.makeToken(token.Unknown, l.rawLexeme(start), start), false

	case b == 0:
		// Not the end sentinel: ReallyAtEnd already routed that case out
		// of Lex before dispatch was ever called.
		l.cur.Advance(1)
		l.diagnose(diag.CodeEmbeddedNull, start, l.cur.Pos(), "embedded NUL byte")
		return l.makeToken(token.Unknown, l.rawLexeme(start), start), false

	case !classify.IsPrintable(b):
		l.cur.Advance(1)
		l.diagnose(diag.CodeNonPrintableChar, start, l.cur.Pos(), "non-printable character")
		return l.makeToken(token.Unknown, l.rawLexeme(start), start), false

	default:
		return l.scanPunct(start), false
	}
}

// rawLexeme interns the raw bytes of the lexeme [start, cur.Pos()) so an
// Unknown token's payload outlives the call that produced it.
func (l *Lexer) rawLexeme(start int) []byte {
	return l.arena.InternBytes(l.buf.Bytes()[start:l.cur.Pos()])
}

// scanPunct performs maximal-munch matching over the fixed punctuation
// and operator set.
func (l *Lexer) scanPunct(start int) token.Token {
	switch l.cur.Peek(0) {
	case '+':
		l.cur.Advance(1)
		switch {
		case l.cur.Consume('+'):
			return l.makeToken(token.PlusPlus, nil, start)
		case l.cur.Consume('='):
			return l.makeToken(token.PlusEquals, nil, start)
		case l.cur.Consume(':'):
			return l.makeToken(token.PlusColon, nil, start)
		}
		return l.makeToken(token.Plus, nil, start)

	case '-':
		l.cur.Advance(1)
		switch {
		case l.cur.Consume('-'):
			return l.makeToken(token.MinusMinus, nil, start)
		case l.cur.Consume('='):
			return l.makeToken(token.MinusEquals, nil, start)
		case l.cur.Consume(':'):
			return l.makeToken(token.MinusColon, nil, start)
		case l.cur.Peek(0) == '>':
			l.cur.Advance(1)
			if l.cur.Consume('>') {
				return l.makeToken(token.MinusGreaterThanGT, nil, start)
			}
			return l.makeToken(token.MinusGreaterThan, nil, start)
		}
		return l.makeToken(token.Minus, nil, start)

	case '*':
		l.cur.Advance(1)
		switch {
		case l.cur.Peek(0) == ':' && l.cur.Peek(1) == ':' && l.cur.Peek(2) == '*':
			l.cur.Advance(3)
			return l.makeToken(token.StarColonColonStar, nil, start)
		case l.cur.Consume(')'):
			return l.makeToken(token.StarCloseParen, nil, start)
		case l.cur.Consume('='):
			return l.makeToken(token.StarEquals, nil, start)
		case l.cur.Consume('*'):
			return l.makeToken(token.StarStar, nil, start)
		case l.cur.Consume('>'):
			return l.makeToken(token.StarGreaterThan, nil, start)
		}
		return l.makeToken(token.Star, nil, start)

	case '/':
		l.cur.Advance(1)
		if l.cur.Consume('=') {
			return l.makeToken(token.SlashEquals, nil, start)
		}
		return l.makeToken(token.Slash, nil, start)

	case '%':
		l.cur.Advance(1)
		if l.cur.Consume('=') {
			return l.makeToken(token.PercentEquals, nil, start)
		}
		return l.makeToken(token.Percent, nil, start)

	case '&':
		l.cur.Advance(1)
		switch {
		case l.cur.Peek(0) == '&' && l.cur.Peek(1) == '&':
			l.cur.Advance(2)
			return l.makeToken(token.AmpAmpAmp, nil, start)
		case l.cur.Consume('&'):
			return l.makeToken(token.AmpAmp, nil, start)
		case l.cur.Consume('='):
			return l.makeToken(token.AmpEquals, nil, start)
		}
		return l.makeToken(token.Amp, nil, start)

	case '|':
		l.cur.Advance(1)
		switch {
		case l.cur.Peek(0) == '-' && l.cur.Peek(1) == '>':
			l.cur.Advance(2)
			return l.makeToken(token.PipeMinusGreater, nil, start)
		case l.cur.Peek(0) == '=' && l.cur.Peek(1) == '>':
			l.cur.Advance(2)
			return l.makeToken(token.PipeEqualsGreater, nil, start)
		case l.cur.Consume('|'):
			return l.makeToken(token.PipePipe, nil, start)
		case l.cur.Consume('='):
			return l.makeToken(token.PipeEquals, nil, start)
		}
		return l.makeToken(token.Pipe, nil, start)

	case '^':
		l.cur.Advance(1)
		switch {
		case l.cur.Consume('~'):
			return l.makeToken(token.CaretTilde, nil, start)
		case l.cur.Consume('='):
			return l.makeToken(token.CaretEquals, nil, start)
		}
		return l.makeToken(token.Caret, nil, start)

	case '~':
		l.cur.Advance(1)
		switch {
		case l.cur.Consume('&'):
			return l.makeToken(token.TildeAmp, nil, start)
		case l.cur.Consume('|'):
			return l.makeToken(token.TildePipe, nil, start)
		case l.cur.Consume('^'):
			return l.makeToken(token.TildeCaret, nil, start)
		}
		return l.makeToken(token.Tilde, nil, start)

	case '!':
		l.cur.Advance(1)
		if l.cur.Consume('=') {
			switch {
			case l.cur.Consume('='):
				return l.makeToken(token.BangEqualsEquals, nil, start)
			case l.cur.Consume('?'):
				return l.makeToken(token.BangEqualsQuestion, nil, start)
			}
			return l.makeToken(token.BangEquals, nil, start)
		}
		return l.makeToken(token.Bang, nil, start)

	case '=':
		l.cur.Advance(1)
		switch {
		case l.cur.Consume('='):
			switch {
			case l.cur.Consume('='):
				return l.makeToken(token.EqualsEqualsEquals, nil, start)
			case l.cur.Consume('?'):
				return l.makeToken(token.EqualsEqualsQuestion, nil, start)
			}
			return l.makeToken(token.EqualsEquals, nil, start)
		case l.cur.Consume('>'):
			return l.makeToken(token.EqualsGreaterThan, nil, start)
		}
		return l.makeToken(token.Equals, nil, start)

	case '<':
		l.cur.Advance(1)
		switch {
		case l.cur.Peek(0) == '-' && l.cur.Peek(1) == '>':
			l.cur.Advance(2)
			return l.makeToken(token.LessMinusGreater, nil, start)
		case l.cur.Consume('='):
			return l.makeToken(token.LessEquals, nil, start)
		case l.cur.Peek(0) == '<' && l.cur.Peek(1) == '<' && l.cur.Peek(2) == '=':
			l.cur.Advance(3)
			return l.makeToken(token.LessLessLessEquals, nil, start)
		case l.cur.Peek(0) == '<' && l.cur.Peek(1) == '<':
			l.cur.Advance(2)
			return l.makeToken(token.LessLessLess, nil, start)
		case l.cur.Peek(0) == '<' && l.cur.Peek(1) == '=':
			l.cur.Advance(2)
			return l.makeToken(token.LessLessEquals, nil, start)
		case l.cur.Consume('<'):
			return l.makeToken(token.LessLess, nil, start)
		}
		return l.makeToken(token.LessThan, nil, start)

	case '>':
		l.cur.Advance(1)
		switch {
		case l.cur.Consume('='):
			return l.makeToken(token.GreaterEquals, nil, start)
		case l.cur.Peek(0) == '>' && l.cur.Peek(1) == '>' && l.cur.Peek(2) == '=':
			l.cur.Advance(3)
			return l.makeToken(token.GreaterGreaterGreaterEquals, nil, start)
		case l.cur.Peek(0) == '>' && l.cur.Peek(1) == '>':
			l.cur.Advance(2)
			return l.makeToken(token.GreaterGreaterGreater, nil, start)
		case l.cur.Peek(0) == '>' && l.cur.Peek(1) == '=':
			l.cur.Advance(2)
			return l.makeToken(token.GreaterGreaterEquals, nil, start)
		case l.cur.Consume('>'):
			return l.makeToken(token.GreaterGreater, nil, start)
		}
		return l.makeToken(token.GreaterThan, nil, start)

	case '.':
		l.cur.Advance(1)
		if l.cur.Consume('*') {
			return l.makeToken(token.DotStar, nil, start)
		}
		return l.makeToken(token.Dot, nil, start)

	case ':':
		l.cur.Advance(1)
		switch {
		case l.cur.Consume(':'):
			return l.makeToken(token.ColonColon, nil, start)
		case l.cur.Consume('='):
			return l.makeToken(token.ColonEquals, nil, start)
		case l.cur.Consume('/'):
			return l.makeToken(token.ColonSlash, nil, start)
		}
		return l.makeToken(token.Colon, nil, start)

	case '#':
		l.cur.Advance(1)
		switch {
		case l.cur.Consume('#'):
			return l.makeToken(token.HashHash, nil, start)
		case l.cur.Peek(0) == '-' && l.cur.Peek(1) == '#':
			l.cur.Advance(2)
			return l.makeToken(token.HashMinusHash, nil, start)
		case l.cur.Peek(0) == '=' && l.cur.Peek(1) == '#':
			l.cur.Advance(2)
			return l.makeToken(token.HashEqualsHash, nil, start)
		}
		return l.makeToken(token.Hash, nil, start)

	case '@':
		l.cur.Advance(1)
		if l.cur.Consume('@') {
			return l.makeToken(token.AtAt, nil, start)
		}
		return l.makeToken(token.At, nil, start)

	case '(':
		l.cur.Advance(1)
		if l.cur.Consume('*') {
			return l.makeToken(token.OpenParenStar, nil, start)
		}
		return l.makeToken(token.OpenParen, nil, start)

	case ')':
		l.cur.Advance(1)
		return l.makeToken(token.CloseParen, nil, start)

	case '{':
		l.cur.Advance(1)
		return l.makeToken(token.OpenBrace, nil, start)

	case '}':
		l.cur.Advance(1)
		return l.makeToken(token.CloseBrace, nil, start)

	case '[':
		l.cur.Advance(1)
		return l.makeToken(token.OpenBracket, nil, start)

	case ']':
		l.cur.Advance(1)
		return l.makeToken(token.CloseBracket, nil, start)

	case ',':
		l.cur.Advance(1)
		return l.makeToken(token.Comma, nil, start)

	case ';':
		l.cur.Advance(1)
		return l.makeToken(token.Semicolon, nil, start)

	case '?':
		l.cur.Advance(1)
		return l.makeToken(token.Question, nil, start)

	default:
		// Unreachable in practice: every printable ASCII byte is either
		// routed to a scanner above this switch or matched by one of its
		// cases. Kept as a defensive fallback so a future punctuation
		// gap fails as an Unknown token instead of an infinite loop.
		l.cur.Advance(1)
		return l.makeToken(token.Unknown, l.rawLexeme(start), start)
	}
}
