package lexer

import (
	"github.com/svlex/svlex/internal/classify"
	"github.com/svlex/svlex/internal/diag"
	"github.com/svlex/svlex/internal/token"
)

// scanVectorDigits scans a run of base-N logic digits (with `_`
// separators and `x`/`z`/`?` wildcards), used by binary, octal, and
// hex vector literals. Each source digit becomes exactly one
// VectorDigit holding its numeric value (spec section 3's "per-digit
// four-valued array") -- it is never expanded into the individual bits
// the digit's base implies. It requires at least one valid digit;
// otherwise it diagnoses MissingVectorDigits and returns ok=false.
func (l *Lexer) scanVectorDigits(base int) (digits []token.VectorDigit, ok bool) {
	start := l.cur.Pos()

	for {
		b := l.cur.Peek(0)
		switch {
		case b == '_':
			l.cur.Advance(1)

		case classify.IsLogicDigit(b):
			l.cur.Advance(1)
			if b == 'x' || b == 'X' {
				digits = append(digits, token.DigitX)
			} else {
				digits = append(digits, token.DigitZ)
			}

		default:
			v := classify.BaseDigitValue(b, base)
			if v < 0 {
				if len(digits) == 0 {
					l.diagnose(diag.CodeMissingVectorDigits, start, l.cur.Pos(), "vector literal has no digits")
					return nil, false
				}
				return digits, true
			}
			l.cur.Advance(1)
			digits = append(digits, token.VectorDigit(v))
		}
	}
}

// baseFromLetter maps a vector base letter to its numeric base, or 0 if
// b is not one of the recognized letters.
func baseFromLetter(b byte) int {
	switch b {
	case 'b', 'B':
		return 2
	case 'o', 'O':
		return 8
	case 'd', 'D':
		return 10
	case 'h', 'H':
		return 16
	default:
		return 0
	}
}
