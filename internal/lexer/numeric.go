package lexer

import (
	"math"

	"github.com/svlex/svlex/internal/classify"
	"github.com/svlex/svlex/internal/diag"
	"github.com/svlex/svlex/internal/token"
)

// maxMantissaDigits is the number of leading decimal digits accumulated
// exactly; further digits are still counted (so exponent math stays
// correct) but no longer folded into the running value.
const maxMantissaDigits = 18

// pow10Bits[k] holds 10^(2^k), letting any power of ten up to 10^511 be
// built by multiplying together the entries whose bit is set in the
// binary representation of the exponent.
var pow10Bits = [...]float64{
	1e1, 1e2, 1e4, 1e8, 1e16, 1e32, 1e64, 1e128, 1e256,
}

// computePow10 returns 10^exp for |exp| <= 511, or ok=false if exp is
// out of range or the result is non-finite.
func computePow10(exp int) (result float64, ok bool) {
	if exp == 0 {
		return 1, true
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	if exp > 511 {
		return 0, false
	}
	result = 1
	for i := 0; exp > 0; i++ {
		if exp&1 != 0 {
			result *= pow10Bits[i]
		}
		exp >>= 1
	}
	if neg {
		result = 1 / result
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, false
	}
	return result, true
}

// scanNumeric scans a token beginning with a decimal digit: a signed
// 32-bit integer, a real literal, or (when the accumulated digits are
// immediately followed by `'`) the size prefix of a sized vector
// literal.
func (l *Lexer) scanNumeric(start int) token.Token {
	val, digits := l.scanDecimalDigits()

	switch {
	case l.cur.Peek(0) == '\'':
		return l.scanSizedVectorLiteral(start, val)
	case l.cur.Peek(0) == '.' || l.cur.Peek(0) == 'e' || l.cur.Peek(0) == 'E':
		return l.scanRealLiteral(start, val, digits)
	default:
		return l.scanIntLiteral(start, val)
	}
}

// scanDecimalDigits accumulates a run of decimal digits and `_`
// separators, returning the value (truncated after maxMantissaDigits)
// and the total digit count (not truncated).
//
// Leading zeros are consumed but not counted (spec section 4.5, step
// 1): a real literal with many leading zeros (e.g. a 19-zero prefix
// before a significant digit) would otherwise burn the 18-digit
// mantissa budget on zeros and silently lose the significant digit
// that follows.
func (l *Lexer) scanDecimalDigits() (val uint64, digits int) {
	for l.cur.Peek(0) == '0' {
		l.cur.Advance(1)
	}
	for classify.IsDecimalDigit(l.cur.Peek(0)) || l.cur.Peek(0) == '_' {
		if l.cur.Peek(0) == '_' {
			l.cur.Advance(1)
			continue
		}
		if digits < maxMantissaDigits {
			val = val*10 + uint64(l.cur.Peek(0)-'0')
		}
		digits++
		l.cur.Advance(1)
	}
	return val, digits
}

func (l *Lexer) scanIntLiteral(start int, val uint64) token.Token {
	v := int32(val)
	if val > math.MaxInt32 {
		l.diagnose(diag.CodeSignedLiteralTooLarge, start, l.cur.Pos(), "integer literal exceeds a signed 32-bit value")
		v = math.MaxInt32
	}
	info := token.NumericLiteralInfo{
		Raw:   l.buf.Bytes()[start:l.cur.Pos()],
		Kind:  token.NumericInt32,
		Int32: v,
	}
	return l.makeToken(token.IntegerLiteral, info, start)
}

// scanRealLiteral scans the optional fractional and exponent parts of a
// real literal that follow an already-scanned integer part of intDigits
// digits and value intVal.
func (l *Lexer) scanRealLiteral(start int, intVal uint64, intDigits int) token.Token {
	mantissa := intVal
	digits := intDigits
	decPoint := intDigits

	if l.cur.Peek(0) == '.' {
		dotPos := l.cur.Pos()
		l.cur.Advance(1)
		if !classify.IsDecimalDigit(l.cur.Peek(0)) {
			l.diagnose(diag.CodeMissingFractionalDigits, dotPos, l.cur.Pos(), "real literal has no fractional digits")
		}
		for classify.IsDecimalDigit(l.cur.Peek(0)) || l.cur.Peek(0) == '_' {
			if l.cur.Peek(0) == '_' {
				l.cur.Advance(1)
				continue
			}
			if digits < maxMantissaDigits {
				mantissa = mantissa*10 + uint64(l.cur.Peek(0)-'0')
			}
			digits++
			l.cur.Advance(1)
		}
	}

	expVal := 0
	if l.cur.Peek(0) == 'e' || l.cur.Peek(0) == 'E' {
		expStart := l.cur.Pos()
		l.cur.Advance(1)
		neg := false
		if l.cur.Peek(0) == '+' || l.cur.Peek(0) == '-' {
			neg = l.cur.Peek(0) == '-'
			l.cur.Advance(1)
		}
		if !classify.IsDecimalDigit(l.cur.Peek(0)) {
			l.diagnose(diag.CodeMissingExponentDigits, expStart, l.cur.Pos(), "real literal exponent has no digits")
		}
		for classify.IsDecimalDigit(l.cur.Peek(0)) || l.cur.Peek(0) == '_' {
			if l.cur.Peek(0) == '_' {
				l.cur.Advance(1)
				continue
			}
			if expVal < 100000 {
				expVal = expVal*10 + int(l.cur.Peek(0)-'0')
			}
			l.cur.Advance(1)
		}
		if neg {
			expVal = -expVal
		}
	}

	fracExp := decPoint - min(digits, maxMantissaDigits)
	exp := fracExp + expVal

	scale, ok := computePow10(exp)
	result := float64(mantissa) * scale
	if !ok || math.IsInf(result, 0) || math.IsNaN(result) {
		l.diagnose(diag.CodeRealExponentTooLarge, start, l.cur.Pos(), "real literal exponent out of range")
		result = 0
	}

	info := token.NumericLiteralInfo{
		Raw:  l.buf.Bytes()[start:l.cur.Pos()],
		Kind: token.NumericReal,
		Real: result,
	}
	return l.makeToken(token.RealLiteral, info, start)
}

// scanSizedVectorLiteral scans `'[s]<base><digits>` following an
// already-scanned size literal of value sizeVal.
func (l *Lexer) scanSizedVectorLiteral(start int, sizeVal uint64) token.Token {
	quotePos := l.cur.Pos()
	l.cur.Advance(1) // consume '\''

	size := uint32(sizeVal)
	overflow := false
	if sizeVal > math.MaxUint32 {
		size = math.MaxUint32
		overflow = true
		l.diagnose(diag.CodeIntegerSizeTooLarge, start, quotePos, "vector size exceeds 32 bits")
	}
	if sizeVal == 0 {
		// scanSizedVectorLiteral is only reached after scanNumeric has
		// already consumed at least one decimal digit, so a zero value
		// here always means an explicit all-zero size text (e.g. "0"
		// or "00"), not the absence of a size.
		l.diagnose(diag.CodeIntegerSizeZero, start, quotePos, "vector size must be nonzero")
	}

	signed, base, digits := l.scanBasedDigits()
	if base == 0 {
		l.diagnose(diag.CodeMissingVectorBase, l.cur.Pos(), l.cur.Pos(), "sized vector literal missing a base letter")
	}

	vec := token.LogicVector{
		Size: size, Sized: true, Signed: signed, Base: base,
		Digits: digits, Overflow: overflow,
	}
	info := token.NumericLiteralInfo{
		Raw:    l.buf.Bytes()[start:l.cur.Pos()],
		Kind:   token.NumericVector,
		Vector: vec,
	}
	return l.makeToken(token.IntegerLiteral, info, start)
}

// scanApostrophe handles a leading `'` not preceded by a size: either
// `'{` (an array/struct pattern opener) or an unsized vector/bit literal.
func (l *Lexer) scanApostrophe(start int) token.Token {
	l.cur.Advance(1) // consume '\''
	if l.cur.Peek(0) == '{' {
		l.cur.Advance(1)
		return l.makeToken(token.TickLBrace, nil, start)
	}

	if baseFromLetter(l.cur.Peek(0)) != 0 || l.cur.Peek(0) == 's' || l.cur.Peek(0) == 'S' {
		signed, base, digits := l.scanBasedDigits()
		vec := token.LogicVector{Sized: false, Signed: signed, Base: base, Digits: digits}
		info := token.NumericLiteralInfo{
			Raw:    l.buf.Bytes()[start:l.cur.Pos()],
			Kind:   token.NumericVector,
			Vector: vec,
		}
		return l.makeToken(token.IntegerLiteral, info, start)
	}

	switch b := l.cur.Peek(0); {
	case classify.IsBinaryDigit(b):
		l.cur.Advance(1)
		if b == '0' {
			return l.makeBitToken(start, token.Logic0)
		}
		return l.makeBitToken(start, token.Logic1)
	case classify.IsLogicDigit(b):
		l.cur.Advance(1)
		if b == 'x' || b == 'X' {
			return l.makeBitToken(start, token.LogicX)
		}
		return l.makeBitToken(start, token.LogicZ)
	default:
		l.diagnose(diag.CodeInvalidUnsizedLiteral, start, l.cur.Pos(), "invalid unsized literal")
		return l.makeToken(token.Unknown, l.rawLexeme(start), start)
	}
}

func (l *Lexer) makeBitToken(start int, bit token.LogicValue) token.Token {
	info := token.NumericLiteralInfo{
		Raw:  l.buf.Bytes()[start:l.cur.Pos()],
		Kind: token.NumericBit,
		Bit:  bit,
	}
	return l.makeToken(token.IntegerLiteral, info, start)
}

// scanBasedDigits scans the `[s|S]<base-letter><digits>` tail shared by
// sized and unsized vector literals.
func (l *Lexer) scanBasedDigits() (signed bool, base int, digits []token.VectorDigit) {
	if l.cur.Peek(0) == 's' || l.cur.Peek(0) == 'S' {
		signed = true
		l.cur.Advance(1)
	}

	base = baseFromLetter(l.cur.Peek(0))
	if base == 0 {
		return signed, 0, nil
	}
	l.cur.Advance(1)

	if base == 10 {
		return signed, base, l.scanDecimalVectorValue()
	}

	d, ok := l.scanVectorDigits(base)
	if ok {
		digits = d
	}
	return signed, base, digits
}

// scanDecimalVectorValue scans a decimal-base vector value: either a
// single x/z/? wildcard applying to the whole field, or a plain
// decimal number. Unlike the other bases, a decimal literal's digit
// characters do not each carry their own four-valued meaning -- the
// run of digits names one number -- so the result is always exactly
// one VectorDigit, never one per source character.
func (l *Lexer) scanDecimalVectorValue() []token.VectorDigit {
	if b := l.cur.Peek(0); classify.IsLogicDigit(b) {
		l.cur.Advance(1)
		if b == 'x' || b == 'X' {
			return []token.VectorDigit{token.DigitX}
		}
		return []token.VectorDigit{token.DigitZ}
	}

	start := l.cur.Pos()
	var val uint64
	found := false
	for classify.IsDecimalDigit(l.cur.Peek(0)) || l.cur.Peek(0) == '_' {
		if l.cur.Peek(0) == '_' {
			l.cur.Advance(1)
			continue
		}
		val = val*10 + uint64(l.cur.Peek(0)-'0')
		found = true
		l.cur.Advance(1)
	}
	if !found {
		l.diagnose(diag.CodeMissingVectorDigits, start, l.cur.Pos(), "decimal vector literal has no digits")
		return nil
	}
	return []token.VectorDigit{token.VectorDigit(val)}
}
