package token

import "github.com/svlex/svlex/internal/diag"

// TriviaKind classifies a piece of leading trivia (spec section 3).
type TriviaKind int

const (
	TriviaWhitespace TriviaKind = iota
	TriviaEndOfLine
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is source-significant but syntactically inert text attached
// to the token that follows it.
type Trivia struct {
	Kind TriviaKind
	Span diag.Span
}

// IdentifierCategory classifies how an identifier-shaped token was scanned.
type IdentifierCategory int

const (
	IdentNormal IdentifierCategory = iota
	IdentEscaped
	IdentSystem
	IdentUnknown
)

// IdentifierInfo is the payload for Identifier and SystemIdentifier tokens.
type IdentifierInfo struct {
	Raw      []byte
	Category IdentifierCategory
}

// DirectiveKind classifies a backquote-introduced directive.
type DirectiveKind int

const (
	DirectiveOther DirectiveKind = iota
	DirectiveInclude
	DirectiveMacroUsage
)

// DirectiveInfo is the payload for Directive and MacroUsage tokens.
type DirectiveInfo struct {
	Raw  []byte
	Kind DirectiveKind
}

// StringLiteralInfo is the payload for StringLiteral tokens.
type StringLiteralInfo struct {
	Raw     []byte
	Decoded []byte
}

// NumericKind classifies the shape of a numeric literal's value.
type NumericKind int

const (
	NumericInt32 NumericKind = iota
	NumericReal
	NumericVector
	NumericBit
)

// LogicValue is a single four-valued logic digit.
type LogicValue int

const (
	Logic0 LogicValue = iota
	Logic1
	LogicX
	LogicZ
)

// VectorDigit is one source digit of a sized or unsized vector
// literal's digit sequence (spec section 3's "per-digit four-valued
// array"): the digit's numeric value in [0, base) for an ordinary base
// digit, or one of the wildcard sentinels below for x/z/?. A digit is
// never expanded into the individual bits its base implies -- `'hFF`
// is the two-element sequence [15, 15], not eight Logic1 bits. A
// decimal-base vector is the exception: its sequence has exactly one
// element holding the whole decimal value (`8'd170` is [170]) or a
// single wildcard sentinel.
type VectorDigit int

const (
	DigitX VectorDigit = -1
	DigitZ VectorDigit = -2
)

// LogicVector is a sized or unsized four-valued vector literal's digits.
type LogicVector struct {
	Size     uint32 // bit width; meaningful only for sized vectors
	Sized    bool
	Signed   bool
	Base     int // 2, 8, 10, or 16
	Digits   []VectorDigit
	Overflow bool // true if Size was clamped due to exceeding the maximum
}

// NumericLiteralInfo is the payload for IntegerLiteral and RealLiteral tokens.
type NumericLiteralInfo struct {
	Raw    []byte
	Kind   NumericKind
	Int32  int32
	Real   float64
	Vector LogicVector
	Bit    LogicValue // for a single unsized bit literal ('0, '1, 'x, 'z)
}

// Token is the (kind, kind-specific payload, leading trivia) triple the
// lexer returns (spec section 3). Payload is nil for tokens that carry
// no kind-specific data (punctuation, EndOfFile, EndOfDirective).
type Token struct {
	Kind    Kind
	Payload any
	Trivia  []Trivia
	Span    diag.Span
}
