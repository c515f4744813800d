package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlex/svlex/internal/arena"
	"github.com/svlex/svlex/internal/diag"
	"github.com/svlex/svlex/internal/lexer"
	"github.com/svlex/svlex/internal/svsource"
	"github.com/svlex/svlex/internal/token"
)

// newLexer is the shared test harness: one buffer, one arena, one sink.
func newLexer(t *testing.T, src string, opts ...lexer.Option) (*lexer.Lexer, *diag.Sink) {
	t.Helper()
	buf := svsource.FromString(src)
	sink := diag.NewSink()
	arn := arena.New()
	return lexer.New(buf, svsource.FileID(0), arn, sink, opts...), sink
}

func lexAll(t *testing.T, src string) ([]token.Token, []diag.Diagnostic) {
	t.Helper()
	l, _ := newLexer(t, src)
	return l.Tokenize()
}

func firstCode(diags []diag.Diagnostic) diag.Code {
	if len(diags) == 0 {
		return ""
	}
	return diags[0].Code
}

// --- spec section 8, "Concrete scenarios" -------------------------------

func TestIntegerClamping(t *testing.T) {
	toks, diags := lexAll(t, "2147483648")
	require.Equal(t, token.IntegerLiteral, toks[0].Kind)
	info := toks[0].Payload.(token.NumericLiteralInfo)
	require.Equal(t, int32(2147483647), info.Int32)
	require.Equal(t, diag.CodeSignedLiteralTooLarge, firstCode(diags))

	toks, diags = lexAll(t, "2147483647")
	info = toks[0].Payload.(token.NumericLiteralInfo)
	require.Equal(t, int32(2147483647), info.Int32)
	require.Empty(t, diags)
}

func TestSizedVectorLiteral(t *testing.T) {
	toks, diags := lexAll(t, "4'sb10xz")
	require.Empty(t, diags)
	require.Equal(t, token.IntegerLiteral, toks[0].Kind)
	info := toks[0].Payload.(token.NumericLiteralInfo)
	require.Equal(t, token.NumericVector, info.Kind)
	require.Equal(t, uint32(4), info.Vector.Size)
	require.True(t, info.Vector.Sized)
	require.True(t, info.Vector.Signed)
	require.Equal(t, 2, info.Vector.Base)
	require.Equal(t, []token.VectorDigit{1, 0, token.DigitX, token.DigitZ}, info.Vector.Digits)
}

func TestUnsizedVectorLiteral(t *testing.T) {
	toks, diags := lexAll(t, "'hFF")
	require.Empty(t, diags)
	info := toks[0].Payload.(token.NumericLiteralInfo)
	require.False(t, info.Vector.Sized)
	require.Equal(t, 16, info.Vector.Base)
	require.Equal(t, []token.VectorDigit{15, 15}, info.Vector.Digits)
}

func TestOctalVectorDigitsSurviveAsDigitValues(t *testing.T) {
	toks, diags := lexAll(t, "3'o5")
	require.Empty(t, diags)
	info := toks[0].Payload.(token.NumericLiteralInfo)
	require.Equal(t, 8, info.Vector.Base)
	require.Equal(t, []token.VectorDigit{5}, info.Vector.Digits)
}

func TestDecimalVectorIsOneWholeValue(t *testing.T) {
	toks, diags := lexAll(t, "8'd170")
	require.Empty(t, diags)
	info := toks[0].Payload.(token.NumericLiteralInfo)
	require.Equal(t, 10, info.Vector.Base)
	require.Equal(t, []token.VectorDigit{170}, info.Vector.Digits)

	toks, diags = lexAll(t, "8'dz")
	require.Empty(t, diags)
	info = toks[0].Payload.(token.NumericLiteralInfo)
	require.Equal(t, []token.VectorDigit{token.DigitZ}, info.Vector.Digits)
}

func TestRealLiteral(t *testing.T) {
	toks, diags := lexAll(t, "1.5e2")
	require.Empty(t, diags)
	info := toks[0].Payload.(token.NumericLiteralInfo)
	require.Equal(t, token.NumericReal, info.Kind)
	require.InDelta(t, 150.0, info.Real, 1e-9)

	_, diags = lexAll(t, "1e500")
	require.Equal(t, diag.CodeRealExponentTooLarge, firstCode(diags))

	toks, diags = lexAll(t, "3.")
	require.Equal(t, diag.CodeMissingFractionalDigits, firstCode(diags))
	require.Equal(t, token.RealLiteral, toks[0].Kind)
}

func TestStringEscapes(t *testing.T) {
	toks, diags := lexAll(t, `"a\n\x4A\101"`)
	require.Empty(t, diags)
	info := toks[0].Payload.(token.StringLiteralInfo)
	require.Equal(t, []byte{'a', '\n', 'J', 'A'}, info.Decoded)

	toks, diags = lexAll(t, `"\9"`)
	require.Equal(t, diag.CodeUnknownEscapeCode, firstCode(diags))
	info = toks[0].Payload.(token.StringLiteralInfo)
	require.Equal(t, []byte("9"), info.Decoded)
}

func TestDirectiveTermination(t *testing.T) {
	toks, _ := lexAll(t, "`define X 1\n+ 2")
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	require.Equal(t, []token.Kind{
		token.Directive, token.Identifier, token.IntegerLiteral,
		token.EndOfDirective, token.Plus, token.IntegerLiteral, token.EndOfFile,
	}, kinds)
}

func TestDirectiveEscapedNewlineSuppressesEndOfDirective(t *testing.T) {
	toks, _ := lexAll(t, "`define X 1\\\n+ 2")
	var sawEOD bool
	for _, tok := range toks {
		if tok.Kind == token.EndOfDirective {
			sawEOD = true
		}
	}
	require.False(t, sawEOD, "a backslash before the newline should suppress EndOfDirective")
}

func TestOperatorMaximalMunch(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"<<<=", token.LessLessLessEquals},
		{"<<=", token.LessLessEquals},
		{"<<", token.LessLess},
	}
	for _, c := range cases {
		toks, diags := lexAll(t, c.src)
		require.Empty(t, diags, c.src)
		require.Equal(t, c.kind, toks[0].Kind, c.src)
		require.Equal(t, token.EndOfFile, toks[1].Kind, c.src)
	}
}

func TestNestedBlockComment(t *testing.T) {
	toks, diags := lexAll(t, "/* /* */")
	require.Equal(t, diag.CodeNestedBlockComment, firstCode(diags))
	require.Equal(t, token.EndOfFile, toks[0].Kind)
	require.Len(t, toks[0].Trivia, 1)
	require.Equal(t, token.TriviaBlockComment, toks[0].Trivia[0].Kind)
}

// --- spec section 8, "Invariants" ----------------------------------------

// TestSpansTileTheBuffer checks spec section 8's tiling invariant: the
// leading-trivia spans and lexeme span of every token, laid end to
// end in order, cover the whole buffer with no gap and no overlap.
func TestSpansTileTheBuffer(t *testing.T) {
	src := "a+b $disp\\esc 'hFF \"s\" `define\n+ 2"
	buf := svsource.FromString(src)
	toks, _ := lexAll(t, src)

	pos := diag.ByteOffset(0)
	for _, tok := range toks {
		for _, tr := range tok.Trivia {
			require.Equal(t, pos, tr.Span.Start, "trivia must abut the running position")
			pos = tr.Span.End
		}
		require.Equal(t, pos, tok.Span.Start, "token lexeme must abut its trivia")
		pos = tok.Span.End
	}
	require.Equal(t, diag.ByteOffset(buf.End()), pos, "spans must tile the entire buffer")
}

func TestLeadingTriviaAbutsToken(t *testing.T) {
	toks, _ := lexAll(t, "  a   b")
	require.Len(t, toks[0].Trivia, 1, "the first token's leading trivia is the two leading spaces")
	require.Equal(t, toks[0].Trivia[0].Span.End, toks[0].Span.Start, "trivia must abut the following token")
	require.Len(t, toks[1].Trivia, 1)
	require.Equal(t, toks[0].Span.End, toks[1].Trivia[0].Span.Start, "trivia must start right after the previous token")
	require.Equal(t, toks[1].Trivia[0].Span.End, toks[1].Span.Start)
}

// --- BOM detection ---------------------------------------------------------

func TestBOMDetectedOnlyAtStart(t *testing.T) {
	_, diags := lexAll(t, "﻿module")
	require.Equal(t, diag.CodeUnicodeBOM, firstCode(diags))

	toks, diags := lexAll(t, "a﻿b")
	require.NotEmpty(t, diags, "a mid-source BOM sequence still lexes as a non-ASCII byte, just not as a BOM")
	require.NotEqual(t, diag.CodeUnicodeBOM, diags[0].Code)
	require.Equal(t, token.Identifier, toks[0].Kind)
}

// --- identifiers, system tasks, escapes -----------------------------------

func TestIdentifierKinds(t *testing.T) {
	toks, diags := lexAll(t, `foo $display \esc+ident`)
	require.Empty(t, diags)
	require.Equal(t, token.Identifier, toks[0].Kind)
	require.Equal(t, token.SystemIdentifier, toks[1].Kind)
	require.Equal(t, token.Identifier, toks[2].Kind)
	info := toks[2].Payload.(token.IdentifierInfo)
	require.Equal(t, token.IdentEscaped, info.Category)
	require.Equal(t, "esc+ident", string(info.Raw))
}

func TestBareDollarIsDollarToken(t *testing.T) {
	toks, _ := lexAll(t, "$ +")
	require.Equal(t, token.Dollar, toks[0].Kind)
}

func TestEscapedWhitespaceDiagnoses(t *testing.T) {
	toks, diags := lexAll(t, "\\ x")
	require.Equal(t, diag.CodeEscapedWhitespace, firstCode(diags))
	require.Equal(t, token.Unknown, toks[0].Kind)
}

func TestMacroUsageDoesNotChangeMode(t *testing.T) {
	l, _ := newLexer(t, "`MY_MACRO rest")
	tok := l.Lex()
	require.Equal(t, token.MacroUsage, tok.Kind)
	require.Equal(t, lexer.Normal, l.Mode())
}

func TestIncludeDirectiveEntersIncludeMode(t *testing.T) {
	l, _ := newLexer(t, "`include <foo.svh>")
	tok := l.Lex()
	require.Equal(t, token.Directive, tok.Kind)
	require.Equal(t, lexer.Include, l.Mode())
}

func TestMacroEscapeTokens(t *testing.T) {
	toks, diags := lexAll(t, "`\" `` `\\`\"")
	require.Empty(t, diags)
	require.Equal(t, []token.Kind{token.MacroQuote, token.MacroPaste, token.MacroEscapedQuote, token.EndOfFile}, []token.Kind{
		toks[0].Kind, toks[1].Kind, toks[2].Kind, toks[3].Kind,
	})
}

// --- trivia -----------------------------------------------------------------

func TestWithTriviaFalseDiscardsTrivia(t *testing.T) {
	l, _ := newLexer(t, "  a", lexer.WithTrivia(false))
	tok := l.Lex()
	require.Equal(t, token.Identifier, tok.Kind)
	require.Empty(t, tok.Trivia)
}

func TestUnknownTokenCarriesLexeme(t *testing.T) {
	toks, diags := lexAll(t, "\x01")
	require.Equal(t, diag.CodeNonPrintableChar, firstCode(diags))
	require.Equal(t, token.Unknown, toks[0].Kind)
	require.Equal(t, []byte{0x01}, toks[0].Payload.([]byte))
}

func TestEmbeddedNullInStringLiteralDiagnosed(t *testing.T) {
	src := "\"a\x00b\""
	toks, diags := lexAll(t, src)
	require.Equal(t, diag.CodeEmbeddedNull, firstCode(diags))
	info := toks[0].Payload.(token.StringLiteralInfo)
	require.Equal(t, []byte("ab"), info.Decoded)
}

func TestEmbeddedNullOutsideStringLiteralDiagnosed(t *testing.T) {
	toks, diags := lexAll(t, "a\x00b")
	require.Equal(t, diag.CodeEmbeddedNull, firstCode(diags))
	require.Equal(t, []token.Kind{token.Identifier, token.Unknown, token.Identifier, token.EndOfFile}, []token.Kind{
		toks[0].Kind, toks[1].Kind, toks[2].Kind, toks[3].Kind,
	})
}

func TestUnterminatedStringLiteral(t *testing.T) {
	toks, diags := lexAll(t, `"abc`)
	require.Equal(t, diag.CodeUnterminatedStringLiteral, firstCode(diags))
	require.Equal(t, token.StringLiteral, toks[0].Kind)
}
