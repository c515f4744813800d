// Package lexer implements the SystemVerilog lexical analyzer described
// in spec.md: a single-threaded, pull-based tokenizer bound to one
// source buffer, yielding one annotated token per call.
package lexer

import (
	"log/slog"

	"github.com/svlex/svlex/internal/arena"
	"github.com/svlex/svlex/internal/cursor"
	"github.com/svlex/svlex/internal/diag"
	"github.com/svlex/svlex/internal/svsource"
	"github.com/svlex/svlex/internal/token"
)

// Lexer tokenizes SystemVerilog source text.
//
// One Lexer is bound to one source buffer identified by a FileID. It is
// not safe for concurrent use by multiple goroutines (spec section 5);
// multiple Lexers over distinct buffers, arenas, and sinks may run in
// parallel.
type Lexer struct {
	cur       *cursor.Cursor
	buf       *svsource.Buffer
	fileID    svsource.FileID
	arena     *arena.Arena
	sink      *diag.Sink
	lineTable *diag.LineTable

	mode       Mode
	emitTrivia bool
	triviaBuf  []token.Trivia

	log logger
}

// Option configures a Lexer at construction.
type Option func(*Lexer)

// WithTrivia controls whether leading trivia is attached to tokens.
// Trivia is always collected for Invariant 3 in spec section 3 (leading
// trivia of token n abuts token n's lexeme); WithTrivia(false) discards
// it rather than skip its collection, so a caller that only wants
// tokens still pays the same scanning cost but avoids retaining spans.
func WithTrivia(enabled bool) Option {
	return func(l *Lexer) { l.emitTrivia = enabled }
}

// WithLogger attaches a structured logger. A nil logger (the default)
// disables all logging.
func WithLogger(log *slog.Logger) Option {
	return func(l *Lexer) { l.log = logger{l: log} }
}

// WithStartMode begins lexing in a mode other than Normal. Used by a
// preprocessor resuming mid-directive after macro substitution.
func WithStartMode(m Mode) Option {
	return func(l *Lexer) { l.mode = m }
}

// New creates a Lexer bound to buf, identified by fileID for
// diagnostics, allocating payloads and interned strings through arn and
// recording diagnostics into sink.
func New(buf *svsource.Buffer, fileID svsource.FileID, arn *arena.Arena, sink *diag.Sink, opts ...Option) *Lexer {
	l := &Lexer{
		cur:        cursor.New(buf),
		buf:        buf,
		fileID:     fileID,
		arena:      arn,
		sink:       sink,
		lineTable:  diag.NewLineTable(buf.Bytes()[:buf.End()]),
		emitTrivia: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.consumeBOM()
	return l
}

// consumeBOM diagnoses and skips a byte-order mark at offset 0. Only a
// BOM at the very start of the buffer is recognized (spec section 6,
// "Tri-valued BOM handling"); this runs once, before the first token.
func (l *Lexer) consumeBOM() {
	kind, skip := svsource.DetectBOM(l.buf.Bytes())
	if kind == svsource.BOMNone {
		return
	}
	start := l.cur.Pos()
	l.cur.Advance(skip)
	l.diagnose(diag.CodeUnicodeBOM, start, l.cur.Pos(), "source begins with a byte-order mark")
}

// Mode returns the lexer's current lexing mode.
func (l *Lexer) Mode() Mode {
	return l.mode
}

// Diagnostics returns a copy of all diagnostics recorded so far.
func (l *Lexer) Diagnostics() []diag.Diagnostic {
	return l.sink.Diagnostics()
}

// diagnose records a diagnostic for the half-open byte range [start, end).
func (l *Lexer) diagnose(code diag.Code, start, end int, message string) {
	span := diag.Span{Start: diag.ByteOffset(start), End: diag.ByteOffset(end)}
	span = l.lineTable.Resolve(span)
	l.sink.Add(code, span, message)
}

// span builds a resolved Span for the half-open range [start, end).
func (l *Lexer) span(start, end int) diag.Span {
	return l.lineTable.Resolve(diag.Span{Start: diag.ByteOffset(start), End: diag.ByteOffset(end)})
}

// makeToken builds a token with the given kind, payload, and span
// covering [start, l.cur.Pos()), attaching and resetting pending trivia.
func (l *Lexer) makeToken(kind token.Kind, payload any, start int) token.Token {
	tok := token.Token{
		Kind:    kind,
		Payload: payload,
		Trivia:  l.takeTrivia(),
		Span:    l.span(start, l.cur.Pos()),
	}
	if l.log.traceEnabled() {
		l.log.trace("token",
			slog.String("kind", kind.String()),
			slog.Int("start", start),
			slog.Int("end", l.cur.Pos()))
	}
	return tok
}

func (l *Lexer) takeTrivia() []token.Trivia {
	if !l.emitTrivia || len(l.triviaBuf) == 0 {
		return nil
	}
	out := l.triviaBuf
	l.triviaBuf = nil
	return out
}

// Tokenize lexes the entire source and returns all tokens plus every
// diagnostic recorded along the way. Convenience for callers (tests,
// tools) that want the whole stream rather than pulling it one token
// at a time.
func (l *Lexer) Tokenize() ([]token.Token, []diag.Diagnostic) {
	var toks []token.Token
	for {
		tok := l.Lex()
		toks = append(toks, tok)
		if tok.Kind == token.EndOfFile {
			break
		}
	}
	return toks, l.sink.Diagnostics()
}

// Lex returns the next token from the input (spec section 6, "lex()").
func (l *Lexer) Lex() token.Token {
	for {
		if directiveEnded := l.scanTrivia(); directiveEnded {
			start := l.cur.Pos()
			l.mode = Normal
			return l.makeToken(token.EndOfDirective, nil, start)
		}

		start := l.cur.Pos()
		if l.cur.ReallyAtEnd() {
			return l.makeToken(token.EndOfFile, nil, start)
		}

		tok, again := l.dispatch(start)
		if again {
			continue
		}
		return tok
	}
}
