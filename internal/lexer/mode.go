package lexer

// Mode is the lexer's current lexing mode (spec section 4.7).
type Mode int

const (
	// Normal is the default mode: newlines are ordinary trivia.
	Normal Mode = iota
	// Directive mode: an unescaped newline terminates the directive.
	Directive
	// Include mode: like Directive, but entered by an include directive
	// so an external preprocessor can intercept the filename that follows.
	Include
)

// String returns a readable name for the mode.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Directive:
		return "Directive"
	case Include:
		return "Include"
	default:
		return "Invalid"
	}
}
