// Package syntaxfacts provides pure, table-driven lookups the lexer
// consults but does not own: directive-name classification and the
// keyword table a downstream parser uses to reclassify plain
// identifiers (spec section 6, "To the character/syntax facts
// module"). The lexer itself never consults the keyword table — it
// always returns Identifier and leaves reclassification to the
// parser, per spec section 4.6.
package syntaxfacts

import (
	"sort"

	"github.com/svlex/svlex/internal/token"
)

// directiveEntry pairs a directive name with its resolved kind.
//
// IMPORTANT: this slice MUST remain sorted by text for DirectiveKindOf's
// binary search, mirroring the teacher's internal/lexer.keywords table.
type directiveEntry struct {
	text string
	kind token.DirectiveKind
}

var directives = []directiveEntry{
	{"define", token.DirectiveOther},
	{"else", token.DirectiveOther},
	{"elsif", token.DirectiveOther},
	{"endif", token.DirectiveOther},
	{"ifdef", token.DirectiveOther},
	{"ifndef", token.DirectiveOther},
	{"include", token.DirectiveInclude},
	{"line", token.DirectiveOther},
	{"pragma", token.DirectiveOther},
	{"resetall", token.DirectiveOther},
	{"timescale", token.DirectiveOther},
	{"undef", token.DirectiveOther},
	{"undefineall", token.DirectiveOther},
}

// DirectiveKindOf resolves a directive identifier (without its leading
// backquote) to a DirectiveKind. Unknown directive names are treated as
// macro usages, matching the way an unrecognized `` `FOO `` is assumed
// to be a user macro invocation until the preprocessor proves otherwise.
func DirectiveKindOf(name string) token.DirectiveKind {
	i := sort.Search(len(directives), func(i int) bool {
		return directives[i].text >= name
	})
	if i < len(directives) && directives[i].text == name {
		return directives[i].kind
	}
	return token.DirectiveMacroUsage
}

// keywords is the set of reserved words the parser reclassifies a plain
// Identifier token into. The lexer never consults this table itself.
var keywords = map[string]struct{}{
	"always": {}, "and": {}, "assign": {}, "begin": {}, "bit": {},
	"byte": {}, "case": {}, "casex": {}, "casez": {}, "class": {},
	"const": {}, "do": {}, "else": {}, "end": {}, "endcase": {},
	"endclass": {}, "endfunction": {}, "endmodule": {}, "endtask": {},
	"enum": {}, "for": {}, "function": {}, "generate": {}, "if": {},
	"initial": {}, "input": {}, "int": {}, "integer": {}, "interface": {},
	"localparam": {}, "logic": {}, "longint": {}, "module": {}, "negedge": {},
	"or": {}, "output": {}, "package": {}, "packed": {}, "parameter": {},
	"posedge": {}, "real": {}, "reg": {}, "return": {}, "shortint": {},
	"signed": {}, "static": {}, "struct": {}, "task": {}, "typedef": {},
	"union": {}, "unsigned": {}, "wire": {},
}

// IsKeyword reports whether name is a reserved SystemVerilog keyword.
// Exposed for the parser's benefit; the core lexer never calls it.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}
