package conformance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlex/svlex/internal/arena"
	"github.com/svlex/svlex/internal/conformance"
	"github.com/svlex/svlex/internal/diag"
	"github.com/svlex/svlex/internal/lexer"
	"github.com/svlex/svlex/internal/svsource"
)

// normalize turns a nil slice into an empty one so a fixture that
// omits a list (unmarshaled as nil) compares equal to an actual empty
// result (always a non-nil zero-length slice).
func normalize(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func TestScenarios(t *testing.T) {
	scenarios, err := conformance.Load("testdata/scenarios.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios, "fixture should contain at least one scenario")

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			buf := svsource.FromString(sc.Source)
			sink := diag.NewSink()
			lx := lexer.New(buf, svsource.FileID(0), arena.New(), sink)

			toks, diags := lx.Tokenize()

			gotKinds := make([]string, 0, len(toks))
			for _, tok := range toks {
				gotKinds = append(gotKinds, tok.Kind.String())
			}
			require.Equal(t, normalize(sc.Tokens), gotKinds, "token kind sequence for %q", sc.Source)

			gotCodes := make([]string, 0, len(diags))
			for _, d := range diags {
				gotCodes = append(gotCodes, string(d.Code))
			}
			require.Equal(t, normalize(sc.Diagnostics), gotCodes, "diagnostic code sequence for %q", sc.Source)
		})
	}
}
