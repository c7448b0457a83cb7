package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classvariants "github.com/jackardios/go-class-variants"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "      color: magenta",
			column:     15,
			want:       "              ^", // 14 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t- name: disabled",
			column:     17,
			want:       "\t\t              ^", // 2 tabs + 14 spaces + caret (column 17 in string)
		},
		{
			name:       "start of line",
			sourceLine: "components:",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func testIssue(file string, line int, text, severity string) classvariants.Issue {
	return classvariants.Issue{
		FromLinter: "classcheck",
		Text:       text,
		Severity:   severity,
		Pos: classvariants.IssuePos{
			Filename: file,
			Line:     line,
			Column:   1,
		},
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	r.useColors = false

	r.PrintIssues([]classvariants.Issue{
		testIssue("button.variants.yaml", 4, "something is off", classvariants.SeverityWarning),
	})

	assert.Equal(t, "button.variants.yaml:4:1: something is off\n", buf.String())
}

func TestPrintIssuesSorted(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})
	r.useColors = false

	r.PrintIssues([]classvariants.Issue{
		testIssue("b.yaml", 10, "second file", classvariants.SeverityError),
		testIssue("a.yaml", 7, "later line", classvariants.SeverityError),
		testIssue("a.yaml", 2, "earlier line", classvariants.SeverityError),
	})

	want := "a.yaml:2:1: earlier line\n" +
		"a.yaml:7:1: later line\n" +
		"b.yaml:10:1: second file\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintIssuesWithLinterName(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{PrintLinterName: true})
	r.useColors = false

	r.PrintIssues([]classvariants.Issue{
		testIssue("a.yaml", 1, "msg", classvariants.SeverityError),
	})

	assert.Equal(t, "a.yaml:1:1: msg (classcheck)\n", buf.String())
}

func TestPrintIssuesWithSourceLines(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{PrintLines: true})
	r.useColors = false

	issue := testIssue("a.yaml", 3, "msg", classvariants.SeverityError)
	issue.SourceLines = []string{"  - name: button"}
	issue.Pos.Column = 5

	r.PrintIssues([]classvariants.Issue{issue})

	want := "a.yaml:3:5: msg\n" +
		"\t  - name: button\n" +
		"\t    ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		issues []classvariants.Issue
		want   string
	}{
		{
			name:   "clean",
			issues: nil,
			want:   "\n0 issues.\n",
		},
		{
			name: "single error",
			issues: []classvariants.Issue{
				testIssue("a.yaml", 1, "x", classvariants.SeverityError),
			},
			want: "\n1 issue (1 error, 0 warnings)\n",
		},
		{
			name: "mixed severities",
			issues: []classvariants.Issue{
				testIssue("a.yaml", 1, "x", classvariants.SeverityError),
				testIssue("a.yaml", 2, "y", classvariants.SeverityWarning),
				testIssue("a.yaml", 3, "z", classvariants.SeverityWarning),
			},
			want: "\n3 issues (1 error, 2 warnings)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := New(&buf, Options{})
			r.useColors = false

			r.PrintSummary(tt.issues)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "2 issues", pluralizeCount(2, "issue", "issues"))
}
