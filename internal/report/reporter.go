// Package report renders manifest check issues in golangci-lint style.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	classvariants "github.com/jackardios/go-class-variants"
)

// Options controls reporter output.
type Options struct {
	UseColors       bool // Force color output
	PrintLines      bool // Show manifest source lines with issues
	PrintLinterName bool // Show (classcheck) suffix
}

// Reporter formats and writes check results.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// New creates a reporter for w.
func New(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       opts.UseColors || autoColors(),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// autoColors detects environments where color output is safe.
func autoColors() bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if info, _ := os.Stdout.Stat(); info != nil && (info.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// PrintIssues writes issues sorted by file, line, then column.
func (r *Reporter) PrintIssues(issues []classvariants.Issue) {
	sorted := make([]classvariants.Issue, len(issues))
	copy(sorted, issues)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats one issue as file:line:col: message (linter).
func (r *Reporter) printIssue(issue classvariants.Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		renderStyle(styleCyan, location, r.useColors),
		issue.Text,
		renderStyle(styleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", renderStyle(styleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column,
// matching tabs in the prefix so alignment survives tab expansion.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary writes the severity breakdown after the issue list.
func (r *Reporter) PrintSummary(issues []classvariants.Issue) {
	var errors, warnings int
	for _, issue := range issues {
		switch issue.Severity {
		case classvariants.SeverityError:
			errors++
		case classvariants.SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")

	if len(issues) == 0 {
		fmt.Fprintln(r.w, renderStyle(styleGreen, "0 issues.", r.useColors))
		return
	}

	summary := fmt.Sprintf("%s (%s, %s)",
		pluralizeCount(len(issues), "issue", "issues"),
		pluralizeCount(errors, "error", "errors"),
		pluralizeCount(warnings, "warning", "warnings"))

	style := styleYellow
	if errors > 0 {
		style = styleRed
	}
	fmt.Fprintln(r.w, renderStyle(style, summary, r.useColors))
}

// pluralizeCount returns count with the singular or plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
