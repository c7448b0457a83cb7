package classvariants

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestManifest(t *testing.T, content string) *Manifest {
	t.Helper()
	m, err := LoadManifest(writeManifest(t, content))
	require.NoError(t, err)
	return m
}

func issueTexts(issues []Issue) []string {
	texts := make([]string, len(issues))
	for i, issue := range issues {
		texts[i] = issue.Text
	}
	return texts
}

func TestCheckCleanManifest(t *testing.T) {
	m := loadTestManifest(t, buttonManifest)
	require.Empty(t, Check(m))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantText     string
		wantSeverity string
	}{
		{
			name: "duplicate axis",
			content: `
components:
  - name: button
    variants:
      - name: color
        options: {primary: "bg-blue"}
      - name: color
        options: {secondary: "bg-gray"}
`,
			wantText:     fmt.Sprintf(IssueDuplicateAxis, "button", "color"),
			wantSeverity: SeverityError,
		},
		{
			name: "empty axis",
			content: `
components:
  - name: button
    variants:
      - name: color
        options: {}
`,
			wantText:     fmt.Sprintf(IssueEmptyAxis, "button", "color"),
			wantSeverity: SeverityError,
		},
		{
			name: "default for unknown axis",
			content: `
components:
  - name: button
    variants:
      - name: color
        options: {primary: "bg-blue"}
    defaults:
      tone: primary
`,
			wantText:     fmt.Sprintf(IssueDefaultUnknownAxis, "button", "tone"),
			wantSeverity: SeverityError,
		},
		{
			name: "default for unknown option",
			content: `
components:
  - name: button
    variants:
      - name: color
        options: {primary: "bg-blue"}
    defaults:
      color: magenta
`,
			wantText:     fmt.Sprintf(IssueDefaultUnknownOpt, "button", "color", "magenta"),
			wantSeverity: SeverityWarning,
		},
		{
			name: "compound references unknown axis",
			content: `
components:
  - name: button
    variants:
      - name: color
        options: {primary: "bg-blue"}
    compounds:
      - when:
          tone: primary
        class: "x"
`,
			wantText:     fmt.Sprintf(IssueCompoundUnknownAxis, "button", "tone"),
			wantSeverity: SeverityError,
		},
		{
			name: "compound references unknown option",
			content: `
components:
  - name: button
    variants:
      - name: color
        options: {primary: "bg-blue"}
    compounds:
      - when:
          color: [primary, magenta]
        class: "x"
`,
			wantText:     fmt.Sprintf(IssueCompoundUnknownOpt, "button", "color", "magenta"),
			wantSeverity: SeverityWarning,
		},
		{
			name: "compound with empty condition",
			content: `
components:
  - name: button
    variants:
      - name: color
        options: {primary: "bg-blue"}
    compounds:
      - class: "always"
`,
			wantText:     fmt.Sprintf(IssueCompoundAlwaysOn, "button"),
			wantSeverity: SeverityWarning,
		},
		{
			name: "forward of unknown axis",
			content: `
components:
  - name: button
    variants:
      - name: color
        options: {primary: "bg-blue"}
    forward:
      - tone
`,
			wantText:     fmt.Sprintf(IssueForwardUnknownAxis, "button", "tone"),
			wantSeverity: SeverityWarning,
		},
		{
			name: "boolean axis mixing enumerated options",
			content: `
components:
  - name: button
    variants:
      - name: disabled
        options:
          "true": "opacity-50"
          sort-of: "opacity-75"
`,
			wantText:     fmt.Sprintf(IssueMixedBooleanAxis, "button", "disabled"),
			wantSeverity: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loadTestManifest(t, tt.content)
			issues := Check(m)

			require.Len(t, issues, 1)
			assert.Equal(t, tt.wantText, issues[0].Text)
			assert.Equal(t, tt.wantSeverity, issues[0].Severity)
			assert.Equal(t, "classcheck", issues[0].FromLinter)
			assert.Equal(t, m.Path, issues[0].Pos.Filename)
			assert.Positive(t, issues[0].Pos.Line)
		})
	}
}

func TestCheckDuplicateComponentAcrossManifests(t *testing.T) {
	first := loadTestManifest(t, `
components:
  - name: button
    base: "btn"
`)
	second := loadTestManifest(t, `
components:
  - name: button
    base: "btn-2"
`)

	issues := Check(first, second)
	require.Len(t, issues, 1)
	assert.Equal(t, fmt.Sprintf(IssueDuplicateComponent, "button"), issues[0].Text)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, second.Path, issues[0].Pos.Filename)
}

func TestCheckBooleanDefaultsAreAccepted(t *testing.T) {
	// Boolean axes accept "true" and "false" defaults even when only one
	// fragment is declared.
	m := loadTestManifest(t, `
components:
  - name: button
    variants:
      - name: disabled
        options:
          "true": "opacity-50"
    defaults:
      disabled: "false"
`)
	require.Empty(t, Check(m))
}

func TestAttachSourceLines(t *testing.T) {
	m := loadTestManifest(t, `
components:
  - name: button
    variants:
      - name: color
        options: {primary: "bg-blue"}
    defaults:
      tone: primary
`)

	issues := Check(m)
	require.Len(t, issues, 1)
	require.Empty(t, issues[0].SourceLines)

	AttachSourceLines(issues)
	require.Len(t, issues[0].SourceLines, 1)
	assert.Contains(t, issues[0].SourceLines[0], "name: button")
}

func TestAttachSourceLinesMissingFile(t *testing.T) {
	issues := []Issue{newIssue("nope.yaml", 3, SeverityError, "broken")}
	AttachSourceLines(issues)
	require.Empty(t, issues[0].SourceLines)
}

func TestCheckMultipleIssuesKeepManifestOrder(t *testing.T) {
	m := loadTestManifest(t, `
components:
  - name: button
    variants:
      - name: color
        options: {}
    defaults:
      tone: primary
`)

	texts := issueTexts(Check(m))
	require.Equal(t, []string{
		fmt.Sprintf(IssueEmptyAxis, "button", "color"),
		fmt.Sprintf(IssueDefaultUnknownAxis, "button", "tone"),
	}, texts)
}
