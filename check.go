package classvariants

import (
	"fmt"
	"os"
	"strings"
)

// checkLinter is the FromLinter tag on every issue the checker emits.
const checkLinter = "classcheck"

// Check runs semantic validation over loaded manifests. The resolver itself
// never rejects a malformed configuration (unknown values just contribute
// nothing), so this is the stricter layer for authors and CI.
//
// Issues are reported in manifest order, errors for references that can
// never take effect, warnings for configurations that are legal but almost
// certainly unintended.
func Check(manifests ...*Manifest) []Issue {
	var issues []Issue
	componentNames := make(map[string]bool)

	for _, manifest := range manifests {
		for _, component := range manifest.Components {
			if componentNames[component.Name] {
				issues = append(issues, newIssue(manifest.Path, component.Line, SeverityError,
					IssueDuplicateComponent, component.Name))
			}
			componentNames[component.Name] = true

			issues = append(issues, checkComponent(manifest.Path, component)...)
		}
	}

	return issues
}

func checkComponent(path string, component ComponentSpec) []Issue {
	var issues []Issue

	axes := make(map[string]AxisSpec, len(component.Variants))
	for _, axis := range component.Variants {
		if _, dup := axes[axis.Name]; dup {
			issues = append(issues, newIssue(path, axis.Line, SeverityError,
				IssueDuplicateAxis, component.Name, axis.Name))
			continue
		}
		axes[axis.Name] = axis

		if len(axis.Options) == 0 {
			issues = append(issues, newIssue(path, axis.Line, SeverityError,
				IssueEmptyAxis, component.Name, axis.Name))
		}

		if axisMixesBooleanOptions(axis) {
			issues = append(issues, newIssue(path, axis.Line, SeverityWarning,
				IssueMixedBooleanAxis, component.Name, axis.Name))
		}
	}

	for axisName, value := range component.Defaults {
		axis, known := axes[axisName]
		if !known {
			issues = append(issues, newIssue(path, component.Line, SeverityError,
				IssueDefaultUnknownAxis, component.Name, axisName))
			continue
		}
		if !axisAccepts(axis, value) {
			issues = append(issues, newIssue(path, component.Line, SeverityWarning,
				IssueDefaultUnknownOpt, component.Name, axisName, value))
		}
	}

	for _, compound := range component.Compounds {
		if len(compound.When) == 0 {
			issues = append(issues, newIssue(path, compound.Line, SeverityWarning,
				IssueCompoundAlwaysOn, component.Name))
		}
		for axisName, accepted := range compound.When {
			axis, known := axes[axisName]
			if !known {
				issues = append(issues, newIssue(path, compound.Line, SeverityError,
					IssueCompoundUnknownAxis, component.Name, axisName))
				continue
			}
			for _, value := range accepted {
				if !axisAccepts(axis, value) {
					issues = append(issues, newIssue(path, compound.Line, SeverityWarning,
						IssueCompoundUnknownOpt, component.Name, axisName, value))
				}
			}
		}
	}

	for _, axisName := range component.Forward {
		if _, known := axes[axisName]; !known {
			issues = append(issues, newIssue(path, component.Line, SeverityWarning,
				IssueForwardUnknownAxis, component.Name, axisName))
		}
	}

	return issues
}

// axisAccepts reports whether a value can ever select a fragment or is a
// legitimate boolean selection. Boolean axes accept "true" and "false" even
// when only one of the two fragments is declared.
func axisAccepts(axis AxisSpec, value string) bool {
	if _, declared := axis.Options[value]; declared {
		return true
	}
	if axisIsBoolean(axis) {
		return value == OptionTrue || value == OptionFalse
	}
	return false
}

func axisIsBoolean(axis AxisSpec) bool {
	_, hasTrue := axis.Options[OptionTrue]
	_, hasFalse := axis.Options[OptionFalse]
	return hasTrue || hasFalse
}

func axisMixesBooleanOptions(axis AxisSpec) bool {
	if !axisIsBoolean(axis) {
		return false
	}
	for key := range axis.Options {
		if key != OptionTrue && key != OptionFalse {
			return true
		}
	}
	return false
}

// AttachSourceLines fills in the manifest line each issue points at, for
// reporters that print source context. Unreadable files are skipped.
func AttachSourceLines(issues []Issue) {
	cache := make(map[string][]string)

	for i := range issues {
		pos := issues[i].Pos
		lines, cached := cache[pos.Filename]
		if !cached {
			data, err := os.ReadFile(pos.Filename)
			if err != nil {
				cache[pos.Filename] = nil
				continue
			}
			lines = strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
			cache[pos.Filename] = lines
		}
		if pos.Line >= 1 && pos.Line <= len(lines) {
			issues[i].SourceLines = []string{lines[pos.Line-1]}
		}
	}
}

func newIssue(path string, line int, severity, format string, args ...any) Issue {
	return Issue{
		FromLinter: checkLinter,
		Text:       fmt.Sprintf(format, args...),
		Severity:   severity,
		Pos: IssuePos{
			Filename: path,
			Line:     line,
			Column:   1,
		},
	}
}
