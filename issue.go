package classvariants

// Issue represents a single manifest violation in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"` // "classcheck"
	Text        string   `json:"Text"`       // `default for unknown axis "tone"`
	Severity    string   `json:"Severity"`   // "", "warning", "error"
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the location of an issue inside a manifest.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"`
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue message formats shared between the checker and its tests.
const (
	IssueDuplicateComponent  = "duplicate component %q"
	IssueDuplicateAxis       = "component %q declares axis %q more than once"
	IssueEmptyAxis           = "component %q axis %q declares no option values"
	IssueDefaultUnknownAxis  = "component %q sets a default for unknown axis %q"
	IssueDefaultUnknownOpt   = "component %q defaults axis %q to %q, which is not a declared option"
	IssueCompoundUnknownAxis = "component %q compound rule references unknown axis %q"
	IssueCompoundUnknownOpt  = "component %q compound rule matches axis %q against undeclared option %q"
	IssueCompoundAlwaysOn    = "component %q compound rule has an empty condition and matches every resolution"
	IssueForwardUnknownAxis  = "component %q forwards unknown axis %q"
	IssueMixedBooleanAxis    = "component %q axis %q mixes boolean and enumerated option values"
)
