package runs

import "fmt"

// SupportedVersion is the only log schema version that takes part in aggregation
const SupportedVersion = "2.1.0"

// Finding is a single reported issue, reduced to the attributes the viewer filters on
type Finding struct {
	RuleID        string `json:"ruleId" yaml:"ruleId"`
	RuleName      string `json:"ruleName,omitempty" yaml:"ruleName,omitempty"`
	Message       string `json:"message,omitempty" yaml:"message,omitempty"`
	URI           string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Level         string `json:"level,omitempty" yaml:"level,omitempty"`                 // error | warning | note | none
	BaselineState string `json:"baselineState,omitempty" yaml:"baselineState,omitempty"` // new | unchanged | updated | absent
	Suppression   string `json:"suppression,omitempty" yaml:"suppression,omitempty"`     // unsuppressed | suppressed
}

// LevelOrDefault returns Level, defaulting to "warning" like the log format does
func (f Finding) LevelOrDefault() string {
	if f.Level == "" {
		return "warning"
	}
	return f.Level
}

// SuppressionOrDefault returns Suppression, defaulting to "unsuppressed"
func (f Finding) SuppressionOrDefault() string {
	if f.Suppression == "" {
		return "unsuppressed"
	}
	return f.Suppression
}

// Run is one execution of an analysis tool
type Run struct {
	Driver   string    `json:"driver" yaml:"driver"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Log is one result log file, tagged with its schema version
type Log struct {
	Version string `json:"version" yaml:"version"`
	Runs    []Run  `json:"runs" yaml:"runs"`
}

// Supported reports whether the log takes part in aggregation
func (l Log) Supported() bool { return l.Version == SupportedVersion }

// Collection is the raw log collection; aggregation is memoized on its pointer identity,
// so callers replace the pointer rather than editing Logs in place
type Collection struct {
	Logs []Log `json:"logs" yaml:"logs"`
}

func displayName(r *Run, index int) string {
	if r.Driver != "" {
		return r.Driver
	}
	return fmt.Sprintf("Run %d", index+1)
}
