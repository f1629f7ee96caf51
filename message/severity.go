package message

import "fmt"

// Severity is a secondary ordering hint a check may attach to a finding to
// rank it against other findings of the same importance level. It never
// affects filtering, only report ordering.
type Severity string

const (
	// SeverityHigh marks a finding as more pressing than its siblings,
	// for example when the affected dataset is very large.
	SeverityHigh Severity = "high"

	// SeverityLow marks a finding as less pressing than its siblings.
	SeverityLow Severity = "low"

	// SeverityUnspecified is the zero value; most checks do not rank
	// their findings.
	SeverityUnspecified Severity = ""
)

var severityRanks = map[Severity]int{
	SeverityHigh:        2,
	SeverityLow:         1,
	SeverityUnspecified: 0,
}

// IsValid returns true if the severity is valid. The empty string is valid
// and means unspecified.
func (s Severity) IsValid() bool {
	_, ok := severityRanks[s]
	return ok
}

// Rank returns the numeric rank of the severity. Unspecified ranks lowest.
func (s Severity) Rank() int {
	return severityRanks[s]
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	if s == SeverityUnspecified {
		return "unspecified"
	}
	return string(s)
}

// ParseSeverity parses a string into a Severity value.
// Returns an error if the string is not a valid severity.
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.IsValid() {
		return "", fmt.Errorf("invalid severity: %q", s)
	}
	return severity, nil
}
