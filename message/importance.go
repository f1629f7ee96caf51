package message

import "fmt"

// Importance ranks how much a finding matters to the consumer of a report.
type Importance string

const (
	// ImportanceError is reserved for failures of the inspection machinery
	// itself, such as a check body that panicked or returned an error.
	// Checks cannot register at this level.
	ImportanceError Importance = "error"

	// ImportanceFormatValidation is reserved for findings reported by the
	// upstream format validator while the file was being parsed.
	// Checks cannot register at this level.
	ImportanceFormatValidation Importance = "format_validation"

	// ImportanceCritical indicates potentially incorrect data.
	ImportanceCritical Importance = "critical"

	// ImportanceBestPracticeViolation indicates a very suboptimal
	// representation of the data.
	ImportanceBestPracticeViolation Importance = "best_practice_violation"

	// ImportanceBestPracticeSuggestion indicates an improvable
	// representation of the data.
	ImportanceBestPracticeSuggestion Importance = "best_practice_suggestion"
)

// importanceRanks maps importance levels to numeric ranks for ordering and
// threshold comparison. Higher ranks are more important.
var importanceRanks = map[Importance]int{
	ImportanceError:                  5,
	ImportanceFormatValidation:       4,
	ImportanceCritical:               3,
	ImportanceBestPracticeViolation:  2,
	ImportanceBestPracticeSuggestion: 1,
}

// IsValid returns true if the importance level is valid.
func (i Importance) IsValid() bool {
	_, ok := importanceRanks[i]
	return ok
}

// IsReserved returns true for levels the engine assigns itself and that
// checks are not allowed to register at.
func (i Importance) IsReserved() bool {
	return i == ImportanceError || i == ImportanceFormatValidation
}

// Rank returns the numeric rank of the importance level.
// Returns 0 for invalid levels.
func (i Importance) Rank() int {
	return importanceRanks[i]
}

// String returns the string representation of the importance level.
func (i Importance) String() string {
	return string(i)
}

// ParseImportance parses a string into an Importance value.
// Returns an error if the string is not a valid importance level.
func ParseImportance(s string) (Importance, error) {
	importance := Importance(s)
	if !importance.IsValid() {
		return "", fmt.Errorf("invalid importance: %q", s)
	}
	return importance, nil
}

// CompareImportance compares two importance levels.
// Returns:
//   - negative if i1 < i2
//   - zero if i1 == i2
//   - positive if i1 > i2
func CompareImportance(i1, i2 Importance) int {
	r1 := i1.Rank()
	r2 := i2.Rank()
	if r1 < r2 {
		return -1
	}
	if r1 > r2 {
		return 1
	}
	return 0
}

// AllImportances returns all valid importance levels ordered from most to
// least important.
func AllImportances() []Importance {
	return []Importance{
		ImportanceError,
		ImportanceFormatValidation,
		ImportanceCritical,
		ImportanceBestPracticeViolation,
		ImportanceBestPracticeSuggestion,
	}
}
