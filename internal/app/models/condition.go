package models

import (
	"fmt"
	"strings"
)

// Condition is the enumerated physical state of a book copy.
type Condition string

const (
	ConditionNew          Condition = "NEW"
	ConditionSlightlyUsed Condition = "SLIGHTLY_USED"
	ConditionHeavilyUsed  Condition = "HEAVILY_USED"
)

// Code returns the single-letter code a condition is stored under.
func (c Condition) Code() string {
	switch c {
	case ConditionNew:
		return "N"
	case ConditionSlightlyUsed:
		return "S"
	case ConditionHeavilyUsed:
		return "H"
	default:
		return ""
	}
}

// Display returns the human-readable name of the condition.
func (c Condition) Display() string {
	switch c {
	case ConditionNew:
		return "New"
	case ConditionSlightlyUsed:
		return "Slightly Used"
	case ConditionHeavilyUsed:
		return "Heavily Used"
	default:
		return "Unknown"
	}
}

// ConditionFromCode maps a stored single-letter code back to a Condition.
func ConditionFromCode(code string) (Condition, error) {
	switch code {
	case "N":
		return ConditionNew, nil
	case "S":
		return ConditionSlightlyUsed, nil
	case "H":
		return ConditionHeavilyUsed, nil
	default:
		return "", fmt.Errorf("unknown condition code %q", code)
	}
}

// ParseCondition parses user input into a Condition. Both the long names
// (NEW, SLIGHTLY_USED, HEAVILY_USED) and the short codes (N, S, H) are
// accepted, case-insensitively.
func ParseCondition(value string) (Condition, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "N", "NEW":
		return ConditionNew, nil
	case "S", "SLIGHTLY_USED":
		return ConditionSlightlyUsed, nil
	case "H", "HEAVILY_USED":
		return ConditionHeavilyUsed, nil
	default:
		return "", fmt.Errorf("unknown condition %q", value)
	}
}
