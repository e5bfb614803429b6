package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		input string
		want  Condition
	}{
		{"NEW", ConditionNew},
		{"new", ConditionNew},
		{"N", ConditionNew},
		{"n", ConditionNew},
		{"SLIGHTLY_USED", ConditionSlightlyUsed},
		{"slightly_used", ConditionSlightlyUsed},
		{"S", ConditionSlightlyUsed},
		{"HEAVILY_USED", ConditionHeavilyUsed},
		{"h", ConditionHeavilyUsed},
		{"  NEW  ", ConditionNew},
	}

	for _, tt := range tests {
		got, err := ParseCondition(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseConditionRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "MINT", "X", "SLIGHTLY USED"} {
		_, err := ParseCondition(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestConditionCodeRoundTrip(t *testing.T) {
	for _, c := range []Condition{ConditionNew, ConditionSlightlyUsed, ConditionHeavilyUsed} {
		got, err := ConditionFromCode(c.Code())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestConditionFromCodeRejectsUnknown(t *testing.T) {
	_, err := ConditionFromCode("Z")
	assert.Error(t, err)
}

func TestConditionDisplay(t *testing.T) {
	assert.Equal(t, "New", ConditionNew.Display())
	assert.Equal(t, "Slightly Used", ConditionSlightlyUsed.Display())
	assert.Equal(t, "Heavily Used", ConditionHeavilyUsed.Display())
}
