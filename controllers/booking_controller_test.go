package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStayDateAcceptsCommonLayouts(t *testing.T) {
	inputs := []string{
		"2026-03-10",
		"2026-03-10T15:04:05",
		"2026-03-10T15:04:05Z",
		"2026-03-10T15:04:05+07:00",
	}

	for _, raw := range inputs {
		parsed, err := parseStayDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, 2026, parsed.Year())
		assert.Equal(t, 10, parsed.Day())
	}
}

func TestParseStayDateRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "10/03/2026", "next tuesday"} {
		_, err := parseStayDate(raw)
		assert.Error(t, err, raw)
	}
}
