package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReportID(t *testing.T) {
	id := GenerateReportID("fuel-report")

	assert.True(t, strings.HasPrefix(id, "fuel-report-"))
	suffix := strings.TrimPrefix(id, "fuel-report-")
	assert.Len(t, suffix, 8)
}

func TestGenerateReportID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateReportID("fuel-report")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
