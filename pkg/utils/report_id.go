package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReportID creates a compact, human-readable identifier for a
// computed report. Format: {operation}-{8charHexUUID}
//
// Example:
//   - Input: operation="fuel-report"
//   - Output: "fuel-report-a3f8e2b1"
//
// The UUID suffix keeps IDs globally unique while staying short enough for
// terminal output.
func GenerateReportID(operation string) string {
	return operation + "-" + generateShortUUID()
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
