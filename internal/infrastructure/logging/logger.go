package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/andrescamacho/flightfuel-go/internal/infrastructure/config"
)

var levelRanks = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// Logger writes leveled log lines in text or JSON format, filtered by a
// minimum level. It satisfies the application layer's Logger interface.
type Logger struct {
	out      io.Writer
	minLevel int
	jsonFmt  bool
}

// NewLogger builds a logger from logging configuration
func NewLogger(cfg config.LoggingConfig) *Logger {
	out := os.Stderr
	if cfg.Output == "stdout" {
		out = os.Stdout
	}

	minLevel, ok := levelRanks[strings.ToUpper(cfg.Level)]
	if !ok {
		minLevel = levelRanks["INFO"]
	}

	return &Logger{
		out:      out,
		minLevel: minLevel,
		jsonFmt:  cfg.Format == "json",
	}
}

// Log writes one log line if the level passes the configured threshold
func (l *Logger) Log(level, message string, metadata map[string]interface{}) {
	rank, ok := levelRanks[strings.ToUpper(level)]
	if !ok || rank < l.minLevel {
		return
	}

	if l.jsonFmt {
		l.writeJSON(level, message, metadata)
		return
	}
	l.writeText(level, message, metadata)
}

func (l *Logger) writeText(level, message string, metadata map[string]interface{}) {
	var sb strings.Builder
	sb.WriteString(time.Now().UTC().Format(time.RFC3339))
	sb.WriteString(" [")
	sb.WriteString(strings.ToUpper(level))
	sb.WriteString("] ")
	sb.WriteString(message)
	for key, value := range metadata {
		sb.WriteString(fmt.Sprintf(" %s=%v", key, value))
	}
	sb.WriteString("\n")
	fmt.Fprint(l.out, sb.String())
}

func (l *Logger) writeJSON(level, message string, metadata map[string]interface{}) {
	entry := map[string]interface{}{
		"time":    time.Now().UTC().Format(time.RFC3339),
		"level":   strings.ToUpper(level),
		"message": message,
	}
	for key, value := range metadata {
		entry[key] = value
	}
	line, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.out, `{"level":"ERROR","message":"failed to marshal log entry: %v"}`+"\n", err)
		return
	}
	fmt.Fprintln(l.out, string(line))
}
