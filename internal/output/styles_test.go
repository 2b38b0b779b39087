package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.Color
	}{
		{name: "created returns green", status: StatusCreated, wantFG: ColorGreen},
		{name: "overwritten returns yellow", status: StatusOverwritten, wantFG: ColorYellow},
		{name: "changed returns yellow", status: StatusChanged, wantFG: ColorYellow},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: ColorBoldRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			if tt.wantBold {
				assert.True(t, style.GetBold(), "expected bold")
			}
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground(), "foreground color mismatch")
			}
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	line := FormatFileLine("example/example.swift", StatusCreated)

	assert.Contains(t, line, "f:")
	assert.Contains(t, line, "example/example.swift")
	assert.Contains(t, line, StatusCreated)
}

func TestFormatFileLine_LongPathKeepsGap(t *testing.T) {
	long := strings.Repeat("a", minFileColumnWidth+10)
	line := FormatFileLine(long, StatusChanged)
	assert.Contains(t, line, long+"  ")
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("Project created"), "Project created")
	assert.Contains(t, FormatCheckmark("x"), "✔")
}
