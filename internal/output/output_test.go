package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/Binkle/DefaultApplication/internal/assoc"
	"github.com/Binkle/DefaultApplication/internal/workflow"
)

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		caps          TerminalCapabilities
		wantCheckmark string
		wantFailure   string
	}{
		"unicode terminal": {
			caps:          TerminalCapabilities{IsTTY: true, SupportsUnicode: true},
			wantCheckmark: "✓",
			wantFailure:   "✗",
		},
		"ascii terminal": {
			caps:          TerminalCapabilities{IsTTY: true, SupportsUnicode: false},
			wantCheckmark: "[OK]",
			wantFailure:   "[FAIL]",
		},
		"not a terminal": {
			caps:          TerminalCapabilities{},
			wantCheckmark: "[OK]",
			wantFailure:   "[FAIL]",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			symbols := SelectSymbols(tt.caps)

			assert.Equal(t, tt.wantCheckmark, symbols.Checkmark)
			assert.Equal(t, tt.wantFailure, symbols.Failure)
		})
	}
}

func TestPrintAssociations(t *testing.T) {
	color.NoColor = true

	list := []assoc.Association{
		{Extension: "png", ApplicationName: "Preview", ApplicationPath: "/System/Applications/Preview.app"},
		{Extension: "md", ApplicationName: "No default application", ApplicationPath: ""},
	}

	var buf bytes.Buffer
	PrintAssociations(&buf, list)

	out := buf.String()
	assert.Contains(t, out, "EXTENSION")
	assert.Contains(t, out, "APPLICATION")
	assert.Contains(t, out, ".png")
	assert.Contains(t, out, "Preview")
	assert.Contains(t, out, "/System/Applications/Preview.app")
	assert.Contains(t, out, ".md")
	assert.Contains(t, out, "No default application")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
}

func TestPrintAssociationsEmpty(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	PrintAssociations(&buf, nil)

	assert.Equal(t, "No associations.\n", buf.String())
}

func TestPrintPermission(t *testing.T) {
	color.NoColor = true

	tests := map[string]struct {
		state workflow.PermissionState
		want  string
	}{
		"granted": {state: workflow.PermissionGranted, want: "✓ Full Disk Access granted\n"},
		"denied":  {state: workflow.PermissionDenied, want: "✗ Full Disk Access denied\n"},
		"checking": {
			state: workflow.PermissionChecking,
			want:  "Checking Full Disk Access...\n",
		},
	}

	symbols := Symbols{Checkmark: "✓", Failure: "✗"}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintPermission(&buf, tt.state, symbols)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintFeedback(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	PrintFeedback(&buf, "Extension .svg added", Symbols{Checkmark: "✓"})
	assert.Equal(t, "✓ Extension .svg added\n", buf.String())

	buf.Reset()
	PrintFeedback(&buf, "", Symbols{Checkmark: "✓"})
	assert.Empty(t, buf.String())
}

func TestSessionNoTTY(t *testing.T) {
	t.Parallel()

	s := NewSession(TerminalCapabilities{IsTTY: false})

	// Must be safe to drive without a terminal attached.
	s.Start("loading associations")
	s.Stop()

	var nilSession *Session
	nilSession.Start("ignored")
	nilSession.Stop()
}
