package output

import (
	"time"

	"github.com/briandowns/spinner"
)

// Session shows a spinner while a gateway operation is in flight. It is
// nil-safe and becomes a no-op on non-interactive terminals, so callers
// never have to branch on capabilities.
type Session struct {
	spin *spinner.Spinner
}

// NewSession returns a spinner session for the terminal, or a no-op
// session when stdout is not a TTY.
func NewSession(caps TerminalCapabilities) *Session {
	if !caps.IsTTY {
		return &Session{}
	}
	set := SelectSymbols(caps).SpinnerSet
	s := spinner.New(spinner.CharSets[set], 100*time.Millisecond)
	return &Session{spin: s}
}

// Start begins the spinner with the given message.
func (s *Session) Start(message string) {
	if s == nil || s.spin == nil {
		return
	}
	s.spin.Suffix = " " + message
	s.spin.Start()
}

// Stop halts the spinner and clears its line.
func (s *Session) Stop() {
	if s == nil || s.spin == nil {
		return
	}
	s.spin.Stop()
}
