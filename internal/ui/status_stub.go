//go:build !ebiten

package ui

// StatusBar is a no-op placeholder for headless builds.
type StatusBar struct{}

// NewStatusBar returns nil in the headless build.
func NewStatusBar(int) *StatusBar { return nil }

// Height returns zero in the headless build.
func (s *StatusBar) Height() int { return 0 }

// Draw is a no-op in the headless build.
func (s *StatusBar) Draw(any, bool, uint64) {}
