// Package wizard renders the scaffold question flow in the terminal.
// It provides a huh-backed collector.Prompter for interactive runs and a
// headless one that answers every step with its default.
package wizard

// Brand colors used by the wizard theme and styles.
const (
	ColorPrimary   = "#E8543A"
	ColorSecondary = "#7C5CFC"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#F3F4F6"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)
