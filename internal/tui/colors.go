package tui

// Color constants for the ideas TUI theme
const (
	ColorBorder = "#33415C" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E8EDF5" // Field labels, user input, titles
	ColorSecondaryText = "#9AA5B8" // Subtle grey
	ColorDisabledText  = "#5F6878" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (amber theme)
	ColorAccentMain   = "#D97706" // Logo, accent elements, active borders
	ColorAccentBright = "#FBBF24" // Highlights, running timer

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
)
