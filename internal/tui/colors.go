package tui

// Color constants for punch TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#14281F" // Deep green
	ColorBorder         = "#3C4F46" // Muted grey-green

	// Text Colors
	ColorPrimaryText   = "#EAF2EC" // Primary text (labels, user input, titles)
	ColorSecondaryText = "#B4C4B9" // Secondary text - pale sage
	ColorDisabledText  = "#6F7D75" // Disabled/muted text
	ColorPlaceholder   = "#B4C4B9" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#1C3E33" // Headers, accent elements, active borders
	ColorAccentBright = "#5B9D32" // Highlights, the live clock

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#FC7A57" // Warnings, the check-in accent
)
