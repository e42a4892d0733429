package theme

// Centralized theming for the crop studio UI. Provides the dark palette
// constants shared by widgets and canvas drawing, and InitStyles to activate
// the base theme and configure semantic widget styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets and the canvas.
const (
	ColorBg        = "#2b2b2b" // app background
	ColorSurface   = "#3c3c3c" // bars, panels
	ColorCanvas    = "#1e1e1e" // canvas letterbox area
	ColorBorder    = "#1f1f1f"
	ColorAccent    = "#00d4ff" // selection border, highlights
	ColorText      = "#e6e6e6"
	ColorTextMuted = "#9a9a9a"
	ColorToastBg   = "#153b2e"
	ColorToastText = "#4ade80"
)

// Canvas drawing colors for the selection overlay.
const (
	ColorSelectionOuter = "#000000" // outer border under the accent line
	ColorDimFill        = "#000000" // stippled dim over unselected area
	ColorHandleFill     = "#ffffff"
	ColorGridLine       = "#bbbbbb" // rule-of-thirds guides
)

// Style names used with Style("tool.TButton") etc.
const (
	StyleToolButton  = "tool.TButton"
	StyleInfoLabel   = "info.TLabel"
	StyleStatusLabel = "status.TLabel"
)

// InitStyles activates the base theme and applies widget styles.
func InitStyles() {
	_ = ActivateTheme("azure dark")
	App.Configure(Background(ColorBg))

	StyleConfigure(StyleToolButton,
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleInfoLabel,
		Foreground(ColorTextMuted),
		Background(ColorSurface),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleStatusLabel,
		Foreground(ColorText),
		Background(ColorSurface),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
