package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for board cells and UI chrome
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBoardEmpty = tcell.NewRGBColor(40, 42, 58)    // Slightly lifted board
	RgbBorder     = tcell.NewRGBColor(100, 100, 100) // Gray frame

	RgbSnakeBody = tcell.NewRGBColor(255, 243, 128) // Pale yellow body
	RgbSnakeHead = tcell.NewRGBColor(255, 165, 0)   // Orange head
	RgbBug       = tcell.NewRGBColor(65, 163, 23)   // Green bug
	RgbHint      = tcell.NewRGBColor(30, 60, 25)    // Dim green preview
	RgbHintMark  = tcell.NewRGBColor(90, 140, 60)   // Selected hint

	// Status bar
	RgbStatusText    = tcell.NewRGBColor(0, 0, 0)       // Dark text for status segments
	RgbStatusRunBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusPauseBg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStatusOverBg  = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbStatusWonBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStatusInfo    = tcell.NewRGBColor(180, 180, 180) // Gray readout text
	RgbAudioMuted    = tcell.NewRGBColor(255, 80, 80)   // Bright red when muted
	RgbAudioUnmuted  = tcell.NewRGBColor(0, 200, 0)     // Bright green when unmuted
)
