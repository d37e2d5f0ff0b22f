package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPlay       = "▶"
	IconStop       = "⏹"
	IconNext       = "⏭"
	IconMusic      = "🎵"
	IconFolder     = "📁"
	IconVisualizer = "🌀"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	AllMusicLabel      = "All Music"
)

// Layout sizing
const (
	ArtPaneSize     float32 = 300
	EqualizerHeight float32 = 80
	TreeMinWidth    float32 = 420
	ArtistIconSize  float32 = 20
	WindowWidth     float32 = 1200
	WindowHeight    float32 = 800
)

// Tick intervals. The monitor tick drives end-of-track detection and the
// progress display; the equalizer tick only animates bars.
const (
	MonitorTickInterval   = 200 * time.Millisecond
	EqualizerTickInterval = 100 * time.Millisecond
)
