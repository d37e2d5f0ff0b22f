package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// NeonTheme defines the dark synthwave look: cyan text on near-black with
// magenta accents. Layout sizes stay compact so the tree fits more tracks.
type NeonTheme struct{}

// NewNeonTheme creates a new neon theme
func NewNeonTheme() fyne.Theme {
	return &NeonTheme{}
}

// Color returns theme colors
func (t *NeonTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 5, G: 5, B: 12, A: 255} // Near black
	case theme.ColorNameForeground:
		return color.RGBA{R: 0, G: 255, B: 255, A: 255} // Neon cyan
	case theme.ColorNamePrimary:
		return color.RGBA{R: 255, G: 0, B: 255, A: 255} // Magenta accents
	case theme.ColorNameButton:
		return color.RGBA{R: 15, G: 15, B: 30, A: 255}
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 10, G: 10, B: 22, A: 255}
	case theme.ColorNameSelection:
		return color.RGBA{R: 90, G: 0, B: 90, A: 255}
	case theme.ColorNameHover:
		return color.RGBA{R: 25, G: 25, B: 50, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 57, G: 255, B: 20, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 255, G: 45, B: 85, A: 255}
	case theme.ColorNamePlaceHolder:
		return color.RGBA{R: 0, G: 140, B: 140, A: 255} // Dimmed cyan
	case theme.ColorNameDisabled:
		return color.RGBA{R: 0, G: 100, B: 100, A: 255}
	case theme.ColorNameScrollBar:
		return color.RGBA{R: 0, G: 180, B: 180, A: 160}
	}

	// Use default dark-variant colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *NeonTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *NeonTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *NeonTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
