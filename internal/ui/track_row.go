package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// trackRow is a tree leaf for one track. It implements only SecondaryTappable
// so primary taps fall through to the tree's own selection handling, while a
// right-click (or long press) opens the per-track playlist menu.
type trackRow struct {
	widget.BaseWidget

	label  *widget.Label
	path   string
	onMenu func(path string, pos fyne.Position)
}

var _ fyne.SecondaryTappable = (*trackRow)(nil)

// newTrackRow creates an empty row; the tree update callback fills it in
func newTrackRow(onMenu func(path string, pos fyne.Position)) *trackRow {
	r := &trackRow{
		label:  widget.NewLabel(""),
		onMenu: onMenu,
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetTrack binds the row to a track path and display text
func (r *trackRow) SetTrack(path, text string) {
	r.path = path
	r.label.SetText(text)
}

// TappedSecondary opens the per-track menu at the pointer position
func (r *trackRow) TappedSecondary(ev *fyne.PointEvent) {
	if r.onMenu == nil || r.path == "" {
		return
	}
	r.onMenu(r.path, ev.AbsolutePosition)
}

// CreateRenderer implements fyne.Widget
func (r *trackRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.label)
}
