package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/retrowave/jukebox/internal/config"
	"github.com/retrowave/jukebox/internal/library"
	"github.com/retrowave/jukebox/internal/metadata"
	"github.com/retrowave/jukebox/internal/model"
	"github.com/retrowave/jukebox/internal/player"
	"github.com/retrowave/jukebox/internal/playlist"
	"github.com/retrowave/jukebox/internal/visual"
)

// Tree node ID prefixes
const (
	artistNodePrefix = "artist:"
	trackNodePrefix  = "track:"
)

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	settings   *config.Settings
	lib        *library.Library
	scanner    *library.Scanner
	watcher    *library.Watcher
	store      *playlist.Store
	controller *player.Controller
	engine     *player.BeepEngine
	equalizer  *visual.Equalizer

	// Active list state. listLabel is AllMusicLabel or a playlist name.
	activeTracks []model.Track
	listLabel    string

	// Tree index, rebuilt on every refreshTree
	artistIDs        []widget.TreeNodeID
	childrenByArtist map[widget.TreeNodeID][]widget.TreeNodeID
	groupByID        map[widget.TreeNodeID]library.ArtistGroup
	trackByID        map[widget.TreeNodeID]model.Track

	tree          *widget.Tree
	searchEntry   *widget.Entry
	listLabelText *widget.Label
	playBtn       *widget.Button
	stopBtn       *widget.Button
	nextBtn       *widget.Button
	shuffleCheck  *widget.Check
	volumeSlider  *widget.Slider
	titleLabel    *widget.Label
	nextLabel     *widget.Label
	progressLabel *widget.Label
	seekSlider    *widget.Slider
	statusLabel   *widget.Label
	scanSpinner   *widget.ProgressBarInfinite
	artImage      *canvas.Image
	eqRaster      *canvas.Raster

	currentDuration int
	sliderDragging  bool
	updatingSlider  bool

	placeholderArt image.Image
	visualizer     *VisualizerWindow

	done chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, controller *player.Controller,
	engine *player.BeepEngine, lib *library.Library, scanner *library.Scanner,
	watcher *library.Watcher, store *playlist.Store) *RootUI {

	settings := config.NewSettings(app)

	ui := &RootUI{
		window:         window,
		settings:       settings,
		lib:            lib,
		scanner:        scanner,
		watcher:        watcher,
		store:          store,
		controller:     controller,
		engine:         engine,
		equalizer:      visual.NewEqualizer(nil),
		listLabel:      AllMusicLabel,
		placeholderArt: newPlaceholderArt(),
		done:           make(chan struct{}),
	}

	window.SetTitle("Jukebox")

	controller.SetOnTrackChanged(ui.onTrackChanged)
	if settings.GetShuffleEnabled() != controller.Shuffle() {
		controller.ToggleShuffle()
	}
	if engine != nil {
		engine.SetVolume(settings.GetVolume())
	}

	scanner.SetProgressCallback(func(p library.ScanProgress) {
		fyne.Do(func() {
			ui.scanSpinner.Show()
			ui.setStatus(fmt.Sprintf("Scanning %s: %d tracks found", p.Folder, p.TracksFound))
		})
	})
	scanner.SetCompleteCallback(func(added int) {
		fyne.Do(func() {
			ui.scanSpinner.Hide()
			ui.setStatus(fmt.Sprintf("Scan complete: %d tracks", added))
			ui.onLibraryChanged()
		})
	})

	// Read before setupUI: showing All Music during setup clears the key
	lastPlaylist := settings.GetLastPlaylist()

	ui.setupUI()
	if lastPlaylist != "" {
		if _, ok := store.Get(lastPlaylist); ok {
			ui.loadPlaylist(lastPlaylist)
		}
	}
	ui.startTickers()

	window.SetOnClosed(ui.shutdown)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Search row
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder("Search title or artist")
	ui.searchEntry.OnChanged = func(string) { ui.refreshTree() }
	ui.listLabelText = widget.NewLabel(ui.listLabel)
	ui.listLabelText.TextStyle = fyne.TextStyle{Bold: true}
	searchRow := container.NewBorder(nil, nil, ui.listLabelText, nil, ui.searchEntry)

	// Artist/track tree
	ui.tree = widget.NewTree(ui.treeChildren, ui.treeIsBranch, ui.treeCreateNode, ui.treeUpdateNode)
	ui.tree.OnSelected = ui.onTreeSelected

	// Right pane: album art and the now/next labels
	ui.artImage = canvas.NewImageFromImage(ui.placeholderArt)
	ui.artImage.FillMode = canvas.ImageFillContain
	ui.artImage.SetMinSize(fyne.NewSize(ArtPaneSize, ArtPaneSize))
	ui.titleLabel = widget.NewLabel(DashPlaceholder)
	ui.titleLabel.Wrapping = fyne.TextWrapWord
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.nextLabel = widget.NewLabel("Next: " + DashPlaceholder)
	ui.nextLabel.Alignment = fyne.TextAlignCenter
	rightPane := container.NewVBox(ui.artImage, ui.titleLabel, ui.nextLabel)

	// Transport row
	ui.playBtn = widget.NewButton(IconPlay, ui.onPlayClick)
	ui.stopBtn = widget.NewButton(IconStop, ui.onStopClick)
	ui.nextBtn = widget.NewButton(IconNext, ui.onNextClick)
	ui.shuffleCheck = widget.NewCheck("Shuffle", ui.onShuffleToggle)
	ui.shuffleCheck.SetChecked(ui.controller.Shuffle())
	visualizerBtn := widget.NewButton(IconVisualizer, ui.onShowVisualizer)
	ui.volumeSlider = widget.NewSlider(0, 1)
	ui.volumeSlider.Step = 0.05
	ui.volumeSlider.SetValue(ui.settings.GetVolume())
	ui.volumeSlider.OnChanged = ui.onVolumeChanged
	volumeBox := container.NewGridWrap(fyne.NewSize(120, 36), ui.volumeSlider)
	transport := container.NewHBox(
		ui.playBtn, ui.stopBtn, ui.nextBtn,
		widget.NewSeparator(),
		ui.shuffleCheck, visualizerBtn,
		widget.NewLabel("Vol"), volumeBox,
	)

	// Progress row
	ui.progressLabel = widget.NewLabel("0:00 / 0:00")
	ui.seekSlider = widget.NewSlider(0, 1)
	ui.seekSlider.OnChanged = func(float64) {
		if !ui.updatingSlider {
			ui.sliderDragging = true
		}
	}
	ui.seekSlider.OnChangeEnded = ui.onSeekEnded
	progressRow := container.NewBorder(nil, nil, ui.progressLabel, nil, ui.seekSlider)

	// Equalizer strip
	ui.eqRaster = canvas.NewRaster(ui.renderEqualizer)
	ui.eqRaster.SetMinSize(fyne.NewSize(0, EqualizerHeight))

	ui.statusLabel = widget.NewLabel("")
	ui.scanSpinner = widget.NewProgressBarInfinite()
	ui.scanSpinner.Hide()
	statusRow := container.NewBorder(nil, nil, nil, ui.scanSpinner, ui.statusLabel)

	bottom := container.NewVBox(progressRow, transport, ui.eqRaster, statusRow)
	content := container.NewBorder(searchRow, bottom, nil, rightPane, ui.tree)
	ui.window.SetContent(content)

	ui.showAllMusic()
	log.Printf("UI setup completed successfully")
}

// createMenu builds the application menu; called again whenever the set of
// playlists changes so the dynamic entries stay current.
func (ui *RootUI) createMenu() {
	addFolderItem := fyne.NewMenuItem("Add Music Folder…", ui.onAddFolder)
	rescanItem := fyne.NewMenuItem("Rescan Library", ui.onRescan)
	visualizerItem := fyne.NewMenuItem("Visualizer", ui.onShowVisualizer)
	fileMenu := fyne.NewMenu("File",
		addFolderItem, rescanItem, fyne.NewMenuItemSeparator(), visualizerItem)

	newItem := fyne.NewMenuItem("New Playlist…", ui.onCreatePlaylist)
	saveItem := fyne.NewMenuItem("Save Playlists", ui.onSavePlaylists)
	allMusicItem := fyne.NewMenuItem(AllMusicLabel, ui.showAllMusic)
	allMusicItem.Checked = ui.listLabel == AllMusicLabel

	playlistMenu := fyne.NewMenu("Playlists",
		newItem, saveItem, fyne.NewMenuItemSeparator(), allMusicItem)

	names := ui.store.Names()
	for _, name := range names {
		name := name // Capture for closure
		item := fyne.NewMenuItem(name, func() { ui.loadPlaylist(name) })
		item.Checked = ui.listLabel == name
		playlistMenu.Items = append(playlistMenu.Items, item)
	}

	addToItem := fyne.NewMenuItem("Add Current Track To", nil)
	addToItem.ChildMenu = ui.buildNameMenu(names, ui.addCurrentTo)
	removeFromItem := fyne.NewMenuItem("Remove Current Track From", nil)
	removeFromItem.ChildMenu = ui.buildNameMenu(names, ui.removeCurrentFrom)
	deleteItem := fyne.NewMenuItem("Delete Playlist", nil)
	deleteItem.ChildMenu = ui.buildNameMenu(names, ui.deletePlaylist)
	playlistMenu.Items = append(playlistMenu.Items,
		fyne.NewMenuItemSeparator(), addToItem, removeFromItem, deleteItem)

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, playlistMenu))
}

// buildNameMenu creates a submenu with one action item per playlist name
func (ui *RootUI) buildNameMenu(names []string, action func(name string)) *fyne.Menu {
	menu := fyne.NewMenu("")
	for _, name := range names {
		name := name
		menu.Items = append(menu.Items, fyne.NewMenuItem(name, func() { action(name) }))
	}
	return menu
}

// visibleTracks returns the active list filtered by the search query
func (ui *RootUI) visibleTracks() []model.Track {
	query := strings.TrimSpace(ui.searchEntry.Text)
	if query == "" {
		return ui.activeTracks
	}
	if ui.listLabel == AllMusicLabel {
		return ui.lib.Search(query)
	}

	query = strings.ToLower(query)
	var matches []model.Track
	for _, track := range ui.activeTracks {
		if strings.Contains(strings.ToLower(track.Title), query) ||
			strings.Contains(strings.ToLower(track.Artist), query) {
			matches = append(matches, track)
		}
	}
	return matches
}

// refreshTree rebuilds the tree index from the visible tracks
func (ui *RootUI) refreshTree() {
	groups := library.GroupByArtist(ui.visibleTracks())

	ui.artistIDs = ui.artistIDs[:0]
	ui.childrenByArtist = make(map[widget.TreeNodeID][]widget.TreeNodeID)
	ui.groupByID = make(map[widget.TreeNodeID]library.ArtistGroup)
	ui.trackByID = make(map[widget.TreeNodeID]model.Track)

	for _, group := range groups {
		artistID := artistNodePrefix + group.Artist
		ui.artistIDs = append(ui.artistIDs, artistID)
		ui.groupByID[artistID] = group
		for _, track := range group.Tracks {
			trackID := trackNodePrefix + track.Path
			ui.childrenByArtist[artistID] = append(ui.childrenByArtist[artistID], trackID)
			ui.trackByID[trackID] = track
		}
	}

	ui.tree.Refresh()
	if strings.TrimSpace(ui.searchEntry.Text) != "" {
		ui.tree.OpenAllBranches()
	}
}

func (ui *RootUI) treeChildren(id widget.TreeNodeID) []widget.TreeNodeID {
	if id == "" {
		return ui.artistIDs
	}
	return ui.childrenByArtist[id]
}

func (ui *RootUI) treeIsBranch(id widget.TreeNodeID) bool {
	return id == "" || strings.HasPrefix(id, artistNodePrefix)
}

func (ui *RootUI) treeCreateNode(branch bool) fyne.CanvasObject {
	if branch {
		icon := canvas.NewImageFromImage(nil)
		icon.FillMode = canvas.ImageFillContain
		icon.SetMinSize(fyne.NewSize(ArtistIconSize, ArtistIconSize))
		return container.NewHBox(icon, widget.NewLabel(""))
	}
	return newTrackRow(ui.onTrackMenu)
}

func (ui *RootUI) treeUpdateNode(id widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	if branch {
		box, ok := obj.(*fyne.Container)
		if !ok || len(box.Objects) < 2 {
			return
		}
		icon := box.Objects[0].(*canvas.Image)
		label := box.Objects[1].(*widget.Label)

		group := ui.groupByID[id]
		label.SetText(fmt.Sprintf("%s (%d)", group.Artist, len(group.Tracks)))
		icon.Image = group.Icon
		if group.Icon == nil {
			icon.Hide()
		} else {
			icon.Show()
			icon.Refresh()
		}
		return
	}

	row, ok := obj.(*trackRow)
	if !ok {
		return
	}
	track := ui.trackByID[id]
	text := track.DisplayTitle()
	if track.DurationSec > 0 {
		text += MiddleDotSeparator + model.FormatDuration(track.DurationSec)
	}
	row.SetTrack(track.Path, text)
}

// onTreeSelected plays a track node; artist nodes just expand
func (ui *RootUI) onTreeSelected(id widget.TreeNodeID) {
	if !strings.HasPrefix(id, trackNodePrefix) {
		return
	}
	path := strings.TrimPrefix(id, trackNodePrefix)
	if err := ui.controller.PlayPath(path); err != nil {
		log.Printf("Failed to play %s: %v", path, err)
		ui.setStatus("Cannot play: " + err.Error())
	}
}

// showAllMusic switches the active list back to the whole library and
// forgets the last-playlist preference so the next launch starts here too.
func (ui *RootUI) showAllMusic() {
	ui.listLabel = AllMusicLabel
	ui.activeTracks = ui.lib.All()
	ui.controller.SetList(ui.activeTracks)
	ui.listLabelText.SetText(ui.listLabel)
	ui.settings.SetLastPlaylist("")
	ui.refreshTree()
	ui.createMenu()
}

// loadPlaylist makes the named playlist the active list. Tracks still in the
// library use their scanned metadata; missing files keep the saved fields.
func (ui *RootUI) loadPlaylist(name string) {
	p, ok := ui.store.Get(name)
	if !ok {
		ui.setStatus("Playlist not found: " + name)
		return
	}

	tracks := make([]model.Track, 0, len(p.Tracks))
	for _, ref := range p.Tracks {
		if track, found := ui.lib.ByPath(ref.Path); found {
			tracks = append(tracks, track)
			continue
		}
		tracks = append(tracks, ref.Track())
	}

	ui.listLabel = name
	ui.activeTracks = tracks
	ui.controller.SetList(tracks)
	ui.listLabelText.SetText(name)
	ui.settings.SetLastPlaylist(name)
	ui.refreshTree()
	ui.createMenu()
	ui.setStatus(fmt.Sprintf("Loaded playlist %s (%d tracks)", name, len(tracks)))
}

// onLibraryChanged refreshes views after a scan or watcher-triggered rescan
func (ui *RootUI) onLibraryChanged() {
	if ui.listLabel == AllMusicLabel {
		ui.activeTracks = ui.lib.All()
		ui.controller.SetList(ui.activeTracks)
	}
	ui.refreshTree()
}

// onPlayClick replays the current track, or starts the first visible one
func (ui *RootUI) onPlayClick() {
	if track, ok := ui.controller.Current(); ok {
		if err := ui.controller.PlayPath(track.Path); err != nil {
			ui.setStatus("Cannot play: " + err.Error())
		}
		return
	}
	tracks := ui.visibleTracks()
	if len(tracks) == 0 {
		ui.setStatus("Nothing to play")
		return
	}
	if err := ui.controller.PlayPath(tracks[0].Path); err != nil {
		ui.setStatus("Cannot play: " + err.Error())
	}
}

func (ui *RootUI) onStopClick() {
	ui.controller.Stop()
	ui.progressLabel.SetText("0:00 / " + model.FormatDuration(ui.currentDuration))
	ui.setStatus("Stopped")
}

func (ui *RootUI) onNextClick() {
	if err := ui.controller.Skip(); err != nil {
		ui.setStatus("Cannot skip: " + err.Error())
	}
}

func (ui *RootUI) onShuffleToggle(checked bool) {
	if checked != ui.controller.Shuffle() {
		ui.controller.ToggleShuffle()
	}
	ui.settings.SetShuffleEnabled(checked)
	ui.refreshNextLabel()
}

func (ui *RootUI) onVolumeChanged(value float64) {
	ui.settings.SetVolume(value)
	if ui.engine != nil {
		ui.engine.SetVolume(value)
	}
}

// onSeekEnded commits a user drag of the progress slider
func (ui *RootUI) onSeekEnded(value float64) {
	dragging := ui.sliderDragging
	ui.sliderDragging = false
	if !dragging || !ui.controller.Playing() {
		return
	}
	ui.controller.SeekTo(value)
}

// onShowVisualizer opens the plasma window, or focuses the existing one
func (ui *RootUI) onShowVisualizer() {
	if ui.visualizer != nil && !ui.visualizer.Stopped() {
		return
	}
	ui.visualizer = ShowVisualizer(fyne.CurrentApp(), ui.settings.GetVisualizerSpeed())
}

// onAddFolder lets the user pick a folder, persists it and starts a scan
func (ui *RootUI) onAddFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		folder := uri.Path()
		if !ui.settings.AddMusicFolder(folder) {
			ui.setStatus("Folder already in library: " + folder)
			return
		}
		if ui.watcher != nil {
			ui.watcher.Add(folder)
		}
		if err := ui.scanner.Scan(folder); err != nil {
			ui.setStatus(err.Error())
		}
	}, ui.window)
}

// onRescan rescans all configured folders
func (ui *RootUI) onRescan() {
	if err := ui.scanner.Scan(ui.settings.GetMusicFolders()...); err != nil {
		ui.setStatus(err.Error())
	}
}

// onCreatePlaylist prompts for a name and creates an empty playlist
func (ui *RootUI) onCreatePlaylist() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Playlist name")
	dialog.ShowCustomConfirm("New Playlist", "Create", "Cancel", entry, func(ok bool) {
		name := strings.TrimSpace(entry.Text)
		if !ok || name == "" {
			return
		}
		ui.store.Create(name)
		ui.createMenu()
		ui.setStatus("Created playlist " + name)
	}, ui.window)
}

// onSavePlaylists persists all playlists to disk
func (ui *RootUI) onSavePlaylists() {
	if err := ui.store.Save(); err != nil {
		log.Printf("Failed to save playlists: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}
	ui.setStatus("Playlists saved")
}

// onTrackMenu opens the per-track playlist menu for a right-clicked tree row
func (ui *RootUI) onTrackMenu(path string, pos fyne.Position) {
	track, ok := ui.trackByID[trackNodePrefix+path]
	if !ok {
		return
	}
	widget.ShowPopUpMenuAtPosition(ui.trackMenu(track), ui.window.Canvas(), pos)
}

// trackMenu builds the playlist actions for one track: add to each playlist
// (duplicates rejected on selection), create a new playlist holding it, and
// remove from each playlist that contains it.
func (ui *RootUI) trackMenu(track model.Track) *fyne.Menu {
	names := ui.store.Names()

	var items []*fyne.MenuItem
	for _, name := range names {
		name := name
		items = append(items, fyne.NewMenuItem("Add to "+name, func() {
			ui.addTrackToPlaylist(track, name)
		}))
	}
	items = append(items, fyne.NewMenuItem("New Playlist and Add…", func() {
		ui.promptPlaylistWithTrack(track)
	}))

	var removals []*fyne.MenuItem
	for _, name := range names {
		if p, ok := ui.store.Get(name); ok && p.Contains(track.Path) {
			name := name
			removals = append(removals, fyne.NewMenuItem("Remove from "+name, func() {
				ui.removeTrackFromPlaylist(track, name)
			}))
		}
	}
	if len(removals) > 0 {
		items = append(items, fyne.NewMenuItemSeparator())
		items = append(items, removals...)
	}

	return fyne.NewMenu(track.DisplayTitle(), items...)
}

// addTrackToPlaylist appends a track to the named playlist, skipping
// duplicates by path.
func (ui *RootUI) addTrackToPlaylist(track model.Track, name string) {
	p, ok := ui.store.Get(name)
	if !ok {
		ui.setStatus("Playlist not found: " + name)
		return
	}
	if p.Contains(track.Path) {
		ui.setStatus(fmt.Sprintf("%s is already in %s", track.DisplayTitle(), name))
		return
	}
	p.Add(track.Ref())
	ui.setStatus(fmt.Sprintf("Added %s to %s", track.DisplayTitle(), name))
	if ui.listLabel == name {
		ui.loadPlaylist(name)
	}
}

// removeTrackFromPlaylist drops a track from the named playlist
func (ui *RootUI) removeTrackFromPlaylist(track model.Track, name string) {
	p, ok := ui.store.Get(name)
	if !ok {
		ui.setStatus("Playlist not found: " + name)
		return
	}
	if !p.Remove(track.Path) {
		ui.setStatus(fmt.Sprintf("%s is not in %s", track.DisplayTitle(), name))
		return
	}
	ui.setStatus(fmt.Sprintf("Removed %s from %s", track.DisplayTitle(), name))
	if ui.listLabel == name {
		ui.loadPlaylist(name)
	}
}

// promptPlaylistWithTrack asks for a name, then creates the playlist with the
// track as its first entry.
func (ui *RootUI) promptPlaylistWithTrack(track model.Track) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Playlist name")
	dialog.ShowCustomConfirm("New Playlist", "Create", "Cancel", entry, func(ok bool) {
		name := strings.TrimSpace(entry.Text)
		if !ok || name == "" {
			return
		}
		ui.createPlaylistWithTrack(name, track)
	}, ui.window)
}

// createPlaylistWithTrack creates a playlist seeded with one track
func (ui *RootUI) createPlaylistWithTrack(name string, track model.Track) {
	ui.store.Create(name)
	ui.addTrackToPlaylist(track, name)
	ui.createMenu()
}

// addCurrentTo appends the playing track to the named playlist
func (ui *RootUI) addCurrentTo(name string) {
	track, ok := ui.controller.Current()
	if !ok {
		ui.setStatus("No track playing")
		return
	}
	ui.addTrackToPlaylist(track, name)
}

// removeCurrentFrom drops the playing track from the named playlist
func (ui *RootUI) removeCurrentFrom(name string) {
	track, ok := ui.controller.Current()
	if !ok {
		ui.setStatus("No track playing")
		return
	}
	ui.removeTrackFromPlaylist(track, name)
}

func (ui *RootUI) deletePlaylist(name string) {
	dialog.ShowConfirm("Delete Playlist",
		fmt.Sprintf("Delete playlist %q?", name), func(ok bool) {
			if !ok {
				return
			}
			ui.store.Delete(name)
			if ui.listLabel == name {
				ui.showAllMusic()
			}
			ui.createMenu()
			ui.setStatus("Deleted playlist " + name)
		}, ui.window)
}

// onTrackChanged updates the now-playing pane when playback moves to a track
func (ui *RootUI) onTrackChanged(track model.Track) {
	ui.currentDuration = track.DurationSec

	text := track.DisplayTitle()
	if track.Artist != "" {
		text += MiddleDotSeparator + track.Artist
	}
	ui.titleLabel.SetText(text)

	max := float64(track.DurationSec)
	if max <= 0 {
		max = 1
	}
	ui.updatingSlider = true
	ui.seekSlider.Max = max
	ui.seekSlider.SetValue(0)
	ui.updatingSlider = false

	art := metadata.FullArtwork(track.Path)
	if art == nil {
		art = ui.placeholderArt
	}
	ui.artImage.Image = art
	ui.artImage.Refresh()

	ui.refreshNextLabel()
	ui.setStatus("Playing " + track.DisplayTitle())
}

// refreshNextLabel shows the upcoming track without advancing the sequencer
func (ui *RootUI) refreshNextLabel() {
	next, err := ui.controller.Next()
	if err != nil {
		ui.nextLabel.SetText("Next: " + DashPlaceholder)
		return
	}
	ui.nextLabel.SetText("Next: " + next.DisplayTitle())
}

// startTickers launches the periodic UI updates. Tick bodies run on the Fyne
// thread and recover from panics so one bad frame cannot kill the loop.
func (ui *RootUI) startTickers() {
	go ui.tickLoop(MonitorTickInterval, ui.onMonitorTick)
	go ui.tickLoop(EqualizerTickInterval, ui.onEqualizerTick)
}

func (ui *RootUI) tickLoop(interval time.Duration, tick func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ui.done:
			return
		case <-ticker.C:
			fyne.Do(func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("Recovered from UI tick panic: %v", r)
					}
				}()
				tick()
			})
		}
	}
}

// onMonitorTick drives end-of-track detection and the progress display
func (ui *RootUI) onMonitorTick() {
	ui.controller.Tick()

	if !ui.controller.Playing() {
		return
	}
	elapsed := ui.controller.Elapsed()
	ui.progressLabel.SetText(
		model.FormatDuration(int(elapsed)) + " / " + model.FormatDuration(ui.currentDuration))

	if !ui.sliderDragging && ui.currentDuration > 0 {
		ui.updatingSlider = true
		ui.seekSlider.SetValue(elapsed)
		ui.updatingSlider = false
	}
}

func (ui *RootUI) onEqualizerTick() {
	ui.equalizer.Step(ui.controller.Busy())
	ui.eqRaster.Refresh()
}

// renderEqualizer paints the bar strip; called by the raster on refresh
func (ui *RootUI) renderEqualizer(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}

	bars := ui.equalizer.Bars()
	barWidth := w / len(bars)
	if barWidth < 1 {
		barWidth = 1
	}

	cyan := color.RGBA{R: 0, G: 255, B: 255, A: 255}
	magenta := color.RGBA{R: 255, G: 0, B: 255, A: 255}

	for i, height := range bars {
		top := h - int(height*float64(h))
		left := i * barWidth
		for y := top; y < h; y++ {
			// Magenta tips fade into cyan bodies
			c := cyan
			if y-top < h/8 {
				c = magenta
			}
			for x := left; x < left+barWidth-1 && x < w; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
}

// shutdown runs when the main window closes
func (ui *RootUI) shutdown() {
	close(ui.done)
	if ui.visualizer != nil {
		ui.visualizer.Close()
	}
	ui.controller.Stop()
	if ui.watcher != nil {
		ui.watcher.Close()
	}
	if err := ui.store.Save(); err != nil {
		log.Printf("Failed to save playlists on exit: %v", err)
	}
}

// newPlaceholderArt draws the dark square shown when a track has no artwork
func newPlaceholderArt() image.Image {
	const size = 300
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 10, G: 10, B: 22, A: 255})
		}
	}
	return img
}
