package ui

// Package ui contains the Fyne-based desktop user interface for the player.
// It wires user interactions to the playback controller, renders the artist
// tree, transport controls, equalizer and album art, and owns the periodic
// UI ticks that drive playback monitoring and animation.
