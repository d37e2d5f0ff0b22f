package model

// Package model defines domain data structures used across the app: library
// tracks, playlist entities, and their persisted forms. Structures are designed
// for direct binding in the UI and for flat JSON persistence.
