package platform

// Package platform contains OS/filesystem integration glue: audio file
// detection, directory helpers, and locations for persisted application data.
