package library

// Package library owns the scanned music collection: folder scanning on a
// background worker with progress callbacks, artist-grouped views for the
// tree, substring search, and a filesystem watcher that triggers rescans when
// music folders change on disk.
