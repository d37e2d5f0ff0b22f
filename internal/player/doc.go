package player

// Package player contains the playback core: the engine contract and its beep
// implementation, wall-clock/engine position reconciliation, track sequencing
// with shuffle and lookahead, and the end-of-track monitor that drives
// automatic advance. All mutation happens on the UI thread; the engine is the
// only component touched from audio callbacks.
