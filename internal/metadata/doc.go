package metadata

// Package metadata extracts track information from audio files: title, artist,
// album and embedded artwork via dhowden/tag, plus a duration probe through the
// audio decoders. Extraction is best-effort; a file that cannot be read still
// yields a usable Track with filename-derived defaults.
