package playlist

// Package playlist manages named playlists persisted wholesale to a flat JSON
// file. Saved entries carry only the persistable track fields; artwork and
// other transient state are dropped. The in-memory map stays authoritative for
// the session when persistence fails.
