package metadata

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
	"github.com/nfnt/resize"

	"github.com/retrowave/jukebox/internal/model"
)

// Artwork display sizes in pixels
const (
	ThumbnailSize = 50
	FullArtSize   = 300
)

// Extract reads tags and duration from the file at path. It never fails: any
// extraction problem yields a Track with filename-derived title and unknown
// artist/album, so a single bad file cannot abort a library scan.
func Extract(path string) model.Track {
	track := model.Track{
		Path:   path,
		Artist: model.UnknownArtist,
		Album:  model.UnknownAlbum,
	}
	base := filepath.Base(path)
	track.Title = strings.TrimSuffix(base, filepath.Ext(base))

	f, err := os.Open(path)
	if err != nil {
		log.Printf("Metadata extraction failed for %s: %v", path, err)
		return track
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		log.Printf("Tag read failed for %s: %v", path, err)
	} else {
		if title := m.Title(); title != "" {
			track.Title = title
		}
		if artist := m.Artist(); artist != "" {
			track.Artist = artist
		}
		if album := m.Album(); album != "" {
			track.Album = album
		}
		if pic := m.Picture(); pic != nil {
			if img := decodeArtwork(pic.Data); img != nil {
				track.Thumbnail = ResizeArtwork(img, ThumbnailSize)
			}
		}
	}

	track.DurationSec = probeDuration(path)
	return track
}

// FullArtwork loads the embedded artwork at display size, or nil when the file
// has none.
func FullArtwork(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil
	}
	pic := m.Picture()
	if pic == nil {
		return nil
	}
	img := decodeArtwork(pic.Data)
	if img == nil {
		return nil
	}
	return ResizeArtwork(img, FullArtSize)
}

// ResizeArtwork scales an image to a square of the given side length
func ResizeArtwork(img image.Image, size int) image.Image {
	return resize.Resize(uint(size), uint(size), img, resize.Bilinear)
}

func decodeArtwork(data []byte) image.Image {
	if len(data) == 0 {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("Artwork decode failed: %v", err)
		return nil
	}
	return img
}

// probeDuration decodes the stream header to compute the track length in whole
// seconds. Returns 0 when the format is unsupported or the file is corrupt.
func probeDuration(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return 0
	}
	if err != nil {
		return 0
	}
	defer streamer.Close()

	return int(format.SampleRate.D(streamer.Len()).Seconds())
}
