package upload

import (
	"fmt"
	"strings"
)

// Profile describes what a given upload slot accepts.
type Profile struct {
	MaxBytes int64
	Allowed  map[Kind]bool
}

// MenuProfile accepts restaurant menus: documents or photos, up to 10MB.
func MenuProfile(maxBytes int64) Profile {
	return Profile{
		MaxBytes: maxBytes,
		Allowed: map[Kind]bool{
			KindPDF:  true,
			KindPNG:  true,
			KindJPEG: true,
			KindWEBP: true,
			KindHEIC: true,
		},
	}
}

// LogoProfile accepts images only, up to 2MB.
func LogoProfile(maxBytes int64) Profile {
	return Profile{
		MaxBytes: maxBytes,
		Allowed: map[Kind]bool{
			KindPNG:  true,
			KindJPEG: true,
			KindWEBP: true,
			KindHEIC: true,
		},
	}
}

// Result is a blob ready for persistence.
type Result struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Process validates the blob against the profile and normalizes it for
// storage. HEIC input is transcoded to JPEG so every stored image serves in
// any browser. All failures are user-correctable.
func Process(data []byte, filename string, profile Profile) (*Result, error) {
	if int64(len(data)) > profile.MaxBytes {
		return nil, fmt.Errorf("%w (%d bytes, limit %d)", ErrTooLarge, len(data), profile.MaxBytes)
	}

	kind := Sniff(data)
	if !profile.Allowed[kind] {
		return nil, fmt.Errorf("%w: detected %s", ErrUnsupportedFormat, kind)
	}

	if kind == KindHEIC {
		jpegData, err := TranscodeHEICToJPEG(data)
		if err != nil {
			return nil, err
		}
		return &Result{
			Data:        jpegData,
			Filename:    replaceExt(filename, ".jpg"),
			ContentType: KindJPEG.ContentType(),
		}, nil
	}

	return &Result{
		Data:        data,
		Filename:    filename,
		ContentType: kind.ContentType(),
	}, nil
}

func replaceExt(filename, newExt string) string {
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		return filename[:idx] + newExt
	}
	return filename + newExt
}
