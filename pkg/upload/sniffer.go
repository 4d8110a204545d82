// Package upload implements the file-upload pipeline: true-format sniffing,
// HEIC transcoding and size enforcement. The claimed filename/extension is
// never trusted; the stored content type always comes from the bytes.
package upload

import (
	"errors"

	"github.com/gabriel-vasile/mimetype"
)

type Kind string

const (
	KindPNG     Kind = "png"
	KindJPEG    Kind = "jpeg"
	KindWEBP    Kind = "webp"
	KindPDF     Kind = "pdf"
	KindHEIC    Kind = "heic"
	KindUnknown Kind = "unknown"
)

var (
	ErrTooLarge          = errors.New("file exceeds the size limit")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrDecodeFailed      = errors.New("could not decode image, please resubmit in a supported format")
)

func (k Kind) ContentType() string {
	switch k {
	case KindPNG:
		return "image/png"
	case KindJPEG:
		return "image/jpeg"
	case KindWEBP:
		return "image/webp"
	case KindPDF:
		return "application/pdf"
	case KindHEIC:
		return "image/heic"
	default:
		return "application/octet-stream"
	}
}

// Sniff determines the true format from magic bytes. HEIC/HEIF detection
// covers the ftyp brands heic, heix, hevc and mif1.
func Sniff(data []byte) Kind {
	if isHEIC(data) {
		return KindHEIC
	}

	switch mimetype.Detect(data).String() {
	case "image/png":
		return KindPNG
	case "image/jpeg":
		return KindJPEG
	case "image/webp":
		return KindWEBP
	case "application/pdf":
		return KindPDF
	case "image/heic", "image/heic-sequence", "image/heif", "image/heif-sequence":
		return KindHEIC
	default:
		return KindUnknown
	}
}

var heicBrands = map[string]bool{
	"heic": true,
	"heix": true,
	"hevc": true,
	"mif1": true,
}

// isHEIC inspects the ISO-BMFF ftyp box directly. The box layout is
// [4-byte size]["ftyp"][4-byte major brand][...].
func isHEIC(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	if string(data[4:8]) != "ftyp" {
		return false
	}
	return heicBrands[string(data[8:12])]
}
