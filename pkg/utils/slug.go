package utils

import (
	"crypto/rand"
	"math/big"
)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// SlugLength is the size of generated venue slugs. 36^8 keeps the collision
// chance negligible; the unique index catches the rest.
const SlugLength = 8

// GenerateSlug returns a short, URL-safe base36 identifier.
func GenerateSlug() string {
	return GenerateSlugN(SlugLength)
}

func GenerateSlugN(length int) string {
	b := make([]byte, length)
	max := big.NewInt(int64(len(slugAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken
			panic(err)
		}
		b[i] = slugAlphabet[n.Int64()]
	}
	return string(b)
}
