package util

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var extByMIME = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// SaveBase64Image decodes a "data:image/...;base64,..." payload and
// writes it under <mediaRoot>/images/. It returns the path relative to
// the media root, which is what gets stored on the recipe.
func SaveBase64Image(mediaRoot, data string) (string, error) {
	if !strings.HasPrefix(data, "data:") {
		return "", errors.New("image must be a base64 data URI")
	}
	rest := strings.TrimPrefix(data, "data:")
	mime, encoded, found := strings.Cut(rest, ";base64,")
	if !found {
		return "", errors.New("image must be base64 encoded")
	}
	ext, ok := extByMIME[mime]
	if !ok {
		return "", errors.New("unsupported image type: " + mime)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.New("invalid base64 image data")
	}

	name := make([]byte, 16)
	if _, err := rand.Read(name); err != nil {
		return "", err
	}
	relPath := filepath.Join("images", hex.EncodeToString(name)+ext)

	dir := filepath.Join(mediaRoot, "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(mediaRoot, relPath), raw, 0o644); err != nil {
		return "", err
	}
	return relPath, nil
}
