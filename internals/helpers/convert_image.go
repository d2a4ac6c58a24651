package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	avatarMaxW    = 512
	avatarMaxH    = 512
	avatarQuality = 80
)

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("format tidak didukung: %s / %s", ct, ext)
		}
	}
	return img, err
}

// ConvertToAvatarWebP: decode → fit-resize (keep aspect) → encode webp.
func ConvertToAvatarWebP(raw []byte, filename string) ([]byte, error) {
	img, err := decodeImage(raw, filename)
	if err != nil {
		return nil, err
	}

	fitted := imaging.Fit(img, avatarMaxW, avatarMaxH, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, fitted, &webp.Options{Lossless: false, Quality: avatarQuality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveAvatarWebP menyimpan hasil konversi ke UPLOAD_DIR dan mengembalikan
// path publiknya (relative URL).
func SaveAvatarWebP(raw []byte, originalFilename string) (string, error) {
	data, err := ConvertToAvatarWebP(raw, originalFilename)
	if err != nil {
		return "", err
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads/avatars"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	name := GenerateUniqueFilename(strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename))) + ".webp"
	full := filepath.Join(dir, name)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan avatar: %w", err)
	}

	return "/" + filepath.ToSlash(full), nil
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}
