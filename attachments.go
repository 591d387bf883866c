package themekit

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"

	// Extra decoders so DecodeConfig can classify webp/bmp/tiff uploads.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 80
	maxUploadSize = 10 << 20 // 10MB
	uploadsSubdir = "uploads"
)

// handleAttachmentUpload accepts a multipart upload, derives its mime type,
// downscales oversized images, stores the bytes under the static dir, and
// records the attachment so /attachment/{name} resolves against it.
func (a *App) handleAttachmentUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "login required"})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "file is required"})
	}
	if fileHeader.Size > maxUploadSize {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]any{"error": "file too large"})
	}
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	rec, data, err := processAttachment(src, fileHeader.Filename)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	dir := filepath.Join(a.staticDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, rec.Content), data, 0o644); err != nil {
		return err
	}

	id, err := a.Store.SavePost(rec)
	if err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, map[string]any{
		"id":        id,
		"name":      rec.Name,
		"mime_type": rec.MimeType,
		"url":       "/public/" + uploadsSubdir + "/" + rec.Content,
	})
}

// processAttachment builds the attachment record for an upload. Images are
// re-encoded as JPEG, downscaled when wider than maxImageWidth; anything the
// image decoders reject is stored as-is with a mime type taken from the file
// extension. The record's Content field holds the stored filename.
func processAttachment(src io.Reader, originalName string) (PostRecord, []byte, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return PostRecord{}, nil, fmt.Errorf("read upload: %w", err)
	}

	name := slugifyFilename(originalName)
	if name == "" {
		return PostRecord{}, nil, fmt.Errorf("upload has no usable name")
	}
	date := time.Now().UTC().Format("2006-01-02")

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(originalName)))
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		if i := strings.IndexByte(mimeType, ';'); i >= 0 {
			mimeType = strings.TrimSpace(mimeType[:i])
		}
		rec := PostRecord{
			Post:      Post{Type: "attachment", Name: name},
			Title:     originalName,
			Content:   name + strings.ToLower(filepath.Ext(originalName)),
			MimeType:  mimeType,
			Date:      date,
			Published: true,
		}
		return rec, raw, nil
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return PostRecord{}, nil, fmt.Errorf("encode jpeg: %w", err)
	}

	rec := PostRecord{
		Post:      Post{Type: "attachment", Name: name},
		Title:     originalName,
		Content:   name + ".jpg",
		MimeType:  "image/jpeg",
		Date:      date,
		Published: true,
	}
	return rec, buf.Bytes(), nil
}

// slugifyFilename converts a filename (without extension) to a URL-safe slug.
func slugifyFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(filepath.Base(name), ext)
	return Slugify(base)
}
