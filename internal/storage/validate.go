package storage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFile is returned by ValidateFile.
var ErrInvalidFile = errors.New("invalid file")

type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

const (
	MaxImageSize    = 5 << 20
	MaxDocumentSize = 10 << 20
)

// allowedTypes maps each accepted content type to the extension its objects
// are stored with.
var allowedTypes = map[Kind]map[string]string{
	KindImage: {
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
		"image/gif":  ".gif",
	},
	KindDocument: {
		"application/pdf": ".pdf",
	},
}

func mediaType(contentType string) string {
	return strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
}

// Extension returns the file extension for an accepted content type, or ""
// for anything ValidateFile would reject.
func Extension(contentType string) string {
	mt := mediaType(contentType)
	for _, types := range allowedTypes {
		if ext, ok := types[mt]; ok {
			return ext
		}
	}
	return ""
}

// Folder is the bucket prefix files of kind are stored under.
func (k Kind) Folder() string {
	if k == KindDocument {
		return "documents"
	}
	return "images"
}

// ParseKind maps the "kind" form field to a Kind; anything unknown is
// rejected.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindImage, "":
		return KindImage, nil
	case KindDocument:
		return KindDocument, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidFile, s)
}

// ValidateFile checks the declared content type and size of an upload.
func ValidateFile(kind Kind, contentType string, size int64) error {
	types, ok := allowedTypes[kind]
	if !ok {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidFile, kind)
	}

	contentType = mediaType(contentType)
	if _, ok := types[contentType]; !ok {
		return fmt.Errorf("%w: content type %q not allowed for %s", ErrInvalidFile, contentType, kind)
	}

	limit := int64(MaxImageSize)
	if kind == KindDocument {
		limit = MaxDocumentSize
	}
	if size <= 0 {
		return fmt.Errorf("%w: empty file", ErrInvalidFile)
	}
	if size > limit {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrInvalidFile, size, limit)
	}
	return nil
}
