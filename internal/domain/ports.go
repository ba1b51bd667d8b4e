package domain

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Document is one raw CMS document of a given kind. Body is the JSON
// projection the site decodes into the typed entities.
type Document struct {
	ID       string
	Position int
	Body     json.RawMessage
}

// DocumentSource is anything that can list the documents of a kind,
// in display order. Singletons come back as a list of at most one.
type DocumentSource interface {
	Documents(ctx context.Context, kind string) ([]Document, error)
}

// ContentStore is the local mirror written by the sync job.
type ContentStore interface {
	DocumentSource
	ReplaceDocuments(ctx context.Context, kind string, docs []Document) error
	LogSync(ctx context.Context, kind string, count int, syncErr error) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ImageOpts are the transform parameters for an image URL.
type ImageOpts struct {
	Width  int
	Height int
	Fit    string // "" | "max" | "crop" | "clip" ...
}

// ImageURLer resolves an image reference to a CDN URL.
type ImageURLer interface {
	ImageURL(ref ImageRef, o ImageOpts) string
}
