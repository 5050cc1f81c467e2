package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

var ErrTooLarge = errors.New("upload too large")

type Result struct {
	URL    string `json:"url"`
	Key    string `json:"key"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Uploader turns uploaded images into WebP objects.
type Uploader struct {
	store    ObjectStorage
	maxBytes int64
	maxWidth int
	now      func() time.Time
}

func NewUploader(store ObjectStorage, maxBytes int64, maxWidth int) *Uploader {
	return &Uploader{
		store:    store,
		maxBytes: maxBytes,
		maxWidth: maxWidth,
		now:      time.Now,
	}
}

func (u *Uploader) Upload(ctx context.Context, r io.Reader) (*Result, error) {
	raw, err := io.ReadAll(io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("storage: read upload: %w", err)
	}
	if int64(len(raw)) > u.maxBytes {
		return nil, ErrTooLarge
	}

	body, size, err := ToWebP(bytes.NewReader(raw), u.maxWidth)
	if err != nil {
		return nil, err
	}

	key := u.key()
	url, err := u.store.Put(ctx, key, "image/webp", body)
	if err != nil {
		return nil, err
	}

	return &Result{URL: url, Key: key, Width: size.X, Height: size.Y}, nil
}

func (u *Uploader) key() string {
	now := u.now().UTC()
	return fmt.Sprintf("uploads/%04d/%02d/%s.webp", now.Year(), int(now.Month()), uuid.NewString())
}
