package handlers

import (
	"context"

	"github.com/nfrund/pattivana/internal/domain"
)

// ContentSource is the subset of the CMS client the page handlers need.
type ContentSource interface {
	HomeMedia(ctx context.Context) (domain.MediaDescriptor, error)
	MenuImages(ctx context.Context) (domain.MenuImageSet, error)
}
