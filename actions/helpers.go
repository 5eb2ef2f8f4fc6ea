package actions

import (
	"context"
	"time"

	"portfolio/logger"
	"portfolio/media"
	"portfolio/models"
)

// maxImageWidth caps uploaded assets; Cloudinary scales wider images down.
const maxImageWidth = 1600

// bestEffort runs a non-fatal side effect: failures are logged, never
// propagated. Used for analytics, cache invalidation and asset cleanup.
func bestEffort(op string, fn func() error) {
	if err := fn(); err != nil {
		logger.L().Warnw("best-effort operation failed", "op", op, "error", err)
	}
}

func uploadImage(ctx context.Context, store media.Store, payload, folder string) (models.Image, error) {
	img, err := store.Upload(ctx, payload, media.UploadOptions{Folder: folder, MaxWidth: maxImageWidth})
	if err != nil {
		return models.Image{}, &UploadError{Err: err}
	}
	return img, nil
}

// destroyImage removes an asset from the media store, tolerating failure so
// a stuck asset can never block a document mutation.
func destroyImage(ctx context.Context, store media.Store, img models.Image) {
	if img.PublicID == "" {
		return
	}
	bestEffort("destroy media asset "+img.PublicID, func() error {
		return store.Destroy(ctx, img.PublicID)
	})
}

// replaceImage swaps an entity's asset: the old one is destroyed first
// (best-effort, cleanup must not block the new upload), then the new payload
// is uploaded. The returned image reflects only the new upload.
func replaceImage(ctx context.Context, store media.Store, old models.Image, payload, folder string) (models.Image, error) {
	destroyImage(ctx, store, old)
	return uploadImage(ctx, store, payload, folder)
}

func nowUnix() int64 {
	return time.Now().Unix()
}
