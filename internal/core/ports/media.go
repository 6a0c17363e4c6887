package ports

import "context"

// MediaUploader stores a local file on the external media host and returns a
// durable URL. Failures surface as domain.ErrUploadFailed; no retry contract.
type MediaUploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
