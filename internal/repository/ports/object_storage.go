package ports

import "context"

type ObjectStorage interface {
	Put(ctx context.Context, bucket, objectName, contentType string, payload []byte) (string, error)
}
