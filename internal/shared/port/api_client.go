package port

import (
	"context"
	"net/url"
)

// APIClient is the transport collaborator shared by the service façades. Implementations
// serialize bodies as JSON, decode responses into out (when non-nil) and return an error for
// transport failures, non-2xx statuses and undecodable payloads.
type APIClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}
