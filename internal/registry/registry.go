// Package registry tracks which subjects currently hold a usable refresh
// token. A refresh token is only honored while a live entry exists for its
// subject, so removing the entry revokes the token without touching the
// token itself.
package registry

import "context"

// Registry keeps one entry per subject id with a fixed time-to-live.
// Register overwrites any prior entry, restarting the TTL window. Verify on an
// unknown subject reports false and never errors for that reason alone.
type Registry interface {
	Register(ctx context.Context, subjectID string) error
	Verify(ctx context.Context, subjectID string) (bool, error)
	Remove(ctx context.Context, subjectID string) error
}
