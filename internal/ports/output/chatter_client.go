package output

import (
	"context"

	"chatter-notify/internal/domain"
)

// ChatterClient interface - Output port
// Defines what the application needs from the Chatter SOAP API.
// Calls are synchronous; session establishment and the one-shot retry on an
// expired session happen inside the implementation and are invisible to callers.
type ChatterClient interface {
	// PostBuild posts a build status update to a record's feed and returns
	// the id of the created feed post. An empty RecordID targets the
	// authenticated user's own feed.
	PostBuild(ctx context.Context, notification domain.BuildNotification) (string, error)

	// Delete removes a previously created feed post by its id.
	// A result with success=false is returned as a SaveFailedError.
	Delete(ctx context.Context, id string) error

	// EstablishSession returns the session for this client's credentials,
	// performing a login round-trip only on a store miss.
	EstablishSession(ctx context.Context) (domain.Session, error)

	// PerformLogin always performs a fresh login round-trip and stores the
	// resulting session, replacing any cached one.
	PerformLogin(ctx context.Context) (domain.Session, error)
}
