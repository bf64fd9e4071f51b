package worker

import "context"

// Repository looks workers up in the registry sheet.
type Repository interface {
	// FindByIdentity resolves an external identity to its registry entry.
	// Missing identities return ErrWorkerNotFound; other errors mean the
	// lookup itself failed.
	FindByIdentity(ctx context.Context, identity string) (Worker, error)
}
