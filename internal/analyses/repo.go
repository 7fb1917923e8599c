package analyses

import "context"

// Repo defines persistence operations for analysis sessions.
type Repo interface {
	Create(ctx context.Context, session Session) error
	GetByID(ctx context.Context, sessionID string) (Session, error)
}
