// internal/legacy/store.go
package legacy

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsdesk/taskboard/internal/domain"
)

// Identity is the projection of a legacy user reached through a live
// session row.
type Identity struct {
	ExternalID int64
	Username   string
	FirstName  string
	MiddleName string
	LastName   string
	Position   string
}

// SessionStore reads the legacy HR schema. It never writes; the legacy
// system owns its own data.
type SessionStore struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, connString string) (*SessionStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connecting to legacy database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging legacy database: %w", err)
	}

	return &SessionStore{pool: pool}, nil
}

// Lookup resolves an externally issued session id to the legacy user it
// belongs to. A session with no match yields domain.ErrSessionNotFound so
// callers can fall through to anonymous.
func (s *SessionStore) Lookup(ctx context.Context, sessionID string) (*Identity, error) {
	const q = `
		SELECT u.id,
		       u.username,
		       COALESCE(u.firstname, ''),
		       COALESCE(u.middlename, ''),
		       COALESCE(u.lastname, ''),
		       COALESCE(u.position, '')
		FROM sessions s
		JOIN users u ON s.userid = u.id
		WHERE s.id = $1`

	var ident Identity
	err := s.pool.QueryRow(ctx, q, sessionID).Scan(
		&ident.ExternalID,
		&ident.Username,
		&ident.FirstName,
		&ident.MiddleName,
		&ident.LastName,
		&ident.Position,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("looking up legacy session: %w", err)
	}

	return &ident, nil
}

func (s *SessionStore) Close() {
	s.pool.Close()
}
