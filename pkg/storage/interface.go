// Package storage defines the core storage interfaces that the application
// relies on. It abstracts the external key-value set store so that different
// backends (e.g. Redis) can provide concrete implementations.
package storage

import (
	"bountycatch/pkg/domain"
	"context"
)

// DomainStorage defines the set operations the application performs against a
// project's domain set. Implementations must wrap connectivity failures as
// serrors.ErrStoreUnavailable and never block indefinitely: connection
// acquisition and every store call carry bounded timeouts.
type DomainStorage interface {
	// AddDomains inserts the given domains into the project's set and returns
	// the number of members that were actually new. Insertion is idempotent at
	// the store level; re-adding an existing member is a no-op, not an error.
	// The whole batch is issued on a single pooled connection.
	AddDomains(ctx context.Context, project string, domains ...domain.Domain) (int64, error)
	// CountDomains returns the cardinality of the project's domain set. A
	// missing project yields 0, not an error.
	CountDomains(ctx context.Context, project string) (int64, error)
	// Domains returns the full membership of the project's set in lexicographic
	// order. Ordering is a presentation contract applied in this layer; the
	// backing set is unordered.
	Domains(ctx context.Context, project string) ([]domain.Domain, error)
	// DeleteProject removes the project's entire domain set and reports whether
	// the project existed.
	DeleteProject(ctx context.Context, project string) (bool, error)
	// ProjectExists reports whether the project has a domain set in the store.
	ProjectExists(ctx context.Context, project string) (bool, error)
}

// Storage describes a full storage handle with lifecycle management in
// addition to the domain set operations.
type Storage interface {
	DomainStorage

	// Ping verifies the store is reachable with a healthy connection.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error
}
