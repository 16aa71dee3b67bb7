// Package redisstore implements the storage interfaces on top of Redis sets
// using go-redis. Each project key maps to one Redis set; membership,
// cardinality and deletion are delegated to the store's atomic set primitives,
// which is what makes concurrent adds from different processes safe without
// client-side locking.
package redisstore

import (
	"bountycatch/pkg/domain"
	"bountycatch/pkg/serrors"
	"context"
	"net"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options defines the configuration parameters for the Redis connection pool.
type Options struct {
	// Host is the Redis server hostname or IP address
	Host string
	// Port is the Redis server port number
	Port int
	// DB is the logical Redis database to select
	DB int
	// MaxConnections bounds the connection pool size
	MaxConnections int
	// PoolTimeout is the maximum time to wait for a pooled connection when the
	// pool is exhausted
	PoolTimeout time.Duration
	// DialTimeout is the maximum time to wait when establishing a new connection
	DialTimeout time.Duration
	// ReadTimeout is the per-command read deadline
	ReadTimeout time.Duration
	// WriteTimeout is the per-command write deadline
	WriteTimeout time.Duration
}

// Redis implements storage.Storage backed by a go-redis client. The client
// owns a bounded connection pool; broken connections are discarded and
// replaced by the driver rather than handed back to callers.
type Redis struct {
	client *redis.Client
}

// New creates a Redis storage instance and verifies connectivity with a ping.
// The pool is sized from Options and lives until Close.
func New(ctx context.Context, options Options) (*Redis, error) {
	addr := net.JoinHostPort(options.Host, strconv.Itoa(options.Port))
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DB:           options.DB,
		PoolSize:     options.MaxConnections,
		PoolTimeout:  options.PoolTimeout,
		DialTimeout:  options.DialTimeout,
		ReadTimeout:  options.ReadTimeout,
		WriteTimeout: options.WriteTimeout,
	})

	r := &Redis{client: client}
	if err := r.Ping(ctx); err != nil {
		_ = client.Close()

		return nil, err
	}

	return r, nil
}

// NewWithClient wraps an existing go-redis client. The caller keeps ownership
// of the client's lifecycle; Close still closes it.
func NewWithClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Ping verifies the store is reachable with a healthy connection.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return serrors.Wrap(serrors.ErrStoreUnavailable, err, "could not reach redis")
	}

	return nil
}

// Close closes the underlying client and all idle pooled connections.
func (r *Redis) Close() error {
	return r.client.Close()
}

// AddDomains inserts the batch into the project's set using SADD. The whole
// batch runs on a single connection checked out of the pool, leased once and
// released once, so large input files do not thrash the pool. SADD's return
// value is the per-item was-new signal; the sum is the number of genuinely new
// members, which keeps duplicate counts exact even under concurrent writers.
func (r *Redis) AddDomains(ctx context.Context, project string, domains ...domain.Domain) (int64, error) {
	if len(domains) == 0 {
		return 0, nil
	}

	conn := r.client.Conn()
	defer func() { _ = conn.Close() }()

	var added int64
	for _, d := range domains {
		n, err := conn.SAdd(ctx, project, string(d)).Result()
		if err != nil {
			return added, serrors.Wrap(serrors.ErrStoreUnavailable, err,
				"could not add domain to project %q", project)
		}
		added += n
	}

	return added, nil
}

// CountDomains returns the cardinality of the project's set via SCARD. Redis
// reports 0 for a missing key, which matches the missing-project contract.
func (r *Redis) CountDomains(ctx context.Context, project string) (int64, error) {
	n, err := r.client.SCard(ctx, project).Result()
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrStoreUnavailable, err,
			"could not count domains of project %q", project)
	}

	return n, nil
}

// Domains returns the project's full membership via SMEMBERS, sorted
// lexicographically. The sort happens here because the backing set is
// unordered.
func (r *Redis) Domains(ctx context.Context, project string) ([]domain.Domain, error) {
	members, err := r.client.SMembers(ctx, project).Result()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrStoreUnavailable, err,
			"could not list domains of project %q", project)
	}

	sort.Strings(members)
	domains := make([]domain.Domain, 0, len(members))
	for _, m := range members {
		domains = append(domains, domain.Domain(m))
	}

	return domains, nil
}

// DeleteProject removes the project's set via DEL and reports whether the key
// existed. Deleting a missing project is a no-op, not an error.
func (r *Redis) DeleteProject(ctx context.Context, project string) (bool, error) {
	n, err := r.client.Del(ctx, project).Result()
	if err != nil {
		return false, serrors.Wrap(serrors.ErrStoreUnavailable, err,
			"could not delete project %q", project)
	}

	return n > 0, nil
}

// ProjectExists reports whether the project key is present via EXISTS.
func (r *Redis) ProjectExists(ctx context.Context, project string) (bool, error) {
	n, err := r.client.Exists(ctx, project).Result()
	if err != nil {
		return false, serrors.Wrap(serrors.ErrStoreUnavailable, err,
			"could not check project %q", project)
	}

	return n > 0, nil
}
