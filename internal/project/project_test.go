package project_test

import (
	"bountycatch/internal/project"
	"bountycatch/pkg/domain"
	"bountycatch/pkg/logger"
	"bountycatch/pkg/storage/redisstore"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup("error", logger.ConsoleFormat)
	m.Run()
}

func setupTestStore(t *testing.T, poolSize int) *redisstore.Redis {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr:        mr.Addr(),
		PoolSize:    poolSize,
		PoolTimeout: 5 * time.Second,
	})
	strg := redisstore.NewWithClient(client)
	t.Cleanup(func() { _ = strg.Close() })

	return strg
}

func TestProject_AddFromReader(t *testing.T) {
	strg := setupTestStore(t, 10)
	ctx := context.Background()

	t.Run("mixed input file", func(t *testing.T) {
		p := project.New("acme", strg)

		input := strings.Join([]string{
			"Example.com",
			"sub.example.com",
			"*.bad.com",
			"",
			strings.Repeat("a", 70) + ".com",
		}, "\n")

		report, err := p.AddFromReader(ctx, strings.NewReader(input), true)
		require.NoError(t, err)
		require.Equal(t, domain.AddReport{Added: 2, Duplicates: 0, Invalid: 2}, report)

		domains, err := p.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []domain.Domain{"example.com", "sub.example.com"}, domains)
	})

	t.Run("re-adding the same batch reports all duplicates", func(t *testing.T) {
		p := project.New("idem", strg)

		input := "a.example.com\nb.example.com\n"
		first, err := p.AddFromReader(ctx, strings.NewReader(input), true)
		require.NoError(t, err)
		require.Equal(t, domain.AddReport{Added: 2}, first)

		second, err := p.AddFromReader(ctx, strings.NewReader(input), true)
		require.NoError(t, err)
		require.Equal(t, domain.AddReport{Added: 0, Duplicates: 2}, second)

		count, err := p.Count(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, count, "idempotent re-add must not grow the set")
	})

	t.Run("case variants collide as duplicates", func(t *testing.T) {
		p := project.New("case", strg)

		report, err := p.AddFromReader(ctx, strings.NewReader("Example.com\nexample.com\n"), true)
		require.NoError(t, err)
		require.Equal(t, domain.AddReport{Added: 1, Duplicates: 1}, report)

		count, err := p.Count(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
	})

	t.Run("validation bypass stores raw lower-cased input", func(t *testing.T) {
		p := project.New("raw", strg)

		report, err := p.AddFromReader(ctx, strings.NewReader("*.Wild.com\nlocalhost\n"), false)
		require.NoError(t, err)
		require.Equal(t, domain.AddReport{Added: 2}, report)

		domains, err := p.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []domain.Domain{"*.wild.com", "localhost"}, domains)
	})

	t.Run("blank lines are ignored", func(t *testing.T) {
		p := project.New("blank", strg)

		report, err := p.AddFromReader(ctx, strings.NewReader("\n\nexample.com\n\n"), true)
		require.NoError(t, err)
		require.Equal(t, domain.AddReport{Added: 1}, report)
	})
}

func TestProject_Delete(t *testing.T) {
	strg := setupTestStore(t, 10)
	ctx := context.Background()
	p := project.New("acme", strg)

	_, err := p.AddFromReader(ctx, strings.NewReader("example.com\n"), true)
	require.NoError(t, err)

	existed, err := p.Delete(ctx)
	require.NoError(t, err)
	require.True(t, existed)

	count, err := p.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	domains, err := p.List(ctx)
	require.NoError(t, err)
	require.Empty(t, domains)

	existed, err = p.Delete(ctx)
	require.NoError(t, err)
	require.False(t, existed, "deleting a missing project is a no-op")
}

func TestProject_Exists(t *testing.T) {
	strg := setupTestStore(t, 10)
	ctx := context.Background()
	p := project.New("acme", strg)

	exists, err := p.Exists(ctx)
	require.NoError(t, err)
	require.False(t, exists)

	_, err = p.AddFromReader(ctx, strings.NewReader("example.com\n"), true)
	require.NoError(t, err)

	exists, err = p.Exists(ctx)
	require.NoError(t, err)
	require.True(t, exists)
}

// Two concurrent batches on different projects must both complete with a pool
// of one connection: the second add blocks until the first releases its
// leased connection, with no deadlock and no lost insert.
func TestProject_ConcurrentAddsSingleConnection(t *testing.T) {
	strg := setupTestStore(t, 1)
	ctx := context.Background()

	inputs := map[string]string{
		"alpha": "a1.example.com\na2.example.com\n",
		"beta":  "b1.example.com\nb2.example.com\n",
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(inputs))
	for name, input := range inputs {
		wg.Add(1)
		go func(name, input string) {
			defer wg.Done()
			_, err := project.New(name, strg).AddFromReader(ctx, strings.NewReader(input), true)
			errs <- err
		}(name, input)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	for name := range inputs {
		count, err := project.New(name, strg).Count(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, count, "project %s lost an insert", name)
	}
}
