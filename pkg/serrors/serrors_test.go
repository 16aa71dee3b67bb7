package serrors_test

import (
	"bountycatch/pkg/serrors"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e *customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrInvalidDomain,
		serrors.ErrStoreUnavailable,
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrInvalidDomain, "domain %q has no TLD", "localhost")
	require.Equal(t, `domain "localhost" has no TLD`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrStoreUnavailable, base, "could not reach redis")
	require.Equal(t, "could not reach redis: connection refused", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrStoreUnavailable)
	require.Equal(t, "STORE_UNAVAILABLE", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrStoreUnavailable, base, "adding domains")

	require.ErrorIs(t, e, serrors.ErrStoreUnavailable)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrInvalidDomain, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrInternal, base, "writing export file")
	require.Equal(t, serrors.ErrInternal, e.Kind())
	require.Equal(t, "writing export file", e.Message())
	require.Equal(t, base, e.Cause())
}
