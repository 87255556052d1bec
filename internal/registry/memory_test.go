package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryRegistryRegisterAndVerify(t *testing.T) {
	reg := NewMemoryRegistry(30 * 24 * time.Hour)
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, "user-1"))

	live, err := reg.Verify(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, live)
}

func TestMemoryRegistryUnknownSubject(t *testing.T) {
	reg := NewMemoryRegistry(30 * 24 * time.Hour)

	live, err := reg.Verify(context.Background(), "nobody")
	require.NoError(t, err)
	require.False(t, live)
}

func TestMemoryRegistryRemove(t *testing.T) {
	reg := NewMemoryRegistry(30 * 24 * time.Hour)
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, "user-1"))
	require.NoError(t, reg.Remove(ctx, "user-1"))

	live, err := reg.Verify(ctx, "user-1")
	require.NoError(t, err)
	require.False(t, live)

	// Removing an absent entry is a no-op.
	require.NoError(t, reg.Remove(ctx, "user-1"))
}

func TestMemoryRegistryEntryExpires(t *testing.T) {
	reg := NewMemoryRegistry(30 * 24 * time.Hour)
	ctx := context.Background()

	now := time.Now()
	reg.SetClock(func() time.Time { return now })
	require.NoError(t, reg.Register(ctx, "user-1"))

	reg.SetClock(func() time.Time { return now.Add(30*24*time.Hour - time.Second) })
	live, err := reg.Verify(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, live)

	reg.SetClock(func() time.Time { return now.Add(30*24*time.Hour + time.Second) })
	live, err = reg.Verify(ctx, "user-1")
	require.NoError(t, err)
	require.False(t, live)
}

func TestMemoryRegistryReRegisterResetsWindow(t *testing.T) {
	reg := NewMemoryRegistry(30 * 24 * time.Hour)
	ctx := context.Background()

	now := time.Now()
	reg.SetClock(func() time.Time { return now })
	require.NoError(t, reg.Register(ctx, "user-1"))

	// A later login overwrites the entry; the window restarts from then.
	later := now.Add(20 * 24 * time.Hour)
	reg.SetClock(func() time.Time { return later })
	require.NoError(t, reg.Register(ctx, "user-1"))

	reg.SetClock(func() time.Time { return now.Add(35 * 24 * time.Hour) })
	live, err := reg.Verify(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, live)
}

func TestMemoryRegistrySubjectsAreIndependent(t *testing.T) {
	reg := NewMemoryRegistry(30 * 24 * time.Hour)
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, "user-1"))
	require.NoError(t, reg.Register(ctx, "user-2"))
	require.NoError(t, reg.Remove(ctx, "user-1"))

	live, err := reg.Verify(ctx, "user-2")
	require.NoError(t, err)
	require.True(t, live)
}
