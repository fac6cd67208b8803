package data

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "live.csv")
	require.NoError(t, os.WriteFile(name, []byte("x,y\n0,0\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	got := make(chan []Series, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, name, func(s []Series) {
			select {
			case got <- s:
			default:
			}
		})
	}()

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x,z\n5,5\n"), 0o644))

	// The watcher may not be set up yet, so keep writing until a
	// reload arrives.
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	var series []Series
	for i := 0; series == nil; i++ {
		select {
		case series = <-got:
		case <-tick.C:
			content := fmt.Sprintf("x,y\n0,0\n1,%d\n", i)
			require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
		case <-ctx.Done():
			t.Fatal("no reload before timeout")
		}
	}
	require.Len(t, series, 1)
	assert.Equal(t, "y", series[0].Name)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "no", "such.csv"), func([]Series) {})
	assert.Error(t, err)
}
