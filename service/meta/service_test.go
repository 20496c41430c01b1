package meta

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
)

//go:embed testdata/*
var testFS embed.FS

func TestService_Load(t *testing.T) {
	t.Setenv("SCHEDSIM_MAX_CYCLES", "7")
	srv := New(afs.New(), "embed:///testdata", &testFS)

	var ranges struct {
		MinCycles int `yaml:"minCycles"`
		MaxCycles int `yaml:"maxCycles"`
	}
	err := srv.Load(context.Background(), "ranges.yaml", &ranges)
	require.NoError(t, err)
	assert.Equal(t, 2, ranges.MinCycles)
	assert.Equal(t, 7, ranges.MaxCycles)

	err = srv.Load(context.Background(), "missing.yaml", &ranges)
	assert.Error(t, err)
}

func TestService_Download(t *testing.T) {
	srv := New(nil, "embed:///testdata", &testFS)
	data, err := srv.Download(context.Background(), "script.txt")
	require.NoError(t, err)
	assert.Equal(t, "create editor\nrun fifo\n", string(data))
	assert.Equal(t, "/abs/script.txt", srv.URL("/abs/script.txt"))
}
