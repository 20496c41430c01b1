package schedsim_test

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/schedsim"
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/service/event"
	"github.com/viant/schedsim/service/meta"
	"github.com/viant/schedsim/service/registry"
)

//go:embed testdata/*
var embedFS embed.FS

func TestLoadConfig(t *testing.T) {
	metaService := meta.New(afs.New(), "embed:///testdata", &embedFS)
	ctx := context.Background()

	config, err := schedsim.LoadConfig(ctx, metaService, "config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 3, config.Generator.MinCycles)
	assert.Equal(t, 3, config.Generator.MaxCycles)
	assert.Equal(t, 10, config.Generator.MinMemory, "unset fields keep defaults")
	assert.EqualValues(t, 42, config.Generator.Seed)
	assert.Equal(t, 3, config.Scheduler.Quantum)
	assert.Equal(t, "debug", config.Log.Level)

	_, err = schedsim.LoadConfig(ctx, metaService, "invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		mutate      func(c *schedsim.Config)
		expectErr   bool
	}{
		{description: "defaults", mutate: func(c *schedsim.Config) {}},
		{description: "zero quantum", mutate: func(c *schedsim.Config) { c.Scheduler.Quantum = 0 }, expectErr: true},
		{description: "empty cycles range", mutate: func(c *schedsim.Config) { c.Generator.MinCycles = 0 }, expectErr: true},
		{description: "unknown level", mutate: func(c *schedsim.Config) { c.Log.Level = "trace" }, expectErr: true},
		{description: "upper case level", mutate: func(c *schedsim.Config) { c.Log.Level = "INFO" }},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			config := schedsim.DefaultConfig()
			testCase.mutate(config)
			err := config.Validate()
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService(t *testing.T) {
	ctx := context.Background()
	recorder := &event.Recorder{}
	config := schedsim.DefaultConfig()
	config.Scheduler.Quantum = 3
	srv, err := schedsim.New(
		schedsim.WithConfig(config),
		schedsim.WithGenerator(registry.Fixed(process.Attributes{Cycles: 4, Memory: 64, Priority: 1})),
		schedsim.WithListeners(recorder.Listen),
	)
	require.NoError(t, err)

	for _, name := range []string{"editor", "compiler"} {
		_, err = srv.Registry().Create(ctx, name)
		require.NoError(t, err)
	}
	report, err := srv.Run(ctx, "rr")
	require.NoError(t, err)
	assert.Equal(t, 8, report.Cycles)
	assert.Equal(t, 3, report.Quantum)

	var pids []int
	for _, e := range recorder.Of(event.KindStep) {
		pids = append(pids, e.PID)
	}
	assert.Equal(t, []int{1, 1, 1, 2, 2, 2, 1, 2}, pids)
}

func TestService_SeededGenerator(t *testing.T) {
	ctx := context.Background()
	config := schedsim.DefaultConfig()
	config.Generator.Seed = 7

	var created [][]int
	for i := 0; i < 2; i++ {
		srv, err := schedsim.New(schedsim.WithConfig(config))
		require.NoError(t, err)
		var attrs []int
		for j := 0; j < 5; j++ {
			p, err := srv.Registry().Create(ctx, "p")
			require.NoError(t, err)
			attrs = append(attrs, p.Remaining, p.Memory, p.Priority)
		}
		created = append(created, attrs)
	}
	assert.Equal(t, created[0], created[1])
}

func TestNew_InvalidConfig(t *testing.T) {
	config := schedsim.DefaultConfig()
	config.Scheduler.Quantum = -1
	_, err := schedsim.New(schedsim.WithConfig(config))
	assert.Error(t, err)
}
