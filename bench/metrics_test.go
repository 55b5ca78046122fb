package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(testResults)
	require.NoError(t, err)

	want := `
# HELP syncbench_wall_time_milliseconds Wall time of one benchmark run.
# TYPE syncbench_wall_time_milliseconds gauge
syncbench_wall_time_milliseconds{strategy="ATOMIC",threads="8"} 0.25
syncbench_wall_time_milliseconds{strategy="SERIAL",threads="1"} 12.5
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "syncbench_wall_time_milliseconds"))
	count, err := testutil.GatherAndCount(reg, "syncbench_iterations")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWriteMetrics(t *testing.T) {
	file := filepath.Join(t.TempDir(), "syncbench.prom")
	require.NoError(t, WriteMetrics(file, testResults))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `syncbench_iterations{strategy="SERIAL",threads="1"} 1000`)
}
