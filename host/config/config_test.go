package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "noisestat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, `
link:
  device: /dev/ttyACM0
`))
	require.NoError(t, err)
	assert.Equal(t, 115200, c.Link.Baud)
	assert.Equal(t, 5000, c.Link.TimeoutMs)
	assert.Equal(t, 256, c.Batch.Size)
	assert.Equal(t, 3300, c.Batch.ReferenceMv)
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	c, err := Load(writeConfig(t, `
link:
  device: /dev/ttyUSB1
  baud: 921600
  timeout_ms: 250
batch:
  size: 512
  reference_mv: 5000
`))
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB1", c.Link.Device)
	assert.Equal(t, 921600, c.Link.Baud)
	assert.Equal(t, 250, c.Link.TimeoutMs)
	assert.Equal(t, 512, c.Batch.Size)
	assert.Equal(t, 5000, c.Batch.ReferenceMv)
}

func TestLoadRejectsMissingDevice(t *testing.T) {
	_, err := Load(writeConfig(t, `
batch:
  size: 256
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link.device")
}

func TestLoadRejectsTinyBatch(t *testing.T) {
	_, err := Load(writeConfig(t, `
link:
  device: /dev/ttyACM0
batch:
  size: 4
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch.size")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "link: [broken"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
