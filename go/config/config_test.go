package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string   `json:"name"`
	Timeout Duration `json:"timeout"`
}

func TestDecode_JSON5WithDuration(t *testing.T) {
	var c testConfig
	require.NoError(t, Decode(strings.NewReader(`{
		// Comments and trailing commas are allowed.
		name: "smoke",
		timeout: "1m30s",
	}`), &c))
	assert.Equal(t, "smoke", c.Name)
	assert.Equal(t, 90*time.Second, c.Timeout.Duration)
}

func TestDecode_BadDuration(t *testing.T) {
	var c testConfig
	assert.Error(t, Decode(strings.NewReader(`{timeout: "soon"}`), &c))
	assert.Error(t, Decode(strings.NewReader(`{timeout: 5}`), &c))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, `"5s"`, string(b))
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{name: "x", timeout: "2s"}`), 0644))
	var c testConfig
	require.NoError(t, ParseConfigFile(path, &c))
	assert.Equal(t, 2*time.Second, c.Timeout.Duration)

	err := ParseConfigFile(filepath.Join(t.TempDir(), "missing.json5"), &c)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type required struct {
	Name    string   `json:"name"`
	Tags    []string `json:"tags" optional:"true"`
	Enabled bool     `json:"enabled"`
	Timeout Duration `json:"timeout" optional:"true"`
}

func TestCheckRequired(t *testing.T) {
	assert.NoError(t, CheckRequired(&required{Name: "x"}))
	assert.ErrorContains(t, CheckRequired(&required{}), "required name to be set")
	assert.Error(t, CheckRequired("not a struct"))
}
