package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixturesDir returns the absolute path to the fixtures directory.
func fixturesDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}

// LoadResponse loads a recorded Kaiascan response body (the full
// {code, data, msg} envelope) from responses/.
func LoadResponse(t *testing.T, filename string) []byte {
	t.Helper()
	path := filepath.Join(fixturesDir(), "responses", filename)
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to load fixture response: %s", filename)
	require.True(t, json.Valid(data), "fixture is not valid JSON: %s", filename)
	return data
}

// LoadData returns only the data member of a recorded response.
func LoadData(t *testing.T, filename string) json.RawMessage {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(LoadResponse(t, filename), &env))
	return env.Data
}
