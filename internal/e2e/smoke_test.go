package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runZB(t, binaryPath, home,
		"zone", "add", "--name", "Zone A", "--load", "120",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runZB(t, binaryPath, home,
		"zone", "add", "--name", "Zone B", "--load", "80",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runZB(t, binaryPath, home, "report")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "----- Load Balancing Analysis Report -----")
	assert.Contains(t, stdout, "Total Load: 200.0 kW")
	assert.Contains(t, stdout, "Zone A (120.0 kW)")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "zb-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/zb")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build zb binary: %s", string(output))
	return binaryPath
}

func runZB(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
