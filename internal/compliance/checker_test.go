package compliance

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/errors"
)

func setupFS(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/ssh/sshd_config", []byte(sampleConfig), 0644))
	require.NoError(t, afero.WriteFile(fs, "/defaults.json",
		[]byte(`{"PermitRootLogin": "no", "Port": "22"}`), 0644))
	return fs
}

func TestChecker_Run(t *testing.T) {
	fs := setupFS(t)
	c := NewChecker(fs, Options{OutputDir: "/reports"})

	result, err := c.Run("/etc/ssh/sshd_config", "/defaults.json")
	require.NoError(t, err)
	assert.Equal(t, StatusNonCompliant, result.Status)

	data, err := afero.ReadFile(fs, "/reports/json_log.json")
	require.NoError(t, err, "report should be written")

	want := `{
    "message": {
        "status": "non-compliant",
        "PermitRootLogin": "yes",
        "Port": "22"
    }
}`
	assert.Equal(t, want, string(data))
}

func TestChecker_RunLegacy(t *testing.T) {
	fs := setupFS(t)
	c := NewChecker(fs, Options{Legacy: true, OutputDir: "/reports"})

	result, err := c.Run("/etc/ssh/sshd_config", "/defaults.json")
	require.NoError(t, err)
	assert.Equal(t, StatusCompliant, result.Status)

	data, err := afero.ReadFile(fs, "/reports/json_log.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status": "compliant"`)
	assert.Contains(t, string(data), `"PermitRootLogin": "yes"`)
}

func TestChecker_MissingInputs(t *testing.T) {
	fs := setupFS(t)
	c := NewChecker(fs, Options{OutputDir: "/reports"})

	_, err := c.Run("/missing", "/defaults.json")
	assert.Equal(t, errors.ExitReportError, errors.GetExitCode(err))

	_, err = c.Run("/etc/ssh/sshd_config", "/missing.json")
	assert.Equal(t, errors.ExitReportError, errors.GetExitCode(err))

	exists, _ := afero.Exists(fs, "/reports/json_log.json")
	assert.False(t, exists, "no report is written when inputs are unreadable")
}

func TestChecker_WriteFailure(t *testing.T) {
	fs := setupFS(t)
	c := NewChecker(afero.NewReadOnlyFs(fs), Options{OutputDir: "/reports"})

	_, err := c.Run("/etc/ssh/sshd_config", "/defaults.json")
	assert.Equal(t, errors.ExitReportError, errors.GetExitCode(err))
}

func TestChecker_ReportPath(t *testing.T) {
	c := NewChecker(afero.NewMemMapFs(), Options{})
	path, err := c.ReportPath()
	require.NoError(t, err)
	assert.Equal(t, "json_log.json", path)

	c = NewChecker(afero.NewMemMapFs(), Options{OutputDir: "/var/log/edawatch"})
	path, err = c.ReportPath()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/edawatch/json_log.json", path)
}
