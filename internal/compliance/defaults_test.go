package compliance

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults_JSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/defaults.json", []byte(`{
		"PermitRootLogin": "no",
		"MaxAuthTries": 6,
		"UsePAM": true,
		"Banner": null,
		"AllowTcpForwarding": "no"
	}`), 0644))

	defaults, err := LoadDefaults(fs, "/defaults.json")
	require.NoError(t, err)

	assert.Equal(t, Defaults{
		{Directive: "PermitRootLogin", Value: "no", IsString: true},
		{Directive: "MaxAuthTries", Value: "6"},
		{Directive: "UsePAM", Value: "true"},
		{Directive: "Banner", Value: ""},
		{Directive: "AllowTcpForwarding", Value: "no", IsString: true},
	}, defaults)
}

func TestLoadDefaults_JSONDuplicateKeepsFirstPosition(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/d.json", []byte(`{"A":"1","B":"2","A":"3"}`), 0644))

	defaults, err := LoadDefaults(fs, "/d.json")
	require.NoError(t, err)
	assert.Equal(t, Defaults{
		{Directive: "A", Value: "3", IsString: true},
		{Directive: "B", Value: "2", IsString: true},
	}, defaults)
}

func TestLoadDefaults_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/defaults.yml", []byte(`PermitRootLogin: "no"
X11Forwarding: no
MaxAuthTries: 6
`), 0644))

	defaults, err := LoadDefaults(fs, "/defaults.yml")
	require.NoError(t, err)

	assert.Equal(t, Defaults{
		{Directive: "PermitRootLogin", Value: "no", IsString: true},
		{Directive: "X11Forwarding", Value: "no", IsString: true},
		{Directive: "MaxAuthTries", Value: "6"},
	}, defaults)
}

func TestLoadDefaults_TOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/defaults.toml", []byte(`PermitRootLogin = "no"
MaxAuthTries = 6
PubkeyAuthentication = "yes"
`), 0644))

	defaults, err := LoadDefaults(fs, "/defaults.toml")
	require.NoError(t, err)

	assert.Equal(t, Defaults{
		{Directive: "PermitRootLogin", Value: "no", IsString: true},
		{Directive: "MaxAuthTries", Value: "6"},
		{Directive: "PubkeyAuthentication", Value: "yes", IsString: true},
	}, defaults)
}

func TestLoadDefaults_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"json array", "/d.json", `["PermitRootLogin"]`},
		{"json nested", "/d.json", `{"Match": {"User": "git"}}`},
		{"json malformed", "/d.json", `{"Port": `},
		{"yaml list", "/d.yaml", "- Port\n"},
		{"yaml nested", "/d.yaml", "Match:\n  User: git\n"},
		{"toml table", "/d.toml", "[Match]\nUser = \"git\"\n"},
		{"toml array", "/d.toml", "Ports = [22, 2222]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.path, []byte(tt.content), 0644))

			_, err := LoadDefaults(fs, tt.path)
			assert.Error(t, err)
		})
	}
}

func TestLoadDefaults_Missing(t *testing.T) {
	_, err := LoadDefaults(afero.NewMemMapFs(), "/nope.json")
	assert.Error(t, err)
}
