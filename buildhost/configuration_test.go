package buildhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationContainer(t *testing.T) {
	c := NewConfigurationContainer()

	_, err := c.GetAt("errorprone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"errorprone"`)

	cfg, err := c.Create("errorprone")
	require.NoError(t, err)

	_, err = c.Create("errorprone")
	require.Error(t, err)

	got, err := c.GetAt("errorprone")
	require.NoError(t, err)
	assert.Same(t, cfg, got)
	assert.Same(t, cfg, c.Maybe("errorprone"))

	c.Maybe("compileOnly")
	assert.Equal(t, []string{"compileOnly", "errorprone"}, c.Names())
}

func TestConfigurationAdd(t *testing.T) {
	cfg := &Configuration{Name: "errorprone"}
	cfg.Add(Dependency{Group: "g", Name: "a", Version: "1"})
	cfg.Add(Dependency{Group: "g", Name: "b", Version: "2"})

	assert.Equal(t, []Dependency{
		{Group: "g", Name: "a", Version: "1"},
		{Group: "g", Name: "b", Version: "2"},
	}, cfg.Dependencies())
}

func TestParseDependency(t *testing.T) {
	tests := []struct {
		notation string
		want     Dependency
		wantErr  bool
	}{
		{
			notation: "com.google.errorprone:error_prone_core:2.3.1",
			want:     Dependency{Group: "com.google.errorprone", Name: "error_prone_core", Version: "2.3.1"},
		},
		{notation: "com.google.errorprone:error_prone_core", wantErr: true},
		{notation: "a::1", wantErr: true},
		{notation: "a:b:c:d", wantErr: true},
		{notation: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := ParseDependency(tt.notation)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.notation, got.String())
		})
	}
}
