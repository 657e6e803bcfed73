package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meekukin/casekit/profile"
	"github.com/meekukin/casekit/registry"
)

// TestParse_Valid verifies a full profile decodes with every field.
func TestParse_Valid(t *testing.T) {
	p, err := profile.Parse([]byte(`
prefix: data_
glob: "*_success"
tags: [io, fast]
tag_mode: all
`))
	require.NoError(t, err)
	require.Equal(t, "data_", p.Prefix)
	require.Equal(t, "*_success", p.Glob)
	require.Equal(t, []string{"io", "fast"}, p.Tags)
	require.Equal(t, "all", p.TagMode)
	require.Len(t, p.Options(), 3)
}

// TestParse_PartialProfile verifies omitted fields contribute nothing.
func TestParse_PartialProfile(t *testing.T) {
	p, err := profile.Parse([]byte(`glob: "read_*"`))
	require.NoError(t, err)
	require.Empty(t, p.Prefix)
	require.Len(t, p.Options(), 1)
}

// TestParse_SchemaViolations verifies shape errors are rejected with
// ErrInvalidProfile.
func TestParse_SchemaViolations(t *testing.T) {
	bad := [][]byte{
		[]byte(`prefix: 5`),              // wrong type
		[]byte(`tag_mode: sometimes`),    // not in enum
		[]byte(`unknown_key: true`),      // additionalProperties
		[]byte(`tags: ["ok", 3]`),        // non-string tag
		[]byte("prefix: [unclosed\n  -"), // YAML syntax
	}
	for _, data := range bad {
		_, err := profile.Parse(data)
		require.ErrorIs(t, err, profile.ErrInvalidProfile, "input: %s", data)
	}
}

// TestLoad_File verifies the file path entry point.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tags: [smoke]\n"), 0o644))

	p, err := profile.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"smoke"}, p.Tags)

	_, err = profile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestOptions_FilterEquivalence verifies profile options drive a real
// collection the same way hand-built options do.
func TestOptions_FilterEquivalence(t *testing.T) {
	m := registry.NewModuleSet("app.profile_cases")
	m.Add(1, registry.Case{Name: "case_read_success", Tags: []string{"io"},
		Producer: func(args ...any) any { return nil }})
	m.Add(2, registry.Case{Name: "case_read_failure", Tags: []string{"io"},
		Producer: func(args ...any) any { return nil }})

	p, err := profile.Parse([]byte("glob: \"*_success\"\ntags: [io]\n"))
	require.NoError(t, err)

	descs, err := registry.Collect("app.test_p",
		[]registry.Provider{registry.ModuleOf(m)}, p.Options()...)
	require.NoError(t, err)
	require.Len(t, descs, 1)
	require.Equal(t, "read_success", descs[0].ID)
}
