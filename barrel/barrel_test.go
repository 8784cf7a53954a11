package barrel

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/cozy/internal/diag"
)

func TestExportNames_CollisionSuffixes(t *testing.T) {
	entries := ExportNames([]string{"Card.svg", "card.png", "card.tsx", "icon-one.svg"})

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Card", "Card2", "Card3", "IconOne"}, names)
}

func TestExportNames_NSharedBases(t *testing.T) {
	const n = 12
	files := make([]string, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, fmt.Sprintf("base.%d.svg", i))
	}

	entries := ExportNames(files)

	seen := make(map[string]bool, n)
	for i, e := range entries {
		want := "Base"
		if i > 0 {
			want = fmt.Sprintf("Base%d", i+1)
		}
		assert.Equal(t, want, e.Name)
		assert.False(t, seen[e.Name], "duplicate %s", e.Name)
		seen[e.Name] = true
	}
}

func TestExportNames_RepeatedCallsDoNotShareCounts(t *testing.T) {
	first := ExportNames([]string{"a.svg", "a.png"})
	second := ExportNames([]string{"a.svg"})

	assert.Equal(t, "A2", first[1].Name)
	assert.Equal(t, "A", second[0].Name)
}

func TestRender(t *testing.T) {
	got := Render([]string{"IconOne.tsx", "IconTwo.tsx"})

	want := "export { default as IconOne } from \"./IconOne.tsx\";\n" +
		"export { default as IconTwo } from \"./IconTwo.tsx\";\n"
	assert.Equal(t, want, got)
}

func TestGenerate_WritesBarrel(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/assets/logo.png", []byte("png"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/assets/arrow-left.svg", []byte("<svg/>"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/assets/notes.txt", []byte("skip"), 0o644))
	var out bytes.Buffer

	path, err := Generate(fs, Options{Dir: "/assets", Output: "index.ts", Logger: diag.New(&out, false)})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/assets", "index.ts"), path)
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "export { default as ArrowLeft } from \"./arrow-left.svg\";\n"+
		"export { default as Logo } from \"./logo.png\";\n", string(content))
	assert.Contains(t, out.String(), "Done! Wrote")
}

func TestGenerate_OverwritesExistingBarrel(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/assets/a.svg", []byte("<svg/>"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/assets/index.ts", []byte("stale\nstale\n"), 0o644))

	_, err := Generate(fs, Options{Dir: "/assets", Output: "index.ts", Extensions: []string{"svg"}})

	require.NoError(t, err)
	content, err := afero.ReadFile(fs, "/assets/index.ts")
	require.NoError(t, err)
	assert.Equal(t, "export { default as A } from \"./a.svg\";\n", string(content))
}

func TestGenerate_DryRunWritesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/assets/a.svg", []byte("<svg/>"), 0o644))
	var out bytes.Buffer

	path, err := Generate(fs, Options{Dir: "/assets", Output: "index.ts", DryRun: true, Logger: diag.New(&out, false)})

	require.NoError(t, err)
	assert.Empty(t, path)
	exists, err := afero.Exists(fs, "/assets/index.ts")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Contains(t, out.String(), "Dry run. Would write")
}

func TestGenerate_NoMatchesWritesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/assets/readme.md", []byte("# hi"), 0o644))
	var out bytes.Buffer

	path, err := Generate(fs, Options{Dir: "/assets", Output: "index.ts", Logger: diag.New(&out, false)})

	require.NoError(t, err)
	assert.Empty(t, path)
	exists, err := afero.Exists(fs, "/assets/index.ts")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Contains(t, out.String(), "No matching files found in /assets")
}

func TestGenerate_WriteFailureIsReturned(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/assets/a.svg", []byte("<svg/>"), 0o644))
	fs := afero.NewReadOnlyFs(base)

	_, err := Generate(fs, Options{Dir: "/assets", Output: "index.ts"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
}
