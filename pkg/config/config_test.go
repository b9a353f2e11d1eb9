package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const yamlConfig = `
targets:
  - path: app/routes/app.bulk-edit.jsx
    changesets:
      - bulk-edit-pagination
    changes:
      - id: add-variant-title
        description: Add Variant Title to FILTER_FIELDS
        anchor: '{ value: "sku" },'
        replacement: '{ value: "sku" },{ value: "variantTitle" },'
        guard_marker: '"variantTitle"'
async: true
`

const hclConfig = `
target "app/routes/app.bulk-edit.jsx" {
  changesets = ["bulk-edit-pagination"]

  change "add-variant-title" {
    description  = "Add Variant Title to FILTER_FIELDS"
    anchor       = "{ value: \"sku\" },"
    replacement  = "{ value: \"sku\" },{ value: \"variantTitle\" },"
    guard_marker = "\"variantTitle\""
  }
}

async = true
`

const jsonConfig = `{
  "targets": [
    {
      "path": "app/routes/app.bulk-edit.jsx",
      "changesets": ["bulk-edit-pagination"],
      "changes": [
        {
          "id": "add-variant-title",
          "description": "Add Variant Title to FILTER_FIELDS",
          "anchor": "{ value: \"sku\" },",
          "replacement": "{ value: \"sku\" },{ value: \"variantTitle\" },",
          "guard_marker": "\"variantTitle\""
        }
      ]
    }
  ],
  "async": true
}`

func TestLoadConfig_Formats(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{"yaml", "patchrc.yaml", yamlConfig},
		{"yml", "patchrc.yml", yamlConfig},
		{"hcl", "patchrc.hcl", hclConfig},
		{"json", "patchrc.json", jsonConfig},
		{"dot_patchrc_yaml", ".patchrc", yamlConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.filename, tt.content)
			cfg, err := LoadConfig(context.Background(), path)
			require.NoError(t, err)

			assert.True(t, cfg.Async)
			assert.Equal(t, path, cfg.Location())
			require.Len(t, cfg.Targets, 1)

			target := cfg.Targets[0]
			assert.Equal(t, "app/routes/app.bulk-edit.jsx", target.Path)
			assert.Equal(t, "local", target.SourceName())
			assert.Equal(t, []string{"bulk-edit-pagination"}, target.Changesets)
			require.Len(t, target.Changes, 1)
			assert.Equal(t, "add-variant-title", target.Changes[0].ID)
			assert.Equal(t, `"variantTitle"`, target.Changes[0].GuardMarker)
		})
	}
}

func TestLoadConfig_DotPatchrcHCL(t *testing.T) {
	path := writeConfig(t, ".patchrc", hclConfig)
	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, "app/routes/app.bulk-edit.jsx", cfg.Targets[0].Path)
}

func TestLoadConfig_UnknownExtension(t *testing.T) {
	path := writeConfig(t, "patchrc.toml", "whatever")
	_, err := LoadConfig(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found for file")
}

func TestGetParser(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{"patchrc.yaml", &YAMLParser{}},
		{"patchrc.yml", &YAMLParser{}},
		{"patchrc.hcl", &HCLParser{}},
		{"patchrc.json", &JSONParser{}},
		{"patchrc.toml", nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, GetParser(tt.filename))
		})
	}
}

func TestParser_CanParse(t *testing.T) {
	assert.True(t, (&YAMLParser{}).CanParse("a.yaml"))
	assert.True(t, (&YAMLParser{}).CanParse("a.yml"))
	assert.False(t, (&YAMLParser{}).CanParse("a.hcl"))
	assert.True(t, (&HCLParser{}).CanParse("a.hcl"))
	assert.True(t, (&JSONParser{}).CanParse("a.json"))
	assert.False(t, (&JSONParser{}).CanParse("a.yaml"))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadConfig_StrictYAML(t *testing.T) {
	path := writeConfig(t, "patchrc.yaml", "targets: []\nbogus_key: true\n")
	_, err := LoadConfig(context.Background(), path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	change := ChangeDefinition{ID: "c", Anchor: "a", Replacement: "b", GuardMarker: "g"}

	tests := []struct {
		name    string
		cfg     PatchrcConfig
		wantErr string
	}{
		{
			name: "valid",
			cfg:  PatchrcConfig{Targets: []Target{{Path: "f.txt", Changes: []ChangeDefinition{change}}}},
		},
		{
			name:    "no_targets",
			cfg:     PatchrcConfig{},
			wantErr: "at least one target is required",
		},
		{
			name:    "missing_path",
			cfg:     PatchrcConfig{Targets: []Target{{Changes: []ChangeDefinition{change}}}},
			wantErr: "path is required",
		},
		{
			name:    "github_needs_repo",
			cfg:     PatchrcConfig{Targets: []Target{{Path: "f.txt", Source: "github", Changes: []ChangeDefinition{change}}}},
			wantErr: "repo is required",
		},
		{
			name:    "no_changes",
			cfg:     PatchrcConfig{Targets: []Target{{Path: "f.txt"}}},
			wantErr: "at least one changeset or inline change",
		},
		{
			name: "change_missing_guard",
			cfg: PatchrcConfig{Targets: []Target{{Path: "f.txt", Changes: []ChangeDefinition{
				{ID: "c", Anchor: "a", Replacement: "b"},
			}}}},
			wantErr: "guard_marker is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(ctx, &tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
