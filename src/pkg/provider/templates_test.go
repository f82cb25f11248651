package provider_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sample-gallery/urigen/src/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplateFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuiltinTemplates(t *testing.T) {
	templates := provider.BuiltinTemplates()
	assert.Len(t, templates.Portrait, 1)
	assert.Len(t, templates.Landscape, 6)
	require.NoError(t, templates.Validate())
}

func TestLoadTemplates(t *testing.T) {
	path := writeTemplateFile(t, `
portrait:
  - http://example.com/tall_%s.jpg
landscape:
  - http://example.com/wide_a_%s.jpg
  - http://example.com/wide_b_%s.jpg
`)

	templates, err := provider.LoadTemplates(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://example.com/tall_%s.jpg"}, templates.Portrait)
	assert.Len(t, templates.Landscape, 2)
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	_, err := provider.LoadTemplates(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadTemplatesBadYAML(t *testing.T) {
	path := writeTemplateFile(t, "portrait: [unbalanced")
	_, err := provider.LoadTemplates(path)
	assert.Error(t, err)
}

func TestTemplatesValidate(t *testing.T) {
	cases := []struct {
		name      string
		templates provider.Templates
		wantErr   bool
	}{
		{
			name: "valid",
			templates: provider.Templates{
				Landscape: []string{"http://example.com/wide_%s.jpg"},
			},
		},
		{
			name:      "empty set",
			templates: provider.Templates{},
			wantErr:   true,
		},
		{
			name: "missing size slot",
			templates: provider.Templates{
				Landscape: []string{"http://example.com/wide.jpg"},
			},
			wantErr: true,
		},
		{
			name: "two size slots",
			templates: provider.Templates{
				Landscape: []string{"http://example.com/%s/wide_%s.jpg"},
			},
			wantErr: true,
		},
		{
			name: "relative template",
			templates: provider.Templates{
				Landscape: []string{"/static/wide_%s.jpg"},
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.templates.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetTemplatesRejectsInvalid(t *testing.T) {
	p := provider.New(nil)
	err := p.SetTemplates(provider.Templates{})
	assert.Error(t, err)
}

func TestParseImageSize(t *testing.T) {
	for _, suffix := range []string{"xs", "s", "m", "l", "xl", "xxl"} {
		size, err := provider.ParseImageSize(suffix)
		require.NoError(t, err)
		assert.Equal(t, suffix, size.Suffix())
	}

	_, err := provider.ParseImageSize("xxxl")
	assert.Error(t, err)
}

func TestParseOrientation(t *testing.T) {
	cases := map[string]provider.Orientation{
		"":          provider.OrientationAny,
		"any":       provider.OrientationAny,
		"portrait":  provider.Portrait,
		"landscape": provider.Landscape,
	}
	for value, want := range cases {
		got, err := provider.ParseOrientation(value)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := provider.ParseOrientation("diagonal")
	assert.Error(t, err)
}
