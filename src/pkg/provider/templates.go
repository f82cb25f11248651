package provider

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sample-gallery/urigen/src/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Built-in sample sets served from the frescolib static image bucket. Each
// template carries a single %s slot for the size suffix.
var builtinLandscape = []string{
	"http://frescolib.org/static/sample-images/animal_a_%s.jpg",
	"http://frescolib.org/static/sample-images/animal_b_%s.jpg",
	"http://frescolib.org/static/sample-images/animal_c_%s.jpg",
	"http://frescolib.org/static/sample-images/animal_e_%s.jpg",
	"http://frescolib.org/static/sample-images/animal_f_%s.jpg",
	"http://frescolib.org/static/sample-images/animal_g_%s.jpg",
}

var builtinPortrait = []string{
	"http://frescolib.org/static/sample-images/animal_d_%s.jpg",
}

// Templates holds the URI format templates partitioned by orientation.
type Templates struct {
	Portrait  []string `yaml:"portrait"`
	Landscape []string `yaml:"landscape"`
}

func BuiltinTemplates() Templates {
	return Templates{
		Portrait:  append([]string(nil), builtinPortrait...),
		Landscape: append([]string(nil), builtinLandscape...),
	}
}

// LoadTemplates reads a template set from a YAML file and validates it.
func LoadTemplates(path string) (Templates, error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return Templates{}, fmt.Errorf("failed to read template file: %w", readErr)
	}

	templates := Templates{}
	if unmarshalErr := yaml.Unmarshal(data, &templates); unmarshalErr != nil {
		return Templates{}, fmt.Errorf("wrong template file format: %w", unmarshalErr)
	}

	if validateErr := templates.Validate(); validateErr != nil {
		return Templates{}, validateErr
	}
	return templates, nil
}

// Validate checks that every template has exactly one size slot and yields an
// absolute URI, and that the combined pool is not empty.
func (t Templates) Validate() error {
	if len(t.Portrait) == 0 && len(t.Landscape) == 0 {
		return errors.New("template set is empty")
	}

	for _, pool := range [][]string{t.Portrait, t.Landscape} {
		for _, template := range pool {
			if strings.Count(template, "%s") != 1 {
				return fmt.Errorf("template %q must contain exactly one %%s slot", template)
			}
			if !utils.IsHTTP(fmt.Sprintf(template, SizeM.Suffix())) {
				return fmt.Errorf("template %q does not produce an absolute http(s) URI", template)
			}
		}
	}
	return nil
}
