package provider

import (
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/sample-gallery/urigen/src/pkg/prefs"
	"github.com/sample-gallery/urigen/src/pkg/utils"
)

const (
	prefKeyCacheBreaking = "uri_cache_breaking"
	prefKeyURIOverride   = "uri_override"

	cacheBreakerParam = "cache_breaker"

	nonExistingURI = "http://frescolib.org/static/sample-images/does_not_exist.jpg"
)

var ErrNotAbsolute = errors.New("override URI must be absolute")

// Rand supplies the randomness for template selection.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Provider produces sample image URIs for gallery demos. Preferences are read
// from the store on every request, so several processes sharing a store see
// overrides immediately.
type Provider struct {
	store prefs.Store
	rand  Rand
	token func() string

	mu        sync.RWMutex
	templates Templates
}

type Option func(*Provider)

// WithTemplates replaces the built-in template sets.
func WithTemplates(templates Templates) Option {
	return func(p *Provider) {
		p.templates = templates
	}
}

// WithRand replaces the selection randomness, letting tests pin the chosen
// template.
func WithRand(r Rand) Option {
	return func(p *Provider) {
		p.rand = r
	}
}

// WithTokenSource replaces the cache-breaker token generator, letting tests
// assert exact URIs.
func WithTokenSource(token func() string) Option {
	return func(p *Provider) {
		p.token = token
	}
}

func New(store prefs.Store, opts ...Option) *Provider {
	p := &Provider{
		store:     store,
		rand:      globalRand{},
		token:     uuid.NewString,
		templates: BuiltinTemplates(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NonExistingURI returns the URI of an image that will result in a 404 (not
// found) HTTP error.
func (p *Provider) NonExistingURI() string {
	return nonExistingURI
}

// SampleURI returns a ready-to-use image URI for the requested size,
// orientation and modification, honoring the persisted override settings.
func (p *Provider) SampleURI(size ImageSize, orientation Orientation, modification Modification) (string, error) {
	p.mu.RLock()
	templates := p.templates
	p.mu.RUnlock()

	var template string
	var chooseErr error
	switch orientation {
	case Portrait:
		template, chooseErr = p.chooseRandom(templates.Portrait)
	case Landscape:
		template, chooseErr = p.chooseRandom(templates.Landscape)
	default:
		template, chooseErr = p.chooseRandom(templates.Landscape, templates.Portrait)
	}
	if chooseErr != nil {
		return "", fmt.Errorf("no template for orientation %s: %w", orientation, chooseErr)
	}

	return p.applyOverrideSettings(fmt.Sprintf(template, size.Suffix()), modification)
}

// SetOverride persists an override URI that replaces every generated sample
// URI. An empty uri clears the override.
func (p *Provider) SetOverride(uri string) error {
	if uri == "" {
		return p.store.Remove(prefKeyURIOverride)
	}

	if !utils.IsAbsolute(uri) {
		return fmt.Errorf("%w: %q", ErrNotAbsolute, uri)
	}
	return p.store.SetString(prefKeyURIOverride, uri)
}

// Override returns the persisted override URI, or an empty string when unset.
func (p *Provider) Override() (string, error) {
	return p.store.GetString(prefKeyURIOverride, "")
}

// SetBreakCacheByDefault persists the flag that upgrades every request to
// ModCacheBreaker.
func (p *Provider) SetBreakCacheByDefault(value bool) error {
	return p.store.SetBool(prefKeyCacheBreaking, value)
}

func (p *Provider) BreakCacheByDefault() (bool, error) {
	return p.store.GetBool(prefKeyCacheBreaking, false)
}

// SetTemplates swaps in a new template set after validating it.
func (p *Provider) SetTemplates(templates Templates) error {
	if err := templates.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.templates = templates
	return nil
}

func (p *Provider) applyOverrideSettings(uriString string, modification Modification) (string, error) {
	breakByDefault, flagErr := p.BreakCacheByDefault()
	if flagErr != nil {
		return "", flagErr
	}
	if breakByDefault {
		modification = ModCacheBreaker
	}

	override, overrideErr := p.Override()
	if overrideErr != nil {
		return "", overrideErr
	}
	if override != "" {
		uriString = override
	}

	if modification != ModCacheBreaker {
		return uriString, nil
	}

	result, parseErr := url.Parse(uriString)
	if parseErr != nil {
		return "", fmt.Errorf("failed to parse URI %q: %w", uriString, parseErr)
	}
	query := result.Query()
	query.Set(cacheBreakerParam, p.token())
	result.RawQuery = query.Encode()
	return result.String(), nil
}

// chooseRandom returns a random element from the given pools, uniform over
// their concatenation.
func (p *Provider) chooseRandom(pools ...[]string) (string, error) {
	total := 0
	for _, pool := range pools {
		total += len(pool)
	}
	if total == 0 {
		return "", errors.New("empty template pool")
	}

	i := p.rand.Intn(total)
	for _, pool := range pools {
		if i < len(pool) {
			return pool[i], nil
		}
		i -= len(pool)
	}
	// Unreachable: Intn(total) is always below the combined length.
	return "", errors.New("template selection out of range")
}
