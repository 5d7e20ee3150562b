package version

import (
	"embed"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed layouts/*.yaml
var layoutFS embed.FS

// LayoutManifest describes the callbacks and classes a host must provide
// for one layout version.
type LayoutManifest struct {
	Version     string                  `yaml:"version"`
	Description string                  `yaml:"description"`
	Callbacks   map[string]CallbackSpec `yaml:"callbacks"`
	Classes     map[string]ClassSpec    `yaml:"classes"`
}

// CallbackSpec describes a single host callback.
type CallbackSpec struct {
	Method    string `yaml:"method"`
	Signature string `yaml:"signature"`
	Mandatory bool   `yaml:"mandatory"`
}

// ClassSpec describes a host class the bridge constructs.
type ClassSpec struct {
	Name         string   `yaml:"name"`
	Constructors []string `yaml:"constructors"`
}

// ---------------------------------------------------------------------------
// Cache
// ---------------------------------------------------------------------------

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*LayoutManifest)
)

// LoadLayout loads a layout manifest by version string (e.g. "1.0").
func LoadLayout(ver string) (*LayoutManifest, error) {
	cacheMu.RLock()
	if l, ok := cache[ver]; ok {
		cacheMu.RUnlock()
		return l, nil
	}
	cacheMu.RUnlock()

	data, err := layoutFS.ReadFile("layouts/" + ver + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("layout version %q not found: %w", ver, err)
	}

	var m LayoutManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing layout %q: %w", ver, err)
	}

	cacheMu.Lock()
	cache[ver] = &m
	cacheMu.Unlock()

	return &m, nil
}

// LoadCurrentLayout loads the manifest for the current layout version.
func LoadCurrentLayout() (*LayoutManifest, error) {
	return LoadLayout(Current)
}

// AvailableLayouts returns the version strings of all embedded manifests.
func AvailableLayouts() ([]string, error) {
	entries, err := layoutFS.ReadDir("layouts")
	if err != nil {
		return nil, fmt.Errorf("reading layouts directory: %w", err)
	}

	var versions []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			versions = append(versions, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// MandatoryCallbacks returns the method names of all mandatory callbacks,
// sorted.
func (l *LayoutManifest) MandatoryCallbacks() []string {
	var out []string
	for _, cb := range l.Callbacks {
		if cb.Mandatory {
			out = append(out, cb.Method)
		}
	}
	sort.Strings(out)
	return out
}

// CallbackByMethod looks up a callback by its method name.
func (l *LayoutManifest) CallbackByMethod(method string) (string, *CallbackSpec, bool) {
	for key, cb := range l.Callbacks {
		if cb.Method == method {
			return key, &cb, true
		}
	}
	return "", nil, false
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// HostLayout describes what an implementation actually provides.
type HostLayout struct {
	// Methods maps callback method names to their descriptors.
	Methods map[string]string
	// Classes maps class names to their constructor descriptors.
	Classes map[string][]string
}

// ValidationResult holds the outcome of validating a host layout.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// ValidateHost checks whether a host layout satisfies a manifest. A
// missing optional callback is a warning; a wrong descriptor is always an
// error.
func ValidateHost(manifest *LayoutManifest, host HostLayout) ValidationResult {
	var result ValidationResult

	keys := make([]string, 0, len(manifest.Callbacks))
	for k := range manifest.Callbacks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		cb := manifest.Callbacks[key]
		sig, present := host.Methods[cb.Method]
		switch {
		case !present && cb.Mandatory:
			result.Errors = append(result.Errors,
				fmt.Sprintf("mandatory callback %s missing", cb.Method))
		case !present:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("optional callback %s missing", cb.Method))
		case sig != cb.Signature:
			result.Errors = append(result.Errors,
				fmt.Sprintf("callback %s has descriptor %s, layout expects %s",
					cb.Method, sig, cb.Signature))
		}
	}

	keys = keys[:0]
	for k := range manifest.Classes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		cls := manifest.Classes[key]
		ctors, present := host.Classes[cls.Name]
		if !present {
			result.Errors = append(result.Errors,
				fmt.Sprintf("class %s missing", cls.Name))
			continue
		}
		for _, want := range cls.Constructors {
			if !slices.Contains(ctors, want) {
				result.Errors = append(result.Errors,
					fmt.Sprintf("class %s missing constructor %s", cls.Name, want))
			}
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}
