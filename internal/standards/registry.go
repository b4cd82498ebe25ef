// Package standards holds the organization coding standards, keyed by language.
package standards

import (
	"sort"
	"sync"
)

// Document is a coding-standard document. Its shape is not validated; it is
// serialized verbatim into analysis prompts.
type Document = map[string]any

// Registry maps a language name to its coding standard.
type Registry struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{docs: make(map[string]Document)}
}

// Update merges standards into the registry. A language present in standards
// replaces the existing document for that language as a whole; other languages
// are left untouched.
func (r *Registry) Update(standards map[string]Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for lang, doc := range standards {
		r.docs[lang] = doc
	}
}

// Lookup returns the standard for language, or nil when none is registered.
func (r *Registry) Lookup(language string) Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.docs[language]
}

// Languages returns the registered languages in sorted order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs := make([]string, 0, len(r.docs))
	for lang := range r.docs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Snapshot returns a shallow copy of all registered standards.
func (r *Registry) Snapshot() map[string]Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Document, len(r.docs))
	for lang, doc := range r.docs {
		out[lang] = doc
	}
	return out
}
