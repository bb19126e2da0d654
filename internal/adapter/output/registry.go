// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"sort"
	"strings"

	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

type RendererRegistry struct {
	byFormat map[string]ports.OutputRenderer
}

func NewRendererRegistry(renderers ...ports.OutputRenderer) *RendererRegistry {
	m := make(map[string]ports.OutputRenderer, len(renderers))
	for _, r := range renderers {
		if r == nil {
			continue
		}
		m[strings.ToLower(r.Format())] = r
	}
	return &RendererRegistry{byFormat: m}
}

// NewDefaultRegistry registers every built-in format.
func NewDefaultRegistry() *RendererRegistry {
	return NewRendererRegistry(
		NewTextRenderer(),
		NewStatusRenderer(),
		NewJSONRenderer(),
		NewYAMLRenderer(),
		NewSarifRenderer(),
	)
}

var _ ports.RendererRegistry = (*RendererRegistry)(nil)

func (r *RendererRegistry) Get(format string) (ports.OutputRenderer, bool) {
	if r == nil {
		return nil, false
	}
	f := strings.ToLower(format)
	out, ok := r.byFormat[f]
	return out, ok
}

// List returns the renderers sorted by format name.
func (r *RendererRegistry) List() []ports.OutputRenderer {
	out := make([]ports.OutputRenderer, 0, len(r.byFormat))
	for _, v := range r.byFormat {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Format() < out[j].Format()
	})
	return out
}

// Formats returns the registered format names, sorted.
func (r *RendererRegistry) Formats() []string {
	list := r.List()
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, v.Format())
	}
	return out
}
