package qc

import (
	"context"

	"github.com/dalemusser/strataqc/internal/app/system/table"
	"github.com/dalemusser/strataqc/internal/domain/models"
)

// sample builds one flat-able sample document.
func sample(id, name string, props map[string]any) table.Doc {
	d := table.Doc{{Key: "_id", Value: id}, {Key: "name", Value: name}}
	if props != nil {
		d = append(d, table.Field{Key: "properties", Value: props})
	}
	return d
}

// nested turns a dot-path and value into nested maps.
func nested(path string, v any) map[string]any {
	keys := splitPath(path)
	out := map[string]any{keys[len(keys)-1]: v}
	for i := len(keys) - 2; i >= 0; i-- {
		out = map[string]any{keys[i]: out}
	}
	return out
}

func splitPath(p string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(p); i++ {
		if p[i] == '.' {
			parts = append(parts, p[start:i])
			start = i + 1
		}
	}
	return append(parts, p[start:])
}

// merge deep-merges maps; later values win.
func merge(ms ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, m := range ms {
		for k, v := range m {
			if sub, ok := v.(map[string]any); ok {
				if cur, ok := out[k].(map[string]any); ok {
					out[k] = merge(cur, sub)
					continue
				}
			}
			out[k] = v
		}
	}
	return out
}

// props builds the properties sub-document from full dot-paths that start
// with "properties.".
func props(kv map[string]any) map[string]any {
	var parts []map[string]any
	for k, v := range kv {
		m := nested(k, v)
		parts = append(parts, m["properties"].(map[string]any))
	}
	return merge(parts...)
}

type fakeSamples struct {
	docs  []table.Doc
	calls int
	err   error
}

func (f *fakeSamples) FilterAll(_ context.Context, ids []string, _ ...string) ([]table.Doc, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []table.Doc
	for _, d := range f.docs {
		id, _ := d.Lookup("_id")
		if want[id.(string)] {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeSpecies struct {
	bounds map[string]models.SpeciesQC
	calls  int
}

func (f *fakeSpecies) QCValues(_ context.Context, organism string) (models.SpeciesQC, error) {
	f.calls++
	if sp, ok := f.bounds[organism]; ok {
		return sp, nil
	}
	return models.SpeciesQC{Organism: organism}, nil
}
