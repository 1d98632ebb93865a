// Package patch applies JSON Patch (RFC 6902) and JSON merge patch
// (RFC 7386) documents to documents of containers.
//
// Patches address the JSON encoding of a document, so a JSON Patch path
// such as "/0/value" names the value of the first container, and a merge
// patch is keyed by container name.
package patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/yiroth/libvariant/debug"
	"github.com/yiroth/libvariant/parse"
	"github.com/yiroth/libvariant/variant"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Apply applies the JSON Patch operations in p to doc and returns the
// resulting document. doc is not modified.
func Apply(doc []variant.Container, p []byte) ([]variant.Container, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("json patch: %d ops on %d containers\n", len(ops), len(doc))
	}
	if doc == nil {
		doc = []variant.Container{}
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	jOut, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(jOut, parse.ParseJSON())
}

// Merge applies a merge patch to doc. p is a JSON object whose fields are
// container names. Each field is merged into the first container with
// that name, a null field removes it and a field naming no container adds
// a new one built from the merge patch alone. Added containers are
// appended in name order.
func Merge(doc []variant.Container, p []byte) ([]variant.Container, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(p, &fields); err != nil {
		return nil, fmt.Errorf("%w: merge patch must be an object: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("merge patch: %d fields on %d containers\n", len(fields), len(doc))
	}
	res := make([]variant.Container, 0, len(doc))
	done := map[string]bool{}
	for i := range doc {
		c := doc[i]
		mp, ok := fields[c.Name]
		if !ok || done[c.Name] {
			res = append(res, c.Clone())
			continue
		}
		done[c.Name] = true
		if isNull(mp) {
			continue
		}
		d, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		mc, err := mergeContainer(c.Name, d, mp)
		if err != nil {
			return nil, err
		}
		res = append(res, mc)
	}
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		mp := fields[name]
		if done[name] || isNull(mp) {
			continue
		}
		d, err := json.Marshal(map[string]string{"name": name})
		if err != nil {
			return nil, err
		}
		mc, err := mergeContainer(name, d, mp)
		if err != nil {
			return nil, err
		}
		res = append(res, mc)
	}
	return res, nil
}

// The merged result may rename the container but cannot remove its name.
func mergeContainer(name string, d []byte, mp json.RawMessage) (variant.Container, error) {
	out, err := jsonpatch.MergePatch(d, mp)
	if err != nil {
		return variant.Container{}, fmt.Errorf("%w: container %q: %w", ErrPatch, name, err)
	}
	res := variant.Container{}
	if err := json.Unmarshal(out, &res); err != nil {
		return variant.Container{}, fmt.Errorf("%w: container %q: %w", ErrPatch, name, err)
	}
	if res.Name == "" {
		res.Name = name
	}
	return res, nil
}

func isNull(d json.RawMessage) bool {
	return string(d) == "null"
}
