package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yiroth/libvariant/variant"
)

const (
	healthy = `[{"name":"Health","kind":"Int","value":{"kind":"Int","int":100}},
{"name":"Title","kind":"String","value":{"kind":"String","string":"hello"}}]`
	wounded = `[{"name":"Health","kind":"Int","value":{"kind":"Int","int":90}},
{"name":"Title","kind":"String","value":{"kind":"String","string":"hello"}}]`
	retagged = `[{"name":"Health","kind":"Int","value":{"kind":"String","string":"full"}},
{"name":"Title","kind":"String","value":{"kind":"Int","int":3}}]`
)

func writeDoc(t *testing.T, name, doc string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestGetAs(t *testing.T) {
	tests := []struct {
		name    string
		strict  bool
		c       variant.Container
		k       variant.Kind
		want    variant.Variant
		wantErr bool
	}{
		{
			name: "converts",
			c:    variant.StringContainer("Health", variant.IntKind, "42"),
			k:    variant.IntKind,
			want: variant.FromInt(42),
		},
		{
			name: "zero value",
			c:    variant.StringContainer("Health", variant.IntKind, "full"),
			k:    variant.IntKind,
			want: variant.FromInt(0),
		},
		{
			name:    "strict",
			strict:  true,
			c:       variant.StringContainer("Health", variant.IntKind, "full"),
			k:       variant.IntKind,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &GetConfig{MainConfig: &MainConfig{}, Strict: tt.strict}
			got, err := getAs(cfg, &tt.c, tt.k)
			if tt.wantErr {
				if !errors.Is(err, variant.ErrConvert) {
					t.Errorf("got %v, want ErrConvert", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(variant.Variant{})); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckFiles(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		stdin string
		want  int
	}{
		{"clean", []string{writeDoc(t, "a.json", healthy)}, "", 0},
		{"mismatch", []string{writeDoc(t, "b.json", retagged)}, "", 2},
		{"several files", []string{writeDoc(t, "c.json", healthy), writeDoc(t, "d.json", retagged)}, "", 2},
		{"stdin", []string{"-"}, retagged, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &MainConfig{J: true}
			n, err := checkFiles(cfg, strings.NewReader(tt.stdin), tt.files)
			if err != nil {
				t.Fatal(err)
			}
			if n != tt.want {
				t.Errorf("got %d mismatches, want %d", n, tt.want)
			}
		})
	}
}

func TestCheckFilesMissing(t *testing.T) {
	_, err := checkFiles(&MainConfig{}, strings.NewReader(""), []string{filepath.Join(t.TempDir(), "none.json")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not exist", err)
	}
}

func TestDiffFiles(t *testing.T) {
	a := writeDoc(t, "a.json", healthy)
	b := writeDoc(t, "b.json", wounded)
	tests := []struct {
		name    string
		reverse bool
		from    string
		to      string
		differs bool
		out     string
	}{
		{name: "same", from: a, to: a},
		{name: "differs", from: a, to: b, differs: true, out: "~ Health: Int 100 -> 90\n"},
		{name: "reverse", reverse: true, from: a, to: b, differs: true, out: "~ Health: Int 90 -> 100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &DiffConfig{MainConfig: &MainConfig{}, Reverse: tt.reverse}
			buf := &bytes.Buffer{}
			differs, err := diffFiles(cfg, strings.NewReader(""), buf, tt.from, tt.to)
			if err != nil {
				t.Fatal(err)
			}
			if differs != tt.differs {
				t.Errorf("differs: got %v want %v", differs, tt.differs)
			}
			if diff := cmp.Diff(tt.out, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
