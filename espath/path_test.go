package espath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type pathTest struct {
	In      string
	Path    string
	Nest    string
	Key     string
	Index   *int
	NestAcc string
	LocAcc  string
	FullAcc string
	Err     bool
}

func idx(i int) *int { return &i }

var pathTests = []pathTest{
	{
		In:      "a",
		Path:    "a",
		Key:     "a",
		LocAcc:  ".a",
		FullAcc: ".a",
	},
	{
		In:      "a.b.c",
		Path:    "a.b.c",
		Nest:    "a.b",
		Key:     "c",
		NestAcc: ".a.b",
		LocAcc:  ".a.b.c",
		FullAcc: ".a.b.c",
	},
	{
		In:      "a.b.3",
		Path:    "a.b[3]",
		Nest:    "a",
		Key:     "b",
		Index:   idx(3),
		NestAcc: ".a",
		LocAcc:  ".a.b",
		FullAcc: ".a.b[3]",
	},
	{
		In:      "a.b[3]",
		Path:    "a.b[3]",
		Nest:    "a",
		Key:     "b",
		Index:   idx(3),
		NestAcc: ".a",
		LocAcc:  ".a.b",
		FullAcc: ".a.b[3]",
	},
	{
		In:      "/a/b/3",
		Path:    "a.b[3]",
		Nest:    "a",
		Key:     "b",
		Index:   idx(3),
		NestAcc: ".a",
		LocAcc:  ".a.b",
		FullAcc: ".a.b[3]",
	},
	{
		In:      "a[1].b",
		Path:    "a[1].b",
		Nest:    "a[1]",
		Key:     "b",
		NestAcc: ".a[1]",
		LocAcc:  ".a[1].b",
		FullAcc: ".a[1].b",
	},
	{
		In:      "a[1][2]",
		Path:    "a[1][2]",
		Nest:    "a[1]",
		Index:   idx(2),
		NestAcc: ".a[1]",
		LocAcc:  ".a[1]",
		FullAcc: ".a[1][2]",
	},
	{
		In:      "3",
		Path:    "[3]",
		Index:   idx(3),
		FullAcc: "[3]",
	},
	{In: "", Err: true},
	{In: "/", Err: true},
	{In: "a..b", Err: true},
	{In: ".a", Err: true},
	{In: "a.", Err: true},
	{In: "a[", Err: true},
	{In: "a[x]", Err: true},
	{In: "a[-1]", Err: true},
}

func TestResolve(t *testing.T) {
	for _, tt := range pathTests {
		got, err := NewResolver().Resolve(tt.In)
		if tt.Err {
			if err == nil {
				t.Errorf("Resolve(%q): expected error, got %+v", tt.In, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.In, err)
			continue
		}
		want := &Path{
			Path:             tt.Path,
			Nest:             tt.Nest,
			Key:              tt.Key,
			Index:            tt.Index,
			NestAccessor:     tt.NestAcc,
			LocationAccessor: tt.LocAcc,
			FullAccessor:     tt.FullAcc,
		}
		ignoreTokens := cmpopts.IgnoreFields(Path{}, "ParamKey", "ScratchVar")
		if d := cmp.Diff(want, got, ignoreTokens); d != "" {
			t.Errorf("Resolve(%q) (-want +got):\n%s", tt.In, d)
		}
	}
}

func TestResolveTokensUnique(t *testing.T) {
	r := NewResolver()
	seen := map[string]bool{}
	for _, in := range []string{"a.b", "a.b", "a.b", "a_b", "a.b[0]"} {
		p, err := r.Resolve(in)
		if err != nil {
			t.Fatal(err)
		}
		if seen[p.ParamKey] {
			t.Errorf("duplicate ParamKey %q for %q", p.ParamKey, in)
		}
		if seen[p.ScratchVar] {
			t.Errorf("duplicate ScratchVar %q for %q", p.ScratchVar, in)
		}
		seen[p.ParamKey] = true
		seen[p.ScratchVar] = true
	}
}

func TestResolveDeterministic(t *testing.T) {
	a, err := NewResolver().Resolve("x.y[1]")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewResolver().Resolve("x.y[1]")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("fresh resolvers disagree (-a +b):\n%s", d)
	}
}
