package espath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/espatch/debug"
)

// Resolver resolves path strings to Paths, handing out unique ParamKey and
// ScratchVar tokens as it goes. One Resolver belongs to one compilation;
// sharing a Resolver across compilations would leak occurrence counts
// between their parameter maps. A Resolver is not safe for concurrent use.
type Resolver struct {
	seen map[string]int
}

func NewResolver() *Resolver {
	return &Resolver{seen: map[string]int{}}
}

// Resolve parses p and returns its descriptor. Two resolutions of the same
// path string yield distinct ParamKey and ScratchVar tokens.
func (r *Resolver) Resolve(p string) (*Path, error) {
	res, err := newPath(p)
	if err != nil {
		return nil, err
	}
	base := tokenBase(res.Path)
	n := r.seen[base]
	r.seen[base] = n + 1
	res.ParamKey = fmt.Sprintf("%s_%d", base, n)
	res.ScratchVar = fmt.Sprintf("tmp_%s_%d", base, n)
	if debug.Path() {
		idx := "-"
		if res.Index != nil {
			idx = strconv.Itoa(*res.Index)
		}
		debug.Logf("resolve %q: nest=%q key=%q index=%s param=%s\n",
			p, res.Nest, res.Key, idx, res.ParamKey)
	}
	return res, nil
}

func tokenBase(p string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, p)
}
