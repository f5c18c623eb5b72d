// Package espath resolves patch path strings into descriptors holding
// everything the script compiler needs to address one document location:
// the parent container, the final key or index, painless accessor
// expressions for each, and unique tokens for parameter binding and
// scratch variables.
//
// Three spellings are accepted and normalized to one dotted form:
//
//	a.b.3    dotted, trailing digits as array index
//	a.b[3]   bracketed index
//	/a/b/3   JSON pointer separators
package espath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is the resolved form of one patch path. All fields are computed at
// construction; a Path is never modified afterwards.
type Path struct {
	// Path is the normalized display form, e.g. "a.b[3]".
	Path string

	// Nest is the dotted path of the container holding Key, empty at top
	// level.
	Nest string

	// Key is the final named segment. Empty only when the path addresses an
	// index whose container is itself an index, e.g. "a[1][2]".
	Key string

	// Index is set when the path addresses element Index of the array at
	// Key.
	Index *int

	// NestAccessor addresses Nest, LocationAccessor the container of Index
	// (or the element at Key when Index is nil), FullAccessor the whole
	// path. Each is either empty or starts with '.' or '[' so that it can
	// be appended directly to the document root expression.
	NestAccessor     string
	LocationAccessor string
	FullAccessor     string

	// ParamKey and ScratchVar are unique per resolution within one
	// Resolver. ParamKey binds a literal operation value into the script
	// parameter map; ScratchVar names the temporary holding a removed
	// value for reuse by a move.
	ParamKey   string
	ScratchVar string
}

type segment struct {
	name  string
	index int
	isIdx bool
}

func (s segment) display() string {
	if s.isIdx {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.name
}

func (s segment) accessor() string {
	if s.isIdx {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return "." + s.name
}

func parseSegments(p string) ([]segment, error) {
	if strings.HasPrefix(p, "/") {
		p = strings.ReplaceAll(strings.TrimPrefix(p, "/"), "/", ".")
	}
	if p == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	var segs []segment
	for len(p) > 0 {
		switch p[0] {
		case '.':
			if len(segs) == 0 {
				return nil, fmt.Errorf("%w: leading '.'", ErrBadPath)
			}
			p = p[1:]
			if p == "" {
				return nil, fmt.Errorf("%w: trailing '.'", ErrBadPath)
			}
		case '[':
			i := strings.IndexByte(p, ']')
			if i == -1 {
				return nil, fmt.Errorf("%w: expected '[' <index> ']'", ErrBadPath)
			}
			idx, err := strconv.ParseUint(p[1:i], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: index %q", ErrBadPath, p[1:i])
			}
			segs = append(segs, segment{index: int(idx), isIdx: true})
			p = p[i+1:]
		default:
			i := strings.IndexAny(p, ".[")
			field := p
			if i != -1 {
				field = p[:i]
				p = p[i:]
			} else {
				p = ""
			}
			if field == "" {
				return nil, fmt.Errorf("%w: empty segment", ErrBadPath)
			}
			if idx, err := strconv.ParseUint(field, 10, 32); err == nil {
				segs = append(segs, segment{index: int(idx), isIdx: true})
				continue
			}
			segs = append(segs, segment{name: field})
		}
	}
	return segs, nil
}

func newPath(p string) (*Path, error) {
	segs, err := parseSegments(p)
	if err != nil {
		return nil, err
	}
	res := &Path{}

	last := segs[len(segs)-1]
	nest := segs
	if last.isIdx {
		idx := last.index
		res.Index = &idx
		nest = nest[:len(nest)-1]
		if len(nest) > 0 && !nest[len(nest)-1].isIdx {
			res.Key = nest[len(nest)-1].name
			nest = nest[:len(nest)-1]
		}
	} else {
		res.Key = last.name
		nest = nest[:len(nest)-1]
	}

	res.Nest = displaySegments(nest)
	res.NestAccessor = accessorSegments(nest)
	res.LocationAccessor = res.NestAccessor
	if res.Key != "" {
		res.LocationAccessor += "." + res.Key
	}
	res.FullAccessor = accessorSegments(segs)
	res.Path = displaySegments(segs)
	return res, nil
}

func displaySegments(segs []segment) string {
	buf := bytes.NewBuffer(nil)
	for i, s := range segs {
		if !s.isIdx && i > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(s.display())
	}
	return buf.String()
}

func accessorSegments(segs []segment) string {
	buf := bytes.NewBuffer(nil)
	for _, s := range segs {
		buf.WriteString(s.accessor())
	}
	return buf.String()
}
