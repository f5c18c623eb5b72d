package script

import "bytes"

// Commands is an insertion-ordered statement sequence with set semantics:
// adding a statement already present is a no-op. Operations sharing a path
// prefix thus share one existence guard instead of repeating it.
type Commands struct {
	stmts []Stmt
	seen  map[string]struct{}
}

func newCommands() *Commands {
	return &Commands{seen: map[string]struct{}{}}
}

func (c *Commands) Add(s Stmt) {
	text := s.Render()
	if _, ok := c.seen[text]; ok {
		return
	}
	c.seen[text] = struct{}{}
	c.stmts = append(c.stmts, s)
}

func (c *Commands) Len() int {
	return len(c.stmts)
}

// Source concatenates the rendered statements in insertion order.
func (c *Commands) Source() string {
	buf := bytes.NewBuffer(nil)
	for _, s := range c.stmts {
		buf.WriteString(s.Render())
	}
	return buf.String()
}
