package patch

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// DecodeOperations decodes an RFC 6902 patch document. The raw document is
// first run through jsonpatch.DecodePatch so malformed patches are rejected
// with the reference implementation's diagnostics, then unmarshalled into
// Operations.
func DecodeOperations(data []byte) ([]Operation, error) {
	if _, err := jsonpatch.DecodePatch(data); err != nil {
		return nil, fmt.Errorf("invalid patch document: %w", err)
	}
	var ops []Operation
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, fmt.Errorf("invalid patch document: %w", err)
	}
	for i, op := range ops {
		if !op.Op.Valid() {
			return nil, fmt.Errorf("operation %d: unsupported op %q", i, op.Op)
		}
		if op.Path == "" {
			return nil, fmt.Errorf("operation %d: missing path", i)
		}
		if (op.Op == Move || op.Op == Copy) && op.From == "" {
			return nil, fmt.Errorf("operation %d: %s requires from", i, op.Op)
		}
		// The compiler selects the value source by from's presence, so a
		// stray from would silently turn an add into a copy.
		if op.Op != Move && op.Op != Copy && op.From != "" {
			return nil, fmt.Errorf("operation %d: %s does not take from", i, op.Op)
		}
	}
	return ops, nil
}
