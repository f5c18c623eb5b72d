// Package patch models RFC 6902 patch operations and the merge-document
// normalization that turns a partial document into a flat operation list.
package patch

import (
	"encoding/json"
	"fmt"
)

// Operation is one patch instruction. From is set only for move and copy.
// Operations are value types; the compiler never modifies its input list.
type Operation struct {
	Op    Op     `json:"op" yaml:"op"`
	Path  string `json:"path" yaml:"path"`
	From  string `json:"from,omitempty" yaml:"from,omitempty"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// DisplayValue is the JSON rendering of the operation value, used in
// test-failure explanations.
func (o Operation) DisplayValue() string {
	d, err := json.Marshal(o.Value)
	if err != nil {
		return fmt.Sprintf("%v", o.Value)
	}
	return string(d)
}
