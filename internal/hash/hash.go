// Package hash fingerprints a scenario's full set of inputs into a short,
// stable key, so that two runs/log lines/plot files referring to the exact
// same configuration can be recognized as such without printing the whole
// struct.
package hash

import (
	"encoding/gob"
	"fmt"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
)

// ScenarioKey returns a fingerprint for a scenario.Inputs (or any other
// value): a fnv128a hash of its gob encoding, falling back to a sorted
// spew dump when gob can't encode the value (e.g. a struct with no
// exported fields). A value implementing fmt.Stringer is keyed by its
// String() output instead.
func ScenarioKey(in interface{}) string {
	if s, ok := in.(fmt.Stringer); ok {
		return s.String()
	}
	h := fnv.New128a()

	e := gob.NewEncoder(h)
	if err := e.Encode(in); err == nil {
		bKey := h.Sum([]byte{})
		return fmt.Sprintf("%x", bKey[0:h.Size()])
	}
	printer := spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		DisableMethods:          true,
		SpewKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	printer.Fprintf(h, "%#v", in)
	bKey := h.Sum([]byte{})
	return fmt.Sprintf("%x", bKey[0:h.Size()])
}
