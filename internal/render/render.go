// Package render turns fetched market data into the textual forms the CLI
// prints: a debug dump, indented JSON, a tabular view for aggregates, and
// CSV for splits.
package render

import (
	"encoding/json"

	"github.com/davecgh/go-spew/spew"
)

// dumpState renders values deterministically: no pointer addresses, no
// capacities, map keys sorted. Output stays stable across runs so it can be
// asserted in tests, but it is not a machine-parseable contract.
var dumpState = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders v as a multi-line debug string carrying field names and
// nested values. This is the default output of every fetch mode.
func Dump(v any) string {
	return dumpState.Sdump(v)
}

// JSON renders v as two-space-indented JSON.
func JSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
