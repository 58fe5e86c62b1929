// Package cli holds the model-selection glue shared by
// cmd/arithc and cmd/arithd, so the two binaries cannot drift in how they
// build the DriverModel a container was encoded or must be decoded with.
package cli

import (
	"fmt"

	"github.com/kmayerpatel/arithcoder"
)

// NewDriverModel builds the DriverModel named by modelFlag ("order0" or
// "order1"), seeded with an order-0 byte frequency model over all 256
// values. Both cmd/arithc and cmd/arithd call this so a container encoded
// with --model=order1 can only be decoded correctly with the same flag.
func NewDriverModel(modelFlag string) (arithcoder.DriverModel, error) {
	switch modelFlag {
	case "order0", "":
		return arithcoder.NewOrderZeroModel(arithcoder.NewByteCountModel()), nil
	case "order1":
		return arithcoder.NewOrderOneModel(arithcoder.NewByteCountModel), nil
	default:
		return nil, fmt.Errorf("unknown --model %q, want order0 or order1", modelFlag)
	}
}
