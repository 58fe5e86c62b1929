package arithcoder

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the fatal conditions the codec can hit.
// Every one of these indicates either a misuse of the API or a corrupt
// input stream; none is recoverable within the codec itself.
var (
	ErrInvalidReduce    = errors.New("arithcoder: range reduction violates low <= newLow <= newHigh <= high")
	ErrSymbolNotInModel = errors.New("arithcoder: symbol not present in model")
	ErrEncoderFinished  = errors.New("arithcoder: encode called after finish")
	ErrShortInput       = errors.New("arithcoder: input too short to fill initial decoder buffer")
	ErrStreamCorrupt    = errors.New("arithcoder: decoded bit disagrees with buffer, stream is corrupt")
	ErrLookupOutOfRange = errors.New("arithcoder: lookup value is not less than model total")
)

// FatalError wraps one of the sentinel errors above with the context in
// which it occurred. The codec never attempts to recover from a FatalError;
// it is returned to the caller, who decides whether to abort or propagate.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("arithcoder: %s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func fatalf(op string, sentinel error) *FatalError {
	return &FatalError{Op: op, Err: sentinel}
}
