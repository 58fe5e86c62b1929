package arithcoder

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kmayerpatel/arithcoder/bitio"
)

// DefaultWidth is the Range bit width used by Compress/Decompress and the
// CLI drivers.
const DefaultWidth = 32

// DriverModel is the driver-side handle Compress/Decompress mutate in
// lockstep: Current returns the SymbolModel in effect for the next symbol,
// and Update applies that symbol's mutation before the next Current call.
// OrderZeroModel and OrderOneModel are the two shipped implementations.
type DriverModel interface {
	Current() SymbolModel[byte]
	Update(b byte)
}

// Compress encodes symbols against dm, writing the container format to w:
// a big-endian uint64 symbol count, followed by the arithmetic-coded
// payload padded with zero bits to a byte boundary. dm.Update is called
// with each symbol immediately after it is encoded, so the caller's
// model-mutation policy (order-0, order-1, or none) runs in exactly the
// same order a symmetric Decompress call will run it in.
func Compress(w io.Writer, symbols []byte, dm DriverModel) error {
	var hdr [8]byte
	binary.BigEndian.PutUint64(hdr[:], uint64(len(symbols)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	bw := bitio.NewBitWriter(bufio.NewWriter(w))
	enc := NewEncoder[byte](DefaultWidth)

	for _, s := range symbols {
		if err := enc.Encode(s, dm.Current(), bw); err != nil {
			return err
		}
		dm.Update(s)
	}

	if err := enc.Finish(bw); err != nil {
		return err
	}
	return bw.PadToByte()
}

// Decompress reads the container format produced by Compress from r,
// decoding exactly the number of symbols recorded in its header, and
// returns them. dm plays the same role as in Compress and must apply the
// identical mutation policy in the identical order for the bitstream to be
// decodable.
func Decompress(r io.Reader, dm DriverModel) ([]byte, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("arithcoder: reading container header: %w", err)
	}
	n := binary.BigEndian.Uint64(hdr[:])

	out := make([]byte, 0, n)
	if n == 0 {
		return out, nil
	}

	br := bitio.NewBitReader(bufio.NewReader(r))
	dec := NewDecoder[byte](DefaultWidth)

	for i := uint64(0); i < n; i++ {
		s, err := dec.Decode(dm.Current(), br)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
		dm.Update(s)
	}
	return out, nil
}
