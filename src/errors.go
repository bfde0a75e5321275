package bch

import "github.com/pkg/errors"

// Error kinds surfaced at the public API boundary.
var (
	// ErrInvalidParam reports parameters the code cannot accommodate:
	// m or t out of range, a reducible primitive polynomial, oversized
	// data, or missing inputs for the chosen decode mode.
	ErrInvalidParam = errors.New("bch: invalid parameter")

	// ErrBadMessage reports corruption beyond the correction radius:
	// more than t errors indicated, an inconsistent error locator, or a
	// located error outside the codeword.
	ErrBadMessage = errors.New("bch: uncorrectable block")

	// ErrInternal reports a construction failure that valid parameters
	// should never produce.
	ErrInternal = errors.New("bch: internal failure")
)

// Internal return codes.  The decode pipeline propagates these C-style;
// they are mapped to the sentinels above at the exported methods.
const (
	einval  = -1
	ebadmsg = -2
)

func ret(code int) (int, error) {
	switch {
	case code >= 0:
		return code, nil
	case code == einval:
		return 0, ErrInvalidParam
	default:
		return 0, ErrBadMessage
	}
}
