package bch

import (
	"github.com/pkg/errors"
)

// Bit-granularity facade.  Callers supply one bit per slice element
// (values 0 or 1) in MSB-first stream order: DataBits() payload bits in,
// ECCBits() parity bits out.  Internally the payload is packed MSB-first
// into the byte-granular core, padded at the front to a byte boundary so
// the padding never changes the parity.

/*-------------------------------------------------------------
 *
 * Name:	EncodeBits
 *
 * Purpose:	Compute parity for exactly DataBits() payload bits.
 *
 * Inputs:	data_bits	- DataBits() entries, each 0 or 1.
 *
 * Outputs:	ecc_bits_out	- ECCBits() entries, each 0 or 1.
 *
 *--------------------------------------------------------------*/

func (bch *BCH) EncodeBits(data_bits []byte, ecc_bits_out []byte) error {
	var nbits = bch.n - bch.ecc_bits
	if len(data_bits) != nbits {
		return errors.Wrapf(ErrInvalidParam, "need exactly %d data bits, got %d", nbits, len(data_bits))
	}
	if len(ecc_bits_out) < bch.ecc_bits {
		return errors.Wrapf(ErrInvalidParam, "ecc output needs room for %d bits", bch.ecc_bits)
	}

	var pad = 8*len(bch.databuf) - nbits

	clear(bch.databuf)
	for i, bit := range data_bits {
		if bit != 0 {
			var s = pad + i
			bch.databuf[s/8] |= 1 << (7 - (s & 7))
		}
	}

	clear(bch.eccbuf)
	encode_bch(bch, bch.databuf, bch.eccbuf)

	for j := 0; j < bch.ecc_bits; j++ {
		ecc_bits_out[j] = (bch.eccbuf[j/8] >> (7 - (j & 7))) & 1
	}
	return nil
}

/*-------------------------------------------------------------
 *
 * Name:	DecodeBits
 *
 * Purpose:	Locate bit errors over a bit-granular payload and parity.
 *		Reported indices refer to the caller's streams: 0 is the
 *		first data bit, data errors map to 0..DataBits()-1 and
 *		parity errors continue at DataBits()..DataBits()+ECCBits()-1.
 *
 * Returns:	The number of errors located and nil, or an error wrapping
 *		ErrInvalidParam / ErrBadMessage.
 *
 *--------------------------------------------------------------*/

func (bch *BCH) DecodeBits(data_bits []byte, recv_ecc_bits []byte, errloc []uint32) (int, error) {
	var nbits = bch.n - bch.ecc_bits
	if len(data_bits) != nbits {
		return 0, errors.Wrapf(ErrInvalidParam, "need exactly %d data bits, got %d", nbits, len(data_bits))
	}
	if len(recv_ecc_bits) < bch.ecc_bits {
		return 0, errors.Wrapf(ErrInvalidParam, "need %d received ecc bits", bch.ecc_bits)
	}
	if len(errloc) < bch.t {
		return 0, errors.Wrapf(ErrInvalidParam, "errloc needs room for %d entries", bch.t)
	}

	var pad = 8*len(bch.databuf) - nbits

	clear(bch.databuf)
	for i, bit := range data_bits {
		if bit != 0 {
			var s = pad + i
			bch.databuf[s/8] |= 1 << (7 - (s & 7))
		}
	}

	clear(bch.eccbuf2)
	for j := 0; j < bch.ecc_bits; j++ {
		if recv_ecc_bits[j] != 0 {
			bch.eccbuf2[j/8] |= 1 << (7 - (j & 7))
		}
	}

	var nerr = decode_bch(bch, bch.databuf, len(bch.databuf), bch.eccbuf2, nil, nil, errloc)
	if nerr < 0 {
		return ret(nerr)
	}

	// undo the in-byte reorder and the front pad so indices refer to
	// the caller's bit streams
	for i := 0; i < nerr; i++ {
		var p = int(errloc[i])
		var s int
		if p < 8*len(bch.databuf) {
			s = (p&^7 | (7 - (p & 7))) - pad
			if s < 0 {
				// an error inside the synthetic padding cannot be real
				return 0, ErrBadMessage
			}
		} else {
			var q = p - 8*len(bch.databuf)
			s = q&^7 | (7 - (q & 7))
			if s >= bch.ecc_bits {
				return 0, ErrBadMessage
			}
			s += nbits
		}
		errloc[i] = uint32(s)
	}
	return nerr, nil
}
