package bch

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// single byte step: shift the parity register by 8 bits and fold in one
// lane-0 remainder row
func encode_bch_bytewise(bch *BCH, data []byte, ecc []uint32) {
	var l = bch.ecc_words - 1

	for _, v := range data {
		var p = bch.mod8_tab[bch.ecc_words*int(byte(ecc[0]>>24)^v):]
		for i := 0; i < l; i++ {
			ecc[i] = ((ecc[i] << 8) | (ecc[i+1] >> 24)) ^ p[i]
		}
		ecc[l] = (ecc[l] << 8) ^ p[l]
	}
}

/*-------------------------------------------------------------
 *
 * Name:	encode_bch
 *
 * Purpose:	Stream data through the 32-bit-parallel LFSR built over
 *		the four byte-lane remainder tables.  Each aligned data
 *		word is read big-endian regardless of host order, split
 *		into 4 one-byte polynomials, and the precomputed remainder
 *		of each is folded into the register while it shifts by 32
 *		bits.  The trailing unaligned bytes take the one-byte step.
 *
 * Inputs:	ecc == nil computes parity into bch.ecc_buf only (the
 *		decode path uses this); otherwise ecc seeds the register,
 *		which is what makes incremental encoding work, and
 *		receives the updated parity bytes.
 *
 *--------------------------------------------------------------*/

func encode_bch(bch *BCH, data []byte, ecc []byte) {
	var l = bch.ecc_words - 1
	var r = bch.ecc_buf

	if ecc != nil {
		load_ecc8(bch, r, ecc)
	} else {
		clear(r)
	}

	var tab0 = bch.mod8_tab
	var tab1 = tab0[256*bch.ecc_words:]
	var tab2 = tab1[256*bch.ecc_words:]
	var tab3 = tab2[256*bch.ecc_words:]

	var mlen = len(data) / 4
	for w := 0; w < mlen; w++ {
		var v = binary.BigEndian.Uint32(data[4*w:]) ^ r[0]
		var p0 = tab0[bch.ecc_words*int(v&0xff):]
		var p1 = tab1[bch.ecc_words*int((v>>8)&0xff):]
		var p2 = tab2[bch.ecc_words*int((v>>16)&0xff):]
		var p3 = tab3[bch.ecc_words*int((v>>24)&0xff):]

		for i := 0; i < l; i++ {
			r[i] = r[i+1] ^ p0[i] ^ p1[i] ^ p2[i] ^ p3[i]
		}
		r[l] = p0[l] ^ p1[l] ^ p2[l] ^ p3[l]
	}

	encode_bch_bytewise(bch, data[4*mlen:], r)

	if ecc != nil {
		store_ecc8(bch, ecc, r)
	}
}

/*-------------------------------------------------------------
 *
 * Name:	Encode
 *
 * Purpose:	Compute the parity bytes for data.  ecc is read-modify-
 *		write: zero it before the first chunk of a message, then
 *		feed it back unchanged for each subsequent chunk and the
 *		final contents equal the one-shot encoding of the whole
 *		message.
 *
 * Returns:	nil, or an error wrapping ErrInvalidParam when data
 *		exceeds the code capacity or ecc is too short.
 *
 *--------------------------------------------------------------*/

func (bch *BCH) Encode(data []byte, ecc []byte) error {
	if len(data) > bch.MaxDataBytes() {
		return errors.Wrapf(ErrInvalidParam, "data length %d exceeds code capacity %d bytes", len(data), bch.MaxDataBytes())
	}
	if len(ecc) < bch.ecc_bytes {
		return errors.Wrapf(ErrInvalidParam, "ecc buffer %d shorter than %d bytes", len(ecc), bch.ecc_bytes)
	}

	encode_bch(bch, data, ecc[:bch.ecc_bytes])
	return nil
}
