package bch

import (
	"github.com/pkg/errors"
)

/*-------------------------------------------------------------
 *
 * Name:	decode_bch
 *
 * Purpose:	Locate bit errors from any of the four supported input
 *		configurations:
 *
 *		data + recv_ecc		recompute parity, XOR, syndromes.
 *		calc_ecc + recv_ecc	XOR, syndromes.
 *		calc_ecc alone		already XORed, syndromes.
 *		syn			syndromes supplied, skip the rest.
 *
 * Outputs:	errloc - bit positions in the (data || ecc) codeword.
 *		Position p < 8*data_len selects bit (p & 7) of
 *		data[p / 8]; higher positions continue into the parity
 *		bytes the same way.
 *
 * Returns:	Number of located errors, 0 for a clean block, einval or
 *		ebadmsg on failure.  errloc contents are unspecified on
 *		failure.
 *
 *--------------------------------------------------------------*/

func decode_bch(bch *BCH, data []byte, data_len int, recv_ecc []byte, calc_ecc []byte, syn []uint32, errloc []uint32) int {
	if data_len > bch.MaxDataBytes() {
		return einval
	}

	if syn == nil {
		if calc_ecc == nil {
			// compute the expected parity into the internal buffer
			if data == nil || recv_ecc == nil {
				return einval
			}
			encode_bch(bch, data, nil)
		} else {
			load_ecc8(bch, bch.ecc_buf, calc_ecc)
		}

		if recv_ecc != nil {
			load_ecc8(bch, bch.ecc_buf2, recv_ecc)
			// XOR received and calculated parity
			var sum uint32
			for i := 0; i < bch.ecc_words; i++ {
				bch.ecc_buf[i] ^= bch.ecc_buf2[i]
				sum |= bch.ecc_buf[i]
			}
			if sum == 0 {
				// no error found
				return 0
			}
		}

		if g_bch_debug >= 3 {
			store_ecc8(bch, bch.eccbuf, bch.ecc_buf)
			dbg("parity delta, %d bits:", bch.ecc_bits)
			hex_dump(bch.eccbuf)
		}

		compute_syndromes(bch, bch.ecc_buf, bch.syn)
		syn = bch.syn
	}

	var err = compute_error_locator_polynomial(bch, syn)
	if err > 0 {
		var nroots = find_poly_roots(bch, 1, bch.elp, errloc)
		if err != nroots {
			// algebraic inconsistency, independent of the range check below
			err = -1
		}
	}
	if err > 0 {
		// re-express each root exponent as a correctable bit position
		var nbits = data_len*8 + bch.ecc_bits
		for i := 0; i < err; i++ {
			if int(errloc[i]) >= nbits {
				err = -1
				break
			}
			errloc[i] = uint32(nbits-1) - errloc[i]
			errloc[i] = (errloc[i] &^ 7) | (7 - (errloc[i] & 7))
		}
	}

	if err < 0 {
		return ebadmsg
	}
	return err
}

/*-------------------------------------------------------------
 *
 * Name:	Decode
 *
 * Purpose:	Locate bit errors given the data and the received parity.
 *		Nothing is modified; pass the locations to Correct to
 *		repair the buffers.
 *
 * Inputs:	errloc must have room for at least t entries.
 *
 * Returns:	The number of errors located (0 meaning the block is
 *		clean) and nil, or an error wrapping ErrInvalidParam /
 *		ErrBadMessage.  errloc contents are unspecified on error.
 *
 *--------------------------------------------------------------*/

func (bch *BCH) Decode(data []byte, recv_ecc []byte, errloc []uint32) (int, error) {
	if len(recv_ecc) < bch.ecc_bytes {
		return 0, errors.Wrapf(ErrInvalidParam, "received ecc %d shorter than %d bytes", len(recv_ecc), bch.ecc_bytes)
	}
	if len(errloc) < bch.t {
		return 0, errors.Wrapf(ErrInvalidParam, "errloc needs room for %d entries", bch.t)
	}
	return ret(decode_bch(bch, data, len(data), recv_ecc, nil, nil, errloc))
}

// DecodeECC is Decode for callers that already hold the recomputed
// parity of the (possibly corrupted) data, skipping the encode pass.
func (bch *BCH) DecodeECC(data_len int, calc_ecc []byte, recv_ecc []byte, errloc []uint32) (int, error) {
	if len(calc_ecc) < bch.ecc_bytes || len(recv_ecc) < bch.ecc_bytes {
		return 0, errors.Wrapf(ErrInvalidParam, "ecc buffers shorter than %d bytes", bch.ecc_bytes)
	}
	if len(errloc) < bch.t {
		return 0, errors.Wrapf(ErrInvalidParam, "errloc needs room for %d entries", bch.t)
	}
	return ret(decode_bch(bch, nil, data_len, recv_ecc, calc_ecc, nil, errloc))
}

// DecodeDelta takes the XOR of the computed and received parity
// directly.
func (bch *BCH) DecodeDelta(data_len int, ecc_delta []byte, errloc []uint32) (int, error) {
	if len(ecc_delta) < bch.ecc_bytes {
		return 0, errors.Wrapf(ErrInvalidParam, "ecc delta shorter than %d bytes", bch.ecc_bytes)
	}
	if len(errloc) < bch.t {
		return 0, errors.Wrapf(ErrInvalidParam, "errloc needs room for %d entries", bch.t)
	}
	return ret(decode_bch(bch, nil, data_len, nil, ecc_delta, nil, errloc))
}

// DecodeSyndromes runs only the error-locator and root-finding stages
// on 2t externally computed syndromes.
func (bch *BCH) DecodeSyndromes(data_len int, syn []uint32, errloc []uint32) (int, error) {
	if len(syn) < 2*bch.t {
		return 0, errors.Wrapf(ErrInvalidParam, "need %d syndromes", 2*bch.t)
	}
	if len(errloc) < bch.t {
		return 0, errors.Wrapf(ErrInvalidParam, "errloc needs room for %d entries", bch.t)
	}
	return ret(decode_bch(bch, nil, data_len, nil, nil, syn[:2*bch.t], errloc))
}

/*-------------------------------------------------------------
 *
 * Name:	Correct
 *
 * Purpose:	Flip the bits flagged by a successful decode.  Positions
 *		in the parity region are applied to ecc when it is
 *		non-nil.  Pure XOR, so applying the same locations twice
 *		restores the corrupted buffers.
 *
 *--------------------------------------------------------------*/

func (bch *BCH) Correct(data []byte, ecc []byte, errloc []uint32) {
	for _, p := range errloc {
		if int(p) < 8*len(data) {
			data[p/8] ^= 1 << (p & 7)
		} else if ecc != nil {
			var q = int(p) - 8*len(data)
			if q/8 < len(ecc) {
				ecc[q/8] ^= 1 << (q & 7)
			}
		}
	}
}
