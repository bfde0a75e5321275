// Package bch implements a runtime-configurable binary BCH
// (Bose-Chaudhuri-Hocquenghem) error-correcting codec.  The Galois field
// order m (5..15) and the correction capability t are chosen when the
// codec is built and fully determine the code: codewords are
// n = 2^m - 1 bits long and up to t bit errors per codeword can be
// located and repaired.
//
// Encoding streams data bytes through a 32-bit-parallel LFSR built over
// four precomputed remainder tables.  Decoding computes syndromes,
// synthesizes the error-locator polynomial with the binary
// Berlekamp-Massey algorithm, and finds its roots with the Berlekamp
// Trace / Zinoviev recursion (closed forms up to degree 4).
package bch

import (
	"github.com/pkg/errors"
)

const (
	min_m = 5
	max_m = 15
)

// Published default primitive polynomials for m = 5..15.
var prim_poly_tab = [max_m - min_m + 1]uint32{
	0x25, 0x43, 0x83, 0x11d, 0x211, 0x409, 0x805, 0x1053, 0x201b, 0x402b, 0x8003,
}

// BCH is the control structure for one (m, t, prim_poly) code.  The
// lookup tables are immutable after New; encode and decode mutate only
// the scratch buffers, so calls on the same codec must be serialized.
// Distinct codecs are fully independent.
type BCH struct {
	m int // Galois field order.
	n int // Codeword length in bits, 2^m - 1.
	t int // Maximum number of correctable bit errors.

	ecc_bits  int // Exact bit length of the generator polynomial remainder.
	ecc_bytes int // Parity bytes emitted per codeword.
	ecc_words int // 32-bit limbs holding the parity register.

	a_pow_tab []uint32 // a_pow_tab[i] = alpha^i; a_pow_tab[n] = 1.
	a_log_tab []uint32 // Inverse of a_pow_tab on 1..n; entry 0 is reserved.
	mod8_tab  []uint32 // 4 byte lanes x 256 values x ecc_words remainder limbs.
	xi_tab    []uint32 // Basis for solving z^2 + z = u, see build_deg2_base.

	// Scratch, sized by (m, t) once at construction.
	ecc_buf  []uint32
	ecc_buf2 []uint32
	syn      []uint32
	cache    []int
	elp      *gf_poly
	poly_2t  [4]*gf_poly

	// Staging for the bit-granularity API.
	databuf []byte
	eccbuf  []byte
	eccbuf2 []byte
}

/*-------------------------------------------------------------
 *
 * Name:	New
 *
 * Purpose:	Build the control structure for a (m, t, prim_poly) code.
 *		This is the expensive step: Galois field tables, the
 *		generator polynomial, the encoder remainder tables and the
 *		quadratic-solver basis are all precomputed here.
 *
 * Inputs:	m		- Galois field order, 5 to 15.
 *
 *		t		- Maximum number of bit errors to correct.
 *				  Must satisfy m*t < 2^m - 1.
 *
 *		prim_poly	- Primitive polynomial for GF(2^m) as an
 *				  (m+1)-bit integer, or 0 to select the
 *				  published default for this m.
 *
 * Returns:	The codec, or an error wrapping ErrInvalidParam when the
 *		parameters or the polynomial are unusable.
 *
 *--------------------------------------------------------------*/

func New(m int, t int, prim_poly uint32) (*BCH, error) {
	if m < min_m || m > max_m {
		return nil, errors.Wrapf(ErrInvalidParam, "m=%d out of range [%d,%d]", m, min_m, max_m)
	}
	if t < 1 || m*t >= (1<<m)-1 {
		return nil, errors.Wrapf(ErrInvalidParam, "t=%d unusable for m=%d", t, m)
	}

	if prim_poly == 0 {
		prim_poly = prim_poly_tab[m-min_m]
	}

	var bch = &BCH{
		m: m,
		t: t,
		n: (1 << m) - 1,
	}

	bch.a_pow_tab = make([]uint32, bch.n+1)
	bch.a_log_tab = make([]uint32, bch.n+1)
	if build_gf_tables(bch, prim_poly) < 0 {
		return nil, errors.Wrapf(ErrInvalidParam, "polynomial 0x%x is not primitive of degree %d", prim_poly, m)
	}

	// The generator polynomial publishes ecc_bits; everything after is
	// sized from it.
	var genpoly = compute_generator_polynomial(bch)

	bch.mod8_tab = make([]uint32, 4*256*bch.ecc_words)
	build_mod8_tables(bch, genpoly)

	bch.xi_tab = make([]uint32, m)
	if build_deg2_base(bch) < 0 {
		// cannot happen for a valid field, but check anyway
		return nil, errors.Wrapf(ErrInternal, "no degree-2 trace base for m=%d", m)
	}

	bch.ecc_buf = make([]uint32, bch.ecc_words)
	bch.ecc_buf2 = make([]uint32, bch.ecc_words)
	bch.syn = make([]uint32, 2*t)
	bch.cache = make([]int, 2*t)
	bch.elp = gf_poly_alloc(2 * t)
	for i := range bch.poly_2t {
		bch.poly_2t[i] = gf_poly_alloc(2 * t)
	}

	var data_bits = bch.n - bch.ecc_bits
	bch.databuf = make([]byte, (data_bits+7)/8)
	bch.eccbuf = make([]byte, bch.ecc_bytes)
	bch.eccbuf2 = make([]byte, bch.ecc_bytes)

	dbg("bch(%d,%d): n=%d ecc_bits=%d", m, t, bch.n, bch.ecc_bits)

	return bch, nil
}

// M returns the Galois field order.
func (bch *BCH) M() int { return bch.m }

// T returns the maximum number of correctable bit errors.
func (bch *BCH) T() int { return bch.t }

// N returns the codeword length in bits, 2^m - 1.
func (bch *BCH) N() int { return bch.n }

// ECCBits returns the exact parity length in bits.  It can be smaller
// than m*t when the generator polynomial is shorter than its upper
// bound.
func (bch *BCH) ECCBits() int { return bch.ecc_bits }

// ECCBytes returns the number of parity bytes produced by Encode.
func (bch *BCH) ECCBytes() int { return bch.ecc_bytes }

// DataBits returns the exact payload capacity of the bit-granularity
// API, n - ecc_bits.
func (bch *BCH) DataBits() int { return bch.n - bch.ecc_bits }

// MaxDataBytes returns the largest data length Encode and Decode
// accept: the code length rounded up to whole bytes.
func (bch *BCH) MaxDataBytes() int { return (bch.n + 7) / 8 }

// Free drops the table and scratch allocations so a caller keeping the
// struct alive does not pin the O(2^m * t) tables.  The codec must not
// be used afterwards.
func (bch *BCH) Free() {
	bch.a_pow_tab = nil
	bch.a_log_tab = nil
	bch.mod8_tab = nil
	bch.xi_tab = nil
	bch.ecc_buf = nil
	bch.ecc_buf2 = nil
	bch.syn = nil
	bch.cache = nil
	bch.elp = nil
	for i := range bch.poly_2t {
		bch.poly_2t[i] = nil
	}
	bch.databuf = nil
	bch.eccbuf = nil
	bch.eccbuf2 = nil
}
