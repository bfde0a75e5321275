package bch

import (
	"fmt"
	"strings"
)

// Polynomial over GF(2^m): degree plus a dense coefficient slice with
// c[deg] != 0, except for the zero polynomial (deg = 0, c[0] = 0).
// Scratch polynomials are allocated once with fixed capacity.
type gf_poly struct {
	deg int
	c   []uint32
}

func gf_poly_alloc(max_deg int) *gf_poly {
	return &gf_poly{deg: 0, c: make([]uint32, max_deg+1)}
}

func gf_poly_copy(dst *gf_poly, src *gf_poly) {
	dst.deg = src.deg
	copy(dst.c[:src.deg+1], src.c[:src.deg+1])
}

// fresh polynomial holding the same value, for factors that must outlive
// the shared scratch slots during the factoring recursion
func gf_poly_clone(src *gf_poly) *gf_poly {
	var p = gf_poly_alloc(src.deg)
	gf_poly_copy(p, src)
	return p
}

func gf_poly_reset(p *gf_poly) {
	p.deg = 0
	clear(p.c)
}

// trace form, coefficients in log notation
func gf_poly_str(bch *BCH, p *gf_poly) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "deg=%d", p.deg)
	for i := p.deg; i >= 0; i-- {
		if p.c[i] != 0 {
			fmt.Fprintf(&sb, " a^%d.X^%d", a_log(bch, p.c[i]), i)
		}
	}
	return sb.String()
}

// store polynomial a normalized by its leading coefficient, as exponents:
// rep[i] = log(c_i / c_deg), or -1 for a zero coefficient
func gf_poly_logrep(bch *BCH, a *gf_poly, rep []int) {
	var d = a.deg
	var l = bch.n - a_log(bch, a.c[d])

	for i := 0; i < d; i++ {
		if a.c[i] != 0 {
			rep[i] = mod_s(bch, a_log(bch, a.c[i])+l)
		} else {
			rep[i] = -1
		}
	}
}

/*-------------------------------------------------------------
 *
 * Name:	gf_poly_mod
 *
 * Purpose:	Reduce a modulo b, in place.  rep may carry a precomputed
 *		log representation of b; when nil it is computed into the
 *		codec's cache.
 *
 *		The quotient coefficients (scaled by the leading
 *		coefficient of b) are left untouched above b.deg so that
 *		gf_poly_div can pick them up.
 *
 *--------------------------------------------------------------*/

func gf_poly_mod(bch *BCH, a *gf_poly, b *gf_poly, rep []int) {
	var d = b.deg

	if a.deg < d {
		return
	}

	if rep == nil {
		rep = bch.cache
		gf_poly_logrep(bch, b, rep)
	}

	var c = a.c
	for j := a.deg; j >= d; j-- {
		if c[j] == 0 {
			continue
		}
		var la = a_log(bch, c[j])
		var p = j - d
		for i := 0; i < d; i++ {
			var r = rep[i]
			if r >= 0 {
				c[p+i] ^= bch.a_pow_tab[mod_s(bch, r+la)]
			}
		}
	}

	a.deg = d - 1
	for a.c[a.deg] == 0 && a.deg > 0 {
		a.deg--
	}
}

// a / b; a is clobbered (it holds a mod b afterwards).  The quotient is
// exact up to a constant factor, which root finding does not care about.
func gf_poly_div(bch *BCH, a *gf_poly, b *gf_poly, q *gf_poly) {
	if a.deg >= b.deg {
		q.deg = a.deg - b.deg
		gf_poly_mod(bch, a, b, nil)
		copy(q.c[:q.deg+1], a.c[b.deg:b.deg+q.deg+1])
	} else {
		q.deg = 0
		q.c[0] = 0
	}
}

// Euclidean gcd, destructive on both arguments; the result aliases one
// of them.
func gf_poly_gcd(bch *BCH, a *gf_poly, b *gf_poly) *gf_poly {
	if a.deg < b.deg {
		a, b = b, a
	}

	for b.deg > 0 {
		gf_poly_mod(bch, a, b, nil)
		a, b = b, a
	}

	if g_bch_debug > 0 {
		dbg("gcd=%s", gf_poly_str(bch, a))
	}

	return a
}
