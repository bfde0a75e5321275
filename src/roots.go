package bch

// Closed-form root solvers for the low polynomial degrees the BTZ
// recursion bottoms out in.  Roots are returned as error-location
// exponents: the value e such that alpha^e locates the error, which is
// the log of the INVERSE of the polynomial root.

func find_poly_deg1_roots(bch *BCH, poly *gf_poly, roots []uint32) int {
	var n = 0

	if poly.c[0] != 0 {
		// bX + c: the root is c/b
		roots[n] = uint32(mod_s(bch, bch.n-a_log(bch, poly.c[0])+a_log(bch, poly.c[1])))
		n++
	}
	return n
}

/*-------------------------------------------------------------
 *
 * Name:	find_poly_deg2_roots
 *
 * Purpose:	Solve aX^2 + bX + c.  The substitution X = (b/a)Z reduces
 *		it to Z^2 + Z = u with u = ac/b^2; summing the trace base
 *		xi_tab over the set bits of u produces a candidate, kept
 *		only if it verifies.  The root pair is (r, r+1), unmapped
 *		through the substitution.
 *
 *--------------------------------------------------------------*/

func find_poly_deg2_roots(bch *BCH, poly *gf_poly, roots []uint32) int {
	var n = 0

	if poly.c[0] != 0 && poly.c[1] != 0 {
		var l0 = a_log(bch, poly.c[0])
		var l1 = a_log(bch, poly.c[1])
		var l2 = a_log(bch, poly.c[2])

		// u = ac/b^2
		var u = a_pow(bch, l0+l2+2*(bch.n-l1))

		var r uint32
		var v = u
		for v != 0 {
			var i = deg(v)
			r ^= bch.xi_tab[i]
			v ^= 1 << uint(i)
		}

		// the basis sum solves Z^2 + Z = u only when u has zero trace
		if (gf_sqr(bch, r) ^ r) == u {
			roots[n] = uint32(modulo(bch, 2*bch.n-l1-a_log(bch, r)+l2))
			n++
			roots[n] = uint32(modulo(bch, 2*bch.n-l1-a_log(bch, r^1)+l2))
			n++
		}
	}
	return n
}

/*-------------------------------------------------------------
 *
 * Name:	find_poly_deg3_roots
 *
 * Purpose:	Solve a cubic.  Normalized to X^3 + a2X^2 + b2X + c2 and
 *		multiplied by (X + a2), it becomes the affine quartic
 *		X^4 + aX^2 + bX + c with a = a2^2 + b2, b = a2b2 + c2,
 *		c = a2c2.  The spurious root a2 is discarded afterwards.
 *
 *--------------------------------------------------------------*/

func find_poly_deg3_roots(bch *BCH, poly *gf_poly, roots []uint32) int {
	var n = 0
	var tmp [4]uint32

	if poly.c[0] != 0 {
		var e3 = poly.c[3]
		var c2 = gf_div(bch, poly.c[0], e3)
		var b2 = gf_div(bch, poly.c[1], e3)
		var a2 = gf_div(bch, poly.c[2], e3)

		var c = gf_mul(bch, a2, c2)
		var b = gf_mul(bch, a2, b2) ^ c2
		var a = gf_sqr(bch, a2) ^ b2

		if find_affine4_roots(bch, a, b, c, tmp[:]) == 4 {
			for i := 0; i < 4; i++ {
				if tmp[i] != a2 {
					roots[n] = uint32(a_ilog(bch, tmp[i]))
					n++
				}
			}
		}
	}
	return n
}

/*-------------------------------------------------------------
 *
 * Name:	find_poly_deg4_roots
 *
 * Purpose:	Solve a general quartic.  Normalize to monic
 *		X^4 + aX^3 + bX^2 + cX + d; when a cubic term is present,
 *		first remove the linear term with Z = X + e where
 *		e^2 = c/a (an exact half-log in GF(2^m)), then invert
 *		through Y = 1/X to reach affine form.  Every substitution
 *		is unmapped from the affine roots.
 *
 *--------------------------------------------------------------*/

func find_poly_deg4_roots(bch *BCH, poly *gf_poly, roots []uint32) int {
	if poly.c[0] == 0 {
		return 0
	}

	var e4 = poly.c[4]
	var d = gf_div(bch, poly.c[0], e4)
	var c = gf_div(bch, poly.c[1], e4)
	var b = gf_div(bch, poly.c[2], e4)
	var a = gf_div(bch, poly.c[3], e4)

	var a2, b2, c2 uint32
	var e uint32

	if a != 0 {
		if c != 0 {
			// eliminate the linear term: Z = X + e with e^2 = c/a
			var f = gf_div(bch, c, a)
			var l = a_log(bch, f)
			if l&1 != 0 {
				l += bch.n
			}
			e = a_pow(bch, l/2)
			d = a_pow(bch, 2*l) ^ gf_mul(bch, b, f) ^ d
			b = gf_mul(bch, a, e) ^ b
		}
		if d == 0 {
			// assume all roots have multiplicity 1
			return 0
		}
		// Y = 1/X turns X^4 + aX^3 + bX^2 + d into affine form
		c2 = gf_inv(bch, d)
		b2 = gf_div(bch, a, d)
		a2 = gf_div(bch, b, d)
	} else {
		// polynomial is already affine
		c2 = d
		b2 = c
		a2 = b
	}

	if find_affine4_roots(bch, a2, b2, c2, roots) != 4 {
		return 0
	}

	for i := 0; i < 4; i++ {
		// undo the substitutions
		var f = roots[i]
		if a != 0 {
			f = gf_inv(bch, f)
		}
		roots[i] = uint32(a_ilog(bch, f^e))
	}
	return 4
}

/*-------------------------------------------------------------
 *
 * Name:	find_poly_roots
 *
 * Purpose:	BTZ root finding: closed forms up to degree 4, otherwise a
 *		Berlekamp-Trace split with trace index k and recursion on
 *		the factors with k+1.  Trace indexes past m mean the
 *		polynomial has no roots in the field (decoding failure).
 *
 * Returns:	The number of error-location exponents written to roots.
 *
 *--------------------------------------------------------------*/

func find_poly_roots(bch *BCH, k int, poly *gf_poly, roots []uint32) int {
	var cnt = 0

	switch poly.deg {
	case 1:
		cnt = find_poly_deg1_roots(bch, poly, roots)
	case 2:
		cnt = find_poly_deg2_roots(bch, poly, roots)
	case 3:
		cnt = find_poly_deg3_roots(bch, poly, roots)
	case 4:
		cnt = find_poly_deg4_roots(bch, poly, roots)
	default:
		if poly.deg > 0 && k <= bch.m {
			var f1, f2 = factor_polynomial(bch, k, poly)
			if f1 != nil {
				cnt += find_poly_roots(bch, k+1, f1, roots)
			}
			if f2 != nil {
				cnt += find_poly_roots(bch, k+1, f2, roots[cnt:])
			}
		}
	}
	return cnt
}
