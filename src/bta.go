package bch

/*-------------------------------------------------------------
 *
 * Name:	compute_trace_bk_mod
 *
 * Purpose:	Compute Tr(alpha^k * X) mod f, where
 *		Tr_k(X) = sum of (alpha^k * X)^(2^i) for i = 0..m-1,
 *		by repeated squaring of z = alpha^k * X with a reduction
 *		modulo f after every squaring.
 *
 * Inputs:	z	- scratch polynomial, capacity 2 deg f.
 *
 * Outputs:	out	- the trace polynomial, deg < deg f.
 *
 *--------------------------------------------------------------*/

func compute_trace_bk_mod(bch *BCH, k int, f *gf_poly, z *gf_poly, out *gf_poly) {
	var m = bch.m

	// z holds z^(2^i) mod f
	z.deg = 1
	z.c[0] = 0
	z.c[1] = bch.a_pow_tab[k]

	out.deg = 0
	clear(out.c[:f.deg+1])

	// the log representation of f is needed at every reduction
	gf_poly_logrep(bch, f, bch.cache)

	for i := 0; i < m; i++ {
		// accumulate the current power, then square it in place
		for j := z.deg; j >= 0; j-- {
			out.c[j] ^= z.c[j]
			z.c[2*j] = gf_sqr(bch, z.c[j])
			z.c[2*j+1] = 0
		}
		if z.deg > out.deg {
			out.deg = z.deg
		}

		if i < m-1 {
			z.deg *= 2
			gf_poly_mod(bch, z, f, bch.cache)
		}
	}

	for out.c[out.deg] == 0 && out.deg > 0 {
		out.deg--
	}

	if g_bch_debug > 0 {
		dbg("Tr(a^%d.X) mod f = %s", k, gf_poly_str(bch, out))
	}
}

/*-------------------------------------------------------------
 *
 * Name:	factor_polynomial
 *
 * Purpose:	Split f via g = gcd(f, Tr(alpha^k * X) mod f).  When
 *		0 < deg g < deg f, both g and f/g are returned as fresh
 *		polynomials so the recursion can keep reusing the shared
 *		scratch slots.  When the trace gives no information, f is
 *		handed back alone and the caller retries with k+1.
 *
 *--------------------------------------------------------------*/

func factor_polynomial(bch *BCH, k int, f *gf_poly) (*gf_poly, *gf_poly) {
	var f2 = bch.poly_2t[0]
	var q = bch.poly_2t[1]
	var tk = bch.poly_2t[2]
	var z = bch.poly_2t[3]

	if g_bch_debug > 0 {
		dbg("factoring %s with k=%d", gf_poly_str(bch, f), k)
	}

	compute_trace_bk_mod(bch, k, f, z, tk)

	if tk.deg > 0 {
		// the gcd is destructive, work on a copy of f
		gf_poly_copy(f2, f)
		var g = gf_poly_gcd(bch, f2, tk)
		if g.deg < f.deg {
			// f splits as g * (f/g)
			var gg = gf_poly_clone(g)
			gf_poly_div(bch, f, g, q)
			return gg, gf_poly_clone(q)
		}
	}

	return f, nil
}
