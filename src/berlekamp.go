package bch

/*-------------------------------------------------------------
 *
 * Name:	compute_error_locator_polynomial
 *
 * Purpose:	Simplified binary Berlekamp-Massey synthesis of the error
 *		locator Lambda(X) from the syndrome sequence.  Only the
 *		even-step discrepancies exist for a binary code, so the
 *		iteration advances two syndromes at a time.
 *
 * Returns:	deg Lambda, or -1 when it exceeds t (uncorrectable).
 *		The loop guard still runs an iteration at deg Lambda == t,
 *		so the degree can pass t before the final check rejects
 *		it; that check is load-bearing, keep both as they are.
 *
 *--------------------------------------------------------------*/

func compute_error_locator_polynomial(bch *BCH, syn []uint32) int {
	var t = bch.t
	var n = bch.n
	var elp = bch.elp
	var pelp = bch.poly_2t[0]
	var elp_copy = bch.poly_2t[1]

	var d = syn[0]
	var pd uint32 = 1
	var pp = -1

	gf_poly_reset(pelp)
	gf_poly_reset(elp)
	pelp.c[0] = 1
	elp.c[0] = 1

	for i := 0; i < t && elp.deg <= t; i++ {
		if d != 0 {
			var k = 2*i - pp
			gf_poly_copy(elp_copy, elp)

			// Lambda(X) += (d/pd) * X^k * Lambda_prev(X)
			var scale = a_log(bch, d) + n - a_log(bch, pd)
			for j := 0; j <= pelp.deg; j++ {
				if pelp.c[j] != 0 {
					elp.c[j+k] ^= a_pow(bch, scale+a_log(bch, pelp.c[j]))
				}
			}

			// when the degree grew, the pre-update state becomes the
			// new reference for later corrections
			var grown = pelp.deg + k
			if grown > elp.deg {
				elp.deg = grown
				gf_poly_copy(pelp, elp_copy)
				pd = d
				pp = 2 * i
			}
		}

		// next discrepancy
		if i < t-1 {
			d = syn[2*i+2]
			for j := 1; j <= elp.deg; j++ {
				d ^= gf_mul(bch, elp.c[j], syn[2*i+2-j])
			}
		}
	}

	if g_bch_debug > 0 {
		dbg("elp=%s", gf_poly_str(bch, elp))
	}

	if elp.deg > t {
		return -1
	}
	return elp.deg
}
