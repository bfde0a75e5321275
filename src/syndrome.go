package bch

/*-------------------------------------------------------------
 *
 * Name:	compute_syndromes
 *
 * Purpose:	Evaluate the ecc bit-polynomial at alpha^1 .. alpha^(2t).
 *		Scan the set bits and accumulate alpha^(j*pos) into the
 *		odd-index syndromes; the even ones come free from
 *		S_2j = S_j^2, squaring being linear in characteristic 2.
 *
 * Inputs:	ecc - ecc_bits bits in big-endian 32-bit limbs.  Unused
 *		bits beyond ecc_bits in the last limb are cleared here
 *		before use.
 *
 * Outputs:	syn[j] = V(alpha^(j+1)) for j = 0..2t-1.
 *
 *--------------------------------------------------------------*/

func compute_syndromes(bch *BCH, ecc []uint32, syn []uint32) {
	var t = bch.t
	var s = bch.ecc_bits

	var mb = s & 31
	if mb != 0 {
		ecc[s/32] &= ^uint32((uint32(1) << (32 - mb)) - 1)
	}

	clear(syn[:2*t])

	var idx = 0
	for {
		var poly = ecc[idx]
		idx++
		s -= 32
		for poly != 0 {
			var i = deg(poly)
			for j := 0; j < 2*t; j += 2 {
				syn[j] ^= a_pow(bch, (j+1)*(i+s))
			}
			poly ^= 1 << uint(i)
		}
		if s <= 0 {
			break
		}
	}

	for j := 0; j < t; j++ {
		syn[2*j+1] = gf_sqr(bch, syn[j])
	}
}
