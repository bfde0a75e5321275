package bch

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitFacadeMatchesByteEncoder(t *testing.T) {
	// 223 payload bits = 7 leading zero bits + 27 bytes, so the packed
	// buffer is one zero byte followed by the byte-API input and the
	// parities must agree
	var codec, newErr = New(8, 4, 0)
	require.NoError(t, newErr)
	require.Equal(t, 223, codec.DataBits())

	var rng = rand.New(rand.NewSource(23))
	var data = make([]byte, 27)
	rng.Read(data)

	var dataBits = make([]byte, codec.DataBits())
	for i := 0; i < 8*len(data); i++ {
		dataBits[7+i] = (data[i/8] >> (7 - (i & 7))) & 1
	}

	var eccBits = make([]byte, codec.ECCBits())
	require.NoError(t, codec.EncodeBits(dataBits, eccBits))

	var ecc = make([]byte, codec.ECCBytes())
	require.NoError(t, codec.Encode(data, ecc))

	var packed = make([]byte, codec.ECCBytes())
	for j, bit := range eccBits {
		if bit != 0 {
			packed[j/8] |= 1 << (7 - (j & 7))
		}
	}
	assert.Equal(t, ecc, packed)
}

func TestDecodeBitsRoundTrip(t *testing.T) {
	var codec, newErr = New(5, 2, 0)
	require.NoError(t, newErr)

	var rng = rand.New(rand.NewSource(29))
	var nbits = codec.DataBits()

	var dataBits = make([]byte, nbits)
	for i := range dataBits {
		dataBits[i] = byte(rng.Intn(2))
	}

	var eccBits = make([]byte, codec.ECCBits())
	require.NoError(t, codec.EncodeBits(dataBits, eccBits))

	// clean round trip
	var errloc = make([]uint32, codec.T())
	var nerr, decodeErr = codec.DecodeBits(dataBits, eccBits, errloc)
	require.NoError(t, decodeErr)
	assert.Equal(t, 0, nerr)

	// one data bit and one parity bit flipped
	dataBits[13] ^= 1
	eccBits[4] ^= 1

	nerr, decodeErr = codec.DecodeBits(dataBits, eccBits, errloc)
	require.NoError(t, decodeErr)
	require.Equal(t, 2, nerr)
	assert.ElementsMatch(t, []uint32{13, uint32(nbits + 4)}, errloc[:nerr])

	// flipping the reported indices restores both streams
	for _, ix := range errloc[:nerr] {
		if int(ix) < nbits {
			dataBits[ix] ^= 1
		} else {
			eccBits[int(ix)-nbits] ^= 1
		}
	}

	nerr, decodeErr = codec.DecodeBits(dataBits, eccBits, errloc)
	require.NoError(t, decodeErr)
	assert.Equal(t, 0, nerr)
}

func TestBitFacadeRejectsWrongSizes(t *testing.T) {
	var codec, newErr = New(5, 2, 0)
	require.NoError(t, newErr)

	var eccBits = make([]byte, codec.ECCBits())
	var encodeErr = codec.EncodeBits(make([]byte, codec.DataBits()-1), eccBits)
	assert.ErrorIs(t, encodeErr, ErrInvalidParam)

	var errloc = make([]uint32, codec.T())
	var _, decodeErr = codec.DecodeBits(make([]byte, codec.DataBits()+1), eccBits, errloc)
	assert.ErrorIs(t, decodeErr, ErrInvalidParam)
}
