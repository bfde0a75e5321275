package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	bch "github.com/AstroForge-Incorporated/bchlib/src"
)

// bchencode - split a file into code-sized blocks and emit the BCH
// parity bytes for each block, concatenated.  bchdecode is the second
// half of the pair.

func main() {
	var gfOrder = pflag.IntP("gf-order", "m", 8, "Galois field order m; codeword length is 2^m - 1 bits.")
	var strength = pflag.IntP("correct", "t", 4, "Maximum number of correctable bit errors per block.")
	var prim = pflag.Uint32P("prim", "p", 0, "Primitive polynomial override.  0 selects the published default for m.")
	var profilesPath = pflag.StringP("profiles", "c", "", "YAML file of named code profiles.")
	var codeName = pflag.StringP("code", "n", "", "Code profile name to use from the profiles file.")
	var output = pflag.StringP("output", "o", "", "Write parity bytes here rather than <input>.ecc.")
	var verbose = pflag.IntP("verbose", "v", 0, "Codec debug level.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")
	pflag.Parse()

	if *help || pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	bch.SetDebug(*verbose)

	var codec = buildCodec(*gfOrder, *strength, *prim, *profilesPath, *codeName)

	var input = pflag.Arg(0)
	var data, readErr = os.ReadFile(input)
	if readErr != nil {
		log.Fatal("Cannot read input", "file", input, "error", readErr)
	}

	// whole bytes of payload per block, leaving room for the parity
	var blockSize = codec.DataBits() / 8
	if blockSize == 0 {
		log.Fatal("Code leaves no room for a whole data byte", "data_bits", codec.DataBits())
	}
	var parity []byte
	var nblocks = 0
	for off := 0; off < len(data) || nblocks == 0; off += blockSize {
		var block = data[off:min(off+blockSize, len(data))]
		var ecc = make([]byte, codec.ECCBytes())
		if encodeErr := codec.Encode(block, ecc); encodeErr != nil {
			log.Fatal("Encoding failed", "block", nblocks, "error", encodeErr)
		}
		parity = append(parity, ecc...)
		nblocks++
	}

	var out = *output
	if out == "" {
		out = input + ".ecc"
	}
	if writeErr := os.WriteFile(out, parity, 0644); writeErr != nil {
		log.Fatal("Cannot write parity", "file", out, "error", writeErr)
	}

	log.Info("Encoded", "file", input, "bytes", len(data), "blocks", nblocks,
		"parity_bytes", len(parity), "output", out)
}

func buildCodec(m int, t int, prim uint32, profilesPath string, codeName string) *bch.BCH {
	if codeName != "" {
		if profilesPath == "" {
			log.Fatal("--code requires --profiles")
		}
		var profiles, loadErr = bch.LoadProfiles(profilesPath)
		if loadErr != nil {
			log.Fatal("Cannot load profiles", "error", loadErr)
		}
		var profile, findErr = bch.FindProfile(profiles, codeName)
		if findErr != nil {
			log.Fatal("Unknown code profile", "error", findErr)
		}
		var codec, newErr = profile.New()
		if newErr != nil {
			log.Fatal("Unusable code profile", "name", codeName, "error", newErr)
		}
		return codec
	}

	var codec, newErr = bch.New(m, t, prim)
	if newErr != nil {
		log.Fatal("Unusable code parameters", "m", m, "t", t, "error", newErr)
	}
	return codec
}
