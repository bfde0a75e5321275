package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	bch "github.com/AstroForge-Incorporated/bchlib/src"
)

// bchdecode - verify a file against the parity produced by bchencode,
// reporting (and optionally repairing) located bit errors per block.
//
// Exit status: 0 when every block is clean or correctable (repaired in
// place only with --repair), 2 when any block is uncorrectable.

func main() {
	var gfOrder = pflag.IntP("gf-order", "m", 8, "Galois field order m; codeword length is 2^m - 1 bits.")
	var strength = pflag.IntP("correct", "t", 4, "Maximum number of correctable bit errors per block.")
	var prim = pflag.Uint32P("prim", "p", 0, "Primitive polynomial override.  0 selects the published default for m.")
	var profilesPath = pflag.StringP("profiles", "c", "", "YAML file of named code profiles.")
	var codeName = pflag.StringP("code", "n", "", "Code profile name to use from the profiles file.")
	var eccPath = pflag.StringP("ecc", "e", "", "Parity file; defaults to <input>.ecc.")
	var repair = pflag.BoolP("repair", "r", false, "Write the corrected data back to the input file.")
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

	var eccFile = *eccPath
	if eccFile == "" {
		eccFile = input + ".ecc"
	}
	var parity, eccErr = os.ReadFile(eccFile)
	if eccErr != nil {
		log.Fatal("Cannot read parity", "file", eccFile, "error", eccErr)
	}

	var blockSize = codec.DataBits() / 8
	if blockSize == 0 {
		log.Fatal("Code leaves no room for a whole data byte", "data_bits", codec.DataBits())
	}
	var eccBytes = codec.ECCBytes()
	var errloc = make([]uint32, codec.T())

	var nblocks = 0
	var corrected = 0
	var failed = 0
	for off := 0; off < len(data) || nblocks == 0; off += blockSize {
		if (nblocks+1)*eccBytes > len(parity) {
			log.Fatal("Parity file too short", "blocks", nblocks+1, "parity_bytes", len(parity))
		}
		var block = data[off:min(off+blockSize, len(data))]
		var ecc = parity[nblocks*eccBytes : (nblocks+1)*eccBytes]

		var nerr, decodeErr = codec.Decode(block, ecc, errloc)
		switch {
		case decodeErr != nil:
			log.Error("Block is unrecoverable", "block", nblocks, "error", decodeErr)
			failed++
		case nerr > 0:
			codec.Correct(block, ecc, errloc[:nerr])
			log.Warn("Corrected block", "block", nblocks, "errors", nerr, "positions", errloc[:nerr])
			corrected += nerr
		}
		nblocks++
	}

	if *repair && corrected > 0 && failed == 0 {
		if writeErr := os.WriteFile(input, data, 0644); writeErr != nil {
			log.Fatal("Cannot write repaired data", "file", input, "error", writeErr)
		}
		log.Info("Repaired in place", "file", input)
	}

	log.Info("Checked", "file", input, "blocks", nblocks, "corrected_bits", corrected, "failed_blocks", failed)

	if failed > 0 {
		os.Exit(2)
	}
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
