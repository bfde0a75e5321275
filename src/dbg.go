package bch

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Debug tracing is not part of the codec contract.  It routes through a
// swappable structured logger so applications can fold the traces into
// their own output.

var g_bch_debug = 0

var g_bch_logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "bch"})

/*-------------------------------------------------------------
 *
 * Name:	SetDebug
 *
 * Purpose:	Control the level of informational / debug messages.
 *
 *		0 (default)	Only errors, via return values.
 *		1		Algorithm stage traces: error locator,
 *				trace polynomials, factoring splits.
 *		3		Also hex dump the parity delta that decode
 *				computes syndromes from.
 *
 *--------------------------------------------------------------*/

func SetDebug(level int) {
	g_bch_debug = level
	if level > 0 {
		g_bch_logger.SetLevel(log.DebugLevel)
	}
}

func GetDebug() int {
	return g_bch_debug
}

// SetLogger replaces the trace sink.
func SetLogger(logger *log.Logger) {
	g_bch_logger = logger
}

func dbg(format string, a ...any) {
	if g_bch_debug > 0 {
		g_bch_logger.Debugf(format, a...)
	}
}

// hex_dump traces p at 16 bytes per row with printable ASCII alongside.
func hex_dump(p []byte) {
	var offset = 0

	for len(p) > 0 {
		var n = min(len(p), 16)
		var line strings.Builder

		fmt.Fprintf(&line, "%03x: ", offset)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&line, " %02x", p[i])
		}
		for i := n; i < 16; i++ {
			line.WriteString("   ")
		}
		line.WriteString("  ")
		for i := 0; i < n; i++ {
			if p[i] >= 0x20 && p[i] <= 0x7E {
				line.WriteByte(p[i])
			} else {
				line.WriteByte('.')
			}
		}

		dbg("%s", line.String())
		p = p[n:]
		offset += n
	}
}
