package mintasset

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package's namespaced structured logger. Components compile,
// setup and proving/verification diagnostics all flow through it, tagged
// with a "component" field rather than a hand-rolled level enum.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().
	Timestamp().
	Str("component", "mintasset").
	Logger()

// LogCircuitStats records the compiled constraint system's size. Because
// this repository's twisted-Edwards and BLAKE2s gadgets are re-derived
// rather than reused from a published library, the exact constraint count a
// reference implementation would produce cannot be reproduced; this log
// line is the regression signal a future gadget-matched implementation
// would diff against.
func LogCircuitStats(nbConstraints, nbPublic, nbSecret int) {
	Log.Info().
		Int("constraints", nbConstraints).
		Int("public_inputs", nbPublic).
		Int("secret_inputs", nbSecret).
		Msg("compiled Mint-Asset circuit")
}
