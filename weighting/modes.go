package weighting

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/watset/clustering"
)

// Mode names understood by Parse.
const (
	ModeLabel  = "label"
	ModeTop    = "top"
	ModeLog    = "log"
	ModeLinear = "linear"
	ModeLin    = "lin"

	// ModeNoLog is the legacy name of ModeLinear.
	ModeNoLog = "nolog"

	// DefaultMode is used when no mode is given.
	DefaultMode = ModeTop
)

// ErrUnknownMode is returned by Parse for an unrecognized mode name.
var ErrUnknownMode = fmt.Errorf("%w: unknown weighting mode", clustering.ErrConfiguration)

// modes maps canonical names (and the lin alias) to constructors.
var modes = map[string]func() Weighting{
	ModeLabel:  Label,
	ModeTop:    Top,
	ModeLog:    Log,
	ModeLinear: Linear,
	ModeLin:    Linear,
}

// Parse resolves a mode name into a Weighting.
//
// Matching is case-insensitive and ignores surrounding spaces; an empty mode
// selects DefaultMode. The legacy "nolog" resolves to Linear and logs a
// warning on logger (zap.L() when logger is nil). Any other unknown name
// fails with ErrUnknownMode.
func Parse(mode string, logger *zap.Logger) (Weighting, error) {
	name := strings.ToLower(strings.TrimSpace(mode))
	if name == "" {
		name = DefaultMode
	}
	if name == ModeNoLog {
		if logger == nil {
			logger = zap.L()
		}
		logger.Warn("deprecated weighting mode, use the replacement",
			zap.String("mode", mode),
			zap.String("replacement", ModeLinear))
		name = ModeLinear
	}

	ctor, ok := modes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	return ctor(), nil
}

// Modes returns the accepted mode names (without the legacy alias), sorted.
func Modes() []string {
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
