package carrier

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danuarta/schedules-tracker/constants"
	"github.com/danuarta/schedules-tracker/internal/common"
)

// Registry holds the closed, ordered set of carrier profiles. Order is
// declaration priority: it fixes evaluation order and the candidate order
// reported on ambiguous detection.
type Registry struct {
	profiles []Profile
	fallback Profile
}

// NewRegistry returns the default registry with every supported carrier
// registered in priority order.
func NewRegistry() *Registry {
	return &Registry{
		profiles: []Profile{
			MaerskProfile{},
			CMAProfile{},
			OOCLProfile{},
		},
		fallback: GenericProfile{},
	}
}

// Profiles returns the registered profiles in declaration order, fallback
// excluded.
func (r *Registry) Profiles() []Profile {
	return r.profiles
}

// Fallback returns the generic profile used when detection is undetermined.
func (r *Registry) Fallback() Profile {
	return r.fallback
}

// ByName returns the profile for a caller-supplied carrier identifier.
func (r *Registry) ByName(name string) (Profile, error) {
	carrier, known := constants.Canonicalize(name)
	if !known {
		return nil, common.NewAppError("UNKNOWN_CARRIER",
			fmt.Sprintf("carrier %q is not registered", name), common.ErrInvalidInput)
	}
	if carrier == constants.Generic {
		return r.fallback, nil
	}
	for _, p := range r.profiles {
		if p.Name() == carrier {
			return p, nil
		}
	}
	// Known carrier without a dedicated layout yet: extract generically but
	// keep the caller's carrier identity.
	return nil, common.NewAppError("UNSUPPORTED_CARRIER",
		fmt.Sprintf("carrier %q has no extraction profile", carrier), common.ErrNotFound)
}

// FromFilename resolves the screenshot filename prefix convention
// ("m_schedule.png" -> MAERSK). Empty result means no hint.
func FromFilename(filename string) (constants.Carrier, bool) {
	base := strings.ToLower(filepath.Base(filename))
	if len(base) < 2 || base[1] != '_' {
		return "", false
	}
	carrier, ok := constants.FilenamePrefixes[base[0]]
	return carrier, ok
}

// Detect evaluates every registered profile's predicate against the text and
// returns the best-fitting profile.
//
// A unique best score wins. Equal best scores are reported as ambiguous via
// ErrAmbiguousCarrier: the system never silently guesses between
// equally-scored carriers. A zero best score returns (nil, nil), meaning
// undetermined — callers fall back to the generic profile.
func (r *Registry) Detect(text string) (Profile, error) {
	var (
		best      Profile
		bestScore int
		tied      []string
	)
	for _, p := range r.profiles {
		score := p.Detect(text)
		if score == 0 {
			continue
		}
		switch {
		case score > bestScore:
			best, bestScore = p, score
			tied = []string{string(p.Name())}
		case score == bestScore:
			tied = append(tied, string(p.Name()))
		}
	}

	if bestScore == 0 {
		return nil, nil
	}
	if len(tied) > 1 {
		return nil, common.NewAppError("AMBIGUOUS_CARRIER",
			fmt.Sprintf("detection tied between %s", strings.Join(tied, ", ")),
			common.ErrAmbiguousCarrier)
	}
	return best, nil
}
