package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/agext/levenshtein"
	"github.com/google/uuid"

	"github.com/danuarta/schedules-tracker/constants"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/entity"
)

// DefaultThreshold is the fuzzy-acceptance floor used when configuration
// supplies none. Scores at or above it resolve; below it the candidate stays
// unknown.
const DefaultThreshold = 0.80

// MatchType classifies how a candidate resolved.
type MatchType string

const (
	MatchExact MatchType = "exact" // candidate equals a vessel name
	MatchAlias MatchType = "alias" // candidate equals a known alias
	MatchFuzzy MatchType = "fuzzy" // accepted by similarity score
	MatchNone  MatchType = "none"  // below threshold: unknown identity
)

// Match is the outcome of resolving one candidate name.
type Match struct {
	Input  string
	Vessel string // canonical vessel name; empty when Type is MatchNone
	Score  float64
	Type   MatchType
}

// WriteKind tags a proposed catalog mutation.
type WriteKind string

const (
	WriteLearnAlias WriteKind = "learn-alias"
	WriteBumpUsage  WriteKind = "bump-usage"
)

// Write is one proposed catalog mutation. Resolve never touches the store;
// it returns proposed writes and a separate Commit applies them, keeping the
// self-learning side effect visible and testable in isolation.
type Write struct {
	Kind       WriteKind
	Vessel     string // canonical vessel name (learn-alias)
	Alias      string // alias text as it will be stored / bumped
	Confidence float64
}

type aliasEntry struct {
	vessel string // canonical vessel name
	text   string // alias text as stored
}

// Resolver maps candidate vessel-name strings to catalog vessels. All
// matching runs against an in-memory index built from a store snapshot, so
// resolution itself is pure computation; store I/O is confined to Commit and
// Reload.
type Resolver struct {
	store     Store
	threshold float64
	logger    *slog.Logger

	mu        sync.RWMutex
	names     map[string]string     // normalized name -> canonical name
	aliases   map[string]aliasEntry // normalized alias -> entry
	vesselIDs map[string]uuid.UUID  // canonical name -> vessel id
}

// NewResolver loads a snapshot from the store and builds the match index.
func NewResolver(ctx context.Context, store Store, threshold float64, logger *slog.Logger) (*Resolver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	r := &Resolver{
		store:     store,
		threshold: threshold,
		logger:    logger,
	}
	if err := r.Reload(ctx); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return r, nil
}

// Reload rebuilds the in-memory index from the store's current contents.
func (r *Resolver) Reload(ctx context.Context) error {
	snap, err := r.store.Snapshot(ctx)
	if err != nil {
		return err
	}

	names := make(map[string]string, len(snap.Vessels))
	vesselIDs := make(map[string]uuid.UUID, len(snap.Vessels))
	byID := make(map[uuid.UUID]string, len(snap.Vessels))
	for _, v := range snap.Vessels {
		if !v.IsActive {
			continue
		}
		names[normalizeKey(v.Name)] = v.Name
		vesselIDs[v.Name] = v.ID
		byID[v.ID] = v.Name
	}

	aliases := make(map[string]aliasEntry, len(snap.Aliases))
	for _, a := range snap.Aliases {
		vessel, ok := byID[a.VesselID]
		if !ok {
			continue // alias of an inactive or vanished vessel
		}
		aliases[normalizeKey(a.Alias)] = aliasEntry{vessel: vessel, text: a.Alias}
	}

	r.mu.Lock()
	r.names = names
	r.aliases = aliases
	r.vesselIDs = vesselIDs
	r.mu.Unlock()

	r.logger.Info("catalog.index.loaded", "vessels", len(names), "aliases", len(aliases))
	return nil
}

// Resolve maps a candidate to the best-matching catalog vessel.
//
// Lookup order: exact case-insensitive match against a vessel name or alias,
// then normalized-distance similarity against every known name and alias. A
// similarity score at or above the threshold is accepted and proposes a
// learn-alias write so the next lookup for this spelling is exact; a score
// below it reports MatchNone and learns nothing — the raw candidate goes
// back to the caller unresolved rather than guessed.
func (r *Resolver) Resolve(candidate string) (Match, []Write) {
	input := strings.TrimSpace(candidate)
	if input == "" {
		return Match{Input: candidate, Type: MatchNone}, nil
	}
	key := normalizeKey(input)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if name, ok := r.names[key]; ok {
		return Match{Input: input, Vessel: name, Score: 1, Type: MatchExact}, nil
	}
	if entry, ok := r.aliases[key]; ok {
		return Match{Input: input, Vessel: entry.vessel, Score: 1, Type: MatchAlias},
			[]Write{{Kind: WriteBumpUsage, Vessel: entry.vessel, Alias: entry.text}}
	}

	bestScore, bestVessel := 0.0, ""
	for nameKey, name := range r.names {
		if s := similarity(key, nameKey); s > bestScore {
			bestScore, bestVessel = s, name
		}
	}
	for aliasKey, entry := range r.aliases {
		if s := similarity(key, aliasKey); s > bestScore {
			bestScore, bestVessel = s, entry.vessel
		}
	}

	if bestScore >= r.threshold {
		aliasText := strings.ToUpper(input)
		return Match{Input: input, Vessel: bestVessel, Score: bestScore, Type: MatchFuzzy},
			[]Write{{Kind: WriteLearnAlias, Vessel: bestVessel, Alias: aliasText, Confidence: bestScore}}
	}

	return Match{Input: input, Score: bestScore, Type: MatchNone}, nil
}

// Commit applies proposed writes to the store and folds them into the
// in-memory index. Learning is monotonic: aliases only accumulate here;
// removal is an explicit maintenance action elsewhere.
func (r *Resolver) Commit(ctx context.Context, writes []Write) error {
	for _, w := range writes {
		switch w.Kind {
		case WriteLearnAlias:
			if err := r.learnAlias(ctx, w); err != nil {
				return err
			}
		case WriteBumpUsage:
			if err := r.store.TouchAlias(ctx, w.Alias); err != nil {
				return fmt.Errorf("bump alias %q: %w", w.Alias, err)
			}
		}
	}
	return nil
}

func (r *Resolver) learnAlias(ctx context.Context, w Write) error {
	r.mu.RLock()
	vesselID, ok := r.vesselIDs[w.Vessel]
	r.mu.RUnlock()
	if !ok {
		return common.NewAppError("LEARN_FAILED",
			fmt.Sprintf("vessel %q not in index", w.Vessel), common.ErrNotFound)
	}

	now := time.Now().UTC()
	alias := &entity.VesselAlias{
		ID:         uuid.New(),
		VesselID:   vesselID,
		Alias:      w.Alias,
		Source:     string(constants.AliasSourceAutoLearned),
		Confidence: w.Confidence,
		UsageCount: 1,
		LastUsedAt: &now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := r.store.InsertAlias(ctx, alias)
	switch {
	case err == nil:
		r.logger.Info("catalog.alias.learned", "alias", w.Alias, "vessel", w.Vessel, "confidence", w.Confidence)
	case common.IsConflict(err):
		// Raced with another learner; the spelling is known now either way.
		if err := r.store.TouchAlias(ctx, w.Alias); err != nil {
			return fmt.Errorf("touch existing alias %q: %w", w.Alias, err)
		}
	default:
		return fmt.Errorf("learn alias %q: %w", w.Alias, err)
	}

	r.mu.Lock()
	r.aliases[normalizeKey(w.Alias)] = aliasEntry{vessel: w.Vessel, text: w.Alias}
	r.mu.Unlock()
	return nil
}

// Threshold returns the acceptance threshold in use.
func (r *Resolver) Threshold() float64 { return r.threshold }

var reKeyPunct = regexp.MustCompile(`[.\-_/]`)
var reKeySpaces = regexp.MustCompile(`\s+`)

// normalizeKey produces the comparison form of a name: uppercase, punctuation
// folded to spaces, whitespace collapsed. "JULIUS-S." and "julius s" share a
// key.
func normalizeKey(s string) string {
	s = reKeyPunct.ReplaceAllString(strings.ToUpper(s), " ")
	s = reKeySpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// similarity is normalized Levenshtein similarity in [0, 1].
func similarity(a, b string) float64 {
	return levenshtein.Similarity(a, b, levenshtein.NewParams())
}
