package ingredient

import (
	"math"
	"strings"
	"sync"

	"github.com/flavorlab/cocktailiq/internal/domain/molecule"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// Keyword sets driving the taste-score math. The base sets seed the sour and
// savory counts (those two dimensions have no molecule flag); the boost sets
// add weight for every matching flavor keyword; the aromatic set defines the
// fifth dimension outright. Matching is substring over the lowercased
// keyword.
var (
	baseSourKeywords   = []string{"sour", "acidic", "tart", "citrus"}
	baseSavoryKeywords = []string{"savory", "umami", "meaty", "brothy"}

	sweetBoostKeywords  = []string{"sweet", "honey", "caramel", "sugar", "syrup", "vanilla", "fruity"}
	bitterBoostKeywords = []string{"bitter", "astringent", "tannic", "harsh"}
	sourBoostKeywords   = []string{"sour", "acidic", "tart", "citrus", "vinegar", "sharp"}
	savoryBoostKeywords = []string{"savory", "umami", "meaty", "brothy", "roasted"}

	aromaticKeywords = []string{"floral", "aromatic", "perfume", "fragrant", "herbal", "spicy", "woody", "earthy"}
)

// keywordBoost is the weight a matching flavor keyword adds on top of the
// molecule-flag counts.
const keywordBoost = 2

// Profiler computes and memoizes ingredient profiles. The cache is an
// explicit object guarded by an RWMutex so the profiler can be shared by
// concurrent request handlers; a duplicate computation on a miss race is
// harmless because profiling is a pure function of the index.
type Profiler struct {
	mu     sync.RWMutex
	index  *molecule.Index
	cache  map[string]*Profile
	logger logging.Logger

	onCacheHit  func()
	onCacheMiss func()
}

// ProfilerOption customizes profiler construction.
type ProfilerOption func(*Profiler)

// WithCacheMetrics registers hooks invoked on every cache hit and miss.
func WithCacheMetrics(onHit, onMiss func()) ProfilerOption {
	return func(p *Profiler) {
		p.onCacheHit = onHit
		p.onCacheMiss = onMiss
	}
}

// NewProfiler constructs a profiler over the given index.
func NewProfiler(index *molecule.Index, logger logging.Logger, opts ...ProfilerOption) *Profiler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	p := &Profiler{
		index:  index,
		cache:  make(map[string]*Profile),
		logger: logger.Named("profiler"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Profile returns the flavor profile for an ingredient, computing and
// caching it on first request. An ingredient absent from the index yields
// the zero profile and a warning, never an error.
func (p *Profiler) Profile(ingredient string) *Profile {
	key := molecule.NormalizeName(ingredient)

	p.mu.RLock()
	cached, ok := p.cache[key]
	idx := p.index
	p.mu.RUnlock()
	if ok {
		if p.onCacheHit != nil {
			p.onCacheHit()
		}
		return cached
	}
	if p.onCacheMiss != nil {
		p.onCacheMiss()
	}

	profile := p.compute(idx, ingredient, key)

	p.mu.Lock()
	p.cache[key] = profile
	p.mu.Unlock()
	return profile
}

func (p *Profiler) compute(idx *molecule.Index, ingredient, key string) *Profile {
	molecules := idx.Lookup(key)
	if len(molecules) == 0 {
		p.logger.Warn("no molecules found for ingredient", logging.String("ingredient", ingredient))
		return EmptyProfile(ingredient)
	}

	keywords := make(map[string]int)
	groups := make(map[string]int)
	var weightSum, xlogpSum float64
	var weightN, xlogpN int

	for _, m := range molecules {
		for _, kw := range m.FlavorKeywords {
			keywords[kw]++
		}
		for _, g := range m.FunctionalGroups {
			groups[g]++
		}
		if m.MolecularWeight > 0 {
			weightSum += m.MolecularWeight
			weightN++
		}
		if m.XLogP != 0 {
			xlogpSum += m.XLogP
			xlogpN++
		}
	}

	profile := &Profile{
		Ingredient:       ingredient,
		NumMolecules:     len(molecules),
		FlavorKeywords:   keywords,
		FunctionalGroups: groups,
		TasteScores:      computeTasteScores(molecules, keywords),
		AromaticIntensity: computeAromaticIntensity(molecules),
		Volatility:        estimateVolatility(molecules),
	}
	if weightN > 0 {
		profile.AvgMolecularWeight = weightSum / float64(weightN)
	}
	if xlogpN > 0 {
		profile.AvgXLogP = xlogpSum / float64(xlogpN)
	}
	return profile
}

// Invalidate drops every cached profile. Called by the data watcher after a
// molecule-table reload.
func (p *Profiler) Invalidate() {
	p.mu.Lock()
	n := len(p.cache)
	p.cache = make(map[string]*Profile)
	p.mu.Unlock()
	p.logger.Info("profile cache invalidated", logging.Int("evicted", n))
}

// SwapIndex replaces the molecule index and invalidates the cache in one
// step, so no stale profile can be served against the new data.
func (p *Profiler) SwapIndex(idx *molecule.Index) {
	p.mu.Lock()
	p.index = idx
	n := len(p.cache)
	p.cache = make(map[string]*Profile)
	p.mu.Unlock()
	p.logger.Info("molecule index swapped", logging.Int("evicted", n))
}

// CacheLen returns the number of cached profiles.
func (p *Profiler) CacheLen() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cache)
}

// matchesAny reports whether any fragment is a substring of the lowercased
// keyword.
func matchesAny(keyword string, fragments []string) bool {
	keyword = strings.ToLower(keyword)
	for _, f := range fragments {
		if strings.Contains(keyword, f) {
			return true
		}
	}
	return false
}

// computeTasteScores derives the normalized five-dimension taste vector.
// Sweet and bitter start from molecule flags, sour and savory from the base
// keyword sets; every matching flavor keyword then adds twice its occurrence
// count. The aromatic dimension is the plain occurrence sum over the
// aromatic set. A square root dampens very high raw counts before dividing
// by the maximum, keeping every score in [0,1].
func computeTasteScores(molecules []*molecule.Molecule, keywords map[string]int) flavor.TasteVector {
	var sweet, bitter, sour, savory, aromatic float64

	for _, m := range molecules {
		if m.Sweet {
			sweet++
		}
		if m.Bitter {
			bitter++
		}
	}

	for kw, count := range keywords {
		c := float64(count)
		if matchesAny(kw, baseSourKeywords) {
			sour += c
		}
		if matchesAny(kw, baseSavoryKeywords) {
			savory += c
		}
		if matchesAny(kw, sweetBoostKeywords) {
			sweet += c * keywordBoost
		}
		if matchesAny(kw, bitterBoostKeywords) {
			bitter += c * keywordBoost
		}
		if matchesAny(kw, sourBoostKeywords) {
			sour += c * keywordBoost
		}
		if matchesAny(kw, savoryBoostKeywords) {
			savory += c * keywordBoost
		}
		if matchesAny(kw, aromaticKeywords) {
			aromatic += c
		}
	}

	maxScore := math.Max(math.Max(math.Max(sweet, bitter), math.Max(sour, savory)), math.Max(aromatic, 1))
	norm := math.Sqrt(maxScore)

	return flavor.TasteVector{
		flavor.Sweet:    math.Sqrt(sweet) / norm,
		flavor.Sour:     math.Sqrt(sour) / norm,
		flavor.Bitter:   math.Sqrt(bitter) / norm,
		flavor.Savory:   math.Sqrt(savory) / norm,
		flavor.Aromatic: math.Sqrt(aromatic) / norm,
	}
}

// computeAromaticIntensity estimates perceived aroma strength. The fraction
// of aromatic molecules is scaled by a tanh of their volatility-weighted
// mass: lighter aromatic molecules (< 300 Da) are more volatile and count
// for more.
func computeAromaticIntensity(molecules []*molecule.Molecule) float64 {
	if len(molecules) == 0 {
		return 0
	}

	var aromaticCount int
	var totalAromaticWeight float64

	for _, m := range molecules {
		if !m.HasFunctionalGroup("aromatic") {
			continue
		}
		aromaticCount++
		mw := m.MolecularWeight
		if mw <= 0 {
			mw = 200
		}
		if mw < 300 {
			totalAromaticWeight += 1.0 / (mw / 100.0)
		}
	}

	if aromaticCount == 0 {
		return 0
	}

	intensity := (float64(aromaticCount) / float64(len(molecules))) *
		math.Tanh(totalAromaticWeight/float64(aromaticCount))
	return math.Min(intensity, 1.0)
}

// estimateVolatility maps molecular weight to a stepped volatility estimate
// (typical volatiles sit in 50-250 Da), multiplies up for ester/aldehyde and
// aromatic groups, clips to 1.0, and averages over the molecules that carry
// a weight.
func estimateVolatility(molecules []*molecule.Molecule) float64 {
	var sum float64
	var n int

	for _, m := range molecules {
		mw := m.MolecularWeight
		if mw == 0 {
			continue
		}

		var vol float64
		switch {
		case mw < 100:
			vol = 1.0
		case mw < 200:
			vol = 0.8
		case mw < 300:
			vol = 0.5
		default:
			vol = 0.2
		}

		if m.HasFunctionalGroup("ester") || m.HasFunctionalGroup("aldehyde") {
			vol *= 1.2
		}
		if m.HasFunctionalGroup("aromatic") {
			vol *= 1.1
		}

		sum += math.Min(vol, 1.0)
		n++
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
