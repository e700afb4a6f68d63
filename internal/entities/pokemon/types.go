// Package pokemon holds the value types shared by the stat engine and the
// planners. Everything here is constructed per call and never mutated after.
package pokemon

const (
	// MinLevel is the first level step in the level table
	MinLevel = 1
	// MaxLevel is the last level step; maxCp and maxHp are computed here
	MaxLevel = 80
	// MaxIV is the highest value of a single individual value
	MaxIV = 15
)

// Pokemon is a read-only record of the creature table
type Pokemon struct {
	ID            int
	Name          string
	BaseAttack    int
	BaseDefense   int
	BaseStamina   int
	CandyToEvolve int
	EvolutionIDs  []int
}

// CanEvolve reports whether the record lists any evolution target
func (p *Pokemon) CanEvolve() bool {
	return len(p.EvolutionIDs) > 0
}

// LevelEntry is one row of the level table
type LevelEntry struct {
	Level    int
	CPScalar float64
	Dust     int
}

// IVs are the hidden per-stat modifiers, each in [0,15]
type IVs struct {
	Attack  int
	Defense int
	Stamina int
}

// Sum returns attack+defense+stamina
func (iv IVs) Sum() int {
	return iv.Attack + iv.Defense + iv.Stamina
}

// Stats is a snapshot of a creature with given IVs at a given level. MaxCP and
// MaxHP use the scalar of MaxLevel with the same IVs.
type Stats struct {
	IVs        IVs
	Level      int
	Perfection int
	HP         int
	CP         int
	MaxHP      int
	MaxCP      int
}

// CPRange is the typical CP band of a creature at a level, expanded over its
// evolution chain. MinCP and MaxCP are nil when the level is unknown.
type CPRange struct {
	Pokemon    *Pokemon
	Avatar     string
	Evolutions []*CPRange
	MinCP      *int
	MaxCP      *int
	Level      int
	ObservedCP *int
}

// Contains reports whether cp falls inside the band
func (r *CPRange) Contains(cp int) bool {
	if r.MinCP == nil || r.MaxCP == nil {
		return false
	}
	return *r.MinCP <= cp && *r.MaxCP >= cp
}

// IVCandidate is one IV combination consistent with an observation.
// Perfection is the fraction sum/45, not a percentage.
type IVCandidate struct {
	IVs        IVs
	Level      int
	Perfection float64
}

// ChartRow compares the best and worst candidate for one stat
type ChartRow struct {
	Stat  string
	Best  int
	Worst int
}

// PerfectionSummary holds rounded percentages over all candidates
type PerfectionSummary struct {
	Best  int
	Worst int
	Avg   int
}

// IVSummary holds the reference snapshots of an IV resume. Only Count is set
// when no candidate matched.
type IVSummary struct {
	Best      *Stats
	YourBest  *Stats
	YourWorst *Stats
	Worst     *Stats
	Count     int
}

// IVResume is the full IV report for an observed CP/HP/dust triple
type IVResume struct {
	Pokemon    *Pokemon
	Avatar     string
	LevelRange []int
	ChartData  []ChartRow
	Grade      string
	Perfection *PerfectionSummary
	IVs        IVSummary
}

// CandyPlan is the outcome of spending candies and surplus creatures on
// evolutions
type CandyPlan struct {
	Pokemon              *Pokemon
	Quantity             int
	Candies              int
	XP                   int
	XPWithLuckyEgg       int
	PokemonsToEvolve     int
	PokemonsToTransfer   int
	EvolutionsToTransfer int
	CandiesLeft          int
	PokemonsLeft         int
	Time                 int
}
