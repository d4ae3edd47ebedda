package score

// Scoring weights. One violation costs more than the area and count
// contribution of any single building, so among layouts of similar size the
// violation count decides the ranking.
const (
	AreaWeight       = 100.0
	ViolationPenalty = 10000.0
	CountBonus       = 500.0
)
