package scoring

// SectorBenchmark is the debt/equity threshold pair for one sector. Sectors
// such as banking carry structurally high leverage, so what counts as risky
// varies by industry.
type SectorBenchmark struct {
	NormalMax  float64
	RiskyAbove float64
}

// SectorFallback holds conservative sector-average estimates used when a
// fundamental cannot be fetched from any provider.
type SectorFallback struct {
	PE  float64
	ROE float64
	DE  float64
}

// Benchmarks holds the immutable sector tables. Constructed once at startup
// and injected into the scorer; safe for unsynchronized concurrent reads.
type Benchmarks struct {
	debt        map[string]SectorBenchmark
	fallbacks   map[string]SectorFallback
	defaultDebt SectorBenchmark
}

// NewBenchmarks builds the sector benchmark tables.
func NewBenchmarks() *Benchmarks {
	return &Benchmarks{
		debt: map[string]SectorBenchmark{
			"Financial Services":     {NormalMax: 500, RiskyAbove: 1000},
			"Banking":                {NormalMax: 500, RiskyAbove: 1000},
			"Industrials":            {NormalMax: 150, RiskyAbove: 300},
			"Utilities":              {NormalMax: 200, RiskyAbove: 400},
			"Real Estate":            {NormalMax: 200, RiskyAbove: 400},
			"Energy":                 {NormalMax: 100, RiskyAbove: 200},
			"Technology":             {NormalMax: 50, RiskyAbove: 100},
			"Consumer Cyclical":      {NormalMax: 80, RiskyAbove: 150},
			"Healthcare":             {NormalMax: 60, RiskyAbove: 120},
			"Consumer Defensive":     {NormalMax: 60, RiskyAbove: 120},
			"Basic Materials":        {NormalMax: 80, RiskyAbove: 150},
			"Communication Services": {NormalMax: 100, RiskyAbove: 200},
		},
		fallbacks: map[string]SectorFallback{
			"Financial Services":     {PE: 15.0, ROE: 0.14, DE: 200.0},
			"Banking":                {PE: 15.0, ROE: 0.14, DE: 200.0},
			"Industrials":            {PE: 25.0, ROE: 0.15, DE: 80.0},
			"Energy":                 {PE: 12.0, ROE: 0.10, DE: 60.0},
			"Technology":             {PE: 20.0, ROE: 0.20, DE: 20.0},
			"Consumer Cyclical":      {PE: 30.0, ROE: 0.12, DE: 50.0},
			"Healthcare":             {PE: 35.0, ROE: 0.18, DE: 30.0},
			"Consumer Defensive":     {PE: 40.0, ROE: 0.15, DE: 40.0},
			"Basic Materials":        {PE: 18.0, ROE: 0.12, DE: 60.0},
			"Communication Services": {PE: 25.0, ROE: 0.12, DE: 80.0},
			"Utilities":              {PE: 15.0, ROE: 0.10, DE: 100.0},
			"Real Estate":            {PE: 20.0, ROE: 0.08, DE: 150.0},
		},
		defaultDebt: SectorBenchmark{NormalMax: 80, RiskyAbove: 150},
	}
}

// Debt returns the debt/equity benchmark for a sector, matched
// case-sensitively, falling back to the default pair for unknown sectors.
func (b *Benchmarks) Debt(sector string) SectorBenchmark {
	if bm, ok := b.debt[sector]; ok {
		return bm
	}
	return b.defaultDebt
}

// Fallback returns the sector-average estimates, if the sector is known.
func (b *Benchmarks) Fallback(sector string) (SectorFallback, bool) {
	fb, ok := b.fallbacks[sector]
	return fb, ok
}
