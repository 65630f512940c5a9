package usdadomain

// ExportRecord é uma linha da API ESR: vendas de uma commodity para um país em uma semana
type ExportRecord struct {
	CommodityCode            int     `json:"commodityCode"`
	CountryCode              int     `json:"countryCode"`
	WeeklyExports            float64 `json:"weeklyExports"`
	AccumulatedExports       float64 `json:"accumulatedExports"`
	OutstandingSales         float64 `json:"outstandingSales"`
	GrossNewSales            float64 `json:"grossNewSales"`
	CurrentMYNetSales        float64 `json:"currentMYNetSales"`
	CurrentMYTotalCommitment float64 `json:"currentMYTotalCommitment"`
	NextMYOutstandingSales   float64 `json:"nextMYOutstandingSales"`
	NextMYNetSales           float64 `json:"nextMYNetSales"`
	UnitID                   int     `json:"unitId"`
	WeekEndingDate           string  `json:"weekEndingDate"` // Formato 2006-01-02T15:04:05
}
