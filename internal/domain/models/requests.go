package models

// Requests for the dashboard HTTP endpoints. Defined in domain for
// consistency and reuse; validation tags are enforced at the HTTP layer.

type HistoricalRequest struct {
	Range    string `query:"range" json:"range" default:"1M" validate:"oneof=1D 1W 1M 3M 6M 1Y 5Y ALL"`
	Interval string `query:"interval" json:"interval" validate:"omitempty,oneof=1m 5m 15m 1d 1wk 1mo"`
}

type BatchQuotesRequest struct {
	Symbols string `query:"symbols" json:"symbols" validate:"required"`
}

type SignalsRequest struct {
	Range string `query:"range" json:"range" default:"1Y" validate:"oneof=1M 3M 6M 1Y 5Y ALL"`
}

type LiquidityHistoryRequest struct {
	Range  string `query:"range" json:"range" default:"1Y" validate:"oneof=1M 3M 6M 1Y 5Y ALL"`
	Spikes int    `query:"spikes" json:"spikes" default:"6" validate:"gte=0,lte=50"`
}

type SimulateRequest struct {
	Amount      float64      `json:"amount" validate:"required,gt=0"`
	StartDate   string       `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string       `json:"endDate" validate:"required,datetime=2006-01-02"`
	Allocations []Allocation `json:"allocations" validate:"required,min=1,dive"`
}

type CorrelationRequest struct {
	Symbols string `query:"symbols" json:"symbols" validate:"required"`
	Range   string `query:"range" json:"range" default:"1Y" validate:"oneof=1M 3M 6M 1Y 5Y ALL"`
}

type CompareRequest struct {
	Symbols string `query:"symbols" json:"symbols" validate:"required"`
	Range   string `query:"range" json:"range" default:"1Y" validate:"oneof=1M 3M 6M 1Y 5Y ALL"`
}
