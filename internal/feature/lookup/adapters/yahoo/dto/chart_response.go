package dto

// ChartResponse is the body of /v8/finance/chart/{symbol}.
// Only the meta block is consumed; the indicator arrays are ignored.
type ChartResponse struct {
	Chart Chart `json:"chart"`
}

// Chart wraps the result list of the chart endpoint.
type Chart struct {
	Result []ChartResult `json:"result"`
}

// ChartResult is a single chart entry for the requested symbol.
type ChartResult struct {
	Meta *ChartMeta `json:"meta"`
}

// ChartMeta carries the current-day quote fields.
// Pointer fields are absent from the payload when Yahoo has no value.
type ChartMeta struct {
	Currency             string   `json:"currency"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	ChartPreviousClose   *float64 `json:"chartPreviousClose"`
	PreviousClose        *float64 `json:"previousClose"`
	RegularMarketOpen    *float64 `json:"regularMarketOpen"`
	RegularMarketDayHigh *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow  *float64 `json:"regularMarketDayLow"`
	RegularMarketVolume  *int64   `json:"regularMarketVolume"`
	ExchangeName         string   `json:"exchangeName"`
	FullExchangeName     string   `json:"fullExchangeName"`
	LongName             string   `json:"longName"`
	ShortName            string   `json:"shortName"`
}
