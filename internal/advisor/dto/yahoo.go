package dto

// GetStockDataParam controls a chart history fetch.
type GetStockDataParam struct {
	Ticker   string `json:"ticker"`
	Range    string `json:"range"`
	Interval string `json:"interval"`
}

// YahooFinanceChartResponse mirrors the v8 chart endpoint envelope.
type YahooFinanceChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []*float64 `json:"close"`
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *YahooFinanceError `json:"error"`
	} `json:"chart"`
}

// YahooFinanceError is the provider's error object.
type YahooFinanceError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// YahooRawValue is Yahoo's {raw, fmt} number wrapper.
type YahooRawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

// YahooQuoteSummaryResponse mirrors the v10 quoteSummary envelope for the
// modules this service requests.
type YahooQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail *struct {
				TrailingPE YahooRawValue `json:"trailingPE"`
				MarketCap  YahooRawValue `json:"marketCap"`
			} `json:"summaryDetail"`
			FinancialData *struct {
				ReturnOnEquity YahooRawValue `json:"returnOnEquity"`
				DebtToEquity   YahooRawValue `json:"debtToEquity"`
			} `json:"financialData"`
			DefaultKeyStatistics *struct {
				TrailingEps YahooRawValue `json:"trailingEps"`
			} `json:"defaultKeyStatistics"`
			AssetProfile *struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *YahooFinanceError `json:"error"`
	} `json:"quoteSummary"`
}

// StockFundamentals is the provider-neutral fundamentals snapshot. Nil
// fields were unavailable from every provider tried.
type StockFundamentals struct {
	Ticker       string   `json:"ticker"`
	Sector       string   `json:"sector"`
	PE           *float64 `json:"pe,omitempty"`
	ROE          *float64 `json:"roe,omitempty"`
	DebtToEquity *float64 `json:"debt_to_equity,omitempty"`
	EPS          *float64 `json:"eps,omitempty"`
	MarketCap    *float64 `json:"market_cap,omitempty"`
	Source       string   `json:"source"`
}
