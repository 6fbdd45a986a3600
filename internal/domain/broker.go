package domain

type BrokerPosition struct {
	Symbol       string   `json:"symbol"`
	Quantity     float64  `json:"quantity"`
	CurrentPrice *float64 `json:"currentPrice"`
	MarketValue  *float64 `json:"marketValue"`
	UnrealizedPL *float64 `json:"unrealizedPl"`
}

// BrokerSummary is the live paper account as reported by the broker.
type BrokerSummary struct {
	Cash        float64          `json:"cash"`
	Equity      float64          `json:"equity"`
	BuyingPower float64          `json:"buyingPower"`
	Positions   []BrokerPosition `json:"positions"`
}
