package models

import (
	"github.com/guregu/null/v6"

	"github.com/guttosm/marketprobe/internal/schema"
)

// EOD is one trading day of prices for a symbol, as returned by GET /eod.
//
// Every key is mandatory in the payload. AdjHigh, AdjLow, AdjVolume and the
// descriptive fields (Name, ExchangeCode, AssetType, PriceCurrency) may be null.
type EOD struct {
	Open          float64     `json:"open"`
	High          float64     `json:"high"`
	Low           float64     `json:"low"`
	Close         float64     `json:"close"`
	Volume        float64     `json:"volume"`
	AdjHigh       null.Float  `json:"adj_high"`
	AdjLow        null.Float  `json:"adj_low"`
	AdjClose      float64     `json:"adj_close"`
	AdjOpen       float64     `json:"adj_open"`
	AdjVolume     null.Float  `json:"adj_volume"`
	SplitFactor   float64     `json:"split_factor"`
	Dividend      float64     `json:"dividend"`
	Name          null.String `json:"name"`
	ExchangeCode  null.String `json:"exchange_code"`
	AssetType     null.String `json:"asset_type"`
	PriceCurrency null.String `json:"price_currency"`
	Symbol        string      `json:"symbol" validate:"required"`
	Exchange      string      `json:"exchange"`
	Date          Timestamp   `json:"date"`
}

// EODResponse is the decoded body of a successful GET /eod.
type EODResponse = ListResponse[EOD]

// EODShape rejects unknown keys so upstream schema drift fails loudly.
var EODShape = schema.StrictObject("eod",
	schema.Float("open"),
	schema.Float("high"),
	schema.Float("low"),
	schema.Float("close"),
	schema.Float("volume"),
	schema.Float("adj_high").Nullable(),
	schema.Float("adj_low").Nullable(),
	schema.Float("adj_close"),
	schema.Float("adj_open"),
	schema.Float("adj_volume").Nullable(),
	schema.Float("split_factor"),
	schema.Float("dividend"),
	schema.String("name").Nullable(),
	schema.String("exchange_code").Nullable(),
	schema.String("asset_type").Nullable(),
	schema.String("price_currency").Nullable(),
	schema.String("symbol"),
	schema.String("exchange"),
	schema.DateTime("date"),
)

// EODResponseShape is the strict envelope for GET /eod.
var EODResponseShape = listShape("eod_response", true, EODShape)
