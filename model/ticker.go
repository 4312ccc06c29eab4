package model

import "fmt"

// Volume is the volume sub-record of a Ticker. Base figures are denominated in
// the pair's base currency, Converted figures in the market currency. The
// symbol fields are empty when the pair identifier could not be split.
type Volume struct {
	Base            *Number
	BaseSymbol      string
	Converted       *Number
	ConvertedSymbol string
	Timestamp       *Timestamp
}

// Ticker is the canonical snapshot of a pair's market data
type Ticker struct {
	Ask    *Number
	Bid    *Number
	Last   *Number
	High   *Number
	Low    *Number
	Avg    *Number
	Volume *Volume
}

// String is the stringer function
func (t Ticker) String() string {
	return fmt.Sprintf("Ticker[ask=%s, bid=%s, last=%s, baseVol=%s %s, convertedVol=%s %s]",
		t.Ask.AsString(),
		t.Bid.AsString(),
		t.Last.AsString(),
		t.Volume.Base.AsString(),
		t.Volume.BaseSymbol,
		t.Volume.Converted.AsString(),
		t.Volume.ConvertedSymbol,
	)
}

// Candle is one OHLCV aggregation bucket
type Candle struct {
	Open      *Number
	High      *Number
	Low       *Number
	Close     *Number
	Volume    *Number
	Timestamp *Timestamp
}
