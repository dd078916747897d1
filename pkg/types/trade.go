package types

// DefaultMaxSlippagePct is the slippage ceiling applied when a request
// does not specify one.
const DefaultMaxSlippagePct = 5.0

// TradeRequest describes a single swap to be routed. AmountIn is expressed
// in the source asset's smallest units. Immutable once constructed.
type TradeRequest struct {
	Source         AssetDescriptor
	Target         AssetDescriptor
	AmountIn       float64
	Network        Network
	MaxSlippagePct float64
}

// Validate rejects malformed requests before any simulation runs.
func (r TradeRequest) Validate() error {
	if r.AmountIn <= 0 {
		return &InvalidRequestError{Field: "amount", Reason: "trade amount must be positive"}
	}
	if !r.Network.Valid() {
		return &InvalidRequestError{Field: "network", Reason: "unknown network " + string(r.Network)}
	}
	if r.Source.Decimals < 0 {
		return &InvalidRequestError{Field: "source", Reason: "negative decimal precision"}
	}
	if r.Target.Decimals < 0 {
		return &InvalidRequestError{Field: "target", Reason: "negative decimal precision"}
	}
	if r.MaxSlippagePct < 0 {
		return &InvalidRequestError{Field: "max_slippage", Reason: "slippage ceiling must be non-negative"}
	}

	return nil
}

// FeeSignal carries current and trailing-average fee price levels in gwei.
type FeeSignal struct {
	CurrentGwei float64
	AverageGwei float64
}
