package types

import "fmt"

// Venue identifies a liquidity-provider model with its own pricing formula.
type Venue string

const (
	VenueUniswapV3 Venue = "uniswap_v3"
	VenueUniswapV2 Venue = "uniswap_v2"
	VenueOneInch   Venue = "1inch"
	VenueCurve     Venue = "curve"
	VenueBalancer  Venue = "balancer"
)

// AllVenues lists every supported venue in a fixed order.
func AllVenues() []Venue {
	return []Venue{VenueUniswapV3, VenueUniswapV2, VenueOneInch, VenueCurve, VenueBalancer}
}

// DefaultVenues is the venue set used when a caller does not specify one.
func DefaultVenues() []Venue {
	return []Venue{VenueUniswapV3, VenueOneInch, VenueCurve}
}

// ParseVenue converts a user-supplied identifier into a Venue.
func ParseVenue(s string) (Venue, error) {
	switch Venue(s) {
	case VenueUniswapV3, VenueUniswapV2, VenueOneInch, VenueCurve, VenueBalancer:
		return Venue(s), nil
	}

	return "", &InvalidRequestError{Field: "venue", Reason: fmt.Sprintf("unknown venue %q", s)}
}

// Valid reports whether the venue is a member of the supported set.
func (v Venue) Valid() bool {
	_, err := ParseVenue(string(v))
	return err == nil
}
