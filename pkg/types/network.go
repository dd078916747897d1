package types

import "fmt"

// Network identifies a supported blockchain network.
type Network string

const (
	NetworkEthereum Network = "ethereum"
	NetworkPolygon  Network = "polygon"
	NetworkArbitrum Network = "arbitrum"
	NetworkOptimism Network = "optimism"
	NetworkBase     Network = "base"
)

// AllNetworks lists every supported network in a fixed order.
// Iteration order matters for deterministic route selection.
func AllNetworks() []Network {
	return []Network{NetworkEthereum, NetworkPolygon, NetworkArbitrum, NetworkOptimism, NetworkBase}
}

// ParseNetwork converts a user-supplied identifier into a Network.
func ParseNetwork(s string) (Network, error) {
	switch Network(s) {
	case NetworkEthereum, NetworkPolygon, NetworkArbitrum, NetworkOptimism, NetworkBase:
		return Network(s), nil
	}

	return "", &InvalidRequestError{Field: "network", Reason: fmt.Sprintf("unknown network %q", s)}
}

// Valid reports whether the network is a member of the supported set.
func (n Network) Valid() bool {
	_, err := ParseNetwork(string(n))
	return err == nil
}
