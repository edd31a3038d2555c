package wallet

import "fmt"

// PolygonChainID is the only network the JPYC receive flow supports
const PolygonChainID uint64 = 137

var networks = map[uint64]string{
	1:        "Ethereum",
	10:       "Optimism",
	137:      "Polygon",
	8453:     "Base",
	42161:    "Arbitrum One",
	43114:    "Avalanche C-Chain",
	80002:    "Polygon Amoy",
	11155111: "Sepolia",
}

// NetworkName returns a display name for a chain id
func NetworkName(chainID uint64) string {
	if chainID == 0 {
		return "unknown network"
	}
	if name, ok := networks[chainID]; ok {
		return name
	}
	return fmt.Sprintf("chain %d", chainID)
}
