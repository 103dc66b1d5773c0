package primitives

import (
	"encoding/json"
	"fmt"
)

// criteriaWire is the exact shape the node expects for eth_getLogs, per §6:
// {"fromBlock":"0x...","toBlock":"0x...","address":[...],"topics":[...]}.
type criteriaWire struct {
	FromBlock string   `json:"fromBlock"`
	ToBlock   string   `json:"toBlock"`
	Address   []string `json:"address,omitempty"`
	Topics    []string `json:"topics,omitempty"`
}

// MarshalJSON renders Criteria in the node's wire shape (§8 Scenario 6).
func (c Criteria) MarshalJSON() ([]byte, error) {
	w := criteriaWire{
		FromBlock: fmt.Sprintf("0x%x", c.FromBlock),
		ToBlock:   fmt.Sprintf("0x%x", c.ToBlock),
	}
	for _, a := range c.Addresses {
		w.Address = append(w.Address, a.Hex())
	}
	for _, t := range c.Topics {
		w.Topics = append(w.Topics, t.Hex())
	}
	return json.Marshal(w)
}
