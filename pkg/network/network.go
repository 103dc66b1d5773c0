// Package network defines the closed set of blockchain networks the
// pipeline knows how to ingest, and the schema/channel naming derived from
// each one.
package network

import "fmt"

// Tag identifies one of the supported networks. The zero value is invalid.
type Tag int

const (
	Unknown Tag = iota
	Ethereum
	Zksync
	Polygon
	Optimism
	Arbitrum
	Linea
	Avalanche
	Bsc
	Base
)

var names = map[Tag]string{
	Ethereum:  "ethereum",
	Zksync:    "zksync",
	Polygon:   "polygon",
	Optimism:  "optimism",
	Arbitrum:  "arbitrum",
	Linea:     "linea",
	Avalanche: "avalanche",
	Bsc:       "bsc",
	Base:      "base",
}

var byName = func() map[string]Tag {
	m := make(map[string]Tag, len(names))
	for tag, name := range names {
		m[name] = tag
	}
	return m
}()

// String returns the lowercase tag, used as both the Postgres schema name
// and the queue channel prefix.
func (t Tag) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "unknown"
}

// Schema returns the per-network Postgres schema name. It is identical to
// String but named separately so call sites read intention, not just value.
func (t Tag) Schema() string { return t.String() }

// Valid reports whether t is one of the nine supported tags.
func (t Tag) Valid() bool {
	_, ok := names[t]
	return ok
}

// Parse maps a lowercase network name (as found in configuration) to its
// Tag. An unrecognised name is an error: the set of networks is closed and
// a typo in configuration must not silently create a new schema.
func Parse(name string) (Tag, error) {
	if t, ok := byName[name]; ok {
		return t, nil
	}
	return Unknown, fmt.Errorf("network: unrecognised tag %q", name)
}

// All returns every supported tag, in a stable order, for iteration over
// configuration sections and migration application.
func All() []Tag {
	return []Tag{Ethereum, Zksync, Polygon, Optimism, Arbitrum, Linea, Avalanche, Bsc, Base}
}
