// Package history holds the demo transaction list shown by the wallet.
package history

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Direction of a transfer relative to the wallet
type Direction int

const (
	Receive Direction = iota
	Send
)

func (d Direction) String() string {
	if d == Send {
		return "send"
	}
	return "receive"
}

// Record is a single history entry
type Record struct {
	ID           int
	Direction    Direction
	Amount       int64
	Date         string
	Counterparty string
}

// Signed renders the amount with a direction sign and thousands separators.
func (r Record) Signed() string {
	if r.Direction == Send {
		return "-" + humanize.Comma(r.Amount)
	}
	return "+" + humanize.Comma(r.Amount)
}

// Label is the short description shown next to the amount
func (r Record) Label() string {
	if r.Direction == Send {
		return "Sent"
	}
	return "Received"
}

// Peer renders the counterparty with its preposition
func (r Record) Peer() string {
	if r.Direction == Send {
		return "To: " + r.Counterparty
	}
	return "From: " + r.Counterparty
}

var demo = []Record{
	{ID: 1, Direction: Receive, Amount: 1000, Date: "2026/01/12", Counterparty: "0x12...34"},
	{ID: 2, Direction: Send, Amount: 500, Date: "2026/01/11", Counterparty: "0xAB...CD"},
	{ID: 3, Direction: Send, Amount: 3000, Date: "2026/01/10", Counterparty: "Amazon"},
}

// Demo returns the recent records. The slice is a copy.
func Demo() []Record {
	out := make([]Record, len(demo))
	copy(out, demo)
	return out
}

// Extended returns the longer list used by the history screen: the demo
// records repeated twice with fresh IDs.
func Extended() []Record {
	out := make([]Record, 0, 2*len(demo))
	for i := 0; i < 2; i++ {
		for _, r := range demo {
			r.ID = len(out) + 1
			out = append(out, r)
		}
	}
	return out
}

// Filter returns the records whose counterparty or date contains q,
// case-insensitively. An empty query returns recs unchanged.
func Filter(recs []Record, q string) []Record {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return recs
	}
	var out []Record
	for _, r := range recs {
		if strings.Contains(strings.ToLower(r.Counterparty), q) || strings.Contains(r.Date, q) {
			out = append(out, r)
		}
	}
	return out
}
