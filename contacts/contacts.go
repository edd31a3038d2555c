// Package contacts holds the demo address book.
package contacts

// Contact is an address book entry
type Contact struct {
	Name    string
	Initial string
	Address string
}

// Demo returns the static address book
func Demo() []Contact {
	return []Contact{
		{Name: "User A", Initial: "A", Address: "0x123...456"},
		{Name: "User B", Initial: "B", Address: "0x123...456"},
		{Name: "User C", Initial: "C", Address: "0x123...456"},
	}
}
