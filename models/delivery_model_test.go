package models

import "testing"

func TestMovementDelta(t *testing.T) {
	cases := []struct {
		movementType string
		quantity     int
		expected     int
	}{
		{MovementIncoming, 20, 20},
		{MovementProductionIncoming, 15, 15},
		{MovementOutgoing, 50, -50},
		{MovementProductionOutgoing, 7, -7},
	}
	for _, tc := range cases {
		delta, err := MovementDelta(tc.movementType, tc.quantity)
		if err != nil {
			t.Fatalf("MovementDelta(%q, %d) error: %v", tc.movementType, tc.quantity, err)
		}
		if delta != tc.expected {
			t.Fatalf("MovementDelta(%q, %d) expected %d, got %d", tc.movementType, tc.quantity, tc.expected, delta)
		}
	}
}

func TestMovementDelta_UnknownType(t *testing.T) {
	if _, err := MovementDelta("transfer", 10); err == nil {
		t.Fatal("MovementDelta(\"transfer\", 10) error = nil, want error")
	}
}

// Applying a sequence of movements must chain the snapshots: each entry's
// previous stock equals the prior entry's current stock.
func TestMovementDelta_SnapshotChain(t *testing.T) {
	stock := 100

	movements := []struct {
		movementType string
		quantity     int
		expectedPrev int
		expectedCurr int
	}{
		{MovementIncoming, 20, 100, 120},
		{MovementOutgoing, 50, 120, 70},
		{MovementOutgoing, 80, 70, -10}, // stock is not clamped at zero
	}

	for _, m := range movements {
		delta, err := MovementDelta(m.movementType, m.quantity)
		if err != nil {
			t.Fatalf("MovementDelta(%q, %d) error: %v", m.movementType, m.quantity, err)
		}

		prev := stock
		stock += delta

		if prev != m.expectedPrev || stock != m.expectedCurr {
			t.Fatalf("%s %d: expected snapshots %d -> %d, got %d -> %d",
				m.movementType, m.quantity, m.expectedPrev, m.expectedCurr, prev, stock)
		}
	}
}
