package models

import (
	"errors"
	"testing"
)

func TestOrderAdvance(t *testing.T) {
	order := Order{Status: OrderPending}
	if err := order.Advance(); err != nil {
		t.Fatalf("Advance() from pending error: %v", err)
	}
	if order.Status != OrderInProduction {
		t.Fatalf("Advance() expected status %s, got %s", OrderInProduction, order.Status)
	}

	for _, status := range []string{OrderInProduction, OrderCompleted, OrderCancelled} {
		order := Order{Status: status}
		if err := order.Advance(); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("Advance() from %s error = %v, want ErrInvalidTransition", status, err)
		}
	}
}

func TestOrderCancel(t *testing.T) {
	for _, status := range []string{OrderPending, OrderInProduction} {
		order := Order{Status: status}
		if err := order.Cancel(); err != nil {
			t.Fatalf("Cancel() from %s error: %v", status, err)
		}
		if order.Status != OrderCancelled {
			t.Fatalf("Cancel() from %s expected status %s, got %s", status, OrderCancelled, order.Status)
		}
	}

	for _, status := range []string{OrderCompleted, OrderCancelled} {
		order := Order{Status: status}
		if err := order.Cancel(); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("Cancel() from %s error = %v, want ErrInvalidTransition", status, err)
		}
	}
}

func TestOrderRecordProduction(t *testing.T) {
	order := Order{Status: OrderInProduction, Quantity: 10}

	if err := order.RecordProduction(7); err != nil {
		t.Fatalf("RecordProduction(7) error: %v", err)
	}
	if order.Produced != 7 || order.Status != OrderInProduction {
		t.Fatalf("after RecordProduction(7) expected produced=7 in_production, got produced=%d status=%s", order.Produced, order.Status)
	}

	// Over-production clamps at the target and completes the order.
	if err := order.RecordProduction(5); err != nil {
		t.Fatalf("RecordProduction(5) error: %v", err)
	}
	if order.Produced != 10 {
		t.Fatalf("expected produced clamped at 10, got %d", order.Produced)
	}
	if order.Status != OrderCompleted {
		t.Fatalf("expected status %s, got %s", OrderCompleted, order.Status)
	}
}

func TestOrderRecordProduction_Invalid(t *testing.T) {
	order := Order{Status: OrderPending, Quantity: 10}
	if err := order.RecordProduction(1); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("RecordProduction on pending order error = %v, want ErrInvalidTransition", err)
	}

	order = Order{Status: OrderInProduction, Quantity: 10}
	for _, amount := range []int{0, -3} {
		if err := order.RecordProduction(amount); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("RecordProduction(%d) error = %v, want ErrInvalidTransition", amount, err)
		}
	}
}
