package repositories

import (
	"errors"
	"testing"

	"limpamais-api/models"
)

func TestOrderTransition_PersistsProduced(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, 100, 10)
	repo := NewOrderRepository(db)

	order := models.Order{RefCode: "ORD-1", ProductID: product.ID, Quantity: 10, Status: models.OrderInProduction}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}

	updated, err := repo.Transition(order.ID, func(o *models.Order) error {
		return o.RecordProduction(7)
	})
	if err != nil {
		t.Fatalf("Transition(RecordProduction 7) error: %v", err)
	}
	if updated.Produced != 7 || updated.Status != models.OrderInProduction {
		t.Fatalf("expected produced=7 in_production, got produced=%d status=%s", updated.Produced, updated.Status)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if stored.Produced != 7 {
		t.Fatalf("stored produced expected 7, got %d", stored.Produced)
	}

	// Second increment clamps at the target and completes the order.
	updated, err = repo.Transition(order.ID, func(o *models.Order) error {
		return o.RecordProduction(5)
	})
	if err != nil {
		t.Fatalf("Transition(RecordProduction 5) error: %v", err)
	}
	if updated.Produced != 10 || updated.Status != models.OrderCompleted {
		t.Fatalf("expected produced=10 completed, got produced=%d status=%s", updated.Produced, updated.Status)
	}

	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if stored.Produced != 10 || stored.Status != models.OrderCompleted {
		t.Fatalf("stored order expected produced=10 completed, got produced=%d status=%s", stored.Produced, stored.Status)
	}
}

func TestOrderTransition_InvalidLeavesRowUntouched(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, 100, 10)
	repo := NewOrderRepository(db)

	order := models.Order{RefCode: "ORD-2", ProductID: product.ID, Quantity: 10, Produced: 10, Status: models.OrderCompleted}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}

	_, err := repo.Transition(order.ID, func(o *models.Order) error {
		return o.Advance()
	})
	if !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("Transition error = %v, want ErrInvalidTransition", err)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if stored.Status != models.OrderCompleted {
		t.Fatalf("stored status expected %s, got %s", models.OrderCompleted, stored.Status)
	}
}

func TestOrderTransition_UnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.Transition(999, func(o *models.Order) error {
		return o.Advance()
	})
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("Transition error = %v, want ErrOrderNotFound", err)
	}
}
