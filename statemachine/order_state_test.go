package statemachine

import (
	"testing"

	"brew-and-bite-api/models"
)

func TestKitchenMarksOrderReady(t *testing.T) {
	if err := CanTransition(models.StatusPreparing, models.StatusReady, ActorKitchen); err != nil {
		t.Fatalf("kitchen should move preparing to ready: %v", err)
	}
}

func TestSystemNotifiesReadyOrder(t *testing.T) {
	if err := CanTransition(models.StatusReady, models.StatusNotified, ActorSystem); err != nil {
		t.Fatalf("system should move ready to notified: %v", err)
	}
}

func TestSkippingReadyIsRejected(t *testing.T) {
	if err := CanTransition(models.StatusPreparing, models.StatusNotified, ActorSystem); err == nil {
		t.Fatal("preparing must not jump straight to notified")
	}
}

func TestWrongActorIsRejected(t *testing.T) {
	if err := CanTransition(models.StatusPreparing, models.StatusReady, ActorSystem); err == nil {
		t.Fatal("only the kitchen marks orders ready")
	}
}

func TestNotifiedIsTerminal(t *testing.T) {
	if nexts := ValidTransitionsFrom(models.StatusNotified); len(nexts) != 0 {
		t.Fatalf("notified is terminal, got next states %v", nexts)
	}
}
