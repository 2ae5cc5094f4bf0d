package engine

import (
	"math/rand"
	"testing"
)

func TestNewUnit(t *testing.T) {
	unit, err := NewUnit(1, 10, [2]int{2, 4}, 3)
	if err != nil {
		t.Fatalf("NewUnit failed: %v", err)
	}

	if unit.Player != 1 || unit.HP != 10 || unit.Speed != 3 {
		t.Errorf("Unexpected unit stats: %+v", unit)
	}
	if unit.Movements != unit.Speed {
		t.Errorf("Expected full movement budget %d, got %d", unit.Speed, unit.Movements)
	}

	if _, err := NewUnit(1, 10, [2]int{5, 4}, 3); err != ErrDamageRange {
		t.Errorf("Expected ErrDamageRange for inverted damage, got %v", err)
	}
}

func TestUnitChangeHP(t *testing.T) {
	unit, _ := NewUnit(0, 10, [2]int{1, 2}, 1)

	unit.ChangeHP(-4)
	if unit.HP != 6 {
		t.Errorf("Expected 6 hp, got %d", unit.HP)
	}

	unit.ChangeHP(3)
	if unit.HP != 9 {
		t.Errorf("Expected 9 hp, got %d", unit.HP)
	}

	// HP clamps at zero, never negative.
	unit.ChangeHP(-100)
	if unit.HP != 0 {
		t.Errorf("Expected 0 hp, got %d", unit.HP)
	}
}

func TestUnitMovements(t *testing.T) {
	unit, _ := NewUnit(0, 10, [2]int{1, 2}, 3)

	if unit.HasMoved() {
		t.Error("Fresh unit should not have moved")
	}
	if unit.HasNoMoves() {
		t.Error("Fresh unit should have moves")
	}

	unit.ChangeMovements(2)
	if unit.Movements != 1 {
		t.Errorf("Expected 1 movement left, got %d", unit.Movements)
	}
	if !unit.HasMoved() {
		t.Error("Unit should have moved")
	}

	unit.ChangeMovements(1)
	if !unit.HasNoMoves() {
		t.Error("Unit should be out of moves")
	}

	unit.RestoreMovements()
	if unit.Movements != unit.Speed {
		t.Errorf("Expected restored budget %d, got %d", unit.Speed, unit.Movements)
	}
	if unit.HasMoved() {
		t.Error("Restored unit should not count as moved")
	}
}

func TestUnitIsMy(t *testing.T) {
	unit, _ := NewUnit(1, 10, [2]int{1, 2}, 3)

	if !unit.IsMy(1) {
		t.Error("Expected unit to belong to player 1")
	}
	if unit.IsMy(0) {
		t.Error("Expected unit not to belong to player 0")
	}
}

func TestRandomUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		unit := RandomUnit(rng, [2]int{1, 10}, [2]int{1, 5}, [2]int{1, 5}, [2]int{1, 8}, 1)

		if unit.Player != 1 {
			t.Fatalf("Expected player 1, got %d", unit.Player)
		}
		if unit.HP < 1 || unit.HP > 10 {
			t.Fatalf("HP out of range: %d", unit.HP)
		}
		// Minimum damage range is half-open on its upper end.
		if unit.Damage[0] < 1 || unit.Damage[0] > 4 {
			t.Fatalf("Min damage out of range: %d", unit.Damage[0])
		}
		interval := unit.Damage[1] - unit.Damage[0]
		if interval < 1 || interval > 5 {
			t.Fatalf("Damage interval out of range: %d", interval)
		}
		if unit.Speed < 1 || unit.Speed > 8 {
			t.Fatalf("Speed out of range: %d", unit.Speed)
		}
		if unit.Movements != unit.Speed {
			t.Fatalf("Expected full budget, got %d of %d", unit.Movements, unit.Speed)
		}
	}
}
