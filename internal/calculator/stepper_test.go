package calculator

import "testing"

func TestStepper(t *testing.T) {
	if got := DecrementPeople(1); got != 1 {
		t.Errorf("DecrementPeople(1) = %d, want 1", got)
	}
	if got := IncrementPeople(20); got != 20 {
		t.Errorf("IncrementPeople(20) = %d, want 20", got)
	}
	if got := IncrementPeople(3); got != 4 {
		t.Errorf("IncrementPeople(3) = %d, want 4", got)
	}
	if got := DecrementPeople(-5); got != MinPeople {
		t.Errorf("DecrementPeople(-5) = %d, want %d", got, MinPeople)
	}
	if got := IncrementPeople(99); got != MaxPeople {
		t.Errorf("IncrementPeople(99) = %d, want %d", got, MaxPeople)
	}
}

func TestStepperStaysInRange(t *testing.T) {
	n := MinPeople
	for i := 0; i < 50; i++ {
		n = IncrementPeople(n)
		if n < MinPeople || n > MaxPeople {
			t.Fatalf("IncrementPeople produced %d", n)
		}
	}
	if n != MaxPeople {
		t.Errorf("after 50 increments n = %d, want %d", n, MaxPeople)
	}
	for i := 0; i < 50; i++ {
		n = DecrementPeople(n)
		if n < MinPeople || n > MaxPeople {
			t.Fatalf("DecrementPeople produced %d", n)
		}
	}
	if n != MinPeople {
		t.Errorf("after 50 decrements n = %d, want %d", n, MinPeople)
	}
}

func TestStepperButtons(t *testing.T) {
	if CanDecrement(1) || !CanDecrement(2) {
		t.Error("CanDecrement should be false only at the minimum")
	}
	if CanIncrement(20) || !CanIncrement(19) {
		t.Error("CanIncrement should be false only at the maximum")
	}
}
