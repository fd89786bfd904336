package utils

import "testing"

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if len(a) != 16 {
		t.Errorf("Expected 16 hex chars, got %d", len(a))
	}
	if a == b {
		t.Error("Two IDs should not collide")
	}
}

func TestStringToSeed_Deterministic(t *testing.T) {
	if StringToSeed("ghost") != StringToSeed("ghost") {
		t.Error("Same string must map to the same seed")
	}
	if StringToSeed("ghost") == StringToSeed("hunter/Alex") {
		t.Error("Different strings should map to different seeds")
	}
}

// Генераторы акторов: одинаковая пара (зерно, имя) дает одинаковый поток,
// разные имена при одном зерне - разные потоки.
func TestNewActorRand(t *testing.T) {
	a := NewActorRand(42, "hunter/Alex")
	b := NewActorRand(42, "hunter/Alex")
	c := NewActorRand(42, "hunter/Morgan")

	same, diff := true, false
	for i := 0; i < 32; i++ {
		x := a.Intn(1000)
		if x != b.Intn(1000) {
			same = false
		}
		if x != c.Intn(1000) {
			diff = true
		}
	}
	if !same {
		t.Error("Identical actors must produce identical streams")
	}
	if !diff {
		t.Error("Different actors must produce different streams")
	}
}

func TestRandInt_Bounds(t *testing.T) {
	rng := NewActorRand(1, "test")
	for i := 0; i < 100; i++ {
		v := RandInt(rng, 5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("RandInt out of [5,10): %d", v)
		}
	}
	if RandInt(rng, 7, 7) != 7 {
		t.Error("Degenerate range should return min")
	}
}
