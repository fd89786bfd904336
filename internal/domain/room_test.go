package domain

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"
)

func TestRoom_HunterRoster(t *testing.T) {
	room := NewRoom("Kitchen")

	a := NewHunter("A", EvidenceEMF, room)
	b := NewHunter("B", EvidenceSound, room)
	c := NewHunter("C", EvidenceTemperature, room)
	room.AddHunter(a)
	room.AddHunter(b)
	room.AddHunter(c)

	if room.HunterCount() != 3 {
		t.Fatalf("Expected 3 hunters, got %d", room.HunterCount())
	}

	// Удаление среднего сохраняет порядок остальных
	room.RemoveHunter(b)
	hunters := room.Hunters()
	if len(hunters) != 2 || hunters[0] != a || hunters[1] != c {
		t.Errorf("Roster order broken after removal: %v", hunters)
	}

	// Повторное удаление - тихий no-op
	room.RemoveHunter(b)
	if room.HunterCount() != 2 {
		t.Error("Removing absent hunter changed the roster")
	}
}

func TestRoom_Evidence(t *testing.T) {
	room := NewRoom("Basement")

	room.AddEvidence(EvidenceEMF)
	room.AddEvidence(EvidenceEMF)
	room.AddEvidence(EvidenceSound)

	if !room.HasEvidence(EvidenceEMF) || !room.HasEvidence(EvidenceSound) {
		t.Error("Deposited evidence not found")
	}
	if room.HasEvidence(EvidenceFingerprints) {
		t.Error("Found evidence that was never deposited")
	}
	// Дубликаты в комнате допустимы (в отличие от общей коллекции)
	if len(room.Evidence()) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(room.Evidence()))
	}

	// Невалидный тип - no-op
	room.AddEvidence(EvidenceUnknown)
	if len(room.Evidence()) != 3 {
		t.Error("Invalid kind was appended")
	}
}

// Конкурентные вставки в один ростер: без потерянных обновлений.
func TestRoom_ConcurrentAddHunter(t *testing.T) {
	room := NewRoom("Hallway")
	const n = 64

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			room.AddHunter(NewHunter(fmt.Sprintf("h%d", i), EvidenceEMF, room))
		}(i)
	}
	wg.Wait()

	if room.HunterCount() != n {
		t.Errorf("Lost updates: expected %d hunters, got %d", n, room.HunterCount())
	}
}

// После завершения всех перемещений каждый охотник ровно в одном ростере.
func TestHunter_RelocateSettles(t *testing.T) {
	a := NewRoom("A")
	b := NewRoom("B")
	c := NewRoom("C")
	Connect(a, b)
	Connect(b, c)

	hunters := make([]*Hunter, 8)
	for i := range hunters {
		h := NewHunter(fmt.Sprintf("h%d", i), EvidenceEMF, a)
		a.AddHunter(h)
		hunters[i] = h
	}

	var wg sync.WaitGroup
	for i, h := range hunters {
		wg.Add(1)
		go func(h *Hunter, seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for j := 0; j < 100; j++ {
				h.Relocate(rng)
			}
		}(h, int64(i))
	}
	wg.Wait()

	total := a.HunterCount() + b.HunterCount() + c.HunterCount()
	if total != len(hunters) {
		t.Fatalf("Expected %d hunters across rosters, got %d", len(hunters), total)
	}
	for _, h := range hunters {
		room := h.CurrentRoom()
		found := false
		for _, cur := range room.Hunters() {
			if cur == h {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Hunter %s is not in the roster of its own room %s", h.Name, room.Name)
		}
	}
}

func TestHunter_RelocateStaysAdjacent(t *testing.T) {
	h := BuildDefaultHouse(3)
	van := h.FindRoom(VanRoomName)
	hunter := NewHunter("A", EvidenceEMF, van)
	van.AddHunter(hunter)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		before := hunter.CurrentRoom()
		next := hunter.Relocate(rng)
		if next == nil {
			t.Fatal("Relocate returned nil inside a connected house")
		}
		if !before.IsAdjacent(next) {
			t.Fatalf("Moved %s -> %s without an edge", before.Name, next.Name)
		}
	}
}
