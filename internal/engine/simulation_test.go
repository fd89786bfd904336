package engine

import (
	"context"
	"testing"
	"time"

	"spectral-server/internal/domain"
)

// Одинаковое зерно - одинаковая расстановка: класс призрака,
// его стартовая комната и раздача снаряжения.
func TestNewSimulation_DeterministicSetup(t *testing.T) {
	a, err := NewSimulation(testConfig(777), nil)
	if err != nil {
		t.Fatalf("Failed to build simulation: %v", err)
	}
	b, err := NewSimulation(testConfig(777), nil)
	if err != nil {
		t.Fatalf("Failed to build simulation: %v", err)
	}

	if a.Ghost.Class != b.Ghost.Class {
		t.Errorf("Ghost class differs: %v vs %v", a.Ghost.Class, b.Ghost.Class)
	}
	if a.Ghost.CurrentRoom().Name != b.Ghost.CurrentRoom().Name {
		t.Errorf("Ghost start room differs: %s vs %s",
			a.Ghost.CurrentRoom().Name, b.Ghost.CurrentRoom().Name)
	}
	for i := range a.Hunters {
		if a.Hunters[i].Equipment != b.Hunters[i].Equipment {
			t.Errorf("Equipment of hunter %d differs", i)
		}
	}
}

func TestNewSimulation_Placement(t *testing.T) {
	sim, err := NewSimulation(testConfig(5), nil)
	if err != nil {
		t.Fatalf("Failed to build simulation: %v", err)
	}

	// Призрак не в фургоне
	if sim.Ghost.CurrentRoom().Name == domain.VanRoomName {
		t.Error("Ghost must not start in the Van")
	}

	// Все охотники в фургоне, снаряжение уникально
	van := sim.House.FindRoom(domain.VanRoomName)
	if van.HunterCount() != sim.Config.HunterCount {
		t.Errorf("Expected all %d hunters in the Van, got %d",
			sim.Config.HunterCount, van.HunterCount())
	}
	seen := map[domain.EvidenceKind]bool{}
	for _, h := range sim.Hunters {
		if seen[h.Equipment] {
			t.Fatalf("Duplicate equipment %v", h.Equipment)
		}
		seen[h.Equipment] = true
	}

	if sim.House.LiveHunters() != sim.Config.HunterCount {
		t.Errorf("Live counter mismatch: %d", sim.House.LiveHunters())
	}
}

// Взведенный флаг завершает всех акторов на первом же тике.
func TestSimulation_GameOverFlagStopsActors(t *testing.T) {
	sim, err := NewSimulation(testConfig(11), nil)
	if err != nil {
		t.Fatalf("Failed to build simulation: %v", err)
	}

	sim.RequestGameOver()
	sim.Start()

	done := make(chan struct{})
	go func() {
		sim.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Actors did not observe the game-over flag")
	}

	for _, h := range sim.Hunters {
		if h.Exit != domain.ExitGameOver {
			t.Errorf("Hunter %s exit = %v, want game over", h.Name, h.Exit)
		}
	}
}

// Отмена контекста транслируется в кооперативный флаг.
func TestSimulation_ContextCancellation(t *testing.T) {
	cfg := testConfig(13)
	// Пороги практически недостижимы - без отмены прогон шел бы долго.
	// Цель в 4 улики недостижима тоже: класс призрака дает только три типа.
	cfg.FearMax = 1 << 30
	cfg.BoredomMax = 1 << 30
	cfg.EvidenceGoal = int(domain.EvidenceKindCount)
	cfg.BroadcastSufficient = false

	sim, err := NewSimulation(cfg, nil)
	if err != nil {
		t.Fatalf("Failed to build simulation: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	verdict := sim.Run(ctx)

	if !sim.GameOverRequested() {
		t.Error("Cancellation must raise the game-over flag")
	}
	for _, h := range sim.Hunters {
		if h.Exit == domain.ExitNone {
			t.Errorf("Hunter %s never exited", h.Name)
		}
	}
	if verdict.Winner != WinnerNone {
		t.Errorf("Interrupted hunt should have no winner, got %v", verdict.Winner)
	}
}

// Заскучавший призрак завершает охоту: взводит общий флаг,
// и все охотники выходят по game over, а не по своим порогам.
func TestSimulation_GhostBoredomTerminatesHunt(t *testing.T) {
	cfg := testConfig(23)
	// Пороги охотников недостижимы, цель в 4 улики тоже:
	// единственный возможный финал - скука призрака.
	cfg.FearMax = 1 << 30
	cfg.BoredomMax = 1 << 30
	cfg.EvidenceGoal = int(domain.EvidenceKindCount)
	cfg.BroadcastSufficient = false

	// Чердак изолирован: охотники до призрака не доберутся,
	// наблюдение не сбросит его скуку.
	van := domain.NewRoom(domain.VanRoomName)
	hallway := domain.NewRoom("Hallway")
	attic := domain.NewRoom("Attic")
	domain.Connect(van, hallway)

	house := domain.NewHouse(cfg.EvidenceGoal)
	house.AddRoom(van)
	house.AddRoom(hallway)
	house.AddRoom(attic)

	sim, err := newSimulationInHouse(cfg, house, nil)
	if err != nil {
		t.Fatalf("Failed to build simulation: %v", err)
	}
	sim.Ghost = domain.NewGhost(domain.ClassBullies, attic)
	// Два тика до порога - прогон завершается почти сразу
	sim.Ghost.Boredom = cfg.BoredomMax - 2

	verdict := sim.Run(context.Background())

	if !sim.GameOverRequested() {
		t.Fatal("Bored ghost must raise the game-over flag")
	}
	if sim.Ghost.Boredom != cfg.BoredomMax {
		t.Errorf("Ghost boredom = %d, want %d", sim.Ghost.Boredom, cfg.BoredomMax)
	}
	for _, h := range sim.Hunters {
		if h.Exit != domain.ExitGameOver {
			t.Errorf("Hunter %s exit = %v, want game over", h.Name, h.Exit)
		}
	}
	if verdict.Winner != WinnerNone {
		t.Errorf("Expected no winner, got %v", verdict.Winner)
	}

	// В журнале есть выход призрака по скуке
	found := false
	for _, e := range sim.Journal.Snapshot() {
		if e.Type == domain.EventGhostExit && e.Detail == domain.ExitBored.String() {
			found = true
			break
		}
	}
	if !found {
		t.Error("Journal has no bored ghost exit event")
	}
}

// Номера событий в журнале уникальны и покрывают 1..N без дыр.
func TestSimulation_JournalSequence(t *testing.T) {
	cfg := testConfig(17)
	cfg.BoredomMax = 30 // короткий прогон

	sim, err := NewSimulation(cfg, nil)
	if err != nil {
		t.Fatalf("Failed to build simulation: %v", err)
	}
	sim.Run(context.Background())

	events := sim.Journal.Snapshot()
	if len(events) == 0 {
		t.Fatal("Journal is empty")
	}
	seen := map[int64]bool{}
	for _, e := range events {
		if e.Seq < 1 || e.Seq > int64(len(events)) {
			t.Fatalf("Seq %d out of range 1..%d", e.Seq, len(events))
		}
		if seen[e.Seq] {
			t.Fatalf("Duplicate seq %d", e.Seq)
		}
		seen[e.Seq] = true
	}
}

// Сквозной сценарий: дом из трех комнат Van - Hallway - Kitchen,
// Phantom на кухне, один охотник с микрофоном в фургоне.
// Прогон всегда завершается одним из трех исходов.
func TestSimulation_EndToEndSmallHouse(t *testing.T) {
	van := domain.NewRoom(domain.VanRoomName)
	hallway := domain.NewRoom("Hallway")
	kitchen := domain.NewRoom("Kitchen")
	domain.Connect(van, hallway)
	domain.Connect(hallway, kitchen)

	for seed := int64(1); seed <= 5; seed++ {
		cfg := testConfig(seed)
		cfg.HunterCount = 1
		cfg.HunterNames = []string{"Scout"}
		cfg.EvidenceGoal = 1
		cfg.BoredomMax = 50

		house := domain.NewHouse(cfg.EvidenceGoal)
		house.AddRoom(van)
		house.AddRoom(hallway)
		house.AddRoom(kitchen)

		sim, err := newSimulationInHouse(cfg, house, nil)
		if err != nil {
			t.Fatalf("Failed to build simulation: %v", err)
		}
		// Фиксируем сценарий поверх случайной расстановки
		sim.Ghost = domain.NewGhost(domain.ClassPhantom, kitchen)
		sim.Hunters[0].Equipment = domain.EvidenceSound

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		verdict := sim.Run(ctx)
		cancel()

		if !sim.GameOverRequested() && sim.House.LiveHunters() > 0 {
			t.Fatal("Hunt ended without a terminal condition")
		}

		switch verdict.Winner {
		case WinnerHunters:
			if len(verdict.EvidenceKinds) != cfg.EvidenceGoal {
				t.Errorf("Hunters won without the full evidence set: %v", verdict.EvidenceKinds)
			}
			if verdict.GhostBoredom >= cfg.BoredomMax {
				t.Error("Hunters cannot win against a ghost that already left")
			}
		case WinnerGhost:
			h := verdict.Hunters[0]
			if h.Fear < cfg.FearMax && h.Boredom < cfg.BoredomMax {
				t.Errorf("Ghost won but hunter hit no threshold: %+v", h)
			}
		case WinnerNone:
			// Призрак заскучал и ушел - допустимый исход
		default:
			t.Fatalf("Unknown winner %v", verdict.Winner)
		}

		// Счетчики зажаты: выше порогов они не уходят ни у кого
		for _, h := range sim.Hunters {
			if h.Fear > cfg.FearMax || h.Boredom > cfg.BoredomMax {
				t.Errorf("Hunter %s counters exceed maxima: fear %d/%d, boredom %d/%d",
					h.Name, h.Fear, cfg.FearMax, h.Boredom, cfg.BoredomMax)
			}
		}
		if sim.Ghost.Boredom > cfg.BoredomMax {
			t.Errorf("Ghost boredom exceeds maximum: %d/%d", sim.Ghost.Boredom, cfg.BoredomMax)
		}

		// Очистка ростеров между прогонами
		for _, r := range []*domain.Room{van, hallway, kitchen} {
			for _, h := range r.Hunters() {
				r.RemoveHunter(h)
			}
		}
	}
}
