package engine

import (
	"strings"
	"testing"

	"spectral-server/internal/domain"
)

// Helper: собранный прогон без запуска горутин - состояние для арбитража
// выставляется руками.
func buildSimForArbitration(t *testing.T) *Simulation {
	t.Helper()
	sim, err := NewSimulation(testConfig(1), nil)
	if err != nil {
		t.Fatalf("Failed to build simulation: %v", err)
	}
	return sim
}

func TestEvaluateOutcome_GhostWinsByFear(t *testing.T) {
	sim := buildSimForArbitration(t)

	for _, h := range sim.Hunters {
		h.Fear = sim.Config.FearMax
		h.Exit = domain.ExitFeared
	}

	v := sim.EvaluateOutcome()
	if v.Winner != WinnerGhost {
		t.Fatalf("Expected ghost win, got %v", v.Winner)
	}
	if v.FearCount != sim.Config.HunterCount {
		t.Errorf("Expected fear count %d, got %d", sim.Config.HunterCount, v.FearCount)
	}
	if !strings.Contains(v.Summary(), "ghost wins") {
		t.Errorf("Unexpected summary: %q", v.Summary())
	}
}

func TestEvaluateOutcome_GhostWinsByBoredom(t *testing.T) {
	sim := buildSimForArbitration(t)

	for _, h := range sim.Hunters {
		h.Boredom = sim.Config.BoredomMax
		h.Exit = domain.ExitBored
	}

	if v := sim.EvaluateOutcome(); v.Winner != WinnerGhost {
		t.Fatalf("Expected ghost win, got %v", v.Winner)
	}
}

// Смешанные выходы (часть от страха, часть от скуки) - победы призрака нет.
func TestEvaluateOutcome_MixedExitsIsNotGhostWin(t *testing.T) {
	sim := buildSimForArbitration(t)

	sim.Hunters[0].Fear = sim.Config.FearMax
	sim.Hunters[1].Fear = sim.Config.FearMax
	sim.Hunters[2].Boredom = sim.Config.BoredomMax
	sim.Hunters[3].Boredom = sim.Config.BoredomMax

	if v := sim.EvaluateOutcome(); v.Winner != WinnerNone {
		t.Fatalf("Expected no winner, got %v", v.Winner)
	}
}

func TestEvaluateOutcome_HuntersWinAndIdentify(t *testing.T) {
	sim := buildSimForArbitration(t)

	// Полный набор улик реального класса призрака
	for _, k := range domain.EvidenceFor(sim.Ghost.Class) {
		if err := sim.House.Evidence.Add(k); err != nil {
			t.Fatalf("Failed to seed evidence: %v", err)
		}
	}

	v := sim.EvaluateOutcome()
	if v.Winner != WinnerHunters {
		t.Fatalf("Expected hunters win, got %v", v.Winner)
	}
	if v.Identified != sim.Ghost.Class || !v.IdentifiedCorrect {
		t.Errorf("Expected correct identification of %v, got %v", sim.Ghost.Class, v.Identified)
	}
}

// Полный набор при заскучавшем призраке - охотники не выигрывают.
func TestEvaluateOutcome_BoredGhostBlocksHunterWin(t *testing.T) {
	sim := buildSimForArbitration(t)

	for _, k := range domain.EvidenceFor(sim.Ghost.Class) {
		if err := sim.House.Evidence.Add(k); err != nil {
			t.Fatalf("Failed to seed evidence: %v", err)
		}
	}
	sim.Ghost.Boredom = sim.Config.BoredomMax

	v := sim.EvaluateOutcome()
	if v.Winner != WinnerNone {
		t.Fatalf("Expected no winner, got %v", v.Winner)
	}
	if v.Identified != domain.ClassUnknown {
		t.Error("Identification must be skipped without a hunters win")
	}
	if v.Summary() != "the ghost got bored and left" {
		t.Errorf("Unexpected summary: %q", v.Summary())
	}
}

func TestEvaluateOutcome_PartialEvidenceIsDraw(t *testing.T) {
	sim := buildSimForArbitration(t)

	if err := sim.House.Evidence.Add(domain.EvidenceEMF); err != nil {
		t.Fatalf("Failed to seed evidence: %v", err)
	}

	if v := sim.EvaluateOutcome(); v.Winner != WinnerNone {
		t.Fatalf("Expected no winner with partial evidence, got %v", v.Winner)
	}
}

func TestEvaluateOutcome_HunterReports(t *testing.T) {
	sim := buildSimForArbitration(t)

	sim.Hunters[0].Fear = 7
	sim.Hunters[0].Exit = domain.ExitGameOver
	sim.Hunters[0].Evidence = []domain.EvidenceKind{domain.EvidenceEMF}

	v := sim.EvaluateOutcome()
	if len(v.Hunters) != sim.Config.HunterCount {
		t.Fatalf("Expected %d reports, got %d", sim.Config.HunterCount, len(v.Hunters))
	}
	r := v.Hunters[0]
	if r.Fear != 7 || r.Exit != domain.ExitGameOver || len(r.Evidence) != 1 {
		t.Errorf("Report does not mirror hunter state: %+v", r)
	}
}
