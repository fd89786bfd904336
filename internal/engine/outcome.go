package engine

import (
	"fmt"

	"spectral-server/internal/domain"
)

// Winner - итоговая классификация прогона.
type Winner uint8

const (
	// WinnerNone - "призрак заскучал и ушел": никто внятно не выиграл.
	WinnerNone Winner = iota
	WinnerGhost
	WinnerHunters
)

func (w Winner) String() string {
	switch w {
	case WinnerGhost:
		return "ghost"
	case WinnerHunters:
		return "hunters"
	default:
		return "none"
	}
}

// HunterReport - итоговое состояние одного охотника для отчета.
type HunterReport struct {
	Name     string
	Fear     int
	Boredom  int
	Exit     domain.ExitReason
	Evidence []domain.EvidenceKind
}

// Verdict - результат арбитража после join всех задач.
type Verdict struct {
	Winner Winner

	FearCount    int
	BoredomCount int
	HunterTotal  int

	GhostClass   domain.GhostClass
	GhostBoredom int

	EvidenceKinds []domain.EvidenceKind

	// Identified заполняется только при победе охотников.
	// Сама победа корректности опознания не требует.
	Identified        domain.GhostClass
	IdentifiedCorrect bool

	Hunters []HunterReport
}

// EvaluateOutcome выполняет арбитраж. Вызывается ровно один раз,
// после завершения всех горутин акторов: join дает видимость
// счетчиков без дополнительной синхронизации.
func (s *Simulation) EvaluateOutcome() Verdict {
	hunters := s.House.Hunters()

	v := Verdict{
		GhostClass:    s.Ghost.Class,
		GhostBoredom:  s.Ghost.Boredom,
		HunterTotal:   s.Config.HunterCount,
		EvidenceKinds: s.House.Evidence.Kinds(),
		Identified:    domain.ClassUnknown,
	}

	// 1. Подсчет терминальных состояний.
	if len(hunters) == 0 {
		// Пустой ростер трактуем как полное бегство.
		v.FearCount = v.HunterTotal
	}
	for _, h := range hunters {
		v.Hunters = append(v.Hunters, HunterReport{
			Name:     h.Name,
			Fear:     h.Fear,
			Boredom:  h.Boredom,
			Exit:     h.Exit,
			Evidence: append([]domain.EvidenceKind(nil), h.Evidence...),
		})
		if h.Fear >= s.Config.FearMax {
			v.FearCount++
		}
		if h.Boredom >= s.Config.BoredomMax {
			v.BoredomCount++
		}
	}

	// 2. Классификация исхода.
	switch {
	case v.FearCount == v.HunterTotal || v.BoredomCount == v.HunterTotal:
		v.Winner = WinnerGhost

	case len(v.EvidenceKinds) == s.Config.EvidenceGoal && v.GhostBoredom < s.Config.BoredomMax:
		v.Winner = WinnerHunters
		v.Identified = domain.IdentifyClass(v.EvidenceKinds)
		v.IdentifiedCorrect = v.Identified == s.Ghost.Class

	default:
		v.Winner = WinnerNone
	}

	s.emit(domain.EventVerdict, "", "", v.Summary())
	return v
}

// Summary возвращает короткую строку итога для логов и журнала.
func (v Verdict) Summary() string {
	switch v.Winner {
	case WinnerGhost:
		return fmt.Sprintf("ghost wins (feared %d/%d, bored %d/%d)",
			v.FearCount, v.HunterTotal, v.BoredomCount, v.HunterTotal)
	case WinnerHunters:
		return fmt.Sprintf("hunters win, identified %s (actual %s, correct=%t)",
			v.Identified, v.GhostClass, v.IdentifiedCorrect)
	default:
		return "the ghost got bored and left"
	}
}
