package engine

import (
	"time"

	"spectral-server/internal/domain"
	"spectral-server/internal/systems"
	"spectral-server/pkg/utils"
)

// runGhost - цикл горутины призрака.
//
// Каждый тик: проверка наблюдения -> скука -> бросок кубика.
// Оставлять улики и перемещаться призрак может только без свидетелей.
func (s *Simulation) runGhost() {
	defer s.wg.Done()

	g := s.Ghost
	rng := utils.NewActorRand(s.Config.Seed, "ghost/"+g.Class.String())

	for {
		// 1. Кооперативная отмена - в начале каждого тика.
		if s.GameOverRequested() {
			s.emit(domain.EventGhostExit, g.Class.String(), roomName(g.CurrentRoom()), domain.ExitGameOver.String())
			return
		}

		// 2. Наблюдение и скука. Счетчик зажат в [0, max].
		observed := systems.IsGhostObserved(g)
		if observed {
			g.Boredom = 0
		} else if g.Boredom < s.Config.BoredomMax {
			g.Boredom++
		}

		if g.Boredom >= s.Config.BoredomMax {
			s.emit(domain.EventGhostExit, g.Class.String(), roomName(g.CurrentRoom()), domain.ExitBored.String())
			s.RequestGameOver()
			return
		}

		// 3. Кубик: бездействие / улика / перемещение.
		switch systems.ChooseGhostAction(rng) {
		case systems.GhostIdle:

		case systems.GhostDeposit:
			if !observed {
				if room := g.CurrentRoom(); room != nil {
					kind := domain.RandomKindFor(g.Class, rng)
					room.AddEvidence(kind)
					s.emit(domain.EventGhostEvidence, g.Class.String(), room.Name, kind.String())
				}
			}

		case systems.GhostRelocate:
			if !observed {
				if room := g.CurrentRoom(); room != nil {
					if next := room.RandomAdjacent(rng); next != nil {
						g.SetRoom(next)
						s.emit(domain.EventGhostMove, g.Class.String(), next.Name, "")
					}
				}
			}
		}

		time.Sleep(s.Config.GhostWait)
	}
}

func roomName(r *domain.Room) string {
	if r == nil {
		return ""
	}
	return r.Name
}
