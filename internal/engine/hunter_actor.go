package engine

import (
	"errors"
	"time"

	"spectral-server/internal/domain"
	"spectral-server/internal/systems"
	"spectral-server/pkg/logger"
	"spectral-server/pkg/utils"
)

// runHunter - цикл горутины одного охотника.
//
// Каждый тик: присутствие призрака -> страх/скука -> пороги выхода ->
// бросок кубика (перемещение / сбор улики / разбор собранного).
func (s *Simulation) runHunter(h *domain.Hunter) {
	defer s.wg.Done()

	rng := utils.NewActorRand(s.Config.Seed, "hunter/"+h.Name)

	for {
		// 1. Кооперативная отмена.
		if s.GameOverRequested() {
			h.Exit = domain.ExitGameOver
			s.emit(domain.EventHunterExit, h.Name, roomName(h.CurrentRoom()), h.Exit.String())
			return
		}

		// 2. Страх и скука. Оба счетчика зажаты сверху.
		if systems.IsGhostPresent(h, s.Ghost) {
			if h.Fear < s.Config.FearMax {
				h.Fear++
			}
			h.Boredom = 0
		} else if h.Boredom < s.Config.BoredomMax {
			h.Boredom++
		}

		if h.Fear >= s.Config.FearMax || h.Boredom >= s.Config.BoredomMax {
			if h.Fear >= s.Config.FearMax {
				h.Exit = domain.ExitFeared
			} else {
				h.Exit = domain.ExitBored
			}
			s.House.DecrementLive()
			s.emit(domain.EventHunterExit, h.Name, roomName(h.CurrentRoom()), h.Exit.String())
			return
		}

		// 3. Кубик охотника.
		switch systems.ChooseHunterAction(rng) {
		case systems.HunterRelocate:
			if next := h.Relocate(rng); next != nil {
				s.emit(domain.EventHunterMove, h.Name, next.Name, "")
			}

		case systems.HunterCollect:
			s.collectEvidence(h)

		case systems.HunterReview:
			if s.reviewEvidence(h) {
				return
			}
		}

		// Хвост оригинального цикла: полный набор улик останавливает всех.
		if s.Config.BroadcastSufficient && s.House.Evidence.Len() >= s.Config.EvidenceGoal {
			s.RequestGameOver()
		}

		time.Sleep(s.Config.HunterWait)
	}
}

// collectEvidence пытается забрать из текущей комнаты улику,
// подходящую под снаряжение охотника. Проверка комнаты и вставка
// в общую коллекцию - две независимые критические секции.
func (s *Simulation) collectEvidence(h *domain.Hunter) {
	room := h.CurrentRoom()
	if room == nil || !room.HasEvidence(h.Equipment) {
		return
	}

	if err := s.House.Evidence.Add(h.Equipment); err != nil {
		// Переполнение и дубликат не фатальны: тик просто продолжается.
		if errors.Is(err, domain.ErrEvidenceFull) || errors.Is(err, domain.ErrEvidenceDuplicate) {
			logger.Log.WithField("hunter", h.Name).WithField("kind", h.Equipment.String()).
				Debug("Evidence rejected: ", err)
			return
		}
		logger.Log.WithField("hunter", h.Name).Error("Evidence insert failed: ", err)
		return
	}

	h.Evidence = append(h.Evidence, h.Equipment)
	s.emit(domain.EventHunterCollect, h.Name, room.Name, h.Equipment.String())
}

// reviewEvidence разбирает общую коллекцию. При полном наборе охотник
// выходит сам; остановка остальных зависит от BroadcastSufficient.
// Возвращает true, если охотник вышел.
func (s *Simulation) reviewEvidence(h *domain.Hunter) bool {
	if s.House.Evidence.Len() >= s.Config.EvidenceGoal {
		h.Exit = domain.ExitSufficient
		s.House.DecrementLive()
		s.emit(domain.EventHunterReview, h.Name, roomName(h.CurrentRoom()), "sufficient")
		s.emit(domain.EventHunterExit, h.Name, roomName(h.CurrentRoom()), h.Exit.String())
		if s.Config.BroadcastSufficient {
			s.RequestGameOver()
		}
		return true
	}

	s.emit(domain.EventHunterReview, h.Name, roomName(h.CurrentRoom()), "insufficient")
	return false
}
