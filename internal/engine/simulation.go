package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"spectral-server/internal/domain"
	"spectral-server/pkg/logger"
	"spectral-server/pkg/utils"
)

// Simulation представляет собой один изолированный прогон охоты:
// дом, призрак, охотники и их горутины.
type Simulation struct {
	ID     string
	Config Config

	House   *domain.House
	Ghost   *domain.Ghost
	Hunters []*domain.Hunter

	// Journal - лента событий прогона (для сохранения и реплея).
	Journal *domain.JournalSession

	// sink - внешний приемник событий (логи, рассылка зрителям).
	sink domain.EventSink

	// gameOver - единственный кооперативный сигнал отмены.
	// Акторы опрашивают его в начале каждого тика; мгновенной
	// остановки флаг не обещает.
	gameOver atomic.Bool

	seq atomic.Int64
	wg  sync.WaitGroup
}

// NewSimulation собирает прогон в стандартном доме из 13 комнат.
func NewSimulation(cfg Config, sink domain.EventSink) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSimulationInHouse(cfg, domain.BuildDefaultHouse(cfg.EvidenceGoal), sink)
}

// newSimulationInHouse размещает акторов в готовом доме.
// Отдельная точка входа нужна тестам с нестандартной топологией.
func newSimulationInHouse(cfg Config, house *domain.House, sink domain.EventSink) (*Simulation, error) {
	van := house.FindRoom(domain.VanRoomName)
	if van == nil {
		return nil, fmt.Errorf("house has no %q room", domain.VanRoomName)
	}

	s := &Simulation{
		ID:      uuid.NewString(),
		Config:  cfg,
		House:   house,
		sink:    sink,
		Journal: domain.NewJournalSession("", cfg.Seed, time.Now().Unix()),
	}
	s.Journal.RunID = s.ID

	// 1. Призрак: случайный класс, случайная комната кроме фургона.
	setupRng := utils.NewActorRand(cfg.Seed, "setup")
	class := domain.RandomClass(setupRng)
	start := house.RandomRoomExcluding(setupRng, domain.VanRoomName)
	if start == nil {
		return nil, fmt.Errorf("no room available for ghost placement")
	}
	s.Ghost = domain.NewGhost(class, start)
	s.emit(domain.EventGhostInit, class.String(), start.Name, "")

	// 2. Охотники: все стартуют в фургоне, снаряжение уникально.
	perm := setupRng.Perm(int(domain.EvidenceKindCount))
	for i := 0; i < cfg.HunterCount; i++ {
		name := fmt.Sprintf("Hunter-%d", i+1)
		if i < len(cfg.HunterNames) {
			name = cfg.HunterNames[i]
		}
		equipment := domain.EvidenceKind(perm[i])

		h := domain.NewHunter(name, equipment, van)
		van.AddHunter(h)
		house.AddHunter(h)
		s.Hunters = append(s.Hunters, h)
		s.emit(domain.EventHunterInit, name, van.Name, equipment.String())
	}

	return s, nil
}

// RequestGameOver взводит общий флаг завершения.
func (s *Simulation) RequestGameOver() {
	s.gameOver.Store(true)
}

// GameOverRequested сообщает, запрошено ли завершение.
func (s *Simulation) GameOverRequested() bool {
	return s.gameOver.Load()
}

// Start запускает горутину призрака и по горутине на охотника.
func (s *Simulation) Start() {
	logger.Log.WithField("run_id", s.ID).Info("Simulation started")

	s.wg.Add(1)
	go s.runGhost()

	for _, h := range s.Hunters {
		s.wg.Add(1)
		go s.runHunter(h)
	}
}

// Wait блокируется до выхода всех акторов.
func (s *Simulation) Wait() {
	s.wg.Wait()
}

// Run выполняет прогон целиком: запуск, ожидание, арбитраж.
// Отмена контекста транслируется в кооперативный флаг; жесткой
// остановки нет, акторы дорабатывают текущий тик.
func (s *Simulation) Run(ctx context.Context) Verdict {
	s.Start()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		logger.Log.WithField("run_id", s.ID).Info("Cancellation requested, stopping actors")
		s.RequestGameOver()
		<-done
	case <-done:
	}

	// Все горутины завершились: join установил видимость счетчиков,
	// арбитраж читает их без синхронизации.
	return s.EvaluateOutcome()
}

// emit публикует событие: сквозной номер, журнал, внешний приемник.
func (s *Simulation) emit(t domain.EventType, actor, room, detail string) {
	e := domain.Event{
		Seq:       s.seq.Add(1),
		Type:      t,
		Actor:     actor,
		Room:      room,
		Detail:    detail,
		Timestamp: time.Now().UnixMilli(),
	}
	s.Journal.Append(e)
	if s.sink != nil {
		s.sink.Publish(e)
	}
}
