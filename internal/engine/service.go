package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"spectral-server/internal/domain"
	"spectral-server/internal/infrastructure/storage"
	"spectral-server/internal/network"
	"spectral-server/pkg/api"
	"spectral-server/pkg/logger"
)

// GameService - верхний уровень движка: владеет рассылкой зрителям,
// хранилищем журналов и текущим прогоном.
type GameService struct {
	Config   Config
	Hub      *network.Broadcaster
	Journals *storage.JournalService

	mu      sync.Mutex
	current *Simulation
}

func NewService(cfg Config) *GameService {
	return &GameService{
		Config:   cfg,
		Hub:      network.NewBroadcaster(),
		Journals: storage.NewJournalService(cfg.JournalDir),
	}
}

// RunSimulation выполняет один прогон от сборки дома до вердикта
// и сохраняет журнал на диск.
func (g *GameService) RunSimulation(ctx context.Context) (Verdict, error) {
	sim, err := NewSimulation(g.Config, g)
	if err != nil {
		return Verdict{}, fmt.Errorf("build simulation: %w", err)
	}

	g.mu.Lock()
	g.current = sim
	g.mu.Unlock()

	verdict := sim.Run(ctx)

	if path, err := g.Journals.Save(sim.Journal); err != nil {
		logger.Log.WithError(err).Warn("Failed to save hunt journal")
	} else {
		logger.Log.WithField("path", path).Info("Hunt journal saved")
	}

	return verdict, nil
}

// Current возвращает активный прогон (nil до первого запуска).
func (g *GameService) Current() *Simulation {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Publish реализует domain.EventSink: каждое событие уходит
// в структурированный лог и всем подключенным зрителям.
// Вызывается из горутин всех акторов.
func (g *GameService) Publish(e domain.Event) {
	logger.Log.WithFields(logrus.Fields{
		"seq":    e.Seq,
		"actor":  e.Actor,
		"room":   e.Room,
		"detail": e.Detail,
	}).Info(e.Type.String())

	g.Hub.Broadcast(api.EventView{
		Type:      e.Type.String(),
		Seq:       e.Seq,
		Actor:     e.Actor,
		Room:      e.Room,
		Detail:    e.Detail,
		Timestamp: e.Timestamp,
	})
}

// ReplayJournal проигрывает сохраненную ленту через те же приемники,
// что и живой прогон.
func (g *GameService) ReplayJournal(path string) error {
	session, err := g.Journals.Load(path)
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"run_id": session.RunID,
		"seed":   session.Seed,
		"events": len(session.Events),
	}).Info("Replaying hunt journal")

	for _, e := range session.Snapshot() {
		g.Publish(e)
	}
	return nil
}

// StateSnapshot собирает снимок дома для отладочного эндпоинта.
// Снимок не атомарен: каждая коллекция читается под своим мьютексом.
func (g *GameService) StateSnapshot() api.StateView {
	sim := g.Current()
	if sim == nil {
		return api.StateView{}
	}

	view := api.StateView{
		RunID:       sim.ID,
		GameOver:    sim.GameOverRequested(),
		LiveHunters: sim.House.LiveHunters(),
	}
	for _, k := range sim.House.Evidence.Kinds() {
		view.Collected = append(view.Collected, k.String())
	}
	for _, r := range sim.House.Rooms() {
		rv := api.RoomView{Name: r.Name}
		for _, a := range r.Adjacent() {
			rv.Adjacent = append(rv.Adjacent, a.Name)
		}
		for _, h := range r.Hunters() {
			rv.Hunters = append(rv.Hunters, h.Name)
		}
		for _, e := range r.Evidence() {
			rv.Evidence = append(rv.Evidence, e.String())
		}
		view.Rooms = append(view.Rooms, rv)
	}
	return view
}
