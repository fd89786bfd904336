package domain

import (
	"math/rand"
	"sync"
)

// ExitReason - причина выхода актора из симуляции.
type ExitReason uint8

const (
	ExitNone ExitReason = iota
	ExitFeared
	ExitBored
	ExitSufficient
	ExitGameOver
)

var exitNames = map[ExitReason]string{
	ExitNone:       "none",
	ExitFeared:     "feared",
	ExitBored:      "bored",
	ExitSufficient: "sufficient evidence",
	ExitGameOver:   "game over",
}

func (r ExitReason) String() string {
	if name, ok := exitNames[r]; ok {
		return name
	}
	return "unknown"
}

// Hunter - один охотник. Счетчики страха и скуки, личный список улик
// и причина выхода принадлежат горутине охотника; координатор читает
// их только после join. Текущая комната тоже пишется только владельцем:
// призрак отвечает на вопрос о присутствии через ростер комнаты,
// а не через это поле.
type Hunter struct {
	Name string

	// Equipment - единственный тип улик, который этот охотник
	// умеет обнаруживать. Назначается уникально среди охотников.
	Equipment EvidenceKind

	mu   sync.Mutex
	room *Room

	// Fear и Boredom - монотонные счетчики, зажатые в [0, max].
	// Boredom сбрасывается в ноль при встрече с призраком.
	Fear    int
	Boredom int

	// Evidence - личный журнал собранного (только для отчета,
	// на состояние игры не влияет).
	Evidence []EvidenceKind

	Exit ExitReason
}

// NewHunter создает охотника в стартовой комнате.
// В ростер комнаты и дома его добавляет вызывающий.
func NewHunter(name string, equipment EvidenceKind, room *Room) *Hunter {
	return &Hunter{
		Name:      name,
		Equipment: equipment,
		room:      room,
	}
}

// CurrentRoom возвращает текущую комнату охотника.
func (h *Hunter) CurrentRoom() *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.room
}

// Relocate переводит охотника в случайную соседнюю комнату.
//
// Удаление из старого ростера и добавление в новый - две независимые
// критические секции (по мьютексу каждой комнаты). Пара сознательно
// не атомарна: между секциями охотник на мгновение не числится нигде.
// После завершения перемещений каждый охотник снова ровно в одном ростере.
// Возвращает новую комнату или nil, если соседей нет.
func (h *Hunter) Relocate(rng *rand.Rand) *Room {
	old := h.CurrentRoom()
	if old == nil {
		return nil
	}
	next := old.RandomAdjacent(rng)
	if next == nil {
		return nil
	}

	old.RemoveHunter(h)

	h.mu.Lock()
	h.room = next
	h.mu.Unlock()

	next.AddHunter(h)
	return next
}
