package domain

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"spectral-server/pkg/logger"
)

// VanRoomName - стартовая комната охотников. Призрак в нее не заселяется.
const VanRoomName = "Van"

// House владеет графом комнат и глобальными коллекциями прогона.
// Комнаты при этом разделяются по ссылке между графом, призраком
// и охотниками; время жизни - один прогон симуляции.
type House struct {
	roomsMu sync.Mutex
	rooms   []*Room

	huntersMu sync.Mutex
	hunters   []*Hunter

	// Evidence - общая коллекция собранных улик (емкость 3).
	Evidence *EvidenceSet

	// liveHunters - счетчик еще не вышедших охотников.
	liveHunters atomic.Int32
}

// NewHouse создает пустой дом с коллекцией улик заданной емкости.
func NewHouse(evidenceCapacity int) *House {
	return &House{
		Evidence: NewEvidenceSet(evidenceCapacity),
	}
}

// AddRoom дописывает комнату в общий список дома.
func (h *House) AddRoom(r *Room) {
	if r == nil {
		logger.Log.Error("AddRoom called with nil room")
		return
	}
	h.roomsMu.Lock()
	defer h.roomsMu.Unlock()
	h.rooms = append(h.rooms, r)
}

// Rooms возвращает копию списка комнат в порядке добавления.
func (h *House) Rooms() []*Room {
	h.roomsMu.Lock()
	defer h.roomsMu.Unlock()
	out := make([]*Room, len(h.rooms))
	copy(out, h.rooms)
	return out
}

// FindRoom ищет комнату по имени. nil, если такой нет.
func (h *House) FindRoom(name string) *Room {
	h.roomsMu.Lock()
	defer h.roomsMu.Unlock()
	for _, r := range h.rooms {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// RandomRoomExcluding выбирает равновероятную комнату, пропуская
// комнату с указанным именем (стартовое размещение призрака: весь дом
// кроме фургона). nil, если подходящих комнат нет.
func (h *House) RandomRoomExcluding(rng *rand.Rand, excluded string) *Room {
	h.roomsMu.Lock()
	defer h.roomsMu.Unlock()

	candidates := make([]*Room, 0, len(h.rooms))
	for _, r := range h.rooms {
		if r.Name != excluded {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rng.Intn(len(candidates))]
}

// AddHunter дописывает охотника в глобальный ростер и
// увеличивает счетчик живых.
func (h *House) AddHunter(hunter *Hunter) {
	if hunter == nil {
		logger.Log.Error("AddHunter called with nil hunter")
		return
	}
	h.huntersMu.Lock()
	h.hunters = append(h.hunters, hunter)
	h.huntersMu.Unlock()
	h.liveHunters.Add(1)
}

// Hunters возвращает копию глобального ростера.
func (h *House) Hunters() []*Hunter {
	h.huntersMu.Lock()
	defer h.huntersMu.Unlock()
	out := make([]*Hunter, len(h.hunters))
	copy(out, h.hunters)
	return out
}

// HunterTotal возвращает общее число охотников прогона.
func (h *House) HunterTotal() int {
	h.huntersMu.Lock()
	defer h.huntersMu.Unlock()
	return len(h.hunters)
}

// LiveHunters возвращает число еще не вышедших охотников.
func (h *House) LiveHunters() int {
	return int(h.liveHunters.Load())
}

// DecrementLive списывает одного вышедшего охотника.
// Ниже нуля счетчик не опускается.
func (h *House) DecrementLive() {
	for {
		cur := h.liveHunters.Load()
		if cur <= 0 {
			logger.Log.Warn("Attempted to decrement live hunter count below zero")
			return
		}
		if h.liveHunters.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// BuildDefaultHouse строит фиксированную топологию из 13 комнат.
// Имена и связи - константа проекта; "Van" всегда первая в списке.
func BuildDefaultHouse(evidenceCapacity int) *House {
	h := NewHouse(evidenceCapacity)

	van := NewRoom(VanRoomName)
	hallway := NewRoom("Hallway")
	masterBedroom := NewRoom("Master Bedroom")
	boysBedroom := NewRoom("Boy's Bedroom")
	bathroom := NewRoom("Bathroom")
	basement := NewRoom("Basement")
	basementHallway := NewRoom("Basement Hallway")
	rightStorage := NewRoom("Right Storage Room")
	leftStorage := NewRoom("Left Storage Room")
	kitchen := NewRoom("Kitchen")
	livingRoom := NewRoom("Living Room")
	garage := NewRoom("Garage")
	utilityRoom := NewRoom("Utility Room")

	// Все связи двусторонние
	Connect(van, hallway)
	Connect(hallway, masterBedroom)
	Connect(hallway, boysBedroom)
	Connect(hallway, bathroom)
	Connect(hallway, kitchen)
	Connect(hallway, basement)
	Connect(basement, basementHallway)
	Connect(basementHallway, rightStorage)
	Connect(basementHallway, leftStorage)
	Connect(kitchen, livingRoom)
	Connect(kitchen, garage)
	Connect(garage, utilityRoom)

	for _, r := range []*Room{
		van, hallway, masterBedroom, boysBedroom, bathroom,
		basement, basementHallway, rightStorage, leftStorage,
		kitchen, livingRoom, garage, utilityRoom,
	} {
		h.AddRoom(r)
	}

	return h
}
