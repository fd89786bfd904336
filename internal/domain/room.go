package domain

import (
	"math/rand"
	"sync"

	"spectral-server/pkg/logger"
)

// Room - комната дома. Имя неизменно; списки соседей, охотников и улик
// мутируются конкурентно и каждый защищен собственным мьютексом.
// Критические секции покрывают одну структурную операцию, а не
// последовательности "прочитал-решил-записал" через несколько коллекций.
type Room struct {
	Name string

	adjMu    sync.Mutex
	adjacent []*Room

	huntMu  sync.Mutex
	hunters []*Hunter

	evMu     sync.Mutex
	evidence []EvidenceKind
}

// NewRoom создает комнату с пустыми списками.
func NewRoom(name string) *Room {
	return &Room{Name: name}
}

// Connect соединяет две комнаты двунаправленно: каждая попадает
// в список соседей другой. Повторный вызов честно продублирует ребро -
// так же, как в исходной топологии, которая строится ровно один раз.
func Connect(a, b *Room) {
	if a == nil || b == nil {
		logger.Log.Error("Connect called with nil room")
		return
	}
	a.addAdjacent(b)
	b.addAdjacent(a)
}

func (r *Room) addAdjacent(other *Room) {
	r.adjMu.Lock()
	defer r.adjMu.Unlock()
	r.adjacent = append(r.adjacent, other)
}

// Adjacent возвращает копию списка соседей.
func (r *Room) Adjacent() []*Room {
	r.adjMu.Lock()
	defer r.adjMu.Unlock()
	out := make([]*Room, len(r.adjacent))
	copy(out, r.adjacent)
	return out
}

// IsAdjacent сообщает, есть ли ребро к данной комнате.
func (r *Room) IsAdjacent(other *Room) bool {
	r.adjMu.Lock()
	defer r.adjMu.Unlock()
	for _, a := range r.adjacent {
		if a == other {
			return true
		}
	}
	return false
}

// RandomAdjacent выбирает равновероятного соседа генератором актора.
// Возвращает nil для изолированной комнаты.
func (r *Room) RandomAdjacent(rng *rand.Rand) *Room {
	r.adjMu.Lock()
	defer r.adjMu.Unlock()
	if len(r.adjacent) == 0 {
		return nil
	}
	return r.adjacent[rng.Intn(len(r.adjacent))]
}

// AddHunter дописывает охотника в конец ростера комнаты.
func (r *Room) AddHunter(h *Hunter) {
	if h == nil {
		logger.Log.WithField("room", r.Name).Error("AddHunter called with nil hunter")
		return
	}
	r.huntMu.Lock()
	defer r.huntMu.Unlock()
	r.hunters = append(r.hunters, h)
}

// RemoveHunter удаляет первое вхождение охотника по имени, сохраняя
// порядок остальных. Если охотника в ростере нет - тихий no-op.
func (r *Room) RemoveHunter(h *Hunter) {
	if h == nil {
		return
	}
	r.huntMu.Lock()
	defer r.huntMu.Unlock()
	for i, cur := range r.hunters {
		if cur.Name == h.Name {
			r.hunters = append(r.hunters[:i], r.hunters[i+1:]...)
			return
		}
	}
}

// HunterCount возвращает число охотников в комнате.
// Именно так призрак отвечает на вопрос "наблюдают ли за мной",
// не заглядывая в поля чужих акторов.
func (r *Room) HunterCount() int {
	r.huntMu.Lock()
	defer r.huntMu.Unlock()
	return len(r.hunters)
}

// Hunters возвращает копию ростера комнаты.
func (r *Room) Hunters() []*Hunter {
	r.huntMu.Lock()
	defer r.huntMu.Unlock()
	out := make([]*Hunter, len(r.hunters))
	copy(out, r.hunters)
	return out
}

// AddEvidence дописывает улику в список комнаты (порядок вставки).
func (r *Room) AddEvidence(kind EvidenceKind) {
	if kind >= EvidenceKindCount {
		logger.Log.WithField("room", r.Name).Error("AddEvidence called with invalid kind")
		return
	}
	r.evMu.Lock()
	defer r.evMu.Unlock()
	r.evidence = append(r.evidence, kind)
}

// HasEvidence сообщает, лежит ли в комнате улика данного типа.
func (r *Room) HasEvidence(kind EvidenceKind) bool {
	r.evMu.Lock()
	defer r.evMu.Unlock()
	for _, k := range r.evidence {
		if k == kind {
			return true
		}
	}
	return false
}

// Evidence возвращает копию списка улик комнаты.
func (r *Room) Evidence() []EvidenceKind {
	r.evMu.Lock()
	defer r.evMu.Unlock()
	out := make([]EvidenceKind, len(r.evidence))
	copy(out, r.evidence)
	return out
}
