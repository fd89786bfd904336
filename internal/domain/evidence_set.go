package domain

import (
	"errors"
	"sync"
)

// Ошибки вставки в общую коллекцию улик.
// Оба случая не фатальны: вызывающий логирует и продолжает тик.
var (
	ErrEvidenceFull      = errors.New("evidence set is at capacity")
	ErrEvidenceDuplicate = errors.New("evidence kind already collected")
	ErrEvidenceInvalid   = errors.New("invalid evidence kind")
)

// EvidenceSet - общая коллекция собранных улик с семантикой множества:
// каждый тип встречается не более одного раза, емкость фиксирована (3).
// Единственный мьютекс защищает только эту коллекцию и ничего больше.
type EvidenceSet struct {
	mu       sync.Mutex
	kinds    []EvidenceKind
	capacity int
}

// NewEvidenceSet создает пустую коллекцию с заданной емкостью.
func NewEvidenceSet(capacity int) *EvidenceSet {
	if capacity <= 0 {
		capacity = 1
	}
	return &EvidenceSet{
		kinds:    make([]EvidenceKind, 0, capacity),
		capacity: capacity,
	}
}

// Add пытается добавить тип улики.
// Отказывает при переполнении и при дубликате - проверка и вставка
// выполняются в одной критической секции, потерянных обновлений нет.
func (s *EvidenceSet) Add(kind EvidenceKind) error {
	if kind >= EvidenceKindCount {
		return ErrEvidenceInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.kinds) >= s.capacity {
		return ErrEvidenceFull
	}
	for _, k := range s.kinds {
		if k == kind {
			return ErrEvidenceDuplicate
		}
	}
	s.kinds = append(s.kinds, kind)
	return nil
}

// Contains сообщает, собран ли уже данный тип.
func (s *EvidenceSet) Contains(kind EvidenceKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Len возвращает текущее число собранных типов.
// Дубликатов в коллекции не бывает, так что это же и число уникальных типов.
func (s *EvidenceSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.kinds)
}

// Capacity возвращает фиксированную емкость коллекции.
func (s *EvidenceSet) Capacity() int {
	return s.capacity
}

// Kinds возвращает копию собранных типов в порядке вставки.
func (s *EvidenceSet) Kinds() []EvidenceKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EvidenceKind, len(s.kinds))
	copy(out, s.kinds)
	return out
}
