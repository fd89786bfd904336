package domain

import "sync"

// JournalSession - полная запись одного прогона: зерно, метаданные
// и лента событий в порядке публикации. Пишется всеми горутинами
// акторов, поэтому append закрыт мьютексом.
type JournalSession struct {
	RunID     string `json:"runId"`
	Seed      int64  `json:"seed"`
	Timestamp int64  `json:"timestamp"`

	mu     sync.Mutex
	Events []Event `json:"events"`
}

// NewJournalSession создает пустую ленту прогона.
func NewJournalSession(runID string, seed, timestamp int64) *JournalSession {
	return &JournalSession{
		RunID:     runID,
		Seed:      seed,
		Timestamp: timestamp,
		Events:    make([]Event, 0, 256),
	}
}

// Append дописывает событие в ленту.
func (j *JournalSession) Append(e Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Events = append(j.Events, e)
}

// Snapshot возвращает копию ленты.
func (j *JournalSession) Snapshot() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, len(j.Events))
	copy(out, j.Events)
	return out
}
