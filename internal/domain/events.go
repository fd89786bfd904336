package domain

// EventType - внутренний числовой идентификатор события симуляции.
type EventType uint8

const (
	EventUnknown EventType = iota
	EventHunterInit
	EventHunterMove
	EventHunterCollect
	EventHunterReview
	EventHunterExit
	EventGhostInit
	EventGhostMove
	EventGhostEvidence
	EventGhostExit
	EventVerdict
)

// Маппинг для логов и протокола Domain -> String
var eventTypeToString = map[EventType]string{
	EventHunterInit:    "HUNTER_INIT",
	EventHunterMove:    "HUNTER_MOVE",
	EventHunterCollect: "HUNTER_COLLECT",
	EventHunterReview:  "HUNTER_REVIEW",
	EventHunterExit:    "HUNTER_EXIT",
	EventGhostInit:     "GHOST_INIT",
	EventGhostMove:     "GHOST_MOVE",
	EventGhostEvidence: "GHOST_EVIDENCE",
	EventGhostExit:     "GHOST_EXIT",
	EventVerdict:       "VERDICT",
}

// String реализует интерфейс Stringer (для fmt и логов)
func (t EventType) String() string {
	if val, ok := eventTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event - одно дискретное событие охоты. Движок порождает события,
// а форматирование целиком остается на стороне приемников
// (логгер, рассылка зрителям, журнал на диске).
type Event struct {
	// Seq - сквозной номер события в пределах прогона.
	Seq int64 `json:"seq"`

	Type EventType `json:"-"`

	// Actor - имя охотника или класс призрака.
	Actor string `json:"actor,omitempty"`

	// Room - комната, к которой относится событие.
	Room string `json:"room,omitempty"`

	// Detail - тип улики, причина выхода, вердикт и т.п.
	Detail string `json:"detail,omitempty"`

	// Timestamp - unix-миллисекунды момента события.
	Timestamp int64 `json:"ts"`
}

// EventSink - приемник событий (внешний интерфейс ядра).
// Publish обязан быть безопасным для вызова из горутин всех акторов.
type EventSink interface {
	Publish(Event)
}
