package api

// --- СЕРВЕР -> ЗРИТЕЛЬ ---

// EventView это DTO одного события охоты, как его видит зритель.
// Сервер шлет события по мере их публикации движком; форматирование
// и порядок отрисовки - забота клиента.
type EventView struct {
	// Type тип события: HUNTER_MOVE, GHOST_EVIDENCE, VERDICT и т.д.
	Type string `json:"type"`

	// Seq сквозной номер события в пределах прогона.
	Seq int64 `json:"seq"`

	// Actor имя охотника или класс призрака.
	Actor string `json:"actor,omitempty"`

	// Room комната, к которой относится событие.
	Room string `json:"room,omitempty"`

	// Detail уточнение: тип улики, причина выхода, строка вердикта.
	Detail string `json:"detail,omitempty"`

	// Timestamp unix-миллисекунды момента события.
	Timestamp int64 `json:"ts"`
}

// RoomView это DTO одной комнаты для отладочного снимка состояния.
type RoomView struct {
	Name     string   `json:"name"`
	Adjacent []string `json:"adjacent"`
	Hunters  []string `json:"hunters"`
	Evidence []string `json:"evidence"`
}

// StateView это полный снимок дома для /debug/state.
type StateView struct {
	RunID       string     `json:"runId"`
	GameOver    bool       `json:"gameOver"`
	LiveHunters int        `json:"liveHunters"`
	Collected   []string   `json:"collected"`
	Rooms       []RoomView `json:"rooms"`
}
