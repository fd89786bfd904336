package domain

import "sync"

// Ghost - единственный призрак прогона.
//
// Boredom принадлежит горутине призрака: никто другой его не пишет,
// а координатор читает только после join всех задач.
// Текущая комната, напротив, читается охотниками на каждом тике
// (проверка присутствия), поэтому спрятана за мьютексом.
type Ghost struct {
	Class GhostClass

	mu   sync.Mutex
	room *Room

	// Boredom растет, пока за призраком никто не наблюдает,
	// и сбрасывается в ноль при встрече с охотником.
	Boredom int
}

// NewGhost создает призрака указанного класса в стартовой комнате.
func NewGhost(class GhostClass, room *Room) *Ghost {
	return &Ghost{
		Class: class,
		room:  room,
	}
}

// CurrentRoom возвращает текущую комнату призрака.
func (g *Ghost) CurrentRoom() *Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.room
}

// SetRoom перемещает призрака. Пишет только горутина призрака.
func (g *Ghost) SetRoom(room *Room) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.room = room
}
