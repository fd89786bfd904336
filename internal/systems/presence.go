package systems

import "spectral-server/internal/domain"

// IsGhostObserved решает, наблюдают ли за призраком.
// Ответ дается по ростеру текущей комнаты (под ее мьютексом),
// в поля чужих акторов никто не заглядывает.
func IsGhostObserved(ghost *domain.Ghost) bool {
	if ghost == nil {
		return false
	}
	room := ghost.CurrentRoom()
	if room == nil {
		return false
	}
	return room.HunterCount() > 0
}

// IsGhostPresent решает, находится ли призрак в комнате охотника.
// Комната призрака читается через его защищенный аксессор.
func IsGhostPresent(hunter *domain.Hunter, ghost *domain.Ghost) bool {
	if hunter == nil || ghost == nil {
		return false
	}
	room := hunter.CurrentRoom()
	return room != nil && room == ghost.CurrentRoom()
}
