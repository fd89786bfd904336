package systems

import (
	"math/rand"

	"spectral-server/pkg/utils"
)

// GhostAction - что призрак делает на этом тике.
type GhostAction uint8

const (
	GhostIdle GhostAction = iota
	GhostDeposit
	GhostRelocate
)

// HunterAction - что охотник делает на этом тике.
type HunterAction uint8

const (
	HunterRelocate HunterAction = iota
	HunterCollect
	HunterReview
)

// ChooseGhostAction бросает трехгранный кубик призрака.
// Все три исхода равновероятны; допустимость действия
// (например, "не перемещаться под наблюдением") проверяет цикл актора.
func ChooseGhostAction(rng *rand.Rand) GhostAction {
	return GhostAction(utils.RandInt(rng, 0, 3))
}

// ChooseHunterAction бросает трехгранный кубик охотника.
func ChooseHunterAction(rng *rand.Rand) HunterAction {
	return HunterAction(utils.RandInt(rng, 0, 3))
}
