package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID (для сессий зрителей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// StringToSeed детерминированно превращает строку в зерно генератора.
// Используется, чтобы каждый актор получил собственный генератор,
// зависящий от мастер-зерна и его имени.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}

// NewActorRand создает независимый генератор для одного актора.
// Каждая горутина владеет своим *rand.Rand: общий источник math/rand
// из потоков не дергаем вообще.
func NewActorRand(masterSeed int64, actorName string) *mrand.Rand {
	seed := masterSeed ^ StringToSeed(actorName)
	return mrand.New(mrand.NewSource(seed))
}

// RandInt возвращает псевдослучайное целое в диапазоне [min, max).
// Это бросок кубика акторов: нижняя граница включена, верхняя - нет.
func RandInt(rng *mrand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min)
}
