package domain

import "math/rand"

// EvidenceKind - тип улики, которую может оставить призрак
// и обнаружить охотник с подходящим снаряжением.
type EvidenceKind uint8

const (
	EvidenceEMF EvidenceKind = iota
	EvidenceTemperature
	EvidenceFingerprints
	EvidenceSound

	// EvidenceKindCount - количество реальных типов улик (служебное)
	EvidenceKindCount

	EvidenceUnknown
)

// GhostClass - один из четырех фиксированных архетипов призрака.
// Назначается один раз при создании и не меняется до конца симуляции.
type GhostClass uint8

const (
	ClassPoltergeist GhostClass = iota
	ClassBanshee
	ClassBullies
	ClassPhantom

	// GhostClassCount - количество реальных классов (служебное)
	GhostClassCount

	ClassUnknown
)

// classEvidence - фиксированная матрица "класс -> 3 из 4 типов улик".
// У каждого класса ровно один исключенный тип.
var classEvidence = map[GhostClass][3]EvidenceKind{
	ClassPoltergeist: {EvidenceEMF, EvidenceTemperature, EvidenceFingerprints}, // без SOUND
	ClassBanshee:     {EvidenceEMF, EvidenceTemperature, EvidenceSound},        // без FINGERPRINTS
	ClassBullies:     {EvidenceEMF, EvidenceFingerprints, EvidenceSound},       // без TEMPERATURE
	ClassPhantom:     {EvidenceTemperature, EvidenceFingerprints, EvidenceSound}, // без EMF
}

var evidenceNames = map[EvidenceKind]string{
	EvidenceEMF:          "EMF",
	EvidenceTemperature:  "TEMPERATURE",
	EvidenceFingerprints: "FINGERPRINTS",
	EvidenceSound:        "SOUND",
}

var classNames = map[GhostClass]string{
	ClassPoltergeist: "Poltergeist",
	ClassBanshee:     "Banshee",
	ClassBullies:     "Bullies",
	ClassPhantom:     "Phantom",
}

// String реализует интерфейс Stringer (для логов и журнала)
func (e EvidenceKind) String() string {
	if name, ok := evidenceNames[e]; ok {
		return name
	}
	return "UNKNOWN"
}

// String реализует интерфейс Stringer (для логов и журнала)
func (c GhostClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "Unknown"
}

// EvidenceFor возвращает три типа улик, свойственных данному классу.
func EvidenceFor(class GhostClass) [3]EvidenceKind {
	if kinds, ok := classEvidence[class]; ok {
		return kinds
	}
	return [3]EvidenceKind{EvidenceUnknown, EvidenceUnknown, EvidenceUnknown}
}

// RandomKindFor возвращает один из трех типов улик класса,
// выбранный равновероятно генератором актора.
func RandomKindFor(class GhostClass, rng *rand.Rand) EvidenceKind {
	kinds, ok := classEvidence[class]
	if !ok {
		return EvidenceUnknown
	}
	return kinds[rng.Intn(len(kinds))]
}

// RandomClass возвращает случайный класс призрака.
func RandomClass(rng *rand.Rand) GhostClass {
	return GhostClass(rng.Intn(int(GhostClassCount)))
}

// IdentifyClass - обратный поиск по матрице улик: какому классу
// соответствует в точности набор из трех собранных типов.
// Для любого набора, не совпадающего ни с одним классом, возвращает ClassUnknown.
func IdentifyClass(kinds []EvidenceKind) GhostClass {
	var flags [EvidenceKindCount]bool
	for _, k := range kinds {
		if k < EvidenceKindCount {
			flags[k] = true
		}
	}

	for class, set := range classEvidence {
		match := true
		for _, k := range set {
			if !flags[k] {
				match = false
				break
			}
		}
		// Матрица 4x3 при четырех типах улик: полное покрытие тройки
		// означает единственный класс, лишние типы исключаем по счету.
		if match && countTrue(flags[:]) == len(set) {
			return class
		}
	}
	return ClassUnknown
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
