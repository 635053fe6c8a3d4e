package systems

import (
	"math/rand"

	"github.com/bbagher/tibiaclone/internal/domain"
)

// RollMeleeDamage возвращает урон удара игрока по монстру.
// Равномерно от MeleeDamageMin до MeleeDamageMax включительно.
func RollMeleeDamage(rng *rand.Rand) int {
	return rollRange(rng, domain.MeleeDamageMin, domain.MeleeDamageMax)
}

// RollMonsterDamage возвращает урон удара монстра по игроку.
// Равномерно от MonsterDamageMin до MonsterDamageMax включительно.
func RollMonsterDamage(rng *rand.Rand) int {
	return rollRange(rng, domain.MonsterDamageMin, domain.MonsterDamageMax)
}

// MonsterStrikes бросает шанс атаки: монстр бьет не каждый тик,
// а с вероятностью MonsterAttackChance.
func MonsterStrikes(rng *rand.Rand) bool {
	return rng.Float64() < domain.MonsterAttackChance
}

func rollRange(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
