// Package combat resolves attack rounds between the player and an enemy.
package combat

import (
	"fmt"

	"github.com/cory-johannsen/textquest/internal/game/dice"
	"github.com/cory-johannsen/textquest/internal/game/inventory"
	"github.com/cory-johannsen/textquest/internal/game/npc"
)

// BareHandsName is the weapon name used when the player holds no weapon.
const BareHandsName = "bare hands"

// Weapon is the damage source the player wields for one round.
type Weapon struct {
	Name   string
	Damage dice.Range
}

// WeaponFromItem returns the Weapon described by a weapon item.
//
// Precondition: it.IsWeapon().
func WeaponFromItem(it *inventory.Item) Weapon {
	return Weapon{Name: it.Name, Damage: it.Damage}
}

// BareHands returns the unarmed weapon with damage range rng.
func BareHands(rng dice.Range) Weapon {
	return Weapon{Name: BareHandsName, Damage: rng}
}

// RoundResult records what happened in one attack round.
type RoundResult struct {
	// Enemy is the name of the enemy attacked.
	Enemy string
	// Weapon is the name of the weapon used.
	Weapon string
	// Damage is the amount drawn from the weapon's range.
	Damage int
	// EnemyHealth is the enemy's health after the hit, clamped at 0.
	EnemyHealth int
	// Killed is true when the hit brought the enemy to health <= 0.
	Killed bool
	// HurtLine is the hurt narration chosen when the enemy survived.
	HurtLine string
	// CounterDamage is the damage the surviving enemy deals back. Zero when Killed.
	CounterDamage int
}

// Narrative renders the round as narration lines in order.
func (r RoundResult) Narrative() []string {
	lines := []string{
		fmt.Sprintf("You strike the %s with your %s for %d damage.", r.Enemy, r.Weapon, r.Damage),
		fmt.Sprintf("The %s has %d health left.", r.Enemy, r.EnemyHealth),
	}
	if r.Killed {
		return append(lines, fmt.Sprintf("The %s collapses, dead.", r.Enemy))
	}
	return append(lines,
		r.HurtLine,
		fmt.Sprintf("The %s hits back for %d damage.", r.Enemy, r.CounterDamage),
	)
}

// ResolveRound performs one attack round of weapon against enemy.
// Damage is drawn uniformly from the weapon's range and subtracted from the
// enemy's health. A surviving enemy picks one of its hurt lines uniformly and
// draws counter damage from its own range; applying counter damage to the
// player is left to the caller.
//
// Precondition: roller and enemy must be non-nil; enemy must not be dead and
// must carry npc.HurtLines hurt lines; weapon.Damage.Validate() == nil.
// Postcondition: enemy.Health is reduced by exactly result.Damage.
func ResolveRound(roller *dice.Roller, weapon Weapon, enemy *npc.Character) RoundResult {
	dmg := roller.Between("attack:"+weapon.Name, weapon.Damage)
	enemy.TakeDamage(dmg)

	res := RoundResult{
		Enemy:       enemy.Name,
		Weapon:      weapon.Name,
		Damage:      dmg,
		EnemyHealth: enemy.DisplayHealth(),
		Killed:      enemy.IsDead(),
	}
	if res.Killed {
		return res
	}
	res.HurtLine = enemy.Hurt[roller.Pick("hurt:"+enemy.Name, len(enemy.Hurt))]
	res.CounterDamage = roller.Between("counter:"+enemy.Name, enemy.Damage)
	return res
}
