package session

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/textquest/internal/game/combat"
	"github.com/cory-johannsen/textquest/internal/game/world"
)

// attack resolves one round against the enemy named target.
func (s *Session) attack(target, with string) error {
	enemy := s.activeEnemy()
	if enemy == nil || !strings.EqualFold(enemy.Name, target) {
		s.say("That is not a valid target.")
		return fmt.Errorf("hit %q: %w", target, ErrInvalidTarget)
	}

	weapon, err := s.weapon(with)
	if err != nil {
		return err
	}

	res := combat.ResolveRound(s.roller, weapon, enemy)
	s.say(res.Narrative()...)
	s.logger.Info("attack round",
		zap.String("enemy", enemy.Name),
		zap.String("weapon", weapon.Name),
		zap.Int("damage", res.Damage),
		zap.Int("enemy_health", enemy.Health),
		zap.Int("counter", res.CounterDamage),
	)
	if res.Killed {
		s.say("The way is clear.")
		return nil
	}

	s.player.TakeDamage(res.CounterDamage)
	if s.player.IsDead() {
		s.terminate(nil,
			fmt.Sprintf("The %s has defeated you.", enemy.Name),
			"Your adventure ends here.",
		)
		return nil
	}
	s.say(fmt.Sprintf("You have %d health left.", s.player.Health))
	return nil
}

// weapon picks the weapon for a round: the named one, else the first weapon
// carried, else bare hands.
func (s *Session) weapon(with string) (combat.Weapon, error) {
	if with != "" {
		it, ok := s.carried(with)
		if !ok {
			s.say(fmt.Sprintf("You don't have a %s.", with))
			return combat.Weapon{}, fmt.Errorf("hit with %q: %w", with, world.ErrItemNotFound)
		}
		if !it.IsWeapon() {
			s.say(fmt.Sprintf("You can't fight with the %s.", it.Name))
			return combat.Weapon{}, ErrNotUsable
		}
		return combat.WeaponFromItem(it), nil
	}
	for _, it := range s.inv.Items() {
		if it.IsWeapon() {
			return combat.WeaponFromItem(it), nil
		}
	}
	return combat.BareHands(s.opts.BareHands), nil
}
