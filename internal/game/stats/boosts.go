package stats

// Boosts accumulates temporary deltas on top of Base.
//
// Invariant: no field is ever negative. Every decrease saturates at zero and
// every increase saturates at the field maximum; neither panics.
type Boosts struct {
	bonus Bonus
}

// Bonus returns the accumulated delta.
func (b *Boosts) Bonus() Bonus {
	return b.bonus
}

// Add folds every field of d into the boosts, saturating at each field's
// maximum.
func (b *Boosts) Add(d Bonus) {
	b.IncreaseMaxHealth(d.MaxHealth)
	b.IncreaseMaxMana(d.MaxMana)
	b.IncreaseDefense(d.Defense)
	b.IncreaseDamage(d.Damage)
	b.IncreaseCritHitRate(d.CritHitRate)
	b.IncreaseCritDamageMultiplier(d.CritDamageMultiplier)
}

// Remove subtracts every field of d from the boosts, saturating at zero.
//
// Postcondition: Add(d) followed by Remove(d) restores the prior value
// whenever no saturation occurred in between.
func (b *Boosts) Remove(d Bonus) {
	b.DecreaseMaxHealth(d.MaxHealth)
	b.DecreaseMaxMana(d.MaxMana)
	b.DecreaseDefense(d.Defense)
	b.DecreaseDamage(d.Damage)
	b.DecreaseCritHitRate(d.CritHitRate)
	b.DecreaseCritDamageMultiplier(d.CritDamageMultiplier)
}

// Reset zeroes every field.
func (b *Boosts) Reset() {
	b.bonus = Bonus{}
}

// IncreaseMaxHealth raises the max health boost by n.
func (b *Boosts) IncreaseMaxHealth(n uint32) { b.bonus.MaxHealth = SatAdd(b.bonus.MaxHealth, n) }

// IncreaseMaxMana raises the max mana boost by n.
func (b *Boosts) IncreaseMaxMana(n uint32) { b.bonus.MaxMana = SatAdd(b.bonus.MaxMana, n) }

// IncreaseDefense raises the defense boost by n.
func (b *Boosts) IncreaseDefense(n uint32) { b.bonus.Defense = SatAdd(b.bonus.Defense, n) }

// IncreaseDamage raises the damage boost by n.
func (b *Boosts) IncreaseDamage(n uint32) { b.bonus.Damage = SatAdd(b.bonus.Damage, n) }

// IncreaseCritHitRate raises the crit hit rate boost by r.
func (b *Boosts) IncreaseCritHitRate(r Rate) {
	b.bonus.CritHitRate = satAddRate(b.bonus.CritHitRate, r)
}

// IncreaseCritDamageMultiplier raises the crit multiplier boost by r.
func (b *Boosts) IncreaseCritDamageMultiplier(r Rate) {
	b.bonus.CritDamageMultiplier = satAddRate(b.bonus.CritDamageMultiplier, r)
}

// DecreaseMaxHealth lowers the max health boost by n, saturating at zero.
func (b *Boosts) DecreaseMaxHealth(n uint32) { b.bonus.MaxHealth = SatSub(b.bonus.MaxHealth, n) }

// DecreaseMaxMana lowers the max mana boost by n, saturating at zero.
func (b *Boosts) DecreaseMaxMana(n uint32) { b.bonus.MaxMana = SatSub(b.bonus.MaxMana, n) }

// DecreaseDefense lowers the defense boost by n, saturating at zero, and
// returns the amount actually removed.
func (b *Boosts) DecreaseDefense(n uint32) uint32 {
	before := b.bonus.Defense
	b.bonus.Defense = SatSub(before, n)
	return before - b.bonus.Defense
}

// DecreaseDamage lowers the damage boost by n, saturating at zero.
func (b *Boosts) DecreaseDamage(n uint32) { b.bonus.Damage = SatSub(b.bonus.Damage, n) }

// DecreaseCritHitRate lowers the crit hit rate boost by r, saturating at zero.
func (b *Boosts) DecreaseCritHitRate(r Rate) {
	b.bonus.CritHitRate = satSubRate(b.bonus.CritHitRate, r)
}

// DecreaseCritDamageMultiplier lowers the crit multiplier boost by r, saturating at zero.
func (b *Boosts) DecreaseCritDamageMultiplier(r Rate) {
	b.bonus.CritDamageMultiplier = satSubRate(b.bonus.CritDamageMultiplier, r)
}
