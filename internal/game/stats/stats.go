package stats

// Base holds persistent base combat stats. Enemies leave MaxMana at zero.
type Base struct {
	MaxHealth            uint32
	MaxMana              uint32
	Defense              uint32
	Damage               uint32
	CritHitRate          Rate
	CritDamageMultiplier Rate
}

// Bonus is an additive delta over the same fields as Base. Equipment, its
// enchantments and in-fight skill effects all express their contribution as a
// Bonus.
type Bonus struct {
	MaxHealth            uint32
	MaxMana              uint32
	Defense              uint32
	Damage               uint32
	CritHitRate          Rate
	CritDamageMultiplier Rate
}

// Plus returns the field-wise saturating sum of b and o.
func (b Bonus) Plus(o Bonus) Bonus {
	return Bonus{
		MaxHealth:            SatAdd(b.MaxHealth, o.MaxHealth),
		MaxMana:              SatAdd(b.MaxMana, o.MaxMana),
		Defense:              SatAdd(b.Defense, o.Defense),
		Damage:               SatAdd(b.Damage, o.Damage),
		CritHitRate:          satAddRate(b.CritHitRate, o.CritHitRate),
		CritDamageMultiplier: satAddRate(b.CritDamageMultiplier, o.CritDamageMultiplier),
	}
}

// IsZero reports whether every field of b is zero.
func (b Bonus) IsZero() bool {
	return b == Bonus{}
}

// AddLevelGrowth returns base with per-level growth added to MaxHealth and Damage.
func (b Base) AddLevelGrowth(health, damage uint32) Base {
	b.MaxHealth = SatAdd(b.MaxHealth, health)
	b.Damage = SatAdd(b.Damage, damage)
	return b
}
