package stats

// Effective holds the derived combat values a fight reads: base plus boosts,
// clamped where applicable.
type Effective struct {
	MaxHealth            uint32
	MaxMana              uint32
	Defense              uint32
	Damage               uint32
	CritHitRate          float64
	CritDamageMultiplier float64
}

// Compute derives effective stats from base and boosts.
//
// Postcondition: CritHitRate is in [0, 1] even when stacked boosts push the
// raw sum past 1.0; CritDamageMultiplier is at least 1.0.
func Compute(base Base, boosts Boosts) Effective {
	d := boosts.Bonus()
	crit := satAddRate(base.CritHitRate, d.CritHitRate)
	if crit > RateScale {
		crit = RateScale
	}
	mult := satAddRate(base.CritDamageMultiplier, d.CritDamageMultiplier)
	if mult < RateScale {
		mult = RateScale
	}
	return Effective{
		MaxHealth:            SatAdd(base.MaxHealth, d.MaxHealth),
		MaxMana:              SatAdd(base.MaxMana, d.MaxMana),
		Defense:              SatAdd(base.Defense, d.Defense),
		Damage:               SatAdd(base.Damage, d.Damage),
		CritHitRate:          crit.Float64(),
		CritDamageMultiplier: mult.Float64(),
	}
}

// ApplyDamage lowers current by amount, clamping at zero.
//
// Postcondition: after == current - dealt; dealt <= amount; after >= 0.
func ApplyDamage(current, amount uint32) (after, dealt uint32) {
	after = SatSub(current, amount)
	return after, current - after
}

// Restore raises current by amount, clamping at max.
//
// Postcondition: restored == min(amount, max-current); after <= max.
// A current value already above max is clamped down to max with restored 0.
func Restore(current, max, amount uint32) (after, restored uint32) {
	if current >= max {
		return max, 0
	}
	room := max - current
	if amount > room {
		amount = room
	}
	return current + amount, amount
}
