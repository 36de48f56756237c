package tariff

// AdjustForProtections scales a revenue offset up for tariff protection
// terms. Each protection independently adds to the multiplier: a high
// minimum billing floor guarantees revenue even when the load idles, a
// demand ratchet locks in historical peaks, take-or-pay guarantees energy
// revenue, and a strong overall protection score earns a scaled bonus.
// Returns the adjusted value and the multiplier applied.
func AdjustForProtections(base float64, t *Tariff) (adjusted, multiplier float64) {
	if t == nil {
		return base, 1
	}

	multiplier = 1.0
	if pct := t.Protections.MinimumDemandPct; pct > 0 {
		multiplier += pct / 100 * MinimumDemandBonusFactor
	}
	if t.Protections.DemandRatchet {
		multiplier += RatchetBonus
	}
	if t.Protections.TakeOrPay {
		multiplier += TakeOrPayBonus
	}
	if score := t.ProtectionScore(); score > ProtectionScoreThreshold {
		multiplier += float64(score-ProtectionScoreThreshold) * ProtectionScoreBonusPerPoint
	}

	return base * multiplier, multiplier
}
