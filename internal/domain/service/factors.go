package service

// The five factor scorers. Each maps the fact set onto a 0-100 score using
// the policy's constant tables; "no history" conditions score the policy's
// neutral constant rather than failing.

// paymentHistoryScore rewards the on-time ratio and penalizes late and
// missed ratios, floored at zero. The result is rounded to 2 decimals so
// equal ratios always produce the identical score.
func paymentHistoryScore(f CreditFacts, p Policy) float64 {
	if f.TotalPayments == 0 {
		return p.NoPaymentScore
	}
	total := float64(f.TotalPayments)
	score := 100*(float64(f.OnTimePayments)/total) -
		p.LatePenalty*(float64(f.LatePayments)/total) -
		p.MissedPenalty*(float64(f.MissedPayments)/total)
	if score < 0 {
		score = 0
	}
	return roundTo(score, 2)
}

// utilizationScore buckets the balance-to-limit ratio. Scores are not
// monotonic near zero: tiny nonzero utilization outscores none at all.
func utilizationScore(f CreditFacts, p Policy) float64 {
	if f.TotalCreditLimit <= 0 {
		return p.NoLimitScore
	}
	ratio := f.utilizationRatio()
	for _, b := range p.UtilizationBuckets {
		if ratio <= b.UpTo {
			return b.Score
		}
	}
	return p.UtilizationFloor
}

// historyLengthScore buckets the age of the oldest credit product.
func historyLengthScore(f CreditFacts, p Policy) float64 {
	if !f.HasHistoryDates {
		return p.NoHistoryScore
	}
	for _, b := range p.HistoryBuckets {
		if f.HistoryYears >= b.AtLeast {
			return b.Score
		}
	}
	return p.HistoryFloor
}

// creditMixScore awards points per product family held, capped at 100.
func creditMixScore(f CreditFacts, p Policy) float64 {
	score := 0.0
	if f.HasCreditCards {
		score += p.Mix.Cards
	}
	if f.HasBankAccounts {
		score += p.Mix.BankAccounts
	}
	if f.HasHomeLoan {
		score += p.Mix.HomeLoan
	}
	if f.HasCarLoan {
		score += p.Mix.CarLoan
	}
	if f.HasPersonalLoan {
		score += p.Mix.PersonalLoan
	}
	if score > 100 {
		score = 100
	}
	return score
}

// newCreditScore buckets the number of recently opened products; fewer is
// better.
func newCreditScore(f CreditFacts, p Policy) float64 {
	for _, b := range p.NewCreditBuckets {
		if f.RecentAccountCount <= b.UpTo {
			return b.Score
		}
	}
	return p.NewCreditFloor
}
