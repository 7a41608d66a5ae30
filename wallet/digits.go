package wallet

import "github.com/cnwallet/walletcore/account"

// DecomposeAmount splits amount into canonical "digit" denominations: the
// largest k·10^p chunks the amount can be expressed as. Chunks at or above dustThreshold are returned in
// digits; any remainder below dustThreshold is returned separately as
// dust, so the caller can apply the dust policy to it.
func DecomposeAmount(amount, dustThreshold uint64) (digits []uint64, dust uint64) {
	if amount == 0 {
		return nil, 0
	}

	place := uint64(1)
	remaining := amount
	for remaining > 0 {
		digit := remaining % 10
		remaining /= 10
		if digit == 0 {
			place *= 10
			continue
		}
		chunk := digit * place
		if chunk >= dustThreshold {
			digits = append(digits, chunk)
		} else {
			dust += chunk
		}
		place *= 10
	}

	// digits were appended least-significant-chunk first; present them
	// most-significant first, matching the order a human would write the
	// number's non-zero digits.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits, dust
}

// SplitStrategy selects how ApplySplitStrategy treats destination
// amounts.
type SplitStrategy int

const (
	// DigitSplit decomposes every destination amount into digit chunks,
	// each becoming its own output. This is the normal path.
	DigitSplit SplitStrategy = iota
	// NullSplit passes destinations through unchanged; only the change
	// amount is digit-split. Retained for test purposes.
	NullSplit
)

// SplitOutput is one output produced by applying a split strategy to a
// destination or change amount: an amount and a target account address.
type SplitOutput struct {
	Amount  uint64
	Address account.Address
}

// ApplySplitStrategy expands a single destination amount into its output
// chunks under strategy, applying dustPolicy to any sub-threshold
// remainder.
// The dead null_split_strategy change_candidate computation from the
// original source is intentionally not reproduced: Open Questions
// preserves only the observable behavior (dust is updated; the unused
// candidate was never written back).
func ApplySplitStrategy(amount uint64, addr account.Address, strategy SplitStrategy, policy DustPolicy) ([]SplitOutput, uint64) {
	if strategy == NullSplit {
		return []SplitOutput{{Amount: amount, Address: addr}}, 0
	}

	digits, dust := DecomposeAmount(amount, policy.Threshold)
	outs := make([]SplitOutput, 0, len(digits))
	for _, d := range digits {
		outs = append(outs, SplitOutput{Amount: d, Address: addr})
	}
	if dust > 0 && !policy.AddToFee {
		outs = append(outs, SplitOutput{Amount: dust, Address: policy.DustRecipientAddress})
		dust = 0
	}
	return outs, dust
}

// DustPolicy governs how sub-threshold remainders are handled: threshold,
// whether to add the remainder to the fee, and a dust recipient address.
type DustPolicy struct {
	Threshold            uint64
	AddToFee             bool
	DustRecipientAddress account.Address
}
