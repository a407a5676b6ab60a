package stubapi

import (
	"fmt"
	"math/big"
	"strings"

	"auction-client/internal/auctionerrors"
)

// normalizeAmount parses a decimal given as text and formats it with two
// places, the way a DecimalField(decimal_places=2) serializes.
func normalizeAmount(raw string) (string, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(raw))
	if !ok || strings.ContainsAny(raw, "/eE") {
		return "", fmt.Errorf("%w: %q is not a decimal", auctionerrors.ErrInvalidAmount, raw)
	}
	if r.Sign() <= 0 {
		return "", fmt.Errorf("%w: %q must be positive", auctionerrors.ErrInvalidAmount, raw)
	}
	return r.FloatString(2), nil
}

// compareAmounts compares two already-normalized decimals. Unparseable input
// compares as zero.
func compareAmounts(a, b string) int {
	ra, ok := new(big.Rat).SetString(a)
	if !ok {
		ra = new(big.Rat)
	}
	rb, ok := new(big.Rat).SetString(b)
	if !ok {
		rb = new(big.Rat)
	}
	return ra.Cmp(rb)
}
