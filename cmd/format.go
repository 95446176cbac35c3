package cmd

import (
	"math/big"
	"strings"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
)

// formatUnits renders a raw token amount scaled down by decimals, e.g.
// 1500000 with 6 decimals is "1.5". Unparseable amounts are shown as sent.
func formatUnits(q kaiascan.Quantity, decimals int) string {
	n, ok := q.BigInt()
	if !ok {
		if q == "" {
			return "—"
		}
		return q.String()
	}
	if decimals <= 0 {
		return n.String()
	}

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(new(big.Int).Abs(n), unit, new(big.Int))

	out := whole.String()
	if frac.Sign() != 0 {
		digits := frac.String()
		digits = strings.Repeat("0", decimals-len(digits)) + digits
		out += "." + strings.TrimRight(digits, "0")
	}
	if n.Sign() < 0 {
		out = "-" + out
	}
	return out
}
