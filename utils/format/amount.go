package format

import (
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// WeiToEther is the display precision of native value amounts.
const WeiToEther = 18

// Amount renders a big-endian unsigned integer scaled down by decimals,
// prefixed with ticker, e.g. "ETH 32.5". Trailing fractional zeros are dropped.
func Amount(value []byte, decimals uint8, ticker string) (string, error) {
	if len(value) > 32 {
		return "", errors.Errorf("amount is %d bytes, at most 32 are supported", len(value))
	}

	digits := new(uint256.Int).SetBytes(value).Dec()
	amount := scaleDecimal(digits, int(decimals))

	if ticker == "" {
		return amount, nil
	}
	return ticker + " " + amount, nil
}

func scaleDecimal(digits string, decimals int) string {
	if decimals == 0 {
		return digits
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	point := len(digits) - decimals
	integer, fraction := digits[:point], strings.TrimRight(digits[point:], "0")
	if fraction == "" {
		return integer
	}
	return integer + "." + fraction
}
