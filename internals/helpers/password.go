package helper

import (
	"crypto/rand"
	"math/big"
)

const (
	passUpper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	passLower   = "abcdefghijkmnpqrstuvwxyz"
	passDigits  = "23456789"
	passSymbols = "!@#$%^&*-_=+"
)

// GenerateTempPassword builds a temporary password of the given length
// (clamped to 12..16) with at least one upper, lower, digit and symbol.
// One char per class is forced first, the rest filled from the full set,
// then the whole thing is shuffled so class positions are not predictable.
func GenerateTempPassword(length int) (string, error) {
	if length < 12 {
		length = 12
	}
	if length > 16 {
		length = 16
	}

	classes := []string{passUpper, passLower, passDigits, passSymbols}
	all := passUpper + passLower + passDigits + passSymbols

	buf := make([]byte, 0, length)
	for _, class := range classes {
		ch, err := randByte(class)
		if err != nil {
			return "", err
		}
		buf = append(buf, ch)
	}
	for len(buf) < length {
		ch, err := randByte(all)
		if err != nil {
			return "", err
		}
		buf = append(buf, ch)
	}

	// Fisher–Yates with crypto randomness
	for i := len(buf) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

func randByte(set string) (byte, error) {
	i, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
