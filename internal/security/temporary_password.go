package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	upperAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet = "abcdefghijkmnopqrstuvwxyz"
	digitAlphabet = "23456789"

	// TemporaryPasswordAlphabet leaves out characters that are easy to misread.
	TemporaryPasswordAlphabet = upperAlphabet + lowerAlphabet + digitAlphabet

	MinTemporaryPasswordLength = 8
)

var errEmptyAlphabet = errors.New("alphabet must not be empty")

// TemporaryPassword returns a random password that always holds an upper-case
// letter, a lower-case letter and a digit. Lengths below the minimum are raised.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}

	value := make([]byte, 0, length)
	for _, alphabet := range []string{upperAlphabet, lowerAlphabet, digitAlphabet} {
		char, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		value = append(value, char)
	}
	for len(value) < length {
		char, err := randomChar(TemporaryPasswordAlphabet)
		if err != nil {
			return "", err
		}
		value = append(value, char)
	}

	if err := shuffle(value); err != nil {
		return "", err
	}
	return string(value), nil
}

func randomChar(alphabet string) (byte, error) {
	if len(alphabet) == 0 {
		return 0, errEmptyAlphabet
	}
	position, err := randomIndex(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[position], nil
}

func randomIndex(limit int) (int, error) {
	position, err := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	if err != nil {
		return 0, err
	}
	return int(position.Int64()), nil
}

// shuffle permutes value in place (Fisher-Yates).
func shuffle(value []byte) error {
	for index := len(value) - 1; index > 0; index-- {
		swap, err := randomIndex(index + 1)
		if err != nil {
			return err
		}
		value[index], value[swap] = value[swap], value[index]
	}
	return nil
}
