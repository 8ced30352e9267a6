package test

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomEmail returns a unique-looking address for signup tests.
func RandomEmail() string {
	return fmt.Sprintf("%s@example.com", randomString(12))
}

// RandomReference returns an order-reference-shaped token.
func RandomReference() string {
	return fmt.Sprintf("ref-%s", randomString(8))
}

func randomString(length int) string {
	rngMu.Lock()
	defer rngMu.Unlock()
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[rng.Intn(len(asciiLetters))]
	}
	return string(buf)
}
