// Package entropy provides seedable random sources for the samplers.
//
// Every source satisfies math/rand/v2's Source interface so it can be wrapped
// by pauli.NewRNG. Nothing here touches a process-wide generator.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// keySize is the number of bytes squeezed from SHAKE-256 to key the PRNG.
const keySize = 64

// FromSeed returns a PCG source determined by seed.
func FromSeed(seed uint64) mrand.Source {
	x := seed ^ 0x9e3779b97f4a7c15
	hi := splitmix64(x)
	lo := splitmix64(x ^ 0xDA942042E4DD58B5)
	return mrand.NewPCG(hi, lo)
}

// System returns a PCG source seeded from crypto/rand.
func System() mrand.Source {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("entropy: crypto/rand unavailable: %v", err))
	}
	return mrand.NewPCG(binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:]))
}

// FromPhrase derives a keyed PRNG from an arbitrary phrase.
// The same phrase always yields the same stream.
func FromPhrase(phrase string) (mrand.Source, error) {
	if phrase == "" {
		return nil, fmt.Errorf("entropy: empty phrase")
	}
	key := make([]byte, keySize)
	sha3.ShakeSum256(key, []byte(phrase))

	var prng utils.PRNG
	prng, err := utils.NewKeyedPRNG(key)
	if err != nil {
		return nil, fmt.Errorf("entropy: keyed prng: %w", err)
	}
	return &readerSource{prng: prng}, nil
}

// readerSource adapts a byte-stream PRNG to mrand.Source.
type readerSource struct {
	prng utils.PRNG
	buf  [8]byte
}

func (s *readerSource) Uint64() uint64 {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		panic(fmt.Sprintf("entropy: keyed prng read: %v", err))
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	z := x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
