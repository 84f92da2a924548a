package codeplug

import (
	"encoding/hex"
	"fmt"
)

// KeySize is the fixed byte length of one encryption key record.
const KeySize = 33

// KeySlotCount is the number of encryption key slots the radio holds.
const KeySlotCount = 8

// Algorithm discriminates the three supported encryption algorithms.
// Each has a fixed hex-key character length: Arc4 10, Aes128 32, Aes256
// 64 — which is exactly 2x its packed byte length (5, 16, 32 bytes),
// since the key bytes here are packed two hex digits per byte, not one
// alphabet character per byte as in the nibble-indexed digit strings
// elsewhere in this package.
type Algorithm int

const (
	Arc4 Algorithm = iota
	Aes128
	Aes256
)

var algorithmHexLen = map[Algorithm]int{
	Arc4:   10,
	Aes128: 32,
	Aes256: 64,
}

// Key is the decoded form of one 33-byte encryption key record.
type Key struct {
	Algorithm Algorithm
	HexKey    string
}

const (
	keyOffAlg = 0
	keyOffHex = 1
	keyHexLen = 32
)

// IsEmptyKey reports whether buf is the empty-slot sentinel: bytes 0 and
// 1 are both 0xFF.
func IsEmptyKey(buf []byte) bool {
	return buf[keyOffAlg] == 0xFF && buf[keyOffHex] == 0xFF
}

// EncodeKey renders k as a KeySize-byte record. A nil k produces the
// empty-slot sentinel.
func EncodeKey(k *Key) ([]byte, error) {
	buf := make([]byte, KeySize)
	fillBytes(buf, 0xFF)
	if k == nil {
		return buf, nil
	}

	wantLen, ok := algorithmHexLen[k.Algorithm]
	if !ok {
		return nil, codecErr("key", "algorithm", fmt.Errorf("unknown algorithm %d", k.Algorithm))
	}
	if len(k.HexKey) != wantLen {
		return nil, codecErr("key", "hexKey", fmt.Errorf("algorithm needs %d hex chars, got %d", wantLen, len(k.HexKey)))
	}

	buf[keyOffAlg] = byte(k.Algorithm)

	padded := k.HexKey
	for len(padded) < keyHexLen*2 {
		padded += "0"
	}
	packed, err := hex.DecodeString(padded)
	if err != nil {
		return nil, codecErr("key", "hexKey", err)
	}
	copy(buf[keyOffHex:keyOffHex+keyHexLen], packed)

	return buf, nil
}

// DecodeKey parses a KeySize-byte record. It returns (nil, nil) for the
// empty-slot sentinel.
func DecodeKey(buf []byte) (*Key, error) {
	if len(buf) != KeySize {
		return nil, codecErr("key", "", errWrongSize(KeySize, len(buf)))
	}
	if IsEmptyKey(buf) {
		return nil, nil
	}

	alg := Algorithm(buf[keyOffAlg] & 0x0F)
	wantLen, ok := algorithmHexLen[alg]
	if !ok {
		return nil, codecErr("key", "algorithm", fmt.Errorf("unknown algorithm %d", alg))
	}

	full := hex.EncodeToString(buf[keyOffHex : keyOffHex+keyHexLen])
	return &Key{Algorithm: alg, HexKey: full[:wantLen]}, nil
}
