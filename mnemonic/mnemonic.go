// Package mnemonic converts a 32-byte seed to and from a 25-word
// Electrum-style phrase: 32 bytes map to 25 words via a fixed 1626-word
// list. The package shape (a Phrase type, ToPhrase/FromPhrase entry
// points, a sorted-dictionary word lookup) follows CryptoNote's own
// seed-word scheme, not BIP-39's bit-packing: each 4-byte little-endian
// chunk of the seed maps to three dictionary words via modular
// arithmetic, and a 25th checksum word (itself one of the first 24) lets
// a typo in any of the first 24 words be caught before it silently
// produces the wrong seed.
package mnemonic

import (
	"encoding/binary"
	"errors"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/huandu/xstrings"
)

const (
	// SeedSize is the length, in bytes, of the seed a Phrase encodes.
	SeedSize = 32
	// WordCount is the number of words in a full phrase: 24 data words
	// plus one checksum word.
	WordCount = 25
	// dictionarySize is the size of wordList.
	dictionarySize = 1626
	// checksumPrefixLen is how many leading characters of each of the
	// first 24 words feed the checksum, mirroring Monero's English
	// unique_prefix_length of 4.
	checksumPrefixLen = 4
)

var (
	// ErrWrongWordCount is returned when a phrase does not have exactly
	// WordCount words.
	ErrWrongWordCount = errors.New("mnemonic: phrase must have exactly 25 words")
	// ErrUnknownWord is returned when a word is not in the dictionary and
	// no close-enough correction could be found.
	ErrUnknownWord = errors.New("mnemonic: word not found in dictionary")
	// ErrChecksumMismatch is returned when the 25th word does not match
	// the checksum computed from the first 24.
	ErrChecksumMismatch = errors.New("mnemonic: checksum word does not match")
)

// Phrase is the human-readable encoding of a 32-byte seed.
type Phrase []string

// ToPhrase encodes a 32-byte seed into a checksummed 25-word Phrase.
func ToPhrase(seed [SeedSize]byte) Phrase {
	words := make([]string, 0, WordCount)
	for chunk := 0; chunk < SeedSize; chunk += 4 {
		val := binary.LittleEndian.Uint32(seed[chunk : chunk+4])
		w1 := val % dictionarySize
		w2 := (val/dictionarySize + w1) % dictionarySize
		w3 := (val/dictionarySize/dictionarySize + w2) % dictionarySize
		words = append(words, wordList[w1], wordList[w2], wordList[w3])
	}
	words = append(words, words[checksumIndex(words)])
	return Phrase(words)
}

// ParsePhrase splits a raw, user-typed phrase into a Phrase, tolerating the
// doubled and leading/trailing spaces a pasted-in phrase commonly picks up.
func ParsePhrase(s string) Phrase {
	squeezed := xstrings.Squeeze(strings.TrimSpace(s), " ")
	return Phrase(strings.Fields(squeezed))
}

// FromPhrase decodes a Phrase back into its 32-byte seed, validating the
// checksum word and correcting any single word that is a near miss (a
// typo) for exactly one dictionary entry via Levenshtein distance before
// giving up with ErrUnknownWord.
func FromPhrase(p Phrase) ([SeedSize]byte, error) {
	var seed [SeedSize]byte
	if len(p) != WordCount {
		return seed, ErrWrongWordCount
	}

	corrected := make([]string, WordCount)
	for i, w := range p {
		fixed, err := correctWord(w)
		if err != nil {
			return seed, err
		}
		corrected[i] = fixed
	}

	dataWords := corrected[:WordCount-1]
	if corrected[WordCount-1] != dataWords[checksumIndex(dataWords)] {
		return seed, ErrChecksumMismatch
	}

	for i := 0; i < 8; i++ {
		w1, err := indexOf(dataWords[3*i])
		if err != nil {
			return seed, err
		}
		w2, err := indexOf(dataWords[3*i+1])
		if err != nil {
			return seed, err
		}
		w3, err := indexOf(dataWords[3*i+2])
		if err != nil {
			return seed, err
		}
		const n = int64(dictionarySize)
		d21 := ((int64(w2)-int64(w1))%n + n) % n
		d32 := ((int64(w3)-int64(w2))%n + n) % n
		val := int64(w1) + n*d21 + n*n*d32
		binary.LittleEndian.PutUint32(seed[4*i:4*i+4], uint32(val))
	}
	return seed, nil
}

// checksumIndex computes which of the 24 data words doubles as the 25th
// checksum word, from a CRC-style rolling hash of each word's prefix.
func checksumIndex(dataWords []string) int {
	var trimmed string
	for _, w := range dataWords {
		trimmed += prefix(w, checksumPrefixLen)
	}
	return int(crc32String(trimmed) % uint32(len(dataWords)))
}

func prefix(w string, n int) string {
	if len(w) <= n {
		return w
	}
	return w[:n]
}

// indexOf finds a word's position in the dictionary via binary search
// (wordList is kept sorted).
func indexOf(word string) (uint32, error) {
	i := sort.SearchStrings(wordList[:], word)
	if i < len(wordList) && wordList[i] == word {
		return uint32(i), nil
	}
	return 0, ErrUnknownWord
}

// correctWord returns word unchanged if it is in the dictionary, or the
// single closest dictionary entry within Levenshtein distance 2 (a tie at
// the closest distance is rejected as ambiguous), tolerating the fat-fingered phrase entry a
// human typing 25 words is prone to.
func correctWord(word string) (string, error) {
	if _, err := indexOf(word); err == nil {
		return word, nil
	}
	best := ""
	bestDist := -1
	ambiguous := false
	for _, candidate := range wordList {
		d := levenshtein.ComputeDistance(word, candidate)
		if d > 2 {
			continue
		}
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = candidate
			ambiguous = false
		} else if d == bestDist {
			ambiguous = true
		}
	}
	if bestDist == -1 || ambiguous {
		return "", ErrUnknownWord
	}
	return best, nil
}
