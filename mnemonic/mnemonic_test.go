package mnemonic

import (
	"testing"

	"github.com/NebulousLabs/fastrand"
)

func TestPhraseRoundTrip(t *testing.T) {
	var seed [SeedSize]byte
	fastrand.Read(seed[:])

	phrase := ToPhrase(seed)
	if len(phrase) != WordCount {
		t.Fatalf("expected %d words, got %d", WordCount, len(phrase))
	}

	decoded, err := FromPhrase(phrase)
	if err != nil {
		t.Fatalf("FromPhrase: %v", err)
	}
	if decoded != seed {
		t.Fatalf("round trip mismatch: got %x want %x", decoded, seed)
	}
}

func TestFromPhraseRejectsBadChecksum(t *testing.T) {
	var seed [SeedSize]byte
	fastrand.Read(seed[:])
	phrase := ToPhrase(seed)

	// corrupt the checksum word with some other dictionary word.
	for _, w := range wordList {
		if w != phrase[len(phrase)-1] {
			phrase[len(phrase)-1] = w
			break
		}
	}

	if _, err := FromPhrase(phrase); err != ErrChecksumMismatch {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestFromPhraseRejectsWrongLength(t *testing.T) {
	_, err := FromPhrase(Phrase{"one", "two"})
	if err != ErrWrongWordCount {
		t.Fatalf("expected ErrWrongWordCount, got %v", err)
	}
}

func TestCorrectWordAcceptsExactMatch(t *testing.T) {
	got, err := correctWord(wordList[42])
	if err != nil {
		t.Fatalf("correctWord: %v", err)
	}
	if got != wordList[42] {
		t.Fatalf("expected exact word to round trip, got %q", got)
	}
}

func TestCorrectWordRejectsGarbage(t *testing.T) {
	if _, err := correctWord("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"); err != ErrUnknownWord {
		t.Fatalf("expected ErrUnknownWord for a word far from every dictionary entry, got %v", err)
	}
}

func TestParsePhraseSqueezesWhitespace(t *testing.T) {
	var seed [SeedSize]byte
	fastrand.Read(seed[:])
	phrase := ToPhrase(seed)

	pasted := "  " + phrase[0] + "   " + phrase[1] + "  " + phrase[2] + " "
	parsed := ParsePhrase(pasted)
	if len(parsed) != 3 {
		t.Fatalf("expected 3 words, got %d: %v", len(parsed), parsed)
	}
	for i := 0; i < 3; i++ {
		if parsed[i] != phrase[i] {
			t.Fatalf("word %d: got %q want %q", i, parsed[i], phrase[i])
		}
	}
}
