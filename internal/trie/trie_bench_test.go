package trie

import (
	"strings"
	"testing"
)

var benchWords = strings.Fields(`the quick brown fox jumps over the lazy dog while
tobeornottobeortobeornot keeps repeating itself in a long trace of symbols
abracadabra mississippi banana bandana cabana`)

func BenchmarkTrie_Insert(b *testing.B) {
	for b.Loop() {
		trie := New[rune, int]()
		for i, w := range benchWords {
			_ = trie.Insert([]rune(w), i)
		}
	}
}

func BenchmarkTrie_InsertRecursive(b *testing.B) {
	for b.Loop() {
		trie := New[rune, int]()
		for i, w := range benchWords {
			_ = trie.InsertRecursive([]rune(w), i)
		}
	}
}

func BenchmarkTrie_Extend(b *testing.B) {
	input := []rune(strings.Repeat("tobeornottobeortobeornot", 64))

	for b.Loop() {
		trie := seeded("abcdefghijklmnopqrstuvwxyz")
		cursor := NewSliceCursor(input)
		next := counter(26)
		for {
			_, ok, err := trie.Extend(cursor, next)
			if err != nil || !ok {
				break
			}
		}
	}
}
