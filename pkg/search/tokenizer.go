package search

import (
	"strings"
	"unicode"
)

type Token string

type Tokenizer struct {
	MaxTokens int
}

type TokenList []Token

func (t *TokenList) AddToken(token Token) {
	for _, existing := range *t {
		if existing == token {
			return
		}
	}
	*t = append(*t, token)
}

var commonIssues = map[rune]rune{
	'ö': 'o',
	'ä': 'a',
	'å': 'a',
	'á': 'a',
	'é': 'e',
	'è': 'e',
	'ê': 'e',
	'ë': 'e',
	'í': 'i',
	'ï': 'i',
	'î': 'i',
	'ó': 'o',
	'ô': 'o',
	'ú': 'u',
	'ü': 'u',
	'û': 'u',
	'ÿ': 'y',
	'ç': 'c',
	'ñ': 'n',
	'ß': 's',
	'æ': 'a',
	'ø': 'o',
	'Ø': 'o',
}

// NormalizeWord lower-cases a word, strips everything that is not a
// letter or digit and folds common accented characters, so "José" and
// "jose" compare equal.
func NormalizeWord(text string) Token {
	ret := make([]rune, 0, len(text))
	var l rune
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			l = unicode.ToLower(r)
			if replacement, ok := commonIssues[l]; ok {
				l = replacement
			}
			ret = append(ret, l)
		}
	}
	return Token(ret)
}

const wordSeparators = " \n\t,:.!?;()[]{}\"'/"

// SplitWords walks the words of text, calling onWord for each one until
// it returns false.
func SplitWords(text string, onWord func(word string, count int, last bool) bool) {
	count := 0
	lastSplit := 0
	for idx, chr := range text {
		if strings.ContainsRune(wordSeparators, chr) {
			if idx > lastSplit {
				if !onWord(text[lastSplit:idx], count, false) {
					return
				}
				count++
			}
			lastSplit = idx + 1
		}
	}
	if lastSplit < len(text) {
		onWord(text[lastSplit:], count, true)
	}
}

// Tokenize yields the deduplicated normalized tokens of text in input
// order.
func (t *Tokenizer) Tokenize(text string) TokenList {
	tokens := make(TokenList, 0, 8)
	SplitWords(text, func(word string, count int, last bool) bool {
		normalized := NormalizeWord(word)
		if len(normalized) > 0 {
			tokens.AddToken(normalized)
		}
		return t.MaxTokens <= 0 || count < t.MaxTokens
	})
	return tokens
}

// NormalizeText folds a whole text into normalized words joined by a
// single space, the shape the contains-matcher operates on.
func NormalizeText(text string) string {
	var buffer strings.Builder
	SplitWords(text, func(word string, count int, last bool) bool {
		normalized := NormalizeWord(word)
		if len(normalized) == 0 {
			return true
		}
		if buffer.Len() > 0 {
			buffer.WriteByte(' ')
		}
		buffer.WriteString(string(normalized))
		return true
	})
	return buffer.String()
}

// Contains reports whether every token of query appears as a substring
// of at least one of the given texts after normalization. An empty query
// matches everything.
func Contains(query string, texts ...string) bool {
	tokenizer := Tokenizer{}
	tokens := tokenizer.Tokenize(query)
	if len(tokens) == 0 {
		return true
	}
	normalized := make([]string, 0, len(texts))
	for _, text := range texts {
		normalized = append(normalized, NormalizeText(text))
	}
	for _, token := range tokens {
		found := false
		for _, text := range normalized {
			if strings.Contains(text, string(token)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
