package alias

import "strings"

// kanaTokens and romajiTokens are built once from the base tables, longest
// token first, so multi-character matches (yoon combinations like きゃ,
// romaji digraphs like "kya") are preferred over their single-character
// prefixes during tokenized conversion.
var (
	kanaTokens     []string
	romajiTokens   []string
	katakanaTokens []string
)

func init() {
	for k := range kanaToRomajiTable {
		kanaTokens = append(kanaTokens, k)
	}

	for r := range romajiToKanaTable {
		romajiTokens = append(romajiTokens, r)
	}

	for k := range katakanaToHiragana {
		katakanaTokens = append(katakanaTokens, k)
	}

	sortByLengthDesc(kanaTokens)
	sortByLengthDesc(romajiTokens)
	sortByLengthDesc(katakanaTokens)
}

func sortByLengthDesc(tokens []string) {
	for i := 1; i < len(tokens); i++ {
		for j := i; j > 0 && len([]rune(tokens[j-1])) < len([]rune(tokens[j])); j-- {
			tokens[j-1], tokens[j] = tokens[j], tokens[j-1]
		}
	}
}

// KanaToRomaji converts a kana string to romaji, folding katakana to
// hiragana first. Characters with no mapping pass through unchanged. The
// katakana long-vowel mark repeats the previous syllable's vowel; small
// tsu (geminate marker) becomes "cl".
func KanaToRomaji(s string) string {
	runes := []rune(normalizeKatakana(s))

	var out strings.Builder

	lastVowel := byte(0)

	for i := 0; i < len(runes); {
		matched := false

		for _, tok := range kanaTokens {
			tokRunes := []rune(tok)
			if matchesAt(runes, i, tokRunes) {
				romaji := kanaToRomajiTable[tok]
				out.WriteString(romaji)

				if len(romaji) > 0 {
					lastVowel = romaji[len(romaji)-1]
				}

				i += len(tokRunes)
				matched = true

				break
			}
		}

		if matched {
			continue
		}

		r := runes[i]

		switch string(r) {
		case smallTsuHiragana, smallTsuKatakana:
			out.WriteString(geminateRomaji)
		case longVowelMark:
			if lastVowel != 0 {
				out.WriteByte(lastVowel)
			}
		default:
			out.WriteRune(r)
		}

		i++
	}

	return out.String()
}

// RomajiToKana converts a romaji string to its hiragana form. Input not
// found in the table passes through unchanged.
func RomajiToKana(s string) string {
	var out strings.Builder

	i := 0

	for i < len(s) {
		if strings.HasPrefix(s[i:], geminateRomaji) {
			out.WriteString(smallTsuHiragana)
			i += len(geminateRomaji)

			continue
		}

		matched := false

		for _, tok := range romajiTokens {
			if strings.HasPrefix(s[i:], tok) {
				out.WriteString(romajiToKanaTable[tok])
				i += len(tok)
				matched = true

				break
			}
		}

		if matched {
			continue
		}

		out.WriteByte(s[i])
		i++
	}

	return out.String()
}

func normalizeKatakana(s string) string {
	runes := []rune(s)

	var out strings.Builder

	for i := 0; i < len(runes); {
		matched := false

		for _, tok := range katakanaTokens {
			tokRunes := []rune(tok)
			if matchesAt(runes, i, tokRunes) {
				out.WriteString(katakanaToHiragana[tok])
				i += len(tokRunes)
				matched = true

				break
			}
		}

		if matched {
			continue
		}

		out.WriteRune(runes[i])
		i++
	}

	return out.String()
}

func matchesAt(runes []rune, pos int, tok []rune) bool {
	if pos+len(tok) > len(runes) {
		return false
	}

	for i, r := range tok {
		if runes[pos+i] != r {
			return false
		}
	}

	return true
}
