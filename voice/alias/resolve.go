package alias

import "strings"

// vowels is the fixed vowel set used to build CV-prefix and VCV candidate
// forms for this voicebank family.
var vowels = []string{"a", "i", "u", "e", "o"}

// maxCascadeDepth bounds the whole-cascade retries in steps 6-7 (stripping
// a CV prefix or a VCV outer context), guaranteeing termination.
const maxCascadeDepth = 2

// FindMatchingAlias resolves requested against the voicebank's alias set
// using the CV-prefix/VCV/kana-romaji cascade: exact match, CV-prefix,
// VCV, romaji<->kana retries, then (recursively, up to maxCascadeDepth) a
// stripped "- " prefix or a stripped VCV outer context. Returns the
// matched alias from aliases and true, or ("", false) if nothing matches.
func FindMatchingAlias(requested string, aliases map[string]bool) (string, bool) {
	return findMatchingAlias(requested, aliases, 0)
}

func findMatchingAlias(requested string, aliases map[string]bool, depth int) (string, bool) {
	if match, ok := directCascade(requested, aliases); ok {
		return match, true
	}

	if depth >= maxCascadeDepth {
		return "", false
	}

	if stripped, ok := strings.CutPrefix(requested, "- "); ok {
		if match, ok := findMatchingAlias(stripped, aliases, depth+1); ok {
			return match, true
		}
	}

	if cv, ok := stripVCV(requested); ok {
		if match, ok := findMatchingAlias(cv, aliases, depth+1); ok {
			return match, true
		}
	}

	return "", false
}

// directCascade runs steps 1-5: exact match, CV-prefix, VCV, then the same
// three forms again after converting requested through romaji<->kana.
func directCascade(requested string, aliases map[string]bool) (string, bool) {
	if match, ok := tryForms(requested, aliases); ok {
		return match, true
	}

	kana := RomajiToKana(requested)
	if kana != requested {
		if match, ok := tryForms(kana, aliases); ok {
			return match, true
		}
	}

	romaji := KanaToRomaji(requested)
	if romaji != requested {
		if match, ok := tryForms(romaji, aliases); ok {
			return match, true
		}
	}

	return "", false
}

// tryForms runs exact/CV-prefix/VCV (steps 1-3) for one surface form.
func tryForms(form string, aliases map[string]bool) (string, bool) {
	if aliases[form] {
		return form, true
	}

	cvPrefix := "- " + form
	if aliases[cvPrefix] {
		return cvPrefix, true
	}

	for _, v := range vowels {
		vcv := v + " " + form
		if aliases[vcv] {
			return vcv, true
		}
	}

	return "", false
}

// stripVCV extracts cv from a "{vowel} {cv}" form, reporting whether
// requested was actually in that shape.
func stripVCV(requested string) (string, bool) {
	for _, v := range vowels {
		prefix := v + " "
		if rest, ok := strings.CutPrefix(requested, prefix); ok && rest != "" {
			return rest, true
		}
	}

	return "", false
}
