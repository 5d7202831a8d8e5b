package alias

// kanaToRomajiTable is the static bidirectional base mapping between kana
// syllables and their romaji spelling. Both hiragana and katakana map to
// the same romaji form; romajiToKanaTable (built from this at init) always
// produces the hiragana form, matching the voicebank convention that
// katakana and hiragana aliases are interchangeable but romaji input
// normalizes to hiragana.
var kanaToRomajiTable = map[string]string{
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",
	"か": "ka", "き": "ki", "く": "ku", "け": "ke", "こ": "ko",
	"さ": "sa", "し": "shi", "す": "su", "せ": "se", "そ": "so",
	"た": "ta", "ち": "chi", "つ": "tsu", "て": "te", "と": "to",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"は": "ha", "ひ": "hi", "ふ": "fu", "へ": "he", "ほ": "ho",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "を": "wo", "ん": "n",
	"が": "ga", "ぎ": "gi", "ぐ": "gu", "げ": "ge", "ご": "go",
	"ざ": "za", "じ": "ji", "ず": "zu", "ぜ": "ze", "ぞ": "zo",
	"だ": "da", "ぢ": "ji", "づ": "zu", "で": "de", "ど": "do",
	"ば": "ba", "び": "bi", "ぶ": "bu", "べ": "be", "ぼ": "bo",
	"ぱ": "pa", "ぴ": "pi", "ぷ": "pu", "ぺ": "pe", "ぽ": "po",
	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
}

// katakanaToHiragana maps every katakana syllable in the table to its
// hiragana equivalent, so katakana input can be folded onto the same
// romaji mapping above.
var katakanaToHiragana = map[string]string{
	"ア": "あ", "イ": "い", "ウ": "う", "エ": "え", "オ": "お",
	"カ": "か", "キ": "き", "ク": "く", "ケ": "け", "コ": "こ",
	"サ": "さ", "シ": "し", "ス": "す", "セ": "せ", "ソ": "そ",
	"タ": "た", "チ": "ち", "ツ": "つ", "テ": "て", "ト": "と",
	"ナ": "な", "ニ": "に", "ヌ": "ぬ", "ネ": "ね", "ノ": "の",
	"ハ": "は", "ヒ": "ひ", "フ": "ふ", "ヘ": "へ", "ホ": "ほ",
	"マ": "ま", "ミ": "み", "ム": "む", "メ": "め", "モ": "も",
	"ヤ": "や", "ユ": "ゆ", "ヨ": "よ",
	"ラ": "ら", "リ": "り", "ル": "る", "レ": "れ", "ロ": "ろ",
	"ワ": "わ", "ヲ": "を", "ン": "ん",
	"ガ": "が", "ギ": "ぎ", "グ": "ぐ", "ゲ": "げ", "ゴ": "ご",
	"ザ": "ざ", "ジ": "じ", "ズ": "ず", "ゼ": "ぜ", "ゾ": "ぞ",
	"ダ": "だ", "ヂ": "ぢ", "ヅ": "づ", "デ": "で", "ド": "ど",
	"バ": "ば", "ビ": "び", "ブ": "ぶ", "ベ": "べ", "ボ": "ぼ",
	"パ": "ぱ", "ピ": "ぴ", "プ": "ぷ", "ペ": "ぺ", "ポ": "ぽ",
	"キャ": "きゃ", "キュ": "きゅ", "キョ": "きょ",
	"シャ": "しゃ", "シュ": "しゅ", "ショ": "しょ",
	"チャ": "ちゃ", "チュ": "ちゅ", "チョ": "ちょ",
	"ニャ": "にゃ", "ニュ": "にゅ", "ニョ": "にょ",
	"ヒャ": "ひゃ", "ヒュ": "ひゅ", "ヒョ": "ひょ",
	"ミャ": "みゃ", "ミュ": "みゅ", "ミョ": "みょ",
	"リャ": "りゃ", "リュ": "りゅ", "リョ": "りょ",
	"ギャ": "ぎゃ", "ギュ": "ぎゅ", "ギョ": "ぎょ",
	"ジャ": "じゃ", "ジュ": "じゅ", "ジョ": "じょ",
	"ビャ": "びゃ", "ビュ": "びゅ", "ビョ": "びょ",
	"ピャ": "ぴゃ", "ピュ": "ぴゅ", "ピョ": "ぴょ",
}

// smallTsu is the geminate consonant marker (hiragana っ, katakana ッ),
// which has no standalone sound and is conventionally rendered "cl" for
// voicebank aliasing purposes.
const (
	smallTsuHiragana = "っ"
	smallTsuKatakana = "ッ"
	geminateRomaji   = "cl"
)

// longVowelMark is the katakana prolonged sound mark, which repeats the
// previous mora's vowel rather than encoding a sound of its own.
const longVowelMark = "ー"

var romajiToKanaTable map[string]string

func init() {
	romajiToKanaTable = make(map[string]string, len(kanaToRomajiTable))
	for kana, romaji := range kanaToRomajiTable {
		if _, exists := romajiToKanaTable[romaji]; !exists {
			romajiToKanaTable[romaji] = kana
		}
	}

	// じ/ぢ and ず/づ share a romaji spelling; the reverse lookup always
	// yields the common じ and ず regardless of map iteration order.
	romajiToKanaTable["ji"] = "じ"
	romajiToKanaTable["zu"] = "ず"
}
