package kana

// Character grids as they appear on the overview slides. Empty strings are
// gaps in the syllabary (yi/ye/wi/wu/we do not exist in modern Japanese);
// they render as empty cells so the columns keep their traditional order.

// HiraganaTable is the basic (non-dakuten) hiragana grid, one vowel per row.
var HiraganaTable = [][]string{
	{"あ", "か", "さ", "た", "な", "は", "ま", "や", "ら", "わ"},
	{"い", "き", "し", "ち", "に", "ひ", "み", "", "り", ""},
	{"う", "く", "す", "つ", "ぬ", "ふ", "む", "ゆ", "る", ""},
	{"え", "け", "せ", "て", "ね", "へ", "め", "", "れ", ""},
	{"お", "こ", "そ", "と", "の", "ほ", "も", "よ", "ろ", "を"},
}

// HiraganaN is the syllabic n, shown in its own box beside the grid.
const HiraganaN = "ん"

// KatakanaTable is the basic (non-dakuten) katakana grid.
var KatakanaTable = [][]string{
	{"ア", "カ", "サ", "タ", "ナ", "ハ", "マ", "ヤ", "ラ", "ワ"},
	{"イ", "キ", "シ", "チ", "ニ", "ヒ", "ミ", "", "リ", ""},
	{"ウ", "ク", "ス", "ツ", "ヌ", "フ", "ム", "ユ", "ル", ""},
	{"エ", "ケ", "セ", "テ", "ネ", "ヘ", "メ", "", "レ", ""},
	{"オ", "コ", "ソ", "ト", "ノ", "ホ", "モ", "ヨ", "ロ", "ヲ"},
}

// KatakanaN is the katakana syllabic n.
const KatakanaN = "ン"

// HiraganaDakutenTable holds the voiced (dakuten) rows plus the handakuten
// pa-row, one consonant family per row.
var HiraganaDakutenTable = [][]string{
	{"が", "ぎ", "ぐ", "げ", "ご"},
	{"ざ", "じ", "ず", "ぜ", "ぞ"},
	{"だ", "ぢ", "づ", "で", "ど"},
	{"ば", "び", "ぶ", "べ", "ぼ"},
	{"ぱ", "ぴ", "ぷ", "ぺ", "ぽ"},
}

// KatakanaDakutenTable is the katakana counterpart of HiraganaDakutenTable.
var KatakanaDakutenTable = [][]string{
	{"ガ", "ギ", "グ", "ゲ", "ゴ"},
	{"ザ", "ジ", "ズ", "ゼ", "ゾ"},
	{"ダ", "ヂ", "ヅ", "デ", "ド"},
	{"バ", "ビ", "ブ", "ベ", "ボ"},
	{"パ", "ピ", "プ", "ペ", "ポ"},
}

// GojuonSeries lists the basic syllabary families in teaching order. Each
// entry drives one series overview slide plus one focus slide per character.
var GojuonSeries = []Series{
	{Name: "A Series", Hiragana: []string{"あ", "い", "う", "え", "お"}, Katakana: []string{"ア", "イ", "ウ", "エ", "オ"}},
	{Name: "Ka Series", Hiragana: []string{"か", "き", "く", "け", "こ"}, Katakana: []string{"カ", "キ", "ク", "ケ", "コ"}},
	{Name: "Sa Series", Hiragana: []string{"さ", "し", "す", "せ", "そ"}, Katakana: []string{"サ", "シ", "ス", "セ", "ソ"}},
	{Name: "Ta Series", Hiragana: []string{"た", "ち", "つ", "て", "と"}, Katakana: []string{"タ", "チ", "ツ", "テ", "ト"}},
	{Name: "Na Series", Hiragana: []string{"な", "に", "ぬ", "ね", "の"}, Katakana: []string{"ナ", "ニ", "ヌ", "ネ", "ノ"}},
	{Name: "Ha Series", Hiragana: []string{"は", "ひ", "ふ", "へ", "ほ"}, Katakana: []string{"ハ", "ヒ", "フ", "ヘ", "ホ"}},
	{Name: "Ma Series", Hiragana: []string{"ま", "み", "む", "め", "も"}, Katakana: []string{"マ", "ミ", "ム", "メ", "モ"}},
	{Name: "Ya Series", Hiragana: []string{"や", "ゆ", "よ"}, Katakana: []string{"ヤ", "ユ", "ヨ"}},
	{Name: "Ra Series", Hiragana: []string{"ら", "り", "る", "れ", "ろ"}, Katakana: []string{"ラ", "リ", "ル", "レ", "ロ"}},
	{Name: "Wa/N Series", Hiragana: []string{"わ", "を", "ん"}, Katakana: []string{"ワ", "ヲ", "ン"}},
}

// DakutenSeries lists the voiced families for the dakuten focus slides.
var DakutenSeries = []Series{
	{Name: "Ga Series", Hiragana: []string{"が", "ぎ", "ぐ", "げ", "ご"}, Katakana: []string{"ガ", "ギ", "グ", "ゲ", "ゴ"}},
	{Name: "Za Series", Hiragana: []string{"ざ", "じ", "ず", "ぜ", "ぞ"}, Katakana: []string{"ザ", "ジ", "ズ", "ゼ", "ゾ"}},
	{Name: "Da Series", Hiragana: []string{"だ", "ぢ", "づ", "で", "ど"}, Katakana: []string{"ダ", "ヂ", "ヅ", "デ", "ド"}},
	{Name: "Ba Series", Hiragana: []string{"ば", "び", "ぶ", "べ", "ぼ"}, Katakana: []string{"バ", "ビ", "ブ", "ベ", "ボ"}},
	{Name: "Pa Series", Hiragana: []string{"ぱ", "ぴ", "ぷ", "ぺ", "ぽ"}, Katakana: []string{"パ", "ピ", "プ", "ペ", "ポ"}},
}

// DefaultReadings pairs every character of the basic and dakuten grids with
// its romaji transliteration and Tamil equivalent. The Tamil column uses the
// nearest-sounding letter, not a strict transliteration; see the deck notes.
var DefaultReadings = Readings{
	// Basic hiragana
	"あ": {"A", "அ"}, "か": {"Ka", "க"}, "さ": {"Sa", "ச"}, "た": {"Ta", "த"}, "な": {"Na", "ந"},
	"は": {"Ha", "ஹ"}, "ま": {"Ma", "ம"}, "や": {"Ya", "ய"}, "ら": {"Ra", "ற"}, "わ": {"Wa", "வ"},
	"い": {"I", "இ"}, "き": {"Ki", "கி"}, "し": {"Shi", "சி"}, "ち": {"Chi", "தி"}, "に": {"Ni", "நி"},
	"ひ": {"Hi", "ஹி"}, "み": {"Mi", "மி"}, "り": {"Ri", "றி"},
	"う": {"U", "உ"}, "く": {"Ku", "கு"}, "す": {"Su", "சு"}, "つ": {"Tsu", "து"}, "ぬ": {"Nu", "நு"},
	"ふ": {"Fu", "ஹு"}, "む": {"Mu", "மு"}, "ゆ": {"Yu", "யு"}, "る": {"Ru", "று"},
	"え": {"E", "எ"}, "け": {"Ke", "கே"}, "せ": {"Se", "செ"}, "て": {"Te", "தே"}, "ね": {"Ne", "நே"},
	"へ": {"He", "ஹே"}, "め": {"Me", "மே"}, "れ": {"Re", "றே"},
	"お": {"O", "ஒ"}, "こ": {"Ko", "கொ"}, "そ": {"So", "சொ"}, "と": {"To", "தொ"}, "の": {"No", "நொ"},
	"ほ": {"Ho", "ஹொ"}, "も": {"Mo", "மொ"}, "よ": {"Yo", "யொ"}, "ろ": {"Ro", "றொ"}, "を": {"Wo", "வொ"},
	"ん": {"N", "ன்"},

	// Basic katakana
	"ア": {"A", "அ"}, "カ": {"Ka", "க"}, "サ": {"Sa", "ச"}, "タ": {"Ta", "த"}, "ナ": {"Na", "ந"},
	"ハ": {"Ha", "ஹ"}, "マ": {"Ma", "ம"}, "ヤ": {"Ya", "ய"}, "ラ": {"Ra", "ற"}, "ワ": {"Wa", "வ"},
	"イ": {"I", "இ"}, "キ": {"Ki", "கி"}, "シ": {"Shi", "சி"}, "チ": {"Chi", "தி"}, "ニ": {"Ni", "நி"},
	"ヒ": {"Hi", "ஹி"}, "ミ": {"Mi", "மி"}, "リ": {"Ri", "றி"},
	"ウ": {"U", "உ"}, "ク": {"Ku", "கு"}, "ス": {"Su", "சு"}, "ツ": {"Tsu", "து"}, "ヌ": {"Nu", "நு"},
	"フ": {"Fu", "ஹு"}, "ム": {"Mu", "மு"}, "ユ": {"Yu", "யு"}, "ル": {"Ru", "று"},
	"エ": {"E", "எ"}, "ケ": {"Ke", "கே"}, "セ": {"Se", "செ"}, "テ": {"Te", "தே"}, "ネ": {"Ne", "நே"},
	"ヘ": {"He", "ஹே"}, "メ": {"Me", "மே"}, "レ": {"Re", "றே"},
	"オ": {"O", "ஒ"}, "コ": {"Ko", "கொ"}, "ソ": {"So", "சொ"}, "ト": {"To", "தொ"}, "ノ": {"No", "நொ"},
	"ホ": {"Ho", "ஹொ"}, "モ": {"Mo", "மொ"}, "ヨ": {"Yo", "யொ"}, "ロ": {"Ro", "றொ"}, "ヲ": {"Wo", "வொ"},
	"ン": {"N", "ன்"},

	// Hiragana dakuten/handakuten
	"が": {"Ga", "க"}, "ぎ": {"Gi", "கி"}, "ぐ": {"Gu", "கு"}, "げ": {"Ge", "கே"}, "ご": {"Go", "கொ"},
	"ざ": {"Za", "ச"}, "じ": {"Ji", "சி"}, "ず": {"Zu", "சு"}, "ぜ": {"Ze", "சே"}, "ぞ": {"Zo", "சொ"},
	"だ": {"Da", "த"}, "ぢ": {"Ji", "தி"}, "づ": {"Zu", "து"}, "で": {"De", "தே"}, "ど": {"Do", "தொ"},
	"ば": {"Ba", "ப"}, "び": {"Bi", "பி"}, "ぶ": {"Bu", "பு"}, "べ": {"Be", "பே"}, "ぼ": {"Bo", "பொ"},
	"ぱ": {"Pa", "ப"}, "ぴ": {"Pi", "பி"}, "ぷ": {"Pu", "பு"}, "ぺ": {"Pe", "பே"}, "ぽ": {"Po", "பொ"},

	// Katakana dakuten/handakuten
	"ガ": {"Ga", "க"}, "ギ": {"Gi", "கி"}, "グ": {"Gu", "கு"}, "ゲ": {"Ge", "கே"}, "ゴ": {"Go", "கொ"},
	"ザ": {"Za", "ச"}, "ジ": {"Ji", "சி"}, "ズ": {"Zu", "சு"}, "ゼ": {"Ze", "சே"}, "ゾ": {"Zo", "சொ"},
	"ダ": {"Da", "த"}, "ヂ": {"Ji", "தி"}, "ヅ": {"Zu", "து"}, "デ": {"De", "தே"}, "ド": {"Do", "தொ"},
	"バ": {"Ba", "ப"}, "ビ": {"Bi", "பி"}, "ブ": {"Bu", "பு"}, "ベ": {"Be", "பே"}, "ボ": {"Bo", "பொ"},
	"パ": {"Pa", "ப"}, "ピ": {"Pi", "பி"}, "プ": {"Pu", "பு"}, "ペ": {"Pe", "பே"}, "ポ": {"Po", "பொ"},
}
