// Package language canonicalizes language identifiers so that pairs entered
// as ISO codes, regional variants, English names, or Turkish names compare
// equal.
package language

// names maps canonical ISO 639-1 codes to English display names.
// Every code listed here round-trips: Normalize(DisplayName(code)) == code.
var names = map[string]string{
	"ar": "Arabic",
	"az": "Azerbaijani",
	"bg": "Bulgarian",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"fa": "Persian",
	"fi": "Finnish",
	"fr": "French",
	"he": "Hebrew",
	"hi": "Hindi",
	"hu": "Hungarian",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"ka": "Georgian",
	"kk": "Kazakh",
	"ko": "Korean",
	"nl": "Dutch",
	"no": "Norwegian",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sr": "Serbian",
	"sv": "Swedish",
	"th": "Thai",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// aliases maps regional variant codes and localized (Turkish) names to
// canonical codes. Data entry happened in both locales, so both spellings
// appear in production records.
var aliases = map[string]string{
	"en-GB": "en", "en-US": "en", "en-AU": "en",
	"pt-BR": "pt", "pt-PT": "pt",
	"zh-CN": "zh", "zh-TW": "zh", "zh-HK": "zh",
	"fr-FR": "fr", "fr-CA": "fr",
	"es-ES": "es", "es-MX": "es", "es-AR": "es",
	"de-DE": "de", "de-AT": "de", "de-CH": "de",
	"ar-SA": "ar", "ar-EG": "ar",
	"nl-BE": "nl",

	"İngilizce":  "en",
	"Fransızca":  "fr",
	"Almanca":    "de",
	"İspanyolca": "es",
	"İtalyanca":  "it",
	"Portekizce": "pt",
	"Rusça":      "ru",
	"Türkçe":     "tr",
	"Arapça":     "ar",
	"Çince":      "zh",
	"Japonca":    "ja",
	"Korece":     "ko",
	"Felemenkçe": "nl",
	"Lehçe":      "pl",
	"Ukraynaca":  "uk",
	"Yunanca":    "el",
	"Farsça":     "fa",
	"İbranice":   "he",
	"Hintçe":     "hi",
	"Azerice":    "az",
	"Bulgarca":   "bg",
	"Çekçe":      "cs",
	"Romence":    "ro",
	"Sırpça":     "sr",
	"Kazakça":    "kk",
	"Gürcüce":    "ka",
	"Endonezce":  "id",
	"Macarca":    "hu",
	"Fince":      "fi",
	"İsveççe":    "sv",
	"Norveççe":   "no",
	"Danca":      "da",
	"Tayca":      "th",
	"Vietnamca":  "vi",
}

// lookup is the merged exact-match table: code -> code, name -> code,
// alias -> code.
var lookup = func() map[string]string {
	m := make(map[string]string, len(names)*2+len(aliases))
	for code, name := range names {
		m[code] = code
		m[name] = code
	}
	for alias, code := range aliases {
		m[alias] = code
	}
	return m
}()

// Normalize maps a raw language label to its canonical code. Unrecognized
// labels pass through unchanged: a label the table does not know must not
// break filtering, only fail to normalize. Empty input returns "".
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	if code, ok := lookup[raw]; ok {
		return code
	}
	return raw
}

// DisplayName maps a canonical code back to its English name, returning the
// code itself when unknown.
func DisplayName(code string) string {
	if name, ok := names[code]; ok {
		return name
	}
	return code
}

// PairSeparator joins the two sides of a pair key. Direction matters:
// "en → fr" and "fr → en" are distinct pairs.
const PairSeparator = " → "

// PairKey builds the canonical comparison key for a working direction.
// Using it on both the freelancer side and the criteria side guarantees
// consistent comparison regardless of which representation (code or name)
// was used at data-entry time.
func PairKey(sourceRaw, targetRaw string) string {
	return Normalize(sourceRaw) + PairSeparator + Normalize(targetRaw)
}

// DisplayPair renders a pair in display names ("English → French").
func DisplayPair(sourceRaw, targetRaw string) string {
	return DisplayName(Normalize(sourceRaw)) + PairSeparator + DisplayName(Normalize(targetRaw))
}
