package convert

import (
	"strings"
)

var mystemPOS = map[string]string{
	"A":      "ADJ",
	"ADV":    "ADV",
	"ADVPRO": "ADV",
	"ANUM":   "ADJ",
	"APRO":   "DET",
	"COM":    "ADJ",
	"CONJ":   "CCONJ",
	"INTJ":   "INTJ",
	"NUM":    "NUM",
	"PART":   "PART",
	"PR":     "ADP",
	"S":      "NOUN",
	"SPRO":   "PRON",
	"V":      "VERB",
}

var mystemFeatures = map[string]feature{
	// case
	"им":    {"Case", "Nom"},
	"род":   {"Case", "Gen"},
	"дат":   {"Case", "Dat"},
	"вин":   {"Case", "Acc"},
	"твор":  {"Case", "Ins"},
	"пр":    {"Case", "Loc"},
	"парт":  {"Case", "Par"},
	"местн": {"Case", "Loc"},
	"зват":  {"Case", "Voc"},

	"ед": {"Number", "Sing"},
	"мн": {"Number", "Plur"},

	"муж":  {"Gender", "Masc"},
	"жен":  {"Gender", "Fem"},
	"сред": {"Gender", "Neut"},

	"од":   {"Animacy", "Anim"},
	"неод": {"Animacy", "Inan"},

	"наст":   {"Tense", "Pres"},
	"непрош": {"Tense", "Pres"},
	"прош":   {"Tense", "Past"},

	"1-л": {"Person", "1"},
	"2-л": {"Person", "2"},
	"3-л": {"Person", "3"},

	"несов": {"Aspect", "Imp"},
	"сов":   {"Aspect", "Perf"},

	"изъяв": {"Mood", "Ind"},
	"пов":   {"Mood", "Imp"},

	"инф":   {"VerbForm", "Inf"},
	"прич":  {"VerbForm", "Part"},
	"деепр": {"VerbForm", "Conv"},

	"действ": {"Voice", "Act"},
	"страд":  {"Voice", "Pass"},

	"срав": {"Degree", "Cmp"},
	"прев": {"Degree", "Sup"},

	"кр": {"Variant", "Short"},
}

// MystemConverter converts Mystem grammatical info strings, f.ex.
// "S,жен,од=(вин,мн|им,ед)". Of ambiguous inflections only the first
// alternative is used.
type MystemConverter struct{}

var _ TagConverter = MystemConverter{}

func (MystemConverter) ConvertPOS(tags string) string {
	grammemes := mystemGrammemes(tags)
	if len(grammemes) == 0 {
		return UnknownPOS
	}

	if pos, ok := mystemPOS[grammemes[0]]; ok {
		return pos
	}

	return UnknownPOS
}

func (MystemConverter) ConvertMorphologicalTags(tags string) string {
	return features(mystemGrammemes(tags), mystemFeatures)
}

// mystemGrammemes returns the lexeme grammemes (POS first) followed by the
// grammemes of the first inflection alternative.
func mystemGrammemes(tags string) []string {
	lexeme, inflection, _ := strings.Cut(strings.TrimSpace(tags), "=")

	inflection = strings.Trim(inflection, "()")
	inflection, _, _ = strings.Cut(inflection, "|")

	var grammemes []string
	for _, part := range []string{lexeme, inflection} {
		for _, g := range strings.Split(part, ",") {
			if g = strings.TrimSpace(g); g != "" {
				grammemes = append(grammemes, g)
			}
		}
	}

	return grammemes
}
