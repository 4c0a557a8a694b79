package convert

import (
	"strings"
)

var openCorporaPOS = map[string]string{
	"NOUN": "NOUN",
	"ADJF": "ADJ",
	"ADJS": "ADJ",
	"COMP": "ADJ",
	"VERB": "VERB",
	"INFN": "VERB",
	"PRTF": "VERB",
	"PRTS": "VERB",
	"GRND": "VERB",
	"NUMR": "NUM",
	"NUMB": "NUM",
	"ROMN": "NUM",
	"ADVB": "ADV",
	"PRED": "ADV",
	"NPRO": "PRON",
	"PREP": "ADP",
	"CONJ": "CCONJ",
	"PRCL": "PART",
	"INTJ": "INTJ",
	"PNCT": "PUNCT",
	"LATN": "X",
	"UNKN": "X",
}

var openCorporaFeatures = map[string]feature{
	"anim": {"Animacy", "Anim"},
	"inan": {"Animacy", "Inan"},

	"masc": {"Gender", "Masc"},
	"femn": {"Gender", "Fem"},
	"neut": {"Gender", "Neut"},

	"sing": {"Number", "Sing"},
	"plur": {"Number", "Plur"},

	"nomn": {"Case", "Nom"},
	"gent": {"Case", "Gen"},
	"datv": {"Case", "Dat"},
	"accs": {"Case", "Acc"},
	"ablt": {"Case", "Ins"},
	"loct": {"Case", "Loc"},
	"voct": {"Case", "Voc"},
	"gen2": {"Case", "Par"},
	"acc2": {"Case", "Acc"},
	"loc2": {"Case", "Loc"},

	"perf": {"Aspect", "Perf"},
	"impf": {"Aspect", "Imp"},

	"pres": {"Tense", "Pres"},
	"past": {"Tense", "Past"},
	"futr": {"Tense", "Fut"},

	"1per": {"Person", "1"},
	"2per": {"Person", "2"},
	"3per": {"Person", "3"},

	"indc": {"Mood", "Ind"},
	"impr": {"Mood", "Imp"},

	"actv": {"Voice", "Act"},
	"pssv": {"Voice", "Pass"},

	"INFN": {"VerbForm", "Inf"},
	"PRTF": {"VerbForm", "Part"},
	"PRTS": {"VerbForm", "Part"},
	"GRND": {"VerbForm", "Conv"},

	"ADJS": {"Variant", "Short"},

	"COMP": {"Degree", "Cmp"},
	"Cmp2": {"Degree", "Cmp"},
	"Supr": {"Degree", "Sup"},
}

// OpenCorporaConverter converts OpenCorpora tag strings, f.ex.
// "NOUN,anim,femn sing,nomn".
type OpenCorporaConverter struct{}

var _ TagConverter = OpenCorporaConverter{}

func (OpenCorporaConverter) ConvertPOS(tags string) string {
	grammemes := openCorporaGrammemes(tags)
	if len(grammemes) == 0 {
		return UnknownPOS
	}

	if pos, ok := openCorporaPOS[grammemes[0]]; ok {
		return pos
	}

	return UnknownPOS
}

func (OpenCorporaConverter) ConvertMorphologicalTags(tags string) string {
	return features(openCorporaGrammemes(tags), openCorporaFeatures)
}

// openCorporaGrammemes splits the tag string on commas and spaces.
func openCorporaGrammemes(tags string) []string {
	return strings.FieldsFunc(tags, func(r rune) bool {
		return r == ',' || r == ' '
	})
}
