package format

import "golang.org/x/text/language"

// boolTable holds the false and true texts of every boolean code.
type boolTable map[Code][2]string

func (t boolTable) text(code Code, v bool) string {
	pair := t[code]
	if v {
		return pair[1]
	}
	return pair[0]
}

var boolLanguages = []language.Tag{language.English, language.German}

var boolTables = []boolTable{
	{
		YesNo:     {"No", "Yes"},
		TrueFalse: {"False", "True"},
		OnOff:     {"Off", "On"},
	},
	{
		YesNo:     {"Nein", "Ja"},
		TrueFalse: {"Falsch", "Wahr"},
		OnOff:     {"Aus", "Ein"},
	},
}

var boolMatcher = language.NewMatcher(boolLanguages)

func boolTableFor(tag language.Tag) boolTable {
	_, i, conf := boolMatcher.Match(tag)
	if conf == language.No {
		return boolTables[0]
	}
	return boolTables[i]
}
