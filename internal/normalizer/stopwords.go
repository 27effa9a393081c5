package normalizer

// defaultStopwords is the fixed Portuguese stopword set. Entries are
// normalized at construction, so accented spellings are fine here.
var defaultStopwords = []string{
	"a", "o", "as", "os", "um", "uma", "uns", "umas",
	"de", "da", "do", "das", "dos", "em", "no", "na", "nos", "nas",
	"ao", "aos", "à", "às", "pelo", "pela", "pelos", "pelas",
	"por", "para", "com", "sem", "sob", "sobre", "entre", "até",
	"e", "ou", "mas", "nem", "que", "se", "como", "quando", "onde",
	"ele", "ela", "eles", "elas", "seu", "sua", "seus", "suas",
	"este", "esta", "estes", "estas", "esse", "essa", "esses", "essas",
	"isso", "isto", "aquele", "aquela", "aquilo",
	"é", "são", "foi", "foram", "ser", "sendo", "sido",
	"há", "já", "não", "sim", "também", "ainda", "apenas",
	"mais", "menos", "muito", "mesmo", "qual", "quais",
	"lhe", "lhes", "nos", "me", "te",
}
