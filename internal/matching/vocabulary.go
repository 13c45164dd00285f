package matching

import (
	"strings"

	"github.com/affordable-sports-cars/catalog-indexer/internal/normalize"
)

// Vocabularies are searched in order; the first entry contained in the
// normalized title wins, so broader entries placed early shadow later ones.
var (
	knownMakes = normalize.Names([]string{
		"porsche", "bmw", "audi", "mercedes", "lexus", "infiniti", "acura",
		"toyota", "honda", "nissan", "mazda", "subaru", "mitsubishi",
		"chevrolet", "ford", "dodge", "chrysler", "jeep", "cadillac",
		"jaguar", "land rover", "volvo", "saab", "alfa romeo", "maserati",
		"ferrari", "lamborghini", "mclaren", "aston martin", "bentley",
		"rolls royce", "bugatti", "koenigsegg", "pagani",
	})

	knownModels = normalize.Names([]string{
		"cayman", "boxster", "911", "carrera", "panamera", "macan", "cayenne",
		"m2", "m3", "m4", "m5", "m6", "z3", "z4", "z8", "i8", "x3", "x5",
		"tt", "r8", "rs3", "rs4", "rs5", "rs6", "rs7", "s3", "s4", "s5",
		"supra", "mr2", "celica", "86", "gr86", "gr supra",
		"z", "370z", "350z", "300zx", "240z", "gtr", "skyline", "altima",
		"corvette", "camaro", "ss", "malibu", "impala",
		"mustang", "gt", "shelby", "focus", "fiesta",
		"miata", "mx-5", "rx-7", "rx-8", "mazda3", "mazda6",
		"s2000", "nsx", "civic", "accord", "prelude",
		"wrx", "sti", "brz", "impreza", "legacy",
		"f-type", "xe", "xf", "xj", "xk",
		"amg", "sl", "slk", "slc", "cls", "e-class", "s-class",
		"is", "gs", "ls", "rc", "lc", "nx", "rx", "gx", "lx",
		"q50", "q60", "q70", "g35", "g37", "fx", "qx",
		"tl", "tsx", "ilx", "rlx", "rdx", "mdx",
	})

	trimKeywords = normalize.Names([]string{
		"base", "sport", "performance", "premium", "luxury", "limited",
		"turbo", "supercharged", "competition", "track", "racing",
		"manual", "automatic", "cvt", "dsg", "pdk",
		"coupe", "convertible", "roadster", "sedan", "hatchback",
		"awd", "rwd", "fwd", "4wd", "2wd",
	})

	transmissions = []string{"manual", "automatic"}

	bodyStyles = []string{"coupe", "convertible", "sedan", "hatchback"}
)

func firstContained(normalized string, vocabulary []string) string {
	for _, entry := range vocabulary {
		if entry != "" && strings.Contains(normalized, entry) {
			return entry
		}
	}
	return ""
}
