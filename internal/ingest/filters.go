package ingest

import (
	"strings"

	"github.com/affordable-sports-cars/catalog-indexer/internal/normalize"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/carquery"
)

// sportyKeywords flags a taxonomy model as sporty when contained in its normalized name.
// Short entries such as "z" or "is" match generously.
var sportyKeywords = normalize.Names([]string{
	// Porsche
	"cayman", "boxster", "911", "carrera", "turbo", "gt3", "gt2", "spyder",
	// BMW
	"m2", "m3", "m4", "m5", "m6", "z3", "z4", "z8", "i8",
	// Audi
	"tt", "r8", "rs3", "rs4", "rs5", "rs6", "rs7", "s3", "s4", "s5",
	// Toyota
	"supra", "mr2", "celica", "86", "gr86", "gr supra",
	// Nissan
	"z", "370z", "350z", "300zx", "240z", "gtr", "skyline",
	// Chevrolet
	"corvette", "camaro", "ss",
	// Ford
	"mustang", "gt", "shelby",
	// Mazda
	"miata", "mx-5", "rx-7", "rx-8",
	// Honda
	"s2000", "nsx", "civic si", "civic type r",
	// Subaru
	"wrx", "sti", "brz",
	// Jaguar
	"f-type", "xe", "xf",
	// Mercedes-Benz
	"amg", "sl", "slk", "slc",
	// Lexus
	"is", "gs", "rc", "lc",
	// Infiniti
	"q50", "q60", "g35", "g37",
	// Acura
	"tl", "tsx", "ilx", "rlx",
	// Volkswagen
	"gti", "golf r", "gli", "jetta gli",
	// Exotics
	"ferrari", "lamborghini", "mclaren", "aston martin",
	// Generic
	"coupe", "convertible", "roadster", "spider", "spyder", "sport", "performance",
})

// validBodies are the CarQuery body styles kept as passenger cars
var validBodies = map[string]bool{
	"coupe":       true,
	"convertible": true,
	"roadster":    true,
	"hatchback":   true,
	"sedan":       true,
	"fastback":    true,
	"liftback":    true,
	"wagon":       true,
	"suv":         true,
	"pickup":      true,
}

// nonCarKeywords exclude powersports vehicles listed under car makes
var nonCarKeywords = []string{"motorcycle", "atv", "scooter", "utv", "quad", "bike", "moped"}

// IsSportyModel reports whether a taxonomy model name looks like a sports car
func IsSportyModel(modelName string) bool {
	normalized := normalize.Name(modelName)
	if normalized == "" {
		return false
	}

	for _, keyword := range sportyKeywords {
		if keyword != "" && strings.Contains(normalized, keyword) {
			return true
		}
	}

	return false
}

// IsValidCarTrim reports whether a spec trim describes a passenger car
func IsValidCarTrim(trim carquery.Trim) bool {
	if !validBodies[strings.ToLower(strings.TrimSpace(trim.Body))] {
		return false
	}

	fields := []string{
		strings.ToLower(trim.Name),
		strings.ToLower(trim.Trim),
		strings.ToLower(trim.EngineType),
	}
	for _, keyword := range nonCarKeywords {
		for _, field := range fields {
			if strings.Contains(field, keyword) {
				return false
			}
		}
	}

	// unknown door and seat counts read as zero
	if trim.Doors.Int() < 2 && trim.Seats.Int() < 2 {
		return false
	}

	return true
}
