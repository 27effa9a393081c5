package scoring

import (
	"strings"

	"github.com/lexbr/precedentes/internal/repository"
)

// Hierarchy boost values. The externally observable contract is the ordering
// of the tiers, evaluated top to bottom with first match winning; absolute
// magnitudes only need to preserve it.
const (
	boostTSTBinding  = 500 // TST binding precedent or IAC
	boostSTFControl  = 480 // STF concentrated/extraordinary control (ADI, ADC, ADPF, RE, ARE)
	boostTRTIncident = 450 // regional IRDR / IAC
	boostSTFSumula   = 100
	boostTSTSumulaOJ = 80
	boostSTF         = 50
	boostTST         = 40
	boostTRT         = 20
	boostSTJ         = 5
)

// stfControlTypes are the STF process classes boosted just below TST binding
// precedents.
var stfControlTypes = map[string]struct{}{
	"adi":  {},
	"adc":  {},
	"adpf": {},
	"re":   {},
	"are":  {},
}

// hierarchyBoost encodes legal-hierarchy knowledge: binding holdings of the
// superior labor court rank above constitutional-control decisions, which
// rank above regional incidents, then súmulas, then anything else from a
// known court. Applied only on top of a non-zero textual score.
func hierarchyBoost(p *repository.Precedent) int {
	tribunal := strings.ToUpper(strings.TrimSpace(p.Tribunal))
	tipo := strings.ToLower(p.TipoProcesso)

	isTST := tribunal == "TST"
	isSTF := tribunal == "STF"
	isTRT := strings.HasPrefix(tribunal, "TRT")

	switch {
	case isTST && (repository.IsBindingType(p.TipoProcesso) || hasWord(tipo, "iac")):
		return boostTSTBinding
	case isSTF && hasSTFControlType(tipo):
		return boostSTFControl
	case isTRT && (hasWord(tipo, "irdr") || hasWord(tipo, "iac")):
		return boostTRTIncident
	case isSTF && strings.Contains(tipo, "sumula") || isSTF && strings.Contains(tipo, "súmula"):
		return boostSTFSumula
	case isTST && isSumulaOrOJ(tipo):
		return boostTSTSumulaOJ
	case isSTF:
		return boostSTF
	case isTST:
		return boostTST
	case isTRT:
		return boostTRT
	case tribunal == "STJ":
		return boostSTJ
	}

	return 0
}

func hasSTFControlType(tipo string) bool {
	for _, w := range splitWords(tipo) {
		if _, ok := stfControlTypes[w]; ok {
			return true
		}
	}
	return false
}

func isSumulaOrOJ(tipo string) bool {
	if strings.Contains(tipo, "sumula") || strings.Contains(tipo, "súmula") {
		return true
	}
	if strings.Contains(tipo, "orientacao jurisprudencial") || strings.Contains(tipo, "orientação jurisprudencial") {
		return true
	}
	return hasWord(tipo, "oj")
}

// hasWord matches a short type code as a whole word so "re" does not fire on
// "recurso" or "súmula vinculante" on "are".
func hasWord(s, word string) bool {
	for _, w := range splitWords(s) {
		if w == word {
			return true
		}
	}
	return false
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}
