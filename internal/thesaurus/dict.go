package thesaurus

// defaultDictionary maps a canonical legal term to its synonyms. Entries are
// normalized at construction time, so accents here are cosmetic.
var defaultDictionary = map[string][]string{
	"rescisão indireta": {
		"falta grave do empregador",
		"rescisão por culpa do empregador",
		"justa causa patronal",
	},
	"horas extras": {
		"jornada extraordinária",
		"sobrejornada",
		"horas suplementares",
		"labor extraordinário",
	},
	"dano moral": {
		"danos morais",
		"abalo moral",
		"dano extrapatrimonial",
		"lesão extrapatrimonial",
	},
	"justa causa": {
		"falta grave",
		"dispensa motivada",
		"despedida por justa causa",
	},
	"aviso prévio": {
		"aviso-prévio",
		"pré-aviso",
	},
	"insalubridade": {
		"adicional de insalubridade",
		"agente insalubre",
		"ambiente insalubre",
	},
	"periculosidade": {
		"adicional de periculosidade",
		"atividade perigosa",
	},
	"equiparação salarial": {
		"isonomia salarial",
		"identidade de funções",
	},
	"assédio moral": {
		"assédio psicológico",
		"terror psicológico",
	},
	"vínculo de emprego": {
		"vínculo empregatício",
		"relação de emprego",
		"pejotização",
	},
	"estabilidade": {
		"garantia de emprego",
		"estabilidade provisória",
	},
	"gestante": {
		"empregada grávida",
		"licença maternidade",
		"estabilidade gestacional",
	},
	"terceirização": {
		"atividade-fim",
		"atividade-meio",
		"empresa interposta",
	},
	"grupo econômico": {
		"responsabilidade solidária",
		"empregador único",
	},
	"intervalo intrajornada": {
		"intervalo para refeição",
		"pausa para descanso",
	},
	"adicional noturno": {
		"trabalho noturno",
		"hora noturna reduzida",
	},
	"fgts": {
		"fundo de garantia",
	},
	"acidente de trabalho": {
		"doença ocupacional",
		"infortúnio laboral",
	},
	"salário": {
		"remuneração",
		"contraprestação",
		"verba salarial",
	},
	"férias": {
		"descanso anual",
		"terço constitucional",
	},
}
