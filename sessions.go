package main

import "fmt"

// SessionPair liga o código curto usado pelos clientes ao nome exibido pelo portal.
type SessionPair struct {
	Code string
	Name string
}

// Fonte única da tabela de sessões. Os dois mapas abaixo são derivados daqui.
var sessionPairs = []SessionPair{
	{"S24", "Supplementary 2023-24"},
	{"E24", "Even-(2023-24)"},
	{"O24", "Odd-(2023-24)"},
	{"S23", "Supplementary 2022-23"},
	{"E23", "Even-(2022-23)"},
	{"O23", "Odd-(2022-23)"},
	{"S22", "Supplementary 2021-22"},
	{"R22", "Re-ExamOdd (2021-22)"},
	{"E22", "Even-(2021-22)"},
	{"O22", "Odd-(2021-22)"},
	{"S21", "Supplementary 2020-21"},
	{"E21", "Even-(2020-21)"},
	{"O21", "Odd-(2020-21)"},
	{"S20", "Supplementary 2019-20"},
	{"E20", "Even-(2019-20)"},
	{"O20", "Odd-(2019-20)"},
	{"S18", "Special (2018-19)"},
	{"E18", "Even-(2018-19)"},
	{"O18", "Odd-(2018-19)"},
	{"S17", "Special-(2017-18)"},
	{"E17", "Even-(2017-18)"},
	{"O17", "Odd-(2017-18)"},
	{"S16", "Special-(2016-17)"},
	{"E16", "Even-(2016-17)"},
	{"O16", "Odd-(2016-17)"},
	{"S15", "Special-(2015-16)"},
	{"E15", "Even-(2015-16)"},
	{"O15", "Odd-(2015-16)"},
}

var (
	codeToName map[string]string
	nameToCode map[string]string
)

func init() {
	var err error
	codeToName, nameToCode, err = buildSessionTables(sessionPairs)
	if err != nil {
		panic(err)
	}
}

func buildSessionTables(pairs []SessionPair) (map[string]string, map[string]string, error) {
	forward := make(map[string]string, len(pairs))
	reverse := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if _, dup := forward[p.Code]; dup {
			return nil, nil, fmt.Errorf("duplicate session code: %s", p.Code)
		}
		if _, dup := reverse[p.Name]; dup {
			return nil, nil, fmt.Errorf("duplicate session name: %s", p.Name)
		}
		forward[p.Code] = p.Name
		reverse[p.Name] = p.Code
	}
	return forward, reverse, nil
}

// DisplayName converte "E24" em "Even-(2023-24)". Códigos desconhecidos voltam sem alteração.
func DisplayName(code string) string {
	if name, ok := codeToName[code]; ok {
		return name
	}
	return code
}

// ShortCode é o inverso de DisplayName, com o mesmo fallback.
func ShortCode(name string) string {
	if code, ok := nameToCode[name]; ok {
		return code
	}
	return name
}

// Sessions devolve uma cópia da tabela na ordem original.
func Sessions() []SessionPair {
	out := make([]SessionPair, len(sessionPairs))
	copy(out, sessionPairs)
	return out
}
