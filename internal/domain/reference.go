package domain

import "strings"

// ReferenceSet é a lista de descrições de itens de exceção ou de serviços.
// A marcação é feita por substring sobre a chave composta, o que pode gerar falso
// positivo quando descrições se sobrepõem.
type ReferenceSet struct {
	members []string
}

// NewReferenceSet cria o conjunto ignorando descrições vazias e repetidas
func NewReferenceSet(descriptions []string) ReferenceSet {
	seen := make(map[string]struct{}, len(descriptions))
	members := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		if strings.TrimSpace(d) == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		members = append(members, d)
	}
	return ReferenceSet{members: members}
}

// Matches indica se a chave composta contém alguma descrição do conjunto
func (s ReferenceSet) Matches(compositeKey string) bool {
	for _, m := range s.members {
		if strings.Contains(compositeKey, m) {
			return true
		}
	}
	return false
}

// Len retorna o número de descrições do conjunto
func (s ReferenceSet) Len() int {
	return len(s.members)
}

// Members retorna uma cópia das descrições
func (s ReferenceSet) Members() []string {
	return append([]string(nil), s.members...)
}
