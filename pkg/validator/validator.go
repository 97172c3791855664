package validator

import (
	"strings"
	"time"
	"unicode"
)

const (
	// MinTextLength é o tamanho mínimo padrão para textos livres
	MinTextLength = 1
	// MaxTextLength é o tamanho máximo padrão para textos livres
	MaxTextLength = 1000
)

// OnlyDigits remove todos os caracteres não numéricos de uma string
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCPF verifica se um CPF possui 11 dígitos e não é uma sequência
// repetida. A verificação dos dígitos verificadores é intencionalmente
// omitida: o atendente humano confere o documento no cadastro.
func ValidateCPF(cpf string) bool {
	digits := OnlyDigits(cpf)

	if len(digits) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais têm formato correto mas são inválidos
	first := digits[0]
	for i := 1; i < len(digits); i++ {
		if digits[i] != first {
			return true
		}
	}
	return false
}

// ValidateDate verifica uma data nos formatos DD/MM/AAAA ou DDMMAAAA.
// A data precisa existir no calendário e não pode estar no futuro.
func ValidateDate(dateStr string) bool {
	day, month, year, ok := ParseDate(dateStr)
	if !ok {
		return false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Datas como 31/02 "transbordam" para o mês seguinte; o round-trip detecta
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return false
	}

	return !date.After(time.Now())
}

// ParseDate extrai dia, mês e ano de uma data em um dos formatos aceitos
func ParseDate(dateStr string) (day, month, year int, ok bool) {
	dateStr = strings.TrimSpace(dateStr)

	// Formato DD/MM/AAAA (dia e mês com 1 ou 2 dígitos)
	if strings.Count(dateStr, "/") == 2 {
		parts := strings.Split(dateStr, "/")
		if len(parts[0]) < 1 || len(parts[0]) > 2 ||
			len(parts[1]) < 1 || len(parts[1]) > 2 ||
			len(parts[2]) != 4 {
			return 0, 0, 0, false
		}
		for _, p := range parts {
			if OnlyDigits(p) != p {
				return 0, 0, 0, false
			}
		}
		return atoi(parts[0]), atoi(parts[1]), atoi(parts[2]), true
	}

	// Formato DDMMAAAA (8 dígitos, sem separadores)
	if len(dateStr) == 8 && OnlyDigits(dateStr) == dateStr {
		return atoi(dateStr[0:2]), atoi(dateStr[2:4]), atoi(dateStr[4:8]), true
	}

	return 0, 0, 0, false
}

// ValidateText verifica se um texto tem tamanho dentro dos limites informados
// após remover espaços nas extremidades
func ValidateText(text string, minLen, maxLen int) bool {
	trimmed := strings.TrimSpace(text)
	length := len([]rune(trimmed))
	return length >= minLen && length <= maxLen
}

// ValidateOption verifica se uma mensagem corresponde a uma das opções esperadas
func ValidateOption(message string, expectedOptions []string) bool {
	trimmed := strings.TrimSpace(message)
	for _, option := range expectedOptions {
		if trimmed == option {
			return true
		}
	}
	return false
}

// atoi converte uma string já validada como numérica; entradas inválidas
// resultam em zero, que falha na verificação de calendário
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
