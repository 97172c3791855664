package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/farmatech/atende-bot/pkg/validator"
)

// InvalidDate é o marcador retornado quando uma data não é reconhecida
const InvalidDate = "Invalid Date"

// FormatCPF aplica a máscara XXX.XXX.XXX-XX a um CPF. Entradas que não
// possuem 11 dígitos são devolvidas apenas com os dígitos
func FormatCPF(cpf string) string {
	digits := validator.OnlyDigits(cpf)
	if len(digits) != 11 {
		return digits
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}

// FormatDate reescreve uma data aceita (DD/MM/AAAA ou DDMMAAAA) na forma
// canônica DD/MM/AAAA com zeros à esquerda
func FormatDate(dateStr string) string {
	day, month, year, ok := validator.ParseDate(dateStr)
	if !ok {
		return InvalidDate
	}
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year)
}

// FormatDuration converte uma duração nas duas maiores unidades relevantes
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours%24, minutes%60)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes%60, seconds%60)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatPhone aplica a máscara (XX) XXXXX-XXXX a um telefone brasileiro,
// removendo o código do país quando presente
func FormatPhone(phone string) string {
	digits := validator.OnlyDigits(phone)

	// Remover código do país, se existir
	if strings.HasPrefix(digits, "55") && len(digits) > 10 {
		digits = digits[2:]
	}

	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:7], digits[7:11])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:6], digits[6:10])
	default:
		return digits
	}
}

// ExtractPhoneFromWhatsAppID extrai o telefone de um identificador no formato
// do WhatsApp (XXXXXXXXXXX@c.us)
func ExtractPhoneFromWhatsAppID(whatsappID string) string {
	if idx := strings.Index(whatsappID, "@"); idx >= 0 {
		return whatsappID[:idx]
	}
	return whatsappID
}
