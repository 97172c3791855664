package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/farmatech/atende-bot/pkg/logger"
)

// GatewayConfig contém as configurações do gateway de mensagens
type GatewayConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// NewGatewayConfigFromEnv cria a configuração a partir de variáveis de ambiente
func NewGatewayConfigFromEnv() *GatewayConfig {
	timeout := 10 * time.Second
	if raw := os.Getenv("GATEWAY_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			timeout = parsed
		}
	}

	return &GatewayConfig{
		BaseURL: getEnv("GATEWAY_BASE_URL", "http://localhost:21465/api"),
		Token:   os.Getenv("GATEWAY_TOKEN"),
		Timeout: timeout,
	}
}

// HTTPGateway implementa Transport contra a API REST do gateway WhatsApp
type HTTPGateway struct {
	config *GatewayConfig
	client *http.Client
	logger logger.Logger
}

// NewHTTPGateway cria um novo cliente para o gateway de mensagens
func NewHTTPGateway(config *GatewayConfig, log logger.Logger) *HTTPGateway {
	return &HTTPGateway{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: log,
	}
}

// SendReply envia uma mensagem de texto para o contato
func (g *HTTPGateway) SendReply(ctx context.Context, contactID, text string) error {
	payload := map[string]string{
		"phone":   contactID,
		"message": text,
	}
	return g.post(ctx, "/send-message", payload)
}

// SendTyping sinaliza "digitando..." para o contato
func (g *HTTPGateway) SendTyping(ctx context.Context, contactID string) error {
	payload := map[string]interface{}{
		"phone": contactID,
		"value": true,
	}
	return g.post(ctx, "/typing", payload)
}

// MarkUnread marca a conversa como não lida
func (g *HTTPGateway) MarkUnread(ctx context.Context, contactID string) error {
	payload := map[string]string{
		"phone": contactID,
	}
	return g.post(ctx, "/mark-unseen", payload)
}

// IsGroup informa se o identificador pertence a um grupo do WhatsApp
func (g *HTTPGateway) IsGroup(contactID string) bool {
	return strings.HasSuffix(contactID, "@g.us")
}

// post envia uma requisição JSON para o gateway
func (g *HTTPGateway) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.config.Token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao chamar gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("gateway respondeu %d para %s", resp.StatusCode, path)
	}
	return nil
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
