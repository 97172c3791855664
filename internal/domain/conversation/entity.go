package conversation

import (
	"errors"
	"time"
)

var (
	ErrEmptyContactID = errors.New("identificador do contato não pode ser vazio")
	ErrInvalidState   = errors.New("estado de conversa inválido")
	ErrNotFound       = errors.New("conversa não encontrada")
)

// State representa a posição da conversa na máquina de estados
type State string

const (
	// Estados básicos
	StateInitial        State = "initial"
	StateMenuShown      State = "menu_shown"
	StateOptionSelected State = "option_selected"
	StateWithHuman      State = "with_human"

	// Estados do fluxo de consulta de preços
	StatePriceCheckAskIfClient            State = "price_check_ask_if_client"
	StatePriceCheckIsClient               State = "price_check_is_client"
	StatePriceCheckNotClient              State = "price_check_not_client"
	StatePriceCheckCreateAccountCPF       State = "price_check_create_account_cpf"
	StatePriceCheckCreateAccountBirthdate State = "price_check_create_account_birthdate"
	StatePriceCheckNoAccount              State = "price_check_no_account"

	// Estados do fluxo de entrega
	StateDeliveryConfirmation State = "delivery_confirmation"
	StateDeliveryProducts     State = "delivery_products"
	StateDeliveryDeclined     State = "delivery_declined"
)

// states é o conjunto fechado de estados válidos
var states = map[State]struct{}{
	StateInitial:                          {},
	StateMenuShown:                        {},
	StateOptionSelected:                   {},
	StateWithHuman:                        {},
	StatePriceCheckAskIfClient:            {},
	StatePriceCheckIsClient:               {},
	StatePriceCheckNotClient:              {},
	StatePriceCheckCreateAccountCPF:       {},
	StatePriceCheckCreateAccountBirthdate: {},
	StatePriceCheckNoAccount:              {},
	StateDeliveryConfirmation:             {},
	StateDeliveryProducts:                 {},
	StateDeliveryDeclined:                 {},
}

// Valid informa se o estado pertence ao conjunto conhecido
func (s State) Valid() bool {
	_, ok := states[s]
	return ok
}

// Option representa uma opção do menu principal. Os códigos literais fazem
// parte do contrato com o usuário final e não podem mudar
type Option string

const (
	OptionNone                Option = ""
	OptionPriceCheck          Option = "1"
	OptionProductAvailability Option = "2"
	OptionDeliveryInfo        Option = "3"
	OptionTalkToAgent         Option = "4"
)

// Respostas sim/não usadas pelos fluxos
const (
	AnswerYes = "1"
	AnswerNo  = "2"
)

// Chaves dos dados coletados durante os fluxos
const (
	DataIsClient            = "isClient"
	DataWillCreateAccount   = "willCreateAccount"
	DataCPF                 = "cpf"
	DataBirthdate           = "birthdate"
	DataProductName         = "productName"
	DataProductInfo         = "productInfo"
	DataProceedWithDelivery = "proceedWithDelivery"
	DataDeliveryProducts    = "deliveryProducts"
	DataAgentSubject        = "agentSubject"
)

// Conversation representa o registro de uma conversa com um contato
type Conversation struct {
	ContactID         string                 `json:"contact_id"`
	State             State                  `json:"state"`
	Option            Option                 `json:"option"`
	Data              map[string]interface{} `json:"data"`
	InvalidAttempts   int                    `json:"invalid_attempts"`
	ConversationStart time.Time              `json:"conversation_start"`
	LastActivity      time.Time              `json:"last_activity"`
	TransferredAt     *time.Time             `json:"transferred_at,omitempty"`
}

// New cria um registro de conversa no estado inicial
func New(contactID string) (*Conversation, error) {
	if contactID == "" {
		return nil, ErrEmptyContactID
	}

	now := time.Now()
	return &Conversation{
		ContactID:         contactID,
		State:             StateInitial,
		Option:            OptionNone,
		Data:              make(map[string]interface{}),
		ConversationStart: now,
		LastActivity:      now,
	}, nil
}

// Touch registra atividade do contato
func (c *Conversation) Touch() {
	c.LastActivity = time.Now()
}

// SetState muda o estado e zera o contador de tentativas inválidas
func (c *Conversation) SetState(s State) error {
	if !s.Valid() {
		return ErrInvalidState
	}
	c.State = s
	c.InvalidAttempts = 0
	return nil
}

// SetData grava um dado coletado. A primeira escrita vence: um fluxo nunca
// sobrescreve o que outro fluxo coletou
func (c *Conversation) SetData(key string, value interface{}) {
	if c.Data == nil {
		c.Data = make(map[string]interface{})
	}
	if _, exists := c.Data[key]; exists {
		return
	}
	c.Data[key] = value
}

// RegisterInvalidAttempt incrementa o contador de entradas rejeitadas
func (c *Conversation) RegisterInvalidAttempt() {
	c.InvalidAttempts++
}

// ResetToMenu devolve a conversa ao menu principal, zerando tentativas.
// Os dados já coletados são preservados
func (c *Conversation) ResetToMenu() {
	c.State = StateMenuShown
	c.InvalidAttempts = 0
}

// BackToMenu devolve ao menu descartando também a opção escolhida
func (c *Conversation) BackToMenu() {
	c.ResetToMenu()
	c.Option = OptionNone
}

// TransferToHuman marca a conversa como assumida por um atendente humano.
// A partir daqui o bot não responde mais automaticamente
func (c *Conversation) TransferToHuman() {
	now := time.Now()
	c.State = StateWithHuman
	c.TransferredAt = &now
	c.InvalidAttempts = 0
}

// Release devolve uma conversa em atendimento humano ao menu (ação externa
// de um operador, nunca do dispatcher)
func (c *Conversation) Release() {
	c.BackToMenu()
	c.TransferredAt = nil
}

// IsWithHuman informa se a conversa está em atendimento humano
func (c *Conversation) IsWithHuman() bool {
	return c.State == StateWithHuman
}

// IdleFor retorna há quanto tempo o contato está sem atividade
func (c *Conversation) IdleFor(now time.Time) time.Duration {
	return now.Sub(c.LastActivity)
}

// BotDuration retorna há quanto tempo a conversa começou
func (c *Conversation) BotDuration(now time.Time) time.Duration {
	return now.Sub(c.ConversationStart)
}

// WaitingFor retorna há quanto tempo o contato aguarda um atendente
func (c *Conversation) WaitingFor(now time.Time) (time.Duration, bool) {
	if c.TransferredAt == nil {
		return 0, false
	}
	return now.Sub(*c.TransferredAt), true
}

// Clone devolve uma cópia independente do registro, para snapshots
func (c *Conversation) Clone() *Conversation {
	copied := *c
	copied.Data = make(map[string]interface{}, len(c.Data))
	for k, v := range c.Data {
		copied.Data[k] = v
	}
	if c.TransferredAt != nil {
		t := *c.TransferredAt
		copied.TransferredAt = &t
	}
	return &copied
}
