package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
	"github.com/farmatech/atende-bot/internal/transport"
	"github.com/farmatech/atende-bot/pkg/formatter"
	"github.com/farmatech/atende-bot/pkg/logger"
)

// Dispatcher é a máquina de estados de nível superior: roteia cada mensagem
// recebida para o handler do estado atual da conversa, aplica o limite de
// tentativas inválidas acima de qualquer fluxo e realiza a transferência
// para atendente humano
type Dispatcher struct {
	store     conversation.Store
	transport transport.Transport
	messenger *Messenger
	stats     StatsSink
	reporter  Reporter
	logger    logger.Logger
	cfg       Config

	price    *PriceFlow
	product  *ProductFlow
	delivery *DeliveryFlow
	agent    *AgentFlow

	handlers map[conversation.State]StateHandler
}

// NewDispatcher cria o dispatcher com a tabela de despacho por estado
func NewDispatcher(
	store conversation.Store,
	t transport.Transport,
	stats StatsSink,
	reporter Reporter,
	log logger.Logger,
	cfg Config,
) *Dispatcher {
	messenger := NewMessenger(t, log)

	d := &Dispatcher{
		store:     store,
		transport: t,
		messenger: messenger,
		stats:     stats,
		reporter:  reporter,
		logger:    log,
		cfg:       cfg,
		price:     NewPriceFlow(messenger, stats, cfg),
		product:   NewProductFlow(messenger, stats, cfg),
		delivery:  NewDeliveryFlow(messenger, stats, cfg),
		agent:     NewAgentFlow(messenger, stats, cfg),
	}

	d.handlers = map[conversation.State]StateHandler{
		conversation.StateInitial:                          d.handleInitial,
		conversation.StateMenuShown:                        d.handleMainMenu,
		conversation.StateOptionSelected:                   d.handleOptionSelected,
		conversation.StatePriceCheckAskIfClient:            d.price.HandleIsClientResponse,
		conversation.StatePriceCheckIsClient:               d.price.HandleClientCPF,
		conversation.StatePriceCheckNotClient:              d.price.HandleNonClientChoice,
		conversation.StatePriceCheckCreateAccountCPF:       d.price.HandleCreateAccountCPF,
		conversation.StatePriceCheckCreateAccountBirthdate: d.price.HandleBirthdate,
		conversation.StatePriceCheckNoAccount:              d.price.HandleProductName,
		conversation.StateDeliveryConfirmation:             d.delivery.HandleConfirmation,
		conversation.StateDeliveryProducts:                 d.delivery.HandleProducts,
		conversation.StateDeliveryDeclined:                 d.delivery.HandleDeclined,
	}

	return d
}

// HandleMessage processa uma mensagem recebida de um contato. Erros de
// transporte são logados e engolidos: a conversa permanece como está e a
// próxima mensagem permite nova tentativa
func (d *Dispatcher) HandleMessage(ctx context.Context, contactID, text string) error {
	if d.transport.IsGroup(contactID) {
		d.logger.Debug("mensagem de grupo ignorada", "contato", contactID)
		return nil
	}

	// Duas mensagens do mesmo contato nunca são processadas ao mesmo tempo
	unlock := d.store.LockContact(contactID)
	defer unlock()

	conv, created, err := d.store.FindOrCreate(ctx, contactID)
	if err != nil {
		return fmt.Errorf("erro ao obter conversa: %w", err)
	}
	if created {
		d.stats.IncrementTotalChats()
	}

	conv.Touch()

	// Conversa em atendimento humano: o bot não responde mais, apenas marca
	// como não lida para facilitar a triagem
	if conv.IsWithHuman() {
		d.messenger.MarkUnread(ctx, contactID)
		return d.finish(ctx, conv)
	}

	handler, ok := d.handlers[conv.State]
	if !ok {
		// Estado desconhecido não deve existir; recomeça pelo menu
		d.logger.Warn("conversa em estado desconhecido", "contato", contactID, "estado", conv.State)
		handler = d.handleInitial
	}

	handoff, err := handler(ctx, conv, text)
	if err != nil {
		d.logger.Error("erro ao processar mensagem", "contato", contactID, "err", err)
		return d.finish(ctx, conv)
	}

	if handoff {
		d.transferToAgent(ctx, conv)
	}

	// Camada de segurança acima de todos os fluxos: muitas tentativas
	// inválidas forçam a volta ao menu em vez de deixar o usuário preso
	if conv.InvalidAttempts >= d.cfg.MaxInvalidAttempts {
		d.restartConversation(ctx, conv)
	}

	return d.finish(ctx, conv)
}

// finish persiste o registro e sincroniza o contador de conversas ativas
func (d *Dispatcher) finish(ctx context.Context, conv *conversation.Conversation) error {
	if err := d.store.Save(ctx, conv); err != nil {
		return fmt.Errorf("erro ao salvar conversa: %w", err)
	}
	if count, err := d.store.Count(ctx); err == nil {
		d.stats.UpdateActiveChatsCount(count)
	}
	return nil
}

// handleInitial envia as boas-vindas na primeira interação
func (d *Dispatcher) handleInitial(ctx context.Context, conv *conversation.Conversation, _ string) (bool, error) {
	if err := d.sendWelcome(ctx, conv.ContactID); err != nil {
		return false, err
	}
	return false, conv.SetState(conversation.StateMenuShown)
}

// handleMainMenu processa a escolha de opção do menu principal
func (d *Dispatcher) handleMainMenu(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	option := conversation.Option(strings.TrimSpace(text))

	var flow Flow
	switch option {
	case conversation.OptionPriceCheck:
		flow = d.price
	case conversation.OptionProductAvailability:
		flow = d.product
	case conversation.OptionDeliveryInfo:
		flow = d.delivery
	case conversation.OptionTalkToAgent:
		flow = d.agent
	default:
		conv.RegisterInvalidAttempt()
		return false, d.messenger.Reply(ctx, conv.ContactID, msgInvalidOption)
	}

	if err := flow.Start(ctx, conv); err != nil {
		return false, err
	}
	conv.Option = option
	return false, nil
}

// handleOptionSelected roteia estados terminais que dependem da opção
// escolhida (disponibilidade de produtos e atendimento humano)
func (d *Dispatcher) handleOptionSelected(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	switch conv.Option {
	case conversation.OptionProductAvailability:
		return d.product.HandleAvailability(ctx, conv, text)
	case conversation.OptionTalkToAgent:
		return d.agent.HandleSubject(ctx, conv, text)
	default:
		d.logger.Warn("opção inesperada em option_selected", "contato", conv.ContactID, "opcao", conv.Option)
		return false, nil
	}
}

// sendWelcome envia a mensagem de boas-vindas seguida do menu de opções
func (d *Dispatcher) sendWelcome(ctx context.Context, contactID string) error {
	if err := d.messenger.ReplyTyping(ctx, contactID, d.cfg.TypingDelayMedium, msgWelcome); err != nil {
		return err
	}
	if err := sleep(ctx, d.cfg.TypingDelayShort); err != nil {
		return err
	}
	return d.messenger.Reply(ctx, contactID, msgMenuOptions)
}

// restartConversation é a válvula de escape: avisa, reenvia o menu e zera o
// contador. O estado volta para o menu mesmo que algum envio falhe
func (d *Dispatcher) restartConversation(ctx context.Context, conv *conversation.Conversation) {
	if err := d.messenger.Reply(ctx, conv.ContactID, msgRestartNotice); err != nil {
		d.logger.Error("erro ao avisar reinício", "contato", conv.ContactID, "err", err)
	}
	if err := sleep(ctx, d.cfg.TypingDelayMedium); err == nil {
		if err := d.sendWelcome(ctx, conv.ContactID); err != nil {
			d.logger.Error("erro ao reenviar menu", "contato", conv.ContactID, "err", err)
		}
	}
	conv.ResetToMenu()
}

// transferToAgent envia a confirmação, marca a conversa como em atendimento
// humano e dispara o relatório. Se a confirmação não puder ser enviada a
// conversa permanece no estado atual para nova tentativa
func (d *Dispatcher) transferToAgent(ctx context.Context, conv *conversation.Conversation) {
	if err := d.messenger.ReplyTyping(ctx, conv.ContactID, d.cfg.TypingDelayMedium, msgTransferringToAgent); err != nil {
		d.logger.Error("erro ao transferir para atendente", "contato", conv.ContactID, "err", err)
		return
	}

	conv.TransferToHuman()
	d.stats.MarkChatTransferred()
	d.messenger.MarkUnread(ctx, conv.ContactID)

	// Publica a transferência antes do relatório, que lê o store
	if err := d.store.Save(ctx, conv); err != nil {
		d.logger.Error("erro ao salvar transferência", "contato", conv.ContactID, "err", err)
	}

	d.logger.Info("cliente aguardando atendimento humano",
		"telefone", formatter.ExtractPhoneFromWhatsAppID(conv.ContactID),
		"opcao", conv.Option,
		"dados", conv.Data,
		"duracao", conv.BotDuration(time.Now()).Round(time.Second),
	)

	if d.reporter != nil {
		d.reporter.GenerateAndPersist(ctx)
	}
}

// sleep aguarda respeitando o cancelamento do contexto
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
