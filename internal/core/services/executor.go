package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonaspay/jonaspay-bot/internal/apperrors"
	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
	portsrepo "github.com/jonaspay/jonaspay-bot/internal/core/ports/repositories"
	portssvc "github.com/jonaspay/jonaspay-bot/internal/core/ports/services"
	"github.com/jonaspay/jonaspay-bot/internal/utils/money"
)

// errReplyDelivery marks an error as a failed outbound delivery, so
// the recovery path does not attempt a second reply on a token that
// was already consumed.
var errReplyDelivery = errors.New("reply delivery failed")

// Executor turns parsed commands into ledger operations and outbound
// replies. It is stateless apart from its injected collaborators and
// safe for use from concurrent event handlers.
type Executor struct {
	ledger    portsrepo.LedgerRepositoryFacade
	messenger portssvc.MessagingClient
	states    portssvc.ConversationStateStore
	identity  portssvc.IdentityResolver
	logger    *slog.Logger
	now       func() time.Time
}

var _ portssvc.EventHandlerSvc = (*Executor)(nil)

// ExecutorOption customizes an Executor.
type ExecutorOption func(*Executor)

// WithClock overrides the executor's time source.
func WithClock(now func() time.Time) ExecutorOption {
	return func(e *Executor) {
		e.now = now
	}
}

// NewExecutor creates an Executor with the given collaborators.
func NewExecutor(
	ledger portsrepo.LedgerRepositoryFacade,
	messenger portssvc.MessagingClient,
	states portssvc.ConversationStateStore,
	identity portssvc.IdentityResolver,
	logger *slog.Logger,
	opts ...ExecutorOption,
) *Executor {
	e := &Executor{
		ledger:    ledger,
		messenger: messenger,
		states:    states,
		identity:  identity,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HandleEvent dispatches a single inbound event. Failures inside a
// handler are recovered by substituting a generic apology reply; the
// returned error is informational and must never fail the batch.
func (e *Executor) HandleEvent(ctx context.Context, event domain.InboundEvent) error {
	err := e.dispatch(ctx, event)
	if err == nil {
		return nil
	}

	if errors.Is(err, errReplyDelivery) || !event.CanReply() {
		return err
	}

	if rerr := e.messenger.Reply(ctx, event.ReplyToken, domain.TextMessage{Text: msgEventApology}); rerr != nil {
		return errors.Join(err, rerr)
	}
	return err
}

func (e *Executor) dispatch(ctx context.Context, event domain.InboundEvent) error {
	switch event.Type {
	case domain.EventMessage:
		return e.handleMessage(ctx, event)
	case domain.EventPostback:
		return e.handlePostback(ctx, event)
	case domain.EventFollow:
		return e.handleFollow(ctx, event)
	case domain.EventUnfollow:
		e.logger.Info("user unfollowed", slog.String("user_id", event.UserID))
		return nil
	default:
		e.logger.Info("unhandled event type", slog.String("type", string(event.Type)))
		return nil
	}
}

func (e *Executor) handleMessage(ctx context.Context, event domain.InboundEvent) error {
	if event.Message == nil {
		return fmt.Errorf("message event without message content")
	}

	switch event.Message.Type {
	case domain.MessageText:
		return e.handleTextMessage(ctx, event)
	case domain.MessageSticker:
		return e.reply(ctx, event, domain.TextMessage{Text: msgStickerThanks})
	default:
		return e.reply(ctx, event, domain.TextMessage{Text: msgUnsupportedMessage})
	}
}

func (e *Executor) handleTextMessage(ctx context.Context, event domain.InboundEvent) error {
	// A pending multi-step operation is cancelled by any inbound
	// text, before the text is interpreted as a command.
	if state, ok := e.states.Get(event.UserID); ok {
		e.states.Clear(event.UserID)
		e.logger.Info("pending operation cancelled",
			slog.String("user_id", event.UserID),
			slog.String("operation", state.Operation))
		return e.reply(ctx, event, domain.TextMessage{Text: msgOperationCancelled})
	}

	cmd := ParseTextCommand(event.Message.Text)

	switch cmd.Type {
	case domain.CmdRecordDebt:
		return e.recordDebt(ctx, event, cmd)
	case domain.CmdRecordUsage:
		return e.reply(ctx, event, domain.TextMessage{Text: msgRecordUsage})
	case domain.CmdListDebts:
		return e.listDebts(ctx, event)
	case domain.CmdSendReminders:
		return e.reply(ctx, event, domain.TextMessage{Text: msgRemindersStub})
	case domain.CmdHelp:
		return e.reply(ctx, event, helpMessage())
	default:
		return e.greet(ctx, event)
	}
}

func (e *Executor) recordDebt(ctx context.Context, event domain.InboundEvent, cmd domain.Command) error {
	amount, err := money.ParseAmount(cmd.AmountText)
	if err != nil {
		return e.reply(ctx, event, domain.TextMessage{Text: msgAmountFormat})
	}
	if amount <= 0 {
		return e.reply(ctx, event, domain.TextMessage{Text: msgInvalidAmount})
	}

	borrowerID, err := e.identity.ResolveBorrowerID(ctx, cmd.BorrowerName)
	if err != nil {
		return fmt.Errorf("failed to resolve borrower identity: %w", err)
	}

	debt := domain.Debt{
		LenderID:     event.UserID,
		BorrowerID:   borrowerID,
		BorrowerName: cmd.BorrowerName,
		Amount:       amount,
		Description:  cmd.Description,
		CreatedAt:    e.now(),
	}

	debtID, err := e.ledger.SaveDebt(ctx, debt)
	if err != nil {
		e.logger.Error("failed to save debt", slog.String("error", err.Error()))
		return e.reply(ctx, event, domain.TextMessage{Text: msgApology})
	}
	debt.DebtID = debtID

	e.logger.Info("debt recorded",
		slog.Int64("debt_id", debtID),
		slog.String("lender_id", debt.LenderID),
		slog.Int64("amount", debt.Amount))

	return e.reply(ctx, event, debtCreatedMessage(debt))
}

func (e *Executor) listDebts(ctx context.Context, event domain.InboundEvent) error {
	debts, err := e.ledger.FindUnpaidDebts(ctx, event.UserID)
	if err != nil {
		e.logger.Error("failed to list unpaid debts", slog.String("error", err.Error()))
		return e.reply(ctx, event, domain.TextMessage{Text: msgListError})
	}

	if len(debts) == 0 {
		return e.reply(ctx, event, domain.TextMessage{Text: msgNoUnpaidDebts})
	}

	return e.reply(ctx, event, debtListMessage(debts))
}

func (e *Executor) greet(ctx context.Context, event domain.InboundEvent) error {
	displayName := ""
	if profile, err := e.messenger.GetProfile(ctx, event.UserID); err != nil {
		// Degrade to the nameless greeting rather than failing the event.
		e.logger.Warn("failed to fetch profile for greeting",
			slog.String("user_id", event.UserID),
			slog.String("error", err.Error()))
	} else {
		displayName = profile.DisplayName
	}

	return e.reply(ctx, event, greetMessage(displayName))
}

func (e *Executor) handlePostback(ctx context.Context, event domain.InboundEvent) error {
	if event.Postback == nil {
		return fmt.Errorf("postback event without postback content")
	}

	cmd := ParsePostbackCommand(event.Postback.Data)

	switch cmd.Type {
	case domain.CmdSendReminder:
		// Reminder delivery is stubbed until borrower identities are
		// real, but the attempt is still logged to the ledger. The
		// debt itself is deliberately not looked up here.
		if _, err := e.ledger.LogReminder(ctx, cmd.DebtID, e.now()); err != nil {
			e.logger.Warn("failed to log reminder",
				slog.Int64("debt_id", cmd.DebtID),
				slog.String("error", err.Error()))
		}
		return e.reply(ctx, event, sendReminderStubMessage(cmd.DebtID))
	case domain.CmdSendAllReminders:
		return e.reply(ctx, event, domain.TextMessage{Text: msgSendAllStub})
	case domain.CmdMarkPaid:
		return e.markPaid(ctx, event, cmd.DebtID)
	default:
		return e.reply(ctx, event, domain.TextMessage{Text: msgUnknownAction})
	}
}

func (e *Executor) markPaid(ctx context.Context, event domain.InboundEvent, debtID int64) error {
	debt, err := e.ledger.FindDebtByID(ctx, debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return e.reply(ctx, event, domain.TextMessage{Text: msgDebtNotFound})
		}
		e.logger.Error("failed to fetch debt", slog.Int64("debt_id", debtID), slog.String("error", err.Error()))
		return e.reply(ctx, event, domain.TextMessage{Text: msgMarkPaidApology})
	}

	updated, err := e.ledger.MarkDebtPaid(ctx, debtID, e.now())
	if err != nil {
		e.logger.Error("failed to mark debt paid", slog.Int64("debt_id", debtID), slog.String("error", err.Error()))
		return e.reply(ctx, event, domain.TextMessage{Text: msgMarkPaidApology})
	}
	if !updated {
		return e.reply(ctx, event, domain.TextMessage{Text: msgMarkPaidFailed})
	}

	e.logger.Info("debt marked as paid", slog.Int64("debt_id", debtID))
	return e.reply(ctx, event, markPaidMessage(*debt))
}

func (e *Executor) handleFollow(ctx context.Context, event domain.InboundEvent) error {
	profile, err := e.messenger.GetProfile(ctx, event.UserID)
	if err != nil {
		// Fall back to the generic welcome instead of surfacing the failure.
		e.logger.Warn("failed to fetch profile for welcome",
			slog.String("user_id", event.UserID),
			slog.String("error", err.Error()))
		return e.reply(ctx, event, domain.TextMessage{Text: msgGenericWelcome})
	}

	return e.reply(ctx, event, welcomeMessage(profile.DisplayName))
}

// reply sends messages for the event's reply token, skipping silently
// when the token is the null sentinel.
func (e *Executor) reply(ctx context.Context, event domain.InboundEvent, messages ...domain.Message) error {
	if !event.CanReply() {
		e.logger.Info("skipping reply for event without reply token",
			slog.String("type", string(event.Type)),
			slog.String("user_id", event.UserID))
		return nil
	}

	if err := e.messenger.Reply(ctx, event.ReplyToken, messages...); err != nil {
		return fmt.Errorf("%w: %w", errReplyDelivery, err)
	}
	return nil
}
