package domain

// CommandType identifies a parsed command.
type CommandType string

const (
	CmdRecordDebt       CommandType = "record_debt"
	CmdRecordUsage      CommandType = "record_usage"
	CmdListDebts        CommandType = "list_debts"
	CmdSendReminders    CommandType = "send_reminders"
	CmdHelp             CommandType = "help"
	CmdGreet            CommandType = "greet"
	CmdSendReminder     CommandType = "send_reminder"
	CmdSendAllReminders CommandType = "send_all_reminders"
	CmdMarkPaid         CommandType = "mark_paid"
	CmdUnknownAction    CommandType = "unknown_action"
)

// Command is the structured form of an inbound text or postback.
// Fields beyond Type are populated per command:
//   - CmdRecordDebt: BorrowerName, AmountText, Description
//   - CmdSendReminder, CmdMarkPaid: DebtID
type Command struct {
	Type         CommandType
	BorrowerName string
	AmountText   string
	Description  string
	DebtID       int64
}
