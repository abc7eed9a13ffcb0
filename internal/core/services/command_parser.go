package services

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
)

// recordKeywords start a record-debt command when they prefix the text.
var recordKeywords = []string{"記錄", "借"}

// textRule pairs a predicate with the command it produces. Rules are
// evaluated in a fixed order; the first match wins, so ambiguous input
// (e.g. text containing both 清單 and 幫助) resolves to the earlier rule.
type textRule struct {
	matches func(trimmed, lower string) bool
	command domain.CommandType
}

var textRules = []textRule{
	{func(trimmed, _ string) bool {
		return strings.Contains(trimmed, "清單") || strings.Contains(trimmed, "查看")
	}, domain.CmdListDebts},
	{func(trimmed, _ string) bool {
		return strings.Contains(trimmed, "提醒")
	}, domain.CmdSendReminders},
	{func(trimmed, lower string) bool {
		return strings.Contains(trimmed, "幫助") || strings.Contains(lower, "help")
	}, domain.CmdHelp},
}

// ParseTextCommand turns raw inbound text into a structured command.
// Unrecognized text yields CmdGreet, the default welcome response.
func ParseTextCommand(text string) domain.Command {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	// Record commands are prefix-matched and checked before all
	// substring rules, so 「借 阿華 200 提醒他」 records a debt rather
	// than triggering the reminder rule.
	for _, kw := range recordKeywords {
		if strings.HasPrefix(trimmed, kw) {
			return parseRecordCommand(strings.TrimPrefix(trimmed, kw))
		}
	}

	for _, rule := range textRules {
		if rule.matches(trimmed, lower) {
			return domain.Command{Type: rule.command}
		}
	}

	return domain.Command{Type: domain.CmdGreet}
}

// parseRecordCommand tokenizes everything after the record keyword.
// Expected shape: @borrower amount [description...]. Anything short of
// two tokens is a usage prompt, not an error.
func parseRecordCommand(rest string) domain.Command {
	remainder := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if remainder == rest || remainder == "" {
		// No whitespace after the keyword means no arguments.
		return domain.Command{Type: domain.CmdRecordUsage}
	}

	tokens := strings.Fields(remainder)
	if len(tokens) < 2 {
		return domain.Command{Type: domain.CmdRecordUsage}
	}

	description := domain.DefaultDescription
	if len(tokens) > 2 {
		description = strings.Join(tokens[2:], " ")
	}

	return domain.Command{
		Type:         domain.CmdRecordDebt,
		BorrowerName: strings.TrimPrefix(tokens[0], "@"),
		AmountText:   tokens[1],
		Description:  description,
	}
}

// ParsePostbackCommand parses a button postback payload, a flat
// key=value query string with a required "action" key.
func ParsePostbackCommand(data string) domain.Command {
	values, err := url.ParseQuery(data)
	if err != nil {
		return domain.Command{Type: domain.CmdUnknownAction}
	}

	switch values.Get("action") {
	case "send_reminder":
		debtID, err := strconv.ParseInt(values.Get("debt_id"), 10, 64)
		if err != nil {
			return domain.Command{Type: domain.CmdUnknownAction}
		}
		return domain.Command{Type: domain.CmdSendReminder, DebtID: debtID}
	case "send_all_reminders":
		return domain.Command{Type: domain.CmdSendAllReminders}
	case "mark_paid":
		// A missing or malformed debt_id falls through to the
		// not-found path during execution.
		debtID, _ := strconv.ParseInt(values.Get("debt_id"), 10, 64)
		return domain.Command{Type: domain.CmdMarkPaid, DebtID: debtID}
	default:
		return domain.Command{Type: domain.CmdUnknownAction}
	}
}
