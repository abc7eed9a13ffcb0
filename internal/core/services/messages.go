package services

import (
	"fmt"

	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
	"github.com/jonaspay/jonaspay-bot/internal/utils/money"
)

// Fixed reply texts. Kept verbatim so regression tests can assert on them.
const (
	msgApology            = "抱歉，處理您的請求時發生錯誤，請稍後再試。"
	msgEventApology       = "抱歉，處理您的請求時發生錯誤。請稍後再試或聯絡管理員。"
	msgPostbackApology    = "處理操作時發生錯誤。"
	msgMarkPaidApology    = "處理還款標記時發生錯誤。"
	msgMarkPaidFailed     = "標記還款失敗，請稍後再試。"
	msgInvalidAmount      = "請輸入有效的金額！"
	msgAmountFormat       = "金額格式錯誤，請輸入有效的數字。"
	msgRecordUsage        = "請使用正確格式：\n\n📝 記錄 @朋友姓名 金額 說明\n\n例如：記錄 @小明 500 聚餐費用"
	msgNoUnpaidDebts      = "🎉 太棒了！目前沒有未還款的記錄。"
	msgListError          = "取得清單時發生錯誤，請稍後再試。"
	msgRemindersStub      = "🔔 提醒功能開發中...\n\n目前可以透過債務清單的按鈕來發送個別提醒。"
	msgSendAllStub        = "🔔 批量提醒功能準備中...\n\n實際部署時，這裡會自動發送提醒給所有未還款的朋友。"
	msgUnknownAction      = "未知的操作。"
	msgDebtNotFound       = "找不到該借款記錄。"
	msgOperationCancelled = "操作已取消。"
	msgStickerThanks      = "感謝您的貼圖！😊\n\n輸入「幫助」查看 Jonas Pay 的功能。"
	msgUnsupportedMessage = "抱歉，我目前只能處理文字訊息。\n\n輸入「幫助」查看可用功能。"
	msgGenericWelcome     = "歡迎使用 Jonas Pay！輸入「幫助」查看功能說明。"
)

const bubbleBackground = "#f8f9fa"

func greetMessage(displayName string) domain.TextMessage {
	greeting := "哈囉！👋"
	if displayName != "" {
		greeting = fmt.Sprintf("哈囉 %s！👋", displayName)
	}
	return domain.TextMessage{Text: greeting + "\n\n歡迎使用 Jonas Pay！\n\n📝 輸入「記錄 @朋友 金額 說明」來記錄借款\n📋 輸入「清單」查看所有未還款記錄\n🔔 輸入「提醒」發送還款提醒\n❓ 輸入「幫助」查看更多功能"}
}

func sendReminderStubMessage(debtID int64) domain.TextMessage {
	return domain.TextMessage{Text: fmt.Sprintf("🔔 提醒功能準備中...\n\n債務ID: %d\n\n實際部署時，這裡會自動發送提醒訊息給借款人。", debtID)}
}

func flexBubble(body, footer *domain.FlexBox) *domain.FlexBubble {
	return &domain.FlexBubble{
		Styles: &domain.BubbleStyles{Body: &domain.BlockStyle{BackgroundColor: bubbleBackground}},
		Body:   body,
		Footer: footer,
	}
}

func baselineField(label, value, valueColor string, bold bool) domain.FlexBox {
	valueText := domain.FlexText{Text: value, Flex: 3, Wrap: true}
	if bold {
		valueText.Weight = "bold"
	}
	valueText.Color = valueColor
	return domain.FlexBox{
		Layout: "baseline",
		Contents: []domain.FlexComponent{
			domain.FlexText{Text: label, Color: "#666666", Size: "sm", Flex: 2},
			valueText,
		},
	}
}

func postbackButton(label, data string) *domain.FlexBox {
	return &domain.FlexBox{
		Layout: "vertical",
		Contents: []domain.FlexComponent{
			domain.FlexButton{
				Style:  "primary",
				Action: domain.PostbackAction{Label: label, Data: data},
			},
		},
	}
}

// debtCreatedMessage confirms a new record and offers a reminder
// action bound to the new debt ID.
func debtCreatedMessage(debt domain.Debt) domain.FlexMessage {
	body := &domain.FlexBox{
		Layout: "vertical",
		Contents: []domain.FlexComponent{
			domain.FlexText{Text: "✅ 借款記錄已建立", Weight: "bold", Color: "#2ecc71", Size: "lg"},
			domain.FlexSeparator{Margin: "md"},
			domain.FlexBox{
				Layout: "vertical",
				Margin: "md",
				Contents: []domain.FlexComponent{
					baselineField("借款人:", debt.BorrowerName, "", true),
					baselineField("金額:", money.FormatAmount(debt.Amount), "#e74c3c", true),
					baselineField("項目:", debt.Description, "", false),
				},
			},
		},
	}
	footer := postbackButton("發送提醒給朋友", fmt.Sprintf("action=send_reminder&debt_id=%d", debt.DebtID))

	return domain.FlexMessage{AltText: "借款記錄已建立", Contents: flexBubble(body, footer)}
}

// debtListMessage renders up to the first ten unpaid debts plus the
// total over the whole unpaid set.
func debtListMessage(debts []domain.Debt) domain.FlexMessage {
	var total int64
	for _, d := range debts {
		total += d.Amount
	}

	shown := debts
	if len(shown) > 10 {
		shown = shown[:10]
	}

	contents := []domain.FlexComponent{
		domain.FlexText{Text: "💰 未還款清單", Weight: "bold", Color: "#2c3e50", Size: "lg"},
		domain.FlexText{Text: "總計: " + money.FormatAmount(total), Weight: "bold", Color: "#e74c3c", Size: "md", Margin: "sm"},
		domain.FlexSeparator{Margin: "md"},
	}

	for _, d := range shown {
		contents = append(contents, domain.FlexBox{
			Layout: "vertical",
			Margin: "sm",
			Contents: []domain.FlexComponent{
				domain.FlexBox{
					Layout: "baseline",
					Contents: []domain.FlexComponent{
						domain.FlexText{Text: d.BorrowerName, Weight: "bold", Flex: 2},
						domain.FlexText{Text: money.FormatAmount(d.Amount), Weight: "bold", Color: "#e74c3c", Align: "end", Flex: 1},
					},
				},
				domain.FlexText{Text: d.Description, Size: "sm", Color: "#666666", Wrap: true},
				domain.FlexText{Text: d.CreatedAt.Format("2006/1/2"), Size: "xs", Color: "#999999"},
				domain.FlexSeparator{Margin: "sm"},
			},
		})
	}

	body := &domain.FlexBox{Layout: "vertical", Contents: contents}
	footer := postbackButton("發送提醒給所有人", "action=send_all_reminders")

	return domain.FlexMessage{AltText: "未還款清單", Contents: flexBubble(body, footer)}
}

// markPaidMessage confirms a repayment, summarizing the settled debt.
func markPaidMessage(debt domain.Debt) domain.FlexMessage {
	body := &domain.FlexBox{
		Layout: "vertical",
		Contents: []domain.FlexComponent{
			domain.FlexText{Text: "✅ 已標記為還款", Weight: "bold", Color: "#2ecc71", Size: "lg"},
			domain.FlexSeparator{Margin: "md"},
			domain.FlexBox{
				Layout: "vertical",
				Margin: "md",
				Contents: []domain.FlexComponent{
					domain.FlexText{Text: debt.BorrowerName + " 的借款", Weight: "bold"},
					domain.FlexText{Text: "金額: " + money.FormatAmount(debt.Amount), Color: "#2ecc71"},
					domain.FlexText{Text: "項目: " + debt.Description, Size: "sm", Color: "#666666"},
				},
			},
		},
	}

	return domain.FlexMessage{AltText: "已標記為還款", Contents: flexBubble(body, nil)}
}

func helpMessage() domain.FlexMessage {
	body := &domain.FlexBox{
		Layout: "vertical",
		Contents: []domain.FlexComponent{
			domain.FlexText{Text: "📖 Jonas Pay 使用說明", Weight: "bold", Color: "#2c3e50", Size: "lg"},
			domain.FlexSeparator{Margin: "md"},
			domain.FlexBox{
				Layout: "vertical",
				Margin: "md",
				Contents: []domain.FlexComponent{
					domain.FlexText{Text: "📝 記錄借款", Weight: "bold", Color: "#3498db", Margin: "sm"},
					domain.FlexText{Text: "記錄 @朋友 金額 說明", Size: "sm", Color: "#666666"},
					domain.FlexText{Text: "例：記錄 @小明 500 聚餐", Size: "xs", Color: "#999999"},
					domain.FlexText{Text: "📋 查看清單", Weight: "bold", Color: "#3498db", Margin: "md"},
					domain.FlexText{Text: "輸入「清單」或「查看」", Size: "sm", Color: "#666666"},
					domain.FlexText{Text: "🔔 發送提醒", Weight: "bold", Color: "#3498db", Margin: "md"},
					domain.FlexText{Text: "輸入「提醒」", Size: "sm", Color: "#666666"},
				},
			},
		},
	}

	return domain.FlexMessage{AltText: "Jonas Pay 使用說明", Contents: flexBubble(body, nil)}
}

func welcomeMessage(displayName string) domain.FlexMessage {
	body := &domain.FlexBox{
		Layout: "vertical",
		Contents: []domain.FlexComponent{
			domain.FlexText{Text: fmt.Sprintf("歡迎 %s！🎉", displayName), Weight: "bold", Color: "#2ecc71", Size: "lg"},
			domain.FlexText{Text: "感謝您使用 Jonas Pay！", Margin: "sm"},
			domain.FlexSeparator{Margin: "md"},
			domain.FlexText{Text: "🔧 主要功能：", Weight: "bold", Margin: "md"},
			domain.FlexText{Text: "• 記錄朋友借款\n• 追蹤還款狀態\n• 自動發送提醒\n• 查看借貸歷史", Size: "sm", Color: "#666666", Margin: "sm"},
			domain.FlexText{Text: "輸入「幫助」查看詳細使用說明！", Color: "#3498db", Margin: "md"},
		},
	}

	return domain.FlexMessage{AltText: "歡迎使用 Jonas Pay！", Contents: flexBubble(body, nil)}
}
