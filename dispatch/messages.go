package dispatch

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var notifPrinter = message.NewPrinter(language.English)

// callMessages implements §4.E group 9. Message/GiftingMessage/
// TimerMessage all look a numeric id up in the campaign-string table and
// push it to the host notification panel with a category-specific color.
func (d *Dispatcher) callMessages(funcID int, args []any) any {
	var category string
	switch funcID {
	case fnMessage:
		category = "message"
	case fnGiftingMessage:
		category = "gift"
	case fnTimerMessage:
		category = "timer"
	}

	id := argInt(args, 0)
	text, ok := d.World.CampaignString(id)
	if !ok {
		return int32(0)
	}

	// TimerMessage carries a second argument: the countdown value to
	// splice into the panel text, grouped with notifPrinter so a large
	// tick/second count reads as "1,234" rather than "1234".
	formatted := text
	if funcID == fnTimerMessage {
		formatted = notifPrinter.Sprintf("%s (%d)", text, argInt(args, 1))
	}
	d.World.PushNotification(d.Ctx, category, formatted)
	return int32(0)
}
