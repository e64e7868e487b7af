package mailer

import (
	"fmt"
	"html"
	"time"

	"github.com/katatrina/procurement-BE/internal/util"
	"github.com/shopspring/decimal"
)

const timeLayout = "Jan 2, 2006 15:04 MST"

type AuctionStartedData struct {
	RfqTitle string
	EndTime  time.Time
	Price    decimal.NullDecimal
}

func AuctionStartedEmail(data AuctionStartedData) (subject string, body string) {
	subject = fmt.Sprintf("Auction started: %s", util.TruncateContent(data.RfqTitle, 60))

	price := "no opening price, the first bid sets it"
	if data.Price.Valid {
		price = "opening price " + util.FormatMoney(data.Price.Decimal)
	}

	body = fmt.Sprintf(
		"<p>A reverse auction for <strong>%s</strong> is now open for bids (%s).</p>"+
			"<p>Bidding closes at %s. Each bid must be lower than the current price.</p>",
		html.EscapeString(data.RfqTitle),
		price,
		data.EndTime.UTC().Format(timeLayout),
	)

	return subject, body
}

type AuctionEndedData struct {
	RfqTitle    string
	WinnerLabel string
	FinalPrice  decimal.NullDecimal
	IsWinner    bool
}

func AuctionEndedEmail(data AuctionEndedData) (subject string, body string) {
	subject = fmt.Sprintf("Auction ended: %s", util.TruncateContent(data.RfqTitle, 60))

	var outcome string
	switch {
	case data.IsWinner:
		outcome = fmt.Sprintf("Your bid of %s was the lowest. You won this auction.",
			util.FormatMoney(data.FinalPrice.Decimal))
	case data.WinnerLabel != "":
		outcome = fmt.Sprintf("The auction was won by %s with a bid of %s.",
			html.EscapeString(data.WinnerLabel), util.FormatMoney(data.FinalPrice.Decimal))
	default:
		outcome = "The auction closed without any bids."
	}

	body = fmt.Sprintf("<p>The reverse auction for <strong>%s</strong> has ended.</p><p>%s</p>",
		html.EscapeString(data.RfqTitle), outcome)

	return subject, body
}
