package helpers

import (
	"fmt"
	"net/url"
	"strings"

	"quickbite-pos/apperr"
	"quickbite-pos/catalog"
	"quickbite-pos/models"
)

// Channels lists the enabled share channels in the order the selector
// presents them.
func Channels() []models.ShareChannel {
	return []models.ShareChannel{
		models.ChannelWhatsApp,
		models.ChannelTelegram,
		models.ChannelViber,
		models.ChannelEmail,
	}
}

// ShareLink builds the deep link that opens the given channel pre-filled
// with the ticket. Dispatch is fire-and-forget: the link is handed over and
// no delivery confirmation ever comes back.
func ShareLink(channel models.ShareChannel, ticket string, orderID int64) (string, error) {
	encoded := encodeTicket(ticket)

	switch channel {
	case models.ChannelWhatsApp:
		return fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(catalog.ContactNumber()), encoded), nil
	case models.ChannelTelegram:
		return "https://t.me/share/url?url=" + encoded, nil
	case models.ChannelViber:
		return "viber://forward?text=" + encoded, nil
	case models.ChannelEmail:
		subject := encodeTicket(fmt.Sprintf("QuickBite Order %d", orderID))
		return fmt.Sprintf("mailto:%s?subject=%s&body=%s", catalog.OrdersEmail(), subject, encoded), nil
	}
	return "", apperr.ErrUnknownChannel
}

// encodeTicket percent-encodes the full ticket body, spaces included, so a
// multi-line message with emoji glyphs survives the channel hand-off intact.
func encodeTicket(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
