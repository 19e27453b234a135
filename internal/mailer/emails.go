package mailer

import (
	"fmt"
	"html"

	"magnet-orders-backend/internal/models"
)

// FormatTotal renders an amount for email copy. Zero or negative totals
// render empty, matching the storefront's behavior when no price is known.
func FormatTotal(total float64) string {
	if total > 0 {
		return fmt.Sprintf("%.2f BAM", total)
	}
	return ""
}

func CustomerSubject(orderCode string) string {
	return fmt.Sprintf("Potvrda narudžbe %s — Magicni magnet", orderCode)
}

// CustomerHTML is the short confirmation the customer receives: display
// code, quantity and total only.
func CustomerHTML(orderCode string, qty int, total float64) string {
	return fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;line-height:1.5">
			<h2 style="margin:0 0 8px">Hvala! Narudžba je zaprimljena ✅</h2>

			<p style="margin:0 0 10px">
				Broj narudžbe: <b>%s</b>
			</p>

			<p style="margin:0 0 8px">Količina: <b>%d</b></p>
			<p style="margin:0 0 12px">
				Ukupno: <b>%s</b>
			</p>

			<p style="margin:0 0 12px">
				Plaćanje pouzećem. Dostava poštom širom BiH.
			</p>

			<hr style="border:none;border-top:1px solid #eee;margin:16px 0" />
			<p style="margin:0;color:#666;font-size:12px">
				Ako imaš pitanja, odgovori na ovaj email: magicnimagnet@gmail.com
			</p>
		</div>
	`, html.EscapeString(orderCode), qty, FormatTotal(total))
}

func AdminSubject(orderCode string) string {
	return fmt.Sprintf("NOVA NARUDŽBA %s — Magicni magnet", orderCode)
}

// AdminHTML carries every order field plus both the display code and the raw
// database identifier, with the photo referenced inline.
func AdminHTML(order *models.Order, orderID, orderCode string) string {
	message := order.Message.String
	if message == "" {
		message = "-"
	}
	note := order.Note.String
	if note == "" {
		note = "-"
	}

	return fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;line-height:1.5">
			<h2 style="margin:0 0 12px">Nova narudžba ✅</h2>

			<p style="margin:0 0 6px"><b>Broj (za kupca):</b> %s</p>
			<p style="margin:0 0 6px"><b>Order ID (DB):</b> %s</p>

			<hr style="border:none;border-top:1px solid #eee;margin:12px 0" />

			<p style="margin:0 0 6px"><b>Ime:</b> %s</p>
			<p style="margin:0 0 6px"><b>Telefon:</b> %s</p>
			<p style="margin:0 0 6px"><b>Email kupca:</b> %s</p>
			<p style="margin:0 0 6px"><b>Grad:</b> %s</p>
			<p style="margin:0 0 6px"><b>Adresa:</b> %s</p>
			<p style="margin:0 0 6px"><b>Količina:</b> %d</p>
			<p style="margin:0 0 10px"><b>Ukupno:</b> %s</p>

			<hr style="border:none;border-top:1px solid #eee;margin:12px 0" />

			<p style="margin:0 0 6px"><b>Pjesma:</b> %s</p>
			<p style="margin:0 0 6px"><b>Poruka:</b> %s</p>
			<p style="margin:0 0 12px"><b>Napomena:</b> %s</p>

			<p style="margin:0 0 8px"><b>Fotografija:</b></p>
			<p style="margin:0 0 12px">
				<a href="%s" target="_blank" rel="noreferrer">%s</a>
			</p>
			<img src="%s" alt="Foto" style="max-width:480px;width:100%%;border-radius:12px;border:1px solid #eee" />
		</div>
	`,
		html.EscapeString(orderCode),
		html.EscapeString(orderID),
		html.EscapeString(order.Name),
		html.EscapeString(order.Phone),
		html.EscapeString(order.Email),
		html.EscapeString(order.City),
		html.EscapeString(order.Address),
		order.Qty,
		FormatTotal(order.Total),
		html.EscapeString(order.Song),
		html.EscapeString(message),
		html.EscapeString(note),
		order.ImageURL,
		html.EscapeString(order.ImageURL),
		order.ImageURL,
	)
}
