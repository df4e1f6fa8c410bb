package ticket

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/xiaot623/ticketbot/internal/domain"
)

// Card layout constants; the card is a fixed 600x350 printable composition.
const (
	cardWidth  = 600
	cardHeight = 350
	headerH    = 50
	borderW    = 3
	qrSide     = 140
	qrMargin   = 30

	maxEventChars = 35
	maxVenueChars = 25
)

var (
	colorBlack = color.NRGBA{0, 0, 0, 255}
	colorWhite = color.NRGBA{255, 255, 255, 255}
	colorDark  = color.NRGBA{51, 51, 51, 255}
	colorGray  = color.NRGBA{102, 102, 102, 255}
)

// Card composes the printable ticket image: header bar, booking details,
// ticket-id footer, and the already-rendered QR from the credential. The
// same credential is embedded as-is, so the card and the standalone QR
// always carry the same payload and ticket id.
func Card(rec *domain.BookingRecord, cred *domain.Credential) ([]byte, error) {
	qrImg, err := png.Decode(bytes.NewReader(cred.PNG))
	if err != nil {
		return nil, fmt.Errorf("failed to decode qr image: %w", err)
	}

	canvas := imaging.New(cardWidth, cardHeight, colorWhite)

	// Outer border and header bar.
	drawBorder(canvas, borderW, colorBlack)
	header := imaging.New(cardWidth, headerH, colorBlack)
	canvas = imaging.Paste(canvas, header, image.Pt(0, 0))

	// Retro window dots in the header.
	fillCircle(canvas, 21, 24, 7, colorWhite)
	fillCircle(canvas, 41, 24, 7, colorWhite)

	drawText(canvas, 60, 22, "EVENT TICKET", colorWhite)

	// QR on the right.
	qr := imaging.Resize(qrImg, qrSide, qrSide, imaging.Lanczos)
	canvas = imaging.Paste(canvas, qr, image.Pt(cardWidth-qrSide-qrMargin, 80))

	// Booking details on the left.
	y := 78
	drawText(canvas, 25, y, truncate(rec.EventName, maxEventChars), colorBlack)
	y += 30
	drawText(canvas, 25, y, "Date: "+rec.Date, colorDark)
	y += 25
	drawText(canvas, 25, y, "Time: "+rec.Time, colorDark)
	y += 25
	drawText(canvas, 25, y, "Venue: "+truncate(rec.Venue, maxVenueChars), colorDark)
	y += 25
	drawText(canvas, 25, y, "Guest: "+rec.Name, colorDark)
	y += 25
	drawText(canvas, 25, y, fmt.Sprintf("Tickets: %d", rec.TicketCount), colorDark)
	y += 25
	drawText(canvas, 25, y, fmt.Sprintf("Total: $%.2f", rec.TotalPrice), colorDark)

	// Footer rule and ticket id.
	drawHLine(canvas, cardHeight-45, colorBlack)
	drawText(canvas, 25, cardHeight-30, "ID: "+cred.TicketID, colorGray)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode ticket card: %w", err)
	}
	return buf.Bytes(), nil
}

func drawText(dst *image.NRGBA, x, y int, text string, col color.NRGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(text)
}

func drawBorder(dst *image.NRGBA, width int, col color.NRGBA) {
	b := dst.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for i := 0; i < width; i++ {
			dst.SetNRGBA(x, b.Min.Y+i, col)
			dst.SetNRGBA(x, b.Max.Y-1-i, col)
		}
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for i := 0; i < width; i++ {
			dst.SetNRGBA(b.Min.X+i, y, col)
			dst.SetNRGBA(b.Max.X-1-i, y, col)
		}
	}
}

func drawHLine(dst *image.NRGBA, y int, col color.NRGBA) {
	b := dst.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		dst.SetNRGBA(x, y, col)
	}
}

func fillCircle(dst *image.NRGBA, cx, cy, r int, col color.NRGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				dst.SetNRGBA(cx+dx, cy+dy, col)
			}
		}
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
