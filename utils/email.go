package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"strconv"

	"movie_booking/config"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData feeds the confirmation mail template.
type BookingConfirmationData struct {
	BookingCode string
	MovieTitle  string
	Showtime    string
	Seats       string
	Total       string
}

// SendBookingConfirmationEmail mails the booking summary with one QR code
// attachment per ticket. Runs async so the response is not delayed.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData, ticketCodes []string) {
	go func() {
		tmpl, err := template.ParseFiles("templates/booking_confirmation.html")
		if err != nil {
			log.Printf("failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", config.Config("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmation #"+data.BookingCode)
		m.SetBody("text/html", body.String())

		for _, code := range ticketCodes {
			qrBytes, err := GenerateQRCode("ticket:"+code, 256)
			if err != nil {
				log.Printf("failed to generate QR for ticket %s: %v", code, err)
				continue
			}
			filename := "Ticket_" + code + ".png"
			payload := qrBytes
			m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(payload))
				return err
			}))
		}

		port, _ := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))
		d := gomail.NewDialer(config.Config("SMTP_HOST"), port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email: %v", err)
		}
	}()
}
