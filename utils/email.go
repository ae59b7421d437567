package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"strconv"

	"cinebook/config"

	"gopkg.in/gomail.v2"
)

// OrderConfirmationData feeds the confirmation mail template.
type OrderConfirmationData struct {
	OrderCode  string
	MovieTitle string
	ShowTime   string
	Screen     string
	Seats      string
	Snacks     string
	Total      float64
	PaymentRef string
}

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`
<h2>Your booking is confirmed</h2>
<p>Order <b>{{.OrderCode}}</b></p>
<p>{{.MovieTitle}} &mdash; {{.ShowTime}} &mdash; Screen {{.Screen}}</p>
<p>Seats: {{.Seats}}</p>
{{if .Snacks}}<p>Snacks: {{.Snacks}}</p>{{end}}
<p>Total: {{.Total}}</p>
<p>Payment reference: {{.PaymentRef}}</p>
<p>Show this QR at the pickup counter:</p>
<img src="cid:qr_pickup_code" alt="pickup QR" />
`))

// SendOrderConfirmationEmail mails the pickup QR to the customer. Runs
// async so it never delays the booking response; failures are logged only.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData, qrContent string) {
	go func() {
		var body bytes.Buffer
		if err := orderConfirmationTmpl.Execute(&body, data); err != nil {
			log.Printf("render confirmation mail: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", config.ConfigOr("SMTP_FROM", "CineBook <no-reply@cinebook.local>"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmed - "+data.OrderCode)
		m.SetBody("text/html", body.String())

		qrBytes, err := GenerateQRCode(qrContent, 400)
		if err != nil {
			log.Printf("generate pickup QR for %s: %v", data.OrderCode, err)
		} else {
			m.Embed("qr_pickup.png",
				gomail.SetCopyFunc(func(w io.Writer) error {
					_, err := w.Write(qrBytes)
					return err
				}),
				gomail.SetHeader(map[string][]string{
					"Content-Type":        {"image/png"},
					"Content-ID":          {"<qr_pickup_code>"},
					"Content-Disposition": {"inline"},
				}),
			)
		}

		port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
		d := gomail.NewDialer(config.Config("SMTP_HOST"), port,
			config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("send confirmation mail to %s: %v", to, err)
		}
	}()
}
