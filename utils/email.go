package utils

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"log"
	"strconv"

	"phone_store/config"

	"gopkg.in/gomail.v2"
)

// OrderEmailItem một dòng hàng trong email xác nhận
type OrderEmailItem struct {
	ProductName string
	VariantName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// OrderConfirmationData dữ liệu cho template email
type OrderConfirmationData struct {
	OrderCode       string
	CustomerName    string
	Items           []OrderEmailItem
	Subtotal        float64
	ShippingFee     float64
	TotalAmount     float64
	PaymentMethod   string
	ShippingAddress string
	QRBase64        string
}

// SendOrderConfirmationEmail gửi email xác nhận đơn hàng (async).
// QR chứa mã đơn để nhân viên quét tra cứu khi giao hàng.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() { // Async để không delay response
		qrBytes, err := GenerateQRCode(data.OrderCode, 256)
		if err != nil {
			log.Printf("Lỗi tạo QR cho email: %v", err)
		} else {
			data.QRBase64 = base64.StdEncoding.EncodeToString(qrBytes)
		}

		tmplPath := "templates/order_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		portStr := config.Config("SMTP_PORT")
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Xác nhận đơn hàng "+data.OrderCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email: %v", err)
		}
	}()
}
