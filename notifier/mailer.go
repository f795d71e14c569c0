package notifier

import (
	"fmt"

	"limpamais-api/config"
	"limpamais-api/models"

	"gopkg.in/gomail.v2"
)

// NotifyLowStock sends an alert email when a product falls to or below its
// minimum stock level. Best effort: failures are logged, never surfaced to
// the request that triggered them. Skipped entirely when SMTP is not
// configured.
func NotifyLowStock(product models.Product) {
	if config.SMTPHost == "" || len(config.AlertRecipients) == 0 {
		return
	}

	subject := "Low stock: " + product.Name
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Stock below minimum</h3>
				<p>Product: <strong>%s</strong></p>
				<p>Current stock: <strong>%d %s</strong> (minimum %d)</p>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, product.Name, product.CurrentStock, product.Unit, product.MinStock)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.AlertRecipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		config.GetLogger().WithField("product_id", product.ID).Error("failed to send low stock alert: ", err)
		return
	}

	config.GetLogger().WithField("product_id", product.ID).Info("low stock alert sent")
}
