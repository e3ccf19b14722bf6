package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/gomail.v2"
)

func sendEmail(to, subject, htmlBody string) {
	if os.Getenv("SMTP_HOST") == "" {
		log.Printf("SMTP not configured, skipping email to %s", to)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return
	}

	log.Printf("Email sent to %s", to)
}

// SendApplicationConfirmation emails an applicant that their application
// was received. Sent in the background; failures are logged only.
func SendApplicationConfirmation(name, email string) {
	body := fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<h1 style="color: #001a4d;">Application Received</h1>
			<p>Dear %s,</p>
			<p>Thank you for submitting your application to Kenyan Engineers. We appreciate your interest in our services.</p>
			<p>Our team has received your application and will review it shortly. We typically respond within 24-48 hours.</p>
			<p>Best regards,<br/><strong>Kenyan Engineers Team</strong></p>
			<hr/>
			<p style="font-size: 12px; color: #666;">This is an automated email. Please do not reply to this message.</p>
		</body>
		</html>`, name)

	sendEmail(email, "Application Received - Kenyan Engineers", body)
}

// SendContactConfirmation emails a contact-form sender that their message
// was received.
func SendContactConfirmation(name, email string) {
	body := fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<h1 style="color: #001a4d;">Message Received</h1>
			<p>Hi %s,</p>
			<p>Thank you for contacting Kenyan Engineers. We have received your message and our team will get back to you as soon as possible.</p>
			<p>Expected response time: 24 hours</p>
			<p>Best regards,<br/><strong>Kenyan Engineers Team</strong></p>
			<hr/>
			<p style="font-size: 12px; color: #666;">This is an automated email. Please do not reply to this message.</p>
		</body>
		</html>`, name)

	sendEmail(email, "We Received Your Message - Kenyan Engineers", body)
}

// SendPaymentReceipt emails a payment receipt once a payment succeeds.
func SendPaymentReceipt(email, phoneNumber string, amount float64, receipt string) {
	body := fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<h1 style="color: #001a4d;">Payment Receipt</h1>
			<p>Your payment has been successfully processed.</p>
			<div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px;">
				<p><strong>Phone Number:</strong> %s</p>
				<p><strong>Amount:</strong> KES %.0f</p>
				<p><strong>Receipt Number:</strong> %s</p>
				<p><strong>Date:</strong> %s</p>
			</div>
			<p>Thank you for using our services. If you have any questions about this payment, please contact us.</p>
			<p>Best regards,<br/><strong>Kenyan Engineers Team</strong></p>
		</body>
		</html>`, phoneNumber, amount, receipt, time.Now().Format("02 Jan 2006"))

	sendEmail(email, "Payment Receipt - Kenyan Engineers", body)
}
