package mail

import "github.com/fisiomuv/preventa-api/internal/entity"

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	From string // sender address for both emails
	To   string // operator inbox for alerts
}

type OperatorAlertData struct {
	LeadID      string
	Email       string
	Name        string
	Phone       string
	WhatsAppURL string
	Interest    string
	Origin      string
	SubmittedAt string
	UTM         *entity.UTM
	Referer     string
}

type ClientConfirmationData struct {
	Name        string
	Interest    string
	SubmittedAt string
	ContactMail string
}
