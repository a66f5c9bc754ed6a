package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

type NotificationEmailData struct {
	Name    string
	Title   string
	Message string
}
