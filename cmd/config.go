package cmd

// Config carries everything the process needs from the environment: HTTP
// binding, database connection, Razorpay credentials, and the abandoned
// payment sweep schedule.
type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	MigrationsPath         string
	RazorpayKeyID          string
	RazorpayKeySecret      string
	RazorpayCallbackSecret string
	PaymentSweepSpec       string
	AbandonedPaymentTTL    string
}
