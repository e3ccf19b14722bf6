package mpesa

import "os"

const (
	sandboxURL    = "https://sandbox.safaricom.co.ke"
	productionURL = "https://api.safaricom.co.ke"
)

// Config holds the Daraja API credentials. Loaded once at process start and
// treated as immutable afterwards.
type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
}

// LoadConfig builds the gateway configuration from the environment.
// MPESA_ENVIRONMENT selects production; anything else means sandbox.
func LoadConfig() Config {
	baseURL := sandboxURL
	if os.Getenv("MPESA_ENVIRONMENT") == "production" {
		baseURL = productionURL
	}

	return Config{
		BaseURL:        baseURL,
		ConsumerKey:    os.Getenv("MPESA_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("MPESA_CONSUMER_SECRET"),
		ShortCode:      os.Getenv("MPESA_BUSINESS_SHORTCODE"),
		Passkey:        os.Getenv("MPESA_PASSKEY"),
		CallbackURL:    os.Getenv("MPESA_CALLBACK_URL"),
	}
}
