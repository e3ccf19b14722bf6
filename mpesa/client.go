package mpesa

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Client talks to the Safaricom Daraja API: OAuth token generation, STK push
// initiation and the manual status query.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// STKPushRequest is an initiation request after handler-level validation.
type STKPushRequest struct {
	PhoneNumber string
	Amount      float64
	ServiceType string
	Description string
}

// STKPushResult carries the gateway's acceptance of a push request. The
// CheckoutRequestID is the correlation key the eventual callback refers to.
type STKPushResult struct {
	CheckoutRequestID   string
	MerchantRequestID   string
	ResponseCode        string
	ResponseDescription string
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone converts a user-entered phone number to the digits-only
// 254-prefixed form Daraja expects. Numbers already in that form pass
// through unchanged, so the function is idempotent.
func NormalizePhone(phone string) string {
	p := nonDigits.ReplaceAllString(phone, "")
	if strings.HasPrefix(p, "0") {
		p = "254" + p[1:]
	}
	if !strings.HasPrefix(p, "254") {
		p = "254" + p
	}
	return p
}

// timestamp returns the 14-digit UTC timestamp Daraja uses in the push
// password, e.g. 20250901143000.
func timestamp() string {
	return time.Now().UTC().Format("20060102150405")
}

// password is base64(shortcode + passkey + timestamp).
func (c *Client) password(ts string) string {
	return base64.StdEncoding.EncodeToString([]byte(c.cfg.ShortCode + c.cfg.Passkey + ts))
}

// AccessToken exchanges the consumer key/secret for a short-lived bearer
// token. A fresh token is fetched per initiation.
func (c *Client) AccessToken() (string, error) {
	req, err := http.NewRequest("GET", c.cfg.BaseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.cfg.ConsumerKey + ":" + c.cfg.ConsumerSecret))
	req.Header.Set("Authorization", "Basic "+auth)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", errors.New("token response missing access_token")
	}

	return body.AccessToken, nil
}

// STKPush submits a payment prompt to the payer's phone. Fractional amounts
// are truncated to whole shillings. A non-zero gateway response code is
// returned as an error carrying the gateway's own message.
func (c *Client) STKPush(accessToken string, request STKPushRequest) (*STKPushResult, error) {
	phone := NormalizePhone(request.PhoneNumber)
	ts := timestamp()

	body := map[string]interface{}{
		"BusinessShortCode": c.cfg.ShortCode,
		"Password":          c.password(ts),
		"Timestamp":         ts,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            int64(math.Floor(request.Amount)),
		"PartyA":            phone,
		"PartyB":            c.cfg.ShortCode,
		"PhoneNumber":       phone,
		"CallBackURL":       c.cfg.CallbackURL,
		"AccountReference":  fmt.Sprintf("%s-%d", request.ServiceType, time.Now().UnixMilli()),
		"TransactionDesc":   request.Description,
	}

	var response struct {
		ResponseCode        string `json:"ResponseCode"`
		ResponseDescription string `json:"ResponseDescription"`
		CheckoutRequestID   string `json:"CheckoutRequestID"`
		MerchantRequestID   string `json:"MerchantRequestID"`
		ErrorMessage        string `json:"errorMessage"`
	}
	if err := c.post(accessToken, "/mpesa/stkpush/v1/processrequest", body, &response); err != nil {
		return nil, errors.New("failed to process payment request")
	}

	if response.ResponseCode != "0" {
		if response.ErrorMessage != "" {
			return nil, errors.New(response.ErrorMessage)
		}
		return nil, errors.New("failed to initiate payment")
	}

	return &STKPushResult{
		CheckoutRequestID:   response.CheckoutRequestID,
		MerchantRequestID:   response.MerchantRequestID,
		ResponseCode:        response.ResponseCode,
		ResponseDescription: response.ResponseDescription,
	}, nil
}

// QueryStatus asks the gateway for the current state of a push request.
// This is an administrative escape hatch, not part of normal reconciliation;
// callbacks remain the source of truth.
func (c *Client) QueryStatus(accessToken, checkoutRequestID string) (map[string]interface{}, error) {
	ts := timestamp()

	body := map[string]interface{}{
		"BusinessShortCode": c.cfg.ShortCode,
		"Password":          c.password(ts),
		"Timestamp":         ts,
		"CheckoutRequestID": checkoutRequestID,
	}

	var response map[string]interface{}
	if err := c.post(accessToken, "/mpesa/stkpushquery/v1/query", body, &response); err != nil {
		return nil, err
	}

	return response, nil
}

func (c *Client) post(accessToken, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", c.cfg.BaseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}
