package mpesa

import (
	"strconv"
	"time"
)

// CallbackEnvelope is the nested JSON document Daraja posts to the callback
// URL once the payer approves or rejects the push.
type CallbackEnvelope struct {
	Body struct {
		StkCallback *StkCallback `json:"stkCallback"`
	} `json:"Body"`
}

type StkCallback struct {
	MerchantRequestID string            `json:"MerchantRequestID"`
	CheckoutRequestID string            `json:"CheckoutRequestID"`
	ResultCode        int               `json:"ResultCode"`
	ResultDesc        string            `json:"ResultDesc"`
	CallbackMetadata  *CallbackMetadata `json:"CallbackMetadata"`
}

type CallbackMetadata struct {
	Item []MetadataItem `json:"Item"`
}

type MetadataItem struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value"`
}

// Values flattens the metadata item list into a name-to-value lookup.
// Unknown names are carried along harmlessly; duplicate names keep the last
// occurrence.
func (m *CallbackMetadata) Values() map[string]interface{} {
	values := make(map[string]interface{})
	if m == nil {
		return values
	}
	for _, item := range m.Item {
		values[item.Name] = item.Value
	}
	return values
}

// ReceiptNumber returns the MpesaReceiptNumber metadata item, if present.
func (cb *StkCallback) ReceiptNumber() string {
	receipt, _ := cb.CallbackMetadata.Values()["MpesaReceiptNumber"].(string)
	return receipt
}

// Amount returns the Amount metadata item, if present.
func (cb *StkCallback) Amount() float64 {
	amount, _ := cb.CallbackMetadata.Values()["Amount"].(float64)
	return amount
}

// PayerPhone returns the PhoneNumber metadata item, if present. Daraja
// sends it as a number, not a string.
func (cb *StkCallback) PayerPhone() string {
	switch v := cb.CallbackMetadata.Values()["PhoneNumber"].(type) {
	case string:
		return v
	case float64:
		return formatMsisdn(v)
	default:
		return ""
	}
}

// CompletedAt parses the TransactionDate metadata item (numeric
// YYYYMMDDHHMMSS) into a time, or nil when absent or unparseable.
func (cb *StkCallback) CompletedAt() *time.Time {
	raw := cb.CallbackMetadata.Values()["TransactionDate"]

	var digits string
	switch v := raw.(type) {
	case string:
		digits = v
	case float64:
		digits = formatMsisdn(v)
	default:
		return nil
	}

	t, err := time.ParseInLocation("20060102150405", digits, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// formatMsisdn renders a numeric JSON value as its digit string without
// losing precision to float formatting.
func formatMsisdn(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
