package mpesa

import (
	"encoding/json"
	"testing"
	"time"
)

const successCallback = `{
	"Body": {
		"stkCallback": {
			"MerchantRequestID": "29115-34620561-1",
			"CheckoutRequestID": "ws_CO_191220191020363925",
			"ResultCode": 0,
			"ResultDesc": "The service request is processed successfully.",
			"CallbackMetadata": {
				"Item": [
					{"Name": "Amount", "Value": 100.00},
					{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
					{"Name": "TransactionDate", "Value": 20191219102115},
					{"Name": "PhoneNumber", "Value": 254712345678}
				]
			}
		}
	}
}`

func TestCallbackEnvelope_Success(t *testing.T) {
	var envelope CallbackEnvelope
	if err := json.Unmarshal([]byte(successCallback), &envelope); err != nil {
		t.Fatal(err)
	}

	cb := envelope.Body.StkCallback
	if cb == nil {
		t.Fatal("stkCallback not decoded")
	}
	if cb.CheckoutRequestID != "ws_CO_191220191020363925" {
		t.Errorf("CheckoutRequestID = %q", cb.CheckoutRequestID)
	}
	if cb.ResultCode != 0 {
		t.Errorf("ResultCode = %d", cb.ResultCode)
	}
	if got := cb.ReceiptNumber(); got != "NLJ7RT61SV" {
		t.Errorf("ReceiptNumber = %q", got)
	}
	if got := cb.Amount(); got != 100 {
		t.Errorf("Amount = %v", got)
	}
	if got := cb.PayerPhone(); got != "254712345678" {
		t.Errorf("PayerPhone = %q", got)
	}

	completed := cb.CompletedAt()
	if completed == nil {
		t.Fatal("CompletedAt = nil")
	}
	want := time.Date(2019, 12, 19, 10, 21, 15, 0, time.Local)
	if !completed.Equal(want) {
		t.Errorf("CompletedAt = %v, want %v", completed, want)
	}
}

func TestCallbackEnvelope_FailureHasNoMetadata(t *testing.T) {
	payload := `{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_1","ResultCode":1032,"ResultDesc":"Request cancelled by user"}}}`

	var envelope CallbackEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		t.Fatal(err)
	}

	cb := envelope.Body.StkCallback
	if cb.ReceiptNumber() != "" {
		t.Errorf("ReceiptNumber = %q, want empty", cb.ReceiptNumber())
	}
	if cb.Amount() != 0 {
		t.Errorf("Amount = %v, want 0", cb.Amount())
	}
	if cb.CompletedAt() != nil {
		t.Error("CompletedAt should be nil without metadata")
	}
}

func TestMetadataValues_UnknownAndDuplicateNames(t *testing.T) {
	metadata := &CallbackMetadata{Item: []MetadataItem{
		{Name: "Amount", Value: 50.0},
		{Name: "SomethingNew", Value: "ignored"},
		{Name: "Amount", Value: 75.0},
	}}

	values := metadata.Values()
	if values["Amount"] != 75.0 {
		t.Errorf("duplicate names should keep the last occurrence, got %v", values["Amount"])
	}
	if _, ok := values["SomethingNew"]; !ok {
		t.Error("unknown names should still be present in the lookup")
	}
}

func TestMetadataValues_NilMetadata(t *testing.T) {
	var metadata *CallbackMetadata
	if got := metadata.Values(); len(got) != 0 {
		t.Errorf("nil metadata should yield an empty map, got %v", got)
	}
}
