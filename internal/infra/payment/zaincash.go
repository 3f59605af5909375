package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"aquaflow/internal/pkg/config"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type ZainCashClient struct {
	cfg        config.ZainCashConfig
	httpClient *http.Client
}

func NewZainCashClient(cfg config.ZainCashConfig) shared.ZainCashGateway {
	return &ZainCashClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type zainCashInitRequest struct {
	MerchantID     string `json:"merchant_id"`
	MSISDN         string `json:"msisdn"`
	Amount         string `json:"amount"`
	OrderID        string `json:"order_id"`
	ServiceType    string `json:"service_type"`
	RedirectURL    string `json:"redirect_url"`
	CustomerName   string `json:"customer_name,omitempty"`
	CustomerEmail  string `json:"customer_email,omitempty"`
	CustomerMobile string `json:"customer_mobile,omitempty"`
	Language       string `json:"language"`
	Signature      string `json:"signature"`
}

type zainCashInitResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	PaymentURL    string `json:"payment_url"`
	Error         string `json:"error"`
}

type zainCashVerifyRequest struct {
	MerchantID    string `json:"merchant_id"`
	TransactionID string `json:"transaction_id"`
	Signature     string `json:"signature"`
}

type zainCashVerifyResponse struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	Error         string `json:"error"`
}

func (z *ZainCashClient) InitiatePayment(ctx context.Context, req shared.ZainCashPaymentRequest) (*shared.ZainCashPaymentResult, error) {
	lang := req.Language
	if lang == "" {
		lang = "en"
	}

	payload := zainCashInitRequest{
		MerchantID:     z.cfg.MerchantID,
		MSISDN:         z.cfg.MSISDN,
		Amount:         req.Amount.String(),
		OrderID:        req.OrderID,
		ServiceType:    req.ServiceType,
		RedirectURL:    req.RedirectURL,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerMobile: req.CustomerMobile,
		Language:       lang,
		Signature:      z.sign(z.cfg.MerchantID + "|" + req.Amount.String() + "|" + req.OrderID + "|" + z.cfg.SecretKey),
	}

	var result zainCashInitResponse
	if err := z.post(ctx, z.cfg.APIBaseURL+"/transactions/init", payload, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, errs.New("zaincash init rejected: " + result.Error)
	}

	return &shared.ZainCashPaymentResult{
		TransactionID: result.TransactionID,
		PaymentURL:    result.PaymentURL,
	}, nil
}

func (z *ZainCashClient) VerifyPayment(ctx context.Context, transactionID string) (*shared.ZainCashVerification, error) {
	payload := zainCashVerifyRequest{
		MerchantID:    z.cfg.MerchantID,
		TransactionID: transactionID,
		Signature:     z.sign(z.cfg.MerchantID + "|" + transactionID + "|" + z.cfg.SecretKey),
	}

	var result zainCashVerifyResponse
	if err := z.post(ctx, z.cfg.APIBaseURL+"/transactions/verify", payload, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, errs.New("zaincash verify rejected: " + result.Error)
	}

	amount := decimal.Zero
	if result.Amount != "" {
		parsed, err := decimal.NewFromString(result.Amount)
		if err != nil {
			return nil, errs.Wrap(err, "zaincash returned an unparsable amount")
		}
		amount = parsed
	}

	return &shared.ZainCashVerification{
		TransactionID: result.TransactionID,
		Status:        result.Status,
		Amount:        amount,
	}, nil
}

func (z *ZainCashClient) post(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode zaincash request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build zaincash request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := z.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "zaincash request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.New(fmt.Sprintf("zaincash returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode zaincash response")
	}
	return nil
}

func (z *ZainCashClient) sign(data string) string {
	mac := hmac.New(sha256.New, []byte(z.cfg.SecretKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
