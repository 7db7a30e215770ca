// Package captcha verifies Cloudflare Turnstile tokens sent by the public
// forms.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"
)

// SiteVerifyURL is Cloudflare's verification endpoint.
const SiteVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Verifier checks a client supplied CAPTCHA token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
	Hostname   string   `json:"hostname"`
}

// TurnstileVerifier calls the siteverify API, retrying transport failures
// and 5xx answers with exponential backoff.
type TurnstileVerifier struct {
	secret     string
	endpoint   string
	client     *http.Client
	maxElapsed time.Duration
	logger     lager.Logger
}

// NewTurnstileVerifier returns a verifier. With an empty secret every token
// is accepted, which is only meant for local development.
func NewTurnstileVerifier(secret string, client *http.Client, logger lager.Logger) *TurnstileVerifier {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	logger = logger.Session("turnstile")
	if secret == "" {
		logger.Info("disabled-no-secret")
	}
	return &TurnstileVerifier{
		secret:     secret,
		endpoint:   SiteVerifyURL,
		client:     client,
		maxElapsed: 10 * time.Second,
		logger:     logger,
	}
}

// WithEndpoint points the verifier at another siteverify URL.
func (v *TurnstileVerifier) WithEndpoint(endpoint string) *TurnstileVerifier {
	v.endpoint = endpoint
	return v
}

// Verify reports whether Cloudflare accepted token. An error means the
// answer could not be obtained, not that the token was bad.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if v.secret == "" {
		return true, nil
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return false, nil
	}

	form := url.Values{"secret": {v.secret}, "response": {token}}
	if remoteIP != "" && remoteIP != "unknown" {
		form.Set("remoteip", remoteIP)
	}

	var result siteVerifyResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := v.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("siteverify returned %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("siteverify returned %d", resp.StatusCode))
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return backoff.Permanent(fmt.Errorf("decode siteverify response: %w", err))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = v.maxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		v.logger.Error("siteverify-failed", err)
		return false, err
	}
	if !result.Success {
		v.logger.Info("token-rejected", lager.Data{"error-codes": result.ErrorCodes})
	}
	return result.Success, nil
}
