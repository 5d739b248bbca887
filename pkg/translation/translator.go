package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/lingokit/lingo/config"
	"github.com/lingokit/lingo/internal"
	"github.com/lingokit/lingo/pkg/models"
)

var log = internal.GetLogger()

const (
	// DefaultEndpoint is the unauthenticated public translation endpoint.
	DefaultEndpoint = "https://translate.googleapis.com/translate_a/single"

	requestTimeout = 10 * time.Second

	serviceName = "translation"
)

var _ models.Translator = &GoogleTranslator{}

// GoogleTranslator delegates translation to the public endpoint. Upstream
// faults are wrapped as UpstreamError, distinct from the validation
// faults raised for bad caller input.
type GoogleTranslator struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
}

func NewGoogleTranslator(cfg *config.Config) *GoogleTranslator {
	endpoint := cfg.Translation.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	// RetryMax is zero: a transient upstream failure surfaces immediately
	// rather than being retried against an unauthenticated public API.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = internal.NewLeveledLogrus(log)
	retryClient.HTTPClient.Timeout = requestTimeout

	return &GoogleTranslator{
		endpoint: endpoint,
		client:   retryClient.StandardClient(),
		// Stay polite toward the public endpoint.
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}
}

// Languages returns the supported-language table.
func (t *GoogleTranslator) Languages() map[string]string {
	return Languages
}

// Translate translates text into the target language. Empty text and
// unknown target codes are caller faults; everything that goes wrong
// talking to the service is a single upstream fault.
func (t *GoogleTranslator) Translate(
	ctx context.Context,
	text string,
	targetLanguage string,
) (*models.TranslationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("text cannot be empty")
	}
	if _, ok := Languages[targetLanguage]; !ok {
		return nil, models.NewValidationError(
			fmt.Sprintf("unsupported language code: %s", targetLanguage),
		)
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return nil, models.NewUpstreamError(serviceName, err)
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", "auto")
	query.Set("tl", targetLanguage)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		t.endpoint+"?"+query.Encode(),
		http.NoBody,
	)
	if err != nil {
		return nil, models.NewUpstreamError(serviceName, err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, models.NewUpstreamError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewUpstreamError(
			serviceName,
			fmt.Errorf("unexpected status: %d - %s", resp.StatusCode, resp.Status),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewUpstreamError(serviceName, err)
	}

	translated, source, confidence, err := parseReply(body)
	if err != nil {
		return nil, models.NewUpstreamError(serviceName, err)
	}

	return &models.TranslationResult{
		OriginalText:   text,
		TranslatedText: translated,
		SourceLanguage: source,
		TargetLanguage: targetLanguage,
		Confidence:     confidence,
	}, nil
}

// parseReply unpacks the endpoint's nested-array payload:
// [[[translated, original, ...], ...], ..., source, ..., confidence?].
// Confidence is frequently absent and defaults to 0.0, never fabricated.
func parseReply(body []byte) (translated, source string, confidence float64, err error) {
	var payload []interface{}
	if err = json.Unmarshal(body, &payload); err != nil {
		return "", "", 0, fmt.Errorf("malformed reply: %w", err)
	}
	if len(payload) == 0 {
		return "", "", 0, fmt.Errorf("empty reply")
	}

	chunks, ok := payload[0].([]interface{})
	if !ok {
		return "", "", 0, fmt.Errorf("malformed reply: missing translation chunks")
	}

	var b strings.Builder
	for _, raw := range chunks {
		chunk, ok := raw.([]interface{})
		if !ok || len(chunk) == 0 {
			continue
		}
		if part, ok := chunk[0].(string); ok {
			b.WriteString(part)
		}
	}
	translated = b.String()
	if translated == "" {
		return "", "", 0, fmt.Errorf("reply contained no translation")
	}

	if len(payload) > 2 {
		if s, ok := payload[2].(string); ok {
			source = s
		}
	}
	if len(payload) > 6 {
		if c, ok := payload[6].(float64); ok {
			confidence = c
		}
	}

	return translated, source, confidence, nil
}
