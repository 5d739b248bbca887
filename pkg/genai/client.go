package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
	"github.com/pkoukk/tiktoken-go"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/schema"

	"github.com/lingokit/lingo/config"
	"github.com/lingokit/lingo/internal"
	"github.com/lingokit/lingo/pkg/models"
)

var log = internal.GetLogger()

const APITimeout = 30 * time.Second

var ErrNotConfigured = errors.New("generative AI service is not configured")

var _ models.AIClient = &GeminiClient{}

// GeminiClient delegates diagram generation and semantic-role labeling
// to Gemini. Every failure path is reported in-band through AIOutcome:
// the handler always answers 200 and callers detect failure via the
// empty diagram and role fields, never via an error.
type GeminiClient struct {
	llm             llms.Model
	model           string
	maxPromptTokens int
	tkm             *tiktoken.Tiktoken
}

// NewGeminiClient builds the client. A missing API key does not fail
// startup: the client stays unconfigured and reports the fault in-band
// on every call, consistent with the adapter's error policy.
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*GeminiClient, error) {
	client := &GeminiClient{
		model:           cfg.GenAI.Model,
		maxPromptTokens: cfg.GenAI.MaxPromptTokens,
	}

	tkm, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		log.Warnf("tiktoken encoding unavailable; prompt token budget disabled: %v", err)
	} else {
		client.tkm = tkm
	}

	if !cfg.GenAI.Enabled {
		log.Info("generative AI is disabled; AI endpoints will report failure in-band")
		return client, nil
	}
	if cfg.GenAI.GoogleAPIKey == "" {
		log.Warn("LINGO_GOOGLE_API_KEY is not set; AI endpoints will report failure in-band")
		return client, nil
	}

	llm, err := googleai.New(
		ctx,
		googleai.WithAPIKey(cfg.GenAI.GoogleAPIKey),
		googleai.WithDefaultModel(cfg.GenAI.Model),
	)
	if err != nil {
		return nil, models.NewConfigurationError("failed to create Gemini client", err)
	}
	client.llm = llm

	return client, nil
}

type cfgTreeReply struct {
	MermaidCode string `json:"mermaid_code"`
	Explanation string `json:"explanation"`
}

type semanticRolesReply struct {
	MermaidCode string                `json:"mermaid_code"`
	Roles       []models.SemanticRole `json:"roles"`
	Explanation string                `json:"explanation"`
}

// CFGTree asks the model for a CFG parse tree rendered as mermaid code.
func (c *GeminiClient) CFGTree(ctx context.Context, sentence string) models.AIOutcome {
	schemaText, err := replySchema(&cfgTreeReply{})
	if err != nil {
		return models.FailedAIOutcome(err)
	}
	prompt, err := internal.ParsePrompt(cfgTreePromptTemplate, CFGTreePromptTemplateData{
		Sentence: sentence,
		Schema:   schemaText,
	})
	if err != nil {
		return models.FailedAIOutcome(err)
	}

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return models.FailedAIOutcome(err)
	}

	var reply cfgTreeReply
	if err := decodeReply(raw, &reply); err != nil {
		return models.FailedAIOutcome(err)
	}
	if reply.MermaidCode == "" {
		return models.FailedAIOutcome(errors.New("reply did not contain mermaid_code"))
	}

	return models.AIOutcome{
		MermaidCode: reply.MermaidCode,
		Explanation: reply.Explanation,
	}
}

// SemanticRoles asks the model for predicate-argument structure.
func (c *GeminiClient) SemanticRoles(ctx context.Context, sentence string) models.AIOutcome {
	schemaText, err := replySchema(&semanticRolesReply{})
	if err != nil {
		return models.FailedAIOutcome(err)
	}
	prompt, err := internal.ParsePrompt(semanticRolesPromptTemplate, SemanticRolesPromptTemplateData{
		Sentence: sentence,
		Schema:   schemaText,
	})
	if err != nil {
		return models.FailedAIOutcome(err)
	}

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return models.FailedAIOutcome(err)
	}

	var reply semanticRolesReply
	if err := decodeReply(raw, &reply); err != nil {
		return models.FailedAIOutcome(err)
	}
	if reply.MermaidCode == "" && len(reply.Roles) == 0 {
		return models.FailedAIOutcome(errors.New("reply did not contain mermaid_code or roles"))
	}

	return models.AIOutcome{
		MermaidCode: reply.MermaidCode,
		Roles:       reply.Roles,
		Explanation: reply.Explanation,
	}
}

// generate makes exactly one outbound call. No retry, no backoff: a
// transient failure surfaces immediately to the in-band handler above.
func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	if c.llm == nil {
		return "", ErrNotConfigured
	}

	if c.maxPromptTokens > 0 && c.tkm != nil {
		if n := len(c.tkm.Encode(prompt, nil, nil)); n > c.maxPromptTokens {
			return "", fmt.Errorf("prompt exceeds token budget: %d > %d", n, c.maxPromptTokens)
		}
	}

	callID := uuid.New().String()
	log.Debugf("genai call %s: model=%s", callID, c.model)

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	resp, err := c.llm.GenerateContent(
		ctx,
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, prompt)},
		llms.WithTemperature(0),
		llms.WithJSONMode(),
	)
	if err != nil {
		log.Warnf("genai call %s failed: %v", callID, err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return resp.Choices[0].Content, nil
}

// replySchema renders the JSON Schema of the expected reply shape; it is
// embedded into the prompt so the model knows the exact contract.
func replySchema(shape any) (string, error) {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(shape)
	if schema == nil {
		return "", errors.New("failed to reflect reply schema")
	}
	out, err := schema.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// decodeReply parses the model output into the typed reply, tolerating
// markdown code fences around the JSON body. The upstream response is
// never assumed to be well-formed.
func decodeReply(raw string, into any) error {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")
	body = strings.TrimSpace(body)

	if err := json.Unmarshal([]byte(body), into); err != nil {
		return fmt.Errorf("model reply is not valid JSON: %w", err)
	}
	return nil
}
