package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingokit/lingo/config"
	"github.com/lingokit/lingo/pkg/grammar"
	"github.com/lingokit/lingo/pkg/models"
)

// fakeAnnotator returns canned annotations without loading pipelines.
type fakeAnnotator struct {
	err error
}

func (f *fakeAnnotator) POS(_ context.Context, text string) ([]models.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.Token{
		{Text: "the", POS: "DET", Tag: "DT", Lemma: "the", Dep: "det", Start: 0, End: 3},
		{Text: "cat", POS: "NOUN", Tag: "NN", Lemma: "cat", Dep: "nsubj", Start: 4, End: 7},
		{Text: "sat", POS: "VERB", Tag: "VBD", Lemma: "sit", Dep: "ROOT", Start: 8, End: 11},
	}, nil
}

func (f *fakeAnnotator) NER(_ context.Context, text string) ([]models.Entity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.Entity{{Text: "London", Label: "GPE", Start: 0, End: 6}}, nil
}

func (f *fakeAnnotator) Dependency(_ context.Context, _ string) (string, []models.DependencyEdge, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return "graph TD", []models.DependencyEdge{
		{Text: "sat", Dep: "ROOT", Head: "sat", POS: "VERB", Children: []string{"cat"}},
	}, nil
}

func (f *fakeAnnotator) Constituency(_ context.Context, _ string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "graph TD", "(S (NP the cat) (VP sat))", nil
}

// fakeAI returns a canned outcome, honoring the in-band failure policy.
type fakeAI struct {
	outcome models.AIOutcome
}

func (f *fakeAI) CFGTree(_ context.Context, _ string) models.AIOutcome       { return f.outcome }
func (f *fakeAI) SemanticRoles(_ context.Context, _ string) models.AIOutcome { return f.outcome }

// fakeTranslator mirrors the real adapter's validation behavior.
type fakeTranslator struct {
	upstreamErr error
}

func (f *fakeTranslator) Translate(
	_ context.Context,
	text string,
	target string,
) (*models.TranslationResult, error) {
	if text == "" {
		return nil, models.NewValidationError("text cannot be empty")
	}
	if _, ok := f.Languages()[target]; !ok {
		return nil, models.NewValidationError("unsupported language code: " + target)
	}
	if f.upstreamErr != nil {
		return nil, models.NewUpstreamError("translation", f.upstreamErr)
	}
	return &models.TranslationResult{
		OriginalText:   text,
		TranslatedText: "hola",
		SourceLanguage: "en",
		TargetLanguage: target,
	}, nil
}

func (f *fakeTranslator) Languages() map[string]string {
	return map[string]string{"es": "spanish", "fr": "french"}
}

func testAppState() *models.AppState {
	cfg := &config.Config{}
	cfg.Server.RequestTimeoutSeconds = 5
	return &models.AppState{
		Annotator:  &fakeAnnotator{},
		Grammar:    grammar.NewParser(),
		AI:         &fakeAI{outcome: models.AIOutcome{MermaidCode: "graph TD", Explanation: "ok"}},
		Translator: &fakeTranslator{},
		Config:     cfg,
	}
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func TestRootRoute(t *testing.T) {
	server := httptest.NewServer(setupRouter(testAppState()))
	defer server.Close()

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["message"], "running")
	assert.Equal(t, config.VersionString, resp.Header.Get("X-Lingo-Version"))
}

func TestAnalyzeRoute(t *testing.T) {
	server := httptest.NewServer(setupRouter(testAppState()))
	defer server.Close()

	resp := postJSON(t, server.URL+"/analyze", models.TextRequest{Text: "the cat sat"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.AnalysisResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Tokens, 3)
	assert.Len(t, body.Entities, 1)
}

func TestPOSRouteMissingText(t *testing.T) {
	server := httptest.NewServer(setupRouter(testAppState()))
	defer server.Close()

	resp := postJSON(t, server.URL+"/pos", map[string]string{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPOSRouteConfigurationFault(t *testing.T) {
	appState := testAppState()
	appState.Annotator = &fakeAnnotator{
		err: models.NewConfigurationError("tagging model missing", errors.New("no such file")),
	}
	server := httptest.NewServer(setupRouter(appState))
	defer server.Close()

	resp := postJSON(t, server.URL+"/pos", models.TextRequest{Text: "the cat sat"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestDependencyRoute(t *testing.T) {
	server := httptest.NewServer(setupRouter(testAppState()))
	defer server.Close()

	resp := postJSON(t, server.URL+"/dependency", models.TextRequest{Text: "the cat sat"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.DependencyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "the cat sat", body.Sentence)
	assert.NotEmpty(t, body.Diagram)
	assert.NotEmpty(t, body.Dependencies)
}

func TestConstituencyRoute(t *testing.T) {
	server := httptest.NewServer(setupRouter(testAppState()))
	defer server.Close()

	resp := postJSON(t, server.URL+"/constituency", models.TextRequest{Text: "the cat sat"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.ConstituencyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.TextTree, "(S ")
}

func TestCFGRouteSuccess(t *testing.T) {
	server := httptest.NewServer(setupRouter(testAppState()))
	defer server.Close()

	resp := postJSON(t, server.URL+"/cfg", models.TextRequest{Text: "the cat sat"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.CFGParseResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Trees)
	assert.NotEmpty(t, body.GrammarRules)
}

func TestCFGRouteCoverageMissIsNotAnError(t *testing.T) {
	server := httptest.NewServer(setupRouter(testAppState()))
	defer server.Close()

	resp := postJSON(t, server.URL+"/cfg", models.TextRequest{Text: "Apple is buying a startup in the U.K."})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.CFGParseResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Empty(t, body.Trees)
	assert.NotEmpty(t, body.ErrorMessage)
}

func TestCFGGeminiRouteInBandFailure(t *testing.T) {
	appState := testAppState()
	appState.AI = &fakeAI{outcome: models.FailedAIOutcome(errors.New("upstream exploded"))}
	server := httptest.NewServer(setupRouter(appState))
	defer server.Close()

	resp := postJSON(t, server.URL+"/cfg-gemini", models.TextRequest{Text: "the cat sat"})
	defer resp.Body.Close()
	// AI faults are in-band: still a 200 with the failure in explanation.
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.CFGTreeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.MermaidCode)
	assert.Contains(t, body.Explanation, "upstream exploded")
}

func TestSemanticRoute(t *testing.T) {
	appState := testAppState()
	appState.AI = &fakeAI{outcome: models.AIOutcome{
		MermaidCode: "graph TD",
		Roles:       []models.SemanticRole{{Word: "the cat", Role: "Agent", Predicate: "sat"}},
		Explanation: "ok",
	}}
	server := httptest.NewServer(setupRouter(appState))
	defer server.Close()

	resp := postJSON(t, server.URL+"/semantic", models.TextRequest{Text: "the cat sat"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.SemanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Roles, 1)
	assert.Equal(t, "Agent", body.Roles[0].Role)
}

func TestSemanticRouteEmptyRolesIsArray(t *testing.T) {
	appState := testAppState()
	appState.AI = &fakeAI{outcome: models.FailedAIOutcome(errors.New("nope"))}
	server := httptest.NewServer(setupRouter(appState))
	defer server.Close()

	resp := postJSON(t, server.URL+"/semantic", models.TextRequest{Text: "the cat sat"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.JSONEq(t, "[]", string(body["roles"]))
}

func TestTranslateRouteStatuses(t *testing.T) {
	testCases := []struct {
		name           string
		request        models.TranslateRequest
		upstreamErr    error
		expectedStatus int
	}{
		{
			name:           "success",
			request:        models.TranslateRequest{Text: "hello", TargetLanguage: "es"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty text",
			request:        models.TranslateRequest{Text: "", TargetLanguage: "es"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unsupported language",
			request:        models.TranslateRequest{Text: "hello", TargetLanguage: "zz"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "upstream fault",
			request:        models.TranslateRequest{Text: "hello", TargetLanguage: "es"},
			upstreamErr:    errors.New("service unreachable"),
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			appState := testAppState()
			appState.Translator = &fakeTranslator{upstreamErr: tc.upstreamErr}
			server := httptest.NewServer(setupRouter(appState))
			defer server.Close()

			resp := postJSON(t, server.URL+"/translate", tc.request)
			defer resp.Body.Close()
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
		})
	}
}

func TestLanguagesRoute(t *testing.T) {
	server := httptest.NewServer(setupRouter(testAppState()))
	defer server.Close()

	resp, err := http.Get(server.URL + "/languages")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var languages map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&languages))
	assert.NotEmpty(t, languages)
	assert.Equal(t, "spanish", languages["es"])
}

func TestHealthzRoute(t *testing.T) {
	server := httptest.NewServer(setupRouter(testAppState()))
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
