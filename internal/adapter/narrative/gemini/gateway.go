// Package gemini talks to the Gemini generateContent API.
package gemini

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel    = "gemini-2.5-flash"
	DefaultTimeout  = 90 * time.Second
)

type Config struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// doer is the part of the hertz client the gateway needs.
type doer interface {
	DoTimeout(ctx context.Context, req *protocol.Request, resp *protocol.Response, timeout time.Duration) error
}

type Gateway struct {
	cfg    Config
	client doer
	newID  func() string
}

func New(cfg Config) (*Gateway, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	cfg = withDefaults(cfg)
	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithClientReadTimeout(cfg.Timeout),
		client.WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}),
	)
	if err != nil {
		return nil, fmt.Errorf("build gemini client: %w", err)
	}
	return &Gateway{cfg: cfg, client: c, newID: uuid.NewString}, nil
}

func withDefaults(cfg Config) Config {
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return cfg
}

func (g *Gateway) StartStory(ctx context.Context, setup adventure.CharacterSetup) (ports.NarrativeSession, adventure.ScenePayload, error) {
	s := &session{id: g.newID(), gw: g}
	p, err := s.send(ctx, "start story", startPrompt(setup))
	if err != nil {
		return nil, adventure.ScenePayload{}, err
	}
	hlog.CtxInfof(ctx, "gemini session started id=%s", s.id)
	return s, p, nil
}

// ResumeStory seeds a session with the restored scene. No request is sent.
func (g *Gateway) ResumeStory(ctx context.Context, req ports.ResumeRequest) (ports.NarrativeSession, error) {
	s := &session{id: g.newID(), gw: g}
	seed, err := json.Marshal(map[string]string{"story": req.Story})
	if err != nil {
		return nil, ports.FormatError("resume story", err)
	}
	s.history = []content{
		{Role: "user", Parts: []part{{Text: resumePrompt(req)}}},
		{Role: "model", Parts: []part{{Text: string(seed)}}},
	}
	hlog.CtxInfof(ctx, "gemini session resumed id=%s", s.id)
	return s, nil
}

// RegenerateChoices is a one-off call outside any session, so the reroll
// prompt never enters the story history.
func (g *Gateway) RegenerateChoices(ctx context.Context, req ports.RegenerateRequest) (adventure.ScenePayload, error) {
	const op = "regenerate choices"
	contents := []content{{Role: "user", Parts: []part{{Text: regeneratePrompt(req)}}}}
	text, err := g.generate(ctx, op, contents, choicesSchema)
	if err != nil {
		return adventure.ScenePayload{}, err
	}
	var out struct {
		Choices []adventure.Choice `json:"choices"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return adventure.ScenePayload{}, ports.FormatError(op, err)
	}
	p := adventure.ScenePayload{Story: req.StoryText, Choices: out.Choices}
	if err := p.Validate(); err != nil {
		return adventure.ScenePayload{}, ports.FormatError(op, err)
	}
	return p, nil
}

// generate sends one generateContent request and returns the model text.
func (g *Gateway) generate(ctx context.Context, op string, contents []content, schema map[string]any) (string, error) {
	body, err := json.Marshal(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          contents,
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	})
	if err != nil {
		return "", ports.FormatError(op, err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(fmt.Sprintf("%s/%s:generateContent", g.cfg.Endpoint, g.cfg.Model))
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)
	req.SetBody(body)

	if err := g.client.DoTimeout(ctx, req, resp, g.cfg.Timeout); err != nil {
		hlog.CtxWarnf(ctx, "gemini %s failed: %v", op, err)
		return "", ports.TransportError(op, err)
	}
	status := resp.StatusCode()
	raw := resp.Body()
	if status < 200 || status >= 300 {
		return "", classifyStatus(op, status, raw)
	}

	if reason := gjson.GetBytes(raw, "promptFeedback.blockReason").String(); reason != "" {
		return "", ports.TransportError(op, fmt.Errorf("prompt blocked: %s", reason))
	}
	text := gjson.GetBytes(raw, "candidates.0.content.parts.0.text").String()
	if strings.TrimSpace(text) == "" {
		return "", ports.TransportError(op, errors.New("empty response text"))
	}
	return stripFence(text), nil
}

func classifyStatus(op string, status int, raw []byte) error {
	apiStatus := gjson.GetBytes(raw, "error.status").String()
	message := gjson.GetBytes(raw, "error.message").String()
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	err := fmt.Errorf("status %d: %s", status, message)
	if status == consts.StatusTooManyRequests || apiStatus == "RESOURCE_EXHAUSTED" ||
		strings.Contains(strings.ToLower(message), "quota") {
		return ports.QuotaError(op, err)
	}
	return ports.TransportError(op, err)
}

// stripFence removes a ```json wrapper some models add despite the mime type.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func decodeScene(op, text string) (adventure.ScenePayload, error) {
	var p adventure.ScenePayload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return adventure.ScenePayload{}, ports.FormatError(op, err)
	}
	if err := p.Validate(); err != nil {
		return adventure.ScenePayload{}, ports.FormatError(op, err)
	}
	return p, nil
}
