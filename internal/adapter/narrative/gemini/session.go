package gemini

import (
	"context"
	"slices"
	"sync"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"
)

// session owns the chat history of one adventure. History grows only when a
// call succeeds, so a retried choice is sent against the same context.
type session struct {
	id string
	gw *Gateway

	mu      sync.Mutex
	history []content
}

func (s *session) ID() string { return s.id }

func (s *session) AdvanceStory(ctx context.Context, req ports.AdvanceRequest) (adventure.ScenePayload, error) {
	return s.send(ctx, "advance story", advancePrompt(req))
}

func (s *session) send(ctx context.Context, op, prompt string) (adventure.ScenePayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := content{Role: "user", Parts: []part{{Text: prompt}}}
	contents := append(slices.Clone(s.history), user)
	text, err := s.gw.generate(ctx, op, contents, sceneSchema)
	if err != nil {
		return adventure.ScenePayload{}, err
	}
	p, err := decodeScene(op, text)
	if err != nil {
		return adventure.ScenePayload{}, err
	}
	s.history = append(s.history, user, content{Role: "model", Parts: []part{{Text: text}}})
	return p, nil
}
