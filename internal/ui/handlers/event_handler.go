package handlers

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"yubin/internal/eventbus"
	"yubin/internal/ui/coordinator"
	"yubin/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state   *state.AppState
	session *coordinator.Coordinator
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, session *coordinator.Coordinator) *EventHandler {
	return &EventHandler{
		state:   appState,
		session: session,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LoadStartedEvent:
		h.state.SetLoading(e.Source)

	case eventbus.LoadCompletedEvent:
		if err := h.session.CompleteLoad(e.Records); err != nil {
			log.Printf("Ignoring load result from %s: %v", e.Source, err)
			return nil
		}
		h.state.SetLoaded()
		h.state.StatusMessage = fmt.Sprintf("%d addresses loaded", len(e.Records))

	case eventbus.LoadFailedEvent:
		if err := h.session.FailLoad(e.Err); err != nil {
			log.Printf("Ignoring load failure from %s: %v", e.Source, err)
			return nil
		}
		h.state.SetLoadFailed(e.Err)

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}
