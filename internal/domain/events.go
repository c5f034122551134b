package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLoadRequested EventType = "LoadRequested"
	EventLoadStarted   EventType = "LoadStarted"
	EventLoadCompleted EventType = "LoadCompleted"
	EventLoadFailed    EventType = "LoadFailed"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadRequestedEvent asks the loader to fetch a dataset
type LoadRequestedEvent struct {
	Source string
}

func (e LoadRequestedEvent) Type() EventType { return EventLoadRequested }

// LoadStartedEvent is emitted when the dataset fetch begins
type LoadStartedEvent struct {
	Source string
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// LoadCompletedEvent carries the parsed dataset
type LoadCompletedEvent struct {
	Source  string
	Records []Record
}

func (e LoadCompletedEvent) Type() EventType { return EventLoadCompleted }

// LoadFailedEvent is emitted when fetching or parsing fails
type LoadFailedEvent struct {
	Source string
	Err    error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Source string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
