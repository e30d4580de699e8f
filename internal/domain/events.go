package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIconDiscovered  EventType = "IconDiscovered"
	EventIconRemoved     EventType = "IconRemoved"
	EventScanStarted     EventType = "ScanStarted"
	EventScanCompleted   EventType = "ScanCompleted"
	EventScanRequested   EventType = "ScanRequested"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchCleared   EventType = "SearchCleared"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IconDiscoveredEvent is emitted when an icon component file is found
type IconDiscoveredEvent struct {
	Icon Icon
}

func (e IconDiscoveredEvent) Type() EventType { return EventIconDiscovered }

// IconRemovedEvent is emitted when a watched icon component file disappears
type IconRemovedEvent struct {
	Name   string
	Source string
}

func (e IconRemovedEvent) Type() EventType { return EventIconRemoved }

// ScanStartedEvent is emitted when icon discovery begins
type ScanStartedEvent struct {
	Paths []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when icon discovery completes
type ScanCompletedEvent struct {
	IconsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent is emitted to request a new scan
type ScanRequestedEvent struct {
	Paths []string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// SearchCompletedEvent is emitted after a query has been ranked
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
	TopMatch   string // "" if none
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchClearedEvent is emitted when the query is emptied
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ConfigLoadedEvent is emitted after the configuration has been read
type ConfigLoadedEvent struct {
	Path     string
	IconsDir string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the configuration has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when a background operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
