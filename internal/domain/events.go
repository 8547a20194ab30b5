package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventHeaderStateChanged EventType = "HeaderStateChanged"
	EventSampleDropped      EventType = "SampleDropped"
	EventDecisionSuppressed EventType = "DecisionSuppressed"
	EventStrategyChanged    EventType = "StrategyChanged"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// HeaderStateChangedEvent is emitted when the header store changes value
type HeaderStateChangedEvent struct {
	From     HeaderState
	To       HeaderState
	Strategy Strategy
	Offset   float64 // last sampled offset, for the history view
}

func (e HeaderStateChangedEvent) Type() EventType { return EventHeaderStateChanged }

// SampleDroppedEvent is emitted when a sample arrives while the header is animating
type SampleDroppedEvent struct {
	Offset float64
}

func (e SampleDroppedEvent) Type() EventType { return EventSampleDropped }

// DecisionSuppressedEvent is emitted when an index decision repeats the previous one
type DecisionSuppressedEvent struct {
	Decision Decision
}

func (e DecisionSuppressedEvent) Type() EventType { return EventDecisionSuppressed }

// StrategyChangedEvent is emitted when the user switches classifiers
type StrategyChangedEvent struct {
	From Strategy
	To   Strategy
}

func (e StrategyChangedEvent) Type() EventType { return EventStrategyChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
