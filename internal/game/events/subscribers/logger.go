package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	// If no filter is set, interested in all events
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	// Create the base event log
	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	// Add event-specific fields based on type
	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Strs("players", e.Players).
			Int("starting_cash", e.StartingCash).
			Int("board_size", e.BoardSize)

	case *events.GameEndedEvent:
		logEvent.
			Strs("winners", e.Winners).
			Strs("losers", e.Losers).
			Int("rounds", e.Rounds).
			Bool("end_requested", e.EndRequested).
			Dur("duration", e.Duration)

	case *events.GameQuitEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Int("round", e.Metadata.Round)

	case *events.RoundStartedEvent:
		logEvent.
			Int("round", e.Round).
			Int("active_players", e.ActivePlayers)

	case *events.RoundEndedEvent:
		logEvent.
			Int("round", e.Round).
			Int("active_players", e.ActivePlayers).
			Dur("round_duration", e.Duration)

	case *events.PlayerMovedEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Int("round", e.Metadata.Round).
			Int("roll", e.Roll).
			Int("from", e.From).
			Int("to", e.To).
			Str("field", e.Field).
			Bool("passed_start", e.PassedStart)

	case *events.RentPaidEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Str("owner", e.Owner).
			Str("field", e.Field).
			Int("amount", e.Amount).
			Int("shortfall", e.Shortfall)

	case *events.TaxPaidEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Str("field", e.Field).
			Int("amount", e.Amount).
			Int("shortfall", e.Shortfall)

	case *events.ChanceDrawnEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Int("drawn", e.Drawn).
			Int("settled", e.Settled).
			Int("shortfall", e.Shortfall)

	case *events.BonusCreditedEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Str("reason", e.Reason).
			Int("amount", e.Amount)

	case *events.PropertyPurchasedEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Str("field", e.Field).
			Int("position", e.Position).
			Int("price", e.Price)

	case *events.BuildingBuiltEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Str("field", e.Field).
			Str("building", e.Building).
			Int("added", e.Added).
			Bool("hotel", e.Hotel).
			Int("cost", e.Cost)

	case *events.PlayerEliminatedEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Int("round", e.Metadata.Round).
			Int("cash", e.Cash).
			Int("properties", e.Properties).
			Int("elimination_order", e.Order)

	case *events.StateTransitionEvent:
		logEvent.
			Int("round", e.Round).
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	// Send the log
	logEvent.Msg("Game event")
}
