// Package app wires the conversion core to its surroundings: it splits a raw
// query, runs the number engine, and records successful queries in history.
package app

import (
	"strings"
	"time"

	"github.com/corey/radix/internal/domain/number"
	"github.com/corey/radix/internal/ports"
	"go.uber.org/zap"
)

// NoQueryMessage is shown when the query carries no number at all.
const NoQueryMessage = "Provide a number with an optional base"

// Service answers queries. It is safe to construct with a nil history.
type Service struct {
	history ports.History
	limit   int
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a service. history may be nil to disable recording;
// a nil logger is replaced with a no-op logger.
func NewService(history ports.History, limit int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		history: history,
		limit:   limit,
		logger:  logger,
		now:     time.Now,
	}
}

// SplitQuery splits raw on whitespace into a number and an optional hint.
// Tokens after the second are ignored. ok is false for a blank query.
func SplitQuery(raw string) (num string, hint *string, ok bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", nil, false
	}
	if len(fields) > 1 {
		hint = &fields[1]
	}
	return fields[0], hint, true
}

// Query converts raw into result records. Failures come back as exactly one
// invalid record carrying the error message.
func (s *Service) Query(raw string) []number.Record {
	num, hint, ok := SplitQuery(raw)
	if !ok {
		return []number.Record{number.MessageRecord(NoQueryMessage)}
	}

	parsed, err := number.Parse(num, hint)
	if err != nil {
		s.logger.Debug("query rejected", zap.String("query", raw), zap.Error(err))
		return []number.Record{number.ErrorRecord(err)}
	}
	s.logger.Debug("query parsed",
		zap.String("number", num),
		zap.Stringer("base", parsed.Base),
		zap.Int64("value", parsed.Value))

	s.record(strings.Join(strings.Fields(raw), " "), parsed)
	return number.Convert(parsed)
}

// record appends a history entry. Storage trouble never fails a query.
func (s *Service) record(query string, parsed number.Parsed) {
	if s.history == nil {
		return
	}
	entry := ports.HistoryEntry{
		Query: query,
		Base:  parsed.Base.String(),
		Value: parsed.Value,
		At:    s.now(),
	}
	if err := s.history.Append(entry, s.limit); err != nil {
		s.logger.Warn("history append failed", zap.Error(err))
	}
}
