package curriculum

import (
	"sort"

	"github.com/goliatone/go-questions/internal/logging"
	"github.com/goliatone/go-questions/pkg/interfaces"
)

// Service exposes read-only access to the topic table and company list. The
// generator borrows this data per build; it never mutates it.
type Service interface {
	Topic(day int) (Topic, error)
	Days() []int
	Companies() []string
}

// Config seeds a curriculum service. Zero-value fields fall back to the
// built-in tables.
type Config struct {
	Topics    map[int]string
	Companies []string
	Logger    interfaces.Logger
}

// NewService builds an immutable curriculum service. The supplied tables are
// copied so later caller mutations cannot leak into lookups.
func NewService(cfg Config) (Service, error) {
	topics := cfg.Topics
	if topics == nil {
		topics = DefaultTopics()
	}
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}

	companies := cfg.Companies
	if companies == nil {
		companies = DefaultCompanies()
	}
	if len(companies) == 0 {
		return nil, ErrNoCompanies
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	byDay := make(map[int]Topic, len(topics))
	days := make([]int, 0, len(topics))
	for day, title := range topics {
		byDay[day] = NewTopic(day, title)
		days = append(days, day)
	}
	sort.Ints(days)

	return &service{
		topics:    byDay,
		days:      days,
		companies: append([]string(nil), companies...),
		logger:    logger,
	}, nil
}

type service struct {
	topics    map[int]Topic
	days      []int
	companies []string
	logger    interfaces.Logger
}

func (s *service) Topic(day int) (Topic, error) {
	topic, ok := s.topics[day]
	if !ok {
		s.logger.Debug("curriculum.topic.missing", "day", day)
		return Topic{}, &DayNotFoundError{Day: day}
	}
	return topic, nil
}

func (s *service) Days() []int {
	return append([]int(nil), s.days...)
}

func (s *service) Companies() []string {
	return append([]string(nil), s.companies...)
}
