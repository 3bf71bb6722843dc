package curriculum

import (
	"errors"
	"fmt"
)

var (
	ErrTopicNotFound         = errors.New("curriculum: no topic registered for day")
	ErrNoTopics              = errors.New("curriculum: at least one topic is required")
	ErrNoCompanies           = errors.New("curriculum: at least one company is required")
	ErrDuplicateDay          = errors.New("curriculum: duplicate day in override set")
	ErrOverrideDayInvalid    = errors.New("curriculum: override day must be positive")
	ErrOverrideTitleRequired = errors.New("curriculum: override title is required")
)

// DayNotFoundError reports a topic lookup for a day missing from the table.
type DayNotFoundError struct {
	Day int
}

func (e *DayNotFoundError) Error() string {
	if e == nil {
		return ErrTopicNotFound.Error()
	}
	return fmt.Sprintf("%s: day=%d", ErrTopicNotFound.Error(), e.Day)
}

func (e *DayNotFoundError) Unwrap() error {
	return ErrTopicNotFound
}
