package eventbus

import (
	"errors"
	"fmt"
)

var (
	ErrTopicEmpty         = errors.New("err topic empty")
	ErrHandlerNil         = errors.New("err handler nil")
	ErrTopicNotRegistered = errors.New("err topic not registered")
)

func NewTopicNotRegisteredError(topic Topic) error {
	return fmt.Errorf("topic %q is not registered, call Setup before Subscribe: %w", topic.String(), ErrTopicNotRegistered)
}
