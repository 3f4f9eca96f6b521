package eventbus

import (
	"context"
)

type Topic string

func (topic Topic) String() string {
	return string(topic)
}

type Handler func(ctx context.Context, args ...interface{}) error

type UnsubscribeFunc func()

type EventBusOptional struct {
	errorHandler ErrorHandler
}

type EventBusOption func(optional *EventBusOptional)

type ErrorHandler func(option ErrorOption)

type ErrorOption struct {
	Title string
	Topic Topic
	Uid   string
	Args  string
	Panic interface{}
	Error error
}

func WithErrHandlerOption(errorHandler ErrorHandler) EventBusOption {
	if errorHandler == nil {
		panic("err handler is nil")
	}
	return func(optional *EventBusOptional) {
		optional.errorHandler = errorHandler
	}
}

type TopicInfo struct {
	Topic           Topic
	SubscriberCount int
}
