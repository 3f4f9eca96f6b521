package eventbus

import (
	"context"
)

type EventBus interface {
	Setup(topics ...Topic) error
	Subscribe(topic Topic, handler Handler) (UnsubscribeFunc, error)
	Once(topic Topic, handler Handler) (UnsubscribeFunc, error)
	Unsubscribe(topic Topic, handler Handler)
	Emit(ctx context.Context, topic Topic, args ...interface{})
	Clear(topic Topic)
	Reset()
	GetTopicInfo() []TopicInfo
}
