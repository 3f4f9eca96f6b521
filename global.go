package eventbus

import (
	"context"
	"sync"
)

var (
	defaultEventBus *LocalEventBus
	defaultOnce     sync.Once
)

// Default 返回进程内共享的事件总线，首次访问时创建
func Default() *LocalEventBus {
	defaultOnce.Do(func() {
		defaultEventBus = NewLocalEventBus()
	})
	return defaultEventBus
}

func Setup(topics ...Topic) error {
	return Default().Setup(topics...)
}

func Subscribe(topic Topic, handler Handler) (UnsubscribeFunc, error) {
	return Default().Subscribe(topic, handler)
}

func Once(topic Topic, handler Handler) (UnsubscribeFunc, error) {
	return Default().Once(topic, handler)
}

func Unsubscribe(topic Topic, handler Handler) {
	Default().Unsubscribe(topic, handler)
}

func Emit(ctx context.Context, topic Topic, args ...interface{}) {
	Default().Emit(ctx, topic, args...)
}

func Clear(topic Topic) {
	Default().Clear(topic)
}

func Reset() {
	Default().Reset()
}

func GetTopicInfo() []TopicInfo {
	return Default().GetTopicInfo()
}
