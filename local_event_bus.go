package eventbus

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// subscription 一条订阅记录，id在总线内唯一且不复用
// Once包装器的ptr为0，既不参与去重，也不会被按值退订命中
type subscription struct {
	id      uint64
	ptr     uintptr
	handler Handler
}

type LocalEventBus struct {
	mu           sync.RWMutex
	nextID       uint64
	registered   map[Topic]struct{}
	subscribers  map[Topic][]*subscription
	errorHandler ErrorHandler
}

func NewLocalEventBus(options ...EventBusOption) *LocalEventBus {
	optional := BuildEventBusOptional(options...)
	eventBus := &LocalEventBus{
		registered:  make(map[Topic]struct{}),
		subscribers: make(map[Topic][]*subscription),
	}
	eventBus.errorHandler = optional.errorHandler
	if eventBus.errorHandler == nil {
		eventBus.errorHandler = StderrErrorHandler
	}
	var _ EventBus = eventBus
	return eventBus
}

// StderrErrorHandler 默认的诊断处理器，每个失败向标准错误输出一行
func StderrErrorHandler(option ErrorOption) {
	if option.Panic != nil {
		fmt.Fprintf(os.Stderr, "%s topic:%s uid:%s args:%s panic:%v\n", option.Title, option.Topic, option.Uid, option.Args, option.Panic)
		return
	}
	fmt.Fprintf(os.Stderr, "%s topic:%s uid:%s args:%s err:%v\n", option.Title, option.Topic, option.Uid, option.Args, option.Error)
}

func (eventBus *LocalEventBus) Setup(topics ...Topic) error {
	//先整体校验，有非法项则不做任何修改
	for _, topic := range topics {
		if len(topic.String()) == 0 {
			return ErrTopicEmpty
		}
	}
	eventBus.mu.Lock()
	defer eventBus.mu.Unlock()
	for _, topic := range topics {
		eventBus.registered[topic] = struct{}{}
		if eventBus.subscribers[topic] == nil {
			eventBus.subscribers[topic] = make([]*subscription, 0)
		}
	}
	return nil
}

func (eventBus *LocalEventBus) Subscribe(topic Topic, handler Handler) (UnsubscribeFunc, error) {
	if handler == nil {
		return nil, ErrHandlerNil
	}
	ptr := HandlerPointer(handler)
	eventBus.mu.Lock()
	defer eventBus.mu.Unlock()
	if _, ok := eventBus.registered[topic]; !ok {
		return nil, NewTopicNotRegisteredError(topic)
	}
	//同一个handler重复订阅不新增记录，返回已有订阅的退订函数
	for _, sub := range eventBus.subscribers[topic] {
		if sub.ptr != 0 && sub.ptr == ptr {
			return eventBus.unsubscribeFunc(topic, sub.id), nil
		}
	}
	sub := &subscription{
		id:      eventBus.nextID,
		ptr:     ptr,
		handler: handler,
	}
	eventBus.nextID++
	eventBus.subscribers[topic] = append(eventBus.subscribers[topic], sub)
	return eventBus.unsubscribeFunc(topic, sub.id), nil
}

func (eventBus *LocalEventBus) Once(topic Topic, handler Handler) (UnsubscribeFunc, error) {
	if handler == nil {
		return nil, ErrHandlerNil
	}
	eventBus.mu.Lock()
	defer eventBus.mu.Unlock()
	if _, ok := eventBus.registered[topic]; !ok {
		return nil, NewTopicNotRegisteredError(topic)
	}
	sub := &subscription{
		id: eventBus.nextID,
	}
	eventBus.nextID++
	var fired int32
	//先从在线集合移除自己再调用原handler，
	//handler内再次Emit同一topic时不会再看到这个包装器
	sub.handler = func(ctx context.Context, args ...interface{}) error {
		if !atomic.CompareAndSwapInt32(&fired, 0, 1) {
			return nil
		}
		eventBus.removeByID(topic, sub.id)
		return handler(ctx, args...)
	}
	eventBus.subscribers[topic] = append(eventBus.subscribers[topic], sub)
	return eventBus.unsubscribeFunc(topic, sub.id), nil
}

func (eventBus *LocalEventBus) Unsubscribe(topic Topic, handler Handler) {
	ptr := HandlerPointer(handler)
	if ptr == 0 {
		return
	}
	eventBus.mu.Lock()
	defer eventBus.mu.Unlock()
	subs, ok := eventBus.subscribers[topic]
	if !ok {
		return
	}
	kept := make([]*subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.ptr != 0 && sub.ptr == ptr {
			continue
		}
		kept = append(kept, sub)
	}
	eventBus.subscribers[topic] = kept
}

func (eventBus *LocalEventBus) Emit(ctx context.Context, topic Topic, args ...interface{}) {
	if ctx == nil {
		ctx = context.Background()
	}
	//以调用时刻的快照分发，期间新增的订阅不参与本次分发
	subscriptions := eventBus.getSubscriptions(topic)
	if len(subscriptions) == 0 {
		return
	}
	uid := uuid.New().String()
	num := int64(len(subscriptions))
	weight := semaphore.NewWeighted(num)
	if !weight.TryAcquire(num) {
		return
	}
	for _, sub := range subscriptions {
		handler := sub.handler
		go func() {
			defer weight.Release(1)
			defer func() {
				if p := recover(); p != nil {
					eventBus.errorHandler(ErrorOption{
						Title: TitleHandlerPanic,
						Topic: topic,
						Uid:   uid,
						Args:  FormatArgs(args),
						Panic: p,
					})
				}
			}()
			if err := handler(ctx, args...); err != nil {
				eventBus.errorHandler(ErrorOption{
					Title: TitleHandlerError,
					Topic: topic,
					Uid:   uid,
					Args:  FormatArgs(args),
					Error: err,
				})
			}
		}()
	}
	//等待全部订阅者结束，失败的订阅者不影响等待结果
	_ = weight.Acquire(ctx, num)
}

func (eventBus *LocalEventBus) Clear(topic Topic) {
	eventBus.mu.Lock()
	defer eventBus.mu.Unlock()
	if _, ok := eventBus.subscribers[topic]; !ok {
		return
	}
	eventBus.subscribers[topic] = make([]*subscription, 0)
}

func (eventBus *LocalEventBus) Reset() {
	eventBus.mu.Lock()
	defer eventBus.mu.Unlock()
	eventBus.registered = make(map[Topic]struct{})
	eventBus.subscribers = make(map[Topic][]*subscription)
}

func (eventBus *LocalEventBus) GetTopicInfo() []TopicInfo {
	eventBus.mu.RLock()
	result := make([]TopicInfo, 0, len(eventBus.registered))
	for topic := range eventBus.registered {
		result = append(result, TopicInfo{
			Topic:           topic,
			SubscriberCount: len(eventBus.subscribers[topic]),
		})
	}
	eventBus.mu.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		return result[i].SubscriberCount > result[j].SubscriberCount
	})
	return result
}

func (eventBus *LocalEventBus) getSubscriptions(topic Topic) []*subscription {
	eventBus.mu.RLock()
	defer eventBus.mu.RUnlock()
	return copySubscriptions(eventBus.subscribers[topic])
}

func (eventBus *LocalEventBus) unsubscribeFunc(topic Topic, id uint64) UnsubscribeFunc {
	return func() {
		eventBus.removeByID(topic, id)
	}
}

// removeByID 退订函数和Once包装器共用的移除入口，topic不存在时静默返回
func (eventBus *LocalEventBus) removeByID(topic Topic, id uint64) {
	eventBus.mu.Lock()
	defer eventBus.mu.Unlock()
	subs, ok := eventBus.subscribers[topic]
	if !ok {
		return
	}
	for i, sub := range subs {
		if sub.id == id {
			eventBus.subscribers[topic] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}
