package main

import (
	"context"
	"fmt"
	"time"

	eventbus "github.com/abofs/stonyx-events"
)

// <1>定义主题
const UserCreated = eventbus.Topic("user_created")

func main() {
	//<2>创建事件总线，自定义诊断处理器（不传则默认输出到标准错误）
	eventBus := eventbus.NewLocalEventBus(eventbus.WithErrHandlerOption(func(option eventbus.ErrorOption) {
		fmt.Println("诊断:", option.Title, option.Topic, option.Error)
	}))
	//<3>注册主题，订阅前必须先注册
	if err := eventBus.Setup(UserCreated); err != nil {
		panic(err)
	}
	//<4>订阅主题，返回退订函数
	unsubscribe, err := eventBus.Subscribe(UserCreated, func(ctx context.Context, args ...interface{}) error {
		name, err := eventbus.ArgString(args, 0)
		if err != nil {
			return err
		}
		age, err := eventbus.ArgInt(args, 1)
		if err != nil {
			return err
		}
		fmt.Println("收到事件", name, age)
		return nil
	})
	if err != nil {
		panic(err)
	}
	//<5>订阅一次性主题，触发一次后自动退订
	if _, err = eventBus.Once(UserCreated, func(ctx context.Context, args ...interface{}) error {
		fmt.Println("只收一次", time.Now())
		return nil
	}); err != nil {
		panic(err)
	}
	//<6>推送事件，等待所有订阅者处理结束
	eventBus.Emit(context.Background(), UserCreated, "John", 20)
	eventBus.Emit(context.Background(), UserCreated, "Amy", 19)
	//<7>退订后不再触发
	unsubscribe()
	eventBus.Emit(context.Background(), UserCreated, "Bob", 30)
}
