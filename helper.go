package eventbus

import (
	"fmt"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

func BuildEventBusOptional(options ...EventBusOption) EventBusOptional {
	optional := EventBusOptional{}
	if len(options) != 0 {
		for _, opt := range options {
			if opt != nil {
				opt(&optional)
			}
		}
	}
	return optional
}

// HandlerPointer 返回handler闭包对象的指针，作为去重和按值退订的标识
// 同一个func值的拷贝指针相同，同一字面量捕获不同变量的两个闭包指针不同
func HandlerPointer(handler Handler) uintptr {
	if handler == nil {
		return 0
	}
	return *(*uintptr)(unsafe.Pointer(&handler))
}

func copySubscriptions(subscriptions []*subscription) []*subscription {
	result := make([]*subscription, 0, len(subscriptions))
	result = append(result, subscriptions...)
	return result
}

// FormatArgs 把事件参数序列化为一行，仅用于诊断输出
func FormatArgs(args []interface{}) string {
	if len(args) == 0 {
		return "[]"
	}
	bytes, err := jsoniter.Marshal(args)
	if err != nil {
		return fmt.Sprintf("%v", args)
	}
	return string(bytes)
}

func ArgString(args []interface{}, index int) (string, error) {
	if index < 0 || index >= len(args) {
		return "", fmt.Errorf("arg index out of range, index:%d, len:%d", index, len(args))
	}
	return cast.ToStringE(args[index])
}

func ArgInt(args []interface{}, index int) (int, error) {
	if index < 0 || index >= len(args) {
		return 0, fmt.Errorf("arg index out of range, index:%d, len:%d", index, len(args))
	}
	return cast.ToIntE(args[index])
}

func ArgBool(args []interface{}, index int) (bool, error) {
	if index < 0 || index >= len(args) {
		return false, fmt.Errorf("arg index out of range, index:%d, len:%d", index, len(args))
	}
	return cast.ToBoolE(args[index])
}

func ArgDuration(args []interface{}, index int) (time.Duration, error) {
	if index < 0 || index >= len(args) {
		return 0, fmt.Errorf("arg index out of range, index:%d, len:%d", index, len(args))
	}
	return cast.ToDurationE(args[index])
}
