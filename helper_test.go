package eventbus

import (
	"context"
	"testing"
	"time"
)

func TestFormatArgs(t *testing.T) {
	if s := FormatArgs(nil); s != "[]" {
		t.Errorf("空参数格式化与预期不符,s:%s", s)
	}
	s := FormatArgs([]interface{}{42, "x"})
	if s != `[42,"x"]` {
		t.Errorf("参数格式化与预期不符,s:%s", s)
	}
	//不可序列化的参数退化为fmt输出，不报错
	if s = FormatArgs([]interface{}{make(chan int)}); len(s) == 0 {
		t.Errorf("不可序列化参数未产生输出")
	}
}

func TestArgHelpers(t *testing.T) {
	args := []interface{}{"42", 1, "true", "3s"}
	n, err := ArgInt(args, 0)
	if err != nil || n != 42 {
		t.Errorf("ArgInt结果与预期不符,n:%d,err:%v", n, err)
	}
	s, err := ArgString(args, 1)
	if err != nil || s != "1" {
		t.Errorf("ArgString结果与预期不符,s:%s,err:%v", s, err)
	}
	b, err := ArgBool(args, 2)
	if err != nil || !b {
		t.Errorf("ArgBool结果与预期不符,b:%v,err:%v", b, err)
	}
	d, err := ArgDuration(args, 3)
	if err != nil || d != time.Second*3 {
		t.Errorf("ArgDuration结果与预期不符,d:%s,err:%v", d, err)
	}
	if _, err = ArgString(args, 4); err == nil {
		t.Errorf("越界下标未返回错误")
	}
	if _, err = ArgInt(args, -1); err == nil {
		t.Errorf("负数下标未返回错误")
	}
}

func TestHandlerPointer(t *testing.T) {
	if HandlerPointer(nil) != 0 {
		t.Errorf("空handler的指针应为0")
	}
	handler := func(ctx context.Context, args ...interface{}) error {
		return nil
	}
	other := func(ctx context.Context, args ...interface{}) error {
		return nil
	}
	if HandlerPointer(handler) != HandlerPointer(handler) {
		t.Errorf("同一个handler的指针不一致")
	}
	if HandlerPointer(handler) == HandlerPointer(other) {
		t.Errorf("不同handler的指针相同")
	}
}
