package eventbus

// 诊断信息标题
const (
	TitleHandlerError = "【事件总线】订阅者处理事件出错"
	TitleHandlerPanic = "【事件总线】订阅者处理事件出现panic"
)
