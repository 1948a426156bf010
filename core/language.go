package core

// Language 被分析源码的语言标识
type Language string

const (
	LangJava Language = "java"
	LangGo   Language = "go"
)

func (l Language) String() string { return string(l) }
