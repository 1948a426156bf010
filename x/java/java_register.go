package java

import "github.com/CodMac/attr-lens/core"

func init() {
	core.RegisterGrammar(core.LangJava, NewJavaGrammar())
}
