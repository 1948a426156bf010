package golang

import "github.com/CodMac/attr-lens/core"

func init() {
	core.RegisterGrammar(core.LangGo, NewGoGrammar())
}
