package model

import "fmt"

const (
	DefaultAccessor       = "getAttributeValue"
	DefaultWrapperPrefix  = "parse"
	DefaultOptionalSuffix = "Optional"
)

// Convention 描述被分析代码所遵循的命名约定
type Convention struct {
	// Accessor: 底层属性读取调用的固定名称
	Accessor string `json:"accessor" yaml:"accessor" msgpack:"accessor" mapstructure:"accessor"`
	// WrapperPrefix: 包装调用 (转换/校验) 必须具备的前缀
	WrapperPrefix string `json:"wrapperPrefix" yaml:"wrapperPrefix" msgpack:"wrapperPrefix" mapstructure:"wrapper_prefix"`
	// OptionalSuffix: 包装调用名以此结尾时表示可选属性
	OptionalSuffix string `json:"optionalSuffix" yaml:"optionalSuffix" msgpack:"optionalSuffix" mapstructure:"optional_suffix"`
}

func DefaultConvention() Convention {
	return Convention{
		Accessor:       DefaultAccessor,
		WrapperPrefix:  DefaultWrapperPrefix,
		OptionalSuffix: DefaultOptionalSuffix,
	}
}

// Validate 三个约定项都不能为空，否则匹配启发式失去意义
func (c Convention) Validate() error {
	switch {
	case c.Accessor == "":
		return fmt.Errorf("convention: accessor must not be empty")
	case c.WrapperPrefix == "":
		return fmt.Errorf("convention: wrapper prefix must not be empty")
	case c.OptionalSuffix == "":
		return fmt.Errorf("convention: optional suffix must not be empty")
	}
	return nil
}

// Key 用于缓存等需要稳定标识的场景
func (c Convention) Key() string {
	return c.Accessor + "|" + c.WrapperPrefix + "|" + c.OptionalSuffix
}
