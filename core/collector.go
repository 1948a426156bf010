package core

import (
	"fmt"

	"github.com/CodMac/attr-lens/model"
	"go.uber.org/zap"
)

// BindingCollector 编排 CallMatcher / NodeVariableResolver / TypeInferrer / RequirednessClassifier，
// 对一个编译单元产出有序、不去重的 AttributeBinding 序列。
type BindingCollector struct {
	matcher    *CallMatcher
	classifier *RequirednessClassifier
	logger     *zap.Logger
}

func NewBindingCollector(conv model.Convention, logger *zap.Logger) *BindingCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BindingCollector{
		matcher:    NewCallMatcher(conv.Accessor),
		classifier: NewRequirednessClassifier(conv.WrapperPrefix, conv.OptionalSuffix),
		logger:     logger,
	}
}

// ==========================================
// 1. 核心流程 (Core Workflow)
// ==========================================

// Collect 遍历全部声明及其包装调用。任一结构性假设被破坏即整体失败，不返回部分结果。
func (bc *BindingCollector) Collect(sm SourceModel) ([]*model.AttributeBinding, error) {
	decls, err := sm.Declarations()
	if err != nil {
		return nil, fmt.Errorf("enumerate declarations of %s: %w", sm.FilePath(), err)
	}

	bindings := make([]*model.AttributeBinding, 0)
	for _, decl := range decls {
		for _, call := range bc.matcher.Match(decl) {
			binding, err := bc.bind(call)
			if err != nil {
				bc.annotate(err, sm.FilePath(), call)
				bc.logger.Error("structural assumption violated",
					zap.String("file", sm.FilePath()),
					zap.String("declaration", decl.Name()),
					zap.Error(err))
				return nil, err
			}

			bc.logger.Debug("binding",
				zap.String("file", sm.FilePath()),
				zap.String("declaration", decl.Name()),
				zap.Stringer("binding", binding))
			bindings = append(bindings, binding)
		}
	}
	return bindings, nil
}

// MatchWrapperCalls 暴露 CallMatcher，便于诊断
func (bc *BindingCollector) MatchWrapperCalls(decl Declaration) []Call {
	return bc.matcher.Match(decl)
}

// ==========================================
// 2. 单条绑定 (Single Binding)
// ==========================================

// bind 顺序: 前缀校验/必填性 -> 类型 -> 节点引用，保证误报时首先报告的是调用名
func (bc *BindingCollector) bind(call Call) (*model.AttributeBinding, error) {
	name := call.Name()

	required, err := bc.classifier.Classify(name)
	if err != nil {
		return nil, err
	}

	valueType, err := InferValueType(call)
	if err != nil {
		return nil, err
	}

	nodeExpr, err := ResolveNodeExpression(call)
	if err != nil {
		return nil, err
	}

	method := ""
	if decl, ok := call.Enclosing(); ok {
		method = decl.Name()
	}

	return &model.AttributeBinding{
		SourceNodeExpression: nodeExpr,
		ValueType:            valueType,
		Required:             required,
		Method:               method,
		Callee:               name,
		Location:             call.Location(),
	}, nil
}

// annotate 补全违规信息中的文件与调用上下文
func (bc *BindingCollector) annotate(err error, filePath string, call Call) {
	v, ok := AsViolation(err)
	if !ok {
		return
	}
	if v.FilePath == "" {
		v.FilePath = filePath
	}
	if v.CallText == "" {
		v.CallText = call.Text()
	}
	if v.Location == nil {
		v.Location = call.Location()
	}
}
