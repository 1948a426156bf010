package java_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/CodMac/attr-lens/core"
	"github.com/CodMac/attr-lens/model"
	"github.com/CodMac/attr-lens/parser"
	_ "github.com/CodMac/attr-lens/x/java" // 触发 init() 注册
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestFilePath(name string) string {
	currentDir, _ := filepath.Abs(filepath.Dir("."))
	return filepath.Join(currentDir, "testdata", name)
}

func getJavaParser(t *testing.T) *parser.TreeSitterParser {
	javaParser, err := parser.NewParser(core.LangJava)
	require.NoError(t, err, "Failed to create Java parser")
	t.Cleanup(javaParser.Close)
	return javaParser
}

func collect(t *testing.T, unit *core.CompilationUnit) ([]*model.AttributeBinding, error) {
	t.Helper()
	grammar, err := core.GetGrammar(core.LangJava)
	require.NoError(t, err)
	sm := core.NewSyntaxModel(unit, grammar)
	return core.NewBindingCollector(model.DefaultConvention(), nil).Collect(sm)
}

func collectSource(t *testing.T, src string) ([]*model.AttributeBinding, error) {
	t.Helper()
	unit, err := getJavaParser(t).ParseBytes("Inline.java", []byte(src))
	require.NoError(t, err)
	defer unit.Close()
	return collect(t, unit)
}

func TestJavaGrammar_OrdersParser(t *testing.T) {
	// 1. 解析
	filePath := getTestFilePath("OrdersParserXML.java")
	unit, err := getJavaParser(t).ParseFile(filePath)
	require.NoError(t, err)
	defer unit.Close()

	// 2. 运行 BindingCollector
	bindings, err := collect(t, unit)
	require.NoError(t, err)

	// 3. 验证顺序与内容 (构造函数中的调用不参与)
	expected := []struct {
		method   string
		node     string
		typ      string
		required bool
	}{
		{"getCustBizNodeId", "customerIdNode", "String", true},
		{"getCustDelivAddressId", "customerIdNode", "String", false},
		{"getSupplBizNodeId", "supplierIdNode", "String", true},
		{"getOrderDate", "orderHeadNode", "Date", false},
		{"getOrderQty", "currentOrderLineNodeIndex", "double", true},
		{"isUrgent", "orderHeadNode", "boolean", false},
		{"getCombinedRef", "orderHeadNode", "String", true},
		{"getCombinedRef", "headOrderReferenceNode", "String", false},
		{"getDeductReturns", "productCumulatedNode", "int", true},
	}
	require.Len(t, bindings, len(expected))

	for i, exp := range expected {
		b := bindings[i]
		assert.Equal(t, exp.method, b.Method, "binding %d method", i)
		assert.Equal(t, exp.node, b.SourceNodeExpression, "binding %d node", i)
		assert.Equal(t, exp.typ, b.ValueType, "binding %d type", i)
		assert.Equal(t, exp.required, b.Required, "binding %d required", i)
		require.NotNil(t, b.Location)
		assert.Equal(t, filePath, b.Location.FilePath)
	}

	t.Run("Verify Location", func(t *testing.T) {
		// parseStringRequired (getAttributeValue (customerIdNode, ...)) 位于第 37 行
		assert.Equal(t, 37, bindings[0].Location.StartLine)
		assert.Equal(t, "parseStringRequired", bindings[0].Callee)
	})

	t.Run("Verify Idempotence", func(t *testing.T) {
		again, err := collect(t, unit)
		require.NoError(t, err)
		assert.Equal(t, bindings, again)
	})
}

func TestJavaGrammar_BrokenParserFailsFast(t *testing.T) {
	unit, err := getJavaParser(t).ParseFile(getTestFilePath("BrokenParser.java"))
	require.NoError(t, err)
	defer unit.Close()

	bindings, err := collect(t, unit)
	require.Error(t, err)
	assert.Nil(t, bindings)

	v, ok := core.AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, core.MissingPrefix, v.Kind)
	assert.Equal(t, "log", v.Callee)
	assert.Equal(t, "log(getAttributeValue(headNode, NOTE))", v.CallText)
	require.NotNil(t, v.Location)
	assert.Equal(t, 7, v.Location.StartLine)
}

func TestJavaGrammar_Declarations(t *testing.T) {
	src := `
class A {
  A() { parseStringRequired(getAttributeValue(n, X), X); }
  String first() { return ""; }
  void second() {
    Runnable r = new Runnable() {
      public void run() { }
    };
  }
  abstract int third();
}
`
	unit, err := getJavaParser(t).ParseBytes("A.java", []byte(src))
	require.NoError(t, err)
	defer unit.Close()

	grammar, err := core.GetGrammar(core.LangJava)
	require.NoError(t, err)
	decls, err := core.NewSyntaxModel(unit, grammar).Declarations()
	require.NoError(t, err)

	var names []string
	for _, d := range decls {
		names = append(names, d.Name())
	}
	// 先序：外层方法在其匿名类方法之前；构造函数不是方法类声明
	assert.Equal(t, []string{"first", "second", "run", "third"}, names)

	rt, ok := decls[1].ReturnType()
	assert.True(t, ok)
	assert.Equal(t, "void", rt)
}

func TestJavaGrammar_ReturnTypeVerbatim(t *testing.T) {
	bindings, err := collectSource(t, `
class A {
  java.util.List<String> names() { return parseListRequired(getAttributeValue(namesNode, NAMES), NAMES); }
  int[] codes() { return parseIntArrayOptional(getAttributeValue(codesNode, CODES), CODES); }
  DelivType deliv() { return parseDelivTypeRequired(getAttributeValue(headNode, DELIV), DELIV); }
}
`)
	require.NoError(t, err)
	require.Len(t, bindings, 3)
	assert.Equal(t, "java.util.List<String>", bindings[0].ValueType)
	assert.Equal(t, "int[]", bindings[1].ValueType)
	assert.Equal(t, "DelivType", bindings[2].ValueType)
}

func TestJavaGrammar_NestedHelperResolution(t *testing.T) {
	bindings, err := collectSource(t, `
class A {
  String lineId() {
    return parseStringRequired(getAttributeValue(Helper.pick(lineNodeList, idx), LINE_ID), LINE_ID);
  }
}
`)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "lineNodeList", bindings[0].SourceNodeExpression)
}

func TestJavaGrammar_MultiLineNodeExpressionIsFolded(t *testing.T) {
	bindings, err := collectSource(t, `
class A {
  String id() {
    return parseStringRequired(getAttributeValue((Node)
        rawNode, ID), ID);
  }
}
`)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "(Node) rawNode", bindings[0].SourceNodeExpression)
}

func TestJavaGrammar_WrapperInsideLambdaUsesEnclosingMethod(t *testing.T) {
	bindings, err := collectSource(t, `
class A {
  Supplier<String> lazyId() {
    return () -> parseStringOptional(getAttributeValue(headNode, ID), ID);
  }
}
`)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "Supplier<String>", bindings[0].ValueType)
	assert.False(t, bindings[0].Required)
}

func TestJavaGrammar_SyntaxErrorIsInputUnavailable(t *testing.T) {
	_, err := getJavaParser(t).ParseBytes("Bad.java", []byte("class A { String x( { }"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInputUnavailable))
}

func TestJavaGrammar_MissingFileIsInputUnavailable(t *testing.T) {
	_, err := getJavaParser(t).ParseFile(getTestFilePath("DoesNotExist.java"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInputUnavailable))
}

// --- 文本启发式的已知局限 ---

func TestJavaGrammar_KnownLimitation_ReceiverQualifiedAccessor(t *testing.T) {
	// this.getAttributeValue(...) 的文本不以 accessor 开头，会被当作包装调用
	_, err := collectSource(t, `
class A {
  String id() { return parseStringRequired(this.getAttributeValue(headNode, ID), ID); }
}
`)
	v, ok := core.AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, core.MissingPrefix, v.Kind)
	assert.Equal(t, "getAttributeValue", v.Callee)
}

func TestJavaGrammar_KnownLimitation_CollectionAdd(t *testing.T) {
	// 包在集合调用里的包装调用会让外层 add 被误判
	_, err := collectSource(t, `
class A {
  List<String> notes() {
    notes.add(parseStringRequired(getAttributeValue(headNode, NOTE), NOTE));
    return notes;
  }
}
`)
	v, ok := core.AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, "add", v.Callee)
}
