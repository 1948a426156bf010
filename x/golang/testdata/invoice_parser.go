package invoice

import "time"

type InvoiceParser struct {
	BaseParser
	headNode  *Node
	lineNodes []*Node
	lineIndex int
}

func NewInvoiceParser(doc *Document) *InvoiceParser {
	p := &InvoiceParser{headNode: doc.Root()}
	p.lineNodes = doc.Children(LINE)
	return p
}

func (p *InvoiceParser) InvoiceNumber() (string, error) {
	return parseStringRequired(getAttributeValue(p.headNode, INVOICE_NUMBER), INVOICE_NUMBER)
}

func (p *InvoiceParser) IssueDate() (time.Time, error) {
	return parseDateOptional(getAttributeValue(p.headNode /* head */, ISSUE_DATE), ISSUE_DATE)
}

func (p *InvoiceParser) Amount() (float64, error) {
	return parseFloatRequired(getAttributeValue(item(p.lineNodes, p.lineIndex), AMOUNT), AMOUNT)
}

func (p *InvoiceParser) Currency() string {
	v, _ := parseStringOptional(getAttributeValue(p.headNode, CURRENCY), CURRENCY)
	return v
}

func (p *InvoiceParser) Next() bool {
	p.lineIndex++
	return p.lineIndex < len(p.lineNodes)
}
