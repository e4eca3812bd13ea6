package basic

import (
	"bytes"
	"fmt"
	"io"
)

const (
	indentStep = "  "
)

func TreeString(node Node, indent string) string {
	buffer := &bytes.Buffer{}
	_ = PrintTree(buffer, node, indent)
	return buffer.String()
}

func PrintTree(output io.Writer, node Node, indent string) error {
	printer := &treePrinter{
		indent: indent,
		writer: output,
	}
	node.Walk(printer)
	return printer.err
}

type treePrinter struct {
	indent string
	writer io.Writer
	err    error
}

func (printer *treePrinter) write(format string, args ...interface{}) {
	if printer.err != nil {
		return
	}
	_, printer.err = fmt.Fprintf(printer.writer, format, args...)
}

func (printer *treePrinter) Enter(node Node) {
	printer.write("%s%s\n", printer.indent, describe(node))
	printer.indent += indentStep
}

func (printer *treePrinter) Exit(Node) {
	printer.indent = printer.indent[:len(printer.indent)-len(indentStep)]
}

func describe(node Node) string {
	switch node := node.(type) {
	case *Line:
		if node.HasNumber {
			return fmt.Sprintf("[Line %d]", node.Number)
		}
		return "[Line]"
	case *PrintStmt:
		return "[Print]"
	case *IfStmt:
		return fmt.Sprintf("[If %s]", node.Op)
	case *GotoStmt:
		return "[Goto]"
	case *InputStmt:
		return fmt.Sprintf("[Input %v]", node.Variables)
	case *LetStmt:
		return fmt.Sprintf("[Let %s]", node.Variable)
	case *GosubStmt:
		return "[Gosub]"
	case *ReturnStmt:
		return "[Return]"
	case *ClearStmt:
		return "[Clear]"
	case *ListStmt:
		return "[List]"
	case *RunStmt:
		return "[Run]"
	case *EndStmt:
		return "[End]"
	case *StringItem:
		return fmt.Sprintf("[String %q]", node.Text)
	case *Expression:
		if node.Sign != SignNone {
			return fmt.Sprintf("[Expression %s]", node.Sign)
		}
		return "[Expression]"
	case *Term:
		return "[Term]"
	case *VariableFactor:
		return fmt.Sprintf("[Variable %s]", node.Variable)
	case *NumberFactor:
		return fmt.Sprintf("[Number %d]", node.Value)
	}
	return fmt.Sprintf("[%T]", node)
}
