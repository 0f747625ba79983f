package pmml

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/caoguofeng92/drools/expression"
	"github.com/caoguofeng92/drools/platform/script/loader"
)

// Parse reads a PMML document. DerivedFields are collected from the
// TransformationDictionary first and then from every LocalTransformations
// element, in document order.
func Parse(r io.Reader) (*Document, error) {
	root := etree.NewDocument()
	if _, err := root.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to read PMML: %w", err)
	}
	return fromTree(root)
}

// ParseString reads a PMML document held in s.
func ParseString(s string) (*Document, error) {
	root := etree.NewDocument()
	if err := root.ReadFromString(s); err != nil {
		return nil, fmt.Errorf("failed to read PMML: %w", err)
	}
	return fromTree(root)
}

// Load reads the PMML document provided by l.
func Load(l loader.Loader) (*Document, error) {
	if l == nil {
		return nil, fmt.Errorf("loader is nil")
	}
	reader, err := l.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	return Parse(reader)
}

func fromTree(root *etree.Document) (*Document, error) {
	pmml := root.SelectElement("PMML")
	if pmml == nil {
		return nil, ErrNoPMMLElement
	}

	doc := &Document{Version: pmml.SelectAttrValue("version", "")}

	if dict := pmml.SelectElement("DataDictionary"); dict != nil {
		for _, elem := range dict.SelectElements("DataField") {
			df, err := parseDataField(elem)
			if err != nil {
				return nil, err
			}
			doc.DataFields = append(doc.DataFields, df)
		}
	}

	if dict := pmml.SelectElement("TransformationDictionary"); dict != nil {
		for _, elem := range dict.SelectElements("DefineFunction") {
			fn, err := parseDefineFunction(elem)
			if err != nil {
				return nil, err
			}
			doc.Functions = append(doc.Functions, fn)
		}
		derived, err := parseDerivedFields(dict)
		if err != nil {
			return nil, err
		}
		doc.DerivedFields = append(doc.DerivedFields, derived...)
	}

	for _, local := range pmml.FindElements(".//LocalTransformations") {
		derived, err := parseDerivedFields(local)
		if err != nil {
			return nil, err
		}
		doc.DerivedFields = append(doc.DerivedFields, derived...)
	}

	return doc, nil
}

func parseDataField(elem *etree.Element) (DataField, error) {
	name, err := requiredAttr(elem, "name")
	if err != nil {
		return DataField{}, err
	}
	dt, err := dataTypeAttr(elem)
	if err != nil {
		return DataField{}, fmt.Errorf("DataField %q: %w", name, err)
	}
	return DataField{Name: name, DataType: dt}, nil
}

func parseDefineFunction(elem *etree.Element) (DefineFunction, error) {
	name, err := requiredAttr(elem, "name")
	if err != nil {
		return DefineFunction{}, err
	}
	fn := DefineFunction{Name: name}

	if fn.DataType, err = dataTypeAttr(elem); err != nil {
		return DefineFunction{}, fmt.Errorf("DefineFunction %q: %w", name, err)
	}

	for _, p := range elem.SelectElements("ParameterField") {
		pname, err := requiredAttr(p, "name")
		if err != nil {
			return DefineFunction{}, fmt.Errorf("DefineFunction %q: %w", name, err)
		}
		dt, err := dataTypeAttr(p)
		if err != nil {
			return DefineFunction{}, fmt.Errorf("DefineFunction %q: %w", name, err)
		}
		fn.Params = append(fn.Params, ParameterField{Name: pname, DataType: dt})
	}

	if fn.Expression, err = singleExpression(elem, "ParameterField"); err != nil {
		return DefineFunction{}, fmt.Errorf("DefineFunction %q: %w", name, err)
	}
	return fn, nil
}

func parseDerivedFields(parent *etree.Element) ([]DerivedField, error) {
	elems := parent.SelectElements("DerivedField")
	fields := make([]DerivedField, 0, len(elems))
	for _, elem := range elems {
		name, err := requiredAttr(elem, "name")
		if err != nil {
			return nil, err
		}
		dt, err := dataTypeAttr(elem)
		if err != nil {
			return nil, fmt.Errorf("DerivedField %q: %w", name, err)
		}
		node, err := singleExpression(elem)
		if err != nil {
			return nil, fmt.Errorf("DerivedField %q: %w", name, err)
		}
		fields = append(fields, DerivedField{Name: name, DataType: dt, Expression: node})
	}
	return fields, nil
}

// singleExpression parses the first expression child of elem. Extension
// elements and the tags in skip are ignored.
func singleExpression(elem *etree.Element, skip ...string) (expression.Expression, error) {
	children := expressionChildren(elem, skip...)
	if len(children) == 0 {
		return nil, fmt.Errorf("%w in <%s>", ErrMissingExpression, elem.Tag)
	}
	return parseExpression(children[0])
}

func expressionChildren(elem *etree.Element, skip ...string) []*etree.Element {
	var out []*etree.Element
	for _, child := range elem.ChildElements() {
		if child.Tag == "Extension" || slices.Contains(skip, child.Tag) {
			continue
		}
		out = append(out, child)
	}
	return out
}

func parseExpression(elem *etree.Element) (expression.Expression, error) {
	switch elem.Tag {
	case "Constant":
		return parseConstant(elem)
	case "FieldRef":
		field, err := requiredAttr(elem, "field")
		if err != nil {
			return nil, err
		}
		return &expression.FieldRef{Field: field, MapMissingTo: optionalAttr(elem, "mapMissingTo")}, nil
	case "Apply":
		function, err := requiredAttr(elem, "function")
		if err != nil {
			return nil, err
		}
		children := expressionChildren(elem)
		operands := make([]expression.Expression, len(children))
		for i, child := range children {
			if operands[i], err = parseExpression(child); err != nil {
				return nil, fmt.Errorf("Apply %q operand %d: %w", function, i+1, err)
			}
		}
		return expression.NewApply(function, operands...), nil
	case "Aggregate":
		return &expression.Aggregate{
			Field:      elem.SelectAttrValue("field", ""),
			Function:   elem.SelectAttrValue("function", ""),
			GroupField: elem.SelectAttrValue("groupField", ""),
		}, nil
	case "Discretize":
		return &expression.Discretize{
			Field:        elem.SelectAttrValue("field", ""),
			MapMissingTo: optionalAttr(elem, "mapMissingTo"),
			DefaultValue: optionalAttr(elem, "defaultValue"),
		}, nil
	case "Lag":
		n, err := strconv.Atoi(elem.SelectAttrValue("n", "1"))
		if err != nil {
			return nil, fmt.Errorf("Lag n: %w", err)
		}
		return &expression.Lag{Field: elem.SelectAttrValue("field", ""), N: n}, nil
	case "MapValues":
		return &expression.MapValues{
			OutputColumn: elem.SelectAttrValue("outputColumn", ""),
			MapMissingTo: optionalAttr(elem, "mapMissingTo"),
			DefaultValue: optionalAttr(elem, "defaultValue"),
		}, nil
	case "NormContinuous":
		return &expression.NormContinuous{
			Field:        elem.SelectAttrValue("field", ""),
			MapMissingTo: optionalAttr(elem, "mapMissingTo"),
		}, nil
	case "NormDiscrete":
		return &expression.NormDiscrete{
			Field:        elem.SelectAttrValue("field", ""),
			Value:        elem.SelectAttrValue("value", ""),
			MapMissingTo: optionalAttr(elem, "mapMissingTo"),
		}, nil
	case "TextIndex":
		node, err := singleExpression(elem)
		if err != nil {
			return nil, err
		}
		return &expression.TextIndex{
			TextField:  elem.SelectAttrValue("textField", ""),
			Expression: node,
		}, nil
	default:
		return nil, fmt.Errorf("%w: <%s>", ErrUnknownElement, elem.Tag)
	}
}

// parseConstant types the element text by its dataType. Without a dataType,
// integers, then decimals, then text are tried in turn.
func parseConstant(elem *etree.Element) (*expression.Constant, error) {
	dt, err := dataTypeAttr(elem)
	if err != nil {
		return nil, fmt.Errorf("Constant: %w", err)
	}

	if elem.SelectAttrValue("missing", "false") == "true" {
		return &expression.Constant{DataType: dt, Missing: true}, nil
	}

	text := strings.TrimSpace(elem.Text())
	switch dt {
	case expression.DataTypeInteger:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidConstant, text)
		}
		return expression.NewConstant(v, dt), nil
	case expression.DataTypeDouble, expression.DataTypeFloat:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidConstant, text)
		}
		return expression.NewConstant(v, dt), nil
	case expression.DataTypeBoolean:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidConstant, text)
		}
		return expression.NewConstant(v, dt), nil
	case expression.DataTypeUnknown:
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return expression.NewConstant(v, expression.DataTypeInteger), nil
		}
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			return expression.NewConstant(v, expression.DataTypeDouble), nil
		}
		return expression.NewConstant(elem.Text(), expression.DataTypeString), nil
	default:
		return expression.NewConstant(elem.Text(), dt), nil
	}
}

func requiredAttr(elem *etree.Element, key string) (string, error) {
	attr := elem.SelectAttr(key)
	if attr == nil || attr.Value == "" {
		return "", fmt.Errorf("%w: <%s %s>", ErrMissingAttribute, elem.Tag, key)
	}
	return attr.Value, nil
}

func optionalAttr(elem *etree.Element, key string) *string {
	attr := elem.SelectAttr(key)
	if attr == nil {
		return nil
	}
	v := attr.Value
	return &v
}

func dataTypeAttr(elem *etree.Element) (expression.DataType, error) {
	dt, err := expression.ParseDataType(elem.SelectAttrValue("dataType", ""))
	if err != nil {
		return expression.DataTypeUnknown, fmt.Errorf("%w: %w", ErrInvalidDataType, err)
	}
	return dt, nil
}
