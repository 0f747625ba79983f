package expression

import "fmt"

// DataType is the PMML dataType attribute of a field or constant.
type DataType string

const (
	DataTypeUnknown  DataType = ""
	DataTypeString   DataType = "string"
	DataTypeInteger  DataType = "integer"
	DataTypeFloat    DataType = "float"
	DataTypeDouble   DataType = "double"
	DataTypeBoolean  DataType = "boolean"
	DataTypeDate     DataType = "date"
	DataTypeTime     DataType = "time"
	DataTypeDateTime DataType = "dateTime"
)

// ParseDataType validates a PMML dataType attribute. An empty string yields
// DataTypeUnknown.
func ParseDataType(s string) (DataType, error) {
	switch dt := DataType(s); dt {
	case DataTypeUnknown, DataTypeString, DataTypeInteger, DataTypeFloat, DataTypeDouble,
		DataTypeBoolean, DataTypeDate, DataTypeTime, DataTypeDateTime:
		return dt, nil
	default:
		return DataTypeUnknown, fmt.Errorf("unknown dataType %q", s)
	}
}

// IsNumeric reports whether values of this type are numbers.
func (d DataType) IsNumeric() bool {
	return d == DataTypeInteger || d == DataTypeFloat || d == DataTypeDouble
}
