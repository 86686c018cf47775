package nocodb

import (
	"encoding/json"
)

// Base is a read-only view of one NocoDB base.
//
// Raw preserves the full upstream object for fields the projection does not
// cover.
type Base struct {
	ID    string `json:"id"    yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Type  string `json:"type"  yaml:"type"`

	Raw map[string]interface{} `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the projected fields and keeps the raw object.
func (b *Base) UnmarshalJSON(data []byte) error {
	type plain Base

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Raw = raw
	*b = Base(p)

	return nil
}

// Table is a read-only view of one NocoDB table.
//
// Columns is populated by the single-table endpoint; the per-base listing
// returns tables without column details.
type Table struct {
	ID        string   `json:"id"         yaml:"id"`
	Title     string   `json:"title"      yaml:"title"`
	TableName string   `json:"table_name" yaml:"table_name"`
	BaseID    string   `json:"base_id"    yaml:"base_id"`
	Columns   []Column `json:"columns"    yaml:"columns"`

	Raw map[string]interface{} `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the projected fields and keeps the raw object.
func (t *Table) UnmarshalJSON(data []byte) error {
	type plain Table

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Raw = raw
	*t = Table(p)

	return nil
}

// Column is a read-only view of one column in a table schema.
type Column struct {
	ID         string `json:"id"          yaml:"id"`
	Title      string `json:"title"       yaml:"title"`
	ColumnName string `json:"column_name" yaml:"column_name"`
	UIDataType string `json:"uidt"        yaml:"uidt"`

	Raw map[string]interface{} `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the projected fields and keeps the raw object.
func (c *Column) UnmarshalJSON(data []byte) error {
	type plain Column

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Raw = raw
	*c = Column(p)

	return nil
}

// BaseSchema is the result of the eager schema fan-out: one base plus the
// detailed schema of every table under it.
type BaseSchema struct {
	Base   Base    `json:"base"   yaml:"base"`
	Tables []Table `json:"tables" yaml:"tables"`
}

// ConnectionCheck is the structured result of a connection probe. Probes are
// advisory: they never fail with an error, they report.
type ConnectionCheck struct {
	Success    bool   `json:"success"               yaml:"success"`
	Message    string `json:"message"               yaml:"message"`
	AuthMethod string `json:"auth_method,omitempty" yaml:"auth_method,omitempty"`
	LastError  string `json:"last_error,omitempty"  yaml:"last_error,omitempty"`
}
