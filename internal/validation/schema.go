// File: internal/validation/schema.go
package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Kind 指定要套用的 JSON Schema
type Kind string

const (
	UserCreate Kind = "user_create"
	UserUpdate Kind = "user_update"
)

// SchemaError 表示請求內容不符合 schema，Message 可直接回給呼叫端
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string { return e.Message }

// Validator 持有已解析的 schema，可在多個 goroutine 間共用
type Validator struct {
	schemas map[Kind]*openapi3.Schema
}

// New 載入內嵌的所有 schema
func New() (*Validator, error) {
	v := &Validator{schemas: make(map[Kind]*openapi3.Schema)}
	for _, kind := range []Kind{UserCreate, UserUpdate} {
		raw, err := schemaFS.ReadFile("schemas/" + string(kind) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", kind, err)
		}
		s := &openapi3.Schema{}
		if err := json.Unmarshal(raw, s); err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", kind, err)
		}
		v.schemas[kind] = s
	}
	return v, nil
}

// MustNew 同 New，失敗時 panic；內嵌檔案錯誤屬於建置問題
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate 解析 body 並以 kind 對應的 schema 驗證
func (v *Validator) Validate(kind Kind, body []byte) error {
	s, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("unknown schema %q", kind)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return &SchemaError{Message: "request body is not valid JSON"}
	}
	if err := s.VisitJSON(doc); err != nil {
		return &SchemaError{Message: describe(err)}
	}
	return nil
}

func describe(err error) string {
	var se *openapi3.SchemaError
	if !errors.As(err, &se) {
		return err.Error()
	}
	ptr := se.JSONPointer()
	if len(ptr) == 0 {
		return se.Reason
	}
	return "/" + strings.Join(ptr, "/") + ": " + se.Reason
}
