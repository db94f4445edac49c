package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnexpectedPayload = errors.New("unexpected upstream payload shape")
	ErrMissingParam      = errors.New("missing required query parameter")
)

const (
	DEFAULT_SEMID   = "4"
	DEFAULT_SESSION = "E24"
	DEFAULT_DOB     = "2009-07-14"
)

// UpstreamError é o resultado de erro de qualquer chamada ao portal ou às páginas externas.
type UpstreamError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	return "Failed to retrieve data: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParamError indica um parâmetro obrigatório ausente na query.
type ParamError struct {
	Param string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s query parameter is required", e.Param)
}

func (e *ParamError) Is(target error) bool {
	return target == ErrMissingParam
}

type PayloadKind int

const (
	PayloadScalar PayloadKind = iota
	PayloadObject
	PayloadArray
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadObject:
		return "object"
	case PayloadArray:
		return "array"
	default:
		return "scalar"
	}
}

// Payload guarda o JSON do portal junto com o formato detectado.
// O formato muda conforme o endpoint, então quem renderiza pede a visão tipada que precisa.
type Payload struct {
	Kind PayloadKind
	Raw  json.RawMessage
}

func decodePayload(body []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return Payload{}, errors.New("response body is not valid JSON")
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return Payload{}, err
	}

	kind := PayloadScalar
	switch trimmed[0] {
	case '{':
		kind = PayloadObject
	case '[':
		kind = PayloadArray
	}
	return Payload{Kind: kind, Raw: compact.Bytes()}, nil
}

// SubjectResults interpreta o payload de /student-results-subjects-list.
func (p Payload) SubjectResults() ([]SubjectResult, error) {
	if p.Kind != PayloadArray {
		return nil, fmt.Errorf("%w: expected array of subject results, got %s", ErrUnexpectedPayload, p.Kind)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(p.Raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}
	rows := make([]SubjectResult, 0, len(items))
	for i, item := range items {
		// null e escalares não são linhas.
		if len(item) == 0 || item[0] != '{' {
			return nil, fmt.Errorf("%w: subject result %d is not an object: %s", ErrUnexpectedPayload, i, item)
		}
		var row SubjectResult
		if err := json.Unmarshal(item, &row); err != nil {
			return nil, fmt.Errorf("%w: subject result %d: %v", ErrUnexpectedPayload, i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Cell aceita string, número, booleano ou null vindos do portal e guarda como texto.
type Cell string

func (c *Cell) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = Cell(s)
		return nil
	}
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*c = ""
		return nil
	}
	if strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "[") {
		return fmt.Errorf("unsupported composite cell value: %s", raw)
	}
	*c = Cell(raw)
	return nil
}

type SubjectResult struct {
	SubjectCode    Cell `json:"subjectCODE"`
	SubjectName    Cell `json:"subjectName"`
	SubjectType    Cell `json:"subjectTP"`
	SubjectCredits Cell `json:"subjectCredits"`
	Grade          Cell `json:"grade"`
}

type SessionListing struct {
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
