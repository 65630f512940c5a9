package exportsales

import (
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/export-sales-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

// RequestPayload é o corpo aceito pelo adaptador: {id?, data: {year | marketYear}}
type RequestPayload struct {
	ID   string       `json:"id"`
	Data *RequestData `json:"data"`
}

type RequestData struct {
	Year       string `json:"year"`
	MarketYear string `json:"marketYear"`
	Endpoint   string `json:"endpoint,omitempty"`
}

type validatedRequest struct {
	JobRunID   string `validate:"required,max=128"`
	MarketYear string `validate:"required,number,len=4"`
}

// DecodeRequest decodifica o corpo bruto. Campos desconhecidos são ignorados.
func DecodeRequest(body []byte) (RequestPayload, error) {
	var payload RequestPayload
	if len(strings.TrimSpace(string(body))) == 0 {
		return payload, NewValidationError(ErrInvalidRequest, "corpo vazio")
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return payload, NewValidationError(ErrInvalidRequest, err.Error())
	}

	return payload, nil
}

// ParseRequest valida o payload e devolve a requisição normalizada.
// O JobRunID é preenchido mesmo quando a validação falha, para compor o envelope de erro.
func ParseRequest(payload RequestPayload) (domain.JobRequest, error) {
	req := domain.JobRequest{
		JobRunID: strings.TrimSpace(payload.ID),
	}
	if req.JobRunID == "" {
		req.JobRunID = domain.DefaultJobRunID
	}

	if payload.Data != nil {
		year := payload.Data.Year
		if strings.TrimSpace(year) == "" {
			year = payload.Data.MarketYear
		}
		req.MarketYear = strings.ToUpper(strings.TrimSpace(year))
	}

	err := validate.Struct(validatedRequest{
		JobRunID:   req.JobRunID,
		MarketYear: req.MarketYear,
	})
	if err == nil {
		return req, nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return req, NewValidationError(ErrInvalidRequest, err.Error())
	}

	fieldErr := validationErrors[0]
	switch {
	case fieldErr.Field() == "MarketYear" && fieldErr.Tag() == "required":
		return req, NewValidationError(ErrMissingYear, "informe data.year ou data.marketYear")
	case fieldErr.Field() == "MarketYear":
		return req, NewValidationError(ErrInvalidYear, req.MarketYear)
	default:
		return req, NewValidationError(ErrInvalidJobID, fieldErr.Tag())
	}
}
