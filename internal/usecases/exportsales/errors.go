package exportsales

import (
	"errors"
	"fmt"
)

// Erros específicos do pipeline de vendas de exportação
var (
	// Erros de validação
	ErrInvalidRequest = errors.New("invalid request body")
	ErrMissingYear    = errors.New("year is required")
	ErrInvalidYear    = errors.New("year must be a four digit market year")
	ErrInvalidJobID   = errors.New("invalid job id")

	// Erros de busca
	ErrFetchFailed    = errors.New("error fetching export sales")
	ErrEmptyRecordSet = errors.New("empty record set")
)

// ErrorKind classifica as falhas; o valor é usado como nome no envelope de erro
type ErrorKind string

const (
	KindValidation     ErrorKind = "ValidationError"
	KindFetch          ErrorKind = "FetchError"
	KindEmptyRecordSet ErrorKind = "EmptyRecordSetError"
)

// Error é um erro com contexto adicional do pipeline
type Error struct {
	Kind          ErrorKind // Tipo de falha
	Err           error     // Erro base
	CommodityCode int       // Commodity envolvida (quando aplicável)
	Details       string    // Detalhes adicionais
}

// Error implementa a interface error
func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.CommodityCode != 0 {
		msg = fmt.Sprintf("commodity %d: %s", e.CommodityCode, msg)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError cria um erro de validação
func NewValidationError(err error, details string) *Error {
	return &Error{
		Kind:    KindValidation,
		Err:     err,
		Details: details,
	}
}

// NewFetchError cria um erro de busca para uma commodity
func NewFetchError(commodityCode int, err error) *Error {
	return &Error{
		Kind:          KindFetch,
		Err:           err,
		CommodityCode: commodityCode,
	}
}

// NewEmptyRecordSetError cria o erro de conjunto vazio para uma commodity
func NewEmptyRecordSetError(commodityCode int) *Error {
	return &Error{
		Kind:          KindEmptyRecordSet,
		Err:           ErrEmptyRecordSet,
		CommodityCode: commodityCode,
	}
}

// KindOf retorna o tipo do erro; erros sem classificação são tratados como falha de busca
func KindOf(err error) ErrorKind {
	var pipelineErr *Error
	if errors.As(err, &pipelineErr) {
		return pipelineErr.Kind
	}
	return KindFetch
}
