package usdadomain

// ErrorResponse representa o corpo de erro devolvido pela API ESR
type ErrorResponse struct {
	Response string `json:"Response"`
	Message  string `json:"Message,omitempty"`
}

// IsRetryable informa se o corpo sinaliza um erro que deve ser tentado novamente
func (e *ErrorResponse) IsRetryable() bool {
	return e.Response == "Error"
}
