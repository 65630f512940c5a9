package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// PrettyJson serializa o valor com indentação de dois espaços
func PrettyJson(in any) (string, error) {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
