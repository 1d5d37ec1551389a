package cerror

import (
	"errors"

	"github.com/goccy/go-json"
	"go.uber.org/zap/zapcore"
)

type CustomError struct {
	error          `json:"-"`
	HttpStatusCode int             `json:"httpStatus"`
	LogMessage     string          `json:"-"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
}

func NewError(httpStatusCode int, logMessage string, logFields ...zapcore.Field) *CustomError {
	return &CustomError{
		error:          errors.New(logMessage),
		HttpStatusCode: httpStatusCode,
		LogMessage:     logMessage,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) SetSeverity(logSeverity zapcore.Level) *CustomError {
	cerr.LogSeverity = logSeverity
	return cerr
}

func (cerr *CustomError) SerializeCerror() error {
	var marshalledToByte []byte
	marshalledToByte, _ = json.Marshal(&cerr)

	return errors.New(string(marshalledToByte))
}
