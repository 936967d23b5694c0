package lexer_errors

import (
	"fmt"
	"io"
	"os"
)

type LexError interface {
	GetMessage() string
}

type ErrorHandler interface {
	AddError(err LexError)
	FailNow()
}

type LexErrorHandler struct {
	errors []LexError
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &LexErrorHandler{
		errors: make([]LexError, 0),
		writer: outputWriter,
	}
}

func (eh *LexErrorHandler) AddError(err LexError) {
	eh.errors = append(eh.errors, err)
}

func (eh *LexErrorHandler) FailNow() {
	fmt.Fprintln(eh.writer, "Lexing failed with errors:")

	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: %s\n", err.GetMessage())
	}

	os.Exit(1)
}
