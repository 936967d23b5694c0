package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/peterh/liner"
	"github.com/sanity-io/litter"

	l "github.com/marcusrossel/literal-lexer/internal/lexer"
	"github.com/marcusrossel/literal-lexer/internal/lexer_errors"
)

const (
	historyFile = ".literal_lexer_history"
	prompt      = ">> "
)

type cli struct {
	Path         string `arg:"" optional:"" help:"File to lex; omit to start the REPL" type:"path"`
	Repl         bool   `help:"Start the interactive token REPL"`
	Dump         bool   `help:"Dump the raw token structs after lexing"`
	KeepComments bool   `help:"Keep comment tokens in the output"`
}

func main() {
	var params cli
	kong.Parse(&params)

	if params.Repl || params.Path == "" {
		os.Exit(repl(params))
	}

	fileData, err := os.ReadFile(params.Path)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	eh := lexer_errors.NewErrorHandler(os.Stderr)

	scanner := l.NewTokenScanner(l.NewLexer(fileData))
	tokens := make([]l.Token, 0)
	for {
		token, err := scanner.Read()
		if err != nil {
			var lexErr *l.LexerError
			if errors.As(err, &lexErr) {
				eh.AddError(lexErr)
				eh.FailNow()
			}

			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if !params.KeepComments && token.Kind == l.COMMENT {
			continue
		}

		tokens = append(tokens, token)
		fmt.Println(token.String())

		if token.Kind == l.EOF {
			break
		}
	}

	if params.Dump {
		litter.Dump(tokens)
	}
}

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func repl(params cli) int {
	fmt.Println("literal-lexer REPL. Ctrl+D or :quit exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			fmt.Println()
			return 0
		}

		if line == ":quit" {
			return 0
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		tokens, err := l.NewLexer([]byte(line)).Tokenize()
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}

		for _, token := range tokens {
			if !params.KeepComments && token.Kind == l.COMMENT {
				continue
			}
			if token.Kind == l.EOF {
				continue
			}

			fmt.Println(token.String())
		}
		if params.Dump {
			litter.Dump(tokens)
		}
	}
}
