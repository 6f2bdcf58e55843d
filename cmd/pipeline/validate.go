package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	pipeline "github.com/lalvarezt/string-pipeline-sub000"
)

type validateConfig struct {
	templatePath string
	format       string
}

type validationOutput struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Line  int    `json:"line,omitempty"`
	Col   int    `json:"column,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	source, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	_, parseErr := pipeline.Parse(string(source))

	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(parseErr, stdout)
	}
	return outputValidationText(parseErr, stdout)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &validateConfig{}
	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}
	return cfg, nil
}

func outputValidationText(parseErr error, stdout io.Writer) int {
	if parseErr == nil {
		fmt.Fprintln(stdout, "template is valid")
		return ExitCodeSuccess
	}
	var evalErr *pipeline.EvalError
	if errors.As(parseErr, &evalErr) {
		fmt.Fprintf(stdout, "%d:%d: %s\n", evalErr.Pos.Line, evalErr.Pos.Column, evalErr.Error())
	} else {
		fmt.Fprintln(stdout, parseErr.Error())
	}
	return ExitCodeParseError
}

func outputValidationJSON(parseErr error, stdout io.Writer) int {
	out := validationOutput{Valid: parseErr == nil}
	if parseErr != nil {
		out.Error = parseErr.Error()
		var evalErr *pipeline.EvalError
		if errors.As(parseErr, &evalErr) {
			out.Line = evalErr.Pos.Line
			out.Col = evalErr.Pos.Column
		}
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(stdout, string(data))
	if parseErr != nil {
		return ExitCodeParseError
	}
	return ExitCodeSuccess
}
