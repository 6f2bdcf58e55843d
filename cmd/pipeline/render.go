package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	pipeline "github.com/lalvarezt/string-pipeline-sub000"
)

type renderConfig struct {
	templatePath string
	input        string
	inputsFile   string
	outputPath   string
	debug        bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	source, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	opts := []pipeline.Option{}
	if cfg.debug {
		opts = append(opts, pipeline.WithDebug(true), pipeline.WithDebugSink(stderrSink{stderr}))
	}

	tmpl, err := pipeline.Parse(string(source), opts...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseTemplateFailed, err)
		return ExitCodeParseError
	}

	inputs, err := loadRenderInputs(cfg, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	outputs, err := tmpl.FormatWithInputs(inputs)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgFormatFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(strings.Join(outputs, "\n")+"\n"), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &renderConfig{}
	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.input, FlagInput, "", "")
	fs.StringVar(&cfg.input, FlagInputShort, "", "")
	fs.StringVar(&cfg.inputsFile, FlagInputFile, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.debug, FlagDebug, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	return cfg, nil
}

func loadRenderInputs(cfg *renderConfig, stdin io.Reader) ([]string, error) {
	if cfg.inputsFile != "" {
		data, err := readInput(cfg.inputsFile, stdin)
		if err != nil {
			return nil, err
		}
		var lines []string
		sc := bufio.NewScanner(strings.NewReader(string(data)))
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		return lines, sc.Err()
	}
	if cfg.input != "" {
		return []string{cfg.input}, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	return []string{strings.TrimRight(string(data), "\n")}, nil
}

// stderrSink prints debug events as one line per event, for ad hoc
// inspection from the command line; it does not attempt to format a tree.
type stderrSink struct {
	w io.Writer
}

func (s stderrSink) OnEvent(ev pipeline.Event) {
	fmt.Fprintf(s.w, "[%s] op=%s result=%q\n", ev.Kind, ev.Op, ev.Result)
}
