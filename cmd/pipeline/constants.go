package main

// Command names.
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form.
const (
	FlagTemplate   = "template"
	FlagInput      = "input"
	FlagInputFile  = "inputs-file"
	FlagOutput     = "output"
	FlagFormat     = "format"
	FlagDebug      = "debug"
)

// Flag names - short form.
const (
	FlagTemplateShort = "t"
	FlagInputShort    = "i"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
)

// Flag default values.
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats for validate/version.
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes.
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeParseError = 3
	ExitCodeInputError = 4
)

// InputSourceStdin marks "-" as a request to read from stdin.
const InputSourceStdin = "-"

// Error messages.
const (
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgParseTemplateFailed = "template parsing failed"
	ErrMsgFormatFailed        = "template formatting failed"
	ErrMsgInvalidFormat       = "invalid output format"
)

const FmtErrorWithCause = "%s: %v\n"

const FilePermissions = 0o644

const VersionUnknown = "dev"

const HelpMainUsage = `string-pipeline - compile-once, run-many string transformation templates

Usage:
    pipeline <command> [options]

Commands:
    render      Render a template against one or more inputs
    validate    Parse a template without rendering it
    version     Show version information
    help        Show help for a command

Use "pipeline help <command>" for more information about a command.`

const HelpRenderUsage = `pipeline render - render a template

Usage:
    pipeline render -template <path|-> [-input <string> | -inputs-file <path>] [-output <path|->] [-debug]

Flags:
    -template, -t       template source; "-" reads from stdin
    -input, -i          a single input string (default: all of stdin as one
                        input, trailing newlines removed)
    -inputs-file        a file of newline-delimited inputs; renders each and
                        writes one output per line
    -output, -o         output destination; "-" writes to stdout (default)
    -debug              force debug-event emission, printed to stderr`

const HelpValidateUsage = `pipeline validate - parse a template without rendering it

Usage:
    pipeline validate -template <path|-> [-format text|json]`

const HelpVersionUsage = `pipeline version - show version information

Usage:
    pipeline version [-format text|json]`

const HelpHelpUsage = `pipeline help [command] - show usage for a command`
