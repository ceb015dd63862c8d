package shell

type ResultKind int

const (
	ResultEmpty ResultKind = iota
	ResultOutput
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultEmpty:
		return "empty"
	case ResultOutput:
		return "output"
	case ResultError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is what one submission produced. Text goes to the normal channel for
// ResultOutput and to the error channel for ResultError; Stderr is only set when
// the session was built WithStderr.
type Result struct {
	Kind     ResultKind
	Text     string
	Stderr   string
	ExitCode int
}

func Output(text string) Result {
	return Result{Kind: ResultOutput, Text: text}
}

func ErrorResult(text string) Result {
	return Result{Kind: ResultError, Text: text, ExitCode: -1}
}

func Empty() Result {
	return Result{Kind: ResultEmpty}
}

const (
	msgPathNotFound    = "Path does not exist!\n"
	msgCommandNotFound = ": command not found!\n"
)
