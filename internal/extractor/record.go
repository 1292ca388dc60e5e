package extractor

// Language identifies one of the supported source languages.
type Language string

const (
	LangPython Language = "python"
	LangRust   Language = "rust"
	LangGo     Language = "go"
	LangJava   Language = "java"
	LangC      Language = "c"
	LangCpp    Language = "cpp"
)

// FunctionType classifies what kind of callable a record describes.
type FunctionType string

const (
	TypeFunction    FunctionType = "function"
	TypeMethod      FunctionType = "method"
	TypeConstructor FunctionType = "constructor"
)

// Scope is the structural container a definition is declared within.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeClass  Scope = "class"
	ScopeImpl   Scope = "impl"
	ScopeMethod Scope = "method"
)

// FunctionRecord is the normalized output unit for one function, method,
// or constructor definition. Field names and JSON tags are the stable
// contract consumed by the downstream chunking/embedding pipeline.
type FunctionRecord struct {
	Name     string `json:"name"`      // declared identifier, "unknown" if unrecoverable
	Code     string `json:"code"`      // byte-exact source slice of the definition
	FilePath string `json:"file_path"` // path as given to the engine

	StartLine   int `json:"start_line"` // 1-based, inclusive
	EndLine     int `json:"end_line"`   // 1-based, inclusive
	StartColumn int `json:"start_column"`
	EndColumn   int `json:"end_column"`
	StartByte   int `json:"start_byte"`
	EndByte     int `json:"end_byte"`

	Language     Language     `json:"language"`
	FunctionType FunctionType `json:"function_type"`
	Arguments    []string     `json:"arguments"` // parameter names, receiver/self excluded
	Docstring    string       `json:"docstring,omitempty"`
	Modifiers    []string     `json:"modifiers,omitempty"` // language-specific keywords
	Scope        Scope        `json:"scope"`

	Complexity   int `json:"complexity"` // cyclomatic approximation, >= 1
	LOC          int `json:"loc"`
	CommentLines int `json:"comment_lines"`
}
