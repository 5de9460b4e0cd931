package domain

// SDKInfo describes a detected WebAssembly SDK installation.
type SDKInfo struct {
	Installed bool   `json:"installed"`
	Root      string `json:"root,omitempty"`
	Version   string `json:"version,omitempty"`
	// Python is the interpreter that runs the compiler driver scripts.
	Python string `json:"python,omitempty"`
	// Compiler is the compiler driver script.
	Compiler string `json:"compiler,omitempty"`
	// Environment holds the variables every compiler invocation needs. It is attached to
	// actions and never applied to the current process.
	Environment map[string]string `json:"environment,omitempty"`
}

// QuotedCompiler returns the compiler driver path wrapped in double quotes.
func (s SDKInfo) QuotedCompiler() string {
	return Quote(s.Compiler)
}

// Quote wraps a path in double quotes for use in a command line fragment.
func Quote(path string) string {
	return `"` + path + `"`
}
