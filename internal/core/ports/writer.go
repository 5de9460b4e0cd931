package ports

//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks

// IntermediateFileWriter materializes generated inputs such as response files.
type IntermediateFileWriter interface {
	// WriteIfChanged writes content to path unless the file already holds exactly that content.
	// It reports whether the file was written.
	WriteIfChanged(path string, content []byte) (bool, error)
}
