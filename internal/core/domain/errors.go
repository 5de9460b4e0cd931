package domain

import "go.trai.ch/zerr"

var (
	// ErrSDKNotInstalled is returned when no valid WebAssembly SDK installation can be found.
	ErrSDKNotInstalled = zerr.New("webassembly sdk is not installed")

	// ErrUnsupportedCppStandard is returned when a compile environment requests a C++ standard
	// that has no matching compiler flag.
	ErrUnsupportedCppStandard = zerr.New("unsupported c++ standard")

	// ErrUnsupportedConfiguration is returned when a configuration name cannot be parsed.
	ErrUnsupportedConfiguration = zerr.New("unsupported build configuration")

	// ErrUnsupportedBinaryKind is returned when a binary kind name cannot be parsed.
	ErrUnsupportedBinaryKind = zerr.New("unsupported binary kind")

	// ErrUnsupportedPCHAction is returned when a precompiled header action name cannot be parsed.
	ErrUnsupportedPCHAction = zerr.New("unsupported precompiled header action")

	// ErrMissingOutputPath is returned when a link environment has no output path.
	ErrMissingOutputPath = zerr.New("link output path is required")

	// ErrNoObjectFiles is returned when linking an executable without any object files.
	ErrNoObjectFiles = zerr.New("no object files to link")

	// ErrNoSourceFiles is returned when a target declares no source files.
	ErrNoSourceFiles = zerr.New("no source files to compile")

	// ErrDuplicateProducer is returned when two actions claim to produce the same artifact.
	ErrDuplicateProducer = zerr.New("artifact has more than one producer")

	// ErrCycleDetected is returned when a cycle is detected in the action graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrDuplicateBuildProduct is returned when a build product path is registered twice.
	ErrDuplicateBuildProduct = zerr.New("build product already registered")

	// ErrJobReadFailed is returned when the job description cannot be read from disk.
	ErrJobReadFailed = zerr.New("failed to read job file")

	// ErrJobParseFailed is returned when the job description cannot be decoded.
	ErrJobParseFailed = zerr.New("failed to parse job file")

	// ErrJobNotFound is returned when no job file exists in the searched directory.
	ErrJobNotFound = zerr.New("job file not found")

	// ErrUnsupportedJobFormat is returned when the job file extension is not recognized.
	ErrUnsupportedJobFormat = zerr.New("unsupported job file format")

	// ErrTargetNotFound is returned when a requested target is not declared by the job.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrDuplicateTarget is returned when two targets in a job share a name.
	ErrDuplicateTarget = zerr.New("duplicate target name")

	// ErrOptionStoreReadFailed is returned when a configuration layer exists but cannot be read.
	ErrOptionStoreReadFailed = zerr.New("failed to read configuration layer")

	// ErrFileHashFailed is returned when an input file cannot be hashed.
	ErrFileHashFailed = zerr.New("failed to hash input file")

	// ErrFingerprintStoreOpenFailed is returned when the fingerprint database cannot be opened.
	ErrFingerprintStoreOpenFailed = zerr.New("failed to open fingerprint store")

	// ErrFingerprintStoreReadFailed is returned when a fingerprint cannot be read.
	ErrFingerprintStoreReadFailed = zerr.New("failed to read fingerprint")

	// ErrFingerprintStoreWriteFailed is returned when a fingerprint cannot be written.
	ErrFingerprintStoreWriteFailed = zerr.New("failed to write fingerprint")

	// ErrResponseFileWriteFailed is returned when a response file cannot be materialized.
	ErrResponseFileWriteFailed = zerr.New("failed to write response file")

	// ErrUnknownFlagKind is returned when flags are requested for an unknown action kind.
	ErrUnknownFlagKind = zerr.New("unknown flag kind")
)
