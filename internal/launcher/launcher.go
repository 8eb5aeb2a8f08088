package launcher

import (
	"errors"
	"fmt"
	"os"

	"launchdeck/internal/logger"
)

// ErrNotFound reports a launch target missing on disk at call time.
var ErrNotFound = errors.New("file does not exist")

// SpawnError wraps an OS-level spawn failure with the offending path.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Runner hands a path to the platform's native open mechanism without
// waiting for the spawned process to exit.
type Runner interface {
	Open(path string) error
}

// Failure pairs a display name with the error that kept it from launching.
type Failure struct {
	Name string
	Err  error
}

// Result summarizes a batch launch.
type Result struct {
	Launched int
	Failures []Failure
}

// Dispatcher launches registered paths through a Runner. Names shown in
// failure reports are resolved through the namer, typically the store's
// DisplayName.
type Dispatcher struct {
	runner Runner
	namer  func(path string) string
	log    logger.Logger
}

func NewDispatcher(runner Runner, namer func(string) string, log logger.Logger) *Dispatcher {
	if namer == nil {
		namer = func(path string) string { return path }
	}
	return &Dispatcher{runner: runner, namer: namer, log: log}
}

// LaunchOne starts the program at path. It fails with ErrNotFound when
// the path is missing at call time and wraps any OS rejection in a
// SpawnError. It never waits for the child.
func (d *Dispatcher) LaunchOne(path string) error {
	if _, err := os.Stat(path); err != nil {
		d.log.Warning("Launcher", "launch target missing", map[string]interface{}{
			"path": path,
		})
		return ErrNotFound
	}
	if err := d.runner.Open(path); err != nil {
		d.log.Error("Launcher", err, map[string]interface{}{
			"path": path,
		})
		return &SpawnError{Path: path, Err: err}
	}
	d.log.Info("Launcher", "launched", map[string]interface{}{
		"path": path,
	})
	return nil
}

// LaunchMany deduplicates paths preserving first-seen order and
// attempts every distinct one. A failure never stops the rest.
func (d *Dispatcher) LaunchMany(paths []string) Result {
	var result Result
	seen := map[string]bool{}
	for _, path := range paths {
		if seen[path] {
			continue
		}
		seen[path] = true
		if err := d.LaunchOne(path); err != nil {
			result.Failures = append(result.Failures, Failure{
				Name: d.namer(path),
				Err:  err,
			})
			continue
		}
		result.Launched++
	}
	return result
}
