package preflight

import (
	"foldean/internal/config"
)

// Result reports the outcome of a single preflight check. Pending marks a
// passing check whose directory still has to be created.
type Result struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Detail  string `json:"detail"`
	Pending bool   `json:"pending,omitempty"`
}

// RunAll executes every check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		// Write access is only required when the run will move files; doctor
		// always reports it.
		CheckDirectoryAccess("Target directory", cfg.TargetDir, true),
		CheckLockDir(cfg.LockDir),
	}
	return results
}

// CheckTarget verifies the target directory for one run. Dry runs only need
// to read it.
func CheckTarget(cfg *config.Config) Result {
	return CheckDirectoryAccess("Target directory", cfg.TargetDir, cfg.Apply)
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
