package core

import (
	"os"
	"runtime"
	"strings"
)

// EnvVar is the process environment variable read by EnvironmentFromEnv.
const EnvVar = "BUFFLOG_ENV"

// Environment names the runtime mode the process runs in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// EnvironmentFromEnv reads BUFFLOG_ENV, defaulting to Development when unset.
func EnvironmentFromEnv() Environment {
	v := strings.TrimSpace(os.Getenv(EnvVar))
	if v == "" {
		return Development
	}
	return Environment(strings.ToLower(v))
}

// DevelopmentLike reports whether writes should favour immediacy over
// latency. Empty counts as development.
func (e Environment) DevelopmentLike() bool {
	switch e {
	case "", Development, Test:
		return true
	}
	return false
}

// ProductionLike reports whether e is a production environment.
func (e Environment) ProductionLike() bool {
	return e == Production
}

// DefaultLevel is the minimum rank used when no valid level name is given:
// error in production, debug everywhere else.
func (e Environment) DefaultLevel() Level {
	if e.ProductionLike() {
		return ErrorLevel
	}
	return DebugLevel
}

// Platform is a GOOS value.
type Platform string

// CurrentPlatform returns the platform the binary was built for.
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// NonblockReliable reports whether non-blocking writes on file descriptors
// behave predictably on p.
func (p Platform) NonblockReliable() bool {
	switch p {
	case "windows", "plan9", "js", "wasip1":
		return false
	}
	return true
}
