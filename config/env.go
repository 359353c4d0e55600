package config

import "os"

// Environment names the runtime mode the process was started in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the runtime mode. A CI worker wins over ENV, and
// anything unrecognized falls back to development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsDevelopment reports whether the process runs in development mode.
func IsDevelopment() bool { return GetEnvironment() == Development }

// IsTest reports whether the process runs in test mode.
func IsTest() bool { return GetEnvironment() == Test }

// IsCI reports whether the process runs on a CI worker.
func IsCI() bool { return GetEnvironment() == CI }

// IsProduction reports whether the process runs in production mode.
func IsProduction() bool { return GetEnvironment() == Production }
