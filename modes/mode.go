package modes

import (
	"fmt"
	"os"
)

type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

// ModeEnv overrides the mode of a production scope, so a binary can be run
// with test-like logging and without config discovery.
const ModeEnv = "INTCODE_MODE"

func ParseMode(str string) (Mode, error) {
	switch Mode(str) {
	case ModeProduction, ModeDevelopment:
		return Mode(str), nil
	case "dev":
		return ModeDevelopment, nil
	case "prod":
		return ModeProduction, nil
	}
	return "", fmt.Errorf("unknown mode: %q", str)
}

func modeFromEnv() Mode {
	str := os.Getenv(ModeEnv)
	if str == "" {
		return ModeProduction
	}
	mode, err := ParseMode(str)
	if err != nil {
		// unknown values must not silently disable config discovery
		return ModeProduction
	}
	return mode
}
