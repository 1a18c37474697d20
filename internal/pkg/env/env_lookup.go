package env

import (
	"os"
	"strconv"
	"time"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

func TrySetIntFromEnv(envName string, val *int) {
	if envVal, found := os.LookupEnv(envName); found {
		if parsed, err := strconv.Atoi(envVal); err == nil {
			*val = parsed
		}
	}
}

func TrySetInt64FromEnv(envName string, val *int64) {
	if envVal, found := os.LookupEnv(envName); found {
		if parsed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			*val = parsed
		}
	}
}

func TrySetDurationFromEnv(envName string, val *time.Duration) {
	if envVal, found := os.LookupEnv(envName); found {
		if parsed, err := time.ParseDuration(envVal); err == nil {
			*val = parsed
		}
	}
}
