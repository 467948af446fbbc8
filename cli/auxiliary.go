package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// envOr returns either environment variable envKey (if non-empty) or the default value
func envOr(envKey, defaultValue string) string {
	val, ok := os.LookupEnv(envKey)
	if !ok || val == "" {
		return defaultValue
	}
	return val
}

// envToBool returns environment variable envKey considered as boolean value
func envToBool(envKey string) (bool, error) {
	val, ok := os.LookupEnv(envKey)
	if ok && (val == `1` || strings.ToLower(val) == `true`) {
		return true, nil
	} else if ok && (val == `0` || strings.ToLower(val) == `false`) {
		return false, nil
	}
	return false, fmt.Errorf(`boolean env key '%s' has non-bool value '%s'`, envKey, val)
}

// decodeHexArg decodes a CLI argument given as hexadecimal string.
// An empty argument yields an empty byte slice, not an error.
func decodeHexArg(name, value string) ([]byte, error) {
	if value == "" {
		return []byte{}, nil
	}
	data, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf(`argument '%s' must be a hexadecimal string: %s`, name, err.Error())
	}
	return data, nil
}
