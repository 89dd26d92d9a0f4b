// Package auth resolves API keys for the completion backends from the OS
// keychain, with an optional environment-variable fallback.
package auth

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const (
	serviceName   = "article-translate"
	geminiAccount = "gemini-api-key"
	openaiAccount = "openai-api-key"
	geminiEnvVar  = "GEMINI_API_KEY"
	openaiEnvVar  = "OPENAI_API_KEY"
)

func accountFor(provider string) string {
	if provider == "openai" {
		return openaiAccount
	}
	return geminiAccount
}

func envVarFor(provider string) string {
	if provider == "openai" {
		return openaiEnvVar
	}
	return geminiEnvVar
}

// GetKey retrieves the API key for a provider (gemini or openai) and reports
// where it came from. If allowEnv is false, environment variables are ignored.
func GetKey(provider string, allowEnv bool) (string, string) {
	key, err := keyring.Get(serviceName, accountFor(provider))
	if err == nil && key != "" {
		return strings.TrimSpace(key), "Keychain"
	}

	if allowEnv {
		if key := os.Getenv(envVarFor(provider)); key != "" {
			return strings.TrimSpace(key), "Environment Variable"
		}
	}

	return "", ""
}

// SaveKey saves the key for a provider to the OS keychain.
func SaveKey(provider, key string) error {
	return keyring.Set(serviceName, accountFor(provider), strings.TrimSpace(key))
}

// DeleteKey removes the key for a provider from the OS keychain.
func DeleteKey(provider string) error {
	return keyring.Delete(serviceName, accountFor(provider))
}

// HasKey reports whether a key exists for a provider in the keychain.
func HasKey(provider string) bool {
	key, err := keyring.Get(serviceName, accountFor(provider))
	return err == nil && key != ""
}

// PromptForAPIKey securely prompts the user for their API key.
func PromptForAPIKey(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}

// GetEnvKey retrieves the key from environment variables only.
func GetEnvKey(provider string) (string, bool) {
	key := strings.TrimSpace(os.Getenv(envVarFor(provider)))
	if key == "" {
		return "", false
	}
	return key, true
}
