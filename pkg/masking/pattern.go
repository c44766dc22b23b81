package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// rawPattern is a built-in pattern before compilation.
type rawPattern struct {
	pattern     string
	replacement string
	description string
}

// builtinPatterns covers the credential shapes that show up in operational
// tool output: ticket payloads, deployment logs, service configs. Patterns
// are ordered from most to least specific so broad patterns cannot eat
// text a narrow one should have rewritten.
var builtinPatterns = []struct {
	name string
	raw  rawPattern
}{
	{"certificate", rawPattern{
		pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
		replacement: `__MASKED_CERTIFICATE__`,
		description: "SSL/TLS certificates and PEM keys",
	}},
	{"aws_access_key", rawPattern{
		pattern:     `(?i)(?:aws[_-]?access[_-]?key[_-]?id)["']?\s*[:=]\s*["']?(AKIA[A-Z0-9]{16})["']?`,
		replacement: `"aws_access_key_id": "__MASKED_AWS_KEY__"`,
		description: "AWS access keys",
	}},
	{"aws_secret_key", rawPattern{
		pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
		replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
		description: "AWS secret keys",
	}},
	{"github_token", rawPattern{
		pattern:     `gh[ps]_[A-Za-z0-9_]{36,255}`,
		replacement: `__MASKED_GITHUB_TOKEN__`,
		description: "GitHub tokens",
	}},
	{"ssh_key", rawPattern{
		pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
		replacement: `__MASKED_SSH_KEY__`,
		description: "SSH public keys",
	}},
	{"api_key", rawPattern{
		pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
		replacement: `"api_key": "__MASKED_API_KEY__"`,
		description: "API keys",
	}},
	{"token", rawPattern{
		pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		replacement: `"token": "__MASKED_TOKEN__"`,
		description: "Access tokens",
	}},
	{"password", rawPattern{
		pattern:     `(?i)(?:password|pwd|passwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
		replacement: `"password": "__MASKED_PASSWORD__"`,
		description: "Passwords",
	}},
	{"connection_string", rawPattern{
		pattern:     `(?i)([a-z][a-z0-9+]*://[^:/\s]+):([^@\s]+)@`,
		replacement: `$1:__MASKED_PASSWORD__@`,
		description: "Credentials embedded in connection URLs",
	}},
}

// compilePatterns compiles the built-in pattern table.
// Invalid patterns are logged and skipped.
func compilePatterns() []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(builtinPatterns))
	for _, entry := range builtinPatterns {
		re, err := regexp.Compile(entry.raw.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", entry.name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        entry.name,
			Regex:       re,
			Replacement: entry.raw.replacement,
			Description: entry.raw.description,
		})
	}
	return compiled
}
