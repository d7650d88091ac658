package ruddr

// TokenEnvVar is the environment variable consulted for a fallback API
// token when none is passed explicitly.
const TokenEnvVar = "RUDDR_TOKEN"

// missingTokenMessage is stable; callers may match on it.
const missingTokenMessage = "ruddr api token was not input through code or " + TokenEnvVar + " environment variable"

// LookupFunc looks up a named value and reports whether it was present.
// [os.LookupEnv] satisfies it.
type LookupFunc func(name string) (string, bool)

// ResolveToken picks the API token. An explicit token always wins, even
// when empty; otherwise lookup is asked for [TokenEnvVar]. When neither
// yields a value the error is a [KindConfig] error.
func ResolveToken(explicit *string, lookup LookupFunc) (string, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if lookup != nil {
		if token, ok := lookup(TokenEnvVar); ok {
			return token, nil
		}
	}
	return "", configError(codeMissingToken, missingTokenMessage, nil)
}

// secret holds a header value that must not show up in logs or debug
// output.
type secret string

const redacted = "[REDACTED]"

func (secret) String() string   { return redacted }
func (secret) GoString() string { return redacted }

func (s secret) reveal() string { return string(s) }
