// Package refresh normalizes request-supplied refresh values onto the
// three literal modes the store's update API accepts.
package refresh

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/signadot/espatch/debug"
)

const (
	True    = "true"
	False   = "false"
	WaitFor = "wait_for"
)

// envKey resolves to ESPATCH_REFRESH: a process-wide override for
// boolean-like refresh values.
const envKey = "refresh"

// Normalizer maps refresh values to "true", "false" or "wait_for".
// Boolean-like inputs resolve through the environment override when it is
// present; anything unrecognized logs a warning and degrades to "false".
type Normalizer struct {
	log *slog.Logger
	v   *viper.Viper
}

func New(log *slog.Logger) *Normalizer {
	if log == nil {
		log = slog.Default()
	}
	v := viper.New()
	v.SetEnvPrefix("ESPATCH")
	_ = v.BindEnv(envKey)
	return &Normalizer{log: log, v: v}
}

func (n *Normalizer) Normalize(value any) string {
	switch v := value.(type) {
	case bool:
		return n.resolveBool(v)
	case string:
		s := strings.ToLower(v)
		switch s {
		case "true", "1", "yes", "y":
			return n.resolveBool(true)
		case "false", "0", "no", "n":
			return n.resolveBool(false)
		case WaitFor:
			return WaitFor
		}
	}
	n.log.Warn("invalid refresh value, defaulting to false",
		"value", value, "expected", []string{True, False, WaitFor})
	return False
}

// resolveBool applies the environment override: when ESPATCH_REFRESH is
// set it wins over the request value.
func (n *Normalizer) resolveBool(requested bool) string {
	isTrue := requested
	if n.v.IsSet(envKey) {
		isTrue = n.v.GetBool(envKey)
	}
	if debug.Refresh() {
		debug.Logf("refresh: requested=%v resolved=%v\n", requested, isTrue)
	}
	if isTrue {
		return True
	}
	return False
}
