package weflag

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Parse fills an options struct of type T from the host's argument vector.
// Flag values are matched to struct fields through mapstructure tags:
//
//	type Opts struct {
//		Value   float64       `mapstructure:"value"`
//		Timeout time.Duration `mapstructure:"timeout"`
//	}
//
// On any failure — parse or decode — the message is routed to the host's
// sinks and the program ends, exactly like Command.GetMatches.
func Parse[T any](c *Command) T {
	return ParseFrom[T](c, c.hostOrDefault().Args())
}

// ParseFrom is Parse with an explicit argument vector.
func ParseFrom[T any](c *Command, args []string) T {
	out, err := TryParseFrom[T](c, args)
	if err != nil {
		c.fail(err)
		// Only reachable with a host whose Exit returns (tests).
		var zero T
		return zero
	}
	return out
}

// TryParse is Parse without termination: failures come back as a *ParseError
// or *DecodeError for the caller to handle.
func TryParse[T any](c *Command) (T, error) {
	return TryParseFrom[T](c, c.hostOrDefault().Args())
}

// TryParseFrom is TryParse with an explicit argument vector.
func TryParseFrom[T any](c *Command, args []string) (T, error) {
	var out T

	if _, err := c.TryGetMatchesFrom(args); err != nil {
		return out, err
	}

	v := viper.New()
	if err := v.BindPFlags(c.Flags); err != nil {
		return out, &DecodeError{Target: fmt.Sprintf("%T", out), Err: err}
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&out, hook); err != nil {
		return out, &DecodeError{Target: fmt.Sprintf("%T", out), Err: err}
	}

	return out, nil
}
