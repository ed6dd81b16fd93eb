package validator

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"

	"jsonls/internal/jsonpointer"
)

// FormatFunc reports whether value satisfies a named format.
type FormatFunc func(value string, ctx *Context) bool

// formats is the default registry, grounded in the teacher's own
// RegisterFormat/customFormats pattern: a name-keyed map of validators,
// populated at package init and extendable by RegisterFormat.
var formats = map[string]FormatFunc{
	"date-time": func(v string, _ *Context) bool {
		_, err := time.Parse(time.RFC3339Nano, v)
		return err == nil
	},
	"date": func(v string, _ *Context) bool {
		_, err := time.Parse("2006-01-02", v)
		return err == nil
	},
	"time": func(v string, _ *Context) bool {
		_, err := time.Parse("15:04:05", v)
		return err == nil
	},
	"email": func(v string, _ *Context) bool {
		_, err := mail.ParseAddress(v)
		return err == nil
	},
	"uri": func(v string, _ *Context) bool {
		u, err := url.Parse(v)
		return err == nil && u.IsAbs()
	},
	"uri-reference": func(v string, _ *Context) bool {
		_, err := url.Parse(v)
		return err == nil
	},
	"uuid":     regexFormat(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`),
	"ipv4": func(v string, _ *Context) bool {
		ip := net.ParseIP(v)
		return ip != nil && strings.Contains(v, ".")
	},
	"ipv6": func(v string, _ *Context) bool {
		ip := net.ParseIP(v)
		return ip != nil && strings.Contains(v, ":")
	},
	"hostname": regexFormat(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`),
	"regex": func(v string, _ *Context) bool {
		_, err := regexp.Compile(v)
		return err == nil
	},
	"json-pointer": func(v string, _ *Context) bool {
		_, err := jsonpointer.Parse("#" + v)
		return v == "" || err == nil
	},
}

func regexFormat(pattern string) FormatFunc {
	re := regexp.MustCompile(pattern)
	return func(v string, _ *Context) bool { return re.MatchString(v) }
}

// RegisterFormat adds or overrides a named format validator, mirroring the
// teacher compiler's RegisterFormat/UnregisterFormat surface.
func RegisterFormat(name string, fn FormatFunc) {
	formats[name] = fn
}
