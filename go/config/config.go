// Package config holds helpers shared by JSON5 configuration files.
package config

import (
	"encoding/json"
	"io"
	"os"
	"reflect"
	"time"

	"github.com/flynn/json5"
	"go.skia.org/perfsmoke/go/skerr"
)

// Duration is a time.Duration that is written in config files as a string,
// e.g. "5s" or "1h30m".
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return skerr.Wrapf(err, "duration must be a string such as \"5s\"")
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return skerr.Wrap(err)
	}
	d.Duration = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

// ParseConfigFile reads the JSON5 file at path into dst.
func ParseConfigFile(path string, dst interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return skerr.Wrapf(err, "opening config %s", path)
	}
	defer func() { _ = f.Close() }()
	return skerr.Wrapf(Decode(f, dst), "parsing config %s", path)
}

// Decode reads JSON5 from r into dst.
func Decode(r io.Reader, dst interface{}) error {
	return skerr.Wrap(json5.NewDecoder(r).Decode(dst))
}

// CheckRequired returns an error if any field of the struct dst points to has
// a json tag, is not tagged optional:"true", and is still the zero value.
// Bools are never required. Nested structs are checked recursively.
func CheckRequired(dst interface{}) error {
	rValue := reflect.Indirect(reflect.ValueOf(dst))
	if rValue.Kind() != reflect.Struct {
		return skerr.Fmt("input must be a pointer to a struct, got %T", dst)
	}
	return checkRequired(rValue)
}

func checkRequired(rValue reflect.Value) error {
	rType := rValue.Type()
	for i := 0; i < rValue.NumField(); i++ {
		field := rType.Field(i)
		if field.Type.Kind() == reflect.Struct {
			if err := checkRequired(rValue.Field(i)); err != nil {
				return err
			}
			continue
		}
		if field.Type.Kind() == reflect.Bool {
			continue
		}
		name := field.Tag.Get("json")
		if name == "" || field.Tag.Get("optional") == "true" {
			continue
		}
		if rValue.Field(i).IsZero() {
			return skerr.Fmt("required %s to be set", name)
		}
	}
	return nil
}
