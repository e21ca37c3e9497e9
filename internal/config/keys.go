package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned by Get and Set for keys outside Keys().
var ErrUnknownKey = errors.New("unknown configuration key")

// field binds a dotted key to accessors on Config.
type field struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

//nolint:gochecknoglobals // Static key table.
var fields = map[string]field{
	"output.default_format": {
		get: func(c *Config) string { return c.Output.DefaultFormat },
		set: func(c *Config, v string) error { c.Output.DefaultFormat = v; return nil },
	},
	"output.precision": {
		get: func(c *Config) string { return strconv.Itoa(c.Output.Precision) },
		set: func(c *Config, v string) error { return setInt(&c.Output.Precision, v) },
	},
	"table.rows_per_page": {
		get: func(c *Config) string { return strconv.Itoa(c.Table.RowsPerPage) },
		set: func(c *Config, v string) error { return setInt(&c.Table.RowsPerPage, v) },
	},
	"table.rows_per_page_options": {
		get: func(c *Config) string { return joinInts(c.Table.RowsPerPageOptions) },
		set: func(c *Config, v string) error {
			opts, err := splitInts(v)
			if err != nil {
				return err
			}
			c.Table.RowsPerPageOptions = opts
			return nil
		},
	},
	"table.id_source": {
		get: func(c *Config) string { return c.Table.IDSource },
		set: func(c *Config, v string) error { c.Table.IDSource = v; return nil },
	},
	"table.default_sort_order": {
		get: func(c *Config) string { return c.Table.DefaultSortOrder },
		set: func(c *Config, v string) error { c.Table.DefaultSortOrder = v; return nil },
	},
	"table.range_separator": {
		get: func(c *Config) string { return c.Table.RangeSeparator },
		set: func(c *Config, v string) error { c.Table.RangeSeparator = v; return nil },
	},
	"table.rows_per_page_text": {
		get: func(c *Config) string { return c.Table.RowsPerPageText },
		set: func(c *Config, v string) error { c.Table.RowsPerPageText = v; return nil },
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error { c.Logging.Level = v; return nil },
	},
	"logging.format": {
		get: func(c *Config) string { return c.Logging.Format },
		set: func(c *Config, v string) error { c.Logging.Format = v; return nil },
	},
	"logging.file": {
		get: func(c *Config) string { return c.Logging.File },
		set: func(c *Config, v string) error { c.Logging.File = v; return nil },
	},
	"logging.caller": {
		get: func(c *Config) string { return strconv.FormatBool(c.Logging.Caller) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false: %w", err)
			}
			c.Logging.Caller = b
			return nil
		},
	},
}

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get returns the string form of the value stored under key.
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return f.get(c), nil
}

// Set parses value and stores it under key. The result is not validated;
// call Validate before persisting.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err := f.set(c, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("expected an integer: %w", err)
	}
	*dst = n
	return nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func splitInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("expected comma-separated integers: %w", err)
		}
		out = append(out, n)
	}
	return out, nil
}
