package provider

type FieldKind string

const (
	FieldText    FieldKind = "text"
	FieldSecret  FieldKind = "secret"
	FieldBoolean FieldKind = "boolean"
)

// Field describes one configuration value a plugin needs. Plugins expose
// their fields through Schema so configuration UIs can render them without
// knowing the backend.
type Field struct {
	Key  string
	Kind FieldKind

	Required bool
	Default  any
}

// Settings is the typed key/value mapping produced by parsing raw settings
// against a schema. It is shared read-only between concurrent attempts.
type Settings map[string]any

func (s Settings) String(key string) string {
	if val, ok := s[key].(string); ok {
		return val
	}

	return ""
}

func (s Settings) Bool(key string) bool {
	if val, ok := s[key].(bool); ok {
		return val
	}

	return false
}

// ParseSettings validates raw settings against a schema. Missing required
// fields fail with a ConfigurationError, declared defaults fill in missing
// optional fields and values must already match their declared kind.
func ParseSettings(schema []Field, raw map[string]any) (Settings, error) {
	settings := Settings{}

	for _, field := range schema {
		val, ok := raw[field.Key]

		if !ok || val == nil || val == "" {
			if field.Required {
				return nil, NewConfigurationError("missing required setting: %s", field.Key)
			}

			if field.Default != nil {
				settings[field.Key] = field.Default
			}

			continue
		}

		switch field.Kind {
		case FieldBoolean:
			b, ok := val.(bool)

			if !ok {
				return nil, NewConfigurationError("setting %s must be a boolean", field.Key)
			}

			settings[field.Key] = b

		default:
			s, ok := val.(string)

			if !ok {
				return nil, NewConfigurationError("setting %s must be a string", field.Key)
			}

			settings[field.Key] = s
		}
	}

	return settings, nil
}
