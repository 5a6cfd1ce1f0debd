package guid

// MarshalText implements encoding.TextMarshaler using the canonical hex form.
func (g GUID) MarshalText() ([]byte, error) {
	return g.AppendHex(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseHex.
func (g *GUID) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
