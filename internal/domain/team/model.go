package team

// Registry maps short team codes to canonical club names for one country.
type Registry map[string]string

// Name resolves a code, falling back to the code itself.
func (r Registry) Name(code string) string {
	if name, ok := r[code]; ok && name != "" {
		return name
	}
	return code
}

func (r Registry) Has(code string) bool {
	_, ok := r[code]
	return ok
}
