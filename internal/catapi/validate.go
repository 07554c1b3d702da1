package catapi

// IsImage reports whether an untyped decoded JSON value looks like an image
// record: an object carrying a string "url" property. Other properties are
// ignored. It never panics, whatever the input.
func IsImage(value any) bool {
	obj, ok := value.(map[string]any)
	if !ok || obj == nil {
		return false
	}

	_, ok = obj["url"].(string)
	return ok
}
