package extraction

// EntityRecognizer is an optional named-entity capability used as the last
// resort of the name finder.
type EntityRecognizer interface {
	// FindPersonEntities returns person names found in text, in order of appearance.
	FindPersonEntities(text string) ([]string, error)
}

// RecognizerFunc adapts a plain function to EntityRecognizer.
type RecognizerFunc func(text string) ([]string, error)

// FindPersonEntities calls f(text).
func (f RecognizerFunc) FindPersonEntities(text string) ([]string, error) {
	return f(text)
}

// firstPerson runs r over text and returns the first non-blank person entity.
// Recognizer errors and panics are absorbed; they only cost recall.
func firstPerson(r EntityRecognizer, text string) (name string) {
	if r == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			name = ""
		}
	}()

	persons, err := r.FindPersonEntities(text)
	if err != nil {
		return ""
	}
	for _, p := range persons {
		if p = titleCaseIfUpper(p); p != "" {
			return p
		}
	}
	return ""
}
