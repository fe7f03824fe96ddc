package notion

// Property value builders for the fixed rate-row schema.

func titleProp(content string) map[string]any {
	return map[string]any{
		"title": []any{
			map[string]any{"text": map[string]any{"content": content}},
		},
	}
}

func selectProp(name string) map[string]any {
	return map[string]any{"select": map[string]any{"name": name}}
}

func numberProp(v float64) map[string]any {
	return map[string]any{"number": v}
}

func dateProp(startISO string) map[string]any {
	return map[string]any{"date": map[string]any{"start": startISO}}
}

func selectEqualsFilter(property, value string) map[string]any {
	return map[string]any{
		"property": property,
		"select":   map[string]any{"equals": value},
	}
}

func dateEqualsFilter(property, dateISO string) map[string]any {
	return map[string]any{
		"property": property,
		"date":     map[string]any{"equals": dateISO},
	}
}

func andFilter(filters ...map[string]any) map[string]any {
	return map[string]any{"and": filters}
}
