package standards

// Defaults returns the baseline standards seeded at startup.
func Defaults() map[string]Document {
	return map[string]Document{
		"Python": {
			"style_guide":       "PEP 8",
			"max_line_length":   88,
			"docstring_style":   "Google style",
			"prefer_type_hints": true,
		},
		"JavaScript": {
			"style_guide":    "Airbnb",
			"prefer_const":   true,
			"avoid_var":      true,
			"use_semicolons": true,
		},
		"Java": {
			"style_guide": "Google Java Style Guide",
			"naming_conventions": map[string]any{
				"classes":   "UpperCamelCase",
				"methods":   "lowerCamelCase",
				"constants": "UPPER_SNAKE_CASE",
				"variables": "lowerCamelCase",
				"packages":  "lowercase",
			},
			"formatting": map[string]any{
				"indent":        2,
				"line_length":   100,
				"braces":        "same line",
				"line_wrapping": "4-space continuation indent",
			},
			"practices": map[string]any{
				"prefer_interfaces":   true,
				"avoid_public_fields": true,
				"immutability":        "prefer immutable when possible",
				"exception_handling":  "use specific exceptions",
				"avoid_null":          "use Optional<T> instead of null",
				"prefer_composition":  "favor composition over inheritance",
			},
			"documentation": map[string]any{
				"javadoc_required": []any{"public", "protected"},
				"javadoc_optional": []any{"private", "package-private"},
				"method_comments":  "describe parameters, return values, and exceptions",
			},
			"code_structure": map[string]any{
				"class_organization": []any{
					"static fields",
					"instance fields",
					"constructors",
					"public methods",
					"protected methods",
					"private methods",
				},
				"method_length": "prefer < 40 lines",
				"class_length":  "prefer < 1000 lines",
			},
			"performance": map[string]any{
				"prefer_StringBuilder": "for string concatenation in loops",
				"resource_management":  "use try-with-resources",
				"collection_sizing":    "initialize with expected capacity",
			},
			"testing": map[string]any{
				"framework":       "JUnit 5",
				"naming":          "test<MethodName>_<TestScenario>",
				"coverage_target": "80% method coverage",
			},
			"design_patterns": map[string]any{
				"recommended": []any{
					"Builder for complex objects",
					"Factory Method for object creation",
					"Strategy for algorithm selection",
				},
				"avoid": []any{
					"Singleton (use dependency injection)",
					"Deep inheritance hierarchies",
				},
			},
		},
	}
}
