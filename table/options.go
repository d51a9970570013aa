package table

// BuilderOption is a functional option applied when creating a Builder
type BuilderOption func(*Builder)

// WithSteps appends filter/transform steps, applied in declared order
func WithSteps(steps ...Step) BuilderOption {
	return func(b *Builder) {
		b.steps = append(b.steps, steps...)
	}
}

// WithStrictEmpty escalates an empty result to an EmptyResultError
func WithStrictEmpty() BuilderOption {
	return func(b *Builder) {
		b.strictEmpty = true
	}
}

// WithFlatten flattens nested mappings into separator-joined columns
// instead of keeping them as opaque structured values
func WithFlatten(separator string) BuilderOption {
	return func(b *Builder) {
		b.flatten = true
		if separator != "" {
			b.flattenSeparator = separator
		}
	}
}

// WithSnakeCaseColumns normalizes column names to snake_case - platform
// exports are inconsistent about key casing ("Video Browsing History" vs
// "watch_history")
func WithSnakeCaseColumns() BuilderOption {
	return func(b *Builder) {
		b.snakeCaseColumns = true
	}
}

// WithProvenance joins the provenance fields (entry name, participant,
// platform, source) into the table as additional columns. Record fields win
// on name collision.
func WithProvenance() BuilderOption {
	return func(b *Builder) {
		b.provenance = true
	}
}
