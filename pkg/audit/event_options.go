package audit

// WithResource sets the resource type and ID.
func WithResource(resource, id string) EventOption {
	return func(e *Event) {
		e.Resource = resource
		e.ResourceID = id
	}
}

// WithMetadata adds a metadata key to the event.
func WithMetadata(key string, value any) EventOption {
	return func(e *Event) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]any)
		}
		e.Metadata[key] = value
	}
}

// WithResult overrides the event result.
func WithResult(result Result) EventOption {
	return func(e *Event) {
		e.Result = result
	}
}

// WithBefore attaches the resource state before the mutation.
func WithBefore(snapshot map[string]any) EventOption {
	return func(e *Event) {
		e.Before = snapshot
	}
}

// WithAfter attaches the resource state after the mutation.
func WithAfter(snapshot map[string]any) EventOption {
	return func(e *Event) {
		e.After = snapshot
	}
}

// WithChange attaches both snapshots of a mutation. Pass nil for before on
// creates and nil for after on deletes.
func WithChange(before, after map[string]any) EventOption {
	return func(e *Event) {
		e.Before = before
		e.After = after
	}
}
