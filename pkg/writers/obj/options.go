package obj

// Options configures an OBJ conversion run.
type Options struct {
	// SkipNormals omits normal computation and emission entirely.
	SkipNormals bool

	// Log receives progress and skip diagnostics. Nil means no-op.
	Log func(message string)
}

func (o Options) logger() func(string) {
	if o.Log != nil {
		return o.Log
	}
	return func(string) {}
}
