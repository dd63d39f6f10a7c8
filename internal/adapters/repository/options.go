package repository

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithTempExtension sets the extension of the scratch file written
// before the atomic rename.
func WithTempExtension(ext string) Option {
	return func(s *CSVStore) {
		if ext != "" {
			s.tempExt = ext
		}
	}
}
