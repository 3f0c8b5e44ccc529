package entity

// DeviceProfile names a printer together with its command language and the
// device context its adapter is invoked with.
type DeviceProfile struct {
	Name    string         `yaml:"name" json:"name"`
	Format  string         `yaml:"format" json:"format"`
	Context map[string]any `yaml:"context" json:"context,omitempty"`
}
