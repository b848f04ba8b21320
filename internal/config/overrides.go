package config

// Overrides is a partial set of run settings. A nil field is unset and
// leaves the value from an earlier layer in place.
type Overrides struct {
	Input           *string `hcl:"input,optional"`
	Part            *int    `hcl:"part,optional"`
	Workers         *int    `hcl:"workers,optional"`
	LogLevel        *string `hcl:"log_level,optional"`
	LogFormat       *string `hcl:"log_format,optional"`
	HealthcheckPort *int    `hcl:"healthcheck_port,optional"`
	View            *bool   `hcl:"view,optional"`
}

// Merge returns a new Overrides holding o's values replaced by every field
// that is set in next. Either side may be nil.
func (o *Overrides) Merge(next *Overrides) *Overrides {
	out := &Overrides{}
	if o != nil {
		*out = *o
	}
	if next == nil {
		return out
	}
	if next.Input != nil {
		out.Input = next.Input
	}
	if next.Part != nil {
		out.Part = next.Part
	}
	if next.Workers != nil {
		out.Workers = next.Workers
	}
	if next.LogLevel != nil {
		out.LogLevel = next.LogLevel
	}
	if next.LogFormat != nil {
		out.LogFormat = next.LogFormat
	}
	if next.HealthcheckPort != nil {
		out.HealthcheckPort = next.HealthcheckPort
	}
	if next.View != nil {
		out.View = next.View
	}
	return out
}
