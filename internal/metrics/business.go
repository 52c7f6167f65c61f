package metrics

// IncrementExportCreated increments export creation counter
func (m *Metrics) IncrementExportCreated() {
	m.safeExecute("IncrementExportCreated", func() {
		m.ExportCreatedTotal.Inc()
	})
}

// IncrementLineCreated increments export line creation counter
func (m *Metrics) IncrementLineCreated() {
	m.safeExecute("IncrementLineCreated", func() {
		m.LineCreatedTotal.Inc()
	})
}

// IncrementTemplateGenerated increments template generation counter
func (m *Metrics) IncrementTemplateGenerated() {
	m.safeExecute("IncrementTemplateGenerated", func() {
		m.TemplatesGeneratedTotal.Inc()
	})
}

// IncrementResolutionFailure increments path resolution failure counter
// for one of: depth_exceeded, unknown_field, unset_label, duplicate_name
func (m *Metrics) IncrementResolutionFailure(reason string) {
	m.safeExecute("IncrementResolutionFailure", func() {
		m.ResolutionFailuresTotal.WithLabelValues(reason).Inc()
	})
}

// SetExportsTotal sets total exports gauge
func (m *Metrics) SetExportsTotal(count int64) {
	m.safeExecute("SetExportsTotal", func() {
		m.ExportsTotal.Set(float64(count))
	})
}

// SetExportLinesTotal sets total export lines gauge
func (m *Metrics) SetExportLinesTotal(count int64) {
	m.safeExecute("SetExportLinesTotal", func() {
		m.ExportLinesTotal.Set(float64(count))
	})
}

// SetStaleLinesTotal sets the gauge of lines failing revalidation
func (m *Metrics) SetStaleLinesTotal(count int64) {
	m.safeExecute("SetStaleLinesTotal", func() {
		m.StaleLinesTotal.Set(float64(count))
	})
}
